package accounts

const (
	// DefaultMinPasswordLength is the shortest accepted password, in UTF-16 code units
	DefaultMinPasswordLength = 8
	// DefaultMinAge is the youngest age accepted at registration
	DefaultMinAge = 18
)

// Config holds registry options
type Config interface {
	GetMinPasswordLength() int
	GetMinAge() int
}

// StaticConfig is a Config backed by plain values. Zero or negative
// values fall back to the defaults.
type StaticConfig struct {
	MinPasswordLength int `json:"min_password_length" mapstructure:"min_password_length"`
	MinAge            int `json:"min_age" mapstructure:"min_age"`
}

func (c StaticConfig) GetMinPasswordLength() int {
	if c.MinPasswordLength <= 0 {
		return DefaultMinPasswordLength
	}
	return c.MinPasswordLength
}

func (c StaticConfig) GetMinAge() int {
	if c.MinAge <= 0 {
		return DefaultMinAge
	}
	return c.MinAge
}

// DefaultConfig returns the 8 character / 18 years configuration
func DefaultConfig() Config {
	return StaticConfig{
		MinPasswordLength: DefaultMinPasswordLength,
		MinAge:            DefaultMinAge,
	}
}

func normalizeConfig(cfg Config) Config {
	if cfg == nil {
		return DefaultConfig()
	}
	return StaticConfig{
		MinPasswordLength: cfg.GetMinPasswordLength(),
		MinAge:            cfg.GetMinAge(),
	}
}
