// Package pricing holds stateless order arithmetic: discounts, average order
// value, amount validation and USD to VND conversion, plus an e-mail format
// check. Nothing here shares state with the accounts registry.
package pricing
