// Package cli implements the notemill command-line interface using
// cobra. Commands resolve configuration from flags, environment
// variables, and the TOML config store, in that order.
package cli
