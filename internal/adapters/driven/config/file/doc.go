// Package file provides a TOML file-backed implementation of the
// configuration store port. Values live in ~/.notemill/config.toml and
// are addressed by dot-notation keys ("notion.token").
package file
