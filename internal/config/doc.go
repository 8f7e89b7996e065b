// Package config loads, normalizes, and validates the importcut
// configuration file.
//
// Configuration is TOML, resolved from an explicit path, then
// ~/.config/importcut/config.toml, then ./importcut.toml. Loading always
// starts from repository defaults so a missing file yields a fully usable
// configuration. Path fields are tilde-expanded and made absolute during
// normalization, and validation rejects values the rest of the tool cannot
// act on rather than letting them fail later.
package config
