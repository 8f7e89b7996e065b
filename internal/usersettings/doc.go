// Package usersettings persists per-user import preferences.
//
// Settings live in a single TOML file. Loading a missing file yields the
// defaults, saving validates first and takes a sibling lock file so
// concurrent tool instances cannot interleave writes. A set of restart keys
// marks the settings whose change requires relaunching the import flow.
package usersettings
