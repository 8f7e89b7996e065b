// Package importer drives one import session from a drop payload.
//
// It resolves dropped entries to local files, applies the configured
// extension and single-drop policies, derives the session display name, and
// records the outcome in the history store. The GUI equivalent hands the
// resolved cut to its EDL processor; the standalone companion stops at the
// recorded session.
package importer
