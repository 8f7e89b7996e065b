// Package dropped turns raw drop payloads into usable local files.
//
// A drop arrives as a list of strings that may be file URLs (with platform
// encoding quirks) or plain filesystem paths. The package resolves them to
// local paths via the fileref translator, filters by the configured
// extensions, classifies entries as cut descriptions or media, and enforces
// the one-cut-per-drop rule the import flow relies on.
package dropped
