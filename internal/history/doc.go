// Package history persists a local record of import sessions.
//
// The hosted version of the import flow records every submitted cut in the
// production-tracking system; the standalone companion keeps an equivalent
// trail in a SQLite database next to the logs so editors can review what was
// translated and imported, and when.
package history
