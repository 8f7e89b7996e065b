// Package fileref translates file-reference URLs into filesystem paths.
//
// The import flow receives dropped content as URL strings (typically
// file:// URLs, sometimes with platform encoding quirks) and needs the
// canonical local path behind them before anything else can happen. The
// translator validates that an input is exactly one well-formed URL,
// resolves file-scheme URLs to percent-decoded paths, and distinguishes
// "valid URL but not a file reference" from "not a URL at all".
//
// Translation is pure: it never touches the filesystem and is safe to call
// concurrently.
package fileref
