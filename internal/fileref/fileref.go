package fileref

import (
	"fmt"
	"net/url"
	"path/filepath"
	"runtime"
	"strings"
	"unicode"
)

// MalformedURLError reports an input that is not a single well-formed URL.
type MalformedURLError struct {
	Input string
}

func (e *MalformedURLError) Error() string {
	return fmt.Sprintf("malformed url: '%s'", e.Input)
}

// Translate maps a URL string to the filesystem path it designates.
//
// The returned bool reports whether the URL resolved to a path: a valid URL
// with a non-file scheme yields ("", false, nil) so callers can tell that
// outcome apart from a malformed input, which yields a *MalformedURLError.
// The whole input must be exactly one URL; a valid prefix followed by
// trailing garbage is rejected.
func Translate(raw string) (string, bool, error) {
	if !wellFormed(raw) {
		return "", false, &MalformedURLError{Input: raw}
	}
	parsed, err := url.Parse(raw)
	if err != nil || !parsed.IsAbs() {
		return "", false, &MalformedURLError{Input: raw}
	}
	path, ok := resolvePath(parsed)
	if !ok {
		return "", false, nil
	}
	return path, true, nil
}

// URLFromPath wraps an absolute filesystem path back into a file:// URL,
// percent-encoding where required. Translate(URLFromPath(p)) yields p again.
func URLFromPath(path string) string {
	p := filepath.ToSlash(path)
	if !strings.HasPrefix(p, "/") {
		// Windows drive-letter paths gain the leading slash the URL form needs.
		p = "/" + p
	}
	u := url.URL{Scheme: "file", Path: p}
	return u.String()
}

// wellFormed applies the full-string match rule: the entire input must be a
// single URL token. Whitespace or control characters anywhere mean the match
// would not span the whole string.
func wellFormed(raw string) bool {
	if raw == "" {
		return false
	}
	for _, r := range raw {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}

func resolvePath(u *url.URL) (string, bool) {
	if u.Scheme != "file" {
		return "", false
	}
	p := u.Path
	if p == "" {
		// file:opaque or a bare file:// carries no path component.
		return "", false
	}
	host := u.Hostname()
	if host != "" && !strings.EqualFold(host, "localhost") {
		if runtime.GOOS == "windows" {
			return `\\` + host + filepath.FromSlash(p), true
		}
		return "", false
	}
	if runtime.GOOS == "windows" {
		if len(p) >= 3 && p[0] == '/' && isDriveLetter(p[1]) && p[2] == ':' {
			p = p[1:]
		}
		return filepath.FromSlash(p), true
	}
	return p, true
}

func isDriveLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}
