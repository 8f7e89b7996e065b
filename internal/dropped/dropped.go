package dropped

import (
	"fmt"
	"path/filepath"
	"strings"

	"importcut/internal/fileref"
)

// Kind classifies a dropped file by what the import flow does with it.
type Kind int

const (
	// KindOther is anything outside the supported extension set.
	KindOther Kind = iota
	// KindCut is an editorial cut description (.edl).
	KindCut
	// KindMedia is a media file accompanying the cut (.mov).
	KindMedia
)

func (k Kind) String() string {
	switch k {
	case KindCut:
		return "cut"
	case KindMedia:
		return "media"
	default:
		return "other"
	}
}

// Payload is the usable outcome of one drop: a cut description and an
// optional accompanying media file.
type Payload struct {
	Cut   string
	Media string
}

// LocalPaths resolves drop entries to local filesystem paths. Entries that
// look like URLs are translated; valid URLs that are not file references are
// silently skipped, mirroring how a drop area ignores remote links. A
// malformed URL entry fails the whole drop. Plain path entries pass through
// untouched.
func LocalPaths(entries []string) ([]string, error) {
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		path, ok, err := Resolve(entry)
		if err != nil {
			return nil, err
		}
		if ok {
			paths = append(paths, path)
		}
	}
	return paths, nil
}

// Resolve turns one drop entry into a local path. Plain paths pass through
// trimmed; URL-shaped entries go through the translator, and valid non-file
// URLs report ok=false.
func Resolve(entry string) (string, bool, error) {
	trimmed := strings.TrimSpace(entry)
	if trimmed == "" {
		return "", false, nil
	}
	if !looksLikeURL(trimmed) {
		return trimmed, true, nil
	}
	return fileref.Translate(trimmed)
}

// Filter splits paths into those matching the supported extensions and the
// rest. Matching is case-insensitive; extensions must carry a leading dot.
func Filter(paths, extensions []string) (matched, rejected []string) {
	allowed := make(map[string]struct{}, len(extensions))
	for _, ext := range extensions {
		allowed[strings.ToLower(ext)] = struct{}{}
	}
	for _, path := range paths {
		ext := strings.ToLower(filepath.Ext(path))
		if _, ok := allowed[ext]; ok {
			matched = append(matched, path)
		} else {
			rejected = append(rejected, path)
		}
	}
	return matched, rejected
}

// Classify reports what a dropped file is, by extension.
func Classify(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".edl":
		return KindCut
	case ".mov":
		return KindMedia
	default:
		return KindOther
	}
}

// SelectPayload enforces the drop rules: exactly one cut description,
// at most one media file, nothing else.
func SelectPayload(paths []string) (Payload, error) {
	var payload Payload
	for _, path := range paths {
		switch Classify(path) {
		case KindCut:
			if payload.Cut != "" {
				return Payload{}, fmt.Errorf("drop contains more than one cut description (%s and %s)", filepath.Base(payload.Cut), filepath.Base(path))
			}
			payload.Cut = path
		case KindMedia:
			if payload.Media != "" {
				return Payload{}, fmt.Errorf("drop contains more than one media file (%s and %s)", filepath.Base(payload.Media), filepath.Base(path))
			}
			payload.Media = path
		default:
			return Payload{}, fmt.Errorf("unsupported file %q in drop", filepath.Base(path))
		}
	}
	if payload.Cut == "" {
		return Payload{}, fmt.Errorf("drop must contain a cut description (.edl)")
	}
	return payload, nil
}

func looksLikeURL(entry string) bool {
	idx := strings.Index(entry, "://")
	if idx <= 0 {
		return strings.HasPrefix(strings.ToLower(entry), "mailto:")
	}
	for _, r := range entry[:idx] {
		isAlpha := (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
		if !isAlpha && !(r >= '0' && r <= '9') && r != '+' && r != '-' && r != '.' {
			return false
		}
	}
	return true
}
