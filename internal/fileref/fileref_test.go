package fileref_test

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"testing"

	"importcut/internal/fileref"
)

func TestTranslateFileURL(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX path expectations")
	}

	cases := []struct {
		name string
		url  string
		want string
	}{
		{"plain", "file:///Users/name/movie.mov", "/Users/name/movie.mov"},
		{"percent encoded", "file:///Users/name/My%20Movie.mov", "/Users/name/My Movie.mov"},
		{"localhost authority", "file://localhost/Users/name/movie.mov", "/Users/name/movie.mov"},
		{"uppercase scheme", "FILE:///tmp/cut.edl", "/tmp/cut.edl"},
		{"encoded utf8", "file:///exports/s%C3%A9quence.edl", "/exports/séquence.edl"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok, err := fileref.Translate(tc.url)
			if err != nil {
				t.Fatalf("Translate(%q) returned error: %v", tc.url, err)
			}
			if !ok {
				t.Fatalf("Translate(%q) produced no result", tc.url)
			}
			if got != tc.want {
				t.Fatalf("Translate(%q) = %q, want %q", tc.url, got, tc.want)
			}
		})
	}
}

func TestTranslateMalformed(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"not a url", "not a url at all"},
		{"trailing garbage", "file:///Users/name/movie.mov garbage"},
		{"bare path", "/Users/name/movie.mov"},
		{"embedded newline", "file:///tmp/a\nfile:///tmp/b"},
		{"bad percent escape", "file:///tmp/bad%zzname.mov"},
		{"missing scheme", "example.com/movie.mov"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok, err := fileref.Translate(tc.url)
			if err == nil {
				t.Fatalf("Translate(%q) succeeded (ok=%v), want malformed error", tc.url, ok)
			}
			var malformed *fileref.MalformedURLError
			if !errors.As(err, &malformed) {
				t.Fatalf("Translate(%q) error type %T, want *MalformedURLError", tc.url, err)
			}
			if malformed.Input != tc.url {
				t.Fatalf("error carries input %q, want %q", malformed.Input, tc.url)
			}
			wantMsg := fmt.Sprintf("malformed url: '%s'", tc.url)
			if err.Error() != wantMsg {
				t.Fatalf("error message %q, want %q", err.Error(), wantMsg)
			}
		})
	}
}

func TestTranslateNoResult(t *testing.T) {
	cases := []struct {
		name string
		url  string
	}{
		{"http", "http://example.com/movie.mov"},
		{"https", "https://studio.example.com/attachments/42"},
		{"mailto", "mailto:editor@example.com"},
		{"empty file url", "file://"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path, ok, err := fileref.Translate(tc.url)
			if err != nil {
				t.Fatalf("Translate(%q) returned error: %v", tc.url, err)
			}
			if ok || path != "" {
				t.Fatalf("Translate(%q) = (%q, %v), want no result", tc.url, path, ok)
			}
		})
	}
}

func TestTranslateRemoteAuthority(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("remote authorities resolve to UNC paths on windows")
	}
	path, ok, err := fileref.Translate("file://fileserver/exports/cut.edl")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok {
		t.Fatalf("expected no result for remote authority, got %q", path)
	}
}

func TestURLFromPathRoundTrip(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX path expectations")
	}
	paths := []string{
		"/Users/name/movie.mov",
		"/Users/name/My Movie.mov",
		"/exports/séquence v2.edl",
	}
	for _, p := range paths {
		u := fileref.URLFromPath(p)
		got, ok, err := fileref.Translate(u)
		if err != nil {
			t.Fatalf("Translate(URLFromPath(%q)) returned error: %v", p, err)
		}
		if !ok || got != p {
			t.Fatalf("round trip for %q via %q produced (%q, %v)", p, u, got, ok)
		}
	}
}

func TestTranslateConcurrent(t *testing.T) {
	const callers = 32
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			url := fmt.Sprintf("file:///projects/show/shot_%03d.mov", n)
			want := fmt.Sprintf("/projects/show/shot_%03d.mov", n)
			if runtime.GOOS == "windows" {
				return
			}
			for j := 0; j < 100; j++ {
				got, ok, err := fileref.Translate(url)
				if err != nil || !ok || got != want {
					t.Errorf("caller %d iteration %d: got (%q, %v, %v)", n, j, got, ok, err)
					return
				}
			}
		}(i)
	}
	wg.Wait()
}
