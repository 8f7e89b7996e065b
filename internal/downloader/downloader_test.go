package downloader_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"

	"importcut/internal/downloader"
	"importcut/internal/testsupport"
)

func TestFetchCachesByURL(t *testing.T) {
	var hits atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		fmt.Fprint(w, "thumbnail-bytes")
	}))
	defer server.Close()

	cfg := testsupport.NewConfig(t)
	d := downloader.New(cfg, nil)

	url := server.URL + "/thumbs/shot_010.png"
	path, err := d.Fetch(context.Background(), url)
	if err != nil {
		t.Fatalf("Fetch returned error: %v", err)
	}
	if !strings.HasSuffix(path, ".png") {
		t.Fatalf("cached file %q should keep the url extension", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read cached file: %v", err)
	}
	if string(data) != "thumbnail-bytes" {
		t.Fatalf("unexpected cached contents: %q", data)
	}

	again, err := d.Fetch(context.Background(), url)
	if err != nil {
		t.Fatalf("second Fetch returned error: %v", err)
	}
	if again != path {
		t.Fatalf("cache path changed between fetches: %q vs %q", again, path)
	}
	if hits.Load() != 1 {
		t.Fatalf("expected exactly one server hit, got %d", hits.Load())
	}
}

func TestFetchRejectsErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer server.Close()

	d := downloader.New(testsupport.NewConfig(t), nil)
	if _, err := d.Fetch(context.Background(), server.URL+"/missing.png"); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestFetchAllKeepsInputOrder(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "broken") {
			http.Error(w, "nope", http.StatusInternalServerError)
			return
		}
		fmt.Fprint(w, r.URL.Path)
	}))
	defer server.Close()

	cfg := testsupport.NewConfig(t, testsupport.WithDownloadWorkers(3))
	d := downloader.New(cfg, nil)

	urls := []string{
		server.URL + "/a.png",
		server.URL + "/broken.png",
		server.URL + "/c.png",
	}
	results := d.FetchAll(context.Background(), urls)
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	for i, result := range results {
		if result.URL != urls[i] {
			t.Fatalf("result %d out of order: %q", i, result.URL)
		}
	}
	if results[0].Err != nil || results[2].Err != nil {
		t.Fatalf("unexpected failures: %v / %v", results[0].Err, results[2].Err)
	}
	if results[1].Err == nil {
		t.Fatal("expected failure for broken URL")
	}
}

func TestFetchAllCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "ok")
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	d := downloader.New(testsupport.NewConfig(t), nil)
	results := d.FetchAll(ctx, []string{server.URL + "/a.png", server.URL + "/b.png"})
	for i, result := range results {
		if result.Err == nil {
			t.Fatalf("result %d should carry an error after cancellation", i)
		}
	}
}
