package downloader

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"sync"
	"time"

	"importcut/internal/config"
	"importcut/internal/logging"
)

// Downloader fetches URLs into the cache directory.
type Downloader struct {
	client   *http.Client
	cacheDir string
	workers  int
	logger   *slog.Logger
}

// Result reports the outcome of one download in a batch.
type Result struct {
	URL  string
	Path string
	Err  error
}

// New constructs a downloader from configuration.
func New(cfg *config.Config, logger *slog.Logger) *Downloader {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Downloader{
		client: &http.Client{
			Timeout: time.Duration(cfg.Downloads.TimeoutSeconds) * time.Second,
		},
		cacheDir: cfg.Paths.CacheDir,
		workers:  cfg.Downloads.Workers,
		logger:   logger,
	}
}

// Fetch downloads one URL into the cache and returns the cached file path.
// A file already in the cache is reused without touching the network.
func (d *Downloader) Fetch(ctx context.Context, rawURL string) (string, error) {
	target, err := d.cachePath(rawURL)
	if err != nil {
		return "", err
	}
	if _, statErr := os.Stat(target); statErr == nil {
		d.logger.Debug("thumbnail cache hit", "url", rawURL, "path", target)
		return target, nil
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return "", fmt.Errorf("stat cached file: %w", statErr)
	}

	if err := os.MkdirAll(d.cacheDir, 0o755); err != nil {
		return "", fmt.Errorf("create cache directory: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	resp, err := d.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("download %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("download %s: unexpected status %s", rawURL, resp.Status)
	}

	// Write through a temp file so a cancelled download never leaves a
	// truncated entry behind under the final name.
	tmp, err := os.CreateTemp(d.cacheDir, ".download-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := io.Copy(tmp, resp.Body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("write download: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("close download: %w", err)
	}
	if err := os.Rename(tmpName, target); err != nil {
		_ = os.Remove(tmpName)
		return "", fmt.Errorf("finalize download: %w", err)
	}

	d.logger.Debug("thumbnail downloaded", "url", rawURL, "path", target)
	return target, nil
}

// FetchAll downloads a batch of URLs on a bounded worker pool. Results are
// returned in input order; individual failures do not abort the batch.
func (d *Downloader) FetchAll(ctx context.Context, urls []string) []Result {
	results := make([]Result, len(urls))
	jobs := make(chan int)

	workers := d.workers
	if workers < 1 {
		workers = 1
	}
	if workers > len(urls) {
		workers = len(urls)
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				path, err := d.Fetch(ctx, urls[i])
				results[i] = Result{URL: urls[i], Path: path, Err: err}
			}
		}()
	}

dispatch:
	for i := range urls {
		select {
		case jobs <- i:
		case <-ctx.Done():
			for j := i; j < len(urls); j++ {
				results[j] = Result{URL: urls[j], Err: ctx.Err()}
			}
			break dispatch
		}
	}
	close(jobs)
	wg.Wait()

	return results
}

func (d *Downloader) cachePath(rawURL string) (string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("parse url %q: %w", rawURL, err)
	}
	sum := sha256.Sum256([]byte(rawURL))
	name := hex.EncodeToString(sum[:16])
	if ext := path.Ext(parsed.Path); ext != "" {
		name += ext
	}
	return filepath.Join(d.cacheDir, name), nil
}
