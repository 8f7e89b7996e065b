// Package downloader fetches card thumbnails into a local cache.
//
// The import flow shows thumbnails for projects, entities, and cuts; their
// attachment URLs are downloaded on a bounded worker pool and cached
// content-addressed by URL so repeated views never re-fetch. Downloads honor
// context cancellation and the configured per-request timeout.
package downloader
