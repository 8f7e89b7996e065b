package importer

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"importcut/internal/config"
	"importcut/internal/dropped"
	"importcut/internal/history"
	"importcut/internal/logging"
	"importcut/internal/usersettings"
)

// Importer processes drop payloads into recorded import sessions.
type Importer struct {
	cfg      *config.Config
	store    *history.Store
	settings usersettings.Settings
	logger   *slog.Logger
}

// New constructs an importer. The history store may be nil, in which case
// sessions are processed but not recorded.
func New(cfg *config.Config, store *history.Store, settings usersettings.Settings, logger *slog.Logger) *Importer {
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Importer{cfg: cfg, store: store, settings: settings, logger: logger}
}

// ProcessDrop translates drop entries, enforces the drop policies, and
// records the resulting session.
func (im *Importer) ProcessDrop(ctx context.Context, entries []string) (*history.Session, error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("drop is empty")
	}
	if im.cfg.Import.SingleDrop && len(entries) > 1 {
		return nil, fmt.Errorf("please drop only one file at a time (got %d)", len(entries))
	}

	sources := make(map[string]string, len(entries))
	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		path, ok, err := dropped.Resolve(entry)
		if err != nil {
			return nil, err
		}
		if !ok {
			im.logger.Debug("ignoring non-file drop entry", "entry", entry)
			continue
		}
		sources[path] = entry
		paths = append(paths, path)
	}

	matched, rejected := dropped.Filter(paths, im.cfg.Import.SupportedExtensions)
	for _, path := range rejected {
		im.logger.Warn("ignoring unsupported file", "path", path)
	}
	if len(matched) == 0 {
		return nil, fmt.Errorf("drop contains no supported files (accepted: %s)", strings.Join(im.cfg.Import.SupportedExtensions, ", "))
	}

	payload, err := dropped.SelectPayload(matched)
	if err != nil {
		return nil, err
	}

	frameRate := im.settings.DefaultFrameRate
	if frameRate <= 0 {
		frameRate = im.cfg.Import.DefaultFrameRate
	}

	session := history.Session{
		DisplayName: dropped.DisplayName(payload.Cut),
		SourceURL:   sources[payload.Cut],
		CutPath:     payload.Cut,
		MediaPath:   payload.Media,
		FrameRate:   frameRate,
	}
	if session.SourceURL == payload.Cut {
		// The entry was already a plain path; no URL worth recording.
		session.SourceURL = ""
	}

	if im.store == nil {
		return &session, nil
	}
	recorded, err := im.store.Record(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("record session: %w", err)
	}
	im.logger.Info("import session recorded",
		"session", recorded.ID,
		"cut", filepath.Base(recorded.CutPath),
		"frame_rate", recorded.FrameRate,
	)
	return recorded, nil
}
