package usersettings

import (
	"fmt"
	"slices"
	"strings"

	"importcut/internal/timecode"
)

// Mapping mode names accepted in the settings file.
const (
	MappingAbsolute  = "absolute"
	MappingAutomatic = "automatic"
	MappingRelative  = "relative"
)

// Settings holds the per-user import preferences.
type Settings struct {
	UpdateShotStatuses      bool     `toml:"update_shot_statuses"`
	UseSmartFields          bool     `toml:"use_smart_fields"`
	EmailGroups             []string `toml:"email_groups"`
	OmitStatus              string   `toml:"omit_status"`
	ReinstateStatus         string   `toml:"reinstate_status"`
	ReinstateShotIfStatusIs []string `toml:"reinstate_shot_if_status_is"`
	DefaultFrameRate        float64  `toml:"default_frame_rate"`
	TimecodeMappingMode     string   `toml:"timecode_to_frame_mapping"`
	TimecodeMapping         string   `toml:"timecode_mapping"`
	FrameMapping            int      `toml:"frame_mapping"`
	DefaultHeadIn           int      `toml:"default_head_in"`
	DefaultHeadDuration     int      `toml:"default_head_duration"`
	DefaultTailDuration     int      `toml:"default_tail_duration"`
	PreloadEntityType       string   `toml:"preload_entity_type"`
}

// Default returns the settings every new user starts from.
func Default() Settings {
	return Settings{
		UpdateShotStatuses:      true,
		UseSmartFields:          false,
		EmailGroups:             []string{},
		OmitStatus:              "omt",
		ReinstateStatus:         "Previous Status",
		ReinstateShotIfStatusIs: []string{"omt", "hld"},
		DefaultFrameRate:        24,
		TimecodeMappingMode:     MappingAbsolute,
		TimecodeMapping:         "00:00:00:00",
		FrameMapping:            1000,
		DefaultHeadIn:           1001,
		DefaultHeadDuration:     8,
		DefaultTailDuration:     8,
	}
}

// Validate rejects settings the import flow cannot act on.
func (s Settings) Validate() error {
	if s.DefaultFrameRate <= 0 {
		return fmt.Errorf("default_frame_rate: %v must be positive", s.DefaultFrameRate)
	}
	switch s.TimecodeMappingMode {
	case MappingAbsolute, MappingAutomatic, MappingRelative:
	default:
		return fmt.Errorf("timecode_to_frame_mapping: unsupported mode %q", s.TimecodeMappingMode)
	}
	if _, err := timecode.Parse(s.TimecodeMapping); err != nil {
		return fmt.Errorf("timecode_mapping: %w", err)
	}
	if s.DefaultHeadIn < 0 {
		return fmt.Errorf("default_head_in: %d must not be negative", s.DefaultHeadIn)
	}
	if s.DefaultHeadDuration < 0 || s.DefaultTailDuration < 0 {
		return fmt.Errorf("head/tail durations must not be negative")
	}
	return nil
}

// Mapping builds the timecode-to-frame mapping the settings describe.
func (s Settings) Mapping() (timecode.Mapping, error) {
	base, err := timecode.Parse(s.TimecodeMapping)
	if err != nil {
		return timecode.Mapping{}, fmt.Errorf("timecode_mapping: %w", err)
	}
	switch s.TimecodeMappingMode {
	case MappingAbsolute:
		return timecode.Mapping{Mode: timecode.ModeAbsolute}, nil
	case MappingAutomatic:
		return timecode.Mapping{Mode: timecode.ModeAutomatic, BaseFrame: s.DefaultHeadIn}, nil
	case MappingRelative:
		return timecode.Mapping{Mode: timecode.ModeRelative, Base: base, BaseFrame: s.FrameMapping}, nil
	default:
		return timecode.Mapping{}, fmt.Errorf("unsupported mapping mode %q", s.TimecodeMappingMode)
	}
}

// RestartRequired reports whether switching from old to updated settings
// needs an import flow relaunch. Only a subset of keys forces a restart.
func RestartRequired(old, updated Settings) bool {
	switch {
	case old.UpdateShotStatuses != updated.UpdateShotStatuses,
		old.UseSmartFields != updated.UseSmartFields,
		old.OmitStatus != updated.OmitStatus,
		old.TimecodeMapping != updated.TimecodeMapping,
		!slices.Equal(old.ReinstateShotIfStatusIs, updated.ReinstateShotIfStatusIs),
		old.TimecodeMappingMode != updated.TimecodeMappingMode,
		old.DefaultFrameRate != updated.DefaultFrameRate,
		old.FrameMapping != updated.FrameMapping,
		old.DefaultHeadIn != updated.DefaultHeadIn,
		old.DefaultHeadDuration != updated.DefaultHeadDuration,
		old.DefaultTailDuration != updated.DefaultTailDuration:
		return true
	}
	return false
}

func (s *Settings) normalize() {
	s.TimecodeMappingMode = strings.ToLower(strings.TrimSpace(s.TimecodeMappingMode))
	if s.TimecodeMappingMode == "" {
		s.TimecodeMappingMode = MappingAbsolute
	}
	if s.EmailGroups == nil {
		s.EmailGroups = []string{}
	}
	if s.ReinstateShotIfStatusIs == nil {
		s.ReinstateShotIfStatusIs = Default().ReinstateShotIfStatusIs
	}
	if s.TimecodeMapping == "" {
		s.TimecodeMapping = Default().TimecodeMapping
	}
	if s.DefaultFrameRate == 0 {
		s.DefaultFrameRate = Default().DefaultFrameRate
	}
}
