// Package timecode converts between HH:MM:SS:FF timecodes and frame numbers
// for the timecode-to-frame mapping modes the import settings expose.
package timecode

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Timecode is a non-drop-frame timecode value.
type Timecode struct {
	Hours   int
	Minutes int
	Seconds int
	Frames  int
}

// MappingMode selects how a source timecode maps to a target frame number.
type MappingMode int

const (
	// ModeAbsolute maps a timecode to its absolute frame at the frame rate,
	// e.g. 00:00:01:00 at 24fps maps to frame 24.
	ModeAbsolute MappingMode = iota
	// ModeAutomatic maps the earliest source timecode to the head-in frame
	// and everything else relative to it.
	ModeAutomatic
	// ModeRelative maps an explicit base timecode to an explicit base frame.
	ModeRelative
)

// Parse reads a HH:MM:SS:FF timecode. Minutes and seconds must be below 60;
// the frame field is validated against the frame rate by Frame.
func Parse(value string) (Timecode, error) {
	fields := strings.Split(strings.TrimSpace(value), ":")
	if len(fields) != 4 {
		return Timecode{}, fmt.Errorf("invalid timecode %q: expected HH:MM:SS:FF", value)
	}
	numbers := make([]int, 4)
	for i, field := range fields {
		n, err := strconv.Atoi(field)
		if err != nil || n < 0 {
			return Timecode{}, fmt.Errorf("invalid timecode %q: field %q is not a non-negative number", value, field)
		}
		numbers[i] = n
	}
	tc := Timecode{Hours: numbers[0], Minutes: numbers[1], Seconds: numbers[2], Frames: numbers[3]}
	if tc.Minutes > 59 || tc.Seconds > 59 {
		return Timecode{}, fmt.Errorf("invalid timecode %q: minutes and seconds must be below 60", value)
	}
	return tc, nil
}

func (tc Timecode) String() string {
	return fmt.Sprintf("%02d:%02d:%02d:%02d", tc.Hours, tc.Minutes, tc.Seconds, tc.Frames)
}

// Frame returns the absolute frame number for the timecode at the given rate.
func (tc Timecode) Frame(fps float64) (int, error) {
	rate, err := nominalRate(fps)
	if err != nil {
		return 0, err
	}
	if tc.Frames >= rate {
		return 0, fmt.Errorf("timecode %s: frame field %d exceeds rate %d", tc, tc.Frames, rate)
	}
	seconds := tc.Hours*3600 + tc.Minutes*60 + tc.Seconds
	return seconds*rate + tc.Frames, nil
}

// FromFrame converts an absolute frame number back to a timecode.
func FromFrame(frame int, fps float64) (Timecode, error) {
	rate, err := nominalRate(fps)
	if err != nil {
		return Timecode{}, err
	}
	if frame < 0 {
		return Timecode{}, fmt.Errorf("frame %d is negative", frame)
	}
	seconds := frame / rate
	return Timecode{
		Hours:   seconds / 3600,
		Minutes: (seconds % 3600) / 60,
		Seconds: seconds % 60,
		Frames:  frame % rate,
	}, nil
}

// Mapping carries the parameters of a timecode-to-frame conversion.
type Mapping struct {
	Mode MappingMode
	// Base anchors relative modes: in ModeRelative it is the user-supplied
	// timecode/frame pair, in ModeAutomatic the caller sets Base to the
	// earliest source timecode and BaseFrame to the head-in frame.
	Base      Timecode
	BaseFrame int
}

// ToFrame maps a source timecode to a target frame number.
func (m Mapping) ToFrame(tc Timecode, fps float64) (int, error) {
	absolute, err := tc.Frame(fps)
	if err != nil {
		return 0, err
	}
	if m.Mode == ModeAbsolute {
		return absolute, nil
	}
	base, err := m.Base.Frame(fps)
	if err != nil {
		return 0, err
	}
	return m.BaseFrame + (absolute - base), nil
}

func nominalRate(fps float64) (int, error) {
	if fps <= 0 || math.IsNaN(fps) || math.IsInf(fps, 0) {
		return 0, fmt.Errorf("invalid frame rate %v", fps)
	}
	rate := int(math.Round(fps))
	if rate <= 0 {
		return 0, fmt.Errorf("invalid frame rate %v", fps)
	}
	return rate, nil
}
