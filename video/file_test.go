package video

import (
	"encoding/json"
	"errors"
	"testing"
)

// sampleMetadata returns a valid record for tests to tweak.
func sampleMetadata() Metadata {
	return Metadata{
		Filename:  "movie",
		Format:    ".mp4",
		Duration:  3661,
		Size:      104857600,
		Width:     1920,
		Height:    1080,
		FrameRate: 29.97,
		Codec:     "H.264",
	}
}

func TestNewFile(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"MP4 accepted", ".mp4", false},
		{"MKV accepted", ".mkv", false},
		{"AVI accepted", ".avi", false},
		{"MOV accepted", ".mov", false},
		{"WMV rejected", ".wmv", true},
		{"Missing dot rejected", "mp4", true},
		{"Uppercase rejected", ".MP4", true},
		{"Empty rejected", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := sampleMetadata()
			meta.Format = tt.format

			file, err := NewFile(meta)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("NewFile with format %q succeeded, expected error", tt.format)
				}
				var formatErr *UnsupportedFormatError
				if !errors.As(err, &formatErr) {
					t.Errorf("NewFile error = %T, expected *UnsupportedFormatError", err)
				} else if formatErr.Format != tt.format {
					t.Errorf("error Format = %q, expected %q", formatErr.Format, tt.format)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewFile with format %q failed: %v", tt.format, err)
			}
			if file == nil {
				t.Fatal("NewFile returned nil file without error")
			}
			if got := file.Metadata(); got != meta {
				t.Errorf("Metadata() = %+v, expected %+v", got, meta)
			}
		})
	}
}

func TestBitrateMbps(t *testing.T) {
	tests := []struct {
		name     string
		size     float64
		duration float64
		expected float64
	}{
		{"One megabit per second", 1e6, 8, 1},
		{"Eight megabits per second", 1e6, 1, 8},
		{"Fractional result", 104857600, 3661, 104857600 * 8 / (3661 * 1e6)},
		{"Small file", 500, 10, 0.0004},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := sampleMetadata()
			meta.Size = tt.size
			meta.Duration = tt.duration

			file, err := NewFile(meta)
			if err != nil {
				t.Fatalf("NewFile failed: %v", err)
			}
			if got := file.BitrateMbps(); got != tt.expected {
				t.Errorf("BitrateMbps() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestResolutionName(t *testing.T) {
	tests := []struct {
		name     string
		width    int
		height   int
		expected string
	}{
		// Standard resolutions
		{"4K", 3840, 2160, "4K"},
		{"1080p", 1920, 1080, "1080p"},
		{"720p", 1280, 720, "720p"},
		{"SD", 640, 480, "SD"},

		// Both dimensions have to reach the class
		{"Wide but short", 3840, 1000, "SD"},
		{"4K width 1080p height", 3840, 1080, "1080p"},
		{"Tall but narrow", 1280, 2160, "720p"},
		{"1080p width SD height", 1920, 600, "SD"},

		// Above and between thresholds
		{"Larger than 4K", 7680, 4320, "4K"},
		{"Between 1080p and 4K", 2560, 1440, "1080p"},
		{"Just below 720p", 1279, 720, "SD"},
		{"Tiny", 1, 1, "SD"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := sampleMetadata()
			meta.Width = tt.width
			meta.Height = tt.height

			file, err := NewFile(meta)
			if err != nil {
				t.Fatalf("NewFile failed: %v", err)
			}
			if got := file.ResolutionName(); got != tt.expected {
				t.Errorf("ResolutionName() for %dx%d = %q, expected %q", tt.width, tt.height, got, tt.expected)
			}
		})
	}
}

func TestSummary(t *testing.T) {
	file, err := NewFile(sampleMetadata())
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}

	summary := file.Summary()

	if summary.Filename != "movie" || summary.Format != ".mp4" {
		t.Errorf("Summary identity = %q/%q, expected movie/.mp4", summary.Filename, summary.Format)
	}
	if summary.Duration != "1:01:01" {
		t.Errorf("Summary.Duration = %q, expected %q", summary.Duration, "1:01:01")
	}
	if summary.Size != "100 MB" {
		t.Errorf("Summary.Size = %q, expected %q", summary.Size, "100 MB")
	}
	if summary.Resolution != "1920x1080" {
		t.Errorf("Summary.Resolution = %q, expected %q", summary.Resolution, "1920x1080")
	}
	if summary.ResolutionName != "1080p" {
		t.Errorf("Summary.ResolutionName = %q, expected %q", summary.ResolutionName, "1080p")
	}
	if summary.BitrateMbps != file.BitrateMbps() {
		t.Errorf("Summary.BitrateMbps = %v, expected %v", summary.BitrateMbps, file.BitrateMbps())
	}
	if summary.DurationSecs != 3661 || summary.SizeBytes != 104857600 {
		t.Errorf("Summary raw values = %v/%v, expected 3661/104857600", summary.DurationSecs, summary.SizeBytes)
	}
}

func TestSummaryJSONKeys(t *testing.T) {
	file, err := NewFile(sampleMetadata())
	if err != nil {
		t.Fatalf("NewFile failed: %v", err)
	}

	data, err := json.Marshal(file.Summary())
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var decoded map[string]any
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}

	// The key names are a contract for downstream consumers.
	keys := []string{
		"filename", "format",
		"duration_seconds", "duration",
		"size_bytes", "size",
		"width", "height", "resolution", "resolution_name",
		"frame_rate", "codec", "bitrate_mbps",
	}
	for _, key := range keys {
		if _, ok := decoded[key]; !ok {
			t.Errorf("marshalled summary is missing key %q", key)
		}
	}
	if len(decoded) != len(keys) {
		t.Errorf("marshalled summary has %d keys, expected %d", len(decoded), len(keys))
	}

	if decoded["duration"] != "1:01:01" {
		t.Errorf("duration key = %v, expected %q", decoded["duration"], "1:01:01")
	}
	if decoded["size"] != "100 MB" {
		t.Errorf("size key = %v, expected %q", decoded["size"], "100 MB")
	}
}
