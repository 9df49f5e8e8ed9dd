package video

import "fmt"

// Summary is a flat snapshot of a record for machine consumption: the raw
// entered fields plus every derived value the report shows.
type Summary struct {
	Filename       string  `json:"filename"`
	Format         string  `json:"format"`
	DurationSecs   float64 `json:"duration_seconds"`
	Duration       string  `json:"duration"`
	SizeBytes      float64 `json:"size_bytes"`
	Size           string  `json:"size"`
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Resolution     string  `json:"resolution"`
	ResolutionName string  `json:"resolution_name"`
	FrameRate      float64 `json:"frame_rate"`
	Codec          string  `json:"codec"`
	BitrateMbps    float64 `json:"bitrate_mbps"`
}

// Summary builds the snapshot for the record.
func (v *VideoFile) Summary() Summary {
	return Summary{
		Filename:       v.meta.Filename,
		Format:         v.meta.Format,
		DurationSecs:   v.meta.Duration,
		Duration:       FormatDuration(v.meta.Duration),
		SizeBytes:      v.meta.Size,
		Size:           FormatSize(v.meta.Size),
		Width:          v.meta.Width,
		Height:         v.meta.Height,
		Resolution:     fmt.Sprintf("%dx%d", v.meta.Width, v.meta.Height),
		ResolutionName: v.ResolutionName(),
		FrameRate:      v.meta.FrameRate,
		Codec:          v.meta.Codec,
		BitrateMbps:    v.BitrateMbps(),
	}
}
