package video

// VideoFile is a validated, read-only metadata record. The only way to get
// one is through NewFile, so holding a *VideoFile means the format check
// has already passed.
type VideoFile struct {
	meta Metadata
}

// NewFile validates the entered metadata and wraps it in a VideoFile.
// It returns an *UnsupportedFormatError if the format is not supported.
func NewFile(meta Metadata) (*VideoFile, error) {
	if !IsSupportedFormat(meta.Format) {
		return nil, &UnsupportedFormatError{Format: meta.Format}
	}
	return &VideoFile{meta: meta}, nil
}

// Metadata returns a copy of the record's fields.
func (v *VideoFile) Metadata() Metadata {
	return v.meta
}

// BitrateMbps calculates the average bitrate in megabits per second from
// the size and duration.
func (v *VideoFile) BitrateMbps() float64 {
	return (v.meta.Size * 8) / (v.meta.Duration * 1e6)
}

// ResolutionName returns the common name for the video's resolution class.
// Both dimensions have to reach a class for it to apply, so a 3840x1000
// video is SD rather than 4K.
func (v *VideoFile) ResolutionName() string {
	switch {
	case v.meta.Width >= 3840 && v.meta.Height >= 2160:
		return "4K"
	case v.meta.Width >= 1920 && v.meta.Height >= 1080:
		return "1080p"
	case v.meta.Width >= 1280 && v.meta.Height >= 720:
		return "720p"
	default:
		return "SD"
	}
}
