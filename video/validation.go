package video

import (
	"fmt"
	"strings"
)

// SupportedFormats lists the container formats a record may carry, in the
// form the format field is entered: leading dot included.
var SupportedFormats = []string{".mp4", ".mkv", ".avi", ".mov"}

// IsSupportedFormat checks if the given format is one of the supported
// container formats. The match is exact, so the leading dot is required
// and case matters: ".mp4" is supported, "mp4" and ".MP4" are not.
func IsSupportedFormat(format string) bool {
	for _, v := range SupportedFormats {
		if v == format {
			return true
		}
	}
	return false
}

// UnsupportedFormatError is returned by NewFile when the format field is
// not one of SupportedFormats.
type UnsupportedFormatError struct {
	Format string
}

func (e *UnsupportedFormatError) Error() string {
	names := make([]string, len(SupportedFormats))
	for i, v := range SupportedFormats {
		names[i] = strings.TrimPrefix(v, ".")
	}
	return fmt.Sprintf("Unsupported video format. Supported formats: %s", strings.Join(names, ", "))
}
