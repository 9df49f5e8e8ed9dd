package video

import (
	"fmt"
	"io"
	"os"
)

const (
	kb = 1024
	mb = 1024 * kb
	gb = 1024 * mb
)

// FormatSize renders a byte count with binary units, picking the largest
// unit of GB, MB or KB that fits and falling back to plain bytes below
// 1 KB. The scaled value keeps Go's default float formatting, so whole
// values print without decimals: 2048 becomes "2 KB", not "2.00 KB".
func FormatSize(bytes float64) string {
	switch {
	case bytes >= gb:
		return fmt.Sprintf("%v GB", bytes/gb)
	case bytes >= mb:
		return fmt.Sprintf("%v MB", bytes/mb)
	case bytes >= kb:
		return fmt.Sprintf("%v KB", bytes/kb)
	}
	return fmt.Sprintf("%v bytes", bytes)
}

// FormatDuration renders a duration in seconds as H:MM:SS. Hours are not
// padded, minutes and seconds are. Fractional seconds are dropped.
func FormatDuration(seconds float64) string {
	total := int(seconds)
	hours := total / 3600
	minutes := (total % 3600) / 60
	secs := total % 60
	return fmt.Sprintf("%d:%02d:%02d", hours, minutes, secs)
}

// WriteInfo writes the metadata report to w.
func (v *VideoFile) WriteInfo(w io.Writer) {
	fmt.Fprintf(w, "\n=== Video Information ===\n")
	fmt.Fprintf(w, "Filename: %s%s\n", v.meta.Filename, v.meta.Format)
	fmt.Fprintf(w, "Duration: %s\n", FormatDuration(v.meta.Duration))
	fmt.Fprintf(w, "Size: %s\n", FormatSize(v.meta.Size))
	fmt.Fprintf(w, "Resolution: %dx%d (%s)\n", v.meta.Width, v.meta.Height, v.ResolutionName())
	fmt.Fprintf(w, "Frame Rate: %v fps\n", v.meta.FrameRate)
	fmt.Fprintf(w, "Video Codec: %s\n", v.meta.Codec)
	fmt.Fprintf(w, "Bitrate: %.2f Mbps\n", v.BitrateMbps())
	fmt.Fprintf(w, "=====================\n")
}

// DisplayInfo prints the metadata report to standard output.
func (v *VideoFile) DisplayInfo() {
	v.WriteInfo(os.Stdout)
}
