package video

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// ErrInputClosed is returned by Collect when the input ends before every
// field has been entered.
var ErrInputClosed = errors.New("input closed before all fields were entered")

// collector reads metadata fields line by line, echoing prompts to out.
type collector struct {
	in  *bufio.Reader
	out io.Writer
}

// Collect runs the interactive entry session: it prompts for each metadata
// field on out and reads the answers from in. Text fields take the line as
// typed. Numeric fields have to parse as finite numbers greater than zero
// (whole numbers for the pixel dimensions) and are asked again until they do.
func Collect(in io.Reader, out io.Writer) (Metadata, error) {
	c := &collector{in: bufio.NewReader(in), out: out}
	var meta Metadata
	var err error

	fmt.Fprintln(out, "Enter video information:")

	if meta.Filename, err = c.readLine("Filename (without extension): "); err != nil {
		return Metadata{}, err
	}
	if meta.Format, err = c.readLine("Format (e.g., .mp4, .mkv): "); err != nil {
		return Metadata{}, err
	}
	if meta.Duration, err = c.readPositiveFloat("Duration (in seconds): ", "duration"); err != nil {
		return Metadata{}, err
	}
	if meta.Size, err = c.readPositiveFloat("Size (in bytes): ", "size"); err != nil {
		return Metadata{}, err
	}
	if meta.Width, err = c.readPositiveInt("Width (pixels): ", "width"); err != nil {
		return Metadata{}, err
	}
	if meta.Height, err = c.readPositiveInt("Height (pixels): ", "height"); err != nil {
		return Metadata{}, err
	}
	if meta.FrameRate, err = c.readPositiveFloat("Frame Rate (fps): ", "frame rate"); err != nil {
		return Metadata{}, err
	}
	if meta.Codec, err = c.readLine("Video Codec (e.g., H.264, H.265): "); err != nil {
		return Metadata{}, err
	}

	return meta, nil
}

// readLine prints prompt and returns the next input line without its line
// ending. Lines have no length limit. A final line without a newline still
// counts as a line.
func (c *collector) readLine(prompt string) (string, error) {
	fmt.Fprint(c.out, prompt)
	line, err := c.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		if line == "" {
			return "", ErrInputClosed
		}
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

// readPositiveFloat keeps prompting until the line parses as a finite
// number greater than zero. ParseFloat also accepts "Inf" and "NaN"
// spellings, neither is a usable field value. The retry prompt names the
// field being asked for.
func (c *collector) readPositiveFloat(prompt, field string) (float64, error) {
	for p := prompt; ; p = "Please enter a valid " + field + ": " {
		line, err := c.readLine(p)
		if err != nil {
			return 0, err
		}
		value, err := strconv.ParseFloat(strings.TrimSpace(line), 64)
		if err == nil && value > 0 && !math.IsInf(value, 0) {
			return value, nil
		}
	}
}

// readPositiveInt is readPositiveFloat for whole numbers.
func (c *collector) readPositiveInt(prompt, field string) (int, error) {
	for p := prompt; ; p = "Please enter a valid " + field + ": " {
		line, err := c.readLine(p)
		if err != nil {
			return 0, err
		}
		value, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil && value > 0 {
			return value, nil
		}
	}
}
