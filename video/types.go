package video

// Metadata contains the raw values entered for a single video file.
// Numeric fields are checked to be strictly positive during collection,
// text fields are kept exactly as typed (empty is allowed).
type Metadata struct {
	Filename  string
	Format    string
	Duration  float64 // seconds
	Size      float64 // bytes
	Width     int
	Height    int
	FrameRate float64
	Codec     string
}
