package pipeline

// Config tunes the per-region candidate pipeline.
type Config struct {
	// CropPadding is the margin in pixels added around a detected box
	// before cropping, clamped to the image bounds.
	CropPadding int
	// MinTextLen and MaxTextLen bound the cleaned (alphanumeric-only)
	// length of a raw candidate. Readings outside the bounds are noise
	// fragments too short or too long to plausibly be a plate and are
	// discarded before normalization or scoring.
	MinTextLen int
	MaxTextLen int
}

// DefaultConfig returns the pipeline defaults.
func DefaultConfig() Config {
	return Config{
		CropPadding: 10,
		MinTextLen:  4,
		MaxTextLen:  12,
	}
}

// WithCropPadding returns a copy of the config with a custom crop margin.
func (c Config) WithCropPadding(pad int) Config {
	c.CropPadding = pad
	return c
}

// WithTextLenBounds returns a copy of the config with custom candidate
// length bounds.
func (c Config) WithTextLenBounds(min, max int) Config {
	c.MinTextLen = min
	c.MaxTextLen = max
	return c
}
