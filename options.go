package graph

// Option configures a Driver or a Session during creation.
// Use functional options to customize behavior.
//
// Example:
//
//	// Default: 2000 samples, standard palette, [-10,10] view
//	s := graph.NewSession()
//
//	// Coarser sampling with a custom palette
//	s := graph.NewSession(graph.WithSamples(500), graph.WithPalette(p))
type Option func(*options)

// options holds the shared optional configuration.
type options struct {
	samples  int
	margin   float64
	palette  Palette
	viewport *Viewport
}

// defaultOptions returns the default configuration: the reference
// resolution of 2000 samples per frame, half a viewport width of
// sampling slack on each side, and the standard six-color palette.
func defaultOptions() options {
	return options{
		samples: 2000,
		margin:  0.5,
		palette: DefaultPalette,
	}
}

// WithSamples sets how many x-samples each frame evaluates.
// Values below 2 are ignored.
func WithSamples(n int) Option {
	return func(o *options) {
		if n >= 2 {
			o.samples = n
		}
	}
}

// WithMargin sets the sampling margin as a fraction of the viewport
// width added on each side, so curves extend past the visible edge
// while panning. Negative values are ignored.
func WithMargin(m float64) Option {
	return func(o *options) {
		if m >= 0 {
			o.margin = m
		}
	}
}

// WithPalette sets the color cycle used for curves.
func WithPalette(p Palette) Option {
	return func(o *options) {
		if len(p) > 0 {
			o.palette = p
		}
	}
}

// WithViewport sets the initial viewport of a Session. The Session
// takes ownership of the value. Ignored by NewDriver.
func WithViewport(v *Viewport) Option {
	return func(o *options) {
		if v != nil {
			o.viewport = v
		}
	}
}
