package richtext

import "time"

// ConvertOptions holds options for a View.
type ConvertOptions struct {
	Config *RenderConfig
	// Invalidate is called once per logical mutation and once per fade tick.
	Invalidate func()
	Clock      func() time.Time
}

// Option is a function that configures ConvertOptions.
type Option func(*ConvertOptions)

// WithConfig sets a custom RenderConfig.
func WithConfig(config *RenderConfig) Option {
	return func(opts *ConvertOptions) {
		if config != nil {
			opts.Config = config
		}
	}
}

// WithInvalidate sets the redraw request sink.
func WithInvalidate(fn func()) Option {
	return func(opts *ConvertOptions) {
		opts.Invalidate = fn
	}
}

// WithClock sets the time source used to start fades.
func WithClock(clock func() time.Time) Option {
	return func(opts *ConvertOptions) {
		opts.Clock = clock
	}
}

// defaultConvertOptions returns the default options.
func defaultConvertOptions() *ConvertOptions {
	return &ConvertOptions{
		Config: DefaultConfig(),
	}
}

// applyOptions applies the given options to the default options.
func applyOptions(opts ...Option) *ConvertOptions {
	options := defaultConvertOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// DecorationOptions tunes one AddLineDecorations call. Zero fields fall back
// to the View's RenderConfig.
type DecorationOptions struct {
	GapWidth   int
	TextSize   float64
	Radius     float64
	Color      *Color
	Suppressed bool

	// FirstNumber is the ordinal of the first numbered line; nil means 1.
	FirstNumber *int
}

// DecorationOption is a function that configures DecorationOptions.
type DecorationOption func(*DecorationOptions)

// WithGapWidth sets the margin width in pixels.
func WithGapWidth(px int) DecorationOption {
	return func(o *DecorationOptions) { o.GapWidth = px }
}

// WithTextSize sets the number label size.
func WithTextSize(size float64) DecorationOption {
	return func(o *DecorationOptions) { o.TextSize = size }
}

// WithBulletRadius sets the bullet radius.
func WithBulletRadius(r float64) DecorationOption {
	return func(o *DecorationOptions) { o.Radius = r }
}

// WithBulletColor sets the bullet colour.
func WithBulletColor(c Color) DecorationOption {
	return func(o *DecorationOptions) { o.Color = &c }
}

// WithFirstNumber starts numbering at n instead of 1.
func WithFirstNumber(n int) DecorationOption {
	return func(o *DecorationOptions) { o.FirstNumber = &n }
}

// WithSuppressed keeps the margin but never paints.
func WithSuppressed(suppressed bool) DecorationOption {
	return func(o *DecorationOptions) { o.Suppressed = suppressed }
}
