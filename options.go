package outline

// EmboldenOption configures a single Embolden call.
//
// Example:
//
//	// Split only corners sharper than 150°
//	o.Embolden(20, outline.WithCornerPolicy(outline.CornerPolicy{
//	    SharpConvexCos:  -0.866,
//	    SharpConcaveCos: 0,
//	}))
type EmboldenOption func(*emboldenConfig)

// emboldenConfig holds optional configuration for Embolden.
type emboldenConfig struct {
	policy CornerPolicy
}

// defaultEmboldenConfig returns the default embolden configuration.
func defaultEmboldenConfig() emboldenConfig {
	return emboldenConfig{policy: DefaultCornerPolicy()}
}

// WithCornerPolicy overrides the corner thresholds used by Embolden.
func WithCornerPolicy(p CornerPolicy) EmboldenOption {
	return func(c *emboldenConfig) {
		c.policy = p
	}
}

// Option configures Synthesize.
//
// Example:
//
//	// Bold italic, written straight into a rasterizer
//	bbox, err := outline.Synthesize(font, gid, rasterizer,
//	    outline.WithEmbolden(outline.DefaultEmboldenStrength),
//	    outline.WithOblique(outline.DefaultSlant))
type Option func(*synthConfig)

// synthConfig holds the transforms requested from Synthesize.
type synthConfig struct {
	embolden bool
	strength float32
	oblique  bool
	slant    float32
	opts     []EmboldenOption
}

// WithEmbolden requests an Embolden pass with the given strength.
func WithEmbolden(strength float32) Option {
	return func(c *synthConfig) {
		c.embolden = true
		c.strength = strength
	}
}

// WithOblique requests an Oblique pass with the given slant.
func WithOblique(slant float32) Option {
	return func(c *synthConfig) {
		c.oblique = true
		c.slant = slant
	}
}

// WithEmboldenOptions passes options through to the Embolden pass.
func WithEmboldenOptions(opts ...EmboldenOption) Option {
	return func(c *synthConfig) {
		c.opts = append(c.opts, opts...)
	}
}
