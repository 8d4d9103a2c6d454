package outline

// Synthesize builds the outline of gid from src, applies the requested
// transforms and emits the result into sink. Embolden runs before Oblique,
// so the slanted stems keep a uniform weight.
//
// It returns the bounding box of the emitted outline, control points
// included. If the outline cannot be built nothing is written to sink.
func Synthesize(src Source, gid GlyphID, sink PathSink, opts ...Option) (BBox, error) {
	var cfg synthConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	o, err := Build(src, gid)
	if err != nil {
		return EmptyBBox(), err
	}
	if cfg.embolden {
		o.Embolden(cfg.strength, cfg.opts...)
	}
	if cfg.oblique {
		o.Oblique(cfg.slant)
	}
	o.Emit(sink)
	return o.BBox(), nil
}
