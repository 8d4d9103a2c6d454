package face

// Option configures Parse and Load.
type Option func(*config)

// config holds configuration for Parse.
type config struct {
	parserName string
	index      int
}

// defaultConfig returns the default parse configuration.
func defaultConfig() config {
	return config{
		parserName: defaultParserName, // Default parser (ximage)
		index:      0,
	}
}

// WithParser specifies the font parser backend.
// The default is "ximage" which uses golang.org/x/image/font/sfnt.
//
// Custom parsers can be registered with RegisterParser.
func WithParser(name string) Option {
	return func(c *config) {
		c.parserName = name
	}
}

// WithIndex selects a font within a TrueType/OpenType collection.
// The default is 0.
func WithIndex(i int) Option {
	return func(c *config) {
		c.index = i
	}
}
