package interp

// Option configures one Interpret call.
type Option func(*config)

type config struct {
	stdin string
	debug bool
	cache *Cache
}

// WithStdin supplies the text available to the program as stdin.
func WithStdin(s string) Option {
	return func(c *config) { c.stdin = s }
}

// WithDebug requests the "-d" debug dump: a banner, the preprocessed
// source, and the parsed tree, before evaluation begins.
func WithDebug() Option {
	return func(c *config) { c.debug = true }
}

// WithCache supplies a parsed-AST cache so repeated calls on the same
// preprocessed source skip re-parsing.
func WithCache(c *Cache) Option {
	return func(cfg *config) { cfg.cache = c }
}
