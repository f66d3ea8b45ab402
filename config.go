package jieba

import "go.uber.org/zap"

// Config collects the tunable knobs of a Segmenter (spec §4.1, §4.5,
// §4.6, §4.10): the maximum dictionary word length the DAG walks, the
// default user-word weight policy, the sentence-splitting separator set,
// and the TextRank window/iteration parameters. NewSegmenter starts from
// defaultConfig and applies each Option on top, so a field no Option
// touches keeps its default.
type Config struct {
	MaxWordRuneLength int
	WeightPolicy      WeightPolicy
	Separators        []rune
	LookupCacheSize   int

	TextRankSpan    int
	TextRankIters   int
	TextRankDamping float64

	Logger *zap.Logger
}

// Option mutates a Config during NewSegmenter (spec §6 "Construction").
type Option func(*Config)

func defaultConfig() Config {
	return Config{
		MaxWordRuneLength: MaxWordRuneLength,
		WeightPolicy:      WeightMedian,
		Separators:        defaultSeparators,
		LookupCacheSize:   0,
		TextRankSpan:      defaultTextRankSpan,
		TextRankIters:     defaultTextRankIters,
		TextRankDamping:   defaultTextRankDamping,
		Logger:            zap.NewNop(),
	}
}

// WithLogger installs a *zap.Logger for decode/diagnostic warnings (spec
// §7 "Diagnostics"). The default is a no-op logger, so the library stays
// silent unless the embedding application opts in.
func WithLogger(log *zap.Logger) Option {
	return func(c *Config) {
		if log != nil {
			c.Logger = log
		}
	}
}

// WithMaxWordRuneLength bounds how many runes the dictionary DAG walk
// considers per candidate word.
func WithMaxWordRuneLength(n int) Option {
	return func(c *Config) { c.MaxWordRuneLength = n }
}

// WithWeightPolicy selects the default weight assigned to a user word
// inserted without an explicit frequency.
func WithWeightPolicy(p WeightPolicy) Option {
	return func(c *Config) { c.WeightPolicy = p }
}

// WithSeparators overrides the default sentence-splitting separator set.
func WithSeparators(seps []rune) Option {
	return func(c *Config) { c.Separators = seps }
}

// WithLookupCacheSize turns on the bounded dictionary lookup cache; size
// <= 0 leaves it disabled.
func WithLookupCacheSize(size int) Option {
	return func(c *Config) { c.LookupCacheSize = size }
}

// WithTextRank overrides the TextRank window span, PageRank iteration
// count, and damping factor.
func WithTextRank(span, iters int, damping float64) Option {
	return func(c *Config) {
		c.TextRankSpan = span
		c.TextRankIters = iters
		c.TextRankDamping = damping
	}
}

// fileConfig mirrors Config's fields for TOML decoding (spec §6
// "Optional file configuration"); LoadConfigFile is opt-in, never required
// to construct a Segmenter.
type fileConfig struct {
	MaxWordRuneLength int     `toml:"max_word_rune_length"`
	WeightPolicy      string  `toml:"weight_policy"`
	Separators        string  `toml:"separators"`
	LookupCacheSize   int     `toml:"lookup_cache_size"`
	TextRankSpan      int     `toml:"text_rank_span"`
	TextRankIters     int     `toml:"text_rank_iters"`
	TextRankDamping   float64 `toml:"text_rank_damping"`
}

func parseWeightPolicy(s string) WeightPolicy {
	switch s {
	case "min":
		return WeightMin
	case "max":
		return WeightMax
	default:
		return WeightMedian
	}
}

// optionsFromFile converts a decoded fileConfig into Options, skipping any
// field left at its TOML zero value so an incomplete config file only
// overrides what it actually sets.
func optionsFromFile(fc fileConfig) []Option {
	var opts []Option
	if fc.MaxWordRuneLength > 0 {
		opts = append(opts, WithMaxWordRuneLength(fc.MaxWordRuneLength))
	}
	if fc.WeightPolicy != "" {
		opts = append(opts, WithWeightPolicy(parseWeightPolicy(fc.WeightPolicy)))
	}
	if fc.Separators != "" {
		opts = append(opts, WithSeparators([]rune(fc.Separators)))
	}
	if fc.LookupCacheSize > 0 {
		opts = append(opts, WithLookupCacheSize(fc.LookupCacheSize))
	}
	if fc.TextRankSpan > 0 || fc.TextRankIters > 0 || fc.TextRankDamping > 0 {
		span, iters, damping := fc.TextRankSpan, fc.TextRankIters, fc.TextRankDamping
		if span <= 0 {
			span = defaultTextRankSpan
		}
		if iters <= 0 {
			iters = defaultTextRankIters
		}
		if damping <= 0 {
			damping = defaultTextRankDamping
		}
		opts = append(opts, WithTextRank(span, iters, damping))
	}
	return opts
}
