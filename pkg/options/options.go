// Package options holds the configuration surface of the correction
// engine. Every model instance owns an independent copy of the options,
// obtained with New or Clone; the package-level defaults are never
// shared mutable state.
package options

import "spellkit/pkg/verbosity"

// Allowed edit distance by word length for delete-index suggestions.
// Words shorter than 3 or longer than 15 characters are not correctable.
var symspellAllowedDistances = map[int]int{
	3: 1, 4: 1, 5: 1,
	6: 2, 7: 2, 8: 2,
	9: 3, 10: 3, 11: 3, 12: 3, 13: 3, 14: 3, 15: 3,
}

// Allowed edit distance by word length for phonetic suggestions.
// Slightly more permissive than the delete-index table: sharing a
// soundex code is already a strong similarity signal.
var phonemeAllowedDistances = map[int]int{
	3: 1, 4: 2, 5: 2,
	6: 3, 7: 3, 8: 3, 9: 3, 10: 3,
	11: 4, 12: 4, 13: 4, 14: 4, 15: 4,
}

var DefaultOptions = SpellOptions{
	MinWordLength:         3,
	MaxWordLength:         15,
	MaxEditDistance:       3,
	AllowExtraEditAtStart: true,
	AllowExtraEditAtEnd:   true,
	Verbosity:             verbosity.Closest,
}

type SpellOptions struct {
	MinWordLength         int
	MaxWordLength         int
	MaxEditDistance       int
	AllowExtraEditAtStart bool
	AllowExtraEditAtEnd   bool
	Verbosity             verbosity.Verbosity

	// Length-indexed stairstep tables. Nil means the package defaults.
	SymspellDistanceMap map[int]int
	PhonemeDistanceMap  map[int]int
}

// SymspellAllowedDistance returns the allowed edit distance for a
// delete-index candidate given the query length. ok is false for
// lengths outside the correctable range.
func (o SpellOptions) SymspellAllowedDistance(length int) (int, bool) {
	m := o.SymspellDistanceMap
	if m == nil {
		m = symspellAllowedDistances
	}
	d, ok := m[length]
	return d, ok
}

// PhonemeAllowedDistance returns the allowed edit distance for a
// phonetic candidate given the query length.
func (o SpellOptions) PhonemeAllowedDistance(length int) (int, bool) {
	m := o.PhonemeDistanceMap
	if m == nil {
		m = phonemeAllowedDistances
	}
	d, ok := m[length]
	return d, ok
}

// Clone returns an independently allocated copy, including the
// threshold maps.
func (o SpellOptions) Clone() SpellOptions {
	c := o
	if o.SymspellDistanceMap != nil {
		c.SymspellDistanceMap = make(map[int]int, len(o.SymspellDistanceMap))
		for k, v := range o.SymspellDistanceMap {
			c.SymspellDistanceMap[k] = v
		}
	}
	if o.PhonemeDistanceMap != nil {
		c.PhonemeDistanceMap = make(map[int]int, len(o.PhonemeDistanceMap))
		for k, v := range o.PhonemeDistanceMap {
			c.PhonemeDistanceMap[k] = v
		}
	}
	return c
}

// New builds a SpellOptions from the defaults plus the given options.
func New(opts ...Options) SpellOptions {
	o := DefaultOptions.Clone()
	for _, opt := range opts {
		opt.Apply(&o)
	}
	return o
}

type Options interface {
	Apply(options *SpellOptions)
}

type FuncConfig struct {
	ops func(options *SpellOptions)
}

func (w FuncConfig) Apply(conf *SpellOptions) {
	w.ops(conf)
}

func NewFuncOption(f func(options *SpellOptions)) *FuncConfig {
	return &FuncConfig{ops: f}
}

func WithMinWordLength(length int) Options {
	return NewFuncOption(func(options *SpellOptions) {
		options.MinWordLength = length
	})
}

func WithMaxWordLength(length int) Options {
	return NewFuncOption(func(options *SpellOptions) {
		options.MaxWordLength = length
	})
}

func WithMaxEditDistance(maxEditDistance int) Options {
	return NewFuncOption(func(options *SpellOptions) {
		options.MaxEditDistance = maxEditDistance
	})
}

func WithVerbosity(v verbosity.Verbosity) Options {
	return NewFuncOption(func(options *SpellOptions) {
		options.Verbosity = v
	})
}

func WithExtraEditAtStart(allow bool) Options {
	return NewFuncOption(func(options *SpellOptions) {
		options.AllowExtraEditAtStart = allow
	})
}

func WithExtraEditAtEnd(allow bool) Options {
	return NewFuncOption(func(options *SpellOptions) {
		options.AllowExtraEditAtEnd = allow
	})
}

func WithSymspellDistanceMap(m map[int]int) Options {
	return NewFuncOption(func(options *SpellOptions) {
		options.SymspellDistanceMap = m
	})
}

func WithPhonemeDistanceMap(m map[int]int) Options {
	return NewFuncOption(func(options *SpellOptions) {
		options.PhonemeDistanceMap = m
	})
}
