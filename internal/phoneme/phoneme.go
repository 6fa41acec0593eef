// Package phoneme buckets vocabulary words by a fixed-length phonetic
// code, so that sound-alike candidates can be found even when their
// edit distance to the query is large.
//
// Two code generators exist: a 10-character Soundex variant for the
// Latin script and an 8-character variant for Indic scripts, driven by
// a per-script character table. The generator is chosen once at
// construction.
package phoneme

import (
	"log/slog"
	"sort"
	"strings"

	"spellkit/pkg/editdist"
	"spellkit/pkg/options"
)

const (
	latinCodeLength = 10
	indicCodeLength = 8
)

type Suggestion struct {
	Term     string
	Distance int
}

type SpellSuggestions struct {
	IsCorrect   bool
	Suggestions []Suggestion
}

type Phoneme struct {
	opts    options.SpellOptions
	script  string
	latin   bool
	table   map[rune]byte // nil for the Latin script
	buckets map[string][]string
}

// Supported returns the supported language identifiers.
func Supported() []string {
	langs := []string{"en"}
	for l := range indicTables {
		langs = append(langs, l)
	}
	sort.Strings(langs)
	return langs
}

// IsSupported reports whether a phonetic code generator exists for the
// given language.
func IsSupported(language string) bool {
	if language == "en" {
		return true
	}
	_, ok := indicTables[language]
	return ok
}

// IsIndic reports whether the language uses the Indic code generator.
func IsIndic(language string) bool {
	_, ok := indicTables[language]
	return ok
}

func New(script string, opts options.SpellOptions) (*Phoneme, error) {
	p := &Phoneme{
		opts:    opts,
		script:  script,
		buckets: make(map[string][]string),
	}
	switch {
	case script == "en":
		p.latin = true
	default:
		table, ok := indicTables[script]
		if !ok {
			return nil, &UnsupportedScriptError{Script: script}
		}
		p.table = table
	}
	return p, nil
}

type UnsupportedScriptError struct {
	Script string
}

func (e *UnsupportedScriptError) Error() string {
	return "unsupported script " + e.Script
}

// Code returns the phonetic code of word, or "" when word is empty.
// The code is a pure function of (word, script): same input, same code.
func (p *Phoneme) Code(word string) string {
	if word == "" {
		return ""
	}
	if p.latin {
		return latinSoundex(word)
	}
	return indicSoundex(word, p.table)
}

// latinSoundex produces the 10-character Latin code: the word's first
// letter verbatim, then the sound-group digit of every following
// letter, collapsing a digit equal to the previously emitted code unit,
// stripping vowel sentinels and right-padding with zeros.
func latinSoundex(word string) string {
	runes := []rune(strings.ToUpper(word))
	var sb strings.Builder
	sb.WriteRune(runes[0])
	prev := string(runes[0])
	for _, r := range runes[1:] {
		code, ok := latinGroups[r]
		if !ok {
			continue
		}
		if code != prev {
			if code != "." {
				sb.WriteString(code)
			}
			prev = code
		}
	}
	return padCode(sb.String(), latinCodeLength)
}

// indicSoundex produces the 8-character Indic code: first character
// verbatim, then table digits for the remaining characters, dropping
// the '0' sentinel and collapsing immediate duplicates.
func indicSoundex(word string, table map[rune]byte) string {
	runes := []rune(strings.ToLower(word))
	var digits []byte
	for _, r := range runes[1:] {
		d, ok := table[r]
		if !ok {
			continue
		}
		if d == '0' {
			continue
		}
		if len(digits) == 0 || digits[len(digits)-1] != d {
			digits = append(digits, d)
		}
	}
	return padCode(string(runes[0])+string(digits), indicCodeLength)
}

func padCode(code string, length int) string {
	runes := []rune(code)
	if len(runes) >= length {
		return string(runes[:length])
	}
	return string(runes) + strings.Repeat("0", length-len(runes))
}

// Build buckets every vocabulary word of length > 2 under its code.
func (p *Phoneme) Build(counts map[string]int) {
	for word := range counts {
		if len([]rune(word)) > 2 {
			p.Add(word)
		}
	}
	slog.Debug("phoneme dictionary created", "script", p.script, "buckets", len(p.buckets))
}

// Add puts a single word into its code bucket.
func (p *Phoneme) Add(word string) {
	code := p.Code(word)
	if code == "" {
		return
	}
	bucket := p.buckets[code]
	if !containsWord(bucket, word) {
		p.buckets[code] = append(bucket, word)
	}
}

// Remove takes a word out of its code bucket.
func (p *Phoneme) Remove(word string) {
	code := p.Code(word)
	bucket, ok := p.buckets[code]
	if !ok {
		return
	}
	for i, w := range bucket {
		if w == word {
			p.buckets[code] = append(bucket[:i], bucket[i+1:]...)
			return
		}
	}
}

// SpellCorrect looks up the word's code bucket. A word found in its own
// bucket is phonetically validated as correct. Otherwise every bucket
// member is ranked by edit distance: Indic scripts trust code-sharing
// and return all members unfiltered, the Latin script filters by the
// phonetic threshold table plus the extend-at-start / extend-at-end
// one-extra-edit rules.
func (p *Phoneme) SpellCorrect(word string) SpellSuggestions {
	code := p.Code(word)
	if code == "" {
		return SpellSuggestions{}
	}
	bucket, ok := p.buckets[code]
	if !ok {
		return SpellSuggestions{}
	}
	if containsWord(bucket, word) {
		return SpellSuggestions{IsCorrect: true}
	}

	if !p.latin {
		suggestions := make([]Suggestion, 0, len(bucket))
		for _, member := range bucket {
			suggestions = append(suggestions, Suggestion{Term: member, Distance: editdist.Distance(word, member)})
		}
		sortSuggestions(suggestions)
		return SpellSuggestions{Suggestions: suggestions}
	}

	wr := []rune(word)
	allowed, ok := p.opts.PhonemeAllowedDistance(len(wr))
	if !ok {
		return SpellSuggestions{}
	}

	var suggestions []Suggestion
	for _, member := range bucket {
		d := editdist.Distance(word, member)
		if d <= allowed {
			suggestions = append(suggestions, Suggestion{Term: member, Distance: d})
			continue
		}
		if d > allowed+1 {
			continue
		}
		mr := []rune(member)
		if p.opts.AllowExtraEditAtStart && mr[0] == wr[0] {
			suggestions = append(suggestions, Suggestion{Term: member, Distance: d})
			continue
		}
		if p.opts.AllowExtraEditAtEnd && mr[len(mr)-1] == wr[len(wr)-1] {
			suggestions = append(suggestions, Suggestion{Term: member, Distance: d})
		}
	}
	sortSuggestions(suggestions)
	return SpellSuggestions{Suggestions: suggestions}
}

func sortSuggestions(suggestions []Suggestion) {
	sort.Slice(suggestions, func(i, j int) bool {
		if suggestions[i].Distance != suggestions[j].Distance {
			return suggestions[i].Distance < suggestions[j].Distance
		}
		return suggestions[i].Term < suggestions[j].Term
	})
}

func containsWord(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}
