// Package corrector ties the three correction engines together: the
// symmetric-delete index and the phonetic index propose per-token
// candidates, and the context model picks the combination that reads
// best across the whole sentence.
package corrector

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"spellkit/internal/contextmodel"
	"spellkit/internal/customdict"
	"spellkit/internal/phoneme"
	"spellkit/internal/symspell"
	"spellkit/pkg/options"
)

// Frequency assigned to user-added vocabulary; high enough that custom
// words always win frequency tie-breaks against corpus words.
const customWordFrequency = 1_000_000_000

type SpellCorrector struct {
	language    string
	opts        options.SpellOptions
	symspell    *symspell.SymSpell
	phoneme     *phoneme.Phoneme
	contextMdl  *contextmodel.Model
	dict        *customdict.CustomDict
	customWords map[string]bool
	loadWarning string
}

// New creates an untrained corrector for the given language. The
// language must have a phonetic code generator; anything else is a
// configuration error, surfaced before any training or query runs.
// dict may be nil when no shared custom dictionary is used.
func New(language string, dict *customdict.CustomDict, opts ...options.Options) (*SpellCorrector, error) {
	if !phoneme.IsSupported(language) {
		return nil, fmt.Errorf("language %q is not supported (supported: %s)",
			language, strings.Join(phoneme.Supported(), ", "))
	}
	return &SpellCorrector{
		language:    language,
		opts:        options.New(opts...),
		dict:        dict,
		customWords: make(map[string]bool),
	}, nil
}

// Language returns the model's language identifier.
func (sc *SpellCorrector) Language() string { return sc.language }

// Options returns a copy of the model's configuration.
func (sc *SpellCorrector) Options() options.SpellOptions { return sc.opts.Clone() }

// Train dispatches on the training-data shape: a []string corpus of raw
// sentences, or a map[string]int word-frequency table. Any other shape
// is an input-validation error.
func (sc *SpellCorrector) Train(data any) error {
	switch d := data.(type) {
	case []string:
		return sc.TrainFromCorpus(d)
	case map[string]int:
		return sc.TrainFromCounts(d)
	default:
		return fmt.Errorf("train data must be []string or map[string]int, got %T", data)
	}
}

// TrainFromCorpus trains all three engines from raw sentences. The
// context model only exists when training starts from sentences, since
// a bare frequency table carries no co-occurrence information.
func (sc *SpellCorrector) TrainFromCorpus(sentences []string) error {
	slog.Debug("training started", "language", sc.language, "sentences", len(sentences))

	cleaned := make([]string, len(sentences))
	for i, s := range sentences {
		cleaned[i] = strings.ToLower(CleanText(s))
	}
	sc.contextMdl = contextmodel.New()
	sc.contextMdl.Train(cleaned)

	counts := make(map[string]int)
	for _, s := range cleaned {
		for _, tok := range strings.Fields(s) {
			counts[tok]++
		}
	}
	return sc.trainIndexes(counts)
}

// TrainFromCounts trains the delete index and the phonetic index from a
// word-frequency table.
func (sc *SpellCorrector) TrainFromCounts(counts map[string]int) error {
	lower := make(map[string]int, len(counts))
	for word, count := range counts {
		lower[strings.ToLower(word)] += count
	}
	return sc.trainIndexes(lower)
}

func (sc *SpellCorrector) trainIndexes(counts map[string]int) error {
	sc.symspell = symspell.New(sc.language, sc.opts)
	sc.symspell.CreateDictionaryFromWords(counts)

	p, err := phoneme.New(sc.language, sc.opts)
	if err != nil {
		return err
	}
	p.Build(counts)
	sc.phoneme = p

	for word := range sc.customWords {
		sc.indexCustomWord(word)
	}
	slog.Debug("training completed", "language", sc.language, "words", len(counts))
	return nil
}

// Trained reports whether the indexes are ready for queries.
func (sc *SpellCorrector) Trained() bool {
	return sc.symspell != nil && sc.phoneme != nil
}

// Suggest returns ranked correction candidates for a single token.
// Tokens outside the correctable length range or containing a digit are
// not spelling errors, and a token either index recognizes as a real
// word needs no correction; all of those yield an empty list, never an
// error.
func (sc *SpellCorrector) Suggest(word string) []Suggestion {
	if !sc.Trained() {
		return nil
	}
	n := len([]rune(word))
	if n < sc.opts.MinWordLength || n > sc.opts.MaxWordLength || containsDigit(word) {
		return nil
	}

	ph := sc.phoneme.SpellCorrect(word)
	if ph.IsCorrect {
		return nil
	}
	sy := sc.symspell.SpellCorrect(word)
	if sy.IsCorrect {
		return nil
	}
	slog.Debug("suggestions", "word", word,
		"phoneme", len(ph.Suggestions), "symspell", len(sy.Suggestions))

	// provenance 0 = phonetic, 1 = delete index; stable sort keeps
	// phonetic candidates ahead on equal distance
	type ranked struct {
		term   string
		dist   int
		source int
	}
	merged := make([]ranked, 0, len(ph.Suggestions)+len(sy.Suggestions))
	for _, s := range ph.Suggestions {
		merged = append(merged, ranked{term: s.Term, dist: s.Distance})
	}
	for _, s := range sy.Suggestions {
		merged = append(merged, ranked{term: s.Term, dist: s.Distance, source: 1})
	}
	sort.SliceStable(merged, func(i, j int) bool {
		if merged[i].dist != merged[j].dist {
			return merged[i].dist < merged[j].dist
		}
		return merged[i].source < merged[j].source
	})

	seen := make(map[string]struct{}, len(merged))
	suggestions := make([]Suggestion, 0, len(merged))
	for _, r := range merged {
		if _, dup := seen[r.term]; dup {
			continue
		}
		seen[r.term] = struct{}{}
		suggestions = append(suggestions, Suggestion{Term: r.term, Distance: r.dist})
	}
	return suggestions
}

// CorrectText corrects a full text: each token is resolved to a
// candidate list, and the context model (when trained) decodes the best
// combination. Each corrected token takes on the casing of the token it
// replaces; punctuation and text outside the corrected tokens are
// preserved.
func (sc *SpellCorrector) CorrectText(text string) CorrectionResult {
	result := CorrectionResult{
		Original:    text,
		Corrected:   text,
		Corrections: map[string]string{},
	}

	clean := CleanText(text)
	suggestions := make(map[string][]string)
	for _, tok := range strings.Fields(clean) {
		lower := strings.ToLower(tok)
		if _, done := suggestions[lower]; done {
			continue
		}
		var terms []string
		for _, s := range sc.Suggest(lower) {
			terms = append(terms, s.Term)
		}
		if len(terms) > 0 {
			suggestions[lower] = terms
		}
	}

	corrected, corrections := sc.contextSuggestion(clean, suggestions)
	if len(corrections) > 0 {
		for orig, repl := range corrections {
			corrections[orig] = matchCase(orig, repl)
		}
		corrected = clean
		for orig, repl := range corrections {
			corrected = replaceToken(corrected, orig, repl)
		}
	}
	result.Corrected = corrected
	result.Corrections = corrections
	return result
}

// contextSuggestion resolves the candidate lattice. Without a trained
// context model each token falls back to its top-ranked suggestion.
func (sc *SpellCorrector) contextSuggestion(text string, suggestions map[string][]string) (string, map[string]string) {
	if sc.contextMdl != nil && len(suggestions) > 0 {
		return sc.contextMdl.SpellCorrect(text, suggestions)
	}

	corrections := make(map[string]string)
	corrected := text
	for _, orig := range strings.Fields(text) {
		terms, ok := suggestions[strings.ToLower(orig)]
		if !ok || len(terms) == 0 || strings.EqualFold(orig, terms[0]) {
			continue
		}
		if _, done := corrections[orig]; done {
			continue
		}
		corrections[orig] = terms[0]
		corrected = replaceToken(corrected, orig, terms[0])
	}
	return corrected, corrections
}

// AddCustomWord registers a user-supplied word as correct vocabulary,
// persisting it to the shared dictionary when one is attached.
func (sc *SpellCorrector) AddCustomWord(ctx context.Context, word string) error {
	lw := strings.ToLower(word)
	if sc.dict != nil {
		if err := sc.dict.Add(ctx, lw); err != nil {
			return fmt.Errorf("storing custom word: %w", err)
		}
	}
	sc.customWords[lw] = true
	sc.indexCustomWord(lw)
	return nil
}

// RemoveCustomWord forgets a user-supplied word again.
func (sc *SpellCorrector) RemoveCustomWord(ctx context.Context, word string) error {
	lw := strings.ToLower(word)
	if sc.dict != nil {
		if err := sc.dict.Remove(ctx, lw); err != nil {
			return fmt.Errorf("removing custom word: %w", err)
		}
	}
	delete(sc.customWords, lw)
	if sc.symspell != nil {
		sc.symspell.Remove(lw)
	}
	if sc.phoneme != nil {
		sc.phoneme.Remove(lw)
	}
	return nil
}

// LoadCustomWords pulls the shared dictionary into the local indexes.
func (sc *SpellCorrector) LoadCustomWords(ctx context.Context) error {
	if sc.dict == nil {
		return nil
	}
	words, err := sc.dict.All(ctx)
	if err != nil {
		return fmt.Errorf("loading custom words: %w", err)
	}
	for _, w := range words {
		lw := strings.ToLower(w)
		sc.customWords[lw] = true
		sc.indexCustomWord(lw)
	}
	slog.Debug("custom words loaded", "count", len(words))
	return nil
}

func (sc *SpellCorrector) indexCustomWord(word string) {
	if sc.symspell != nil {
		sc.symspell.CreateDictionaryEntry(word, customWordFrequency)
	}
	if sc.phoneme != nil && len([]rune(word)) > 2 {
		sc.phoneme.Add(word)
	}
}
