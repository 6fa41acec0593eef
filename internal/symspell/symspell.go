// Package symspell implements a symmetric-delete spelling dictionary.
//
// During training every vocabulary word is indexed under all strings
// reachable by deleting up to a few characters from it. A lookup then
// only has to generate deletions of the query and probe the index,
// instead of comparing the query against the whole vocabulary.
package symspell

import (
	"log/slog"
	"math"
	"sort"

	"spellkit/pkg/editdist"
	"spellkit/pkg/options"
	"spellkit/pkg/verbosity"
)

// Entry is one slot of the delete index. Suggestions holds the real
// corpus words that reduce to this key by deletion; Count is the key's
// own corpus frequency. Count > 0 marks the key itself as a real word.
// The two facts are independent: a real word can also be a deletion
// target of longer words, in the same entry.
type Entry struct {
	Suggestions []string
	Count       int
}

type SuggestItem struct {
	Term     string
	Distance int
	Count    int
}

type SpellSuggestions struct {
	IsCorrect   bool
	Suggestions []SuggestItem
}

type SymSpell struct {
	opts              options.SpellOptions
	script            string
	dictionary        map[string]*Entry
	longestWordLength int
}

func New(script string, opts options.SpellOptions) *SymSpell {
	return &SymSpell{
		opts:       opts,
		script:     script,
		dictionary: make(map[string]*Entry),
	}
}

// deletesFor derives all distinct strings obtainable from w by deleting
// between 1 and depth characters, where depth depends on the word
// length: 3 chars allow 1 delete, 4-5 allow 2, 6-14 allow 3. Words of
// length 2 or less are too short and words of 15 or more too long, so
// neither generates deletions.
func deletesFor(w string) []string {
	var depth int
	switch n := len([]rune(w)); {
	case n <= 2:
		return nil
	case n == 3:
		depth = 1
	case n <= 5:
		depth = 2
	case n <= 14:
		depth = 3
	default:
		return nil
	}

	seen := make(map[string]struct{})
	var deletes []string
	queue := []string{w}
	for d := 0; d < depth; d++ {
		var next []string
		for _, word := range queue {
			runes := []rune(word)
			if len(runes) <= 1 {
				continue
			}
			for c := range runes {
				minus := string(runes[:c]) + string(runes[c+1:])
				if _, ok := seen[minus]; ok {
					continue
				}
				seen[minus] = struct{}{}
				deletes = append(deletes, minus)
				next = append(next, minus)
			}
		}
		queue = next
	}
	return deletes
}

// CreateDictionaryEntry records w with the given corpus count and, if w
// is a real word, indexes all of its deletions. A count <= 0 increments
// the stored frequency instead of overwriting it, which supports
// incremental counting from raw sentences. Returns whether this call
// made w a newly known real word.
func (s *SymSpell) CreateDictionaryEntry(w string, count int) bool {
	e, ok := s.dictionary[w]
	if ok {
		if count > 0 {
			e.Count = count
		} else {
			e.Count++
		}
	} else {
		c := count
		if c <= 0 {
			c = 1
		}
		e = &Entry{Count: c}
		s.dictionary[w] = e
		if n := len([]rune(w)); n > s.longestWordLength {
			s.longestWordLength = n
		}
	}

	if e.Count <= 0 {
		return false
	}
	for _, d := range deletesFor(w) {
		de, found := s.dictionary[d]
		if !found {
			// pure deletion-derived key: frequency stays zero
			s.dictionary[d] = &Entry{Suggestions: []string{w}}
			continue
		}
		if !containsWord(de.Suggestions, w) {
			de.Suggestions = append(de.Suggestions, w)
		}
	}
	return !ok
}

// CreateDictionaryFromWords builds the index from a word-frequency
// table.
func (s *SymSpell) CreateDictionaryFromWords(counts map[string]int) {
	unique := 0
	for word, count := range counts {
		if s.CreateDictionaryEntry(word, count) {
			unique++
		}
	}
	slog.Debug("symspell dictionary created",
		"words", unique,
		"entries", len(s.dictionary),
		"longest_word_length", s.longestWordLength)
}

// IsWord reports whether w is a real corpus word (frequency > 0).
func (s *SymSpell) IsWord(w string) bool {
	e, ok := s.dictionary[w]
	return ok && e.Count > 0
}

// Remove unmarks w as a real corpus word. Deletion keys pointing at w
// are left in place; they are rebuilt on the next training pass.
func (s *SymSpell) Remove(w string) {
	if e, ok := s.dictionary[w]; ok {
		e.Count = 0
	}
}

// LongestWordLength returns the length of the longest indexed word.
func (s *SymSpell) LongestWordLength() int { return s.longestWordLength }

// Lookup returns ranked correction candidates for word, searching
// breadth-first through the query's own deletions. Each visited string
// present in the index contributes itself (when it is a real word) and
// every real word attached to its suggestion list; the latter need a
// true edit-distance computation since they may be reached through an
// asymmetric deletion path.
//
// Under verbosity.Top and verbosity.Closest the search prunes branches
// that cannot improve on the best distance found so far; verbosity.All
// explores the whole bounded space.
func (s *SymSpell) Lookup(word string, verb verbosity.Verbosity, maxEditDistance int) []SuggestItem {
	wordLen := len([]rune(word))
	if wordLen-s.longestWordLength > maxEditDistance {
		return nil
	}

	type meta struct{ count, dist int }
	found := make(map[string]meta)
	minSuggestLen := math.MaxInt
	prune := verb != verbosity.All

	queue := []string{word}
	visited := map[string]struct{}{word: {}}

	for len(queue) > 0 {
		item := queue[0]
		queue = queue[1:]
		itemLen := len([]rune(item))

		if prune && len(found) > 0 && wordLen-itemLen > minSuggestLen {
			break
		}

		if e, ok := s.dictionary[item]; ok {
			if e.Count > 0 {
				if _, seen := found[item]; !seen {
					// deletes of the query are never longer than it
					d := wordLen - itemLen
					found[item] = meta{count: e.Count, dist: d}
					if prune && d == 0 {
						break
					}
					if d < minSuggestLen {
						minSuggestLen = d
					}
				}
			}
			for _, sc := range e.Suggestions {
				if _, seen := found[sc]; seen {
					continue
				}
				se, ok := s.dictionary[sc]
				if !ok || se.Count <= 0 {
					// suggestion target was removed since indexing
					continue
				}
				d := editdist.Distance(sc, word)
				if prune && d > minSuggestLen {
					continue
				}
				if d <= maxEditDistance {
					found[sc] = meta{count: se.Count, dist: d}
					if d < minSuggestLen {
						minSuggestLen = d
					}
				}
			}
			if prune {
				for k, m := range found {
					if m.dist > minSuggestLen {
						delete(found, k)
					}
				}
			}
		}

		if prune && len(found) > 0 && wordLen-itemLen > minSuggestLen {
			continue
		}
		if wordLen-itemLen < maxEditDistance && itemLen > 1 {
			runes := []rune(item)
			for c := range runes {
				minus := string(runes[:c]) + string(runes[c+1:])
				if _, ok := visited[minus]; !ok {
					visited[minus] = struct{}{}
					queue = append(queue, minus)
				}
			}
		}
	}

	out := make([]SuggestItem, 0, len(found))
	for term, m := range found {
		out = append(out, SuggestItem{Term: term, Distance: m.dist, Count: m.count})
	}
	// distance ascending, then frequency descending; the term tie-break
	// keeps results deterministic across map iteration orders
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Term < out[j].Term
	})
	if verb == verbosity.Top && len(out) > 1 {
		out = out[:1]
	}
	return out
}

// SpellCorrect reports whether word is already a known corpus word and,
// if not, returns lookup candidates filtered by the length-indexed
// threshold table. Candidates one edit above the threshold are still
// admitted when they share the query's first character (extend at
// start) or last character (extend at end); those admissions are
// appended after the primary ones, in first-seen order, without
// duplicates.
func (s *SymSpell) SpellCorrect(word string) SpellSuggestions {
	if s.IsWord(word) {
		return SpellSuggestions{IsCorrect: true}
	}

	items := s.Lookup(word, s.opts.Verbosity, s.opts.MaxEditDistance)
	if len(items) == 0 {
		return SpellSuggestions{}
	}

	wr := []rune(word)
	allowed, ok := s.opts.SymspellAllowedDistance(len(wr))
	if !ok {
		return SpellSuggestions{}
	}

	var suggestions []SuggestItem
	admitted := make(map[string]struct{})
	for _, it := range items {
		if it.Distance <= allowed {
			suggestions = append(suggestions, it)
			admitted[it.Term] = struct{}{}
		}
	}

	if s.opts.AllowExtraEditAtStart {
		for _, it := range items {
			if _, dup := admitted[it.Term]; dup {
				continue
			}
			tr := []rune(it.Term)
			if len(tr) > 0 && tr[0] == wr[0] && it.Distance <= allowed+1 {
				suggestions = append(suggestions, it)
				admitted[it.Term] = struct{}{}
			}
		}
	}
	if s.opts.AllowExtraEditAtEnd {
		for _, it := range items {
			if _, dup := admitted[it.Term]; dup {
				continue
			}
			tr := []rune(it.Term)
			if len(tr) > 0 && tr[len(tr)-1] == wr[len(wr)-1] && it.Distance <= allowed+1 {
				suggestions = append(suggestions, it)
				admitted[it.Term] = struct{}{}
			}
		}
	}

	return SpellSuggestions{Suggestions: suggestions}
}

func containsWord(words []string, w string) bool {
	for _, x := range words {
		if x == w {
			return true
		}
	}
	return false
}
