// Package contextmodel ranks combinations of per-token correction
// candidates with pairwise co-occurrence statistics learned from a
// training corpus, and decodes the highest-scoring sentence with a
// Viterbi-style dynamic program.
package contextmodel

import (
	"log/slog"
	"regexp"
	"strings"
)

// Raw pair counts are clipped here before normalization so a handful of
// very frequent pairs cannot drown out the rest.
const maxCountAllowed = 100

const windowSize = 4

var (
	startTokens = []string{"^^", "^"}
	endTokens   = []string{"$"}
)

// Pair is an ordered co-occurrence key; A precedes B inside the window.
type Pair struct {
	A, B string
}

type Model struct {
	pairs       map[Pair]float64
	counts      map[Pair]int
	defaultProb float64
}

func New() *Model {
	return &Model{
		pairs:  make(map[Pair]float64),
		counts: make(map[Pair]int),
	}
}

// Train builds the pair-probability table from raw sentences. Every
// sentence is lower-cased, wrapped in sentinel tokens, and scanned with
// a sliding window of 4 tokens; each distinct (pair, positional
// distance) is counted once per sentence, capped at maxCountAllowed.
// Probabilities are the capped counts normalized by their grand total,
// and the default probability for unseen pairs is set to half the
// minimum observed one, so unseen always scores strictly below seen.
func (m *Model) Train(sentences []string) {
	counts := make(map[Pair]int)
	for _, sentence := range sentences {
		tokens := make([]string, 0, len(startTokens)+len(endTokens)+8)
		tokens = append(tokens, startTokens...)
		tokens = append(tokens, strings.Fields(strings.ToLower(strings.TrimSpace(sentence)))...)
		tokens = append(tokens, endTokens...)

		type pairAt struct {
			pair Pair
			diff int
		}
		seen := make(map[pairAt]struct{})
		for _, window := range windows(tokens, windowSize) {
			for i := 0; i < len(window); i++ {
				if len([]rune(window[i])) < 2 {
					continue
				}
				for j := i + 1; j < len(window); j++ {
					if len([]rune(window[j])) < 2 {
						continue
					}
					key := pairAt{pair: Pair{A: window[i], B: window[j]}, diff: j - i}
					if _, ok := seen[key]; ok {
						continue
					}
					seen[key] = struct{}{}
					if counts[key.pair] < maxCountAllowed {
						counts[key.pair]++
					}
				}
			}
		}
	}

	total := 0
	minCount := 0
	for _, c := range counts {
		total += c
		if minCount == 0 || c < minCount {
			minCount = c
		}
	}
	pairs := make(map[Pair]float64, len(counts))
	if total > 0 {
		for p, c := range counts {
			pairs[p] = float64(c) / float64(total)
		}
		m.defaultProb = (float64(minCount) / float64(total)) * 0.5
	}
	m.counts = counts
	m.pairs = pairs
	slog.Debug("context model trained", "pairs", len(pairs), "default_prob", m.defaultProb)
}

func windows(tokens []string, n int) [][]string {
	if len(tokens) <= n {
		return [][]string{tokens}
	}
	out := make([][]string, 0, len(tokens)-n+1)
	for start := 0; start+n <= len(tokens); start++ {
		out = append(out, tokens[start:start+n])
	}
	return out
}

func (m *Model) prob(a, b string) float64 {
	if p, ok := m.pairs[Pair{A: a, B: b}]; ok {
		return p
	}
	return m.defaultProb
}

// MostProbableSentence picks the best combination of candidates, one
// per position. The score of choosing word w at position t after u at
// t-1 and v at t-2 is the score accumulated at (t-2, v) plus
// P(v,u) + P(u,w) + P(v,w), i.e. both adjacent bigrams and the
// skip-bigram spanning the two previous picks. Each cell keeps its best
// score and a backpointer pair; the full path is reconstructed in a
// final backward walk. Every candidate list must be non-empty.
func (m *Model) MostProbableSentence(candidates [][]string) string {
	lattice := make([][]string, 0, len(candidates)+len(startTokens)+len(endTokens))
	for _, tok := range startTokens {
		lattice = append(lattice, []string{tok})
	}
	lattice = append(lattice, candidates...)
	for _, tok := range endTokens {
		lattice = append(lattice, []string{tok})
	}

	type cell struct {
		score float64
		prev1 int // candidate index picked at t-1
		prev2 int // candidate index picked at t-2
	}
	table := make([][]cell, len(lattice))
	table[0] = []cell{{}}
	table[1] = []cell{{}}
	for t := 2; t < len(lattice); t++ {
		table[t] = make([]cell, len(lattice[t]))
		for i, word := range lattice[t] {
			best := cell{}
			for j, u := range lattice[t-1] {
				for k, v := range lattice[t-2] {
					score := table[t-2][k].score + m.prob(v, u) + m.prob(u, word) + m.prob(v, word)
					if score > best.score {
						best = cell{score: score, prev1: j, prev2: k}
					}
				}
			}
			table[t][i] = best
		}
	}

	indices := make([]int, len(lattice))
	for t := len(lattice) - 1; t >= 2; t -= 2 {
		c := table[t][indices[t]]
		indices[t-1] = c.prev1
		indices[t-2] = c.prev2
	}

	words := make([]string, 0, len(candidates))
	for t := len(startTokens); t < len(lattice)-len(endTokens); t++ {
		words = append(words, lattice[t][indices[t]])
	}
	return strings.Join(words, " ")
}

// SpellCorrect decodes the best combination of suggestions for the
// sentence and returns the corrected sentence together with the map of
// changed tokens. Tokens absent from the suggestions map keep
// themselves as their only candidate. The correction map is applied
// back onto the input by whole-token substitution, so text outside the
// corrected tokens survives untouched.
func (m *Model) SpellCorrect(sentence string, suggestions map[string][]string) (string, map[string]string) {
	tokens := strings.Fields(strings.ToLower(sentence))
	candidates := make([][]string, len(tokens))
	for i, tok := range tokens {
		if s, ok := suggestions[tok]; ok && len(s) > 0 {
			candidates[i] = s
		} else {
			candidates[i] = []string{tok}
		}
	}
	if len(candidates) == 0 {
		return sentence, map[string]string{}
	}

	decoded := m.MostProbableSentence(candidates)
	corrections := correctedWordsMap(decoded, sentence)

	corrected := " " + sentence + " "
	for token, suggestion := range corrections {
		re := regexp.MustCompile(" " + regexp.QuoteMeta(token) + " ")
		corrected = re.ReplaceAllString(corrected, " "+suggestion+" ")
	}
	return strings.TrimSpace(corrected), corrections
}

// correctedWordsMap diffs the decoded sentence against the original,
// token by token and case-insensitively, keyed by the original
// (case-preserving) token.
func correctedWordsMap(decoded, original string) map[string]string {
	corrections := make(map[string]string)
	decodedWords := strings.Fields(decoded)
	originalWords := strings.Fields(original)
	for i := 0; i < len(decodedWords) && i < len(originalWords); i++ {
		if decodedWords[i] != strings.ToLower(originalWords[i]) {
			corrections[originalWords[i]] = decodedWords[i]
		}
	}
	return corrections
}
