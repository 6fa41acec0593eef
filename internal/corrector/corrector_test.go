package corrector

import (
	"context"
	"strings"
	"testing"

	"spellkit/pkg/options"
)

func trainedCorrector(t *testing.T) *SpellCorrector {
	t.Helper()
	sc, err := New("en", nil)
	if err != nil {
		t.Fatal(err)
	}
	sentences := make([]string, 5)
	for i := range sentences {
		sentences[i] = "i want to play cricket"
	}
	if err := sc.TrainFromCorpus(sentences); err != nil {
		t.Fatal(err)
	}
	return sc
}

func TestNewUnsupportedLanguage(t *testing.T) {
	if _, err := New("zz", nil); err == nil {
		t.Error("New(\"zz\") should fail")
	}
}

func TestTrainDispatch(t *testing.T) {
	sc, err := New("en", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := sc.Train(42); err == nil {
		t.Error("Train(int) should fail")
	}
	if err := sc.Train(map[string]int{"book": 5}); err != nil {
		t.Errorf("Train(map) failed: %v", err)
	}
	if !sc.Trained() {
		t.Error("corrector should be trained after Train(map)")
	}
}

func TestSuggestBeforeTraining(t *testing.T) {
	sc, _ := New("en", nil)
	if got := sc.Suggest("word"); got != nil {
		t.Errorf("untrained Suggest = %v; want nil", got)
	}
}

func TestSuggestGates(t *testing.T) {
	sc := trainedCorrector(t)
	tests := []struct {
		word string
		why  string
	}{
		{"ab", "below minimum length"},
		{strings.Repeat("a", 16), "above maximum length"},
		{"b00k5", "contains digits"},
		{"cricket", "already a known word"},
	}
	for _, tt := range tests {
		if got := sc.Suggest(tt.word); len(got) != 0 {
			t.Errorf("Suggest(%q) = %v; want none (%s)", tt.word, got, tt.why)
		}
	}
}

func TestSuggestMergesIndexes(t *testing.T) {
	sc := trainedCorrector(t)

	got := sc.Suggest("wnt")
	if len(got) == 0 || got[0].Term != "want" || got[0].Distance != 1 {
		t.Fatalf("Suggest(\"wnt\") = %+v; want want at distance 1", got)
	}
	seen := make(map[string]bool)
	for _, s := range got {
		if seen[s.Term] {
			t.Errorf("duplicate suggestion %q", s.Term)
		}
		seen[s.Term] = true
	}

	// a first-letter typo escapes the phonetic bucket but not the
	// delete index
	got = sc.Suggest("kricket")
	if len(got) == 0 || got[0].Term != "cricket" || got[0].Distance != 1 {
		t.Errorf("Suggest(\"kricket\") = %+v; want cricket at distance 1", got)
	}
}

func TestCorrectText(t *testing.T) {
	sc := trainedCorrector(t)

	res := sc.CorrectText("i wnt to play kricket")
	if res.Corrected != "i want to play cricket" {
		t.Fatalf("Corrected = %q; want %q", res.Corrected, "i want to play cricket")
	}
	want := map[string]string{"wnt": "want", "kricket": "cricket"}
	for k, v := range want {
		if res.Corrections[k] != v {
			t.Errorf("Corrections[%q] = %q; want %q", k, res.Corrections[k], v)
		}
	}
	if len(res.Corrections) != len(want) {
		t.Errorf("Corrections = %v; want %v", res.Corrections, want)
	}
}

func TestCorrectTextPreservesCaseAndPunctuation(t *testing.T) {
	sc := trainedCorrector(t)

	res := sc.CorrectText("I wnt to play kricket.")
	if res.Corrected != "I want to play cricket" {
		t.Errorf("Corrected = %q; casing outside corrections must survive", res.Corrected)
	}
	if res.Original != "I wnt to play kricket." {
		t.Errorf("Original = %q; must echo the input", res.Original)
	}
	if _, ok := res.Corrections["I"]; ok {
		t.Error("case-only differences are not corrections")
	}
}

func TestCorrectTextRestoresTokenCase(t *testing.T) {
	sc := trainedCorrector(t)

	res := sc.CorrectText("Kricket is my game")
	if res.Corrected != "Cricket is my game" {
		t.Errorf("Corrected = %q; title case must carry onto the replacement", res.Corrected)
	}
	if res.Corrections["Kricket"] != "Cricket" {
		t.Errorf("Corrections = %v; want Kricket -> Cricket", res.Corrections)
	}

	res = sc.CorrectText("KRICKET is my game")
	if res.Corrected != "CRICKET is my game" {
		t.Errorf("Corrected = %q; upper case must carry onto the replacement", res.Corrected)
	}
	if res.Corrections["KRICKET"] != "CRICKET" {
		t.Errorf("Corrections = %v; want KRICKET -> CRICKET", res.Corrections)
	}

	// a correctly spelled upper-cased word is not a correction and
	// keeps its own casing
	res = sc.CorrectText("i want to PLAY kricket")
	if res.Corrected != "i want to PLAY cricket" {
		t.Errorf("Corrected = %q", res.Corrected)
	}
}

func TestCorrectTextNoErrors(t *testing.T) {
	sc := trainedCorrector(t)
	res := sc.CorrectText("i want to play cricket")
	if res.Corrected != "i want to play cricket" || len(res.Corrections) != 0 {
		t.Errorf("clean input changed: %+v", res)
	}
}

func TestTopSuggestionFallbackWithoutContextModel(t *testing.T) {
	sc, err := New("en", nil)
	if err != nil {
		t.Fatal(err)
	}
	if err := sc.TrainFromCounts(map[string]int{"want": 5, "cricket": 3}); err != nil {
		t.Fatal(err)
	}
	if sc.contextMdl != nil {
		t.Fatal("frequency-only training must not build a context model")
	}

	res := sc.CorrectText("i wnt cricket")
	if res.Corrected != "i want cricket" {
		t.Errorf("Corrected = %q; want top suggestion applied", res.Corrected)
	}
	if res.Corrections["wnt"] != "want" {
		t.Errorf("Corrections = %v", res.Corrections)
	}
}

func TestCustomWords(t *testing.T) {
	sc := trainedCorrector(t)
	ctx := context.Background()

	if got := sc.Suggest("zebro"); len(got) != 0 {
		t.Fatalf("unknown word with no near match suggested %v", got)
	}
	if err := sc.AddCustomWord(ctx, "Zebro"); err != nil {
		t.Fatal(err)
	}
	if got := sc.Suggest("zebro"); got != nil {
		t.Errorf("custom word still flagged: %v", got)
	}
	if got := sc.Suggest("zebru"); len(got) == 0 || got[0].Term != "zebro" {
		t.Errorf("typo near custom word = %+v; want zebro", got)
	}

	if err := sc.RemoveCustomWord(ctx, "zebro"); err != nil {
		t.Fatal(err)
	}
	if got := sc.Suggest("zebru"); len(got) != 0 {
		t.Errorf("removed custom word still suggested: %v", got)
	}
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello, world.", "hello  world"},
		{"keep {the payload} out", "keep  out"},
		{"  padded  ", "padded"},
	}
	for _, tt := range tests {
		if got := CleanText(tt.in); got != tt.want {
			t.Errorf("CleanText(%q) = %q; want %q", tt.in, got, tt.want)
		}
	}
}

func TestOptionsClone(t *testing.T) {
	sc, err := New("en", nil, options.WithMaxEditDistance(2))
	if err != nil {
		t.Fatal(err)
	}
	o := sc.Options()
	if o.MaxEditDistance != 2 {
		t.Errorf("MaxEditDistance = %d; want 2", o.MaxEditDistance)
	}
	o.MaxEditDistance = 9
	if sc.Options().MaxEditDistance != 2 {
		t.Error("Options() must return a copy")
	}
}
