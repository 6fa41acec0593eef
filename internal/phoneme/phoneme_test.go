package phoneme

import (
	"testing"

	"spellkit/pkg/options"
)

func TestLatinCode(t *testing.T) {
	p, err := New("en", options.New())
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		word string
		want string
	}{
		{"availability", "A181870000"},
		{"book", "B500000000"},
		{"apple", "A180000000"},
		{"aple", "A180000000"},
		{"go", "G000000000"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := p.Code(tt.word); got != tt.want {
			t.Errorf("Code(%q) = %q; want %q", tt.word, got, tt.want)
		}
	}
}

func TestLatinCodeLength(t *testing.T) {
	p, _ := New("en", options.New())
	for _, w := range []string{"a", "it", "spell", "availability", "miscommunication"} {
		if got := len([]rune(p.Code(w))); got != latinCodeLength {
			t.Errorf("Code(%q) has length %d; want %d", w, got, latinCodeLength)
		}
	}
}

func TestIndicCode(t *testing.T) {
	p, err := New("hi", options.New())
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Code("उपलब्धता"); got != "उ5654000" {
		t.Errorf("Code(उपलब्धता) = %q; want उ5654000", got)
	}
	for _, w := range []string{"कमल", "कामाला", "उपलब्धता"} {
		if got := len([]rune(p.Code(w))); got != indicCodeLength {
			t.Errorf("Code(%q) has length %d; want %d", w, got, indicCodeLength)
		}
	}
}

func TestTamilTable(t *testing.T) {
	for _, r := range "தநனற" {
		if tamilTable[r] != '4' {
			t.Errorf("tamilTable[%c] = %c; want 4", r, tamilTable[r])
		}
	}
	for _, r := range "ஶஷஸஹ" {
		if tamilTable[r] != '7' {
			t.Errorf("tamilTable[%c] = %c; want 7", r, tamilTable[r])
		}
	}

	p, err := New("ta", options.New())
	if err != nil {
		t.Fatal(err)
	}
	if got := p.Code("தமிழ்"); got != "த5300000" {
		t.Errorf("Code(தமிழ்) = %q; want த5300000", got)
	}
}

func TestCodeDeterministic(t *testing.T) {
	p, _ := New("en", options.New())
	for _, w := range []string{"book", "availability", "xylophone"} {
		if p.Code(w) != p.Code(w) {
			t.Errorf("Code(%q) varies between calls", w)
		}
	}
}

func TestSpellCorrectOwnBucket(t *testing.T) {
	p, _ := New("en", options.New())
	p.Build(map[string]int{"apple": 5})

	if !p.SpellCorrect("apple").IsCorrect {
		t.Error("word present in its own bucket must be correct")
	}

	res := p.SpellCorrect("aple")
	if res.IsCorrect {
		t.Fatal("\"aple\" is not in the vocabulary")
	}
	if len(res.Suggestions) != 1 || res.Suggestions[0].Term != "apple" || res.Suggestions[0].Distance != 1 {
		t.Errorf("suggestions = %+v; want apple at distance 1", res.Suggestions)
	}
}

func TestSpellCorrectEmptyBucket(t *testing.T) {
	p, _ := New("en", options.New())
	p.Build(map[string]int{"apple": 5})

	res := p.SpellCorrect("zzz")
	if res.IsCorrect || len(res.Suggestions) != 0 {
		t.Errorf("unrelated word got %+v", res)
	}
}

func TestIndicSuggestionsUnfiltered(t *testing.T) {
	p, err := New("hi", options.New())
	if err != nil {
		t.Fatal(err)
	}
	// both words share the code bucket but sit 3 edits apart, beyond
	// the Latin threshold for a 3-character query
	p.Build(map[string]int{"कामाला": 2})

	res := p.SpellCorrect("कमल")
	if len(res.Suggestions) != 1 || res.Suggestions[0].Term != "कामाला" {
		t.Fatalf("suggestions = %+v; want कामाला", res.Suggestions)
	}
	if res.Suggestions[0].Distance != 3 {
		t.Errorf("distance = %d; want 3", res.Suggestions[0].Distance)
	}
}

func TestAddRemove(t *testing.T) {
	p, _ := New("en", options.New())
	p.Add("apple")
	if !p.SpellCorrect("apple").IsCorrect {
		t.Fatal("Add did not register the word")
	}
	p.Remove("apple")
	if p.SpellCorrect("apple").IsCorrect {
		t.Error("Remove left the word in its bucket")
	}
}

func TestUnsupportedScript(t *testing.T) {
	if _, err := New("xx", options.New()); err == nil {
		t.Error("New(\"xx\") should fail")
	}
	if !IsSupported("en") || !IsSupported("ta") {
		t.Error("en and ta must be supported")
	}
	if IsSupported("xx") {
		t.Error("xx must not be supported")
	}
	if IsIndic("en") || !IsIndic("bn") {
		t.Error("IsIndic misclassifies scripts")
	}
}
