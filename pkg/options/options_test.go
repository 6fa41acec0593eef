package options

import (
	"testing"

	"spellkit/pkg/verbosity"
)

func TestDefaults(t *testing.T) {
	o := New()
	if o.MinWordLength != 3 || o.MaxWordLength != 15 || o.MaxEditDistance != 3 {
		t.Errorf("unexpected defaults: %+v", o)
	}
	if o.Verbosity != verbosity.Closest {
		t.Errorf("default verbosity = %v; want closest", o.Verbosity)
	}
	if !o.AllowExtraEditAtStart || !o.AllowExtraEditAtEnd {
		t.Error("extra-edit rules should default on")
	}
}

func TestAllowedDistanceTables(t *testing.T) {
	o := New()
	symspell := map[int]int{3: 1, 5: 1, 6: 2, 8: 2, 9: 3, 15: 3}
	for length, want := range symspell {
		got, ok := o.SymspellAllowedDistance(length)
		if !ok || got != want {
			t.Errorf("SymspellAllowedDistance(%d) = %d, %v; want %d", length, got, ok, want)
		}
	}
	phoneme := map[int]int{3: 1, 4: 2, 5: 2, 6: 3, 10: 3, 11: 4, 15: 4}
	for length, want := range phoneme {
		got, ok := o.PhonemeAllowedDistance(length)
		if !ok || got != want {
			t.Errorf("PhonemeAllowedDistance(%d) = %d, %v; want %d", length, got, ok, want)
		}
	}
	for _, length := range []int{2, 16} {
		if _, ok := o.SymspellAllowedDistance(length); ok {
			t.Errorf("length %d should be outside the correctable range", length)
		}
	}
}

func TestFunctionalOptions(t *testing.T) {
	o := New(
		WithMinWordLength(2),
		WithMaxEditDistance(2),
		WithVerbosity(verbosity.All),
		WithSymspellDistanceMap(map[int]int{4: 2}),
	)
	if o.MinWordLength != 2 || o.MaxEditDistance != 2 || o.Verbosity != verbosity.All {
		t.Errorf("options not applied: %+v", o)
	}
	if d, ok := o.SymspellAllowedDistance(4); !ok || d != 2 {
		t.Errorf("custom distance map not used: %d, %v", d, ok)
	}
	if _, ok := o.SymspellAllowedDistance(3); ok {
		t.Error("custom distance map must fully replace the default table")
	}
}

func TestCloneIsolation(t *testing.T) {
	o := New(WithSymspellDistanceMap(map[int]int{4: 2}))
	c := o.Clone()
	c.SymspellDistanceMap[4] = 9
	if d, _ := o.SymspellAllowedDistance(4); d != 2 {
		t.Error("Clone shares the threshold map with its source")
	}
}
