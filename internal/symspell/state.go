package symspell

import (
	"errors"

	"spellkit/pkg/options"
)

// State is the serializable snapshot of a trained index.
type State struct {
	Script            string
	LongestWordLength int
	Dictionary        map[string]*Entry
}

func (s *SymSpell) State() State {
	return State{
		Script:            s.script,
		LongestWordLength: s.longestWordLength,
		Dictionary:        s.dictionary,
	}
}

// FromState restores an index from a snapshot. The options are supplied
// by the caller so that a loaded model keeps a single owned
// configuration value.
func FromState(st State, opts options.SpellOptions) (*SymSpell, error) {
	if st.Dictionary == nil {
		return nil, errors.New("symspell state has no dictionary")
	}
	return &SymSpell{
		opts:              opts,
		script:            st.Script,
		dictionary:        st.Dictionary,
		longestWordLength: st.LongestWordLength,
	}, nil
}
