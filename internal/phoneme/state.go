package phoneme

import "spellkit/pkg/options"

// State is the serializable snapshot of a trained phonetic index.
type State struct {
	Script  string
	Buckets map[string][]string
}

func (p *Phoneme) State() State {
	return State{Script: p.script, Buckets: p.buckets}
}

// FromState restores an index from a snapshot, re-resolving the script
// table so the construction-time validation still applies.
func FromState(st State, opts options.SpellOptions) (*Phoneme, error) {
	p, err := New(st.Script, opts)
	if err != nil {
		return nil, err
	}
	if st.Buckets != nil {
		p.buckets = st.Buckets
	}
	return p, nil
}
