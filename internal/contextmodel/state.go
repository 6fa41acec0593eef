package contextmodel

// State is the serializable snapshot of a trained context model.
type State struct {
	Pairs       map[Pair]float64
	Counts      map[Pair]int
	DefaultProb float64
}

func (m *Model) State() State {
	return State{Pairs: m.pairs, Counts: m.counts, DefaultProb: m.defaultProb}
}

func FromState(st State) *Model {
	m := New()
	if st.Pairs != nil {
		m.pairs = st.Pairs
	}
	if st.Counts != nil {
		m.counts = st.Counts
	}
	m.defaultProb = st.DefaultProb
	return m
}
