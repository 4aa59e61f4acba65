package wikistate

// State is the lifecycle state of a test wiki.
type State int

const (
	// Missing: no wiki is provisioned and no test wiki pages exist.
	Missing State = iota
	// Incubating: no wiki is provisioned but the test wiki has a main page.
	Incubating
	// ExistingClosed: a wiki was provisioned and later closed.
	ExistingClosed
	// ExistingOpen: the wiki is provisioned and live outside the incubator.
	ExistingOpen
)

var stateNames = [...]string{
	Missing:        "missing",
	Incubating:     "incubating",
	ExistingClosed: "closed",
	ExistingOpen:   "existing",
}

func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "unknown"
	}
	return stateNames[s]
}

// MarshalText encodes the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}
