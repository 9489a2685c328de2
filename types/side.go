package types

import "fmt"

// VoteSide is the side a voter takes on a proposal. The wire representation
// is a single byte; zero is reserved so that an uninitialized vote record can
// never be confused with a cast one.
type VoteSide uint8

const (
	// SidePending is the zero value and is not a valid side to cast.
	SidePending VoteSide = iota
	// SideAgainst is a vote in opposition.
	SideAgainst
	// SideFor is a vote in support.
	SideFor
	// SideAbstain is a recorded abstention. It counts toward the abstain
	// tally only and never toward quorum.
	SideAbstain
)

// Valid reports whether s is a castable side.
func (s VoteSide) Valid() bool {
	return s == SideAgainst || s == SideFor || s == SideAbstain
}

// String returns the human-readable name of the side.
func (s VoteSide) String() string {
	switch s {
	case SidePending:
		return "Pending"
	case SideAgainst:
		return "Against"
	case SideFor:
		return "For"
	case SideAbstain:
		return "Abstain"
	}

	return fmt.Sprintf("VoteSide(%d)", uint8(s))
}
