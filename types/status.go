package types //nolint:revive

// ProposalStatus is the lifecycle state of a proposal. It is never stored;
// it is derived on demand from a proposal's timestamps and tallies.
type ProposalStatus string

const (
	// StatusDraft is a proposal that has been created but not yet activated.
	StatusDraft ProposalStatus = "Draft"
	// StatusActive is a proposal inside its voting window.
	StatusActive ProposalStatus = "Active"
	// StatusCanceled is a proposal withdrawn by its proposer or the smart
	// wallet. Terminal.
	StatusCanceled ProposalStatus = "Canceled"
	// StatusDefeated is a proposal whose voting window closed without
	// reaching quorum or with a losing margin. Terminal.
	StatusDefeated ProposalStatus = "Defeated"
	// StatusSucceeded is a passed proposal awaiting queueing.
	StatusSucceeded ProposalStatus = "Succeeded"
	// StatusQueued is a proposal registered with the smart wallet and sitting
	// out its timelock delay.
	StatusQueued ProposalStatus = "Queued"
	// StatusReady is a queued proposal whose timelock delay has elapsed.
	StatusReady ProposalStatus = "Ready"
	// StatusExecuted is a proposal whose instructions have been run by the
	// smart wallet. Terminal.
	StatusExecuted ProposalStatus = "Executed"
	// StatusExpired is a ready proposal that was never executed within the
	// execution grace period. Terminal.
	StatusExpired ProposalStatus = "Expired"
)

// StringToProposalStatus converts a string to a ProposalStatus.
var StringToProposalStatus = map[string]ProposalStatus{
	"Draft":     StatusDraft,
	"Active":    StatusActive,
	"Canceled":  StatusCanceled,
	"Defeated":  StatusDefeated,
	"Succeeded": StatusSucceeded,
	"Queued":    StatusQueued,
	"Ready":     StatusReady,
	"Executed":  StatusExecuted,
	"Expired":   StatusExpired,
}

// Terminal reports whether no operation can move a proposal out of s.
func (s ProposalStatus) Terminal() bool {
	switch s {
	case StatusCanceled, StatusDefeated, StatusExecuted, StatusExpired:
		return true
	}

	return false
}
