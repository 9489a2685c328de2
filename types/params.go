package types

// GovernanceParameters configures the timing and quorum rules a Governor
// applies to its proposals.
//
// Values are deliberately unvalidated: a DAO may bootstrap with a zero voting
// period or a zero timelock and tighten the parameters later through its own
// governance process.
type GovernanceParameters struct {
	// VotingDelay is the number of seconds between a proposal's creation and
	// the earliest moment it may be activated.
	VotingDelay uint64 `json:"votingDelay"`

	// VotingPeriod is the duration of the voting window in seconds, measured
	// from activation.
	VotingPeriod uint64 `json:"votingPeriod"`

	// QuorumVotes is the minimum number of "for" votes required for a
	// proposal to succeed. Each proposal snapshots this value at creation.
	QuorumVotes uint64 `json:"quorumVotes"`

	// TimelockDelaySeconds is the minimum number of seconds a succeeded
	// proposal must wait in the execution queue before it becomes executable.
	TimelockDelaySeconds int64 `json:"timelockDelaySeconds"`
}
