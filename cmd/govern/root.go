package govern

import (
	"github.com/spf13/cobra"
)

// BuildGovernCmd assembles the govern CLI: offline inspection of proposal
// snapshots.
func BuildGovernCmd() *cobra.Command {
	var proposalPath string

	cmd := cobra.Command{
		Use:   "govern",
		Short: "Inspect DAO governance proposals",
		Long:  ``,
	}

	cmd.PersistentFlags().StringVar(&proposalPath, "proposal", "", "Path to a JSON proposal snapshot (defaults to PROPOSAL_PATH from .env)")

	cmd.AddCommand(buildStatusCmd(&proposalPath))
	cmd.AddCommand(buildTallyCmd(&proposalPath))

	return &cmd
}
