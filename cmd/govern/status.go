package govern

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

func buildStatusCmd(proposalPath *string) *cobra.Command {
	var at int64

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Derive a proposal's lifecycle status from its snapshot",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveProposalPath(*proposalPath)
			if err != nil {
				return err
			}

			proposal, err := loadProposal(path)
			if err != nil {
				return err
			}

			now := at
			if now == 0 {
				now = time.Now().Unix()
			}

			fmt.Printf("proposal %s\n", proposal.Key())
			fmt.Printf("index:   %d\n", proposal.Index)
			fmt.Printf("status:  %s (at %d)\n", proposal.State(now), now)

			return nil
		},
	}

	cmd.Flags().Int64Var(&at, "at", 0, "Unix time to evaluate the status at (default: now)")

	return cmd
}
