package govern

import (
	"fmt"

	"github.com/spf13/cobra"
)

func buildTallyCmd(proposalPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tally",
		Short: "Print a proposal's vote tallies and quorum margin",
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveProposalPath(*proposalPath)
			if err != nil {
				return err
			}

			proposal, err := loadProposal(path)
			if err != nil {
				return err
			}

			fmt.Printf("proposal %s\n", proposal.Key())
			fmt.Printf("for:     %d\n", proposal.ForVotes)
			fmt.Printf("against: %d\n", proposal.AgainstVotes)
			fmt.Printf("abstain: %d\n", proposal.AbstainVotes)
			fmt.Printf("quorum:  %d\n", proposal.QuorumVotes)

			if proposal.ForVotes >= proposal.QuorumVotes && proposal.ForVotes > proposal.AgainstVotes {
				fmt.Println("margin:  passing")
			} else {
				fmt.Println("margin:  failing")
			}

			return nil
		},
	}
}
