package govern

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/daofoundry/govern"
)

// resolveProposalPath returns the explicit --proposal path, falling back to
// PROPOSAL_PATH from the environment or a .env file.
func resolveProposalPath(path string) (string, error) {
	if path != "" {
		return path, nil
	}

	// .env is optional; the variable may come from the environment directly.
	_ = godotenv.Load(".env")

	path = os.Getenv("PROPOSAL_PATH")
	if path == "" {
		return "", errors.New("no proposal path: pass --proposal or set PROPOSAL_PATH")
	}

	return path, nil
}

func loadProposal(path string) (*govern.Proposal, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("unable to open proposal snapshot: %w", err)
	}
	defer f.Close()

	var proposal govern.Proposal
	if err := json.NewDecoder(f).Decode(&proposal); err != nil {
		return nil, fmt.Errorf("unable to decode proposal snapshot: %w", err)
	}

	return &proposal, nil
}
