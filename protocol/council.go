package protocol

import "go.dedis.ch/arp/types"

// Council runs juried disputes that may slash their target.
type Council interface {
	// CreateCase opens a case and freezes its juror set.
	CreateCase(target, evidence, accuser string) (types.CouncilCase, error)

	// Vote records a juror's vote. Voting increases the juror's score.
	Vote(caseID, juror string, guilty bool) (types.CouncilCase, error)

	// ResolveCase closes the case; a guilty verdict slashes the target.
	ResolveCase(caseID string) (types.CouncilResolution, error)

	GetCase(caseID string) (types.CouncilCase, error)

	Cases() []types.CouncilCase
}
