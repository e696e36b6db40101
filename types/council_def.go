package types

import (
	"time"

	"go.dedis.ch/arp/datastructures"
)

// Verdict of a council case.
type Verdict string

const (
	Pending   Verdict = ""
	Guilty    Verdict = "guilty"
	NotGuilty Verdict = "not_guilty"
)

// CouncilCase is a juried dispute that may slash its target. The jurors are
// captured once at creation and never change.
type CouncilCase struct {
	ID       string
	Target   string
	Accuser  string
	Evidence string
	Jurors   []string

	VotesFor     datastructures.Set[string]
	VotesAgainst datastructures.Set[string]

	Resolved  bool
	Verdict   Verdict
	CreatedAt time.Time
}

// CouncilResolution is returned when a case is resolved.
type CouncilResolution struct {
	CaseID  string
	Verdict Verdict
	// nil unless the verdict is guilty
	Slash *SlashResult
}
