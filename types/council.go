package types

import "fmt"

// IsJuror returns true iff addr belongs to the fixed juror set.
func (c *CouncilCase) IsJuror(addr string) bool {
	for _, j := range c.Jurors {
		if j == addr {
			return true
		}
	}
	return false
}

// HasVoted returns true iff the juror already cast a vote.
func (c *CouncilCase) HasVoted(juror string) bool {
	return c.VotesFor.Contains(juror) || c.VotesAgainst.Contains(juror)
}

// Tally returns the verdict of the current votes. Ties are not guilty.
func (c *CouncilCase) Tally() Verdict {
	if c.VotesFor.Size() > c.VotesAgainst.Size() {
		return Guilty
	}
	return NotGuilty
}

// Copy returns a deep copy of the case.
func (c *CouncilCase) Copy() CouncilCase {
	res := *c
	res.Jurors = append([]string(nil), c.Jurors...)
	res.VotesFor = c.VotesFor.Clone()
	res.VotesAgainst = c.VotesAgainst.Clone()
	return res
}

// String implements fmt.Stringer.
func (c CouncilCase) String() string {
	return fmt.Sprintf("case{id=%s, target=%s, for=%d, against=%d, verdict=%s}",
		c.ID, c.Target, c.VotesFor.Size(), c.VotesAgainst.Size(), c.Verdict)
}
