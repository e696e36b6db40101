package impl

import (
	"github.com/rs/zerolog/log"
	"go.dedis.ch/arp/datastructures"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/types"
	"golang.org/x/xerrors"
)

// implements protocol.Council
func (n *node) CreateCase(target, evidence, accuser string) (types.CouncilCase, error) {
	const op = "CreateCase"

	if _, ok := n.agents.get(target); !ok {
		return types.CouncilCase{}, protocol.NewError(protocol.NotFound, op, target)
	}

	c := types.CouncilCase{
		ID:           newID(casePrefix),
		Target:       target,
		Accuser:      accuser,
		Evidence:     evidence,
		Jurors:       n.selectJurors(target),
		VotesFor:     datastructures.EmptySet[string](),
		VotesAgainst: datastructures.EmptySet[string](),
		CreatedAt:    n.now(),
	}

	if !n.cases.add(c.ID, c) {
		return types.CouncilCase{}, xerrors.Errorf("%s: %w", op, ErrCollision)
	}

	log.Info().Msgf("case %s opened against %s with %d jurors", c.ID, target, len(c.Jurors))

	n.emit(types.CaseOpenedEvent{
		CaseID: c.ID,
		Target: target,
		Jurors: append([]string(nil), c.Jurors...),
	})

	return c.Copy(), nil
}

// returns the addresses of the best agents by score, the target excluded.
// The selection is a snapshot, later score changes do not affect it.
func (n *node) selectJurors(target string) []string {
	candidates := datastructures.Filter(n.agents.snapshot(), func(a types.Agent) bool {
		return a.Address != target
	})
	jurors := datastructures.TopN(candidates, n.conf.JurorCount, byScore)
	return datastructures.Map(jurors, func(a types.Agent) string {
		return a.Address
	})
}

// implements protocol.Council
func (n *node) Vote(caseID, juror string, guilty bool) (types.CouncilCase, error) {
	const op = "Vote"

	e, ok := n.cases.get(caseID)
	if !ok {
		return types.CouncilCase{}, protocol.NewError(protocol.NotFound, op, caseID)
	}

	e.Lock()

	c := &e.value
	if c.Resolved {
		e.Unlock()
		return types.CouncilCase{}, protocol.NewError(protocol.AlreadyResolved, op, caseID)
	}
	if !c.IsJuror(juror) {
		e.Unlock()
		return types.CouncilCase{}, protocol.NewError(protocol.NotAnEligibleJuror, op, juror)
	}
	if c.HasVoted(juror) {
		e.Unlock()
		return types.CouncilCase{}, protocol.NewError(protocol.AlreadyVoted, op, juror)
	}

	jurorEntry, ok := n.agents.get(juror)
	if !ok {
		e.Unlock()
		return types.CouncilCase{}, protocol.NewError(protocol.NotFound, op, juror)
	}

	if guilty {
		c.VotesFor.Add(juror)
	} else {
		c.VotesAgainst.Add(juror)
	}

	// voting is reputation-positive for the juror
	jurorEntry.Lock()
	jurorEntry.agent.CouncilVoteCount++
	evts := []types.Event{types.VoteCastEvent{CaseID: caseID, Juror: juror, Guilty: guilty}}
	evts = append(evts, n.recompute(&jurorEntry.agent)...)
	jurorEntry.Unlock()

	res := c.Copy()

	e.Unlock()

	n.emit(evts...)
	return res, nil
}

// implements protocol.Council
func (n *node) ResolveCase(caseID string) (types.CouncilResolution, error) {
	const op = "ResolveCase"

	e, ok := n.cases.get(caseID)
	if !ok {
		return types.CouncilResolution{}, protocol.NewError(protocol.NotFound, op, caseID)
	}

	e.Lock()

	c := &e.value
	if c.Resolved {
		e.Unlock()
		return types.CouncilResolution{}, protocol.NewError(protocol.AlreadyResolved, op, caseID)
	}

	res := types.CouncilResolution{
		CaseID:  caseID,
		Verdict: c.Tally(),
	}

	evts := make([]types.Event, 0)
	if res.Verdict == types.Guilty {
		slash, slashEvts, err := n.slash(op, c.Target, councilSlashCause, councilSlashRef+c.ID)
		if err != nil {
			e.Unlock()
			return types.CouncilResolution{}, err
		}
		res.Slash = &slash
		evts = append(evts, slashEvts...)
	}

	c.Resolved = true
	c.Verdict = res.Verdict

	e.Unlock()

	log.Info().Msgf("case %s resolved: %s", caseID, res.Verdict)

	evts = append([]types.Event{types.CaseResolvedEvent{Resolution: res}}, evts...)
	n.emit(evts...)
	return res, nil
}

// implements protocol.Council
func (n *node) GetCase(caseID string) (types.CouncilCase, error) {
	e, ok := n.cases.get(caseID)
	if !ok {
		return types.CouncilCase{}, protocol.NewError(protocol.NotFound, "GetCase", caseID)
	}

	e.Lock()
	defer e.Unlock()
	return e.value.Copy(), nil
}

// implements protocol.Council
func (n *node) Cases() []types.CouncilCase {
	return n.cases.list((*types.CouncilCase).Copy)
}
