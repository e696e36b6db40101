package scenario

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/types"
	"golang.org/x/sync/errgroup"
	"golang.org/x/xerrors"
)

const (
	defaultRounds    = 3
	defaultBetAmount = 5.0
	runnerAccuser    = "scenario runner"
)

// Option is the type of options to configure a runner.
type Option func(*Runner)

// WithRounds sets the number of rounds every actor plays.
func WithRounds(n int) Option {
	return func(r *Runner) {
		r.rounds = n
	}
}

// WithBetAmount sets the amount every actor bets on the markets.
func WithBetAmount(amount float64) Option {
	return func(r *Runner) {
		r.betAmount = amount
	}
}

// WithLogger sets the logger of the runner and of its actors.
func WithLogger(logger zerolog.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// Report is the outcome of a run.
type Report struct {
	Markets     []types.MarketResolution
	Cases       []types.CouncilResolution
	Leaderboard []types.Agent
}

// Runner plays a population of actors against a protocol. Actors first play
// their rounds concurrently. Then, for every malicious agent, a market bets
// on whether it stays Elite and the council judges it.
type Runner struct {
	proto     protocol.Protocol
	rounds    int
	betAmount float64
	logger    zerolog.Logger

	actors    []Actor
	byAddress map[string]Actor
	// honest and malicious agents trade with each other
	traders  []*base
	suspects []string
}

// NewRunner returns a runner without any actor.
func NewRunner(p protocol.Protocol, opts ...Option) *Runner {
	r := &Runner{
		proto:     p,
		rounds:    defaultRounds,
		betAmount: defaultBetAmount,
		logger:    zerolog.Nop(),
		actors:    make([]Actor, 0),
		byAddress: make(map[string]Actor),
		traders:   make([]*base, 0),
		suspects:  make([]string, 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// AddHonest registers an honest actor.
func (r *Runner) AddHonest(name string, stake float64) (*HonestAgent, error) {
	a, err := NewHonestAgent(r.proto, name, stake, r.logger)
	if err != nil {
		return nil, err
	}
	r.add(a)
	r.traders = append(r.traders, &a.base)
	return a, nil
}

// AddMalicious registers a malicious actor.
func (r *Runner) AddMalicious(name string, stake float64) (*MaliciousAgent, error) {
	a, err := NewMaliciousAgent(r.proto, name, stake, r.logger)
	if err != nil {
		return nil, err
	}
	r.add(a)
	r.traders = append(r.traders, &a.base)
	r.suspects = append(r.suspects, a.address())
	return a, nil
}

// AddSybil registers a sybil of parent.
func (r *Runner) AddSybil(name string, stake float64, parent string) (*SybilAgent, error) {
	a, err := NewSybilAgent(r.proto, name, stake, parent, r.logger)
	if err != nil {
		return nil, err
	}
	r.add(a)
	return a, nil
}

func (r *Runner) add(a Actor) {
	r.actors = append(r.actors, a)
	r.byAddress[a.Agent().Address] = a
}

// Run plays the rounds, then the markets and the council cases.
func (r *Runner) Run(ctx context.Context) (Report, error) {
	r.assignCounterparties()

	r.logger.Info().Msgf("playing %d rounds with %d actors", r.rounds, len(r.actors))

	g, gctx := errgroup.WithContext(ctx)
	for _, a := range r.actors {
		a := a
		g.Go(func() error {
			for round := 0; round < r.rounds; round++ {
				err := gctx.Err()
				if err != nil {
					return err
				}
				err = a.Act(round)
				if err != nil {
					return xerrors.Errorf("%s failed round %d: %v", a.Agent().Name, round, err)
				}
			}
			return nil
		})
	}

	err := g.Wait()
	if err != nil {
		return Report{}, xerrors.Errorf("failed to play rounds: %v", err)
	}

	report := Report{
		Markets: make([]types.MarketResolution, 0, len(r.suspects)),
		Cases:   make([]types.CouncilResolution, 0, len(r.suspects)),
	}

	for _, suspect := range r.suspects {
		err = ctx.Err()
		if err != nil {
			return Report{}, err
		}

		market, err := r.openMarket(suspect)
		if err != nil {
			return Report{}, err
		}

		verdict, err := r.judge(suspect)
		if err != nil {
			return Report{}, err
		}
		report.Cases = append(report.Cases, verdict)

		settlement, err := r.settle(market, suspect)
		if err != nil {
			return Report{}, err
		}
		report.Markets = append(report.Markets, settlement)
	}

	report.Leaderboard = r.proto.Leaderboard(-1)
	return report, nil
}

// every trader trades with every other one, in registration order
func (r *Runner) assignCounterparties() {
	for _, t := range r.traders {
		others := make([]string, 0, len(r.traders)-1)
		for _, other := range r.traders {
			if other != t {
				others = append(others, other.address())
			}
		}
		t.setCounterparties(others)
	}
}

// opens a market on whether the suspect is Elite after its trial, every
// other actor bets on it
func (r *Runner) openMarket(suspect string) (types.Market, error) {
	name := r.byAddress[suspect].Agent().Name

	m, err := r.proto.CreateMarket(suspect, fmt.Sprintf("%s is still %s after trial", name, types.Elite), 0)
	if err != nil {
		return types.Market{}, xerrors.Errorf("failed to create market: %v", err)
	}

	var g errgroup.Group
	for _, a := range r.actors {
		a := a
		if a.Agent().Address == suspect {
			continue
		}
		g.Go(func() error {
			_, err := r.proto.PlaceBet(m.ID, a.Agent().Address, r.betAmount, a.Predict(suspect))
			return err
		})
	}

	err = g.Wait()
	if err != nil {
		return types.Market{}, xerrors.Errorf("failed to place bets on %s: %v", m.ID, err)
	}
	return m, nil
}

// brings the suspect before the council, jurors known by the runner vote
// following their own judgement
func (r *Runner) judge(suspect string) (types.CouncilResolution, error) {
	c, err := r.proto.CreateCase(suspect, "poorly rated by its counterparties", runnerAccuser)
	if err != nil {
		return types.CouncilResolution{}, xerrors.Errorf("failed to open case: %v", err)
	}

	history := r.proto.Attestations()

	var g errgroup.Group
	for _, juror := range c.Jurors {
		a, ok := r.byAddress[juror]
		if !ok {
			r.logger.Warn().Msgf("juror %s is not played by the runner", juror)
			continue
		}
		juror := juror
		g.Go(func() error {
			_, err := r.proto.Vote(c.ID, juror, a.Judge(c, history))
			return err
		})
	}

	err = g.Wait()
	if err != nil {
		return types.CouncilResolution{}, xerrors.Errorf("failed to vote on %s: %v", c.ID, err)
	}

	res, err := r.proto.ResolveCase(c.ID)
	if err != nil {
		return types.CouncilResolution{}, xerrors.Errorf("failed to resolve %s: %v", c.ID, err)
	}

	r.logger.Info().Msgf("case %s against %s: %s", c.ID, suspect, res.Verdict)
	return res, nil
}

func (r *Runner) settle(m types.Market, suspect string) (types.MarketResolution, error) {
	agent, err := r.proto.GetAgent(suspect)
	if err != nil {
		return types.MarketResolution{}, xerrors.Errorf("failed to settle %s: %v", m.ID, err)
	}

	outcome := agent.Score >= types.TierFloor(types.Elite)
	res, err := r.proto.ResolveMarket(m.ID, outcome)
	if err != nil {
		return types.MarketResolution{}, xerrors.Errorf("failed to settle %s: %v", m.ID, err)
	}
	return res, nil
}
