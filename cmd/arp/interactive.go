package main

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.dedis.ch/arp/datastructures"
	"go.dedis.ch/arp/identity"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/types"
	"golang.org/x/xerrors"
)

const (
	actRegister    = "Register an agent"
	actTransact    = "Submit and attest a transaction"
	actDelegate    = "Delegate stake"
	actSlash       = "Slash an agent"
	actOracle      = "Promote an oracle"
	actOracleRate  = "Oracle attestation"
	actMarket      = "Open a market"
	actBet         = "Place a bet"
	actSettle      = "Resolve a market"
	actCase        = "Bring an agent before the council"
	actMint        = "Mint a reputation token"
	actTransfer    = "Transfer a token"
	actUnified     = "Unified score"
	actLeaderboard = "Leaderboard"
	actQuit        = "Quit"
)

var actions = []string{
	actRegister, actTransact, actDelegate, actSlash, actOracle, actOracleRate,
	actMarket, actBet, actSettle, actCase, actMint, actTransfer, actUnified,
	actLeaderboard, actQuit,
}

// prompter asks the operator for answers.
type prompter interface {
	// Input returns the typed text, def if empty. validate may be nil.
	Input(message, def string, validate func(string) error) (string, error)
	// Select returns the index of the chosen option.
	Select(message string, options []string) (int, error)
	Confirm(message string) (bool, error)
}

// surveyPrompter prompts on the terminal.
type surveyPrompter struct{}

func (surveyPrompter) Input(message, def string, validate func(string) error) (string, error) {
	opts := make([]survey.AskOpt, 0, 1)
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans interface{}) error {
			return validate(ans.(string))
		}))
	}

	answer := ""
	err := survey.AskOne(&survey.Input{Message: message, Default: def}, &answer, opts...)
	return answer, err
}

func (surveyPrompter) Select(message string, options []string) (int, error) {
	idx := 0
	err := survey.AskOne(&survey.Select{Message: message, Options: options, PageSize: len(options)}, &idx)
	return idx, err
}

func (surveyPrompter) Confirm(message string) (bool, error) {
	answer := false
	err := survey.AskOne(&survey.Confirm{Message: message}, &answer)
	return answer, err
}

func required(answer string) error {
	if answer == "" {
		return xerrors.New("value is required")
	}
	return nil
}

func isFloat(answer string) error {
	_, err := strconv.ParseFloat(answer, 64)
	return err
}

func isInt(answer string) error {
	_, err := strconv.Atoi(answer)
	return err
}

// console drives a protocol from prompts
type console struct {
	ctx      context.Context
	proto    protocol.Protocol
	verifier protocol.IdentityVerifier
	ask      prompter
	out      io.Writer
}

func interactive(c *cli.Context) error {
	conf := configFrom(c)

	s, err := newSession(conf)
	if err != nil {
		return err
	}
	defer s.close()

	con := console{ctx: c.Context, proto: s, ask: surveyPrompter{}, out: c.App.Writer}

	if conf.FirebaseCredentials != "" {
		verifier, err := identity.NewFirebaseVerifier(c.Context, conf.FirebaseCredentials)
		if err != nil {
			return err
		}
		con.verifier = verifier
	}

	return con.loop()
}

func (c console) loop() error {
	handlers := map[string]func() error{
		actRegister:    c.register,
		actTransact:    c.transact,
		actDelegate:    c.delegate,
		actSlash:       c.slash,
		actOracle:      c.promote,
		actOracleRate:  c.oracleAttest,
		actMarket:      c.openMarket,
		actBet:         c.bet,
		actSettle:      c.settle,
		actCase:        c.council,
		actMint:        c.mint,
		actTransfer:    c.transfer,
		actUnified:     c.unified,
		actLeaderboard: c.leaderboard,
	}

	for {
		idx, err := c.ask.Select("What do you want to do?", actions)
		if xerrors.Is(err, terminal.InterruptErr) {
			return nil
		}
		if err != nil {
			return err
		}
		action := actions[idx]
		if action == actQuit {
			return nil
		}

		err = handlers[action]()
		if xerrors.Is(err, terminal.InterruptErr) {
			continue
		}
		if err != nil {
			// protocol errors are reported, the console goes on
			if _, ok := protocol.KindOf(err); ok {
				fmt.Fprintf(c.out, "rejected: %v\n", err)
				continue
			}
			return err
		}
	}
}

func (c console) register() error {
	name, err := c.ask.Input("Name", "", required)
	if err != nil {
		return err
	}

	stake, err := c.askFloat("Initial stake", "10")
	if err != nil {
		return err
	}

	opts := make([]protocol.RegisterOption, 0, 2)

	if c.verifier != nil {
		verified, err := c.verify()
		if err != nil {
			return err
		}
		opts = append(opts, protocol.WithVerifiedIdentity(verified))
	}

	withCredibility, err := c.ask.Confirm("Provide an external credibility score?")
	if err != nil {
		return err
	}
	if withCredibility {
		credibility, err := c.askFloat("Credibility (0-100)", fmt.Sprint(types.DefaultCredibility))
		if err != nil {
			return err
		}
		opts = append(opts, protocol.WithCredibility(credibility))
	}

	a, err := c.proto.RegisterAgent(name, stake, opts...)
	if err != nil {
		return err
	}

	fmt.Fprintf(c.out, "registered %s\n", a)
	return nil
}

// asks for the identity of a human operator and checks it
func (c console) verify() (bool, error) {
	email, err := c.ask.Input("Operator email (empty to skip)", "", nil)
	if err != nil || email == "" {
		return false, err
	}
	uid, err := c.ask.Input("Operator uid", "", required)
	if err != nil {
		return false, err
	}

	verified, err := c.verifier.Verify(c.ctx, email, uid)
	if err != nil {
		log.Err(err).Msg("identity verification failed")
		return false, nil
	}
	return verified, nil
}

func (c console) transact() error {
	from, err := c.selectAgent("Sender")
	if err != nil {
		return err
	}
	to, err := c.selectAgent("Receiver")
	if err != nil {
		return err
	}
	amount, err := c.askFloat("Amount", "10")
	if err != nil {
		return err
	}

	tx, err := c.proto.SubmitTransaction(from, to, amount)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "submitted %s\n", tx)

	rating, err := c.askInt("Rating (1-5)", "5")
	if err != nil {
		return err
	}

	outcomes := []types.AttestationType{
		types.AttestCompleted, types.AttestPartial, types.AttestFailed, types.AttestUnknown,
	}
	idx, err := c.ask.Select("Outcome", datastructures.Map(outcomes, func(tp types.AttestationType) string {
		return string(tp)
	}))
	if err != nil {
		return err
	}

	feedback, err := c.ask.Input("Feedback", "", nil)
	if err != nil {
		return err
	}

	att, err := c.proto.AttestWithType(tx.Hash, rating, feedback, outcomes[idx])
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "attested %s\n", att)
	return c.show(from)
}

func (c console) delegate() error {
	from, err := c.selectAgent("Delegator")
	if err != nil {
		return err
	}
	to, err := c.selectAgent("Beneficiary")
	if err != nil {
		return err
	}
	amount, err := c.askFloat("Amount", "1")
	if err != nil {
		return err
	}

	d, err := c.proto.DelegateStake(from, to, amount)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "delegated %s\n", d)
	return c.show(to)
}

func (c console) slash() error {
	addr, err := c.selectAgent("Agent")
	if err != nil {
		return err
	}
	reason, err := c.ask.Input("Reason", "", required)
	if err != nil {
		return err
	}

	res, err := c.proto.Slash(addr, reason)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s\n", res)
	return c.show(addr)
}

func (c console) promote() error {
	addr, err := c.selectAgent("Agent")
	if err != nil {
		return err
	}

	a, err := c.proto.RegisterOracle(addr)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s is an oracle\n", a)
	return nil
}

func (c console) oracleAttest() error {
	oracles := c.proto.Oracles()
	if len(oracles) == 0 {
		fmt.Fprintln(c.out, "no oracle yet")
		return nil
	}

	idx, err := c.ask.Select("Oracle", oracles)
	if err != nil {
		return err
	}
	oracle := oracles[idx]
	target, err := c.selectAgent("Target")
	if err != nil {
		return err
	}
	rating, err := c.askInt("Rating (1-5)", "5")
	if err != nil {
		return err
	}
	evidence, err := c.ask.Input("Evidence", "", nil)
	if err != nil {
		return err
	}

	r, err := c.proto.OracleAttest(oracle, target, rating, evidence)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "recorded %s (%s)\n", formatFloat(r.Value), r.Reference)
	return c.show(target)
}

func (c console) openMarket() error {
	target, err := c.selectAgent("Target")
	if err != nil {
		return err
	}
	description, err := c.ask.Input("Question", "", required)
	if err != nil {
		return err
	}
	hours, err := c.askInt("Duration in hours (0 for default)", "0")
	if err != nil {
		return err
	}

	m, err := c.proto.CreateMarket(target, description, hours)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "opened %s\n", m)
	return nil
}

func (c console) bet() error {
	marketID, err := c.selectMarket(false)
	if err != nil || marketID == "" {
		return err
	}
	bettor, err := c.selectAgent("Bettor")
	if err != nil {
		return err
	}
	amount, err := c.askFloat("Amount", "5")
	if err != nil {
		return err
	}
	yes, err := c.ask.Confirm("Bet YES?")
	if err != nil {
		return err
	}

	b, err := c.proto.PlaceBet(marketID, bettor, amount, types.Side(yes))
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "bet %s on %s\n", formatFloat(b.Amount), b.Side)
	return nil
}

func (c console) settle() error {
	marketID, err := c.selectMarket(false)
	if err != nil || marketID == "" {
		return err
	}
	outcome, err := c.ask.Confirm("Did it happen?")
	if err != nil {
		return err
	}

	res, err := c.proto.ResolveMarket(marketID, outcome)
	if err != nil {
		return err
	}
	printMarkets(c.out, []types.MarketResolution{res})
	for _, p := range res.Payouts {
		fmt.Fprintf(c.out, "  %s receives %s\n", p.Bettor, formatFloat(p.Amount))
	}
	return nil
}

// opens a case, asks every juror for its vote and resolves it
func (c console) council() error {
	target, err := c.selectAgent("Accused")
	if err != nil {
		return err
	}
	evidence, err := c.ask.Input("Evidence", "", nil)
	if err != nil {
		return err
	}
	accuser, err := c.ask.Input("Accuser", "", nil)
	if err != nil {
		return err
	}

	cs, err := c.proto.CreateCase(target, evidence, accuser)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "opened %s\n", cs)

	for _, juror := range cs.Jurors {
		a, err := c.proto.GetAgent(juror)
		if err != nil {
			return err
		}
		guilty, err := c.ask.Confirm(fmt.Sprintf("Does %s vote guilty?", a.Name))
		if err != nil {
			return err
		}
		_, err = c.proto.Vote(cs.ID, juror, guilty)
		if err != nil {
			return err
		}
	}

	res, err := c.proto.ResolveCase(cs.ID)
	if err != nil {
		return err
	}
	printCases(c.out, c.proto, []types.CouncilResolution{res})
	return nil
}

func (c console) mint() error {
	addr, err := c.selectAgent("Agent")
	if err != nil {
		return err
	}
	t, err := c.proto.MintToken(addr)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "minted %s\n", t)
	return nil
}

func (c console) transfer() error {
	tokenID, err := c.ask.Input("Token id", "", required)
	if err != nil {
		return err
	}
	owner, err := c.selectAgent("New owner")
	if err != nil {
		return err
	}
	t, err := c.proto.TransferToken(tokenID, owner)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "transferred %s\n", t)
	return nil
}

func (c console) unified() error {
	addr, err := c.selectAgent("Agent")
	if err != nil {
		return err
	}
	weight, err := c.askFloat("Weight of the protocol score (0-1)", "0.5")
	if err != nil {
		return err
	}
	score, tier, err := c.proto.UnifiedScore(addr, weight)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "unified score %s (%s)\n", formatFloat(score), tier)
	return nil
}

func (c console) leaderboard() error {
	printAgents(c.out, c.proto.Leaderboard(-1))
	printTiers(c.out, c.proto.TierDistribution())
	return nil
}

func (c console) show(addr string) error {
	a, err := c.proto.GetAgent(addr)
	if err != nil {
		return err
	}
	fmt.Fprintf(c.out, "%s\n", a)
	return nil
}

// asks to pick one of the registered agents and returns its address
func (c console) selectAgent(message string) (string, error) {
	agents, err := c.proto.ListAgents(protocol.SortByName)
	if err != nil {
		return "", err
	}
	if len(agents) == 0 {
		return "", protocol.Errorf(protocol.NotFound, "select", "", "no agent registered")
	}

	options := make([]string, len(agents))
	for i, a := range agents {
		options[i] = fmt.Sprintf("%s (%s)", a.Name, a.Address)
	}

	idx, err := c.ask.Select(message, options)
	if err != nil {
		return "", err
	}
	return agents[idx].Address, nil
}

// asks to pick a market, resolved ones included or not. Returns "" if
// there is none to pick.
func (c console) selectMarket(resolved bool) (string, error) {
	markets := make([]types.Market, 0)
	for _, m := range c.proto.Markets() {
		if resolved || !m.Resolved {
			markets = append(markets, m)
		}
	}
	if len(markets) == 0 {
		fmt.Fprintln(c.out, "no open market")
		return "", nil
	}

	options := make([]string, len(markets))
	for i, m := range markets {
		options[i] = fmt.Sprintf("%s: %s", m.ID, m.Description)
	}

	idx, err := c.ask.Select("Market", options)
	if err != nil {
		return "", err
	}
	return markets[idx].ID, nil
}

func (c console) askFloat(message, def string) (float64, error) {
	answer, err := c.ask.Input(message, def, isFloat)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(answer, 64)
}

func (c console) askInt(message, def string) (int, error) {
	answer, err := c.ask.Input(message, def, isInt)
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(answer)
}
