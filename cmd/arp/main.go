package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/protocol/impl"
	"go.dedis.ch/arp/registry/standard"
	"go.dedis.ch/arp/scenario"
	"go.dedis.ch/arp/storage"
	"golang.org/x/xerrors"
)

func main() {
	app := &cli.App{
		Name:  "arp",
		Usage: "reputation ledger for autonomous agents",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML configuration file",
				EnvVars: []string{"ARP_CONFIG"},
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:   "demo",
				Usage:  "play honest, malicious and sybil agents and report the outcome",
				Action: demo,
			},
			{
				Name:  "leaderboard",
				Usage: "play the demo population and print the ranking",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Value: 10,
						Usage: "number of agents to print, negative for all",
					},
					&cli.StringFlag{
						Name:  "sort",
						Value: string(protocol.SortByScore),
						Usage: "score, stake, transactions or name",
					},
				},
				Action: leaderboard,
			},
			{
				Name:   "interactive",
				Usage:  "drive the ledger from prompts",
				Action: interactive,
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal().Err(err).Msg("arp failed")
	}
}

const configKey = "arp.config"

// loads the configuration and sets the global logger up
func setup(c *cli.Context) error {
	conf, err := loadConfig(c.String("config"))
	if err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		return xerrors.Errorf("invalid log level: %v", err)
	}
	zerolog.SetGlobalLevel(level)
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger()

	c.App.Metadata = map[string]interface{}{configKey: conf}
	return nil
}

func configFrom(c *cli.Context) config {
	conf, ok := c.App.Metadata[configKey].(config)
	if !ok {
		return defaultConfig()
	}
	return conf
}

// session is a protocol with its event registry and optional journal
type session struct {
	protocol.Protocol
	journal *storage.Journal
}

// number of events kept in memory when no journal records them
const eventHistory = 1024

func newSession(conf config) (session, error) {
	history := eventHistory
	if conf.Journal != "" {
		history = 0
	}
	reg := standard.NewRegistry(standard.WithHistory(history))

	pconf, err := conf.protocolConfiguration(reg)
	if err != nil {
		return session{}, err
	}

	s := session{Protocol: impl.NewProtocol(pconf)}

	if conf.Journal != "" {
		s.journal, err = storage.NewJournal(conf.Journal)
		if err != nil {
			return session{}, err
		}
		s.journal.Attach(reg)
		log.Info().Msgf("journaling events to %s", conf.Journal)
	}

	return s, nil
}

func (s session) close() {
	if s.journal == nil {
		return
	}
	err := s.journal.Close()
	if err != nil {
		log.Err(err).Msg("failed to close journal")
	}
}

// builds the runner of the demo population: the sybils are split over the
// malicious agents
func newRunner(p protocol.Protocol, conf scenarioConfig) (*scenario.Runner, error) {
	r := scenario.NewRunner(p,
		scenario.WithRounds(conf.Rounds),
		scenario.WithBetAmount(conf.Bet),
		scenario.WithLogger(log.Logger),
	)

	for i := 0; i < conf.Honest; i++ {
		_, err := r.AddHonest(fmt.Sprintf("honest-%d", i), conf.Stake)
		if err != nil {
			return nil, err
		}
	}

	parents := make([]string, 0, conf.Malicious)
	for i := 0; i < conf.Malicious; i++ {
		m, err := r.AddMalicious(fmt.Sprintf("malicious-%d", i), conf.Stake)
		if err != nil {
			return nil, err
		}
		parents = append(parents, m.Agent().Address)
	}

	if conf.Sybils > 0 && len(parents) == 0 {
		return nil, xerrors.Errorf("%d sybils without any malicious agent", conf.Sybils)
	}
	for i := 0; i < conf.Sybils; i++ {
		_, err := r.AddSybil(fmt.Sprintf("sybil-%d", i), conf.SybilStake, parents[i%len(parents)])
		if err != nil {
			return nil, err
		}
	}

	return r, nil
}

func demo(c *cli.Context) error {
	conf := configFrom(c)

	s, err := newSession(conf)
	if err != nil {
		return err
	}
	defer s.close()

	r, err := newRunner(s, conf.Scenario)
	if err != nil {
		return err
	}

	report, err := r.Run(c.Context)
	if err != nil {
		return err
	}

	out := c.App.Writer
	printAgents(out, report.Leaderboard)
	printCases(out, s, report.Cases)
	printMarkets(out, report.Markets)
	printTiers(out, s.TierDistribution())

	// the best agent gets a token of its standing
	if len(report.Leaderboard) > 0 {
		tok, err := s.MintToken(report.Leaderboard[0].Address)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\nminted %s\n", tok)
	}

	return nil
}

func leaderboard(c *cli.Context) error {
	conf := configFrom(c)

	s, err := newSession(conf)
	if err != nil {
		return err
	}
	defer s.close()

	r, err := newRunner(s, conf.Scenario)
	if err != nil {
		return err
	}

	_, err = r.Run(c.Context)
	if err != nil {
		return err
	}

	agents, err := s.ListAgents(protocol.SortKey(c.String("sort")))
	if err != nil {
		return err
	}

	limit := c.Int("limit")
	if limit >= 0 && limit < len(agents) {
		agents = agents[:limit]
	}

	printAgents(c.App.Writer, agents)
	return nil
}
