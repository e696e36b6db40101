package impl

import (
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"go.dedis.ch/arp/datastructures/concurrent"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/registry"
	"go.dedis.ch/arp/registry/standard"
	"go.dedis.ch/arp/types"
)

// node is the single owner of the protocol state. Every entity carries its
// own lock; when two locks are needed they are taken in this order:
// council case or market, then agents by ascending address, then the ledger.
//
// - implements protocol.Protocol
type node struct {
	conf protocol.Configuration
	reg  registry.Registry

	agents      *agentStore
	ledger      *ledger
	delegations concurrent.Slice[types.Delegation]
	oracles     concurrent.Set[string]
	markets     *entityStore[types.Market]
	tokens      *entityStore[types.ReputationToken]
	cases       *entityStore[types.CouncilCase]
}

func newNode(conf protocol.Configuration) *node {
	conf = withDefaults(conf)

	return &node{
		conf:        conf,
		reg:         conf.Registry,
		agents:      newAgentStore(),
		ledger:      newLedger(),
		delegations: concurrent.NewSlice[types.Delegation](),
		oracles:     concurrent.NewSet[string](),
		markets:     newEntityStore[types.Market](),
		tokens:      newEntityStore[types.ReputationToken](),
		cases:       newEntityStore[types.CouncilCase](),
	}
}

// fills the unset or invalid fields of conf from the default configuration.
func withDefaults(conf protocol.Configuration) protocol.Configuration {
	def := protocol.DefaultConfiguration(conf.Registry)

	if conf.Registry == nil {
		conf.Registry = standard.NewRegistry()
	}
	if conf.Clock == nil {
		conf.Clock = def.Clock
	}
	if conf.Weights == (types.ScoreWeights{}) {
		conf.Weights = def.Weights
	}
	if conf.MaxRating == 0 && conf.MinRating == 0 {
		conf.MinRating, conf.MaxRating = def.MinRating, def.MaxRating
	}
	if conf.MinRating > conf.MaxRating {
		log.Warn().Msgf("rating range [%d, %d] is empty, using [%d, %d]",
			conf.MinRating, conf.MaxRating, def.MinRating, def.MaxRating)
		conf.MinRating, conf.MaxRating = def.MinRating, def.MaxRating
	}
	if conf.SlashFraction == 0 {
		conf.SlashFraction = def.SlashFraction
	}
	if math.IsNaN(conf.SlashFraction) || conf.SlashFraction < 0 || conf.SlashFraction > 1 {
		log.Warn().Msgf("slash fraction %v out of [0, 1], using %v", conf.SlashFraction, def.SlashFraction)
		conf.SlashFraction = def.SlashFraction
	}
	if conf.SlashRating == 0 {
		conf.SlashRating = def.SlashRating
	}
	if conf.OracleThreshold == 0 {
		conf.OracleThreshold = def.OracleThreshold
	}
	if conf.OracleWeight == 0 {
		conf.OracleWeight = def.OracleWeight
	}
	if conf.JurorCount <= 0 {
		conf.JurorCount = def.JurorCount
	}
	if conf.DefaultMarketDuration <= 0 {
		conf.DefaultMarketDuration = def.DefaultMarketDuration
	}

	return conf
}

func (n *node) now() time.Time {
	return n.conf.Clock()
}

// processes the events through the registry. Must be called without holding
// any lock, callbacks may call back into the protocol.
func (n *node) emit(evts ...types.Event) {
	for _, evt := range evts {
		err := n.reg.ProcessEvent(evt)
		if err != nil {
			log.Err(err).Msgf("failed to process event %s", evt.Name())
		}
	}
}
