package testing

import (
	"sync"
	"time"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/protocol/impl"
	"go.dedis.ch/arp/registry"
	"go.dedis.ch/arp/registry/standard"
	"go.dedis.ch/arp/types"
)

type configTemplate struct {
	registry      registry.Registry
	clock         func() time.Time
	revokeOracles bool
	jurorCount    int
	slashFraction float64

	events   []types.Event
	handlers []registry.Exec
}

func newConfigTemplate() configTemplate {
	return configTemplate{
		registry:      standard.NewRegistry(),
		jurorCount:    5,
		slashFraction: 0.5,
		events:        make([]types.Event, 0),
		handlers:      make([]registry.Exec, 0),
	}
}

// Option is the type of options to configure a test protocol.
type Option func(*configTemplate)

// WithClock sets the source of timestamps.
func WithClock(clock func() time.Time) Option {
	return func(ct *configTemplate) {
		ct.clock = clock
	}
}

// WithOracleRevocation revokes oracles whose score drops below the threshold.
func WithOracleRevocation() Option {
	return func(ct *configTemplate) {
		ct.revokeOracles = true
	}
}

// WithJurorCount sets the number of jurors drawn per case.
func WithJurorCount(n int) Option {
	return func(ct *configTemplate) {
		ct.jurorCount = n
	}
}

// WithSlashFraction sets the fraction of stake removed by a slash.
func WithSlashFraction(f float64) Option {
	return func(ct *configTemplate) {
		ct.slashFraction = f
	}
}

// WithEventCallback registers a callback for that type of event.
func WithEventCallback(evt types.Event, handler registry.Exec) Option {
	return func(ct *configTemplate) {
		ct.events = append(ct.events, evt)
		ct.handlers = append(ct.handlers, handler)
	}
}

// TestProtocol wraps a protocol with helpers failing the test on error.
type TestProtocol struct {
	protocol.Protocol
	Registry registry.Registry
	t        require.TestingT
}

func buildConfig(opts ...Option) (configTemplate, protocol.Configuration) {
	template := newConfigTemplate()
	for _, opt := range opts {
		opt(&template)
	}

	config := protocol.DefaultConfiguration(template.registry)
	config.RevokeOracleBelowThreshold = template.revokeOracles
	config.JurorCount = template.jurorCount
	config.SlashFraction = template.slashFraction
	if template.clock != nil {
		config.Clock = template.clock
	}

	return template, config
}

// NewTestProtocol returns a protocol configured with the given options.
func NewTestProtocol(t require.TestingT, opts ...Option) TestProtocol {
	template, config := buildConfig(opts...)

	require.Equal(t, len(template.events), len(template.handlers))
	for i, evt := range template.events {
		template.registry.RegisterEventCallback(evt, template.handlers[i])
	}

	return TestProtocol{
		Protocol: impl.NewProtocol(config),
		Registry: template.registry,
		t:        t,
	}
}

// MustRegister registers an agent.
func (p TestProtocol) MustRegister(name string, stake float64, opts ...protocol.RegisterOption) types.Agent {
	a, err := p.RegisterAgent(name, stake, opts...)
	require.NoError(p.t, err)
	return a
}

// MustAgent returns the current record of the agent.
func (p TestProtocol) MustAgent(address string) types.Agent {
	a, err := p.GetAgent(address)
	require.NoError(p.t, err)
	return a
}

// MustTransact submits a transaction from -> to and attests it with the
// given rating.
func (p TestProtocol) MustTransact(from, to string, rating int) types.Attestation {
	tx, err := p.SubmitTransaction(from, to, 10)
	require.NoError(p.t, err)

	att, err := p.Attest(tx.Hash, rating, "test")
	require.NoError(p.t, err)
	return att
}

// MustPromote raises the agent above the oracle threshold with transactions
// rated 5 and registers it as oracle.
func (p TestProtocol) MustPromote(address, counterparty string) types.Agent {
	for p.MustAgent(address).Score < types.TierFloor(types.Elite) {
		p.MustTransact(address, counterparty, 5)
	}
	a, err := p.RegisterOracle(address)
	require.NoError(p.t, err)
	require.True(p.t, a.OracleStatus)
	return a
}

// EventsNamed returns the processed events with the given name.
func (p TestProtocol) EventsNamed(name string) []types.Event {
	res := make([]types.Event, 0)
	for _, evt := range p.Registry.GetEvents() {
		if evt.Name() == name {
			res = append(res, evt)
		}
	}
	return res
}

// Community is a set of agents registered on the same protocol.
type Community struct {
	TestProtocol
	agents []types.Agent
}

// NewCommunity registers 'n' agents with the given stake. Agent i rates
// agent i+1 once with 'rating', so that every agent but the last has a
// non-zero score.
func NewCommunity(t require.TestingT, n int, stake float64, rating int, opts ...Option) Community {
	require.GreaterOrEqual(t, n, 2)

	p := NewTestProtocol(t, opts...)
	agents := make([]types.Agent, n)
	for i := 0; i < n; i++ {
		agents[i] = p.MustRegister(agentName(i), stake)
	}
	for i := 0; i+1 < n; i++ {
		p.MustTransact(agents[i].Address, agents[i+1].Address, rating)
	}

	return Community{
		TestProtocol: p,
		agents:       agents,
	}
}

// Addresses returns the addresses of the agents, in registration order.
func (c Community) Addresses() []string {
	res := make([]string, len(c.agents))
	for i, a := range c.agents {
		res[i] = a.Address
	}
	return res
}

func agentName(i int) string {
	return "agent-" + string(rune('A'+i%26))
}

// FixedClock returns a clock that starts at 'start' and advances by 'step'
// at each call.
func FixedClock(start time.Time, step time.Duration) func() time.Time {
	var lock sync.Mutex
	current := start
	return func() time.Time {
		lock.Lock()
		defer lock.Unlock()
		res := current
		current = current.Add(step)
		return res
	}
}
