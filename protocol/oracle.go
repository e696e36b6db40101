package protocol

import "go.dedis.ch/arp/types"

// OracleService promotes high-reputation agents to weighted attestors.
type OracleService interface {
	// RegisterOracle promotes the agent if its current score reaches the
	// oracle threshold.
	RegisterOracle(address string) (types.Agent, error)

	// OracleAttest appends a weighted rating to the target.
	OracleAttest(oracle, target string, rating int, evidence string) (types.Rating, error)

	// Oracles returns the addresses of the current oracles.
	Oracles() []string
}
