package main

import (
	"bytes"
	"context"
	"math"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/registry/standard"
	"go.dedis.ch/arp/types"
)

func Test_Config_Default(t *testing.T) {
	conf, err := loadConfig("")
	require.NoError(t, err)

	pconf, err := conf.protocolConfiguration(standard.NewRegistry())
	require.NoError(t, err)

	def := protocol.DefaultConfiguration(nil)
	require.Equal(t, def.Weights, pconf.Weights)
	require.Equal(t, def.SlashFraction, pconf.SlashFraction)
	require.Equal(t, def.OracleThreshold, pconf.OracleThreshold)
	require.Equal(t, 24*time.Hour, pconf.DefaultMarketDuration)
	require.Equal(t, 5, pconf.JurorCount)
}

func Test_Config_File_And_Env(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arp.yaml")
	content := `
log_level: debug
protocol:
  slash_fraction: 0.25
  juror_count: 3
  market_duration: 2h
  weights:
    rating: 10
scenario:
  rounds: 7
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	t.Setenv("ARP_JUROR_COUNT", "7")
	t.Setenv("ARP_REVOKE_ORACLES", "true")

	conf, err := loadConfig(path)
	require.NoError(t, err)
	require.Equal(t, "debug", conf.LogLevel)
	require.Equal(t, 7, conf.Scenario.Rounds)
	// untouched keys keep their default
	require.Equal(t, 3, conf.Scenario.Honest)

	pconf, err := conf.protocolConfiguration(standard.NewRegistry())
	require.NoError(t, err)
	require.Equal(t, 0.25, pconf.SlashFraction)
	require.Equal(t, 7, pconf.JurorCount)
	require.True(t, pconf.RevokeOracleBelowThreshold)
	require.Equal(t, 2*time.Hour, pconf.DefaultMarketDuration)
	require.Equal(t, 10.0, pconf.Weights.Rating)
	require.Equal(t, types.DefaultScoreWeights().Stake, pconf.Weights.Stake)
}

func Test_Config_Invalid(t *testing.T) {
	t.Setenv("ARP_ROUNDS", "many")
	_, err := loadConfig("")
	require.Error(t, err)

	conf := defaultConfig()
	conf.Protocol.SlashFraction = 2
	_, err = conf.protocolConfiguration(nil)
	require.Error(t, err)

	conf = defaultConfig()
	conf.Protocol.SlashFraction = math.NaN()
	_, err = conf.protocolConfiguration(nil)
	require.Error(t, err)

	conf = defaultConfig()
	conf.Protocol.MarketDuration = "tomorrow"
	_, err = conf.protocolConfiguration(nil)
	require.Error(t, err)
}

func Test_Demo_Report(t *testing.T) {
	conf := defaultConfig()

	s, err := newSession(conf)
	require.NoError(t, err)
	defer s.close()

	r, err := newRunner(s, conf.Scenario)
	require.NoError(t, err)

	report, err := r.Run(context.Background())
	require.NoError(t, err)

	var out bytes.Buffer
	printAgents(&out, report.Leaderboard)
	printCases(&out, s, report.Cases)
	printMarkets(&out, report.Markets)
	printTiers(&out, s.TierDistribution())

	require.Contains(t, out.String(), "malicious-0")
	require.Contains(t, out.String(), string(types.Guilty))
	require.Contains(t, out.String(), string(types.Legendary))
}

func Test_Demo_Sybils_Need_Parent(t *testing.T) {
	conf := defaultConfig()
	conf.Scenario.Malicious = 0

	s, err := newSession(conf)
	require.NoError(t, err)
	defer s.close()

	_, err = newRunner(s, conf.Scenario)
	require.Error(t, err)
}
