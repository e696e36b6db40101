package main

import (
	"math"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/registry"
	"go.dedis.ch/arp/types"
	"golang.org/x/xerrors"
	"gopkg.in/yaml.v3"
)

// config is the content of the configuration file. Every field may be
// overridden by the ARP_* environment variables, read from a .env file if
// present.
type config struct {
	LogLevel            string         `yaml:"log_level"`
	Journal             string         `yaml:"journal"`
	FirebaseCredentials string         `yaml:"firebase_credentials"`
	Protocol            protocolConfig `yaml:"protocol"`
	Scenario            scenarioConfig `yaml:"scenario"`
}

type protocolConfig struct {
	Weights         weightsConfig `yaml:"weights"`
	MinRating       int           `yaml:"min_rating"`
	MaxRating       int           `yaml:"max_rating"`
	SlashFraction   float64       `yaml:"slash_fraction"`
	SlashRating     float64       `yaml:"slash_rating"`
	OracleThreshold float64       `yaml:"oracle_threshold"`
	OracleWeight    float64       `yaml:"oracle_weight"`
	RevokeOracles   bool          `yaml:"revoke_oracles"`
	JurorCount      int           `yaml:"juror_count"`
	MarketDuration  string        `yaml:"market_duration"`
}

type weightsConfig struct {
	Rating      float64 `yaml:"rating"`
	Stake       float64 `yaml:"stake"`
	Transaction float64 `yaml:"transaction"`
	Oracle      float64 `yaml:"oracle"`
	Council     float64 `yaml:"council"`
}

type scenarioConfig struct {
	Rounds     int     `yaml:"rounds"`
	Honest     int     `yaml:"honest"`
	Malicious  int     `yaml:"malicious"`
	Sybils     int     `yaml:"sybils"`
	Stake      float64 `yaml:"stake"`
	SybilStake float64 `yaml:"sybil_stake"`
	Bet        float64 `yaml:"bet"`
}

func defaultConfig() config {
	def := protocol.DefaultConfiguration(nil)

	return config{
		LogLevel: "info",
		Protocol: protocolConfig{
			Weights: weightsConfig{
				Rating:      def.Weights.Rating,
				Stake:       def.Weights.Stake,
				Transaction: def.Weights.Transaction,
				Oracle:      def.Weights.Oracle,
				Council:     def.Weights.Council,
			},
			MinRating:       def.MinRating,
			MaxRating:       def.MaxRating,
			SlashFraction:   def.SlashFraction,
			SlashRating:     def.SlashRating,
			OracleThreshold: def.OracleThreshold,
			OracleWeight:    def.OracleWeight,
			RevokeOracles:   def.RevokeOracleBelowThreshold,
			JurorCount:      def.JurorCount,
			MarketDuration:  def.DefaultMarketDuration.String(),
		},
		Scenario: scenarioConfig{
			Rounds:     3,
			Honest:     3,
			Malicious:  1,
			Sybils:     2,
			Stake:      50,
			SybilStake: 10,
			Bet:        5,
		},
	}
}

// loadConfig returns the default configuration, overridden by the file at
// path if not empty, then by the environment.
func loadConfig(path string) (config, error) {
	conf := defaultConfig()

	if path != "" {
		buf, err := os.ReadFile(path)
		if err != nil {
			return config{}, xerrors.Errorf("failed to read config: %v", err)
		}
		err = yaml.Unmarshal(buf, &conf)
		if err != nil {
			return config{}, xerrors.Errorf("failed to parse config %s: %v", path, err)
		}
	}

	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("failed to load .env")
	}

	err = conf.applyEnv()
	if err != nil {
		return config{}, err
	}

	return conf, nil
}

func (c *config) applyEnv() error {
	setString(&c.LogLevel, "ARP_LOG_LEVEL")
	setString(&c.Journal, "ARP_JOURNAL")
	setString(&c.FirebaseCredentials, "ARP_FIREBASE_CREDENTIALS")
	setString(&c.Protocol.MarketDuration, "ARP_MARKET_DURATION")

	floats := map[string]*float64{
		"ARP_SLASH_FRACTION":   &c.Protocol.SlashFraction,
		"ARP_ORACLE_THRESHOLD": &c.Protocol.OracleThreshold,
		"ARP_ORACLE_WEIGHT":    &c.Protocol.OracleWeight,
		"ARP_STAKE":            &c.Scenario.Stake,
	}
	for key, field := range floats {
		err := setFloat(field, key)
		if err != nil {
			return err
		}
	}

	ints := map[string]*int{
		"ARP_JUROR_COUNT": &c.Protocol.JurorCount,
		"ARP_ROUNDS":      &c.Scenario.Rounds,
		"ARP_HONEST":      &c.Scenario.Honest,
		"ARP_MALICIOUS":   &c.Scenario.Malicious,
		"ARP_SYBILS":      &c.Scenario.Sybils,
	}
	for key, field := range ints {
		err := setInt(field, key)
		if err != nil {
			return err
		}
	}

	value, ok := os.LookupEnv("ARP_REVOKE_ORACLES")
	if ok {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return xerrors.Errorf("invalid ARP_REVOKE_ORACLES: %v", err)
		}
		c.Protocol.RevokeOracles = b
	}

	return nil
}

// protocolConfiguration returns the configuration of a protocol processing
// its events with reg.
func (c config) protocolConfiguration(reg registry.Registry) (protocol.Configuration, error) {
	duration, err := time.ParseDuration(c.Protocol.MarketDuration)
	if err != nil {
		return protocol.Configuration{}, xerrors.Errorf("invalid market duration: %v", err)
	}
	if c.Protocol.MinRating > c.Protocol.MaxRating {
		return protocol.Configuration{}, xerrors.Errorf("min rating %d above max rating %d",
			c.Protocol.MinRating, c.Protocol.MaxRating)
	}
	if math.IsNaN(c.Protocol.SlashFraction) || c.Protocol.SlashFraction < 0 || c.Protocol.SlashFraction > 1 {
		return protocol.Configuration{}, xerrors.Errorf("slash fraction %v out of [0, 1]", c.Protocol.SlashFraction)
	}

	conf := protocol.DefaultConfiguration(reg)
	conf.Weights = types.ScoreWeights{
		Rating:      c.Protocol.Weights.Rating,
		Stake:       c.Protocol.Weights.Stake,
		Transaction: c.Protocol.Weights.Transaction,
		Oracle:      c.Protocol.Weights.Oracle,
		Council:     c.Protocol.Weights.Council,
	}
	conf.MinRating = c.Protocol.MinRating
	conf.MaxRating = c.Protocol.MaxRating
	conf.SlashFraction = c.Protocol.SlashFraction
	conf.SlashRating = c.Protocol.SlashRating
	conf.OracleThreshold = c.Protocol.OracleThreshold
	conf.OracleWeight = c.Protocol.OracleWeight
	conf.RevokeOracleBelowThreshold = c.Protocol.RevokeOracles
	conf.JurorCount = c.Protocol.JurorCount
	conf.DefaultMarketDuration = duration

	return conf, nil
}

func setString(field *string, key string) {
	value, ok := os.LookupEnv(key)
	if ok {
		*field = value
	}
}

func setFloat(field *float64, key string) error {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return xerrors.Errorf("invalid %s: %v", key, err)
	}
	*field = f
	return nil
}

func setInt(field *int, key string) error {
	value, ok := os.LookupEnv(key)
	if !ok {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return xerrors.Errorf("invalid %s: %v", key, err)
	}
	*field = i
	return nil
}
