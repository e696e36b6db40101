package main

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"go.dedis.ch/arp/protocol"
	"go.dedis.ch/arp/types"
)

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', 2, 64)
}

func printAgents(out io.Writer, agents []types.Agent) {
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"#", "Name", "Address", "Score", "Tier", "Stake", "Delegated", "Txs", "Oracle"})

	for i, a := range agents {
		oracle := ""
		if a.OracleStatus {
			oracle = "yes"
		}
		table.Append([]string{
			strconv.Itoa(i + 1),
			a.Name,
			a.Address,
			formatFloat(a.Score),
			string(a.Tier),
			formatFloat(a.Stake),
			formatFloat(a.DelegatedStake),
			strconv.FormatUint(uint64(a.TransactionCount), 10),
			oracle,
		})
	}

	table.Render()
}

// prints the resolved cases, agents are named through p
func printCases(out io.Writer, p protocol.Protocol, cases []types.CouncilResolution) {
	if len(cases) == 0 {
		return
	}

	fmt.Fprintln(out)
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Case", "Target", "Verdict", "Slashed", "Remaining"})

	for _, res := range cases {
		slashed, remaining, target := "-", "-", ""
		if res.Slash != nil {
			slashed = formatFloat(res.Slash.Slashed)
			remaining = formatFloat(res.Slash.Remaining)
			target = res.Slash.Name
		}
		if target == "" {
			target = caseTarget(p, res.CaseID)
		}
		table.Append([]string{res.CaseID, target, string(res.Verdict), slashed, remaining})
	}

	table.Render()
}

func caseTarget(p protocol.Protocol, caseID string) string {
	c, err := p.GetCase(caseID)
	if err != nil {
		return ""
	}
	a, err := p.GetAgent(c.Target)
	if err != nil {
		return c.Target
	}
	return a.Name
}

func printMarkets(out io.Writer, markets []types.MarketResolution) {
	if len(markets) == 0 {
		return
	}

	fmt.Fprintln(out)
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Market", "Outcome", "Yes", "No", "Payouts", "Unclaimed"})

	for _, m := range markets {
		outcome := types.No
		if m.Outcome {
			outcome = types.Yes
		}
		table.Append([]string{
			m.MarketID,
			outcome.String(),
			formatFloat(m.TotalYes),
			formatFloat(m.TotalNo),
			strconv.Itoa(len(m.Payouts)),
			formatFloat(m.Unclaimed),
		})
	}

	table.Render()
}

func printTiers(out io.Writer, dist map[types.Tier]int) {
	tiers := make([]types.Tier, 0, len(dist))
	for t := range dist {
		tiers = append(tiers, t)
	}
	// highest first
	sort.Slice(tiers, func(i, j int) bool {
		return types.TierFloor(tiers[i]) > types.TierFloor(tiers[j])
	})

	fmt.Fprintln(out)
	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Tier", "Agents"})
	for _, t := range tiers {
		table.Append([]string{string(t), strconv.Itoa(dist[t])})
	}
	table.Render()
}
