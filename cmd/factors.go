package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/oreforge/steelrank/internal"
	"github.com/oreforge/steelrank/schema"
	"github.com/spf13/cobra"
)

// factorsCmd prints the static reference tables behind the scoring models.
var factorsCmd = &cobra.Command{
	Use:   "factors",
	Short: "Show the emission, transport and country factor tables.",
	Long: `Print the static reference tables the scoring engine is built on:
per-route production emissions, per-mode freight cost and emission factors,
and per-country cost/risk/trade scores.`,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runFactors(); err != nil {
			internal.LogFatal("Cannot show factor tables", err)
		}
	},
}

func newFactorsTable(headers []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header(headers)
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})
	return table
}

func fmtFactor(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func runFactors() error {
	fmt.Println("Steel routes (t CO2 per ton of steel):")
	routes := newFactorsTable([]string{"Route", "CO2 Min", "CO2 Max", "CO2 Average"})
	var routeData [][]string
	for _, route := range schema.AllSteelRoutes {
		rc := schema.SteelRoutes[route]
		routeData = append(routeData, []string{
			string(rc.Route), fmtFactor(rc.CO2Min), fmtFactor(rc.CO2Max), fmtFactor(rc.CO2Average),
		})
	}
	if err := routes.Bulk(routeData); err != nil {
		return err
	}
	if err := routes.Render(); err != nil {
		return err
	}

	fmt.Println("\nTransport modes:")
	modes := newFactorsTable([]string{"Mode", "CO2 g/ton-km", "Cost $/ton-km"})
	var modeData [][]string
	for _, mode := range schema.AllTransportModes {
		tc := schema.TransportModes[mode]
		modeData = append(modeData, []string{
			string(tc.Mode), fmtFactor(tc.CO2PerTonKm), fmtFactor(tc.CostPerTonKm),
		})
	}
	if err := modes.Bulk(modeData); err != nil {
		return err
	}
	if err := modes.Render(); err != nil {
		return err
	}

	fmt.Println("\nCountry factors (0-1 normalized):")
	countries := newFactorsTable([]string{"Country", "Cost", "Risk", "Trade", "Volatility", "Growth"})
	var countryData [][]string
	for _, country := range schema.AllCountries {
		cf := schema.CountryFactorTable[country]
		countryData = append(countryData, []string{
			string(cf.Country), fmtFactor(cf.CostScore), fmtFactor(cf.RiskScore),
			fmtFactor(cf.TradeScore), fmtFactor(cf.Volatility), fmtFactor(cf.Growth),
		})
	}
	if err := countries.Bulk(countryData); err != nil {
		return err
	}
	return countries.Render()
}
