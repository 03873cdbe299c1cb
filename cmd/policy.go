package cmd

import (
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/oreforge/steelrank/internal"
	"github.com/oreforge/steelrank/schema"
	"github.com/spf13/cobra"
)

// policyCmd prints the trade-policy defaults per country and route.
var policyCmd = &cobra.Command{
	Use:   "policy",
	Short: "Show the trade-policy defaults applied to suppliers.",
	Long: `Print the default tariff and credit structure for each supported country
and production route.

Green steel subsidies only apply to the Scrap-EAF route, and domestic tax
credits only apply to US suppliers; both forcing rules are reflected in the
output.`,
	Run: func(_ *cobra.Command, _ []string) {
		if err := runPolicy(); err != nil {
			internal.LogFatal("Cannot show trade policy", err)
		}
	},
}

func runPolicy() error {
	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Country", "Route", "Tariff %", "Anti-Dumping %", "Countervailing %", "Tax Credits $/t", "Green Subsidies $/t"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, country := range schema.AllCountries {
		for _, route := range schema.AllSteelRoutes {
			policy, err := schema.DefaultTradePolicy(country, route)
			if err != nil {
				return err
			}
			data = append(data, []string{
				string(country),
				string(route),
				strconv.FormatFloat(policy.TariffRate, 'f', -1, 64),
				strconv.FormatFloat(policy.AntiDumpingDuty, 'f', -1, 64),
				strconv.FormatFloat(policy.CountervailingDuty, 'f', -1, 64),
				strconv.FormatFloat(policy.DomesticTaxCredits, 'f', -1, 64),
				strconv.FormatFloat(policy.GreenSteelSubsidies, 'f', -1, 64),
			})
		}
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
