package outwriter

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/oreforge/steelrank/internal"
	"github.com/oreforge/steelrank/schema"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteRankResults outputs the ranking results, dispatching based on the
// output format configured.
func WriteRankResults(results []schema.SupplierResult, cfg *internal.Config, duration time.Duration) error {
	fmtFloat, _ := createFormatters(cfg.Precision)

	switch cfg.Output {
	case schema.JSONOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeJSONResultsForRank(w, results, cfg)
		}, "Wrote JSON")
	case schema.CSVOut:
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeCSVResultsForRank(w, results, fmtFloat)
		}, "Wrote CSV")
	case schema.ParquetOut:
		return writeRankParquet(results, cfg)
	default:
		// Default to human-readable table
		return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
			return writeRankTable(results, cfg, fmtFloat, duration, w)
		}, "Wrote table")
	}
}

// writeRankTable generates and writes the human-readable ranking table.
func writeRankTable(results []schema.SupplierResult, cfg *internal.Config, fmtFloat func(float64) string, duration time.Duration, writer io.Writer) error {
	table := tablewriter.NewWriter(writer)

	// 1. Define Headers
	headers := []string{"Rank", "Supplier", "Country", "Route", "Landed Cost", "CO2 (t)", "Risk", "Score", "Label"}
	if cfg.Detail {
		headers = append(headers, "Freight", "Prod CO2", "Transp CO2", "Country Score")
	}
	table.Header(headers)

	// 2. Configure alignment
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	// 3. Populate rows
	label := getPlainLabel
	if cfg.UseColors {
		label = getColorLabel
	}
	var data [][]string
	for i, r := range results {
		row := []string{
			strconv.Itoa(i + 1),
			r.Supplier.Name,
			string(r.Supplier.Country),
			string(r.Supplier.SteelRoute),
			money(r.TotalLandedCost),
			fmtFloat(r.TotalCarbon),
			fmtFloat(r.SupplierRiskScore),
			fmtFloat(r.FinalScore),
			label(r.FinalScore),
		}
		if cfg.Detail {
			row = append(row,
				money(r.FreightCost),
				fmtFloat(r.ProductionCO2),
				fmtFloat(r.TransportCO2),
				fmtFloat(r.CountryScore),
			)
		}
		data = append(data, row)
	}

	// 4. Render the table
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if _, err := fmt.Fprintf(writer, "Ranked %d suppliers at %g tons (weights: cost=%.2f carbon=%.2f risk=%.2f)\n",
		len(results), cfg.Quantity, cfg.Weights.Cost, cfg.Weights.Carbon, cfg.Weights.Risk); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(writer, "Ranking completed in %v\n", duration); err != nil {
		return err
	}
	return nil
}

// writeCSVResultsForRank writes the ranking results in CSV format.
func writeCSVResultsForRank(w io.Writer, results []schema.SupplierResult, fmtFloat func(float64) string) error {
	header := []string{
		"rank",
		"supplier_id",
		"supplier",
		"country",
		"steel_route",
		"total_landed_cost",
		"freight_cost",
		"total_carbon",
		"production_co2",
		"transport_co2",
		"risk_score",
		"country_score",
		"final_score",
		"label",
	}
	return writeCSVWithHeader(w, header, func(cw *csv.Writer) error {
		for i, r := range results {
			rec := []string{
				strconv.Itoa(i + 1),
				r.Supplier.ID,
				r.Supplier.Name,
				string(r.Supplier.Country),
				string(r.Supplier.SteelRoute),
				money(r.TotalLandedCost),
				money(r.FreightCost),
				fmtFloat(r.TotalCarbon),
				fmtFloat(r.ProductionCO2),
				fmtFloat(r.TransportCO2),
				fmtFloat(r.SupplierRiskScore),
				fmtFloat(r.CountryScore),
				fmtFloat(r.FinalScore),
				getPlainLabel(r.FinalScore),
			}
			if err := cw.Write(rec); err != nil {
				return err
			}
		}
		return nil
	})
}

// rankJSONPayload is the JSON output envelope.
type rankJSONPayload struct {
	Quantity float64                   `json:"quantity"`
	Weights  schema.CalculationWeights `json:"weights"`
	Results  []schema.SupplierResult   `json:"results"`
}

// writeJSONResultsForRank writes the ranking results in JSON format.
func writeJSONResultsForRank(w io.Writer, results []schema.SupplierResult, cfg *internal.Config) error {
	return writeJSON(w, rankJSONPayload{
		Quantity: cfg.Quantity,
		Weights:  cfg.Weights,
		Results:  results,
	})
}
