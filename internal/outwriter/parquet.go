package outwriter

import (
	"fmt"
	"time"

	"github.com/oreforge/steelrank/internal"
	"github.com/oreforge/steelrank/schema"
	"github.com/parquet-go/parquet-go"
)

// RankingRow is the Parquet row shape for one ranked supplier. The schema is
// derived from the struct tags.
type RankingRow struct {
	Rank            int32     `parquet:"rank,snappy"`
	SupplierID      string    `parquet:"supplier_id,snappy"`
	SupplierName    string    `parquet:"supplier_name,snappy"`
	Country         string    `parquet:"country,snappy"`
	SteelRoute      string    `parquet:"steel_route,snappy"`
	Quantity        float64   `parquet:"quantity_tons,snappy"`
	TotalLandedCost float64   `parquet:"total_landed_cost,snappy"`
	FreightCost     float64   `parquet:"freight_cost,snappy"`
	TotalCarbon     float64   `parquet:"total_carbon_tons,snappy"`
	ProductionCO2   float64   `parquet:"production_co2_tons,snappy"`
	TransportCO2    float64   `parquet:"transport_co2_tons,snappy"`
	RiskScore       float64   `parquet:"risk_score,snappy"`
	CountryScore    float64   `parquet:"country_score,snappy"`
	FinalScore      float64   `parquet:"final_score,snappy"`
	RankedAt        time.Time `parquet:"ranked_at,snappy"`
}

// writeRankParquet writes the ranking results to a Parquet file. Parquet is
// a binary format, so an explicit output file is required.
func writeRankParquet(results []schema.SupplierResult, cfg *internal.Config) error {
	if cfg.OutputFile == "" {
		return fmt.Errorf("parquet output requires --output-file")
	}

	now := time.Now()
	rows := make([]RankingRow, len(results))
	for i, r := range results {
		rows[i] = RankingRow{
			Rank:            int32(i + 1),
			SupplierID:      r.Supplier.ID,
			SupplierName:    r.Supplier.Name,
			Country:         string(r.Supplier.Country),
			SteelRoute:      string(r.Supplier.SteelRoute),
			Quantity:        cfg.Quantity,
			TotalLandedCost: r.TotalLandedCost,
			FreightCost:     r.FreightCost,
			TotalCarbon:     r.TotalCarbon,
			ProductionCO2:   r.ProductionCO2,
			TransportCO2:    r.TransportCO2,
			RiskScore:       r.SupplierRiskScore,
			CountryScore:    r.CountryScore,
			FinalScore:      r.FinalScore,
			RankedAt:        now,
		}
	}

	file, err := selectOutputFile(cfg.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[RankingRow](file)
	defer func() { _ = writer.Close() }()

	if _, err := writer.Write(rows); err != nil {
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	return nil
}
