package main

import (
	"context"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/campaign-kpi/internal/export"
	"github.com/sells-group/campaign-kpi/internal/kpi"
	"github.com/sells-group/campaign-kpi/internal/loader"
	"github.com/sells-group/campaign-kpi/internal/model"
)

var (
	analyzeReachPath  string
	analyzeBuyersPath string
	analyzeCampaign   string
	analyzeItem       string
	analyzeStart      string
	analyzeEnd        string
	analyzeOutDir     string
	analyzeNoExport   bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compute conversion KPIs from a reach file and a buyers file",
	Long: `Loads the reach and buyers tables (.csv or .xlsx), reconciles them on
normalized phone identity, and prints the KPI summary.

Unless --no-export is set, three CSVs are written to the output directory:
{campaign}_kpis.csv, {campaign}_converted_customers.csv, and
{campaign}_daily_conversions.csv.

Examples:
  campaign-kpi analyze --reach reach.xlsx --buyers orders.csv
  campaign-kpi analyze --reach reach.csv --buyers orders.csv \
      --item Auracos --start 2024-01-01 --end 2024-01-31 --campaign JanPush`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		report, err := runAnalyze(cmd.Context())
		if err != nil {
			return err
		}

		printSummary(cmd, report)

		if analyzeNoExport {
			return nil
		}

		campaign := analyzeCampaign
		if campaign == "" {
			campaign = cfg.Campaign.Name
		}
		outDir := analyzeOutDir
		if outDir == "" {
			outDir = cfg.Export.Dir
		}

		paths, err := export.WriteReport(outDir, campaign, report)
		if err != nil {
			return eris.Wrap(err, "analyze: export")
		}
		zap.L().Info("exports written", zap.Strings("files", paths))
		return nil
	},
}

// runAnalyze loads both tables, parses the filter flags, and runs the engine.
func runAnalyze(ctx context.Context) (*model.Report, error) {
	params, err := buildParams(analyzeItem, analyzeStart, analyzeEnd)
	if err != nil {
		return nil, err
	}

	reach, buyers, err := loader.LoadPair(ctx, analyzeReachPath, analyzeBuyersPath)
	if err != nil {
		return nil, err
	}
	zap.L().Info("tables loaded",
		zap.Int("reach_rows", reach.Len()),
		zap.Int("buyer_rows", buyers.Len()),
	)

	report, err := kpi.Compute(buyers, reach, params)
	if err != nil {
		return nil, eris.Wrap(err, "analyze")
	}
	return report, nil
}

// buildParams converts the raw flag values into engine params. Dates are
// YYYY-MM-DD and inclusive.
func buildParams(item, start, end string) (model.Params, error) {
	p := model.Params{ItemFilter: strings.TrimSpace(item)}

	if start != "" {
		t, err := time.Parse("2006-01-02", start)
		if err != nil {
			return p, eris.Errorf("analyze: --start wants YYYY-MM-DD, got %q", start)
		}
		p.Start = &t
	}
	if end != "" {
		t, err := time.Parse("2006-01-02", end)
		if err != nil {
			return p, eris.Errorf("analyze: --end wants YYYY-MM-DD, got %q", end)
		}
		p.End = &t
	}
	return p, nil
}

func printSummary(cmd *cobra.Command, report *model.Report) {
	cmd.Println("KPI Summary")
	cmd.Println("-----------")
	for _, m := range kpi.FormatSummary(report.Summary) {
		cmd.Printf("%-26s %s\n", m.Name, m.Value)
	}
	cmd.Println()
	cmd.Printf("%d converted rows across %d days\n", len(report.Converted), len(report.Daily))
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeReachPath, "reach", "", "path to reach file, .csv or .xlsx (required)")
	analyzeCmd.Flags().StringVar(&analyzeBuyersPath, "buyers", "", "path to buyers file, .csv or .xlsx (required)")
	analyzeCmd.Flags().StringVar(&analyzeCampaign, "campaign", "", "campaign name used in export file names (default from config)")
	analyzeCmd.Flags().StringVar(&analyzeItem, "item", "", "keep only buyer rows whose item name contains this text")
	analyzeCmd.Flags().StringVar(&analyzeStart, "start", "", "keep buyer rows on or after this date (YYYY-MM-DD)")
	analyzeCmd.Flags().StringVar(&analyzeEnd, "end", "", "keep buyer rows on or before this date (YYYY-MM-DD)")
	analyzeCmd.Flags().StringVar(&analyzeOutDir, "out", "", "directory for exported CSVs (default from config)")
	analyzeCmd.Flags().BoolVar(&analyzeNoExport, "no-export", false, "print the summary without writing CSVs")
	_ = analyzeCmd.MarkFlagRequired("reach")
	_ = analyzeCmd.MarkFlagRequired("buyers")
	rootCmd.AddCommand(analyzeCmd)
}
