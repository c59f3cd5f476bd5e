package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/campaign-kpi/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "campaign-kpi",
	Short: "Campaign conversion KPI analyzer",
	Long:  "Reconciles an audience reach list against a buyers/orders ledger to compute conversion KPIs, with CSV exports of the matched customers, daily trend, and KPI summary.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return fmt.Errorf("init logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
