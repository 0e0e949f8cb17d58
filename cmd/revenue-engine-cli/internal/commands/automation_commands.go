package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/ayais12210-hub/revenue-engine/internal/domain/leads"

	"github.com/spf13/cobra"
)

// InitAutomationCommands registers the automation commands with the root command.
func InitAutomationCommands(rootCmd *cobra.Command) error {
	leadIntakeCmd := &cobra.Command{
		Use:   "lead-intake",
		Short: "Run the intake pipeline for a single lead",
		RunE:  runLeadIntake,
	}
	leadIntakeCmd.Flags().String("email", "", "Lead email address (required)")
	leadIntakeCmd.Flags().String("name", "", "Lead name")
	leadIntakeCmd.Flags().String("source", "cli", "Lead source")
	leadIntakeCmd.Flags().StringSlice("tags", nil, "Tags to attach to the lead")
	if err := leadIntakeCmd.MarkFlagRequired("email"); err != nil {
		return err
	}
	rootCmd.AddCommand(leadIntakeCmd)

	briefingCmd := &cobra.Command{
		Use:   "daily-briefing",
		Short: "Generate and distribute the daily briefing",
		RunE:  runDailyBriefing,
	}
	rootCmd.AddCommand(briefingCmd)

	kpiRollupCmd := &cobra.Command{
		Use:   "kpi-rollup",
		Short: "Recompute the daily KPI row from leads and orders",
		RunE:  runKPIRollup,
	}
	kpiRollupCmd.Flags().String("date", "", "Day to roll up, YYYY-MM-DD (defaults to today)")
	rootCmd.AddCommand(kpiRollupCmd)

	return nil
}

func runLeadIntake(cmd *cobra.Command, _ []string) error {
	services, err := setupServices(cmd)
	if err != nil {
		return err
	}

	email, _ := cmd.Flags().GetString("email")
	name, _ := cmd.Flags().GetString("name")
	source, _ := cmd.Flags().GetString("source")
	tags, _ := cmd.Flags().GetStringSlice("tags")

	result, err := services.leadIntake.Process(context.Background(), &leads.Lead{
		Email:  email,
		Name:   name,
		Source: source,
		Tags:   tags,
	})
	if err != nil {
		return fmt.Errorf("lead intake failed: %w", err)
	}

	services.logger.Info("Lead intake completed: lead ", result.LeadID)
	if result.CRMPageID != "" {
		services.logger.Info("CRM page: ", result.CRMPageID)
	}
	if result.FollowUpIssue != "" {
		services.logger.Info("Follow-up issue: ", result.FollowUpIssue)
	}
	return nil
}

func runDailyBriefing(cmd *cobra.Command, _ []string) error {
	services, err := setupServices(cmd)
	if err != nil {
		return err
	}

	result, err := services.briefing.GenerateDaily(context.Background())
	if err != nil {
		return fmt.Errorf("daily briefing failed: %w", err)
	}

	if result.Partial {
		services.logger.Warn("Daily briefing completed partially: asset ", result.AssetID)
	} else {
		services.logger.Info("Daily briefing completed: asset ", result.AssetID,
			", ", result.Recipients, " recipients")
	}
	return nil
}

func runKPIRollup(cmd *cobra.Command, _ []string) error {
	services, err := setupServices(cmd)
	if err != nil {
		return err
	}

	day := time.Now().UTC()
	if raw, _ := cmd.Flags().GetString("date"); raw != "" {
		day, err = time.Parse("2006-01-02", raw)
		if err != nil {
			return fmt.Errorf("date must be YYYY-MM-DD: %w", err)
		}
	}

	daily, err := services.kpi.Rollup(context.Background(), day)
	if err != nil {
		return fmt.Errorf("kpi rollup failed: %w", err)
	}

	services.logger.Info("KPI rollup for ", daily.Date.Format("2006-01-02"), ": ",
		daily.Leads, " leads, ", daily.Orders, " orders, ", daily.GrossPence, " gross pence")
	return nil
}
