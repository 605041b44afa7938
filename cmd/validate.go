package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"datasure/core/config"
	"datasure/core/logger"
	"datasure/core/server"
	"datasure/core/validate"
	"datasure/feature/validation/export"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the validate command
	projectName string
	reportName  string
	environment string
	excelOut    string
	jsonOut     bool
)

// validateCmd runs one validation pipeline offline, without the server.
var validateCmd = &cobra.Command{
	Use:   "validate <source.csv> <target.csv>",
	Short: "Validate a target export against a source export",
	Long: `Validate compares two delimited-text exports of the same logical report
and prints the validation report.

Examples:
  # Print a human-readable summary
  datasure validate cognos_export.csv powerbi_export.csv

  # Full report as JSON
  datasure validate cognos_export.csv powerbi_export.csv --json

  # Also write the Excel report
  datasure validate cognos_export.csv powerbi_export.csv --excel report.xlsx`,
	Args: cobra.ExactArgs(2),
	RunE: runValidate,
}

func init() {
	validateCmd.Flags().StringVar(&projectName, "project", "DataSure Validation", "Project name echoed into the report")
	validateCmd.Flags().StringVar(&reportName, "report", "Data Validation Report", "Report name echoed into the report")
	validateCmd.Flags().StringVar(&environment, "env", server.EnvironmentUAT, "Deployment environment label (DEV, TEST, UAT, PROD)")
	validateCmd.Flags().StringVar(&excelOut, "excel", "", "Write the Excel report to this path")
	validateCmd.Flags().BoolVar(&jsonOut, "json", false, "Print the full report as JSON")

	RootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := config.LoadConfig(".")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	sourceData, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("reading source file: %w", err)
	}
	targetData, err := os.ReadFile(args[1])
	if err != nil {
		return fmt.Errorf("reading target file: %w", err)
	}

	engine := validate.NewEngine(l)
	report, err := engine.Run(ctx, validate.Config{
		ProjectName: projectName,
		ReportName:  reportName,
		Environment: server.NormalizeEnvironment(environment),
	}, validate.Input{Name: args[0], Data: sourceData}, validate.Input{Name: args[1], Data: targetData})
	if err != nil {
		return err
	}

	if excelOut != "" {
		content, err := export.Excel(report, time.Now())
		if err != nil {
			return fmt.Errorf("rendering excel report: %w", err)
		}
		if err := os.WriteFile(excelOut, content, 0o644); err != nil {
			return fmt.Errorf("writing excel report: %w", err)
		}
		l.Info("Excel report written", zap.String("path", excelOut))
	}

	if jsonOut {
		out, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
		return nil
	}

	printSummary(report)
	return nil
}

func printSummary(report *validate.ValidationReport) {
	fmt.Printf("Overall: %s\n", report.OverallStatus)
	fmt.Printf("Source:  %s (%d rows, %d columns)\n", report.SourceFile, report.SourceShape.Rows, report.SourceShape.Columns)
	fmt.Printf("Target:  %s (%d rows, %d columns)\n", report.TargetFile, report.TargetShape.Rows, report.TargetShape.Columns)
	for _, result := range report.Results {
		fmt.Printf("  [%-7s] %s: %s\n", result.Status, result.Name, result.Summary)
	}
}
