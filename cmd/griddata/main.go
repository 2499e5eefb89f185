// Package main provides the CLI entry point for griddata-go.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/mfischer/griddata-go/pkg/griddata"
	"github.com/mfischer/griddata-go/pkg/griddata/models"
	"github.com/mfischer/griddata-go/pkg/griddata/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	outputPath string
	pretty     bool
	toStdout   bool
	weeksDir   string
	winColor   string
	lossColor  string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "griddata [workbook.xlsm]",
		Short: "Extract football-pool data from the grid workbook",
		Long: `griddata-go reads the confidence-pool grid workbook ("Week N" sheets
plus "Standings") and writes one JSON document with picks, outcomes,
schedules, and standings.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: GRID_OUTPUT or docs/assets/grid-data.json)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")
	rootCmd.Flags().BoolVar(&toStdout, "stdout", false, "Write JSON to stdout instead of a file")
	rootCmd.Flags().StringVar(&weeksDir, "weeks-dir", "", "Directory for per-week output files")
	rootCmd.Flags().StringVar(&winColor, "win-color", griddata.DefaultWinColor, "ARGB fill color marking winning picks")
	rootCmd.Flags().StringVar(&lossColor, "loss-color", griddata.DefaultLossColor, "ARGB fill color marking losing picks")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	// A .env file is optional; configuration may come straight from the
	// environment.
	_ = godotenv.Load()

	cfg, err := griddata.NewConfig()
	if err != nil {
		return fmt.Errorf("read configuration: %w", err)
	}

	logger, err := griddata.NewLogger(cfg.Env)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer logger.Sync()

	workbook := cfg.WorkbookPath
	if len(args) == 1 {
		workbook = args[0]
	}
	if _, err := os.Stat(workbook); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s", griddata.ErrWorkbookNotFound, workbook)
	}

	dataset, err := griddata.Extract(workbook, griddata.Options{
		WinColor:  winColor,
		LossColor: lossColor,
		Logger:    logger,
	})
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	jsonData, err := output.ToJSON(dataset, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}

	if toStdout {
		fmt.Println(string(jsonData))
	} else {
		target := cfg.OutputPath
		if outputPath != "" {
			target = outputPath
		}
		if dir := filepath.Dir(target); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return fmt.Errorf("failed to create output directory: %w", err)
			}
		}
		if err := os.WriteFile(target, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		logger.Info("wrote grid data",
			zap.Int("weeks", len(dataset.Weeks)), zap.String("output", target))
	}

	if weeksDir != "" {
		if err := writeWeekFiles(dataset, weeksDir); err != nil {
			return fmt.Errorf("failed to write week files: %w", err)
		}
	}

	return nil
}

func writeWeekFiles(dataset *models.Dataset, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	for i := range dataset.Weeks {
		week := &dataset.Weeks[i]
		jsonData, err := output.WeekToJSON(week, pretty)
		if err != nil {
			return err
		}

		filename := filepath.Join(dir, week.Name+".json")
		if err := os.WriteFile(filename, jsonData, 0644); err != nil {
			return err
		}
	}

	return nil
}
