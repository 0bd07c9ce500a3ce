// Package main provides the CLI entry point for reparto.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/reparto-pfr/reparto-go/internal/config"
	"github.com/reparto-pfr/reparto-go/internal/web"
	"github.com/reparto-pfr/reparto-go/pkg/reparto"
	"github.com/reparto-pfr/reparto-go/pkg/reparto/output"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	configFile string
	outputPath string
	pretty     bool
	unit       string
	reportMode string
	eventMode  string
	columns    []string
)

func main() {
	v := config.New()

	rootCmd := &cobra.Command{
		Use:   "reparto",
		Short: "Fleet safety and delivery dashboard",
		Long: `reparto reads the fleet spreadsheet exports (unit reports, stops,
stop coordinates and incident logs) and serves them as a dashboard or JSON.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (yaml, toml or json)")
	rootCmd.PersistentFlags().String("data-dir", v.GetString("data-dir"), "Directory holding the dataset files")
	_ = v.BindPFlag("data-dir", rootCmd.PersistentFlags().Lookup("data-dir"))

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the dashboard over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), v)
		},
	}
	serveCmd.Flags().String("addr", v.GetString("addr"), "Listen address")
	_ = v.BindPFlag("addr", serveCmd.Flags().Lookup("addr"))

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "Render one dashboard pass as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(v)
		},
	}
	renderCmd.Flags().StringVar(&unit, "unit", "", "Unit number (default: all units)")
	renderCmd.Flags().StringVar(&reportMode, "report", "daily", "Report period: daily, monthly")
	renderCmd.Flags().StringVar(&eventMode, "events", "previous_day", "Incident period: previous_day, monthly")
	renderCmd.Flags().StringSliceVar(&columns, "column", nil, "Extra report column (repeatable)")
	renderCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file path (default: stdout)")
	renderCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	unitsCmd := &cobra.Command{
		Use:   "units",
		Short: "List the unit selector options",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUnits(v)
		},
	}
	unitsCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")

	rootCmd.AddCommand(serveCmd, renderCmd, unitsCmd)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func runServe(ctx context.Context, v *viper.Viper) error {
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}
	return web.Serve(ctx, cfg.Server.Addr, web.NewServer(cfg).Router())
}

func runRender(v *viper.Viper) error {
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	report, err := reparto.ParseReportMode(reportMode)
	if err != nil {
		return err
	}
	events, err := reparto.ParseEventMode(eventMode)
	if err != nil {
		return err
	}

	sel := reparto.Selection{
		Unit:         reparto.ParseUnit(unit),
		ReportMode:   report,
		EventMode:    events,
		ExtraColumns: columns,
	}

	d, err := reparto.Render(reparto.NewLoader(cfg.Options()), sel)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	jsonData, err := output.ToJSON(d, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return write(jsonData)
}

func runUnits(v *viper.Viper) error {
	cfg, err := config.Load(v, configFile)
	if err != nil {
		return err
	}

	units, err := reparto.NewLoader(cfg.Options()).UnitIDs()
	if err != nil {
		return err
	}

	options := []string{reparto.AllUnitsLabel}
	for _, u := range units {
		options = append(options, u.String())
	}

	jsonData, err := output.UnitsToJSON(options, pretty)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	return write(jsonData)
}

func write(jsonData []byte) error {
	if outputPath != "" {
		if err := os.WriteFile(outputPath, jsonData, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	fmt.Println(string(jsonData))
	return nil
}
