// Package cli wires the configuration, projection engine, and renderers
// into the gridedge-model command tree.
package cli

import (
	"fmt"

	"github.com/gridedge/financial-model/internal/charts"
	"github.com/gridedge/financial-model/internal/config"
	"github.com/gridedge/financial-model/internal/forecast"
	"github.com/gridedge/financial-model/internal/workbook"
	"github.com/gridedge/financial-model/pkg/constants"
	"github.com/gridedge/financial-model/pkg/output"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// CLI represents the command-line interface
type CLI struct {
	rootCmd *cobra.Command

	configPath   string
	logLevel     string
	outputFormat string
	workbookFile string
	graphsDir    string
}

// New creates a new CLI instance
func New() *CLI {
	cli := &CLI{}
	cli.rootCmd = cli.newRootCmd()
	return cli
}

// Execute runs the command tree.
func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gridedge-model",
		Short: "Compute-center financial model generator",
		Long: `Generates financial projection workbooks and charts for a compute-center
investment: month-by-month revenue, opex, cash flow, and break-even analysis
across the configured scenarios.

With no --config the built-in GridEdge catalogue is used.`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&cli.configPath, "config", "", "path to configuration file (built-in catalogue when empty)")
	cmd.PersistentFlags().StringVar(&cli.logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	cmd.AddCommand(cli.newForecastCmd())
	cmd.AddCommand(cli.newWorkbookCmd())
	cmd.AddCommand(cli.newChartsCmd())
	cmd.AddCommand(cli.newAllCmd())

	return cmd
}

// setup loads and validates the configuration, initializes logging, and runs
// the projections shared by every subcommand.
func (cli *CLI) setup() (*config.Configuration, *zap.Logger, []forecast.Result, error) {
	var conf *config.Configuration
	var err error
	if cli.configPath == "" {
		conf = config.Default()
	} else {
		conf, err = config.LoadConfiguration(cli.configPath)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("failed to load configuration at %s: %w", cli.configPath, err)
		}
	}

	logger, err := initializeLogger(conf.Logging, cli.logLevel)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	if err := conf.Validate(); err != nil {
		return nil, nil, nil, fmt.Errorf("invalid configuration: %w", err)
	}
	for _, warning := range conf.Warnings() {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "cli.setup"),
		)
	}

	results, err := forecast.GetForecast(logger, *conf)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to compute projections: %w", err)
	}

	return conf, logger, results, nil
}

func (cli *CLI) newForecastCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "forecast",
		Short: "Print the monthly projection tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, results, err := cli.setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			// CLI override takes precedence over config.
			outputFormat := conf.Output.Format
			if cli.outputFormat != "" {
				outputFormat = cli.outputFormat
			}
			if outputFormat == "" {
				outputFormat = constants.OutputFormatPretty
			}
			if err := config.ValidateOutputFormat(outputFormat); err != nil {
				return err
			}

			switch outputFormat {
			case constants.OutputFormatPretty:
				output.PrettyFormat(results)
			case constants.OutputFormatCSV:
				output.CsvFormat(results)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&cli.outputFormat, "output-format", "", "type of output override: pretty, csv")
	return cmd
}

func (cli *CLI) newWorkbookCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "workbook",
		Short: "Generate the multi-sheet xlsx financial model",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, results, err := cli.setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			return cli.writeWorkbook(conf, logger, results)
		},
	}
	cmd.Flags().StringVar(&cli.workbookFile, "out", "", "workbook output path (default from config)")
	return cmd
}

func (cli *CLI) newChartsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "charts",
		Short: "Generate the break-even, cash-flow, and CapEx charts",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, results, err := cli.setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			return cli.writeCharts(conf, logger, results)
		},
	}
	cmd.Flags().StringVar(&cli.graphsDir, "dir", "", "chart output directory (default from config)")
	return cmd
}

func (cli *CLI) newAllCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "all",
		Short: "Generate the workbook and the full chart set",
		RunE: func(cmd *cobra.Command, args []string) error {
			conf, logger, results, err := cli.setup()
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			if err := cli.writeWorkbook(conf, logger, results); err != nil {
				return err
			}
			return cli.writeCharts(conf, logger, results)
		},
	}
	cmd.Flags().StringVar(&cli.workbookFile, "out", "", "workbook output path (default from config)")
	cmd.Flags().StringVar(&cli.graphsDir, "dir", "", "chart output directory (default from config)")
	return cmd
}

func (cli *CLI) writeWorkbook(conf *config.Configuration, logger *zap.Logger, results []forecast.Result) error {
	path := conf.Output.WorkbookFile
	if cli.workbookFile != "" {
		path = cli.workbookFile
	}
	return workbook.NewBuilder(logger).Write(path, *conf, results)
}

func (cli *CLI) writeCharts(conf *config.Configuration, logger *zap.Logger, results []forecast.Result) error {
	dir := conf.Output.GraphsDir
	if cli.graphsDir != "" {
		dir = cli.graphsDir
	}
	_, err := charts.NewRenderer(logger).RenderAll(dir, *conf, results)
	return err
}
