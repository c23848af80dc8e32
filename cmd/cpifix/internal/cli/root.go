package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/meenmo/cpilib/inflation"
	"github.com/meenmo/cpilib/marketdata"
)

// Options configures the CLI.
type Options struct {
	Output io.Writer
}

// CLI wraps the cobra command tree.
type CLI struct {
	root *cobra.Command
}

type rootFlags struct {
	configPath  string
	fixingsPath string
	asOf        string
	verbose     bool
}

// NewCLI builds the cpifix command tree.
func NewCLI(opts Options) *CLI {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}

	flags := &rootFlags{}
	root := &cobra.Command{
		Use:           "cpifix",
		Short:         "Compute inflation index fixings from a historical series",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&flags.configPath, "config", "", "YAML config file describing the index")
	root.PersistentFlags().StringVar(&flags.fixingsPath, "fixings", "", "CSV file with date,value fixing rows")
	root.PersistentFlags().StringVar(&flags.asOf, "asof", "", "evaluation date (YYYY-MM-DD, default today)")
	root.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newZeroCmd(out, flags))
	root.AddCommand(newYoYCmd(out, flags))
	root.AddCommand(newLaggedCmd(out, flags))

	return &CLI{root: root}
}

// Execute runs the command tree.
func (c *CLI) Execute() error {
	return c.root.Execute()
}

func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}

// setup loads config and fixings and applies the evaluation date. It returns
// the parsed config and the loaded observations.
func setup(flags *rootFlags, logger zerolog.Logger) (Config, []marketdata.Observation, error) {
	cfg, err := LoadConfig(flags.configPath)
	if err != nil {
		return Config{}, nil, err
	}
	if flags.asOf != "" {
		asOf, err := time.Parse("2006-01-02", flags.asOf)
		if err != nil {
			return Config{}, nil, fmt.Errorf("invalid --asof %q: %w", flags.asOf, err)
		}
		inflation.SetEvaluationDate(asOf)
	}
	if flags.fixingsPath == "" {
		return Config{}, nil, fmt.Errorf("--fixings is required")
	}
	obs, err := marketdata.LoadFixingsCSV(flags.fixingsPath)
	if err != nil {
		return Config{}, nil, err
	}
	logger.Debug().
		Int("observations", len(obs)).
		Str("index", cfg.Region+" "+cfg.Family).
		Time("asof", inflation.EvaluationDate()).
		Msg("loaded fixings")
	return cfg, obs, nil
}

func (c Config) region() inflation.Region {
	return inflation.Region{Name: c.Region, Code: c.RegionCode}
}

func (c Config) frequency() (inflation.Frequency, error) {
	f := inflation.Frequency(c.Frequency)
	switch f {
	case inflation.Monthly, inflation.Quarterly, inflation.Semiannual, inflation.Annual:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported frequency %q", c.Frequency)
	}
}

func buildZeroIndex(cfg Config, obs []marketdata.Observation) (*inflation.ZeroIndex, error) {
	freq, err := cfg.frequency()
	if err != nil {
		return nil, err
	}
	lag, err := inflation.ParseTenor(cfg.AvailabilityLag)
	if err != nil {
		return nil, fmt.Errorf("availability lag: %w", err)
	}
	idx := inflation.NewZeroIndex(cfg.Family, cfg.region(), false, cfg.Interpolated,
		freq, lag, cfg.Currency, nil)
	for _, o := range obs {
		if err := idx.AddFixing(o.Date, o.Value, false); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

func buildYoYIndex(cfg Config, obs []marketdata.Observation) (*inflation.YoYIndex, error) {
	freq, err := cfg.frequency()
	if err != nil {
		return nil, err
	}
	lag, err := inflation.ParseTenor(cfg.AvailabilityLag)
	if err != nil {
		return nil, fmt.Errorf("availability lag: %w", err)
	}
	idx := inflation.NewYoYIndex(cfg.Family, cfg.region(), false, cfg.Interpolated, cfg.Ratio,
		freq, lag, cfg.Currency, nil)
	for _, o := range obs {
		if err := idx.AddFixing(o.Date, o.Value, false); err != nil {
			return nil, err
		}
	}
	return idx, nil
}

func newZeroCmd(out io.Writer, flags *rootFlags) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "zero",
		Short: "Zero (price level) fixing at a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(flags.verbose)
			cfg, obs, err := setup(flags, logger)
			if err != nil {
				return err
			}
			d, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid --date %q: %w", date, err)
			}
			idx, err := buildZeroIndex(cfg, obs)
			if err != nil {
				return err
			}
			fixing, err := idx.Fixing(d)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s: %.6f\n", idx.Name(), date, fixing)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "fixing date (YYYY-MM-DD)")
	cobra.CheckErr(cmd.MarkFlagRequired("date"))
	return cmd
}

func newYoYCmd(out io.Writer, flags *rootFlags) *cobra.Command {
	var date string
	cmd := &cobra.Command{
		Use:   "yoy",
		Short: "Year-on-year fixing at a date",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(flags.verbose)
			cfg, obs, err := setup(flags, logger)
			if err != nil {
				return err
			}
			d, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid --date %q: %w", date, err)
			}
			idx, err := buildYoYIndex(cfg, obs)
			if err != nil {
				return err
			}
			fixing, err := idx.Fixing(d)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s: %.6f\n", idx.Name(), date, fixing)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "fixing date (YYYY-MM-DD)")
	cobra.CheckErr(cmd.MarkFlagRequired("date"))
	return cmd
}

func newLaggedCmd(out io.Writer, flags *rootFlags) *cobra.Command {
	var date, interpolation string
	cmd := &cobra.Command{
		Use:   "lagged",
		Short: "Lagged CPI fixing for a payment date",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := newLogger(flags.verbose)
			cfg, obs, err := setup(flags, logger)
			if err != nil {
				return err
			}
			d, err := time.Parse("2006-01-02", date)
			if err != nil {
				return fmt.Errorf("invalid --date %q: %w", date, err)
			}
			obsLag, err := inflation.ParseTenor(cfg.ObservationLag)
			if err != nil {
				return fmt.Errorf("observation lag: %w", err)
			}
			idx, err := buildZeroIndex(cfg, obs)
			if err != nil {
				return err
			}
			fixing, err := inflation.LaggedFixing(idx, d, obsLag,
				inflation.InterpolationType(interpolation))
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "%s %s (lag %s, %s): %.6f\n",
				idx.Name(), date, obsLag, interpolation, fixing)
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "payment date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&interpolation, "interpolation", string(inflation.InterpAsIndex),
		"AsIndex, Flat or Linear")
	cobra.CheckErr(cmd.MarkFlagRequired("date"))
	return cmd
}
