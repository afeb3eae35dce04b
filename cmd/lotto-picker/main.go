// Package main implements the lotto-picker command line.
// Without a subcommand it opens the desktop window; "draw" prints numbers
// to the terminal.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ytget/lotto-picker/internal/app"
	"github.com/ytget/lotto-picker/internal/draw"
	"github.com/ytget/lotto-picker/internal/model"
	"github.com/ytget/lotto-picker/internal/output"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

var (
	errSeedWithSecure = errors.New("--seed cannot be combined with --secure")
	errInvalidCount   = errors.New("--count must be at least 1")
)

// drawOptions holds the flags of the draw command
type drawOptions struct {
	picks   []int
	count   int
	secure  bool
	seed    uint64
	format  string
	noColor bool
}

// cli holds state shared by the commands of one invocation
type cli struct {
	verbose bool
	logger  *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "lotto-picker",
		Short: "Pick six lottery numbers from 1 to 45",
		Long: `lotto-picker draws six distinct numbers from 1 to 45.

Up to five numbers can be chosen by hand; the draw fills the rest.
Run without arguments to open the desktop window.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !c.verbose {
				return nil
			}
			logger, err := app.NewLogger(true)
			if err != nil {
				return err
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = c.logger.Sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGUI()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "Enable verbose logging")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "Open the desktop window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGUI()
		},
	}

	rootCmd.AddCommand(guiCmd, c.newDrawCmd())
	return rootCmd
}

func (c *cli) newDrawCmd() *cobra.Command {
	opts := &drawOptions{}

	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Draw numbers and print them",
		Long: `Draw six numbers and print them.

Numbers given with --pick are always part of every result. With --count the
draw is repeated using the same picks.`,
		Example: `  lotto-picker draw
  lotto-picker draw --pick 7 --pick 21 --count 5
  lotto-picker draw --seed 42 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runDraw(cmd, opts)
		},
	}

	cmd.Flags().IntSliceVarP(&opts.picks, "pick", "p", nil, "Number to include in every draw (repeatable, at most 5)")
	cmd.Flags().IntVarP(&opts.count, "count", "n", 1, "How many draws to make")
	cmd.Flags().BoolVar(&opts.secure, "secure", false, "Use the operating system's cryptographic random source")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Seed for a reproducible draw")
	cmd.Flags().StringVarP(&opts.format, "format", "f", string(output.FormatText), "Output format: text, json or yaml")
	cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "Print plain numbers without coloured balls")

	return cmd
}

func (c *cli) runGUI() error {
	return app.RunGUI(version, c.logger)
}

func (c *cli) runDraw(cmd *cobra.Command, opts *drawOptions) error {
	format, err := output.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	if opts.count < 1 {
		return errInvalidCount
	}

	seeded := cmd.Flags().Changed("seed")
	if seeded && opts.secure {
		return errSeedWithSecure
	}

	src, err := newSource(opts, seeded)
	if err != nil {
		return err
	}

	svc := draw.NewService(draw.NewDrawer(src), c.logger)
	svc.SetHistoryLimit(opts.count)

	for _, n := range opts.picks {
		if err := svc.Add(n); err != nil {
			return fmt.Errorf("cannot pick %d: %w", n, err)
		}
	}

	records := make([]*model.DrawRecord, 0, opts.count)
	for i := 0; i < opts.count; i++ {
		record, err := svc.Draw()
		if err != nil {
			return fmt.Errorf("draw failed: %w", err)
		}
		records = append(records, record)
	}

	return output.NewRenderer(format, !opts.noColor).Write(cmd.OutOrStdout(), records)
}

func newSource(opts *drawOptions, seeded bool) (draw.Source, error) {
	switch {
	case seeded:
		return draw.NewSeededSource(opts.seed), nil
	case opts.secure:
		return draw.NewSecureSource()
	default:
		return draw.NewSource(), nil
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
