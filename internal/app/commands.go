// internal/app/commands.go
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"ringron/internal/catalog"
	"ringron/internal/cli"
	"ringron/internal/config"
	"ringron/internal/engine"
	"ringron/internal/logging"
	"ringron/internal/output"
	"ringron/internal/ringing"
	"ringron/internal/version"
	"ringron/internal/writers"
)

// eventBuffer is the channel depth between the player and the JSONL encoder.
const eventBuffer = 256

// session is the state shared by the commands of one invocation.
type session struct {
	stdout io.Writer
	stderr io.Writer

	global cli.GlobalOptions
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	s := &session{stdout: stdout, stderr: stderr}

	root := &cobra.Command{
		Use:   "ringron",
		Short: "ringron - change-ringing extent generator",
		Long: `ringron expands change-ringing methods into full extents.

A method file describes how bells move during plain, bob and single leads.
An extent definition such as "pppb-ppb" picks the leads; ringron plays them
from rounds back to rounds, adding the conductor's calls.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: s.setup,
		PersistentPostRun: func(*cobra.Command, []string) {
			if s.logger != nil {
				_ = s.logger.Sync()
			}
		},
	}
	root.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return &cli.UsageError{Err: err}
	})

	pf := root.PersistentFlags()
	pf.StringVar(&s.global.ConfigPath, "config", "ringron.yaml", "config file (missing file = defaults)")
	pf.StringVar(&s.global.DataDir, "data-dir", "", "directory searched for method files")
	pf.BoolVarP(&s.global.Verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		s.methodsCmd(),
		s.extentCmd(),
		s.ringCmd(),
		versionCmd(stdout),
	)
	return root
}

func (s *session) setup(cmd *cobra.Command, _ []string) error {
	if cmd.Name() == "version" || cmd.Name() == "help" {
		return nil
	}
	cfg, err := config.Load(s.global.ConfigPath)
	if err != nil {
		return err
	}
	if s.global.DataDir != "" {
		cfg.DataDir = s.global.DataDir
	}
	s.cfg = cfg

	s.logger, err = logging.New(cfg.Logging.Level, cfg.Logging.Format, s.global.Verbose)
	if err != nil {
		return err
	}
	s.logger.Debug("config loaded",
		zap.String("path", s.global.ConfigPath),
		zap.String("data_dir", cfg.DataDir))
	return nil
}

func (s *session) openCatalog() (*catalog.Catalog, error) {
	return catalog.Open(s.cfg, s.logger)
}

/* -------------------------------------------------------------------------- */
/*                                  methods                                   */
/* -------------------------------------------------------------------------- */

func (s *session) methodsCmd() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "methods",
		Short: "List the available methods and their extents",
		Args:  noArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c, err := s.openCatalog()
			if err != nil {
				return err
			}
			switch format {
			case output.FormatText:
				return output.WriteMethodsText(s.stdout, c.Methods())
			case output.FormatJSON:
				return output.WriteMethodsJSON(s.stdout, c.Methods())
			default:
				return &cli.UsageError{Err: fmt.Errorf("invalid --output %q (want text | json)", format)}
			}
		},
	}
	cmd.Flags().StringVarP(&format, "output", "o", output.FormatText, "output format: text | json")
	return cmd
}

/* -------------------------------------------------------------------------- */
/*                                   extent                                   */
/* -------------------------------------------------------------------------- */

func bindExtentFlags(cmd *cobra.Command, o *cli.ExtentOptions) {
	f := cmd.Flags()
	f.BoolVar(&o.Cover, "cover", false, "add a cover bell when the method allows one")
	f.IntVar(&o.Intros, "intros", 1, "rounds pairs before the Go call")
	f.IntVar(&o.Courses, "courses", 1, "multiply the extent length")
	f.Uint64Var(&o.Seed, "seed", 0, "seed the shuffle of mutable definitions")
}

// prepare merges config defaults, validates and builds the requested extent.
func (s *session) prepare(cmd *cobra.Command, o *cli.ExtentOptions, args []string) (*engine.Extent, error) {
	var err error
	if o.Method, o.ExtentID, err = cli.ParseExtentArgs(args); err != nil {
		return nil, err
	}
	o.Merge(s.cfg.Extent, cmd.Flags().Changed)
	if err := o.Validate(); err != nil {
		return nil, err
	}

	c, err := s.openCatalog()
	if err != nil {
		return nil, err
	}
	m, ok := c.Lookup(o.Method)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownMethod, o.Method)
	}

	x, err := engine.New(engine.Config{Shuffler: o.Shuffler()}).Build(m, o.ExtentID, o.EngineOptions())
	if errors.Is(err, engine.ErrUnknownExtent) {
		return nil, fmt.Errorf("%w (have %s)", err, extentList(c.Entries(), m.Name()))
	}
	if err != nil {
		return nil, err
	}
	s.logger.Debug("extent built",
		zap.String("method", x.Method()),
		zap.String("extent", x.Name()),
		zap.String("definition", x.Definition()),
		zap.Int("rows", x.Len()),
		zap.Int("size", x.Size()))
	return x, nil
}

// extentList names the extents of method, e.g. `1 "Plain Course", 2 "Bob Course"`.
func extentList(entries []catalog.Entry, method string) string {
	var parts []string
	for _, e := range entries {
		if e.Method == method {
			parts = append(parts, fmt.Sprintf("%d %q", e.ExtentID, e.Name))
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, ", ")
}

func (s *session) extentCmd() *cobra.Command {
	var o cli.ExtentOptions
	cmd := &cobra.Command{
		Use:   "extent <method> <extent-id>",
		Short: "Generate an extent",
		Example: `  ringron extent "Plain Bob Minor" 2
  ringron extent "plain bob minor" 3 --seed 42 --output jsonl`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := s.prepare(cmd, &o, args)
			if err != nil {
				return err
			}
			return writers.WriteExtent(o.Output, s.stdout, x, writers.Options{Header: !o.NoHeader})
		},
	}
	bindExtentFlags(cmd, &o)
	cmd.Flags().StringVarP(&o.Output, "output", "o", output.FormatText, "output format: text | json | jsonl")
	cmd.Flags().BoolVar(&o.NoHeader, "no-header", false, "suppress the TSV header line (text)")
	return cmd
}

/* -------------------------------------------------------------------------- */
/*                                    ring                                    */
/* -------------------------------------------------------------------------- */

func (s *session) ringCmd() *cobra.Command {
	var (
		o        cli.ExtentOptions
		assigned string
	)
	cmd := &cobra.Command{
		Use:   "ring <method> <extent-id>",
		Short: "Stream the calls and strikes of an extent as JSONL",
		Long: `Ring an extent and stream its events, one JSON object per line.

Bells listed with --assigned are left silent for people to ring.`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if o.Assigned, err = cli.ParseAssigned(assigned); err != nil {
				return err
			}
			x, err := s.prepare(cmd, &o, args)
			if err != nil {
				return err
			}
			p := ringing.NewPlayer(s.logger, o.Assigned)
			if err := p.CheckAssigned(x); err != nil {
				return &cli.UsageError{Err: err}
			}
			return s.ring(cmd.Context(), p, x)
		},
	}
	bindExtentFlags(cmd, &o)
	cmd.Flags().StringVar(&assigned, "assigned", "", "bells rung by people, e.g. 1,3")
	return cmd
}

// ring runs the player and the JSONL encoder side by side.
func (s *session) ring(ctx context.Context, p *ringing.Player, x *engine.Extent) error {
	in, done := writers.StartEventJSONLWriter(s.stdout, eventBuffer)

	g, gctx := errgroup.WithContext(ctx)
	var sum ringing.Summary
	g.Go(func() error {
		defer close(in)
		var err error
		sum, err = p.Play(gctx, x, ringing.ChanSink(in))
		return err
	})
	g.Go(func() error {
		return <-done
	})
	err := g.Wait()

	s.logger.Info("ringing finished",
		zap.Int("rows", sum.Rows),
		zap.Int("strikes", sum.Strikes),
		zap.Int("calls", sum.Calls),
		zap.Int("silenced", sum.Silenced),
		zap.Error(err))
	return err
}

/* -------------------------------------------------------------------------- */
/*                                  version                                   */
/* -------------------------------------------------------------------------- */

func versionCmd(stdout io.Writer) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  noArgs,
		RunE: func(*cobra.Command, []string) error {
			_, err := fmt.Fprintf(stdout, "ringron version %s\n", version.Version)
			return err
		},
	}
}

func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return &cli.UsageError{Err: fmt.Errorf("%s takes no arguments, got %s", cmd.Name(), strings.Join(args, " "))}
	}
	return nil
}
