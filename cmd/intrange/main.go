package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/menmos/intrange-go"
	"github.com/menmos/intrange-go/config"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const (
	programName    = "intrange"
	configFlagName = "config"
	verboseFlag    = "verbose"
	limitFlagName  = "limit"
	profilePrefix  = "@"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

type flags struct {
	ConfigPath string
	Verbose    bool
}

func (f *flags) Bind(flagSet *pflag.FlagSet) {
	flagSet.StringVar(
		&f.ConfigPath,
		configFlagName,
		"",
		"The TOML or YAML file holding named ranges. Defaults to the user config directory.",
	)
	flagSet.BoolVarP(
		&f.Verbose,
		verboseFlag,
		"v",
		false,
		"Log operand resolution to stderr.",
	)
}

// runner holds what every subcommand needs once flags are parsed.
type runner struct {
	flags  *flags
	logger *zap.Logger
	config *config.Config
}

func (r *runner) init() error {
	if !r.flags.Verbose {
		r.logger = zap.NewNop()
		return nil
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return errors.Wrap(err, "failed to build logger")
	}
	r.logger = logger
	return nil
}

func (r *runner) loadConfig() (*config.Config, error) {
	if r.config != nil {
		return r.config, nil
	}

	var cfg *config.Config
	var err error
	if r.flags.ConfigPath != "" {
		r.logger.Debug("loading config", zap.String("path", r.flags.ConfigPath))
		cfg, err = config.LoadFile(r.flags.ConfigPath)
	} else {
		r.logger.Debug("loading default config")
		cfg, err = config.LoadDefault()
	}
	if err != nil {
		return nil, err
	}

	r.config = cfg
	return cfg, nil
}

// resolve turns an operand into a range. Operands are either a range notation
// or @name for a configured range. Operands starting with a minus sign must
// come after a "--" separator.
func (r *runner) resolve(operand string) (intrange.Range, error) {
	if name, ok := strings.CutPrefix(operand, profilePrefix); ok {
		rng, err := r.resolveName(name)
		if err != nil {
			return intrange.Range{}, err
		}
		r.logger.Debug("resolved named range", zap.String("name", name), zap.Stringer("range", rng))
		return rng, nil
	}

	rng, err := intrange.ParseExFmt(operand)
	if err != nil {
		return intrange.Range{}, err
	}
	r.logger.Debug("parsed range", zap.String("operand", operand), zap.Stringer("range", rng))
	return rng, nil
}

func (r *runner) resolveName(name string) (intrange.Range, error) {
	if r.flags.ConfigPath == "" {
		r.logger.Debug("loading range from default config", zap.String("name", name))
		return config.LoadRangeByName(name)
	}
	cfg, err := r.loadConfig()
	if err != nil {
		return intrange.Range{}, err
	}
	return cfg.Range(name)
}

func (r *runner) resolveAll(operands []string) ([]intrange.Range, error) {
	ranges := make([]intrange.Range, 0, len(operands))
	for _, operand := range operands {
		rng, err := r.resolve(operand)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, rng)
	}
	return ranges, nil
}

func newRootCommand() *cobra.Command {
	r := &runner{flags: &flags{}}

	cmd := &cobra.Command{
		Use:          programName,
		Short:        "Query arithmetic progressions of integers.",
		SilenceUsage: true,
		PersistentPreRunE: func(*cobra.Command, []string) error {
			return r.init()
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = r.logger.Sync()
		},
	}
	r.flags.Bind(cmd.PersistentFlags())

	cmd.AddCommand(
		newInfoCommand(r),
		newListCommand(r),
		newContainsCommand(r),
		newNthCommand(r),
		newSumCommand(r),
		newRelationCommand(r, "includes", "Print whether every element of B is in A.", intrange.Range.Includes),
		newRelationCommand(r, "intersects", "Print whether A and B share an element.", intrange.Range.Intersects),
		newProfilesCommand(r),
	)
	return cmd
}

func newInfoCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "info RANGE",
		Short: "Print a JSON summary of a range.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, err := r.resolve(args[0])
			if err != nil {
				return err
			}
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(rng.Info())
		},
	}
}

func newListCommand(r *runner) *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "list RANGE",
		Short: "Print the elements of a range, one per line.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, err := r.resolve(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for i, value := range rng.Enumerate() {
				if limit >= 0 && i >= limit {
					break
				}
				if _, err := fmt.Fprintln(out, value); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, limitFlagName, -1, "Print at most this many elements.")
	return cmd
}

func parseIntArg(name string, arg string) (int, error) {
	value, err := strconv.Atoi(arg)
	if err != nil {
		return 0, errors.Wrapf(err, "%s must be an integer", name)
	}
	return value, nil
}

func newContainsCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "contains RANGE VALUE",
		Short: "Print whether VALUE is an element of RANGE.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, err := r.resolve(args[0])
			if err != nil {
				return err
			}
			value, err := parseIntArg("value", args[1])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rng.Contains(value))
			return err
		},
	}
}

func newNthCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "nth RANGE N",
		Short: "Print the N-th element of RANGE, starting at 0.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, err := r.resolve(args[0])
			if err != nil {
				return err
			}
			n, err := parseIntArg("N", args[1])
			if err != nil {
				return err
			}
			value, ok, err := rng.Nth(n)
			if err != nil {
				return err
			}
			if !ok {
				return errors.Errorf("%s has no element at index %d", rng, n)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), value)
			return err
		},
	}
}

func newSumCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "sum RANGE",
		Short: "Print the sum of the elements of RANGE.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rng, err := r.resolve(args[0])
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), rng.Sum())
			return err
		},
	}
}

func newRelationCommand(r *runner, name string, short string, relation func(intrange.Range, intrange.Range) bool) *cobra.Command {
	return &cobra.Command{
		Use:   name + " A B",
		Short: short,
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ranges, err := r.resolveAll(args)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), relation(ranges[0], ranges[1]))
			return err
		},
	}
}

func newProfilesCommand(r *runner) *cobra.Command {
	return &cobra.Command{
		Use:   "profiles",
		Short: "List the configured named ranges.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := r.loadConfig()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				r.logger.Warn("invalid ranges in config", zap.Error(err))
			}
			out := cmd.OutOrStdout()
			for _, name := range cfg.Names() {
				rng, err := cfg.Range(name)
				if err != nil {
					continue
				}
				if _, err := fmt.Fprintf(out, "%s\t%s\n", name, rng); err != nil {
					return err
				}
			}
			return nil
		},
	}
}
