// Package cli implements the masthead command-line interface.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/masthead/internal/catalog"
	"github.com/mesh-intelligence/masthead/internal/logging"
	"github.com/mesh-intelligence/masthead/internal/paths"
	"github.com/mesh-intelligence/masthead/pkg/types"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// errUsage marks argument errors so they map to exitUserError.
var errUsage = errors.New("usage")

// rootFlags holds global flag values accessible to all subcommands.
type rootFlags struct {
	configDir string
	seedFile  string
	logLevel  string
	jsonMode  bool
}

// app is the state shared by one command tree: flags, resolved config and
// the lazily built catalog.
type app struct {
	flags     rootFlags
	configDir string
	cfg       types.Config
	seedPath  string
	logger    *slog.Logger
	catalog   *catalog.Catalog
}

// NewRootCmd creates the top-level "masthead" command with global flags
// and all subcommands registered.
func NewRootCmd() *cobra.Command {
	a := &app{logger: logging.Discard()}

	root := &cobra.Command{
		Use:   "masthead",
		Short: "Query authors, magazines and the articles that link them",
		Long: "Masthead builds an in-memory graph of authors, magazines and articles\n" +
			"from a YAML seed (or the built-in demonstration) and answers questions\n" +
			"about it.",
		// Do not print usage on errors returned by subcommands.
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.flags.configDir, "config-dir", "", "configuration directory (default: $XDG_CONFIG_HOME/masthead)")
	root.PersistentFlags().StringVar(&a.flags.seedFile, "seed", "", "YAML seed file (default: built-in demonstration)")
	root.PersistentFlags().StringVar(&a.flags.logLevel, "log-level", "", "log level: debug, info, warn, error")
	root.PersistentFlags().BoolVar(&a.flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(a))
	root.AddCommand(newDemoCmd(a))
	root.AddCommand(newAuthorsCmd(a))
	root.AddCommand(newMagazinesCmd(a))
	root.AddCommand(newAuthorCmd(a))
	root.AddCommand(newMagazineCmd(a))
	root.AddCommand(newTopCmd(a))

	return root
}

// Execute runs the root command and exits with the appropriate code.
func Execute() {
	root := NewRootCmd()
	err := root.Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	os.Exit(exitCode(err))
}

// setup resolves the config directory, loads configuration and builds the
// logger. The catalog is loaded on first use.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	a.configDir = configDir

	cfg, err := loadConfig(configDir, cmd)
	if err != nil {
		return err
	}
	if a.flags.jsonMode {
		cfg.Output = types.OutputJSON
	}
	a.cfg = cfg

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	a.logger = logging.NewLogger(cmd.ErrOrStderr(), level, cfg.Output == types.OutputJSON)

	seedPath, err := paths.ResolveSeedFile(a.flags.seedFile, cfg.SeedFile, configDir)
	if err != nil {
		return fmt.Errorf("resolve seed file: %w", err)
	}
	a.seedPath = seedPath

	a.logger.Debug("configuration loaded",
		"config_dir", configDir,
		"seed", seedPath,
		"output", cfg.Output,
	)
	return nil
}

// loadCatalog returns the catalog, building it from the seed file or the
// demonstration seed on first call.
func (a *app) loadCatalog() (*catalog.Catalog, error) {
	if a.catalog != nil {
		return a.catalog, nil
	}
	if a.seedPath == "" {
		a.logger.Debug("using built-in demonstration seed")
		a.catalog = catalog.Demo(a.logger)
		return a.catalog, nil
	}
	c, err := catalog.LoadSeedFile(a.seedPath, a.logger)
	if err != nil {
		return nil, fmt.Errorf("load seed: %w", err)
	}
	a.catalog = c
	return c, nil
}

func (a *app) jsonOutput() bool {
	return a.cfg.Output == types.OutputJSON
}

// userErrors are the errors caused by input rather than the environment.
var userErrors = []error{
	errUsage,
	types.ErrValidation,
	types.ErrTypeMismatch,
	types.ErrOutputUnknown,
	types.ErrLogLevelUnknown,
	catalog.ErrAuthorNotFound,
	catalog.ErrMagazineNotFound,
	catalog.ErrDuplicateAuthor,
	catalog.ErrDuplicateMagazine,
	catalog.ErrInvalidSeed,
}

// exitCode maps a command error to a process exit code.
func exitCode(err error) int {
	if err == nil {
		return exitSuccess
	}
	for _, target := range userErrors {
		if errors.Is(err, target) {
			return exitUserError
		}
	}
	return exitSysError
}

// exactArgs is cobra.ExactArgs with errors that map to exitUserError.
func exactArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return fmt.Errorf("%w: %s accepts %d arg(s), received %d", errUsage, cmd.CommandPath(), n, len(args))
		}
		return nil
	}
}

// noArgs is cobra.NoArgs with errors that map to exitUserError.
func noArgs(cmd *cobra.Command, args []string) error {
	return exactArgs(0)(cmd, args)
}

// printLines writes one line per item, or placeholder when items is empty.
func printLines(w io.Writer, items []string, placeholder string) {
	if len(items) == 0 {
		fmt.Fprintln(w, placeholder)
		return
	}
	for _, item := range items {
		fmt.Fprintln(w, item)
	}
}
