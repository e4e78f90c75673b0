package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/awakened-intelligence/catalog-inspector/internal/catalog"
	"github.com/awakened-intelligence/catalog-inspector/internal/config"
	"github.com/awakened-intelligence/catalog-inspector/internal/console"
	"github.com/awakened-intelligence/catalog-inspector/internal/logging"
	"github.com/awakened-intelligence/catalog-inspector/internal/store"
)

// Set by the linker.
var (
	version = "dev"
	commit  = "none"
)

// #region main
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region root
type rootFlags struct {
	configPath string
	dbPath     string
	delay      time.Duration
	noColor    bool
	debug      bool
	logFile    string
}

func newRootCmd() *cobra.Command {
	f := &rootFlags{}

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Browse the Awakened Data Catalog",
		Long: `Interactive browser over the Awakened Data Catalog.

Type a domain key to inspect it, 's' for the schema, 'l' for licensing
and 'q' to quit. The catalog is built in unless --db points at a snapshot
written by 'inspect export'.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(cmd, f)
			if err != nil {
				return err
			}
			defer rt.close()

			sess := console.NewSession(rt.cat, cmd.OutOrStdout(), rt.sessionOptions()...)
			if err := sess.Run(cmd.InOrStdin()); err != nil {
				return err
			}
			rt.log.Debug("session ended")
			return nil
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "path to a YAML config file")
	pf.StringVar(&f.dbPath, "db", "", "load the catalog from this SQLite snapshot")
	pf.DurationVar(&f.delay, "delay", console.DefaultTypingDelay, "per-character typing delay for insights")
	pf.BoolVar(&f.noColor, "no-color", false, "disable terminal styling")
	pf.BoolVar(&f.debug, "debug", false, "write development logs to stderr")
	pf.StringVar(&f.logFile, "log-file", "", "write JSON logs to this file")

	cmd.AddCommand(
		newListCmd(f),
		newShowCmd(f),
		newSchemaCmd(f),
		newLicensingCmd(f),
		newExportCmd(f),
		newSnapshotsCmd(f),
		newReplayCmd(f),
		newVersionCmd(),
	)
	return cmd
}

// #endregion root

// #region runtime
// runtime is the wiring shared by every subcommand.
type runtime struct {
	cfg    *config.Config
	log    *zap.Logger
	cat    *catalog.Catalog
	source string
}

func (rt *runtime) close() {
	_ = rt.log.Sync()
}

func (rt *runtime) sessionOptions() []console.Option {
	return []console.Option{
		console.WithTypingDelay(time.Duration(rt.cfg.Console.TypingDelay)),
		console.WithColor(rt.cfg.Console.Color),
		console.WithLogger(rt.log),
	}
}

func (rt *runtime) renderer(cmd *cobra.Command) *console.Renderer {
	tw := console.NewTypewriter(time.Duration(rt.cfg.Console.TypingDelay))
	return console.NewRenderer(cmd.OutOrStdout(), tw, rt.cfg.Console.Color)
}

// loadRuntime resolves config (file, then env, then flags), builds the logger
// and loads the catalog once.
func loadRuntime(cmd *cobra.Command, f *rootFlags) (*runtime, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	flags := cmd.Flags()
	if flags.Changed("db") {
		cfg.Catalog.Source = config.SourceSQLite
		cfg.Catalog.DBPath = f.dbPath
	}
	if flags.Changed("delay") {
		cfg.Console.TypingDelay = config.Duration(f.delay)
	}
	if f.noColor {
		cfg.Console.Color = false
	}
	if f.logFile != "" {
		cfg.Logging.File = f.logFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Config{
		Level: cfg.Logging.Level,
		File:  cfg.Logging.File,
		Debug: f.debug,
	})
	if err != nil {
		return nil, err
	}

	cat, source, err := loadCatalog(cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}
	return &runtime{cfg: cfg, log: logger, cat: cat, source: source}, nil
}

func loadCatalog(cfg *config.Config, logger *zap.Logger) (*catalog.Catalog, string, error) {
	if cfg.Catalog.Source != config.SourceSQLite {
		cat := catalog.Builtin()
		logger.Info("catalog loaded", zap.String("source", config.SourceBuiltin), zap.Int("domains", cat.Len()))
		return cat, config.SourceBuiltin, nil
	}

	st, err := store.NewStore(cfg.Catalog.DBPath)
	if err != nil {
		return nil, "", fmt.Errorf("open catalog db %s: %w", cfg.Catalog.DBPath, err)
	}
	defer st.Close()

	cat, snap, err := st.LoadCatalog()
	if err != nil {
		return nil, "", fmt.Errorf("load catalog from %s: %w", cfg.Catalog.DBPath, err)
	}
	logger.Info("catalog loaded",
		zap.String("source", config.SourceSQLite),
		zap.String("db", cfg.Catalog.DBPath),
		zap.String("snapshot_id", snap.SnapshotID),
		zap.Int("domains", cat.Len()),
	)
	return cat, "sqlite:" + snap.SnapshotID, nil
}

// #endregion runtime
