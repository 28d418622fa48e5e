// ABOUTME: Root Cobra command for the scorecard CLI.
// ABOUTME: Loads config and manages the storage and tracker lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/harperreed/scorecard/internal/config"
	"github.com/harperreed/scorecard/internal/storage"
	"github.com/harperreed/scorecard/internal/tracker"
)

var (
	dbPath   string
	debugLog bool

	cfg    *config.Config
	repo   storage.Repository
	tr     *tracker.Tracker
	logger *zap.Logger
)

// noStorage lists commands that manage their own stores or need none.
var noStorage = map[string]bool{
	"help":          true,
	"version":       true,
	"completion":    true,
	"install-skill": true,
	"migrate":       true,
	"sync":          true,
}

var rootCmd = &cobra.Command{
	Use:     "scorecard",
	Short:   "Weekly automation transformation scorecard",
	Version: version,
	Long: `Scorecard tracks a 12-week shift from manual work to automated,
recurring-revenue work. Each week you report a handful of numbers and
scorecard derives four indices against your week 1 baseline.

WHAT YOU REPORT EACH WEEK:

  Total hours worked          --total-hours
  Hours handled by automation --automated-hours
  Active clients              --clients
  Revenue vs week 1           --revenue-ratio (week 1 is 1.0)
  Recurring revenue %         --recurring
  What you automated          --automated
  Biggest bottleneck          --bottleneck

WHAT IT DERIVES:

  Automation Index             automated / total hours, as a percentage
  Time Saved                   week 1 hours minus this week's hours
  Revenue Efficiency Multiple  revenue per hour vs week 1
  Client Capacity Score        clients per hour vs week 1

QUICK START:

  $ scorecard submit --week 1 --total-hours 55 --automated-hours 8 --clients 3 --recurring 10
  $ scorecard submit --week 2 --total-hours 52 --automated-hours 15 --clients 3 \
      --revenue-ratio 1.05 --recurring 10
  $ scorecard list                # Progress table
  $ scorecard chart               # Dashboard bar charts
  $ scorecard report              # Narrative report and graduation readiness

PRIVACY:

  Absolute revenue is never stored. Pass --revenue and --baseline-revenue to
  have the ratio computed in memory; only the ratio is saved.

MCP INTEGRATION:

  Run 'scorecard mcp' to start the Model Context Protocol server:

  {
    "mcpServers": {
      "scorecard": { "command": "scorecard", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Weeks are stored in SQLite at ~/.local/share/scorecard/scorecard.db.
  Set "backend" in ~/.config/scorecard/config.json to use badger or charm.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if skipStorage(cmd) {
			return nil
		}
		return openStorage()
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return closeStorage()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "SQLite database path (overrides config backend)")
	rootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "enable debug logging")
}

func skipStorage(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if noStorage[c.Name()] {
			return true
		}
	}
	return false
}

// loadConfig reads the config file and builds the logger.
func loadConfig() error {
	var err error
	cfg, err = config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if logger == nil {
		if debugLog {
			logger, err = zap.NewDevelopment()
			if err != nil {
				return fmt.Errorf("failed to create logger: %w", err)
			}
		} else {
			logger = zap.NewNop()
		}
	}
	return nil
}

func openStorage() error {
	// A failed command skips PersistentPostRunE; drop anything left open.
	if err := closeStorage(); err != nil {
		return err
	}
	if err := loadConfig(); err != nil {
		return err
	}

	policy, err := cfg.GetPolicy()
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	if dbPath != "" {
		repo, err = storage.Open(config.ExpandPath(dbPath))
	} else {
		repo, err = cfg.OpenStorage(logger)
	}
	if err != nil {
		repo = nil
		return fmt.Errorf("failed to open storage: %w", err)
	}

	tr = tracker.New(repo, tracker.WithLogger(logger), tracker.WithPolicy(policy))
	logger.Debug("storage opened", zap.String("backend", backendName()), zap.String("policy", string(tr.Policy())))
	return nil
}

func closeStorage() error {
	tr = nil
	if logger != nil {
		_ = logger.Sync()
		logger = nil
	}
	if repo == nil {
		return nil
	}
	err := repo.Close()
	repo = nil
	return err
}

func backendName() string {
	if dbPath != "" {
		return "sqlite"
	}
	return cfg.GetBackend()
}
