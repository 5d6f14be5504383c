package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ainotebuddy/notekeeper/internal/analysis"
	"github.com/ainotebuddy/notekeeper/internal/config"
	"github.com/ainotebuddy/notekeeper/internal/logging"
	"github.com/ainotebuddy/notekeeper/internal/netmon"
	"github.com/ainotebuddy/notekeeper/internal/notes"
	"github.com/ainotebuddy/notekeeper/internal/queue/boltdb"
	"github.com/ainotebuddy/notekeeper/internal/store/sqlite"
	notesync "github.com/ainotebuddy/notekeeper/internal/sync"
)

var (
	cfgFile     string
	flagOffline bool
	flagMetered bool
	flagDataDir string
)

var rootCmd = &cobra.Command{
	Use:   "notekeeper",
	Short: "Offline-first note keeper with a durable mutation queue",
	Long: `notekeeper stores notes locally and keeps every mutation in a durable
queue until it can be applied. Mutations made offline are replayed in
order once connectivity returns; conflicting edits are parked and
surfaced instead of silently overwritten.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&flagOffline, "offline", false, "treat the network as disconnected")
	rootCmd.PersistentFlags().BoolVar(&flagMetered, "metered", false, "treat the link as metered")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory override")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("notekeeper %s (built %s, commit %s)\n", Version, BuildDate, GitCommit)
	},
}

// app bundles the wired application components for one CLI invocation.
type app struct {
	cfg    *config.Config
	logger *slog.Logger
	notes  *sqlite.Storage
	queue  *boltdb.Storage
	coord  *notesync.Coordinator
	svc    notes.Service
}

// newApp loads configuration and wires storage, monitor, coordinator
// and the note service.
func newApp(ctx context.Context) (*app, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if flagDataDir != "" {
		cfg.DataDir = flagDataDir
		cfg.Store.Path = flagDataDir + "/notes.db"
		cfg.Queue.Path = flagDataDir + "/queue.db"
		cfg.Vault.SaltPath = flagDataDir + "/vault.salt"
	}
	if flagOffline {
		cfg.Network.Offline = true
	}
	if flagMetered {
		cfg.Network.Metered = true
	}

	logger := logging.New(cfg.Log)

	noteStore, err := sqlite.New(ctx, cfg.Store.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open note store: %w", err)
	}

	opQueue, err := boltdb.New(ctx, cfg.Queue.Path)
	if err != nil {
		noteStore.Close()
		return nil, fmt.Errorf("failed to open operation queue: %w", err)
	}

	var monitor netmon.Monitor
	if cfg.Network.Offline {
		monitor = netmon.NewManual(netmon.NetworkState{Connected: false})
	} else {
		probe := netmon.NewProbe(cfg.Network.ProbeAddr, cfg.Network.ProbeTimeout)
		probe.SetMetered(cfg.Network.Metered)
		monitor = probe
	}

	analyzer := analysis.NewHeuristic()
	locks := notesync.NewKeyedMutex()
	clock := notesync.NewLogicalClock()

	coord := notesync.NewCoordinator(notesync.Config{
		DrainInterval:       cfg.Sync.DrainInterval,
		MaintenanceInterval: cfg.Sync.MaintenanceInterval,
		BackoffBase:         cfg.Sync.BackoffBase,
		BackoffCap:          cfg.Sync.BackoffCap,
		MaxAttempts:         cfg.Sync.MaxAttempts,
		ForceSyncTimeout:    cfg.Sync.ForceSyncTimeout,
		ForceSyncPoll:       cfg.Sync.ForceSyncPoll,
	}, noteStore, opQueue, opQueue, monitor, analyzer, locks, logger)

	svc := notes.NewService(noteStore, opQueue, opQueue, monitor, analyzer, coord, locks, clock, logger)

	return &app{
		cfg:    cfg,
		logger: logger,
		notes:  noteStore,
		queue:  opQueue,
		coord:  coord,
		svc:    svc,
	}, nil
}

// Close releases the storage backends.
func (a *app) Close() {
	if err := a.queue.Close(); err != nil {
		a.logger.Error("Failed to close operation queue", "error", err)
	}
	if err := a.notes.Close(); err != nil {
		a.logger.Error("Failed to close note store", "error", err)
	}
}
