package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Drain the operation queue now",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		report, err := a.svc.ForceSync(ctx)
		if err != nil {
			return err
		}

		fmt.Printf("Applied:   %d\n", report.Applied)
		fmt.Printf("Conflicts: %d\n", report.Conflicts)
		fmt.Printf("Failed:    %d\n", report.Failed)
		fmt.Printf("Pending:   %d\n", report.Pending)
		if report.TimedOut {
			fmt.Println("Sync timed out; pending operations stay queued.")
		}
		return nil
	},
}

var statusCmd = &cobra.Command{
	Use:   "status <note-id>",
	Short: "Show the sync status of a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		info, err := a.svc.SyncStatus(ctx, args[0])
		if err != nil {
			return err
		}

		fmt.Printf("Status:  %s\n", info.Status)
		if !info.LastSyncedAt.IsZero() {
			fmt.Printf("Synced:  %s\n", info.LastSyncedAt.Format("2006-01-02 15:04:05"))
		}
		if info.HasPendingOperations {
			fmt.Printf("Pending: %d operations\n", info.PendingOperationCount)
		}
		if info.HasConflicts {
			fmt.Println("Note has parked conflicts; see 'notekeeper queue'.")
		}
		if info.LastError != "" {
			fmt.Printf("Error:   %s\n", info.LastError)
		}
		return nil
	},
}

var queueCmd = &cobra.Command{
	Use:   "queue",
	Short: "Show queue statistics and parked operations",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		stats, err := a.svc.QueueStats(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("Pending:   %d\n", stats.Pending)
		fmt.Printf("Failed:    %d\n", stats.Failed)
		fmt.Printf("Conflicts: %d\n", stats.Conflicts)

		failed, err := a.queue.Failed(ctx)
		if err != nil {
			return err
		}
		if len(failed) == 0 {
			return nil
		}

		fmt.Println()
		for _, f := range failed {
			kind := "failed"
			if f.Conflict {
				kind = "conflict"
			}
			fmt.Printf("%s %s %s note=%s: %s\n",
				f.FailedAt.Format("2006-01-02 15:04:05"),
				kind, f.Operation.Kind, f.Operation.NoteID, f.Reason)
		}
		return nil
	},
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the background sync supervisor until interrupted",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a, err := newApp(ctx)
		if err != nil {
			return err
		}
		defer a.Close()

		a.logger.Info("Sync supervisor starting",
			"drain_interval", a.cfg.Sync.DrainInterval,
			"store", a.cfg.Store.Path,
			"queue", a.cfg.Queue.Path)

		if err := a.coord.Run(ctx); err != nil {
			return err
		}
		a.logger.Info("Sync supervisor stopped")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(syncCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(queueCmd)
	rootCmd.AddCommand(runCmd)
}
