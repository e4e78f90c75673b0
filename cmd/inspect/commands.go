package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/awakened-intelligence/catalog-inspector/internal/catalog"
	"github.com/awakened-intelligence/catalog-inspector/internal/console"
	"github.com/awakened-intelligence/catalog-inspector/internal/replay"
	"github.com/awakened-intelligence/catalog-inspector/internal/store"
)

// #region list-mode
func newListCmd(f *rootFlags) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the domain menu once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(cmd, f)
			if err != nil {
				return err
			}
			defer rt.close()

			entries := rt.cat.ListAll()
			if jsonOut {
				records := make([]catalog.DomainRecord, len(entries))
				for i, e := range entries {
					records[i] = e.Record
				}
				return printJSON(cmd.OutOrStdout(), records)
			}
			return rt.renderer(cmd).Menu(entries)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON instead of text")
	return cmd
}

// #endregion list-mode

// #region detail-mode
func newShowCmd(f *rootFlags) *cobra.Command {
	var jsonOut bool
	cmd := &cobra.Command{
		Use:   "show <domain>",
		Short: "Print the detail view of one domain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd, f)
			if err != nil {
				return err
			}
			defer rt.close()

			key := console.Normalize(args[0])
			rec, ok := rt.cat.Lookup(key)
			if !ok {
				return fmt.Errorf("unknown domain %q (available: %s)", key, strings.Join(rt.cat.Keys(), ", "))
			}
			if jsonOut {
				return printJSON(cmd.OutOrStdout(), rec)
			}
			return rt.renderer(cmd).Detail(rec)
		},
	}
	cmd.Flags().BoolVar(&jsonOut, "json", false, "output as JSON instead of text")
	return cmd
}

func newSchemaCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the wisdom node schema documentation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(cmd, f)
			if err != nil {
				return err
			}
			defer rt.close()
			return rt.renderer(cmd).Schema()
		},
	}
}

func newLicensingCmd(f *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "licensing",
		Short: "Print licensing and contact information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rt, err := loadRuntime(cmd, f)
			if err != nil {
				return err
			}
			defer rt.close()
			return rt.renderer(cmd).Licensing()
		},
	}
}

// #endregion detail-mode

// #region snapshots
func newExportCmd(f *rootFlags) *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the active catalog into a SQLite snapshot",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if outPath == "" {
				return errors.New("--out is required")
			}
			rt, err := loadRuntime(cmd, f)
			if err != nil {
				return err
			}
			defer rt.close()

			st, err := store.NewStore(outPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer st.Close()

			snap, err := st.SaveCatalog(rt.cat, rt.source)
			if err != nil {
				return err
			}
			rt.log.Info("catalog exported",
				zap.String("db", outPath),
				zap.String("snapshot_id", snap.SnapshotID),
				zap.Int("domains", snap.DomainCount),
			)
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d domains to %s (snapshot %s)\n",
				snap.DomainCount, outPath, snap.SnapshotID)
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "", "output SQLite database path")
	return cmd
}

func newSnapshotsCmd(f *rootFlags) *cobra.Command {
	var (
		last    int
		exports bool
	)
	cmd := &cobra.Command{
		Use:   "snapshots",
		Short: "List catalog snapshots stored in --db",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.dbPath == "" {
				return errors.New("--db is required")
			}
			st, err := store.NewStore(f.dbPath)
			if err != nil {
				return fmt.Errorf("open db: %w", err)
			}
			defer st.Close()

			if exports {
				return printExportLog(cmd, st)
			}

			snaps, err := st.ListSnapshots(last)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if len(snaps) == 0 {
				fmt.Fprintln(cmd.ErrOrStderr(), "no snapshots found")
				return nil
			}
			fmt.Fprintf(out, "%-12s  %7s  %-20s  %s\n", "Snapshot", "Domains", "Source", "Created")
			fmt.Fprintf(out, "%-12s+-%7s+-%-20s+-%s\n", "------------", "-------", "--------------------", "--------------------")
			for _, s := range snaps {
				fmt.Fprintf(out, "%-12s  %7d  %-20s  %s\n",
					shortID(s.SnapshotID), s.DomainCount, s.Source, humanize.Time(s.CreatedAt))
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&last, "last", 20, "show N most recent snapshots")
	cmd.Flags().BoolVar(&exports, "exports", false, "show the export log instead of snapshots")
	return cmd
}

func printExportLog(cmd *cobra.Command, st *store.Store) error {
	entries, err := st.ListExports()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "no exports logged")
		return nil
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%-12s  %-8s  %7s  %-20s  %s\n", "Snapshot", "Trigger", "Domains", "Note", "Created")
	for _, e := range entries {
		fmt.Fprintf(out, "%-12s  %-8s  %7d  %-20s  %s\n",
			shortID(e.SnapshotID), e.TriggerType, e.DomainCount, e.Note, humanize.Time(e.CreatedAt))
	}
	return nil
}

// #endregion snapshots

// #region replay
func newReplayCmd(f *rootFlags) *cobra.Command {
	var verbose bool
	cmd := &cobra.Command{
		Use:   "replay <fixture.json>",
		Short: "Run a scripted session fixture and check each outcome",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := loadRuntime(cmd, f)
			if err != nil {
				return err
			}
			defer rt.close()

			fx, err := replay.LoadFixture(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			var transcript io.Writer
			if verbose {
				transcript = out
			}

			inputs := fx.Inputs()
			results, err := replay.Replay(rt.cat, inputs, transcript)
			if err != nil {
				return err
			}
			for _, r := range results {
				target := r.Input
				if r.Key != "" {
					target = r.Key
				}
				fmt.Fprintf(out, "%3d  %-10s %q\n", r.Step, r.Kind, target)
			}

			s := replay.Summarize(results, len(inputs))
			fmt.Fprintf(out, "\n%d dispatched | %d detail | %d schema | %d licensing | %d unknown | quit=%v | %d skipped\n",
				s.TotalSteps, s.Details, s.Schema, s.Licensing, s.Unknown, s.Quit, s.Skipped)

			if mm := replay.Compare(results, fx.Steps); len(mm) > 0 {
				for _, m := range mm {
					fmt.Fprintf(cmd.ErrOrStderr(), "mismatch: %s\n", m)
				}
				return fmt.Errorf("%d of %d steps did not match %s", len(mm), len(fx.Steps), args[0])
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "also print the rendered session")
	return cmd
}

// #endregion replay

// #region version
func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "inspect %s (commit=%s)\n", version, commit)
		},
	}
}

// #endregion version

// #region output
func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion output
