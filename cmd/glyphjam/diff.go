package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyphjam/internal/scene"
	"github.com/vovakirdan/glyphjam/internal/storage"
)

var flagTolerance float64

var diffCmd = &cobra.Command{
	Use:   "diff <scene> [snapshot] [snapshot]",
	Short: "Compare layouts between snapshots and the current document",
	Long: `Compare two layouts of a scene and list added, removed and moved nodes.

  diff <scene>            latest snapshot vs. the current document
  diff <scene> <id>       snapshot <id> vs. the current document
  diff <scene> <a> <b>    snapshot <a> vs. snapshot <b>

The current document is resolved at the viewport of the snapshot it is
compared with. Exits with status 1 when the layouts differ.`,
	Args: cobra.RangeArgs(1, 3),
	Run:  runDiff,
}

func init() {
	diffCmd.Flags().Float64Var(&flagTolerance, "tolerance", 1e-6, "Maximum edge movement treated as unchanged")
}

func runDiff(cmd *cobra.Command, args []string) {
	sceneName := args[0]

	store := openStore()
	defer store.Close()

	var before *storage.Snapshot
	if len(args) >= 2 {
		before = loadSnapshot(store, args[1])
	} else {
		snaps, err := store.ListSnapshots(sceneName, 1)
		if err != nil {
			fatal("retrieving snapshots: %v", err)
		}
		if len(snaps) == 0 {
			fatal("no snapshots of %q\nRun 'glyphjam layout %s --record' first.", sceneName, sceneName)
		}
		before = loadSnapshot(store, snaps[0].ID)
	}
	if before.Scene != sceneName {
		fatal("snapshot %s belongs to scene %q", before.ID, before.Scene)
	}

	var (
		after      scene.Layout
		afterLabel string
	)
	if len(args) == 3 {
		snap := loadSnapshot(store, args[2])
		after, afterLabel = snap.Layout, snap.ID
	} else {
		r := newResolver()
		doc, err := loadDocument(cmd.Context(), r, sceneName)
		if err != nil {
			fatal("%v", err)
		}
		after, err = scene.Resolve(doc, before.ViewportW, before.ViewportH)
		if err != nil {
			fatal("%v", err)
		}
		afterLabel = "current (" + shortChecksum(doc.Checksum) + ")"
	}

	d := storage.Diff(before.Layout, after, flagTolerance)
	fmt.Printf("Diff - %s: %s -> %s\n", sceneName, before.ID, afterLabel)
	if d.Empty() {
		fmt.Println("No changes.")
		return
	}

	for _, id := range d.Added {
		fmt.Printf("  + %s\n", id)
	}
	for _, id := range d.Removed {
		fmt.Printf("  - %s\n", id)
	}
	for _, m := range d.Moved {
		fmt.Printf("  ~ %s  %s -> %s\n", m.NodeID,
			formatRect(m.Old.X, m.Old.Y, m.Old.W, m.Old.H),
			formatRect(m.New.X, m.New.Y, m.New.W, m.New.H))
	}
	store.Close()
	os.Exit(1)
}

func loadSnapshot(store *storage.Store, id string) *storage.Snapshot {
	snap, err := store.LoadSnapshot(id)
	if err != nil {
		fatal("%v", err)
	}
	return snap
}
