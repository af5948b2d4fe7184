package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var flagLimit int

var snapshotsCmd = &cobra.Command{
	Use:   "snapshots [scene]",
	Short: "List recorded layout snapshots",
	Long: `Display the most recent layout snapshots, newest first. Without a
scene name snapshots of every scene are listed.

Examples:
  glyphjam snapshots
  glyphjam snapshots main_menu --limit 5
  glyphjam snapshots delete main_menu`,
	Args: cobra.MaximumNArgs(1),
	Run:  runSnapshots,
}

var snapshotsDeleteCmd = &cobra.Command{
	Use:   "delete <scene>",
	Short: "Delete every snapshot of a scene",
	Args:  cobra.ExactArgs(1),
	Run:   runSnapshotsDelete,
}

func init() {
	snapshotsCmd.Flags().IntVar(&flagLimit, "limit", 10, "Maximum number of snapshots to show")
	snapshotsCmd.AddCommand(snapshotsDeleteCmd)
}

func runSnapshots(_ *cobra.Command, args []string) {
	sceneName := ""
	if len(args) == 1 {
		sceneName = args[0]
	}

	store := openStore()
	defer store.Close()

	snaps, err := store.ListSnapshots(sceneName, flagLimit)
	if err != nil {
		fatal("retrieving snapshots: %v", err)
	}

	if len(snaps) == 0 {
		fmt.Println("No snapshots recorded yet.")
		fmt.Println("Run 'glyphjam layout <scene> --record' to record one.")
		return
	}

	fmt.Printf("  %-36s  %-16s  %-11s  %-12s  %s\n", "ID", "Scene", "Viewport", "Checksum", "Recorded")
	fmt.Printf("  %-36s  %-16s  %-11s  %-12s  %s\n", "--", "-----", "--------", "--------", "--------")
	for _, s := range snaps {
		fmt.Printf("  %-36s  %-16s  %-11s  %-12s  %s\n",
			s.ID,
			s.Scene,
			fmt.Sprintf("%gx%g", s.ViewportW, s.ViewportH),
			shortChecksum(s.Checksum),
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
		)
	}
}

func runSnapshotsDelete(cmd *cobra.Command, args []string) {
	store := openStore()
	defer store.Close()

	n, err := store.DeleteSnapshots(args[0])
	if err != nil {
		fatal("%v", err)
	}
	loggerFromContext(cmd.Context()).Info("deleted snapshots", "scene", args[0], "count", n)
}

func shortChecksum(sum string) string {
	if len(sum) > 12 {
		return sum[:12]
	}
	return sum
}
