package main

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/glyphjam/internal/registry"
	"github.com/vovakirdan/glyphjam/internal/scene"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all known scenes",
	Long: `Shows the registered scenes and every valid scene document found
below <root>/assets/ui. Invalid documents are skipped with a warning.`,
	Run: runList,
}

type sceneRow struct {
	name, title, source string
}

func runList(cmd *cobra.Command, _ []string) {
	logger := loggerFromContext(cmd.Context())
	r := newResolver()

	var rows []sceneRow
	seen := make(map[string]bool)
	for _, e := range registry.List() {
		rows = append(rows, sceneRow{e.Name, e.Title, "registry"})
		seen[e.Name] = true
	}

	l := scene.NewLoader(r.Path("ui"))
	l.Logger = logger
	docs, err := l.LoadAll()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fatal("%v", err)
	}
	for _, doc := range docs {
		if seen[doc.Name] {
			continue
		}
		rows = append(rows, sceneRow{doc.Name, doc.Title, doc.FilePath})
	}

	if len(rows) == 0 {
		fmt.Println("No scenes available.")
		return
	}

	fmt.Println("Available scenes:")
	fmt.Println()

	// Calculate column widths
	nameW, titleW := len("Name"), len("Title")
	for _, row := range rows {
		nameW = max(nameW, len(row.name))
		titleW = max(titleW, len(row.title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", nameW, "Name", titleW, "Title", "Source")
	fmt.Printf("  %-*s  %-*s  %s\n", nameW, "----", titleW, "-----", "------")
	for _, row := range rows {
		fmt.Printf("  %-*s  %-*s  %s\n", nameW, row.name, titleW, row.title, row.source)
	}

	fmt.Println()
	fmt.Println("Run 'glyphjam play <name>' to open a registered scene.")
}
