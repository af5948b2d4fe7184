// Package glyphjam ships the default assets and resources inside the binary
// so the game runs even when the directories next to the executable are
// missing.
package glyphjam

import (
	"embed"
	"io/fs"
)

//go:embed assets resources
var files embed.FS

// Assets returns the embedded asset directory.
func Assets() fs.FS {
	sub, err := fs.Sub(files, "assets")
	if err != nil {
		panic(err)
	}
	return sub
}

// Resources returns the embedded resources directory.
func Resources() fs.FS {
	sub, err := fs.Sub(files, "resources")
	if err != nil {
		panic(err)
	}
	return sub
}
