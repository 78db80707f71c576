package preset

import (
	"embed"
	"io/fs"
)

//go:embed presets/*
var embeddedPresets embed.FS

// EmbeddedFS returns the bundled preset catalogue. Callers may pass this
// filesystem to LoadFS to use the default presets.
func EmbeddedFS() fs.FS {
	sub, err := fs.Sub(embeddedPresets, "presets")
	if err != nil {
		// The embed directive guarantees the subpath exists.
		panic(err)
	}
	return sub
}

// Defaults loads the embedded catalogue.
func Defaults() (*Store, error) {
	return LoadFS(EmbeddedFS())
}
