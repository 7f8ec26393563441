package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

var (
	//go:embed all:levels
	assetFS embed.FS

	//go:embed scripts/*.tengo
	scriptFS embed.FS
)

// DefaultLevel is the arena loaded when no path is configured.
const DefaultLevel = "levels/sandbox.tmx"

// FS exposes the embedded assets to loaders that take an fs.FS.
func FS() fs.FS {
	return assetFS
}

// LevelNames lists the embedded arenas by file stem.
func LevelNames() ([]string, error) {
	entries, err := assetFS.ReadDir("levels")
	if err != nil {
		return nil, fmt.Errorf("read levels directory: %w", err)
	}

	var names []string
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".tmx" {
			names = append(names, strings.TrimSuffix(entry.Name(), ".tmx"))
		}
	}
	sort.Strings(names)
	return names, nil
}

// LevelPath returns the embedded path of the arena with the given stem.
func LevelPath(name string) string {
	return path.Join("levels", name+".tmx")
}

// Script returns the source of an embedded input script.
func Script(name string) ([]byte, error) {
	src, err := scriptFS.ReadFile(path.Join("scripts", name+".tengo"))
	if err != nil {
		return nil, fmt.Errorf("read script %s: %w", name, err)
	}
	return src, nil
}
