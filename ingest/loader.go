package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/katalvlaran/optics/material"
)

// Loader builds a whole material.Collection from a database directory tree:
//
//	<root>/metadata/<name>/*.yaml   one metadata file per dataset
//	<root>/data/...                 the data files the metadata name
//
// Metadata files referenced as a version by another file in the same
// collection are imported as that material's Version, not as a collection
// entry of their own. All remaining files are imported in lexical order, so
// collection iteration order is deterministic.
type Loader struct {
	// Name of the collection to load, e.g. "elements".
	Name string

	// Root of the database directory tree. Empty means the current
	// directory.
	Root string
}

// Load imports every dataset of the collection and returns the populated
// registry. Duplicate symbols within one collection are a loader error
// (surfaced as material.ErrDuplicateSymbol).
func (l *Loader) Load() (*material.Collection, error) {
	if l.Name == "" {
		return nil, fmt.Errorf("%w: collection name", ErrMissingInput)
	}
	root := l.Root
	if root == "" {
		root = "."
	}
	metaDir := filepath.Join(root, "metadata", l.Name)
	dataDir := filepath.Join(root, "data")

	entries, err := os.ReadDir(metaDir)
	if err != nil {
		return nil, fmt.Errorf("ingest: reading collection %q: %w", l.Name, err)
	}
	var files []string
	for _, entry := range entries {
		if entry.IsDir() || !isYAML(entry.Name()) {
			continue
		}
		files = append(files, entry.Name())
	}

	// First pass: find files that only exist as a version of another
	// dataset, so they do not become collection entries themselves.
	versionFiles := make(map[string]bool)
	for _, name := range files {
		meta, err := readMetadata(filepath.Join(metaDir, name))
		if err != nil {
			return nil, err
		}
		for _, v := range meta.Versions {
			versionFiles[v.Metadata] = true
		}
	}

	collection := material.NewCollection()
	for _, name := range files {
		if versionFiles[name] {
			continue
		}
		m, meta, err := importMaterial(filepath.Join(metaDir, name), dataDir)
		if err != nil {
			return nil, err
		}
		for _, v := range meta.Versions {
			vm, _, err := importMaterial(filepath.Join(metaDir, v.Metadata), dataDir)
			if err != nil {
				return nil, err
			}
			m.Versions = append(m.Versions, material.Version{
				Material:    vm,
				Description: v.Description,
			})
		}
		if err = collection.Add(m); err != nil {
			return nil, err
		}
	}

	return collection, nil
}

// isYAML reports whether name carries a YAML file extension.
func isYAML(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))

	return ext == ".yaml" || ext == ".yml"
}
