package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
)

// TranslationAdapter defines how translations are loaded.
// The result is keyed by language code, then by nested translation key.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter uses an in-memory map as the translation source.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements the TranslationAdapter interface
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	return a.Data, nil
}

// FSAdapter loads every YAML and JSON file in a directory of an fs.FS.
// Files are merged in directory order; later files override earlier keys.
// Both embed.FS and os.DirFS can back it.
type FSAdapter struct {
	fsys fs.FS
	dir  string
}

// NewFSAdapter creates an adapter reading translation files from dir inside fsys.
// Use "." for the filesystem root.
func NewFSAdapter(fsys fs.FS, dir string) *FSAdapter {
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{fsys: fsys, dir: dir}
}

// NewDirectoryAdapter creates an adapter reading translation files from a local directory.
func NewDirectoryAdapter(dir string) (*FSAdapter, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToAccessDirectory, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q is not a directory", ErrFailedToAccessDirectory, dir)
	}
	return NewFSAdapter(os.DirFS(dir), "."), nil
}

// Load implements the TranslationAdapter interface
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.fsys == nil {
		return nil, ErrFailedToAccessDirectory
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingFileCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDirectory, err)
	}

	all := make(map[string]map[string]any)
	processed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		parser := NewParserForFile(entry.Name())
		if parser == nil {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingFileCancelled, err)
		}

		filePath := path.Join(a.dir, entry.Name())
		if err := a.processFile(ctx, parser, filePath, all); err != nil {
			return nil, fmt.Errorf("%s: %w", filePath, err)
		}
		processed++
	}

	if processed == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}
	return all, nil
}

func (a *FSAdapter) processFile(ctx context.Context, parser Parser, filePath string, all map[string]map[string]any) error {
	content, err := fs.ReadFile(a.fsys, filePath)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return fmt.Errorf("%w: file is empty", ErrFailedToParseFile)
	}

	translations, err := parser.Parse(ctx, string(content))
	if err != nil {
		return errors.Join(ErrFailedToParseFile, err)
	}

	mergeLanguages(all, translations)
	return nil
}

// MergeAdapter layers several adapters. Keys from later adapters override
// keys from earlier ones, nested maps are merged key by key.
type MergeAdapter struct {
	layers []TranslationAdapter
}

// NewMergeAdapter creates an adapter combining the given layers in order.
// Nil layers are skipped.
func NewMergeAdapter(layers ...TranslationAdapter) *MergeAdapter {
	m := &MergeAdapter{}
	for _, l := range layers {
		if l != nil {
			m.layers = append(m.layers, l)
		}
	}
	return m
}

// Load implements the TranslationAdapter interface
func (m *MergeAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	all := make(map[string]map[string]any)
	for _, layer := range m.layers {
		translations, err := layer.Load(ctx)
		if err != nil {
			return nil, err
		}
		mergeLanguages(all, translations)
	}
	return all, nil
}

func mergeLanguages(dst, src map[string]map[string]any) {
	for lang, translations := range src {
		if dst[lang] == nil {
			dst[lang] = make(map[string]any, len(translations))
		}
		mergeTree(dst[lang], translations)
	}
}

func mergeTree(dst, src map[string]any) {
	for k, v := range src {
		srcMap, srcIsMap := asStringMap(v)
		if !srcIsMap {
			dst[k] = v
			continue
		}
		dstMap, dstIsMap := asStringMap(dst[k])
		if !dstIsMap {
			dstMap = make(map[string]any, len(srcMap))
		}
		mergeTree(dstMap, srcMap)
		dst[k] = dstMap
	}
}
