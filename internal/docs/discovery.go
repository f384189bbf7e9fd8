package docs

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	derrors "git.home.luguber.info/inful/docpages/internal/docs/errors"
	"git.home.luguber.info/inful/docpages/internal/logfields"
)

// DocFile represents a discovered source document.
type DocFile struct {
	Path         string // Absolute path to the file
	RelativePath string // Path relative to the input root
	Name         string // File name without extension
}

// ReadContent loads the document body from disk.
func (f DocFile) ReadContent() (string, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return "", fmt.Errorf("%w: %s: %w", derrors.ErrFileReadFailed, f.Path, err)
	}
	return string(data), nil
}

// Discovery handles source document discovery for a single input tree.
type Discovery struct {
	root string
}

// NewDiscovery creates a discovery instance rooted at the given directory.
func NewDiscovery(root string) *Discovery {
	return &Discovery{root: root}
}

// DiscoverDocs finds all Markdown files under the input root. Results are
// sorted by relative path so downstream passes are deterministic.
func (d *Discovery) DiscoverDocs() ([]DocFile, error) {
	absRoot, err := filepath.Abs(d.root)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", derrors.ErrInputDirNotFound, d.root, err)
	}
	if _, err := os.Stat(absRoot); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", derrors.ErrInputDirNotFound, absRoot)
	}

	var files []DocFile
	err = filepath.WalkDir(absRoot, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		if !isMarkdownFile(path) {
			return nil
		}

		rel, err := filepath.Rel(absRoot, path)
		if err != nil {
			return err
		}

		base := filepath.Base(path)
		files = append(files, DocFile{
			Path:         path,
			RelativePath: rel,
			Name:         strings.TrimSuffix(base, filepath.Ext(base)),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", derrors.ErrInputDirWalkFailed, absRoot, err)
	}

	sort.Slice(files, func(i, j int) bool { return files[i].RelativePath < files[j].RelativePath })

	slog.Debug("Discovered source documents", logfields.Path(absRoot), logfields.Count(len(files)))
	return files, nil
}

func isMarkdownFile(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".md")
}
