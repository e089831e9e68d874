// Package fs writes extraction results to a directory tree mirroring the
// source URLs.
package fs

import (
	"context"
	iofs "io/fs"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/woldoc"
)

// URLToPath converts a source URL to a relative file path with the given
// extension.
// Example: https://wol.jw.org/es/wol/b/r4/lp-s/nwtsty/19/70 → es/wol/b/r4/lp-s/nwtsty/19/70.json
func URLToPath(rawURL, ext string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", woldoc.Errorf(woldoc.EINVALID, "invalid source URL %q", rawURL)
	}

	path := u.Path
	if u.Scheme == "" && u.Host == "" {
		// Local files and stdin are stored under their base name.
		path = filepath.Base(path)
		path = strings.TrimSuffix(path, filepath.Ext(path))
	}

	if path == "" || path == "/" || path == "." {
		return "index." + ext, nil
	}

	path = strings.TrimPrefix(path, "/")
	if strings.HasSuffix(path, "/") {
		return path + "index." + ext, nil
	}
	return path + "." + ext, nil
}

// Ensure Store implements woldoc.OutputStore at compile time.
var _ woldoc.OutputStore = (*Store)(nil)

// Store implements woldoc.OutputStore with staged writes.
// Outputs are saved to a temporary directory and moved into the final
// directory on Commit. Files already in the final directory are kept unless
// a new output has the same path.
type Store struct {
	baseDir string
	name    string
}

// NewStore creates a new Store.
// baseDir is the parent directory, name is the output directory name.
// Files are saved to baseDir/name.tmp and moved below baseDir/name on Commit.
func NewStore(baseDir, name string) *Store {
	return &Store{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *Store) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *Store) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// Save writes out below the temporary directory.
func (s *Store) Save(ctx context.Context, out *woldoc.Output) error {
	if err := out.Validate(); err != nil {
		return err
	}

	relPath, err := URLToPath(out.SourceURL, out.Format)
	if err != nil {
		return err
	}

	tempDir := s.tempDir()
	fullPath := filepath.Join(tempDir, relPath)
	if !strings.HasPrefix(fullPath, tempDir+string(filepath.Separator)) {
		return woldoc.Errorf(woldoc.EINVALID, "path traversal in source URL %q", out.SourceURL)
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, out.Data, 0644)
}

// Commit moves every staged file into the final directory, one rename per
// file, and removes the temporary directory. It is a no-op when nothing was
// saved.
func (s *Store) Commit() error {
	tempDir := s.tempDir()
	if _, err := os.Stat(tempDir); os.IsNotExist(err) {
		return nil
	}

	finalDir := s.finalDir()
	err := filepath.WalkDir(tempDir, func(path string, d iofs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		rel, err := filepath.Rel(tempDir, path)
		if err != nil {
			return err
		}
		dst := filepath.Join(finalDir, rel)
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		return os.Rename(path, dst)
	})
	if err != nil {
		return err
	}
	return os.RemoveAll(tempDir)
}

// Abort discards everything saved since the last Commit.
func (s *Store) Abort() error {
	return os.RemoveAll(s.tempDir())
}
