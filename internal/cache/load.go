package cache

import (
	"context"
	"os"
	"path/filepath"

	"github.com/oakwood-commons/ccx/pkg/logger"
)

// DefaultFileName is the cache file written by the configure step.
const DefaultFileName = "CMakeCache.txt"

// LoadOptions controls how Load locates and reads the cache file.
type LoadOptions struct {
	// FileName overrides DefaultFileName.
	FileName string
	// Strict makes an unreadable file an error. When false, the failure is
	// logged and an empty entry set is returned.
	Strict bool
}

// Path returns the cache file location inside buildDir.
func Path(buildDir, fileName string) string {
	if fileName == "" {
		fileName = DefaultFileName
	}
	if buildDir == "" {
		buildDir = "."
	}
	return filepath.Join(buildDir, fileName)
}

// Load reads and parses the cache file of buildDir, returning entries sorted
// by name. Grammar failures are always returned as *InitError; read failures
// are returned as *IOError only in strict mode.
func Load(ctx context.Context, buildDir string, opts LoadOptions) ([]*Entry, error) {
	lgr := logger.FromContext(ctx)
	path := Path(buildDir, opts.FileName)

	p, err := NewParser()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		ioErr := &IOError{Path: path, Err: err}
		if opts.Strict {
			return nil, ioErr
		}
		lgr.Info("cache file unreadable, starting with no entries", "path", path, "error", err.Error())
		return []*Entry{}, nil
	}

	entries := Sorted(p.Parse(string(data)))
	lgr.V(1).Info("parsed cache file", "path", path, "entries", len(entries), "bytes", len(data))
	return entries, nil
}
