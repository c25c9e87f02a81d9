package gateways

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ochairo/gettor/internal/domain/entities"
	"github.com/ochairo/gettor/internal/domain/services"
)

// UploadFinder locates signed bundles in an upload directory
type UploadFinder struct{}

// NewUploadFinder creates a new upload finder
func NewUploadFinder() *UploadFinder {
	return &UploadFinder{}
}

// FindUploadable returns every correctly named bundle in dir that has a
// detached ".asc" signature next to it, each followed by its signature name.
// Entries are visited in directory listing order (sorted by name); other
// entries are skipped. Only names and file metadata are read.
func (f *UploadFinder) FindUploadable(dir string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", entities.ErrUploadDirNotFound, dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list upload directory %s: %w", dir, err)
	}

	files := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if !services.IsValidBundleName(name) {
			continue
		}

		sigName := name + entities.SignatureSuffix
		if !isRegularFile(filepath.Join(dir, sigName)) {
			continue
		}

		files = append(files, name, sigName)
	}

	return files, nil
}

func isRegularFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
