package gateways

import (
	"bufio"
	"bytes"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"unicode"

	"github.com/ochairo/gettor/internal/domain/entities"
	"github.com/ochairo/gettor/internal/domain/interfaces/gateways"
)

// ManifestEntry is one "<sha256>  <name>" line of a checksum manifest
type ManifestEntry struct {
	Name   string `yaml:"name"`
	SHA256 string `yaml:"sha256"`
}

// ManifestMismatch describes a manifest line that doesn't match the file on disk
type ManifestMismatch struct {
	Name     string `yaml:"name"`
	Expected string `yaml:"expected"`
	Actual   string `yaml:"actual,omitempty"`
	Err      string `yaml:"error,omitempty"`
}

// ManifestBuilder hashes upload sets into checksum manifests
type ManifestBuilder struct {
	checksums gateways.ChecksumGateway
}

// NewManifestBuilder creates a new manifest builder
func NewManifestBuilder(checksums gateways.ChecksumGateway) *ManifestBuilder {
	return &ManifestBuilder{checksums: checksums}
}

// Build hashes every bundle in names (signature names are skipped) and
// returns entries sorted by name
func (b *ManifestBuilder) Build(dir string, names []string) ([]ManifestEntry, error) {
	entries := make([]ManifestEntry, 0, len(names)/2)
	for _, name := range names {
		if strings.HasSuffix(name, entities.SignatureSuffix) {
			continue
		}

		sum, err := b.checksums.CalculateChecksum(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		entries = append(entries, ManifestEntry{Name: name, SHA256: sum})
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

// Write renders entries in sha256sum format
func (b *ManifestBuilder) Write(w io.Writer, entries []ManifestEntry) error {
	bw := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(bw, "%s  %s\n", e.SHA256, e.Name); err != nil {
			return fmt.Errorf("failed to write manifest: %w", err)
		}
	}
	return bw.Flush()
}

// Check re-hashes every file listed in the manifest at manifestPath,
// resolving names relative to dir. It returns the lines that don't match.
func (b *ManifestBuilder) Check(ctx context.Context, dir, manifestPath string) ([]ManifestMismatch, error) {
	//nolint:gosec // G304: manifest path is user-provided
	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	expected, err := ParseManifest(data)
	if err != nil {
		return nil, err
	}

	var mismatches []ManifestMismatch
	for _, e := range expected {
		err := b.checksums.VerifyChecksum(ctx, filepath.Join(dir, e.Name), e.SHA256)
		if err == nil {
			continue
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}

		m := ManifestMismatch{Name: e.Name, Expected: e.SHA256}
		var mismatch *entities.ChecksumMismatchError
		if errors.As(err, &mismatch) {
			m.Actual = mismatch.Actual
		} else {
			m.Err = err.Error()
		}
		mismatches = append(mismatches, m)
	}

	return mismatches, nil
}

// ParseManifest parses "<sha256>  <name>" or "<sha256> *<name>" lines.
// The name is the rest of the line after the separator and may contain spaces.
// Blank lines and '#' comments are ignored.
func ParseManifest(data []byte) ([]ManifestEntry, error) {
	var entries []ManifestEntry
	s := bufio.NewScanner(bytes.NewReader(data))
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		sep := strings.IndexFunc(line, unicode.IsSpace)
		if sep < 0 {
			return nil, fmt.Errorf("invalid manifest line: %q", line)
		}
		sum := strings.ToLower(line[:sep])
		name := strings.TrimPrefix(strings.TrimLeftFunc(line[sep:], unicode.IsSpace), "*")
		if name == "" {
			return nil, fmt.Errorf("invalid manifest line: %q", line)
		}
		if raw, err := hex.DecodeString(sum); err != nil || len(raw) != 32 {
			return nil, fmt.Errorf("invalid sha256 %q for %q", sum, name)
		}
		entries = append(entries, ManifestEntry{Name: name, SHA256: sum})
	}
	if err := s.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan manifest: %w", err)
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("manifest is empty")
	}
	return entries, nil
}
