// Package xz checks that Linux bundles are readable .tar.xz archives.
package xz

import (
	"archive/tar"
	"bufio"
	"fmt"
	"os"

	"github.com/ulikunitz/xz"
)

// Prober decodes the start of a .tar.xz bundle without extracting it
type Prober struct{}

// NewProber creates a new archive prober
func NewProber() *Prober {
	return &Prober{}
}

// Probe verifies the xz stream header and that the payload begins with a
// valid tar header. The rest of the archive is not read.
func (p *Prober) Probe(filePath string) error {
	//nolint:gosec // G304: filePath is a bundle in the upload directory
	f, err := os.Open(filePath)
	if err != nil {
		return fmt.Errorf("failed to open archive: %w", err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	xzReader, err := xz.NewReader(bufio.NewReader(f))
	if err != nil {
		return fmt.Errorf("%s is not an xz stream: %w", filePath, err)
	}

	hdr, err := tar.NewReader(xzReader).Next()
	if err != nil {
		return fmt.Errorf("%s does not contain a tar archive: %w", filePath, err)
	}
	if hdr.Name == "" {
		return fmt.Errorf("%s has an empty tar entry name", filePath)
	}

	return nil
}
