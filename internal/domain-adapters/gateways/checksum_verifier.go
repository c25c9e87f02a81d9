// Package gateways implements the filesystem side of bundle handling: digests, upload scans and manifests.
package gateways

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"io"
	"io/fs"
	"os"
	"strings"

	"github.com/ochairo/gettor/internal/domain/entities"
)

// BlockSize is the read size used when hashing files
const BlockSize = 64 * 1024

// DigestString returns the hex SHA256 of the UTF-8 bytes of text
func DigestString(text string) string {
	return DigestBytes([]byte(text))
}

// DigestBytes returns the hex SHA256 of data
func DigestBytes(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ChecksumVerifier implements checksum calculation and verification using pure Go
type ChecksumVerifier struct {
	blockSize int
}

// NewChecksumVerifier creates a new checksum verifier
func NewChecksumVerifier() *ChecksumVerifier {
	return &ChecksumVerifier{blockSize: BlockSize}
}

// CalculateChecksum calculates the SHA256 checksum of a file, reading it in
// fixed-size blocks. Failures are returned as *entities.FileError.
func (v *ChecksumVerifier) CalculateChecksum(filePath string) (string, error) {
	//nolint:gosec // G304: File path is user-provided for checksum calculation
	f, err := os.Open(filePath)
	if err != nil {
		return "", fileError(filePath, err)
	}
	//nolint:errcheck // Defer close on read-only file
	defer f.Close()

	h := sha256.New()
	buf := make([]byte, v.blockSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fileError(filePath, err)
		}
	}

	return hex.EncodeToString(h.Sum(nil)), nil
}

// VerifyChecksum verifies a file's SHA256 checksum. A differing digest is
// reported as *entities.ChecksumMismatchError.
func (v *ChecksumVerifier) VerifyChecksum(ctx context.Context, filePath, expectedSum string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	actualSum, err := v.CalculateChecksum(filePath)
	if err != nil {
		return err
	}

	if !strings.EqualFold(actualSum, expectedSum) {
		return &entities.ChecksumMismatchError{Path: filePath, Expected: expectedSum, Actual: actualSum}
	}

	return nil
}

func fileError(path string, err error) *entities.FileError {
	kind := entities.IOFailure
	switch {
	case errors.Is(err, fs.ErrNotExist):
		kind = entities.FileNotFound
	case errors.Is(err, fs.ErrPermission):
		kind = entities.PermissionDenied
	}
	return &entities.FileError{Kind: kind, Path: path, Err: err}
}
