// Package gateways defines interfaces for infrastructure adapters.
package gateways

import (
	"context"
)

// UploadFinder lists bundles that are ready to be published
type UploadFinder interface {
	// FindUploadable returns bundle and signature names, interleaved
	FindUploadable(dir string) ([]string, error)
}

// ChecksumGateway computes and checks SHA256 digests of files
type ChecksumGateway interface {
	CalculateChecksum(filePath string) (string, error)
	VerifyChecksum(ctx context.Context, filePath, expectedSum string) error
}

// SignatureVerifier checks detached signatures against an imported keyring
type SignatureVerifier interface {
	VerifySignatureFromFile(filePath, sigPath string) error
	GetKeyringSize() int
}

// ArchiveProber checks that a compressed bundle is readable
type ArchiveProber interface {
	Probe(filePath string) error
}
