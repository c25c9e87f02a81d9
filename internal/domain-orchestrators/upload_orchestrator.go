// Package orchestrators coordinates workflows across domain services and gateways.
package orchestrators

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/ochairo/gettor/internal/domain/entities"
	"github.com/ochairo/gettor/internal/domain/interfaces"
	"github.com/ochairo/gettor/internal/domain/interfaces/gateways"
	"github.com/ochairo/gettor/internal/domain/services"
)

// UploadOrchestrator turns an upload directory into a list of publishable bundles
type UploadOrchestrator struct {
	finder     gateways.UploadFinder
	checksums  gateways.ChecksumGateway
	signatures gateways.SignatureVerifier
	prober     gateways.ArchiveProber
	logger     interfaces.Logger
	config     UploadOrchestratorConfig
}

// UploadOrchestratorConfig selects the optional checks run per bundle
type UploadOrchestratorConfig struct {
	VerifySignatures bool // requires a SignatureVerifier with imported keys
	ProbeArchives    bool // Linux .tar.xz bundles only
	ComputeDigests   bool
}

// NewUploadOrchestrator creates a new upload orchestrator. signatures and
// prober may be nil when the matching check is disabled.
func NewUploadOrchestrator(
	finder gateways.UploadFinder,
	checksums gateways.ChecksumGateway,
	signatures gateways.SignatureVerifier,
	prober gateways.ArchiveProber,
	config UploadOrchestratorConfig,
	logger interfaces.Logger,
) *UploadOrchestrator {
	if logger == nil {
		logger = &interfaces.NoOpLogger{}
	}

	return &UploadOrchestrator{
		finder:     finder,
		checksums:  checksums,
		signatures: signatures,
		prober:     prober,
		logger:     logger,
		config:     config,
	}
}

// RejectedBundle is a signed bundle that failed one of the enabled checks
type RejectedBundle struct {
	Name   string `yaml:"name"`
	Reason string `yaml:"reason"`
}

// UploadResult contains the outcome of preparing an upload directory
type UploadResult struct {
	Dir      string                 `yaml:"dir"`
	Entries  []entities.UploadEntry `yaml:"entries"`
	Rejected []RejectedBundle       `yaml:"rejected,omitempty"`
	Duration time.Duration          `yaml:"duration"`
}

// Files returns the accepted bundles and signatures, interleaved
func (r *UploadResult) Files() []string {
	files := make([]string, 0, len(r.Entries)*2)
	for _, e := range r.Entries {
		files = append(files, e.Name, e.Signature)
	}
	return files
}

// Prepare scans dir and runs the configured checks on every signed bundle.
// A bundle failing a check is rejected, not fatal; scan errors and context
// cancellation abort the run.
func (o *UploadOrchestrator) Prepare(ctx context.Context, dir string) (*UploadResult, error) {
	startTime := time.Now()
	result := &UploadResult{Dir: dir, Entries: []entities.UploadEntry{}}

	if o.config.VerifySignatures && (o.signatures == nil || o.signatures.GetKeyringSize() == 0) {
		return nil, fmt.Errorf("signature verification requested but no keys are imported")
	}

	// Step 1: Scan for signed bundles
	names, err := o.finder.FindUploadable(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to scan upload directory: %w", err)
	}
	o.logger.Info("Scanned upload directory", interfaces.F("dir", dir), interfaces.F("bundles", len(names)/2))

	for i := 0; i+1 < len(names); i += 2 {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entry, reason := o.prepareBundle(ctx, dir, names[i], names[i+1])
		if reason != "" {
			o.logger.Warn("Rejected bundle", interfaces.F("bundle", names[i]), interfaces.F("reason", reason))
			result.Rejected = append(result.Rejected, RejectedBundle{Name: names[i], Reason: reason})
			continue
		}

		o.logger.Debug("Accepted bundle", interfaces.F("bundle", entry.Name), interfaces.F("target", entry.Info.Target()))
		result.Entries = append(result.Entries, entry)
	}

	result.Duration = time.Since(startTime)
	o.logger.Info("Upload set ready",
		interfaces.F("accepted", len(result.Entries)),
		interfaces.F("rejected", len(result.Rejected)),
		interfaces.F("duration", result.Duration))

	return result, nil
}

// prepareBundle returns the entry for one bundle, or a rejection reason
func (o *UploadOrchestrator) prepareBundle(_ context.Context, dir, name, sigName string) (entities.UploadEntry, string) {
	entry := entities.UploadEntry{Name: name, Signature: sigName}
	path := filepath.Join(dir, name)

	// Step 2: Classify
	info, err := services.ClassifyBundle(name)
	if err != nil {
		return entry, err.Error()
	}
	entry.Info = info

	// Step 3: Detached signature
	if o.config.VerifySignatures {
		if err := o.signatures.VerifySignatureFromFile(path, filepath.Join(dir, sigName)); err != nil {
			return entry, err.Error()
		}
		entry.Verified = true
	}

	// Step 4: Archive readability
	if o.config.ProbeArchives && o.prober != nil && info.OS == entities.OSLinux {
		if err := o.prober.Probe(path); err != nil {
			return entry, err.Error()
		}
	}

	// Step 5: Digest
	if o.config.ComputeDigests {
		sum, err := o.checksums.CalculateChecksum(path)
		if err != nil {
			return entry, err.Error()
		}
		entry.SHA256 = sum
	}

	return entry, ""
}
