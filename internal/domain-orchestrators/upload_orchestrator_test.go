package orchestrators

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/ochairo/gettor/internal/domain/entities"
)

// Mock implementations for testing
type mockFinder struct {
	names []string
	err   error
}

func (m *mockFinder) FindUploadable(_ string) ([]string, error) {
	return m.names, m.err
}

type mockChecksums struct {
	sums map[string]string
	err  error
}

func (m *mockChecksums) CalculateChecksum(path string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	return m.sums[path], nil
}

func (m *mockChecksums) VerifyChecksum(_ context.Context, _, _ string) error {
	return m.err
}

type mockSignatures struct {
	keys int
	bad  map[string]bool
}

func (m *mockSignatures) VerifySignatureFromFile(filePath, _ string) error {
	if m.bad[filePath] {
		return errors.New("signature verification failed")
	}
	return nil
}

func (m *mockSignatures) GetKeyringSize() int {
	return m.keys
}

type mockProber struct {
	probed []string
	err    error
}

func (m *mockProber) Probe(filePath string) error {
	m.probed = append(m.probed, filePath)
	return m.err
}

var signedSet = []string{
	"TorBrowser-12.5-osx64_fr.dmg", "TorBrowser-12.5-osx64_fr.dmg.asc",
	"tor-browser-linux64-12.5_en.tar.xz", "tor-browser-linux64-12.5_en.tar.xz.asc",
}

func TestUploadOrchestrator_Prepare_Success(t *testing.T) {
	prober := &mockProber{}
	orch := NewUploadOrchestrator(
		&mockFinder{names: signedSet},
		&mockChecksums{sums: map[string]string{
			"up/TorBrowser-12.5-osx64_fr.dmg":       "aa",
			"up/tor-browser-linux64-12.5_en.tar.xz": "bb",
		}},
		&mockSignatures{keys: 1},
		prober,
		UploadOrchestratorConfig{VerifySignatures: true, ProbeArchives: true, ComputeDigests: true},
		nil,
	)

	result, err := orch.Prepare(context.Background(), "up")
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if len(result.Entries) != 2 {
		t.Fatalf("Entries = %d, want 2", len(result.Entries))
	}
	first := result.Entries[0]
	if first.Info != (entities.BundleInfo{OS: "osx", Arch: "64", Locale: "fr"}) {
		t.Errorf("Entries[0].Info = %+v", first.Info)
	}
	if first.SHA256 != "aa" || !first.Verified {
		t.Errorf("Entries[0] = %+v, want digest and verified", first)
	}
	if !reflect.DeepEqual(result.Files(), signedSet) {
		t.Errorf("Files() = %v, want %v", result.Files(), signedSet)
	}
	if !reflect.DeepEqual(prober.probed, []string{"up/tor-browser-linux64-12.5_en.tar.xz"}) {
		t.Errorf("probed = %v, want only the Linux bundle", prober.probed)
	}
}

func TestUploadOrchestrator_Prepare_RejectsBadSignature(t *testing.T) {
	orch := NewUploadOrchestrator(
		&mockFinder{names: signedSet},
		&mockChecksums{},
		&mockSignatures{keys: 1, bad: map[string]bool{"up/TorBrowser-12.5-osx64_fr.dmg": true}},
		nil,
		UploadOrchestratorConfig{VerifySignatures: true},
		nil,
	)

	result, err := orch.Prepare(context.Background(), "up")
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	if len(result.Entries) != 1 || result.Entries[0].Name != "tor-browser-linux64-12.5_en.tar.xz" {
		t.Errorf("Entries = %+v, want only the Linux bundle", result.Entries)
	}
	if len(result.Rejected) != 1 || result.Rejected[0].Name != "TorBrowser-12.5-osx64_fr.dmg" {
		t.Errorf("Rejected = %+v", result.Rejected)
	}
}

func TestUploadOrchestrator_Prepare_Errors(t *testing.T) {
	t.Run("scan failure", func(t *testing.T) {
		orch := NewUploadOrchestrator(
			&mockFinder{err: entities.ErrUploadDirNotFound},
			&mockChecksums{}, nil, nil, UploadOrchestratorConfig{}, nil,
		)
		_, err := orch.Prepare(context.Background(), "missing")
		if !errors.Is(err, entities.ErrUploadDirNotFound) {
			t.Errorf("Prepare() error = %v, want ErrUploadDirNotFound", err)
		}
	})

	t.Run("verification without keys", func(t *testing.T) {
		orch := NewUploadOrchestrator(
			&mockFinder{names: signedSet},
			&mockChecksums{}, &mockSignatures{}, nil,
			UploadOrchestratorConfig{VerifySignatures: true}, nil,
		)
		_, err := orch.Prepare(context.Background(), "up")
		if err == nil || !strings.Contains(err.Error(), "no keys are imported") {
			t.Errorf("Prepare() error = %v, want missing keys error", err)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		orch := NewUploadOrchestrator(
			&mockFinder{names: signedSet},
			&mockChecksums{}, nil, nil, UploadOrchestratorConfig{}, nil,
		)
		_, err := orch.Prepare(ctx, "up")
		if !errors.Is(err, context.Canceled) {
			t.Errorf("Prepare() error = %v, want context.Canceled", err)
		}
	})

	t.Run("digest failure rejects bundle", func(t *testing.T) {
		orch := NewUploadOrchestrator(
			&mockFinder{names: signedSet},
			&mockChecksums{err: &entities.FileError{Kind: entities.PermissionDenied, Path: "x"}},
			nil, nil,
			UploadOrchestratorConfig{ComputeDigests: true}, nil,
		)
		result, err := orch.Prepare(context.Background(), "up")
		if err != nil {
			t.Fatalf("Prepare() error = %v", err)
		}
		if len(result.Entries) != 0 || len(result.Rejected) != 2 {
			t.Errorf("Entries = %d, Rejected = %d, want 0 and 2", len(result.Entries), len(result.Rejected))
		}
		if !strings.Contains(result.Rejected[0].Reason, "permission denied") {
			t.Errorf("Reason = %q", result.Rejected[0].Reason)
		}
	})
}
