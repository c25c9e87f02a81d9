package services

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ochairo/gettor/internal/domain/entities"
)

// CoverageStatus represents the readiness of an upload set for publishing
type CoverageStatus string

// Coverage statuses
const (
	StatusReady             CoverageStatus = "ready"
	StatusNoBundles         CoverageStatus = "no_bundles"
	StatusMissingTargets    CoverageStatus = "missing_targets"
	StatusUnexpectedTargets CoverageStatus = "unexpected_targets"
)

// CoverageReport contains the coverage result for an upload set.
// Targets are "os/locale" keys.
type CoverageReport struct {
	Status            CoverageStatus `yaml:"status"`
	ExpectedTargets   []string       `yaml:"expected"`
	AvailableTargets  []string       `yaml:"available"`
	MissingTargets    []string       `yaml:"missing,omitempty"`
	UnexpectedTargets []string       `yaml:"unexpected,omitempty"`
}

// IsReady returns true if every expected target is present and nothing else is
func (r *CoverageReport) IsReady() bool {
	return r.Status == StatusReady
}

// ErrorMessage returns a human-readable message if not ready
func (r *CoverageReport) ErrorMessage() string {
	switch r.Status {
	case StatusReady:
		return ""
	case StatusNoBundles:
		return fmt.Sprintf("No signed bundles found (expected: %d targets)", len(r.ExpectedTargets))
	case StatusMissingTargets:
		msg := fmt.Sprintf("Missing targets (expected: %d, have: %d)\n   Missing: %s",
			len(r.ExpectedTargets), len(r.AvailableTargets), strings.Join(r.MissingTargets, ", "))
		if len(r.UnexpectedTargets) > 0 {
			msg += fmt.Sprintf("\n   Unexpected: %s", strings.Join(r.UnexpectedTargets, ", "))
		}
		return msg
	case StatusUnexpectedTargets:
		return fmt.Sprintf("Unexpected targets found: %s", strings.Join(r.UnexpectedTargets, ", "))
	default:
		return "Unknown status"
	}
}

// CoverageService checks an upload set against the platforms and locales a release must ship
type CoverageService struct{}

// NewCoverageService creates a new coverage service
func NewCoverageService() *CoverageService {
	return &CoverageService{}
}

// Check compares the bundles in names against cfg. Signature names and
// anything that is not a valid bundle are ignored. An empty locale list
// accepts whatever locales are present for the expected platforms.
func (s *CoverageService) Check(cfg entities.CoverageConfig, names []string) *CoverageReport {
	report := &CoverageReport{}

	available := make(map[string]bool)
	locales := make(map[string]bool)
	for _, name := range names {
		info, err := ClassifyBundle(name)
		if err != nil {
			continue
		}
		available[info.Target()] = true
		locales[info.Locale] = true
	}

	expectedLocales := cfg.Locales
	if len(expectedLocales) == 0 {
		expectedLocales = sortedKeys(locales)
	}

	expected := make(map[string]bool)
	for _, osName := range cfg.Platforms {
		for _, lc := range expectedLocales {
			expected[osName+"/"+lc] = true
		}
	}

	report.ExpectedTargets = sortedKeys(expected)
	report.AvailableTargets = sortedKeys(available)
	report.MissingTargets = difference(report.ExpectedTargets, available)
	report.UnexpectedTargets = difference(report.AvailableTargets, expected)

	switch {
	case len(available) == 0:
		report.Status = StatusNoBundles
	case len(report.MissingTargets) > 0:
		report.Status = StatusMissingTargets
	case len(report.UnexpectedTargets) > 0:
		report.Status = StatusUnexpectedTargets
	default:
		report.Status = StatusReady
	}

	return report
}

// difference returns the members of list not present in set, preserving order
func difference(list []string, set map[string]bool) []string {
	var out []string
	for _, item := range list {
		if !set[item] {
			out = append(out, item)
		}
	}
	return out
}

func sortedKeys(m map[string]bool) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
