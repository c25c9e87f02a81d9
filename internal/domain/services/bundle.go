// Package services holds the pure domain logic for bundle naming and release coverage.
package services

import (
	"regexp"

	"github.com/ochairo/gettor/internal/domain/entities"
)

// Bundle filename grammars. Word and digit classes are Unicode-aware:
// a locale is any two letters, digits or underscores and version digits
// may come from any script. Locale captures keep only the language code;
// an optional "-XX" region suffix is matched and discarded.
const (
	nameWord    = `[\p{L}\p{N}_]`
	nameDigit   = `\p{Nd}`
	nameVersion = nameDigit + `+\.` + nameDigit + `+(?:\.` + nameDigit + `+)?`
	nameLocale  = `(` + nameWord + `{2})(?:-` + nameWord + `{2})?`
)

var (
	windowsBundle = regexp.MustCompile(`^torbrowser-install-` + nameVersion + `_` + nameLocale + `\.exe$`)
	linuxBundle   = regexp.MustCompile(`^tor-browser-linux(` + nameDigit + `{2})-` + nameVersion + `_` + nameLocale + `\.tar\.xz$`)
	macOSBundle   = regexp.MustCompile(`^TorBrowser-` + nameVersion + `-osx` + nameDigit + `{2}_` + nameLocale + `\.dmg$`)
)

// ClassifyBundle extracts os, arch and locale from a bundle filename.
// Patterns are tried in order Windows, Linux, macOS.
func ClassifyBundle(filename string) (entities.BundleInfo, error) {
	if m := windowsBundle.FindStringSubmatch(filename); m != nil {
		return entities.BundleInfo{OS: entities.OSWindows, Arch: entities.ArchWindows, Locale: m[1]}, nil
	}
	if m := linuxBundle.FindStringSubmatch(filename); m != nil {
		return entities.BundleInfo{OS: entities.OSLinux, Arch: m[1], Locale: m[2]}, nil
	}
	if m := macOSBundle.FindStringSubmatch(filename); m != nil {
		return entities.BundleInfo{OS: entities.OSMacOS, Arch: entities.ArchMacOS, Locale: m[1]}, nil
	}
	return entities.BundleInfo{}, &entities.InvalidBundleError{Filename: filename}
}

// IsValidBundleName reports whether filename fully matches one of the bundle grammars
func IsValidBundleName(filename string) bool {
	return windowsBundle.MatchString(filename) ||
		linuxBundle.MatchString(filename) ||
		macOSBundle.MatchString(filename)
}
