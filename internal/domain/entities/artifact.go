// Package entities defines core domain models and data structures.
package entities

// Operating systems a bundle can be built for
const (
	OSWindows = "windows"
	OSLinux   = "linux"
	OSMacOS   = "osx"
)

// Fixed architecture values for platforms whose filenames don't carry one
const (
	ArchWindows = "32/64"
	ArchMacOS   = "64"
)

// SignatureSuffix is appended to a bundle name to form its detached signature
const SignatureSuffix = ".asc"

// BundleInfo is the platform triple derived from a bundle filename
type BundleInfo struct {
	OS     string `yaml:"os"`
	Arch   string `yaml:"arch"`
	Locale string `yaml:"locale"`
}

// Target returns the "os/locale" key used for coverage checks
func (b BundleInfo) Target() string {
	return b.OS + "/" + b.Locale
}

// UploadEntry describes a bundle that is ready to be published
type UploadEntry struct {
	Name      string     `yaml:"name"`
	Signature string     `yaml:"signature"`
	Info      BundleInfo `yaml:"info"`
	SHA256    string     `yaml:"sha256,omitempty"`
	Verified  bool       `yaml:"signature_verified"`
}
