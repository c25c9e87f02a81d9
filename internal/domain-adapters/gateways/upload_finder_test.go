package gateways

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/ochairo/gettor/internal/domain/entities"
)

func writeFiles(t *testing.T, dir string, names ...string) {
	t.Helper()
	for _, name := range names {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(name), 0600); err != nil {
			t.Fatalf("Failed to create %s: %v", name, err)
		}
	}
}

func TestUploadFinder_FindUploadable(t *testing.T) {
	tests := []struct {
		name  string
		files []string
		dirs  []string
		want  []string
	}{
		{
			name: "bundle with signature and unrelated file",
			files: []string{
				"tor-browser-linux64-12.5_en.tar.xz",
				"tor-browser-linux64-12.5_en.tar.xz.asc",
				"readme.txt",
			},
			want: []string{
				"tor-browser-linux64-12.5_en.tar.xz",
				"tor-browser-linux64-12.5_en.tar.xz.asc",
			},
		},
		{
			name:  "bundle without signature is excluded",
			files: []string{"torbrowser-install-12.5_en.exe"},
			want:  []string{},
		},
		{
			name:  "signature for invalid name is ignored",
			files: []string{"readme.txt", "readme.txt.asc"},
			want:  []string{},
		},
		{
			name:  "signature that is a directory does not count",
			files: []string{"TorBrowser-12.5-osx64_fr.dmg"},
			dirs:  []string{"TorBrowser-12.5-osx64_fr.dmg.asc"},
			want:  []string{},
		},
		{
			name: "multiple platforms interleaved with signatures",
			files: []string{
				"TorBrowser-12.5-osx64_fr.dmg",
				"TorBrowser-12.5-osx64_fr.dmg.asc",
				"tor-browser-linux64-12.5_en-US.tar.xz",
				"tor-browser-linux64-12.5_en-US.tar.xz.asc",
				"torbrowser-install-12.5.1_de.exe",
				"torbrowser-install-12.5.1_de.exe.asc",
				"torbrowser-install-12.5.1_es.exe",
			},
			want: []string{
				"TorBrowser-12.5-osx64_fr.dmg",
				"TorBrowser-12.5-osx64_fr.dmg.asc",
				"tor-browser-linux64-12.5_en-US.tar.xz",
				"tor-browser-linux64-12.5_en-US.tar.xz.asc",
				"torbrowser-install-12.5.1_de.exe",
				"torbrowser-install-12.5.1_de.exe.asc",
			},
		},
	}

	finder := NewUploadFinder()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFiles(t, dir, tt.files...)
			for _, d := range tt.dirs {
				if err := os.Mkdir(filepath.Join(dir, d), 0o755); err != nil {
					t.Fatal(err)
				}
			}

			got, err := finder.FindUploadable(dir)
			if err != nil {
				t.Fatalf("FindUploadable() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FindUploadable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestUploadFinder_DirectoryNotFound(t *testing.T) {
	finder := NewUploadFinder()

	t.Run("missing", func(t *testing.T) {
		_, err := finder.FindUploadable(filepath.Join(t.TempDir(), "nope"))
		if !errors.Is(err, entities.ErrUploadDirNotFound) {
			t.Errorf("FindUploadable() error = %v, want ErrUploadDirNotFound", err)
		}
	})

	t.Run("regular file", func(t *testing.T) {
		dir := t.TempDir()
		writeFiles(t, dir, "file.txt")
		_, err := finder.FindUploadable(filepath.Join(dir, "file.txt"))
		if !errors.Is(err, entities.ErrUploadDirNotFound) {
			t.Errorf("FindUploadable() error = %v, want ErrUploadDirNotFound", err)
		}
	})
}

func TestUploadFinder_DoesNotModifyDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, "tor-browser-linux64-12.5_en.tar.xz", "tor-browser-linux64-12.5_en.tar.xz.asc")

	before, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := NewUploadFinder().FindUploadable(dir); err != nil {
		t.Fatalf("FindUploadable() error = %v", err)
	}
	after, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(before) != len(after) {
		t.Errorf("directory changed: %d entries before, %d after", len(before), len(after))
	}
}
