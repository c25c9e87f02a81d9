package xz

import (
	"archive/tar"
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz"
)

func writeTarXZ(t *testing.T, path string) {
	t.Helper()

	var buf bytes.Buffer
	xw, err := xz.NewWriter(&buf)
	if err != nil {
		t.Fatalf("xz.NewWriter() error = %v", err)
	}
	tw := tar.NewWriter(xw)
	body := []byte("#!/bin/sh\necho start-tor-browser\n")
	if err := tw.WriteHeader(&tar.Header{Name: "tor-browser/start-tor-browser", Mode: 0o755, Size: int64(len(body))}); err != nil {
		t.Fatal(err)
	}
	if _, err := tw.Write(body); err != nil {
		t.Fatal(err)
	}
	if err := tw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := xw.Close(); err != nil {
		t.Fatal(err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
		t.Fatal(err)
	}
}

func TestProber_Probe(t *testing.T) {
	dir := t.TempDir()
	p := NewProber()

	t.Run("valid tar.xz", func(t *testing.T) {
		path := filepath.Join(dir, "tor-browser-linux64-12.5_en.tar.xz")
		writeTarXZ(t, path)
		if err := p.Probe(path); err != nil {
			t.Errorf("Probe() error = %v", err)
		}
	})

	t.Run("not xz", func(t *testing.T) {
		path := filepath.Join(dir, "plain.tar.xz")
		if err := os.WriteFile(path, []byte("definitely not compressed"), 0600); err != nil {
			t.Fatal(err)
		}
		err := p.Probe(path)
		if err == nil || !strings.Contains(err.Error(), "not an xz stream") {
			t.Errorf("Probe() error = %v, want xz stream error", err)
		}
	})

	t.Run("xz without tar", func(t *testing.T) {
		path := filepath.Join(dir, "raw.tar.xz")
		var buf bytes.Buffer
		xw, err := xz.NewWriter(&buf)
		if err != nil {
			t.Fatal(err)
		}
		if _, err := xw.Write([]byte("just some text")); err != nil {
			t.Fatal(err)
		}
		if err := xw.Close(); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, buf.Bytes(), 0600); err != nil {
			t.Fatal(err)
		}

		if err := p.Probe(path); err == nil {
			t.Error("Probe() expected error for non-tar payload, got nil")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if err := p.Probe(filepath.Join(dir, "missing.tar.xz")); err == nil {
			t.Error("Probe() expected error for missing file, got nil")
		}
	})
}
