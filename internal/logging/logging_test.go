package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSink_QuietByDefault(t *testing.T) {
	var stderr strings.Builder
	s := New(Options{Stderr: &stderr})
	defer s.Close()

	s.Logger("sync").Println("Synced a.json")
	s.WarnLogger("watch").Println("Error syncing a.jsonc")

	out := stderr.String()
	if strings.Contains(out, "Synced") {
		t.Errorf("informational line reached stderr without --verbose: %q", out)
	}
	if !strings.Contains(out, "[watch] ") || !strings.Contains(out, "Error syncing a.jsonc") {
		t.Errorf("warning missing from stderr: %q", out)
	}
}

func TestSink_Verbose(t *testing.T) {
	var stderr strings.Builder
	s := New(Options{Stderr: &stderr, Verbose: true})
	defer s.Close()

	s.Logger("session").Println("Editing /tmp/x.jsonc")

	if !strings.Contains(stderr.String(), "[session] ") {
		t.Errorf("verbose output missing: %q", stderr.String())
	}
}

func TestSink_File(t *testing.T) {
	var stderr strings.Builder
	path := filepath.Join(t.TempDir(), "logs", "jce.log")

	s := New(Options{Stderr: &stderr, File: path})
	s.Logger("sync").Println("Synced b.json")
	s.WarnLogger("watch").Println("Watch error: overflow")
	if err := s.Close(); err != nil {
		t.Fatalf("Close() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	content := string(data)
	if !strings.Contains(content, "[sync] ") || !strings.Contains(content, "Synced b.json") {
		t.Errorf("info line missing from log file: %q", content)
	}
	if !strings.Contains(content, "Watch error: overflow") {
		t.Errorf("warning missing from log file: %q", content)
	}
	if strings.Contains(stderr.String(), "Synced") {
		t.Errorf("info line leaked to stderr: %q", stderr.String())
	}
}

func TestSink_CloseWithoutFile(t *testing.T) {
	if err := New(Options{}).Close(); err != nil {
		t.Errorf("Close() failed: %v", err)
	}
}
