package gsuite

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestResolveCredentialsFileConfigured(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sa.json")
	if err := os.WriteFile(path, []byte("{}"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}

	got, err := ResolveCredentialsFile(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != path {
		t.Fatalf("expected %s, got %s", path, got)
	}
}

func TestResolveCredentialsFileConfiguredMissing(t *testing.T) {
	_, err := ResolveCredentialsFile(filepath.Join(t.TempDir(), "missing.json"))
	if err == nil {
		t.Fatal("expected error for missing configured file")
	}
}

func TestResolveCredentialsFileFallback(t *testing.T) {
	t.Chdir(t.TempDir())
	if err := os.WriteFile("credentials.json", []byte("{}"), 0o600); err != nil {
		t.Fatalf("write key file: %v", err)
	}

	got, err := ResolveCredentialsFile("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "credentials.json" {
		t.Fatalf("expected fallback credentials.json, got %s", got)
	}
}

func TestResolveCredentialsFileNone(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := ResolveCredentialsFile("")
	if !errors.Is(err, ErrNoCredentials) {
		t.Fatalf("expected ErrNoCredentials, got %v", err)
	}
}
