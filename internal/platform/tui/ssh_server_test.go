package tui

import (
	"os"
	"path/filepath"
	"testing"
)

func TestResolveHostKeyCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "keys", "nested", "host_key")
	got, err := resolveHostKey(path)
	if err != nil {
		t.Fatalf("resolveHostKey() failed: %v", err)
	}
	if got != path {
		t.Errorf("resolveHostKey() = %s, expected %s", got, path)
	}
	if info, err := os.Stat(filepath.Dir(path)); err != nil || !info.IsDir() {
		t.Errorf("key directory not created: %v", err)
	}
}

func TestNewSSHServerWithoutDatabase(t *testing.T) {
	dir := t.TempDir()
	// A regular file where the database directory should be makes Open fail.
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, nil, 0o600); err != nil {
		t.Fatal(err)
	}
	dbPath := filepath.Join(blocker, "adventure.db")

	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = dbPath

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() failed: %v", err)
	}
	if srv.store != nil {
		t.Error("expected the hall of fame to be disabled")
	}
	if srv.ActiveSessions() != 0 {
		t.Errorf("ActiveSessions() = %d, expected 0", srv.ActiveSessions())
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %s, expected %s", srv.Addr(), cfg.Address)
	}
}
