package tui

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/ohflip/internal/registry"
)

func registerStub(t *testing.T) {
	t.Helper()
	if !registry.Exists("stub") {
		registry.Register("stub", func() registry.Game { return &stubGame{} })
	}
}

func TestNewSSHServerUnknownGame(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.GameID = "no-such-game"
	cfg.HostKeyPath = filepath.Join(dir, "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")

	_, err := NewSSHServer(cfg, nil)
	if err == nil || !strings.Contains(err.Error(), "no-such-game") {
		t.Fatalf("NewSSHServer error = %v, want unknown game", err)
	}
}

func TestNewSSHServer(t *testing.T) {
	registerStub(t)

	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.GameID = "stub"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "scores.db")

	srv, err := NewSSHServer(cfg, nil)
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	defer srv.closeStore()

	if srv.store == nil {
		t.Error("expected the score database to be opened")
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Addr() = %q", srv.Addr())
	}
	if srv.ActiveSessions() != 0 {
		t.Errorf("ActiveSessions() = %d, want 0", srv.ActiveSessions())
	}
}
