package tui

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewSSHServerCreatesHostKey(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "keys", "host_key")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}
	if srv.Addr() != "127.0.0.1:0" {
		t.Errorf("Unexpected address %q", srv.Addr())
	}
	if _, err := os.Stat(cfg.HostKeyPath); err != nil {
		t.Errorf("Host key should have been generated: %v", err)
	}
}

func TestListenAndServeStopsOnCancel(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(t.TempDir(), "host_key")

	srv, err := NewSSHServer(cfg, log.New(io.Discard))
	if err != nil {
		t.Fatalf("NewSSHServer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := srv.ListenAndServe(ctx); err != nil {
		t.Errorf("Cancelled server should shut down cleanly, got %v", err)
	}
}
