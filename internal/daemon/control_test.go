package daemon

import (
	"context"
	"net"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/alucardeht/fasttags/internal/config"
	"github.com/alucardeht/fasttags/internal/watcher"
)

func testDaemon(t *testing.T) *Daemon {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Config{
		ProjectDir: dir,
		StateDir:   filepath.Join(dir, ".fasttags"),
		SocketPath: filepath.Join(dir, ".fasttags", "daemon.sock"),
		Generate: config.GenerateConfig{
			ViewsDir:    filepath.Join(dir, "views"),
			ViewsImport: "example.com/app/views",
			Output:      filepath.Join(dir, "routes", "routes_gen.go"),
			Package:     "routes",
		},
		Watcher: watcher.DefaultConfig(),
	}

	d, err := New(cfg)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return d
}

// controlPipe wires a client conn to the daemon's control handler over an
// in-memory pipe.
func controlPipe(t *testing.T, d *Daemon) *jsonrpc2.Conn {
	t.Helper()

	serverSide, clientSide := net.Pipe()
	ctx := context.Background()

	server := jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(serverSide, jsonrpc2.PlainObjectCodec{}),
		&controlHandler{daemon: d})
	client := jsonrpc2.NewConn(ctx,
		jsonrpc2.NewBufferedStream(clientSide, jsonrpc2.PlainObjectCodec{}),
		noopHandler{})

	t.Cleanup(func() {
		client.Close()
		server.Close()
	})
	return client
}

func TestControlStatus(t *testing.T) {
	d := testDaemon(t)
	client := controlPipe(t, d)

	var status StatusResult
	if err := client.Call(context.Background(), MethodStatus, nil, &status); err != nil {
		t.Fatalf("status call failed: %v", err)
	}

	if status.Socket != d.cfg.SocketPath {
		t.Errorf("Expected socket %q, got %q", d.cfg.SocketPath, status.Socket)
	}
	if status.ViewsDir != d.cfg.Generate.ViewsDir {
		t.Errorf("Expected views dir %q, got %q", d.cfg.Generate.ViewsDir, status.ViewsDir)
	}
}

func TestControlGenerate(t *testing.T) {
	d := testDaemon(t)
	client := controlPipe(t, d)

	// The views dir must exist for the scan to succeed.
	if err := os.MkdirAll(d.cfg.Generate.ViewsDir, 0755); err != nil {
		t.Fatalf("mkdir views: %v", err)
	}

	var result GenerateResult
	if err := client.Call(context.Background(), MethodGenerate, nil, &result); err != nil {
		t.Fatalf("generate call failed: %v", err)
	}
	if result.At.IsZero() {
		t.Error("Expected generation timestamp")
	}
}

func TestControlUnknownMethod(t *testing.T) {
	d := testDaemon(t)
	client := controlPipe(t, d)

	var out any
	err := client.Call(context.Background(), "bogus", nil, &out)
	if err == nil {
		t.Fatal("Expected error for unknown method")
	}
}

func TestControlShutdown(t *testing.T) {
	d := testDaemon(t)
	client := controlPipe(t, d)

	var ok bool
	if err := client.Call(context.Background(), MethodShutdown, nil, &ok); err != nil {
		t.Fatalf("shutdown call failed: %v", err)
	}
	if !ok {
		t.Error("Expected shutdown acknowledged")
	}

	select {
	case <-d.shutdown:
	case <-time.After(time.Second):
		t.Error("Expected shutdown channel closed")
	}
}
