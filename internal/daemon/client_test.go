//go:build unix

package daemon

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/sourcegraph/jsonrpc2"
)

// serveControl answers control requests on the daemon's socket for the
// duration of the test.
func serveControl(t *testing.T, d *Daemon) {
	t.Helper()

	sock := NewControlSocket(d.cfg.SocketPath)
	if err := sock.Listen(); err != nil {
		t.Fatalf("Listen failed: %v", err)
	}
	t.Cleanup(func() { sock.Close() })

	go func() {
		for {
			conn, err := sock.Accept()
			if err != nil {
				return
			}
			stream := jsonrpc2.NewBufferedStream(conn, jsonrpc2.PlainObjectCodec{})
			jsonrpc2.NewConn(context.Background(), stream, &controlHandler{daemon: d})
		}
	}()
}

func TestClientGenerateOverSocket(t *testing.T) {
	d := testDaemon(t)
	if err := os.MkdirAll(d.cfg.Generate.ViewsDir, 0755); err != nil {
		t.Fatalf("mkdir views: %v", err)
	}
	serveControl(t, d)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := Dial(ctx, d.cfg.SocketPath)
	if err != nil {
		t.Fatalf("Dial failed: %v", err)
	}
	defer client.Close()

	result, err := client.Generate(ctx)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if result.At.IsZero() {
		t.Error("Expected generation timestamp")
	}
	if _, err := os.Stat(d.cfg.Generate.Output); err != nil {
		t.Errorf("Expected route file written: %v", err)
	}
}

func TestDialFailsWithoutDaemon(t *testing.T) {
	d := testDaemon(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	if _, err := Dial(ctx, d.cfg.SocketPath); err == nil {
		t.Fatal("Expected Dial to fail with no daemon listening")
	}
}
