// Package daemon runs the background route generator: it watches the
// views directory, regenerates the route file on source changes, and
// answers control requests over a unix socket.
package daemon

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sourcegraph/jsonrpc2"

	"github.com/alucardeht/fasttags/internal/config"
	"github.com/alucardeht/fasttags/internal/logger"
	"github.com/alucardeht/fasttags/internal/urlgen"
	"github.com/alucardeht/fasttags/internal/watcher"
)

var log = logger.ForComponent("daemon")

type Daemon struct {
	cfg       *config.Config
	listener  *ControlSocket
	lifecycle *LifecycleManager
	generator *urlgen.Generator
	watch     *watcher.Watcher

	conns  map[*jsonrpc2.Conn]bool
	connMu sync.Mutex

	genMu      sync.Mutex
	lastGen    time.Time
	routeCount int

	shutdown     chan struct{}
	shutdownOnce sync.Once
	startTime    time.Time
}

func New(cfg *config.Config) (*Daemon, error) {
	d := &Daemon{
		cfg:       cfg,
		listener:  NewControlSocket(cfg.SocketPath),
		lifecycle: NewLifecycleManager(cfg.StateDir, cfg.SocketPath),
		generator: urlgen.New(cfg.Generate),
		conns:     make(map[*jsonrpc2.Conn]bool),
		shutdown:  make(chan struct{}),
		startTime: time.Now(),
	}

	w, err := watcher.New(cfg.Watcher, d.onSourceChange)
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	d.watch = w

	return d, nil
}

// Run starts the daemon and blocks until Shutdown or context
// cancellation.
func (d *Daemon) Run(ctx context.Context) error {
	if err := d.cfg.EnsureDirectories(); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}
	if err := d.lifecycle.AcquireInstanceLock(); err != nil {
		return err
	}
	defer d.lifecycle.Cleanup()

	if err := d.lifecycle.RegisterRunningDaemon(); err != nil {
		return err
	}

	d.regenerate()

	if d.cfg.Watcher.Enabled {
		if err := d.watch.Start(ctx); err != nil {
			return fmt.Errorf("start watcher: %w", err)
		}
		if err := d.watch.AddRoot(d.cfg.Generate.ViewsDir); err != nil {
			log.Warn("views dir not watchable", "dir", d.cfg.Generate.ViewsDir, "error", err)
		}
	}

	if err := d.listener.Listen(); err != nil {
		return fmt.Errorf("start socket: %w", err)
	}
	log.Info("daemon listening", "socket", d.cfg.SocketPath)

	go d.acceptConnections(ctx)

	select {
	case <-ctx.Done():
	case <-d.shutdown:
	}

	d.stop()
	return nil
}

func (d *Daemon) acceptConnections(ctx context.Context) {
	for {
		conn, err := d.listener.Accept()
		if err != nil {
			select {
			case <-d.shutdown:
				return
			default:
				continue
			}
		}

		stream := jsonrpc2.NewBufferedStream(conn, jsonrpc2.PlainObjectCodec{})
		rpc := jsonrpc2.NewConn(ctx, stream, &controlHandler{daemon: d})

		d.connMu.Lock()
		d.conns[rpc] = true
		d.connMu.Unlock()

		go func() {
			<-rpc.DisconnectNotify()
			d.connMu.Lock()
			delete(d.conns, rpc)
			d.connMu.Unlock()
		}()
	}
}

// onSourceChange regenerates the route file after a debounced batch of
// Go source changes.
func (d *Daemon) onSourceChange(events []watcher.FileEvent) {
	log.Info("source changed, regenerating routes", "events", len(events))
	d.regenerate()
}

func (d *Daemon) regenerate() {
	d.genMu.Lock()
	defer d.genMu.Unlock()

	views, err := d.generator.Generate()
	if err != nil {
		log.Error("route generation failed", "error", err)
		return
	}
	d.lastGen = time.Now()
	d.routeCount = len(views)
}

func (d *Daemon) status() StatusResult {
	d.genMu.Lock()
	lastGen, routes := d.lastGen, d.routeCount
	d.genMu.Unlock()

	return StatusResult{
		Socket:       d.cfg.SocketPath,
		ViewsDir:     d.cfg.Generate.ViewsDir,
		Output:       d.cfg.Generate.Output,
		Uptime:       time.Since(d.startTime).Round(time.Second).String(),
		Routes:       routes,
		LastGenerate: lastGen,
	}
}

// Shutdown requests a graceful stop; Run returns once it completes.
func (d *Daemon) Shutdown() {
	d.shutdownOnce.Do(func() {
		close(d.shutdown)
	})
}

func (d *Daemon) stop() {
	log.Info("daemon stopping")

	if d.cfg.Watcher.Enabled {
		d.watch.Stop()
	}
	d.listener.Close()

	d.connMu.Lock()
	for conn := range d.conns {
		conn.Close()
	}
	d.connMu.Unlock()
}
