package daemon

import (
	"context"
	"time"

	"github.com/sourcegraph/jsonrpc2"
)

// Control protocol methods.
const (
	MethodStatus   = "status"
	MethodGenerate = "generate"
	MethodShutdown = "shutdown"
)

// StatusResult is the daemon's answer to a status request.
type StatusResult struct {
	Socket       string    `json:"socket"`
	ViewsDir     string    `json:"views_dir"`
	Output       string    `json:"output"`
	Uptime       string    `json:"uptime"`
	Routes       int       `json:"routes"`
	LastGenerate time.Time `json:"last_generate"`
}

// GenerateResult reports a forced regeneration.
type GenerateResult struct {
	Routes int       `json:"routes"`
	At     time.Time `json:"at"`
}

type controlHandler struct {
	daemon *Daemon
}

func (h *controlHandler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {
	switch req.Method {
	case MethodStatus:
		conn.Reply(ctx, req.ID, h.daemon.status())

	case MethodGenerate:
		h.daemon.regenerate()
		s := h.daemon.status()
		conn.Reply(ctx, req.ID, GenerateResult{Routes: s.Routes, At: s.LastGenerate})

	case MethodShutdown:
		conn.Reply(ctx, req.ID, true)
		h.daemon.Shutdown()

	default:
		if req.Notif {
			return
		}
		conn.ReplyWithError(ctx, req.ID, &jsonrpc2.Error{
			Code:    jsonrpc2.CodeMethodNotFound,
			Message: "unknown method: " + req.Method,
		})
	}
}
