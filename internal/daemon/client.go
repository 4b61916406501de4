package daemon

import (
	"context"

	"github.com/sourcegraph/jsonrpc2"
)

// Client speaks the control protocol to a running daemon.
type Client struct {
	conn *jsonrpc2.Conn
}

// Dial connects to the daemon's control socket.
func Dial(ctx context.Context, socketPath string) (*Client, error) {
	netConn, err := dialControl(socketPath)
	if err != nil {
		return nil, err
	}

	stream := jsonrpc2.NewBufferedStream(netConn, jsonrpc2.PlainObjectCodec{})
	conn := jsonrpc2.NewConn(ctx, stream, noopHandler{})
	return &Client{conn: conn}, nil
}

func (c *Client) Status(ctx context.Context) (*StatusResult, error) {
	var result StatusResult
	if err := c.conn.Call(ctx, MethodStatus, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Generate(ctx context.Context) (*GenerateResult, error) {
	var result GenerateResult
	if err := c.conn.Call(ctx, MethodGenerate, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) Shutdown(ctx context.Context) error {
	var ok bool
	return c.conn.Call(ctx, MethodShutdown, nil, &ok)
}

func (c *Client) Close() error {
	return c.conn.Close()
}

type noopHandler struct{}

func (noopHandler) Handle(ctx context.Context, conn *jsonrpc2.Conn, req *jsonrpc2.Request) {}
