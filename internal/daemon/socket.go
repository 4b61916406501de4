package daemon

import (
	"errors"
	"net"
	"os"
	"path/filepath"
)

// ControlSocket is the unix socket the daemon answers control requests
// on. Listen replaces any socket file a previous instance left behind;
// the instance lock guarantees no live daemon still owns it.
type ControlSocket struct {
	path string
	ln   net.Listener
}

func NewControlSocket(path string) *ControlSocket {
	return &ControlSocket{path: path}
}

func (cs *ControlSocket) Listen() error {
	if err := os.MkdirAll(filepath.Dir(cs.path), 0700); err != nil {
		return err
	}
	if err := os.Remove(cs.path); err != nil && !os.IsNotExist(err) {
		return err
	}

	ln, err := net.Listen("unix", cs.path)
	if err != nil {
		return err
	}
	cs.ln = ln

	// Only the owner may drive the daemon.
	return os.Chmod(cs.path, 0700)
}

func (cs *ControlSocket) Accept() (net.Conn, error) {
	if cs.ln == nil {
		return nil, errors.New("control socket not listening")
	}
	return cs.ln.Accept()
}

func (cs *ControlSocket) Close() error {
	if cs.ln == nil {
		return nil
	}
	return cs.ln.Close()
}

// dialControl connects to a daemon's control socket.
func dialControl(path string) (net.Conn, error) {
	return net.Dial("unix", path)
}
