// Package wm talks to the i3 window manager over its IPC socket.
package wm

import (
	"fmt"

	"github.com/mdirkse/i3ipc"

	"github.com/UndeadLeech/bar-helpers/internal/models"
)

// Conn is a connection to the i3 IPC socket. It is not safe for
// concurrent use; each bar driver owns its own.
type Conn struct {
	sock *i3ipc.IPCSocket
}

// Dial connects to the socket reported by `i3 --get-socketpath`.
func Dial() (*Conn, error) {
	sock, err := i3ipc.GetIPCSocket()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to i3: %w", err)
	}
	return &Conn{sock: sock}, nil
}

// Workspaces requests the current workspace list.
func (c *Conn) Workspaces() ([]models.Workspace, error) {
	reply, err := c.sock.GetWorkspaces()
	if err != nil {
		return nil, fmt.Errorf("failed to get workspaces: %w", err)
	}
	return fromIPC(reply), nil
}

// Close closes the connection.
func (c *Conn) Close() error {
	c.sock.Close()
	return nil
}

func fromIPC(reply []i3ipc.Workspace) []models.Workspace {
	workspaces := make([]models.Workspace, 0, len(reply))
	for _, ws := range reply {
		workspaces = append(workspaces, models.Workspace{
			Num:     int(ws.Num),
			Name:    ws.Name,
			Output:  ws.Output,
			Visible: ws.Visible,
			Focused: ws.Focused,
			Urgent:  ws.Urgent,
		})
	}
	return workspaces
}
