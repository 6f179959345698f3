package wm

import (
	"errors"

	"github.com/UndeadLeech/bar-helpers/internal/models"
)

// Client is a workspace source connection.
type Client interface {
	Workspaces() ([]models.Workspace, error)
	Close() error
}

// DialFunc establishes a new Client.
type DialFunc func() (Client, error)

// DialI3 is the DialFunc for the real i3 socket.
func DialI3() (Client, error) {
	c, err := Dial()
	if err != nil {
		return nil, err
	}
	return c, nil
}

var errNoConnection = errors.New("no i3 connection")

// Fetch requests the workspace list on c. On failure it closes c, dials
// once, and retries once. It returns the workspaces (nil after a second
// failure) together with the connection the caller should use from now
// on, which may be nil or still broken; the next call heals it again.
func Fetch(c Client, dial DialFunc) ([]models.Workspace, Client, error) {
	workspaces, err := request(c)
	if err == nil {
		return workspaces, c, nil
	}

	if c != nil {
		_ = c.Close()
	}

	next, dialErr := dial()
	if dialErr != nil {
		return nil, nil, errors.Join(err, dialErr)
	}

	workspaces, retryErr := request(next)
	if retryErr != nil {
		return nil, next, errors.Join(err, retryErr)
	}
	return workspaces, next, nil
}

func request(c Client) ([]models.Workspace, error) {
	if c == nil {
		return nil, errNoConnection
	}
	return c.Workspaces()
}
