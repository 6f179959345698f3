package blocks

import (
	"context"
	"fmt"
	"io"
	"net"
	"strings"
)

// NotificationSocket is where the notification daemon listens.
const NotificationSocket = "/tmp/leechnot.sock"

// ProbeNotifications sends "show" to the notification daemon and returns its
// full response. Only a failed connect or read is an error.
func ProbeNotifications(ctx context.Context, socket string) (string, error) {
	if socket == "" {
		socket = NotificationSocket
	}

	var d net.Dialer
	conn, err := d.DialContext(ctx, "unix", socket)
	if err != nil {
		return "", fmt.Errorf("notification daemon unavailable: %w", err)
	}
	defer conn.Close()

	// The daemon may answer without reading the request; a failed write
	// still leaves its reply to read.
	_, _ = conn.Write([]byte("show"))
	if uc, ok := conn.(*net.UnixConn); ok {
		_ = uc.CloseWrite()
	}

	resp, err := io.ReadAll(conn)
	if err != nil {
		return "", fmt.Errorf("failed to read notification daemon response: %w", err)
	}
	return string(resp), nil
}

// HasNotification reports whether a daemon response carries a notification.
func HasNotification(resp string) bool {
	return strings.HasPrefix(resp, "{")
}

// Notification renders the notification indicator. It renders nothing when
// the response carries no notification or no viewer command is configured.
func (r *Renderer) Notification(resp string) string {
	c := r.Config
	if c.Exec.Notification == "" || !HasNotification(resp) {
		return ""
	}
	pad := c.Placeholders.Notification
	return withReset(colors(c.Colors.Highlight, c.Colors.Background) +
		action(r.popupScript(c.Exec.Notification), pad+pad))
}
