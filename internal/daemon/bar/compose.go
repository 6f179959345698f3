// Package bar drives one lemonbar process per screen.
package bar

import "strings"

// Alignment directives understood by lemonbar.
const (
	AlignCenter = "%{c}"
	AlignRight  = "%{r}"
)

// Line holds the fragments of one bar line. Empty fragments keep their
// place in the layout and simply render nothing.
type Line struct {
	Power        string
	Workspaces   string
	Clock        string
	Notification string
	Volume       string
	Padding      string
}

// Compose lays out a line: power and workspaces on the left, the clock in
// the center, notifications and volume on the right.
func Compose(l Line) string {
	var sb strings.Builder
	sb.Grow(len(l.Power) + len(l.Workspaces) + len(l.Clock) + len(l.Notification) + len(l.Volume) + 2*len(l.Padding) + 12)

	sb.WriteString(l.Power)
	sb.WriteString(l.Padding)
	sb.WriteString(l.Workspaces)
	sb.WriteString(AlignCenter)
	sb.WriteString(l.Clock)
	sb.WriteString(AlignRight)
	sb.WriteString(l.Notification)
	sb.WriteString(l.Padding)
	sb.WriteString(l.Volume)
	sb.WriteByte('\n')
	return sb.String()
}
