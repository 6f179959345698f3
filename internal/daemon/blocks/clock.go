package blocks

import "time"

// ClockLayout is the 24-hour, zero-padded time shown on the bar.
const ClockLayout = "15:04"

// Clock renders the time of t.
func (r *Renderer) Clock(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	c := r.Config
	pad := c.Placeholders.Clock
	return withReset(colors(c.Colors.BackgroundSecondary, c.Colors.Foreground) +
		pad + t.Format(ClockLayout) + pad)
}
