package blocks

// Power renders the static power button.
func (r *Renderer) Power() string {
	c := r.Config
	pad := c.Placeholders.Power
	return withReset(colors(c.Colors.BackgroundSecondary, c.Colors.Foreground) +
		action(r.popupScript(c.Exec.Power), pad+c.General.PowerIcon+pad))
}
