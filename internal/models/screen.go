package models

import "fmt"

// Screen describes one connected monitor.
type Screen struct {
	Name   string `yaml:"name"` // output name as reported by the window manager
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	X      int    `yaml:"x"`
	Y      int    `yaml:"y"`
}

// Geometry returns a lemonbar -g argument spanning the screen width at the
// given bar height.
func (s Screen) Geometry(barHeight int) string {
	return fmt.Sprintf("%dx%d+%d+0", s.Width, barHeight, s.X)
}

// String implements fmt.Stringer.
func (s Screen) String() string {
	return fmt.Sprintf("%s %dx%d+%d+%d", s.Name, s.Width, s.Height, s.X, s.Y)
}
