package screens

import (
	"context"
	"log"
	"os/exec"
	"regexp"
	"strconv"

	"github.com/UndeadLeech/bar-helpers/internal/models"
)

// connectedPattern matches lines like
// "eDP-1 connected primary 1920x1080+0+0 (normal left inverted ...)".
var connectedPattern = regexp.MustCompile(`(?m)^([a-zA-Z0-9-]+) connected (?:primary )?([0-9]+)x([0-9]+)\+([0-9]+)\+([0-9]+)`)

// Xrandr discovers screens by parsing the output of the xrandr tool.
type Xrandr struct {
	// Path overrides the xrandr binary; empty means lookup in PATH.
	Path string
}

// Name implements Backend.
func (Xrandr) Name() string { return BackendXrandr }

// Discover implements Backend.
func (x Xrandr) Discover(ctx context.Context) []models.Screen {
	bin := x.Path
	if bin == "" {
		bin = "xrandr"
	}

	out, err := exec.CommandContext(ctx, bin).Output()
	if err != nil {
		log.Printf("[screens] xrandr unavailable: %v", err)
		return nil
	}
	return ParseXrandr(string(out))
}

// ParseXrandr extracts connected outputs from xrandr output. Disconnected
// outputs and connected outputs without an active mode are skipped.
func ParseXrandr(out string) []models.Screen {
	var screens []models.Screen
	for _, m := range connectedPattern.FindAllStringSubmatch(out, -1) {
		width, errW := strconv.Atoi(m[2])
		height, errH := strconv.Atoi(m[3])
		x, errX := strconv.Atoi(m[4])
		y, errY := strconv.Atoi(m[5])
		if errW != nil || errH != nil || errX != nil || errY != nil {
			continue
		}
		screens = append(screens, models.Screen{
			Name:   m[1],
			Width:  width,
			Height: height,
			X:      x,
			Y:      y,
		})
	}
	return screens
}
