package blocks

import (
	"strconv"

	"github.com/UndeadLeech/bar-helpers/internal/models"
)

// Renderer renders fragments for one screen from a fixed configuration.
type Renderer struct {
	Screen string
	Config *models.Config
}

// NewRenderer creates a renderer for the named screen.
func NewRenderer(screen string, cfg *models.Config) *Renderer {
	return &Renderer{Screen: screen, Config: cfg}
}

// popupScript builds the click script for fragments that open a popup on
// this screen: "<cmd> <screen> <height> &".
func (r *Renderer) popupScript(cmd string) string {
	return backgroundScript(cmd, r.Screen, strconv.Itoa(r.Config.General.Height))
}
