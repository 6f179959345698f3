package screens

import (
	"context"
	"log"

	"github.com/jezek/xgb"
	"github.com/jezek/xgb/randr"
	"github.com/jezek/xgb/xproto"

	"github.com/UndeadLeech/bar-helpers/internal/models"
)

// RandR discovers screens by querying the X server's RandR extension
// directly, without an external tool.
type RandR struct {
	// Display overrides $DISPLAY.
	Display string
}

// Name implements Backend.
func (RandR) Name() string { return BackendRandR }

// Discover implements Backend.
func (r RandR) Discover(ctx context.Context) []models.Screen {
	X, err := xgb.NewConnDisplay(r.Display)
	if err != nil {
		log.Printf("[screens] X connection failed: %v", err)
		return nil
	}
	defer X.Close()

	if err := randr.Init(X); err != nil {
		log.Printf("[screens] RandR unavailable: %v", err)
		return nil
	}

	root := xproto.Setup(X).DefaultScreen(X).Root
	res, err := randr.GetScreenResourcesCurrent(X, root).Reply()
	if err != nil {
		log.Printf("[screens] RandR screen resources: %v", err)
		return nil
	}

	var screens []models.Screen
	for _, output := range res.Outputs {
		if ctx.Err() != nil {
			return nil
		}

		info, err := randr.GetOutputInfo(X, output, res.ConfigTimestamp).Reply()
		if err != nil {
			continue
		}
		if info.Connection != randr.ConnectionConnected || info.Crtc == 0 {
			continue
		}

		crtc, err := randr.GetCrtcInfo(X, info.Crtc, res.ConfigTimestamp).Reply()
		if err != nil || crtc.Width == 0 {
			continue
		}

		screens = append(screens, models.Screen{
			Name:   string(info.Name),
			Width:  int(crtc.Width),
			Height: int(crtc.Height),
			X:      int(crtc.X),
			Y:      int(crtc.Y),
		})
	}
	return screens
}
