package blocks

import (
	"strconv"
	"strings"

	"github.com/UndeadLeech/bar-helpers/internal/models"
)

// SlotState is the visual state of one workspace slot.
type SlotState int

// Slot states, in precedence order.
const (
	SlotEmpty SlotState = iota
	SlotActive
	SlotUrgent
	SlotInactive
)

func (s SlotState) String() string {
	switch s {
	case SlotEmpty:
		return "empty"
	case SlotActive:
		return "active"
	case SlotUrgent:
		return "urgent"
	case SlotInactive:
		return "inactive"
	default:
		return "unknown"
	}
}

// ClassifySlot picks the state for a slot given the live workspace mapped
// to it, or nil if there is none.
func ClassifySlot(ws *models.Workspace) SlotState {
	switch {
	case ws == nil:
		return SlotEmpty
	case ws.Visible:
		return SlotActive
	case ws.Urgent:
		return SlotUrgent
	default:
		return SlotInactive
	}
}

// SlotIndex maps a global i3 workspace number to a per-screen slot. With
// two screens, workspaces 1-2 land in slot 0, 3-4 in slot 1, and so on.
func SlotIndex(num, screenCount int) int {
	if screenCount <= 0 {
		screenCount = 1
	}
	return (num - 1) / screenCount
}

// slotColors returns the background and foreground for a state.
func (r *Renderer) slotColors(state SlotState) (bg, fg string) {
	p := r.Config.Colors
	switch state {
	case SlotActive:
		return p.BackgroundSecondary, p.Foreground
	case SlotUrgent:
		return p.Background, p.Highlight
	case SlotInactive:
		return p.Background, p.ForegroundSecondary
	default:
		return p.Background, p.BackgroundSecondary
	}
}

// Workspaces renders one clickable slot per configured workspace glyph.
// Slots without a live workspace on this screen render in the empty state.
func (r *Renderer) Workspaces(workspaces []models.Workspace, screenCount int) string {
	c := r.Config
	pad := c.Placeholders.Workspace

	var sb strings.Builder
	for i, glyph := range c.WorkspaceGlyphs() {
		var match *models.Workspace
		for j := range workspaces {
			ws := &workspaces[j]
			if ws.Output == r.Screen && ws.Num > 0 && SlotIndex(ws.Num, screenCount) == i {
				match = ws
			}
		}

		bg, fg := r.slotColors(ClassifySlot(match))
		script := c.Exec.SwitchWorkspace + " " + strconv.Itoa(i+1)
		sb.WriteString(colors(bg, fg))
		sb.WriteString(action(script, pad+glyph+pad))
	}
	return withReset(sb.String())
}
