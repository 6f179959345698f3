package blocks

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// MixerArgs selects the PulseAudio Master control.
var MixerArgs = []string{"-D", "pulse", "get", "Master"}

// QueryVolume runs the mixer tool and returns its raw output.
func QueryVolume(ctx context.Context, mixer string) (string, error) {
	if mixer == "" {
		mixer = "amixer"
	}
	out, err := exec.CommandContext(ctx, mixer, MixerArgs...).Output()
	if err != nil {
		return "", fmt.Errorf("%s failed: %w", mixer, err)
	}
	return string(out), nil
}

// ParseVolume extracts the first percentage from mixer output: the text
// between the last '[' before the first '%' and that '%', right-aligned to
// width 3.
func ParseVolume(out string) (string, bool) {
	end := strings.IndexByte(out, '%')
	if end < 0 {
		return "", false
	}
	start := strings.LastIndexByte(out[:end], '[')
	if start < 0 {
		return "", false
	}
	return fmt.Sprintf("%3s", out[start+1:end]), true
}

// Volume renders the volume level from raw mixer output. Output that does
// not parse renders nothing.
func (r *Renderer) Volume(mixerOutput string) string {
	level, ok := ParseVolume(mixerOutput)
	if !ok {
		return ""
	}
	c := r.Config
	pad := c.Placeholders.Volume
	return withReset(colors(c.Colors.BackgroundSecondary, c.Colors.Foreground) +
		action(r.popupScript(c.Exec.Volume), pad+" "+level+pad))
}
