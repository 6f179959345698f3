// Package blocks renders the lemonbar markup fragments that make up a bar
// line. Renderers are pure; the probes that fetch live data live next to
// them and report failures as errors, which the renderers turn into empty
// fragments.
package blocks

import (
	"strings"

	"github.com/alessio/shellescape"
)

// Reset restores default background, foreground and font.
const Reset = "%{B-}%{F-}%{T-}"

func colors(bg, fg string) string {
	return "%{B" + bg + "}%{F" + fg + "}"
}

func action(script, body string) string {
	return "%{A:" + script + ":}" + body + "%{A}"
}

func withReset(s string) string {
	return s + Reset
}

// backgroundScript builds "<cmd> <args...> &" with every argument quoted for
// the shell that runs lemonbar's click output.
func backgroundScript(cmd string, args ...string) string {
	var sb strings.Builder
	sb.WriteString(cmd)
	for _, arg := range args {
		sb.WriteByte(' ')
		sb.WriteString(shellescape.Quote(arg))
	}
	sb.WriteString(" &")
	return sb.String()
}
