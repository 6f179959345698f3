package bar

import (
	"strings"
	"testing"
)

func TestCompose(t *testing.T) {
	tests := []struct {
		name string
		line Line
		want string
	}{
		{
			name: "all fragments",
			line: Line{Power: "P", Workspaces: "W", Clock: "C", Notification: "N", Volume: "V", Padding: "_"},
			want: "P_W%{c}C%{r}N_V\n",
		},
		{
			name: "empty fragments keep layout",
			line: Line{Power: "P", Workspaces: "W", Clock: "C", Padding: "_"},
			want: "P_W%{c}C%{r}_\n",
		},
		{
			name: "nothing at all",
			line: Line{},
			want: "%{c}%{r}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compose(tt.line)
			if got != tt.want {
				t.Errorf("Compose() = %q, want %q", got, tt.want)
			}
			if strings.Count(got, "\n") != 1 || !strings.HasSuffix(got, "\n") {
				t.Errorf("Compose() = %q, want exactly one trailing newline", got)
			}
		})
	}
}
