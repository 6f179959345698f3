package blocks

import (
	"context"
	"net"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/UndeadLeech/bar-helpers/internal/models"
)

func testConfig() *models.Config {
	return &models.Config{
		General: models.GeneralConfig{
			Height:         20,
			PowerIcon:      "P",
			WorkspaceIcons: "abc",
		},
		Placeholders: models.Placeholders{
			General:      "_",
			Power:        "<p>",
			Workspace:    "|",
			Clock:        "~",
			Volume:       "=",
			Notification: "!",
		},
		Colors: models.Palette{
			Background:          "bg",
			BackgroundSecondary: "bs",
			Foreground:          "fg",
			ForegroundSecondary: "fs",
			Highlight:           "hl",
		},
		Exec: models.Commands{
			Power:           "pow",
			Volume:          "vol",
			SwitchWorkspace: "ws",
			Notification:    "not",
		},
	}
}

func TestClassifySlot(t *testing.T) {
	tests := []struct {
		name string
		ws   *models.Workspace
		want SlotState
	}{
		{"none", nil, SlotEmpty},
		{"visible", &models.Workspace{Visible: true}, SlotActive},
		{"visible and urgent", &models.Workspace{Visible: true, Urgent: true}, SlotActive},
		{"urgent", &models.Workspace{Urgent: true}, SlotUrgent},
		{"hidden", &models.Workspace{}, SlotInactive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClassifySlot(tt.ws); got != tt.want {
				t.Errorf("ClassifySlot() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSlotIndex(t *testing.T) {
	tests := []struct {
		num, screens, want int
	}{
		{1, 1, 0},
		{3, 1, 2},
		{1, 2, 0},
		{2, 2, 0},
		{3, 2, 1},
		{6, 3, 1},
		{5, 0, 4},
	}
	for _, tt := range tests {
		if got := SlotIndex(tt.num, tt.screens); got != tt.want {
			t.Errorf("SlotIndex(%d, %d) = %d, want %d", tt.num, tt.screens, got, tt.want)
		}
	}
}

func TestWorkspaces(t *testing.T) {
	r := NewRenderer("eDP-1", testConfig())

	live := []models.Workspace{
		{Num: 1, Output: "eDP-1", Visible: true},
		{Num: 2, Output: "DP-1", Visible: true},
		{Num: 3, Output: "eDP-1", Urgent: true},
		{Num: -1, Name: "scratch", Output: "eDP-1"},
	}

	got := r.Workspaces(live, 2)
	want := "%{Bbs}%{Ffg}%{A:ws 1:}|a|%{A}" +
		"%{Bbg}%{Fhl}%{A:ws 2:}|b|%{A}" +
		"%{Bbg}%{Fbs}%{A:ws 3:}|c|%{A}" +
		Reset
	if got != want {
		t.Errorf("Workspaces() =\n%q\nwant\n%q", got, want)
	}
}

func TestWorkspacesSlotCount(t *testing.T) {
	for _, icons := range []string{"", "1", "12345", "一二三四"} {
		cfg := testConfig()
		cfg.General.WorkspaceIcons = icons
		r := NewRenderer("eDP-1", cfg)

		got := r.Workspaces([]models.Workspace{{Num: 1, Output: "eDP-1", Visible: true}}, 1)
		n := len([]rune(icons))
		if c := strings.Count(got, "%{A:ws "); c != n {
			t.Errorf("icons %q: %d slots, want %d", icons, c, n)
		}
		if c := strings.Count(got, "|"); c != 2*n {
			t.Errorf("icons %q: %d paddings, want %d", icons, c, 2*n)
		}
		if !strings.HasSuffix(got, Reset) {
			t.Errorf("icons %q: missing reset in %q", icons, got)
		}
	}
}

func TestWorkspacesInactive(t *testing.T) {
	r := NewRenderer("eDP-1", testConfig())
	got := r.Workspaces([]models.Workspace{{Num: 2, Output: "eDP-1"}}, 1)
	if !strings.Contains(got, "%{Bbg}%{Ffs}%{A:ws 2:}|b|%{A}") {
		t.Errorf("Workspaces() = %q, want inactive slot 2", got)
	}
}

func TestClock(t *testing.T) {
	r := NewRenderer("eDP-1", testConfig())

	tests := []struct {
		at   time.Time
		want string
	}{
		{time.Date(2024, 1, 2, 9, 5, 59, 0, time.Local), "~09:05~"},
		{time.Date(2024, 1, 2, 21, 30, 0, 0, time.Local), "~21:30~"},
		{time.Date(2024, 1, 2, 0, 0, 0, 0, time.Local), "~00:00~"},
	}
	for _, tt := range tests {
		got := r.Clock(tt.at)
		want := "%{Bbs}%{Ffg}" + tt.want + Reset
		if got != want {
			t.Errorf("Clock(%v) = %q, want %q", tt.at, got, want)
		}
	}

	if got := r.Clock(time.Time{}); got != "" {
		t.Errorf("Clock(zero) = %q, want empty", got)
	}
}

func TestParseVolume(t *testing.T) {
	tests := []struct {
		name   string
		out    string
		want   string
		wantOK bool
	}{
		{
			name:   "amixer output",
			out:    "Simple mixer control 'Master',0\n  Front Left: Playback 1 [on]\n  Simple mixer ... [45%] [on]\n  Front Right: Playback 29491 [45%] [on]",
			want:   " 45",
			wantOK: true,
		},
		{"full volume", "Mono: Playback 65536 [100%] [on]", "100", true},
		{"single digit", "[5%]", "  5", true},
		{"no percent", "Playback [on]", "", false},
		{"no bracket", "Playback 45%", "", false},
		{"empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParseVolume(tt.out)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ParseVolume() = %q, %v; want %q, %v", got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestVolume(t *testing.T) {
	r := NewRenderer("eDP-1", testConfig())

	got := r.Volume("Front Left: Playback 1 [45%] [on]")
	want := "%{Bbs}%{Ffg}%{A:vol eDP-1 20 &:}=  45=%{A}" + Reset
	if got != want {
		t.Errorf("Volume() = %q, want %q", got, want)
	}

	if got := r.Volume("garbage"); got != "" {
		t.Errorf("Volume(garbage) = %q, want empty", got)
	}
}

func TestQueryVolumeMissingTool(t *testing.T) {
	if _, err := QueryVolume(context.Background(), "/nonexistent/amixer"); err == nil {
		t.Error("QueryVolume() error = nil, want error")
	}
}

func TestPower(t *testing.T) {
	r := NewRenderer("DP-1", testConfig())
	want := "%{Bbs}%{Ffg}%{A:pow DP-1 20 &:}<p>P<p>%{A}" + Reset
	if got := r.Power(); got != want {
		t.Errorf("Power() = %q, want %q", got, want)
	}
}

func TestPowerQuotesScreenName(t *testing.T) {
	r := NewRenderer("weird screen", testConfig())
	if got := r.Power(); !strings.Contains(got, "%{A:pow 'weird screen' 20 &:}") {
		t.Errorf("Power() = %q, want quoted screen name", got)
	}
}

func TestNotification(t *testing.T) {
	r := NewRenderer("eDP-1", testConfig())

	tests := []struct {
		name string
		resp string
		want string
	}{
		{"json object", "{}", "%{Bhl}%{Fbg}%{A:not eDP-1 20 &:}!!%{A}" + Reset},
		{"empty", "", ""},
		{"other text", "none", ""},
		{"leading space", " {}", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Notification(tt.resp); got != tt.want {
				t.Errorf("Notification(%q) = %q, want %q", tt.resp, got, tt.want)
			}
		})
	}

	cfg := testConfig()
	cfg.Exec.Notification = ""
	if got := NewRenderer("eDP-1", cfg).Notification("{}"); got != "" {
		t.Errorf("Notification() without viewer command = %q, want empty", got)
	}
}

func TestProbeNotifications(t *testing.T) {
	socket := filepath.Join(t.TempDir(), "not.sock")
	ln, err := net.Listen("unix", socket)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		buf := make([]byte, 4)
		if _, err := conn.Read(buf); err != nil || string(buf) != "show" {
			return
		}
		conn.Write([]byte(`{"summary":"hi"}`))
	}()

	resp, err := ProbeNotifications(context.Background(), socket)
	if err != nil {
		t.Fatalf("ProbeNotifications() error = %v", err)
	}
	if !HasNotification(resp) {
		t.Errorf("ProbeNotifications() = %q, want a notification", resp)
	}
}

func TestProbeNotificationsReplyWithoutRequest(t *testing.T) {
	socket := filepath.Join(t.TempDir(), "not.sock")
	ln, err := net.Listen("unix", socket)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer ln.Close()

	// Answers and hangs up without reading "show".
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		conn.Write([]byte(`{"summary":"hi"}`))
		conn.Close()
	}()

	resp, err := ProbeNotifications(context.Background(), socket)
	if err != nil {
		t.Fatalf("ProbeNotifications() error = %v", err)
	}
	if resp != `{"summary":"hi"}` {
		t.Errorf("ProbeNotifications() = %q, want the daemon reply", resp)
	}
}

func TestProbeNotificationsNoDaemon(t *testing.T) {
	_, err := ProbeNotifications(context.Background(), filepath.Join(t.TempDir(), "missing.sock"))
	if err == nil {
		t.Error("ProbeNotifications() error = nil, want error")
	}
}
