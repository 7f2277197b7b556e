package tui

import (
	"os"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/joshpbradley/missile-command/internal/config"
	"github.com/joshpbradley/missile-command/internal/core"
)

type fakeGame struct {
	resets  int
	resizes []core.Vec
	frames  []core.InputFrame
	state   core.GameState
	events  []core.Event
}

func (f *fakeGame) ID() string { return "fake" }
func (f *fakeGame) Title() string { return "Fake" }
func (f *fakeGame) Reset(core.RuntimeConfig) { f.resets++ }
func (f *fakeGame) State() core.GameState { return f.state }

func (f *fakeGame) Resize(w, h int) {
	f.resizes = append(f.resizes, core.V(w, h))
}

func (f *fakeGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "FAKE", core.ColorRed)
}

func (f *fakeGame) Step(in core.InputFrame) core.StepResult {
	f.frames = append(f.frames, in.Clone())
	ev := f.events
	f.events = nil
	return core.StepResult{State: f.state, Events: ev}
}

type recordingSound struct {
	played []core.EventKind
}

func (r *recordingSound) Play(ev core.Event) {
	r.played = append(r.played, ev.Kind)
}

func newTestModel(t *testing.T) (Model, *fakeGame) {
	t.Helper()
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 20, ScreenH: 5, TickRate: 60, Seed: 1}, Options{})
	m.Init()
	return m, g
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func leftPress(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestInitResetsGame(t *testing.T) {
	_, g := newTestModel(t)
	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
}

func TestClicksReleasedOnePerTick(t *testing.T) {
	m, g := newTestModel(t)

	m, _ = update(t, m, leftPress(3, 4))
	m, _ = update(t, m, leftPress(5, 6))
	m, _ = update(t, m, leftPress(7, 8))

	for range 4 {
		m, _ = update(t, m, TickMsg{})
	}

	want := []core.Vec{{X: 3, Y: 4}, {X: 5, Y: 6}, {X: 7, Y: 8}}
	if len(g.frames) != 4 {
		t.Fatalf("steps = %d, expected 4", len(g.frames))
	}
	for i, w := range want {
		c, ok := g.frames[i].Click()
		if !ok || c != w {
			t.Errorf("tick %d click = %v (%v), expected %v", i, c, ok, w)
		}
	}
	if _, ok := g.frames[3].Click(); ok {
		t.Error("queue should be empty on the fourth tick")
	}
}

func TestMouseIgnoresOtherButtons(t *testing.T) {
	m, g := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionPress, Button: tea.MouseButtonRight})
	m, _ = update(t, m, tea.MouseMsg{X: 1, Y: 1, Action: tea.MouseActionMotion})
	_, _ = update(t, m, TickMsg{})

	if _, ok := g.frames[0].Click(); ok {
		t.Error("only left presses should launch")
	}
}

func TestClickQueueIsBounded(t *testing.T) {
	m, _ := newTestModel(t)
	for i := range maxQueuedClicks + 5 {
		m, _ = update(t, m, leftPress(i, i))
	}
	if len(m.clicks) != maxQueuedClicks {
		t.Errorf("queued %d clicks, expected %d", len(m.clicks), maxQueuedClicks)
	}
}

func TestKeysMapToActions(t *testing.T) {
	tests := []struct {
		name     string
		msg      tea.KeyMsg
		gameOver bool
		want     core.Action
	}{
		{"pause", runeKey('p'), false, core.ActionPause},
		{"escape pauses", tea.KeyMsg{Type: tea.KeyEsc}, false, core.ActionPause},
		{"enter confirms", tea.KeyMsg{Type: tea.KeyEnter}, false, core.ActionConfirm},
		{"restart after game over", runeKey('r'), true, core.ActionRestart},
		{"restart mid game", runeKey('r'), false, core.ActionNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, g := newTestModel(t)
			m.gameState.GameOver = tt.gameOver
			m, _ = update(t, m, tt.msg)
			_, _ = update(t, m, TickMsg{})

			f := g.frames[0]
			for _, a := range []core.Action{core.ActionPause, core.ActionConfirm, core.ActionRestart} {
				if got := f.Has(a); got != (a == tt.want) {
					t.Errorf("action %v set = %v", a, got)
				}
			}
		})
	}
}

func TestInputClearedAfterTick(t *testing.T) {
	m, g := newTestModel(t)
	m, _ = update(t, m, runeKey('p'))
	m, _ = update(t, m, TickMsg{})
	_, _ = update(t, m, TickMsg{})

	if g.frames[1].Has(core.ActionPause) {
		t.Error("pause carried over to the next tick")
	}
}

func TestQuitKey(t *testing.T) {
	m, _ := newTestModel(t)
	m, cmd := update(t, m, runeKey('q'))
	if !m.quitting || cmd == nil {
		t.Fatal("q should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	m, g := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})

	if g.resets != 1 {
		t.Error("resize must not reset the game")
	}
	if len(g.resizes) != 1 || g.resizes[0] != core.V(120, 50) {
		t.Errorf("resizes = %v", g.resizes)
	}
	if m.screen.Width() != 120 || m.screen.Height() != 50 {
		t.Errorf("screen = %dx%d", m.screen.Width(), m.screen.Height())
	}
}

func TestEventsReachSound(t *testing.T) {
	g := &fakeGame{}
	snd := &recordingSound{}
	m := NewModel(g, core.DefaultConfig(), Options{Sound: snd})
	m.Init()

	g.events = []core.Event{
		{Kind: core.EventLaunch},
		{Kind: core.EventInterception, Value: 25},
		{Kind: core.EventGameOver, Value: 900},
	}
	_, _ = update(t, m, TickMsg{})

	if len(snd.played) != 3 || snd.played[1] != core.EventInterception {
		t.Errorf("played = %v", snd.played)
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	g := &fakeGame{}
	m := NewModel(g, core.RuntimeConfig{ScreenW: 10, ScreenH: 2, Seed: 1}, Options{ScreenshotDir: dir})

	path, err := m.saveScreenshot()
	if err != nil {
		t.Fatalf("saveScreenshot: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read screenshot: %v", err)
	}
	if !strings.HasPrefix(string(data), "FAKE") {
		t.Errorf("screenshot = %q", data)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "ab", core.ColorDefault)
	s.DrawText(2, 0, "cd", core.ColorRed)
	s.SetCell(0, 1, 'x', core.ColorGreen)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, expected 2", len(lines))
	}
	if !strings.HasPrefix(lines[0], "ab") || !strings.Contains(lines[0], "cd") {
		t.Errorf("row 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "x") {
		t.Errorf("row 1 = %q", lines[1])
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("a"); got != "a" {
		t.Errorf("unknown color rendered %q", got)
	}
}

func TestTitleNavigation(t *testing.T) {
	m := NewTitleModel(core.DefaultConfig())

	step := func(msg tea.Msg) {
		next, _ := m.Update(msg)
		m = next.(TitleModel)
	}
	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyDown})
	if m.cursor != 2 {
		t.Errorf("cursor = %d, expected it clamped at 2", m.cursor)
	}
	step(tea.KeyMsg{Type: tea.KeyUp})
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Selected() != ChoiceControls {
		t.Errorf("selected %v, expected Controls", m.Selected())
	}
}

func TestTitleQuit(t *testing.T) {
	m := NewTitleModel(core.DefaultConfig())
	next, cmd := m.Update(runeKey('q'))
	if next.(TitleModel).Selected() != ChoiceQuit || cmd == nil {
		t.Error("q should quit from the title screen")
	}
}

func TestControlRowsShowScoring(t *testing.T) {
	cfg := config.DefaultMissileConfig()
	cfg.Scoring.Interception = 40

	var found bool
	for _, row := range ControlRows(cfg) {
		if row[0] == "Interception" && row[1] == "40 points" {
			found = true
		}
	}
	if !found {
		t.Error("controls should list the configured interception score")
	}
}

func TestControlsTableEffectWidth(t *testing.T) {
	cfg := config.DefaultMissileConfig()
	tests := []struct {
		width, want int
	}{
		{30, 20},
		{60, 36},
		{200, 44},
	}
	for _, tt := range tests {
		cols := NewControlsTable(cfg, tt.width, 30).Columns()
		if got := cols[1].Width; got != tt.want {
			t.Errorf("width %d: effect column %d, expected %d", tt.width, got, tt.want)
		}
	}
}
