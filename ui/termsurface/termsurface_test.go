package termsurface

import (
	"testing"

	"snake-canvas/game"
	"snake-canvas/game/types"
	"snake-canvas/input"
	"snake-canvas/storage"
	"snake-canvas/ui"

	"github.com/gdamore/tcell/v2"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("Failed to init screen: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(40, 16)
	return screen
}

// row returns the characters shown on one screen row
func row(screen tcell.SimulationScreen, y int) string {
	w, _ := screen.Size()
	out := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		mainc, _, _, _ := screen.GetContent(x, y)
		if mainc == 0 {
			mainc = ' '
		}
		out = append(out, mainc)
	}
	return string(out)
}

func cellBackground(screen tcell.SimulationScreen, x, y int) tcell.Color {
	_, _, style, _ := screen.GetContent(x, y)
	_, bg, _ := style.Decompose()
	return bg
}

func TestSurfaceFootprint(t *testing.T) {
	s := NewSurface(newScreen(t), 320, 280, 20)
	cols, rows := s.Cells()
	if cols != 32 || rows != 14 {
		t.Errorf("Expected 32x14 cells, got %dx%d", cols, rows)
	}
	if w, h := s.Size(); w != 320 || h != 280 {
		t.Errorf("Expected canvas 320x280, got %dx%d", w, h)
	}
}

func TestFillRectCoversTwoColumnsPerCell(t *testing.T) {
	screen := newScreen(t)
	s := NewSurface(screen, 320, 280, 20)

	s.ClearRect(0, 0, 320, 280, ui.ColorBackground)
	// Grid cell (3,2) inset by one pixel
	s.FillRect(61, 41, 18, 18, ui.ColorFood)
	screen.Show()

	food := toColor(ui.ColorFood)
	back := toColor(ui.ColorBackground)
	for _, x := range []int{6, 7} {
		if got := cellBackground(screen, x, 2); got != food {
			t.Errorf("Expected food at column %d, got %v", x, got)
		}
	}
	for _, x := range []int{5, 8} {
		if got := cellBackground(screen, x, 2); got != back {
			t.Errorf("Expected background at column %d, got %v", x, got)
		}
	}
}

func TestFillRectClipsToCanvas(t *testing.T) {
	screen := newScreen(t)
	s := NewSurface(screen, 320, 280, 20)

	s.FillRect(300, 260, 100, 100, ui.ColorHead)
	s.FillRect(0, 0, 0, 10, ui.ColorHead)
	screen.Show()

	if got := cellBackground(screen, 31, 13); got != toColor(ui.ColorHead) {
		t.Errorf("Expected last cell filled, got %v", got)
	}
	if got := cellBackground(screen, 32, 13); got == toColor(ui.ColorHead) {
		t.Error("Expected fill clipped at the canvas edge")
	}
}

func TestTextAlignment(t *testing.T) {
	screen := newScreen(t)
	s := NewSurface(screen, 320, 280, 20)

	s.Text("ab", 20, 20, 20, ui.AlignLeft, ui.ColorText)
	s.Text("SNAKE", 160, 60, 30, ui.AlignCenter, ui.ColorText)
	s.Text("xy", 320, 100, 16, ui.AlignRight, ui.ColorText)
	screen.Show()

	if got := row(screen, 1)[2:4]; got != "ab" {
		t.Errorf("Expected left text at column 2, got %q", got)
	}
	if got := row(screen, 3)[14:19]; got != "SNAKE" {
		t.Errorf("Expected centered text at columns 14-18, got %q", got)
	}
	if got := row(screen, 5)[30:32]; got != "xy" {
		t.Errorf("Expected right text ending at column 31, got %q", got)
	}
}

func TestTextKeepsBackground(t *testing.T) {
	screen := newScreen(t)
	s := NewSurface(screen, 320, 280, 20)

	s.ClearRect(0, 0, 320, 280, ui.ColorBackground)
	s.Text("7", 20, 20, 20, ui.AlignLeft, ui.ColorText)
	screen.Show()

	if got := cellBackground(screen, 2, 1); got != toColor(ui.ColorBackground) {
		t.Errorf("Expected text over background color, got %v", got)
	}
}

func TestDecodeKey(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want input.Intent
	}{
		{tcell.KeyLeft, 0, input.TurnLeft},
		{tcell.KeyUp, 0, input.TurnUp},
		{tcell.KeyRight, 0, input.TurnRight},
		{tcell.KeyDown, 0, input.TurnDown},
		{tcell.KeyRune, 'a', input.TurnLeft},
		{tcell.KeyRune, 'W', input.TurnUp},
		{tcell.KeyRune, 'd', input.TurnRight},
		{tcell.KeyRune, 's', input.TurnDown},
		{tcell.KeyRune, ' ', input.Toggle},
		{tcell.KeyRune, 'q', input.Quit},
		{tcell.KeyEscape, 0, input.Quit},
		{tcell.KeyCtrlC, 0, input.Quit},
		{tcell.KeyRune, 'x', input.None},
		{tcell.KeyEnter, 0, input.None},
	}
	for _, tt := range tests {
		if got := decodeKey(tt.key, tt.r); got != tt.want {
			t.Errorf("decodeKey(%v, %q): expected %v, got %v", tt.key, tt.r, tt.want, got)
		}
	}
}

type scriptedSource struct {
	batches [][]input.Intent
}

func (s *scriptedSource) Poll() []input.Intent {
	if len(s.batches) == 0 {
		return nil
	}
	out := s.batches[0]
	s.batches = s.batches[1:]
	return out
}

func TestAppFrame(t *testing.T) {
	screen := newScreen(t)
	world := game.NewWorld(types.DefaultGrid, storage.NewRecordStore(storage.NewMemoryStore()), 11)
	source := &scriptedSource{batches: [][]input.Intent{
		{input.Toggle},
		{input.TurnDown, input.Quit, input.Toggle},
	}}
	app := NewApp(screen, world, ui.NewRenderer(ui.DefaultCellSize), source)

	app.Render()
	if got := row(screen, 3)[11:21]; got != "SNAKE GAME" {
		t.Errorf("Expected menu title, got %q", got)
	}

	if !app.Input() {
		t.Fatal("Expected to keep running")
	}
	app.Update()
	app.Render()
	if world.Steps() != 1 {
		t.Errorf("Expected one step, got %d", world.Steps())
	}
	// The food may be drawn over the score
	if world.Food().Pos != (types.Point{X: 1, Y: 1}) {
		if got := row(screen, 1)[2:3]; got != "0" {
			t.Errorf("Expected score HUD, got %q", got)
		}
	}

	if app.Input() {
		t.Error("Expected quit to stop the loop")
	}
	if world.State().String() != "playing" {
		t.Errorf("Expected intents after quit to be dropped, got %v", world.State())
	}
}
