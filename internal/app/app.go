//go:build ebiten

package app

import (
	"cgol/internal/render"
	"cgol/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenWindow resizes the ebiten window.
type EbitenWindow struct{}

// SetSize implements Window.
func (EbitenWindow) SetSize(w, h int) { ebiten.SetWindowSize(w, h) }

var commandKeys = []struct {
	key ebiten.Key
	cmd Command
}{
	{ebiten.KeyQ, CommandQuit},
	{ebiten.KeyEscape, CommandQuit},
	{ebiten.KeySpace, CommandTogglePlay},
	{ebiten.KeyN, CommandStepOnce},
	{ebiten.KeyC, CommandClear},
	{ebiten.KeyR, CommandRandomize},
}

// Game adapts a Session to the ebiten.Game interface.
type Game struct {
	session *Session
	palette render.Palette
	hud     *ui.HUD
	overlay *ui.Overlay

	outsideW, outsideH int
	handledW, handledH int
	events             []Event
}

// New constructs a Game for the provided session.
func New(session *Session, cfg *Config) *Game {
	g := session.Geometry()
	return &Game{
		session:  session,
		palette:  render.DefaultPalette(),
		hud:      ui.NewHUD(session, cfg.UI.ShowHUD),
		overlay:  ui.NewOverlay(session, cfg.UI.ShowNeighbors),
		handledW: g.RealWidth,
		handledH: g.RealHeight,
	}
}

// Update drains this frame's input into the session, then advances it.
func (g *Game) Update() error {
	g.events = g.poll(g.events[:0])
	for _, ev := range g.events {
		if err := g.session.Handle(ev); err != nil {
			return err
		}
	}
	g.session.Advance()
	if g.session.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) poll(events []Event) []Event {
	if ebiten.IsWindowBeingClosed() {
		events = append(events, QuitEvent{})
	}
	if g.outsideW > 0 && g.outsideH > 0 && (g.outsideW != g.handledW || g.outsideH != g.handledH) {
		g.handledW, g.handledH = g.outsideW, g.outsideH
		events = append(events, ResizeEvent{Width: g.outsideW, Height: g.outsideH})
	}
	for _, ck := range commandKeys {
		if inpututil.IsKeyJustPressed(ck.key) {
			events = append(events, CommandEvent{Command: ck.cmd})
		}
	}

	g.overlay.Update()
	if g.hud.Update() {
		return events
	}
	x, y := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, MouseDownEvent{Button: MouseLeft, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		events = append(events, MouseDownEvent{Button: MouseRight, X: x, Y: y})
	}
	return events
}

// Draw renders the current session state.
func (g *Game) Draw(screen *ebiten.Image) {
	render.Draw(render.NewScreen(screen), g.session.Frame(), g.palette)
	g.overlay.Draw(screen)
	g.hud.Draw(screen)
}

// Layout keeps one logical pixel per window pixel and records the size so
// Update can turn changes into resize events.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.outsideW, g.outsideH = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}
