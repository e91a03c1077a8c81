package gui

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/michael-hamilton/physbox/internal/arena"
	"github.com/michael-hamilton/physbox/internal/audio"
	"github.com/michael-hamilton/physbox/internal/config"
	"github.com/michael-hamilton/physbox/internal/sandbox"
	"github.com/michael-hamilton/physbox/internal/scene"
)

// Theme Colors (Monochrome Hyper-Minimalist)
var (
	ColBg      = rl.NewColor(10, 10, 10, 255)
	ColSelect  = rl.NewColor(255, 255, 255, 255)
	ColText    = rl.NewColor(140, 140, 140, 255)
	ColTextDim = rl.NewColor(60, 60, 60, 255)
	ColAccent  = rl.NewColor(180, 180, 180, 255)
)

type App struct {
	Cfg     *config.Config
	Sandbox *arena.Sandbox
	Scene   *scene.Scene
	Readout *sandbox.Readout
	Audio   *audio.Sonifier
	Font    rl.Font

	Paused bool
	quit   bool

	CamPosTarget rl.Vector3
	CamTgtTarget rl.Vector3
}

func initWindow(cfg *config.Config) {
	rl.InitWindow(int32(cfg.Window.Width), int32(cfg.Window.Height), "physbox")
	rl.SetTargetFPS(int32(cfg.Window.FPS))
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

// NewApp wires the sandbox around a raylib scene. The window must already be
// open; font and mesh setup need a GL context.
func NewApp(cfg *config.Config) *App {
	scn := scene.New()
	sb := arena.New(cfg, scn)

	a := &App{
		Cfg:          cfg,
		Sandbox:      sb,
		Scene:        scn,
		Readout:      sandbox.NewReadout(),
		Font:         loadFont(),
		CamPosTarget: scn.Camera.Position,
		CamTgtTarget: scn.Camera.Target,
	}

	a.Readout.AddParameter("fps", "FPS")
	a.Readout.AddParameter("objects", "OBJECTS")
	a.Readout.AddParameter("triangles", "TRIANGLES")
	a.Readout.AddParameter("kinetic", "KINETIC")

	sb.Loop.OnFrame(a.refreshReadout)

	if cfg.Audio {
		a.Audio = audio.NewSonifier()
		if err := a.Audio.Start(); err != nil {
			// No sound device is not fatal; the HUD shows AUDIO [OFF].
			a.Audio = nil
		}
	}

	return a
}

// Run opens the window and blocks in the update-draw loop until quit.
func Run(cfg *config.Config) error {
	initWindow(cfg)
	defer rl.CloseWindow()

	app := NewApp(cfg)
	defer app.shutdown()

	app.RunLoop()
	return nil
}

func (a *App) RunLoop() {
	for !rl.WindowShouldClose() && !a.quit {
		a.Update()
		a.Draw()
	}
}

func (a *App) shutdown() {
	if a.Audio != nil {
		a.Audio.Stop()
	}
}

func (a *App) refreshReadout() {
	loop := a.Sandbox.Loop
	a.Readout.Update("fps", loop.FPS())
	a.Readout.Update("objects", float64(loop.Registry().Len()))
	a.Readout.Update("triangles", float64(loop.Triangles()))

	kinetic := 0.0
	for _, b := range a.Sandbox.World.Bodies() {
		if b.Static {
			continue
		}
		v := float64(b.Vel.Len())
		kinetic += 0.5 * float64(b.Mass) * v * v
	}
	a.Readout.Update("kinetic", kinetic)

	for _, impact := range a.Sandbox.World.DrainImpacts() {
		if a.Audio != nil {
			a.Audio.AddImpact(float64(impact.Speed))
		}
	}
}

func (a *App) Update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}
	if rl.IsKeyPressed(rl.KeyP) {
		a.Paused = !a.Paused
	}

	ctrl := a.Sandbox.Controller
	switch {
	case rl.IsKeyPressed(rl.KeyS):
		ctrl.HandleKey(sandbox.KeySphere)
	case rl.IsKeyPressed(rl.KeyB):
		ctrl.HandleKey(sandbox.KeyBox)
	case rl.IsKeyPressed(rl.KeyC):
		ctrl.HandleKey(sandbox.KeyCapsule)
	case rl.IsKeyPressed(rl.KeySpace):
		ctrl.HandleKey(sandbox.KeyRandom)
	case rl.IsKeyPressed(rl.KeyR):
		ctrl.HandleKey(sandbox.KeyClear)
	case rl.IsKeyPressed(rl.KeyF):
		ctrl.HandleKey(sandbox.KeyFloor)
	case rl.IsKeyPressed(rl.KeyG):
		ctrl.HandleKey(sandbox.KeyAuto)
	}

	a.updateCamera()
}

func (a *App) updateCamera() {
	dt := rl.GetFrameTime()

	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		a.CamPosTarget.X -= delta.X * 0.2
		a.CamPosTarget.Y += delta.Y * 0.2
	}

	// Zoom
	wheel := rl.GetMouseWheelMove()
	if wheel != 0 {
		zoom := float32(wheel) * 3.0
		diff := rl.Vector3Subtract(a.CamTgtTarget, a.CamPosTarget)
		dist := rl.Vector3Length(diff)
		if dist > 5.0 || zoom < 0 {
			dir := rl.Vector3Normalize(diff)
			a.CamPosTarget = rl.Vector3Add(a.CamPosTarget, rl.Vector3Scale(dir, zoom))
		}
	}

	// Apply Inertia (Lerp)
	lerp := 5.0 * dt
	if lerp > 1.0 {
		lerp = 1.0
	}
	a.Scene.Camera.Position = rl.Vector3Lerp(a.Scene.Camera.Position, a.CamPosTarget, lerp)
	a.Scene.Camera.Target = rl.Vector3Lerp(a.Scene.Camera.Target, a.CamTgtTarget, lerp)
}

// Draw runs one frame: physics tick plus 3D render happen inside the drawing
// pair because the loop renders the scene mid-tick.
func (a *App) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(ColBg)

	if a.Paused {
		a.Scene.Render()
	} else {
		a.Sandbox.Loop.Tick(rl.GetFrameTime())
	}

	a.DrawHUD()
	rl.EndDrawing()
}

func (a *App) DrawHUD() {
	a.drawText("physbox", 30, 30, 24, ColSelect)
	a.drawText(fmt.Sprintf(":: %s", a.Cfg.Preset), 150, 34, 16, ColText)

	y := 70
	for _, row := range a.Readout.Rows() {
		a.drawText(row, 30, y, 16, ColText)
		y += 20
	}

	status := "RUNNING"
	col := ColSelect
	if a.Paused {
		status = "PAUSED"
		col = ColTextDim
	}
	a.drawText(status, int(rl.GetScreenWidth())-130, 30, 16, col)

	if a.Sandbox.Loop.AutoSpawnOn() {
		a.drawText("AUTO", int(rl.GetScreenWidth())-130, 52, 16, ColAccent)
	}

	if a.Audio != nil && a.Audio.Active {
		sum := (a.Audio.Bass + a.Audio.Mid + a.Audio.High) / 3.0
		bars := int(sum * 20)
		if bars > 20 {
			bars = 20
		}
		barStr := ""
		for i := 0; i < bars; i++ {
			barStr += "|"
		}
		a.drawText(fmt.Sprintf("AUDIO [%-20s]", barStr), 30, int(rl.GetScreenHeight())-70, 14, ColAccent)
	}

	a.drawText("[S] SPHERE  [B] BOX  [C] CAPSULE  [SPACE] RANDOM  [R] CLEAR  [F] FLOOR  [G] AUTO  [P] PAUSE  [Q] QUIT",
		30, int(rl.GetScreenHeight())-40, 14, ColTextDim)
}

func (a *App) drawText(text string, x, y int, size int, color rl.Color) {
	rl.DrawTextEx(a.Font, text, rl.NewVector2(float32(x), float32(y)), float32(size), 1, color)
}
