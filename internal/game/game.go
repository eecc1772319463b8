package game

import (
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"nusantara/assets"
	resources "nusantara/internal/assets"
	"nusantara/internal/audio"
	"nusantara/internal/camera"
	"nusantara/internal/collectibles"
	"nusantara/internal/components"
	"nusantara/internal/config"
	"nusantara/internal/engine"
	"nusantara/internal/hud"
	"nusantara/internal/interaction"
	"nusantara/internal/kingdoms"
	"nusantara/internal/player"
	"nusantara/internal/world"
	"nusantara/internal/zones"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const noticeDuration = 2000 // ms

// Input is one frame of player intent.
type Input struct {
	Move        player.Input
	Look        rl.Vector2 // pointer delta
	Interact    bool       // activates hovered doors
	Click       bool       // activates any hovered target
	ToggleLock  bool
	ToggleDebug bool
	Close       bool
}

type Game struct {
	Catalog    *kingdoms.Catalog
	Store      *collectibles.Store
	World      *world.World
	Controller *player.Controller
	Camera     *camera.OrbitCamera
	Detector   *interaction.Detector
	Zones      *zones.Manager
	Overlay    *hud.Overlay
	Renderer   *world.Renderer
	DebugMode  bool

	cfg   config.Config
	log   logrus.FieldLogger
	audio *audio.Player

	// Debug timing (ms)
	updateMs float64
	drawMs   float64
}

// New loads content and enters cfg.StartZone. It does not need a window.
func New(cfg config.Config, sound *audio.Player, log logrus.FieldLogger) (*Game, error) {
	catalog, err := kingdoms.Load(assets.FS, assets.KingdomsFile)
	if err != nil {
		return nil, err
	}
	store := collectibles.NewStore()
	if err := catalog.Seed(store); err != nil {
		return nil, fmt.Errorf("seed collectibles: %w", err)
	}
	provider, err := world.NewFileProvider(assets.FS, assets.ZonesDir, catalog, log.WithField("component", "zones"))
	if err != nil {
		return nil, err
	}
	if err := provider.ValidateAll(); err != nil {
		return nil, fmt.Errorf("zone layouts: %w", err)
	}

	controller := player.NewController(rl.Vector3{})
	overlay := hud.NewOverlay(log.WithField("component", "hud"))
	g := &Game{
		Catalog:    catalog,
		Store:      store,
		World:      world.New(player.NewAvatar(controller), log.WithField("component", "world")),
		Controller: controller,
		Camera:     camera.New(controller.Position),
		Detector:   interaction.NewDetector(overlay, log.WithField("component", "interaction")),
		Overlay:    overlay,
		Renderer:   world.NewRenderer(),
		DebugMode:  cfg.Debug,
		cfg:        cfg,
		log:        log,
		audio:      sound,
	}
	g.Camera.LookSpeed = cfg.MouseSensitivity
	g.Zones = zones.NewManager(zones.Deps{
		World:    g.World,
		Provider: provider,
		Detector: g.Detector,
		Store:    store,
		Catalog:  catalog,
		Bridge:   overlay,
		Player:   controller,
	}, log.WithField("component", "zones"))
	g.wire()

	if err := g.Zones.Start(cfg.StartZone); err != nil {
		return nil, err
	}
	g.Camera.Snap(controller.Position)
	return g, nil
}

func (g *Game) wire() {
	g.Store.OnFound.AddListener(func(r collectibles.Record) {
		g.Overlay.Notify(fmt.Sprintf("✨ %s %s ditemukan!", r.Icon, r.Name), noticeDuration)
		g.Zones.RefreshHUD()
		g.audio.Play(audio.CueCollect)
	})
	g.Overlay.QuizRequested.AddListener(func(string) {
		g.Zones.RequestQuiz()
	})
	g.Overlay.AnswerSelected.AddListener(func(i int) {
		g.Zones.AnswerQuiz(i)
	})
	g.Zones.QuizAnswered.AddListener(func(r kingdoms.AnswerResult) {
		if r.Correct {
			g.audio.Play(audio.CueCorrect)
		} else {
			g.audio.Play(audio.CueWrong)
		}
	})
	g.Zones.Entered.AddListener(func(string) {
		g.Camera.Snap(g.Controller.Position)
	})
}

// Step advances one frame: player, camera, picking, ambient animation,
// then the zone lifecycle.
func (g *Game) Step(deltaTime float32, input Input) {
	if input.ToggleDebug {
		g.DebugMode = !g.DebugMode
	}
	if input.Close {
		g.Overlay.Close()
	}
	if input.ToggleLock {
		locked := g.Controller.ToggleLock()
		g.log.WithField("locked", locked).Debug("Facing lock toggled")
	}

	modal := g.Overlay.ModalOpen()
	move := input.Move
	if modal {
		move = player.Input{}
	} else {
		g.Camera.Orbit(input.Look.X, input.Look.Y)
	}

	g.Controller.Update(move, g.Camera.Forward(), g.World.Obstacles())
	g.Camera.Update(g.Controller.Position)

	if !modal {
		// Picking runs against the old zone until teardown; only Idle
		// accepts activation.
		g.Detector.Update(g.Camera.Position, g.Camera.Forward())
		if target, act := g.Detector.HoveredInteractable(); act != nil && g.Zones.State() == zones.Idle {
			switch {
			case input.Click:
				g.activate(target, act, false)
			case input.Interact:
				g.activate(target, act, true)
			}
		}
	}

	g.World.Update(deltaTime)
	g.Overlay.Update(deltaTime)
	g.Zones.Tick(deltaTime)

	if g.DebugMode {
		g.Overlay.DebugLines = g.debugLines()
	}
	g.Overlay.Debug = g.DebugMode
}

// activate runs the hovered target's action. doorsOnly is set for the
// interact key, which never opens panels or picks things up.
func (g *Game) activate(target *engine.GameObject, in *components.Interactable, doorsOnly bool) {
	switch in.Role {
	case components.RoleDoor:
		if g.Zones.Enter(in.Destination) {
			g.audio.Play(audio.CueDoor)
		}
	case components.RoleArtifact:
		if doorsOnly {
			return
		}
		g.Overlay.ShowArtifactPanel(in.Title, in.Description, in.ImagePath)
	case components.RoleCollectible:
		if doorsOnly {
			return
		}
		g.collect(target, in)
	}
}

func (g *Game) collect(target *engine.GameObject, in *components.Interactable) {
	if g.Store.IsFound(in.CollectibleID) {
		return
	}
	if _, err := g.Store.MarkFound(in.CollectibleID); err != nil {
		g.log.WithError(err).WithField("collectible", in.CollectibleID).Warn("Collectible not in store")
		return
	}
	g.Detector.Forget(target)
	components.Collect(target)
}

func (g *Game) debugLines() []string {
	p := g.Controller.Position
	stats := g.Store.Stats()
	hovered := "-"
	if e := g.Detector.Hovered(); e != nil {
		hovered = e.Name
	}
	return []string{
		fmt.Sprintf("Zone: %s (%s)", g.Zones.CurrentZone(), g.Zones.State()),
		fmt.Sprintf("Pos: (%.2f, %.2f, %.2f) facing %.0f°", p.X, p.Y, p.Z, g.Controller.Facing*rl.Rad2deg),
		fmt.Sprintf("Lock: %v  Hover: %s", g.Controller.LockFacing, hovered),
		fmt.Sprintf("Objects: %d  Found: %d/%d", len(g.World.Scene.GameObjects), stats.Found, stats.Total),
		fmt.Sprintf("Update: %.2f ms  Draw: %.2f ms  FPS: %d", g.updateMs, g.drawMs, rl.GetFPS()),
	}
}

// Run opens the window and drives the frame loop until it is closed.
func (g *Game) Run() {
	rl.SetConfigFlags(rl.FlagWindowHighdpi | rl.FlagMsaa4xHint)
	rl.InitWindow(g.cfg.Width, g.cfg.Height, "Nusantara - Jelajah Kerajaan")
	defer rl.CloseWindow()

	rl.SetTargetFPS(g.cfg.TargetFPS)
	rl.SetExitKey(0)
	hud.InitStyle()
	defer resources.Unload()
	defer g.Renderer.Release(g.World)

	cursorFree := false
	rl.DisableCursor()

	for !rl.WindowShouldClose() {
		if modal := g.Overlay.ModalOpen(); modal != cursorFree {
			cursorFree = modal
			if modal {
				rl.EnableCursor()
			} else {
				rl.DisableCursor()
			}
		}

		start := time.Now()
		g.Step(rl.GetFrameTime(), pollInput())
		g.updateMs = float64(time.Since(start).Microseconds()) / 1000.0

		g.Draw()
	}
}

func (g *Game) Draw() {
	start := time.Now()
	rl.BeginDrawing()
	g.Renderer.Draw(g.World, g.Camera.GetRaylibCamera())
	g.Overlay.Draw()
	rl.EndDrawing()
	g.drawMs = float64(time.Since(start).Microseconds()) / 1000.0
}

func pollInput() Input {
	return Input{
		Move: player.Input{
			Forward:  rl.IsKeyDown(rl.KeyW) || rl.IsKeyDown(rl.KeyUp),
			Backward: rl.IsKeyDown(rl.KeyS) || rl.IsKeyDown(rl.KeyDown),
			Left:     rl.IsKeyDown(rl.KeyA) || rl.IsKeyDown(rl.KeyLeft),
			Right:    rl.IsKeyDown(rl.KeyD) || rl.IsKeyDown(rl.KeyRight),
		},
		Look:        rl.GetMouseDelta(),
		Interact:    rl.IsKeyPressed(rl.KeyE) || rl.IsKeyPressed(rl.KeySpace),
		Click:       rl.IsMouseButtonPressed(rl.MouseLeftButton),
		ToggleLock:  rl.IsKeyPressed(rl.KeyLeftShift) || rl.IsKeyPressed(rl.KeyRightShift),
		ToggleDebug: rl.IsKeyPressed(rl.KeyF1),
		Close:       rl.IsKeyPressed(rl.KeyEscape),
	}
}
