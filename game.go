package deskscene

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Game runs the desk still life inside the ebiten loop. The scene itself is
// static; only the camera orbit and the snapshot request change per frame.
type Game struct {
	renderer *EbitenRenderer
	scene    *Scene
	camera   *Camera

	width        int
	height       int
	snapshotPath string

	isDragging   bool
	lastX, lastY int
	wantSnapshot bool
	wireframe    bool
}

func NewGame(cfg *Config) (*Game, error) {
	renderer := NewEbitenRenderer(cfg.Width, cfg.Height)
	scene, err := NewDeskScene(renderer, cfg.TextureDir)
	if err != nil {
		return nil, fmt.Errorf("build scene: %w", err)
	}
	eye := Vec3(cfg.CameraEye[0], cfg.CameraEye[1], cfg.CameraEye[2])
	target := Vec3(cfg.CameraTarget[0], cfg.CameraTarget[1], cfg.CameraTarget[2])

	return &Game{
		renderer:     renderer,
		scene:        scene,
		camera:       NewCamera(eye, target),
		width:        cfg.Width,
		height:       cfg.Height,
		snapshotPath: cfg.SnapshotPath,
	}, nil
}

func (g *Game) Update() error {
	// Mouse camera control
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.isDragging = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.isDragging {
		x, y := ebiten.CursorPosition()
		dx := float64(x-g.lastX) / 200.0
		dy := float64(y-g.lastY) / 200.0
		g.camera.Orbit(dx, dy)
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.isDragging = false
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.wantSnapshot = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyW) {
		g.wireframe = !g.wireframe
		g.renderer.SetWireframe(g.wireframe)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 18, G: 18, B: 24, A: 255})

	g.renderer.SetView(g.camera.ViewMatrix())
	if err := g.scene.Render(); err != nil {
		log.Printf("render: %v", err)
	}
	g.renderer.Flush(screen)

	if g.wantSnapshot {
		g.wantSnapshot = false
		if err := SaveSnapshot(screen, g.snapshotPath); err != nil {
			log.Printf("%v", err)
		} else {
			log.Printf("snapshot written to %s", g.snapshotPath)
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("FPS: %0.2f", ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
