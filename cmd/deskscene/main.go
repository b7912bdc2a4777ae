package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/cmogged/deskscene"
)

func main() {
	configPath := flag.String("config", "", "path to JSON config file")
	textureDir := flag.String("textures", "", "directory holding the scene textures")
	snapshotPath := flag.String("snapshot", "", "file snapshots are written to (press S)")
	width := flag.Int("width", 0, "window width in pixels")
	height := flag.Int("height", 0, "window height in pixels")
	flag.Parse()

	cfg, err := deskscene.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	cfg.Resolve(deskscene.Flags{
		TextureDir:   *textureDir,
		SnapshotPath: *snapshotPath,
		Width:        *width,
		Height:       *height,
	})

	game, err := deskscene.NewGame(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowTitle("Desk Still Life")
	if err := ebiten.RunGame(game); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
