package arena

import (
	"fmt"
	"io/fs"
	"math"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// TMX layout conventions.
const (
	layerWalls   = "Walls"
	layerGoals   = "Goals"
	layerKickoff = "Kickoff"

	kickoffCar  = "car"
	kickoffBall = "ball"
)

// Load parses a TMX file into an Arena. Map pixels are world units; the
// map centre becomes the world origin. It takes an fs.FS so callers can pass
// embed.FS (client) or os.DirFS (server).
func Load(fsys fs.FS, tmxPath string) (*Arena, error) {
	m, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	width := float64(m.Width * m.TileWidth)
	length := float64(m.Height * m.TileHeight)
	a := &Arena{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  width,
		Length: length,
	}
	toWorld := func(x, y float64) (float64, float64) {
		return x - width/2, y - length/2
	}

	var haveCar, haveBall bool
	for _, og := range m.ObjectGroups {
		switch og.Name {
		case layerWalls:
			for _, o := range og.Objects {
				x, z := toWorld(o.X, o.Y)
				a.Walls = append(a.Walls, Rect{X: x, Z: z, W: o.Width, L: o.Height})
			}
		case layerGoals:
			for _, o := range og.Objects {
				x, z := toWorld(o.X, o.Y)
				a.Goals = append(a.Goals, Goal{
					Rect: Rect{X: x, Z: z, W: o.Width, L: o.Height},
					Team: o.Properties.GetInt("team"),
				})
			}
		case layerKickoff:
			for _, o := range og.Objects {
				x, z := toWorld(o.X, o.Y)
				spot := Spot{X: x, Z: z, Yaw: float64(o.Properties.GetInt("yaw")) * math.Pi / 180}
				switch o.Name {
				case kickoffCar:
					a.CarKickoff, haveCar = spot, true
				case kickoffBall:
					a.BallKickoff, haveBall = spot, true
				}
			}
		}
	}

	if len(a.Walls) == 0 {
		return nil, fmt.Errorf("arena %s: no objects in %q layer", tmxPath, layerWalls)
	}
	if !haveCar || !haveBall {
		return nil, fmt.Errorf("arena %s: %q layer needs %q and %q spots", tmxPath, layerKickoff, kickoffCar, kickoffBall)
	}

	sort.Slice(a.Goals, func(i, j int) bool { return a.Goals[i].Team < a.Goals[j].Team })
	return a, nil
}

// LoadAll discovers all .tmx files in dir within fsys and returns them keyed
// by stem name plus a sorted list of names.
func LoadAll(fsys fs.FS, dir string) (map[string]*Arena, []string, error) {
	pattern := dir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", dir)
	}

	arenas := make(map[string]*Arena, len(matches))
	names := make([]string, 0, len(matches))
	for _, path := range matches {
		a, err := Load(fsys, path)
		if err != nil {
			return nil, nil, err
		}
		arenas[a.Name] = a
		names = append(names, a.Name)
	}

	sort.Strings(names)
	return arenas, names, nil
}
