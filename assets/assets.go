// Package assets embeds the arena layouts shipped with the client and the
// dev server.
package assets

import (
	"embed"
	"fmt"

	"github.com/automoto/rocketview/shared/arena"
)

// DefaultArena is used when no arena is named on the command line.
const DefaultArena = "standard"

//go:embed all:arenas
var arenaFS embed.FS

// LoadArena parses the embedded arena with the given stem name.
func LoadArena(name string) (*arena.Arena, error) {
	a, err := arena.Load(arenaFS, "arenas/"+name+".tmx")
	if err != nil {
		return nil, fmt.Errorf("arena %q: %w", name, err)
	}
	return a, nil
}

// ArenaNames lists the embedded arenas in sorted order.
func ArenaNames() ([]string, error) {
	_, names, err := arena.LoadAll(arenaFS, "arenas")
	return names, err
}
