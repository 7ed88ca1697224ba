// Package page turns aggregated submission groups into the ordered page
// declarations handed to the renderer.
package page

import (
	"fmt"
	"sort"

	"github.com/gbhwdb/sitegen/internal/aggregate"
	"github.com/gbhwdb/sitegen/internal/config"
	"github.com/gbhwdb/sitegen/internal/mapper"
	"github.com/gbhwdb/sitegen/internal/submission"
)

// Type discriminates the kinds of rendered pages.
type Type string

const (
	TypeIndex        Type = "index"
	TypeMapperDetail Type = "mapper-detail"
)

// Declaration describes one page to render: its kind, output path segments,
// display title, and the grouped submissions the template needs.
type Declaration struct {
	Type  Type
	Path  []string
	Title string
	Props any
}

// GameGroup is one game's submissions with its display configuration.
type GameGroup struct {
	Type        string
	Name        string
	Platform    string
	Submissions []*submission.Submission
}

// IndexProps is the payload of the cartridge index page.
type IndexProps struct {
	Games   []GameGroup
	Mappers []mapper.ID
}

// MapperProps is the payload of one mapper detail page.
type MapperProps struct {
	Mapper      mapper.ID
	Submissions []*submission.Submission
}

// Build produces the page declarations for one run: the index page followed
// by one detail page per populated mapper. Detail pages are emitted in sorted
// identifier order so repeated builds are byte-for-byte identical; consumers
// must not rely on any particular order.
func Build(res *aggregate.Result, cfg *config.Store) ([]Declaration, error) {
	groups := make([]GameGroup, 0, len(res.GameOrder))
	for _, id := range res.GameOrder {
		game, ok := cfg.Game(id)
		if !ok {
			return nil, fmt.Errorf("no game configuration for submitted type %q", id)
		}
		groups = append(groups, GameGroup{
			Type:        id,
			Name:        game.Name,
			Platform:    game.Platform,
			Submissions: res.ByGame[id],
		})
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Name < groups[j].Name })

	mappers := res.Mappers()

	decls := make([]Declaration, 0, len(mappers)+1)
	decls = append(decls, Declaration{
		Type:  TypeIndex,
		Path:  []string{"cartridges", "index"},
		Title: "Game Boy cartridges",
		Props: IndexProps{Games: groups, Mappers: mappers},
	})

	for _, id := range mappers {
		decls = append(decls, Declaration{
			Type:  TypeMapperDetail,
			Path:  []string{"cartridges", string(id)},
			Title: id.DisplayName(),
			Props: MapperProps{Mapper: id, Submissions: res.ByMapper[id]},
		})
	}

	return decls, nil
}
