package page

import (
	"reflect"
	"testing"

	"github.com/gbhwdb/sitegen/internal/aggregate"
	"github.com/gbhwdb/sitegen/internal/config"
	"github.com/gbhwdb/sitegen/internal/mapper"
	"github.com/gbhwdb/sitegen/internal/submission"
)

func testStore() *config.Store {
	return config.NewStore(map[string]config.Game{
		"zelda":  {Name: "Zelda", Platform: "gb", Layouts: []string{"rom_mapper_ram"}},
		"tetris": {Name: "Tetris", Platform: "gb", Layouts: []string{"rom"}},
	})
}

func testSubmissions() []*submission.Submission {
	zelda := &submission.Submission{Type: "zelda", Title: "Zelda", Slug: "zelda-1"}
	zelda.Metadata.Board = &submission.Board{Mapper: &submission.Chip{Kind: "MBC1A"}}
	tetris := &submission.Submission{Type: "tetris", Title: "Tetris", Slug: "tetris-1"}
	return []*submission.Submission{zelda, tetris}
}

func build(t *testing.T) []Declaration {
	t.Helper()
	cfg := testStore()
	res := aggregate.Group(testSubmissions(), mapper.NewClassifier(cfg))
	decls, err := Build(res, cfg)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	return decls
}

func TestBuildIndexPage(t *testing.T) {
	decls := build(t)

	if len(decls) != 3 {
		t.Fatalf("Expected index + 2 mapper pages, got %d declarations", len(decls))
	}

	index := decls[0]
	if index.Type != TypeIndex {
		t.Fatalf("Expected first declaration to be the index, got %s", index.Type)
	}
	if !reflect.DeepEqual(index.Path, []string{"cartridges", "index"}) {
		t.Errorf("Expected path [cartridges index], got %v", index.Path)
	}

	props, ok := index.Props.(IndexProps)
	if !ok {
		t.Fatalf("Expected IndexProps payload, got %T", index.Props)
	}

	// Games sorted by display name, not by insertion order.
	if len(props.Games) != 2 || props.Games[0].Name != "Tetris" || props.Games[1].Name != "Zelda" {
		t.Errorf("Expected games sorted by display name, got %v", props.Games)
	}
	if !reflect.DeepEqual(props.Mappers, []mapper.ID{mapper.MBC1, mapper.NoMapper}) {
		t.Errorf("Expected populated mappers [mbc1 no-mapper], got %v", props.Mappers)
	}
}

func TestBuildMapperPages(t *testing.T) {
	decls := build(t)

	seen := map[mapper.ID][]string{}
	for _, decl := range decls[1:] {
		if decl.Type != TypeMapperDetail {
			t.Fatalf("Expected mapper-detail declaration, got %s", decl.Type)
		}
		props, ok := decl.Props.(MapperProps)
		if !ok {
			t.Fatalf("Expected MapperProps payload, got %T", decl.Props)
		}
		if !reflect.DeepEqual(decl.Path, []string{"cartridges", string(props.Mapper)}) {
			t.Errorf("Expected path [cartridges %s], got %v", props.Mapper, decl.Path)
		}
		for _, sub := range props.Submissions {
			seen[props.Mapper] = append(seen[props.Mapper], sub.Slug)
		}
	}

	expected := map[mapper.ID][]string{
		mapper.MBC1:     {"zelda-1"},
		mapper.NoMapper: {"tetris-1"},
	}
	if !reflect.DeepEqual(seen, expected) {
		t.Errorf("Expected %v, got %v", expected, seen)
	}
}

func TestBuildIdempotent(t *testing.T) {
	first := build(t)
	second := build(t)

	if !reflect.DeepEqual(first, second) {
		t.Error("Expected identical declarations across repeated builds")
	}
}

func TestBuildMissingGameConfig(t *testing.T) {
	cfg := testStore()
	subs := []*submission.Submission{
		{Type: "unknown-game", Title: "Unknown", Slug: "unknown-1"},
	}
	res := aggregate.Group(subs, mapper.NewClassifier(cfg))

	_, err := Build(res, cfg)
	if err == nil {
		t.Fatal("Expected an error for a game type without configuration")
	}
}
