package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "games.json")
	content := `{
		"tetris": {"name": "Tetris", "platform": "gb", "layouts": ["rom"]},
		"zelda": {"name": "Zelda", "platform": "gb", "layouts": ["rom_mapper_ram"]}
	}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	store, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if store.Len() != 2 {
		t.Errorf("Expected 2 games, got %d", store.Len())
	}

	game, ok := store.Game("tetris")
	if !ok {
		t.Fatal("Expected tetris config")
	}
	if game.Name != "Tetris" || len(game.Layouts) != 1 || game.Layouts[0] != "rom" {
		t.Errorf("Unexpected tetris config: %+v", game)
	}

	if _, ok := store.Game("missingno"); ok {
		t.Error("Expected lookup miss for unknown game")
	}
}

func TestLoadRejectsUnknownLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "games.json")
	content := `{"tetris": {"name": "Tetris", "platform": "gb", "layouts": ["hovercraft"]}}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := Load(path)
	if err == nil {
		t.Fatal("Expected an error for an unknown layout reference")
	}
	if !strings.Contains(err.Error(), "hovercraft") {
		t.Errorf("Expected the error to name the layout, got %v", err)
	}
}

func TestLayoutRoles(t *testing.T) {
	tests := []struct {
		layout    string
		hasMapper bool
	}{
		{"rom", false},
		{"rom_mapper", true},
		{"rom_mapper_ram", true},
		{"rom_mapper_ram_xtal", true},
		{"mbc2", true},
		{"mbc6", true},
		{"mbc7", true},
		{"type_15", true},
		{"huc3", true},
		{"tama", false},
	}

	store := NewStore(nil)

	for _, tt := range tests {
		t.Run(tt.layout, func(t *testing.T) {
			layout, ok := store.Layout(tt.layout)
			if !ok {
				t.Fatalf("Expected layout %s to exist", tt.layout)
			}
			if got := layout.HasRole(RoleMapper); got != tt.hasMapper {
				t.Errorf("Expected HasRole(mapper)=%v, got %v", tt.hasMapper, got)
			}
		})
	}

	if _, ok := store.Layout("hovercraft"); ok {
		t.Error("Expected lookup miss for unknown layout")
	}
}

func TestLayoutFromBoardLabel(t *testing.T) {
	tests := []struct {
		label    string
		expected string
		found    bool
	}{
		{"DMG-A07-01", "rom_mapper", true},
		{"DMG-A04-03", "rom_mapper_ram", true},
		{"DMG-BEAN-02", "rom_mapper", true},
		{"DMG-KECN-01", "rom_mapper_ram_xtal", true},
		{"DMG-GDAN-02", "mbc2", true},
		{"CGB-A32-10", "mbc6", true},
		// Full-label fallback for keys without a revision suffix
		{"AAAC S", "rom", true},
		{"0200309E4-01", "tama", true},
		{"DMG-XXXX-01", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			layout, ok := LayoutFromBoardLabel(tt.label)
			if ok != tt.found {
				t.Fatalf("Expected found=%v, got %v", tt.found, ok)
			}
			if layout != tt.expected {
				t.Errorf("Expected %q, got %q", tt.expected, layout)
			}
		})
	}
}
