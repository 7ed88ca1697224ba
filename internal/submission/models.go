// Package submission defines the cartridge submission model and the loader
// that reads and hydrates staged submission records.
package submission

import (
	"encoding/json"
	"fmt"
	"time"
)

// Chip is one identified chip on a submitted board.
type Chip struct {
	Kind  string `json:"kind,omitempty"`
	Label string `json:"label,omitempty"`
}

// Board is the PCB metadata of one submission.
type Board struct {
	Kind   string `json:"kind,omitempty"`
	Layout string `json:"layout,omitempty"`
	Stamp  string `json:"stamp,omitempty"`
	Mapper *Chip  `json:"mapper,omitempty"`
}

// Metadata groups the structured hardware metadata of a submission.
type Metadata struct {
	Board *Board `json:"board,omitempty"`
}

// Photo is one photo slot of a submission. Size and ModTime are filled during
// hydration and never serialized back.
type Photo struct {
	Path    string    `json:"-"`
	Size    int64     `json:"-"`
	ModTime time.Time `json:"-"`
}

// UnmarshalJSON accepts either a bare path string or an object with a "path"
// key, since both forms appear in the submission corpus.
func (p *Photo) UnmarshalJSON(data []byte) error {
	var path string
	if err := json.Unmarshal(data, &path); err == nil {
		p.Path = path
		return nil
	}
	var obj struct {
		Path string `json:"path"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return fmt.Errorf("photo must be a path string or an object with a path: %w", err)
	}
	p.Path = obj.Path
	return nil
}

// Photos holds the three canonical photo slots of a submission.
type Photos struct {
	Front    *Photo `json:"front,omitempty"`
	PcbFront *Photo `json:"pcbFront,omitempty"`
	PcbBack  *Photo `json:"pcbBack,omitempty"`
}

// Slot is one named, present photo slot.
type Slot struct {
	Name  string
	Photo *Photo
}

// Slots returns the present photo slots with their names, in canonical order.
func (p Photos) Slots() []Slot {
	var slots []Slot
	for _, s := range []Slot{
		{"front", p.Front},
		{"pcbFront", p.PcbFront},
		{"pcbBack", p.PcbBack},
	} {
		if s.Photo != nil {
			slots = append(slots, s)
		}
	}
	return slots
}

// Submission is one community contribution about one physical cartridge.
// It is immutable after loading; hydration only fills photo metadata.
type Submission struct {
	Type        string   `json:"type"`
	Title       string   `json:"title"`
	Slug        string   `json:"slug"`
	Contributor string   `json:"contributor,omitempty"`
	Metadata    Metadata `json:"metadata"`
	Photos      Photos   `json:"photos"`

	// Index is the position of the record in the input sequence.
	Index int `json:"-"`
}

// Ref identifies the submission in error messages and warnings.
func (s *Submission) Ref() string {
	if s.Slug != "" {
		return s.Slug
	}
	return fmt.Sprintf("%s #%d", s.Type, s.Index)
}

// MapperKind returns the explicit mapper revision string, or "" if the board
// metadata carries none.
func (s *Submission) MapperKind() string {
	if s.Metadata.Board == nil || s.Metadata.Board.Mapper == nil {
		return ""
	}
	return s.Metadata.Board.Mapper.Kind
}

// BoardKind returns the board label, or "" if unknown.
func (s *Submission) BoardKind() string {
	if s.Metadata.Board == nil {
		return ""
	}
	return s.Metadata.Board.Kind
}

// BoardStamp returns the board date stamp, or "" if unknown.
func (s *Submission) BoardStamp() string {
	if s.Metadata.Board == nil {
		return ""
	}
	return s.Metadata.Board.Stamp
}
