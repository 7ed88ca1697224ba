package aggregate

import (
	"reflect"
	"testing"

	"github.com/gbhwdb/sitegen/internal/config"
	"github.com/gbhwdb/sitegen/internal/mapper"
	"github.com/gbhwdb/sitegen/internal/submission"
)

func testClassifier() *mapper.Classifier {
	return mapper.NewClassifier(config.NewStore(map[string]config.Game{
		"tetris": {Name: "Tetris", Platform: "gb", Layouts: []string{"rom"}},
	}))
}

func newSubmission(gameType, slug, mapperKind string) *submission.Submission {
	sub := &submission.Submission{
		Type:  gameType,
		Title: gameType,
		Slug:  slug,
	}
	if mapperKind != "" {
		sub.Metadata.Board = &submission.Board{Mapper: &submission.Chip{Kind: mapperKind}}
	}
	return sub
}

func TestGroupByGame(t *testing.T) {
	subs := []*submission.Submission{
		newSubmission("tetris", "tetris-1", ""),
		newSubmission("kirby", "kirby-1", "MBC1B1"),
		newSubmission("tetris", "tetris-2", ""),
		newSubmission("kirby", "kirby-2", "XYZ-UNKNOWN"),
	}

	res := Group(subs, testClassifier())

	if !reflect.DeepEqual(res.GameOrder, []string{"tetris", "kirby"}) {
		t.Errorf("Expected first-seen game order [tetris kirby], got %v", res.GameOrder)
	}

	// Every submission lands in exactly one game group regardless of
	// classification outcome.
	total := 0
	for _, group := range res.ByGame {
		total += len(group)
	}
	if total != len(subs) {
		t.Errorf("Expected %d grouped submissions, got %d", len(subs), total)
	}
	if got := res.Submissions(); got != len(subs) {
		t.Errorf("Expected Submissions()=%d, got %d", len(subs), got)
	}

	tetris := res.ByGame["tetris"]
	if len(tetris) != 2 || tetris[0].Slug != "tetris-1" || tetris[1].Slug != "tetris-2" {
		t.Errorf("Expected tetris group in load order, got %v", tetris)
	}
}

func TestGroupByMapperLazyEntries(t *testing.T) {
	// Scenario: one submission with no mapper metadata whose layout has no
	// mapper role, one explicit MBC3B, one unrecognized revision.
	subs := []*submission.Submission{
		newSubmission("tetris", "tetris-1", ""),
		newSubmission("kirby", "kirby-1", "MBC3B"),
		newSubmission("kirby", "kirby-2", "XYZ-UNKNOWN"),
	}

	res := Group(subs, testClassifier())

	if len(res.ByMapper) != 2 {
		t.Fatalf("Expected 2 mapper entries, got %d: %v", len(res.ByMapper), res.MapperOrder)
	}
	if _, ok := res.ByMapper[mapper.NoMapper]; !ok {
		t.Error("Expected no-mapper entry for the tetris submission")
	}
	mbc3 := res.ByMapper[mapper.MBC3]
	if len(mbc3) != 1 || mbc3[0].Slug != "kirby-1" {
		t.Errorf("Expected mbc3 entry with exactly kirby-1, got %v", mbc3)
	}

	// The unclassifiable submission appears in no mapper group.
	for id, group := range res.ByMapper {
		for _, sub := range group {
			if sub.Slug == "kirby-2" {
				t.Errorf("Unclassifiable submission found under %s", id)
			}
		}
	}

	if len(res.Warnings) != 1 {
		t.Fatalf("Expected 1 warning, got %d", len(res.Warnings))
	}
	if res.Warnings[0].Submission != "kirby-2" {
		t.Errorf("Expected warning for kirby-2, got %s", res.Warnings[0].Submission)
	}
}

func TestGroupDeterminism(t *testing.T) {
	subs := []*submission.Submission{
		newSubmission("kirby", "kirby-1", "MBC5"),
		newSubmission("tetris", "tetris-1", ""),
		newSubmission("kirby", "kirby-2", "MBC1"),
	}

	first := Group(subs, testClassifier())
	second := Group(subs, testClassifier())

	if !reflect.DeepEqual(first.GameOrder, second.GameOrder) {
		t.Errorf("Game order differs between runs: %v vs %v", first.GameOrder, second.GameOrder)
	}
	if !reflect.DeepEqual(first.MapperOrder, second.MapperOrder) {
		t.Errorf("Mapper order differs between runs: %v vs %v", first.MapperOrder, second.MapperOrder)
	}
	if !reflect.DeepEqual(first.Mappers(), second.Mappers()) {
		t.Errorf("Sorted mappers differ between runs")
	}
}

func TestMappersSorted(t *testing.T) {
	subs := []*submission.Submission{
		newSubmission("kirby", "kirby-1", "MBC5"),
		newSubmission("kirby", "kirby-2", "HuC-1"),
		newSubmission("kirby", "kirby-3", "MBC1"),
	}

	res := Group(subs, testClassifier())

	expected := []mapper.ID{mapper.HuC1, mapper.MBC1, mapper.MBC5}
	if !reflect.DeepEqual(res.Mappers(), expected) {
		t.Errorf("Expected %v, got %v", expected, res.Mappers())
	}

	// Mappers() must not disturb the recorded first-seen order.
	firstSeen := []mapper.ID{mapper.MBC5, mapper.HuC1, mapper.MBC1}
	if !reflect.DeepEqual(res.MapperOrder, firstSeen) {
		t.Errorf("Expected first-seen order %v, got %v", firstSeen, res.MapperOrder)
	}
}
