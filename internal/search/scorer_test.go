package search

import (
	"reflect"
	"testing"

	"github.com/arcturus-labs/property-search/model"
)

func recordsWithTitles(titles ...string) []model.PropertyRecord {
	records := make([]model.PropertyRecord, len(titles))
	for i, title := range titles {
		records[i] = model.PropertyRecord{
			ID:           "prop-" + string(rune('a'+i)),
			Title:        title,
			PropertyType: model.PropertyTypeHouse,
		}
	}
	return records
}

func TestScoreRecords_TitleMatching(t *testing.T) {
	records := recordsWithTitles("Modern Loft", "Modern House", "Classic House")

	scored := scoreRecords(records, "Modern", "")

	wantScores := []int{1, 1, 0}
	for i, sp := range scored {
		if sp.Score != wantScores[i] {
			t.Errorf("record %q score = %d, want %d", sp.Title, sp.Score, wantScores[i])
		}
	}
}

func TestScoreRecords_NoQueryScoresZero(t *testing.T) {
	records := recordsWithTitles("Modern Loft", "Classic House")

	scored := scoreRecords(records, "", "")

	if len(scored) != len(records) {
		t.Fatalf("got %d scored records, want %d", len(scored), len(records))
	}
	for _, sp := range scored {
		if sp.Score != 0 {
			t.Errorf("record %q score = %d, want 0", sp.Title, sp.Score)
		}
	}
}

func TestScoreRecords_TitleAndDescriptionAccumulate(t *testing.T) {
	records := []model.PropertyRecord{
		{
			ID:           "prop-a",
			Title:        "Sunny Family Home",
			Description:  "sunny home with garden and parking",
			PropertyType: model.PropertyTypeHouse,
		},
	}

	scored := scoreRecords(records, "Sunny Home", "garden parking")

	// Two title token matches plus two description token matches.
	if scored[0].Score != 4 {
		t.Errorf("score = %d, want 4", scored[0].Score)
	}
}

func TestScoreRecords_RepeatedQueryTokensCountWithMultiplicity(t *testing.T) {
	records := recordsWithTitles("Modern Loft")

	scored := scoreRecords(records, "modern modern", "")

	// Each occurrence of a repeated query token contributes a point: this is a
	// token-presence test per query token, not a set intersection.
	if scored[0].Score != 2 {
		t.Errorf("score = %d, want 2", scored[0].Score)
	}
}

func TestScoreRecords_CaseInsensitive(t *testing.T) {
	records := recordsWithTitles("MODERN Loft")

	scored := scoreRecords(records, "modern LOFT", "")

	if scored[0].Score != 2 {
		t.Errorf("score = %d, want 2", scored[0].Score)
	}
}

func TestScoreRecords_DoesNotMutateCatalog(t *testing.T) {
	records := recordsWithTitles("Modern Loft")
	before := records[0]

	scoreRecords(records, "modern", "")

	if !reflect.DeepEqual(records[0], before) {
		t.Error("scoring mutated the underlying catalog record")
	}
}
