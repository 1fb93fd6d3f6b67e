package obslist

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGroupFilters_TwoChannels(t *testing.T) {
	ids := []string{"1", "1", "2"}
	short := []string{"F070W", "F150W", "F090W"}
	long := []string{"F277W", "F444W", "F356W"}

	groups, notices := GroupFilters(ids, short, long)

	want := []FilterGroup{
		{ID: "1", Channels: [][]string{{"F070W", "F150W"}, {"F277W", "F444W"}}},
		{ID: "2", Channels: [][]string{{"F090W"}, {"F356W"}}},
	}
	if diff := cmp.Diff(want, groups); diff != "" {
		t.Errorf("groups mismatch (-want +got):\n%s", diff)
	}

	// Observation 1 uses two distinct filters on both channels.
	if len(notices) != 1 {
		t.Fatalf("expected 1 notice, got %d: %v", len(notices), notices)
	}
	if notices[0] != "multiple filters in observation 1" {
		t.Errorf("unexpected notice: %q", notices[0])
	}
}

func TestGroupFilters_UniformFiltersNoNotice(t *testing.T) {
	ids := []string{"3", "3", "3"}
	filters := []string{"F090W", "F090W", "F090W"}

	groups, notices := GroupFilters(ids, filters)

	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if len(groups[0].Channels[0]) != 3 {
		t.Errorf("expected all 3 rows kept, got %d", len(groups[0].Channels[0]))
	}
	if len(notices) != 0 {
		t.Errorf("expected no notices, got %v", notices)
	}
}

func TestGroupFilters_HeterogeneousSequenceKeptWhole(t *testing.T) {
	ids := []string{"5", "5"}
	filters := []string{"F090W", "F140M"}

	groups, notices := GroupFilters(ids, filters)

	// The full sequence survives; the inconsistency is a notice only.
	want := []string{"F090W", "F140M"}
	if diff := cmp.Diff(want, groups[0].Channels[0]); diff != "" {
		t.Errorf("filter sequence mismatch (-want +got):\n%s", diff)
	}
	if len(notices) != 1 {
		t.Errorf("expected 1 notice, got %d", len(notices))
	}
}

func TestGroupFilters_FirstAppearanceOrder(t *testing.T) {
	// Ids interleave and are not sorted; grouping preserves the order in
	// which each id first appears.
	ids := []string{"9", "2", "9", "7", "2"}
	filters := []string{"a", "b", "a", "c", "b"}

	groups, _ := GroupFilters(ids, filters)

	wantOrder := []string{"9", "2", "7"}
	if len(groups) != len(wantOrder) {
		t.Fatalf("expected %d groups, got %d", len(wantOrder), len(groups))
	}
	for i, want := range wantOrder {
		if groups[i].ID != want {
			t.Errorf("group[%d].ID = %q, want %q", i, groups[i].ID, want)
		}
	}
}

func TestGroupFilters_EmptyTable(t *testing.T) {
	groups, notices := GroupFilters(nil, nil)
	if len(groups) != 0 || len(notices) != 0 {
		t.Errorf("expected no groups or notices, got %v / %v", groups, notices)
	}
}
