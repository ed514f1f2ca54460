package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pinWith(status PinStatus) Pin {
	return Pin{ID: "pin-" + string(status), Status: status}
}

func TestFilterByTab_AllIsIdentity(t *testing.T) {
	pins := []Pin{
		pinWith(StatusDraft),
		pinWith(StatusGeneratingMetadata),
		pinWith(StatusPublished),
		pinWith(PinStatus("legacy_status")),
	}

	got := FilterByTab(pins, TabAll)
	assert.Equal(t, pins, got)
}

func TestFilterByTab_Groups(t *testing.T) {
	pins := []Pin{
		pinWith(StatusDraft),
		pinWith(StatusReadyForGeneration),
		pinWith(StatusGenerateMetadata),
		pinWith(StatusGeneratingMetadata),
		pinWith(StatusMetadataCreated),
		pinWith(StatusReadyToSchedule),
		pinWith(StatusPublished),
		pinWith(StatusError),
	}

	tests := []struct {
		tab  StatusTab
		want int
	}{
		{TabDraft, 1},
		{TabGeneration, 3},
		{TabMetadataCreated, 2},
		{TabPublished, 1},
		{TabError, 1},
	}

	for _, tt := range tests {
		got := FilterByTab(pins, tt.tab)
		assert.Len(t, got, tt.want, "tab %s", tt.tab)
	}
}

func TestFilterByTab_UnknownTab(t *testing.T) {
	pins := []Pin{pinWith(StatusDraft)}
	assert.Empty(t, FilterByTab(pins, StatusTab("bogus")))
}

func TestFilterByTab_GroupUnionCoversGroupedStatuses(t *testing.T) {
	pins := []Pin{
		pinWith(StatusDraft),
		pinWith(StatusGeneratingMetadata),
		pinWith(StatusPublished),
		pinWith(PinStatus("legacy_status")), // belongs to no group
	}

	var union []Pin
	for _, tab := range Tabs() {
		if tab == TabAll {
			continue
		}
		union = append(union, FilterByTab(pins, tab)...)
	}

	// The non-all tabs are disjoint, so the union is exactly the pins
	// whose status is in some defined group.
	require.Len(t, union, 3)
	for _, p := range union {
		assert.NotEqual(t, PinStatus("legacy_status"), p.Status)
	}
}

func TestCountByTab(t *testing.T) {
	pins := []Pin{
		pinWith(StatusDraft),
		pinWith(StatusDraft),
		pinWith(StatusReadyForGeneration),
		pinWith(StatusPublished),
		pinWith(PinStatus("legacy_status")),
	}

	counts := CountByTab(pins)

	assert.Equal(t, 5, counts[TabAll])
	assert.Equal(t, 2, counts[TabDraft])
	assert.Equal(t, 1, counts[TabGeneration])
	assert.Equal(t, 0, counts[TabMetadataCreated])
	assert.Equal(t, 1, counts[TabPublished])
	assert.Equal(t, 0, counts[TabError])
}

func TestBadgeFor_TotalMapping(t *testing.T) {
	assert.Equal(t, "Published", BadgeFor(StatusPublished).Label)
	assert.Equal(t, "Error", BadgeFor(StatusError).Label)

	// Unmapped values fall back to the default badge, never fail.
	assert.Equal(t, defaultBadge, BadgeFor(PinStatus("whatever")))
}

func TestValidTransition(t *testing.T) {
	tests := []struct {
		name string
		from PinStatus
		to   PinStatus
		want bool
	}{
		{"forward one step", StatusDraft, StatusReadyForGeneration, true},
		{"forward several steps", StatusDraft, StatusReadyToSchedule, true},
		{"backward", StatusPublished, StatusDraft, false},
		{"same status", StatusDraft, StatusDraft, false},
		{"generation step to error", StatusGeneratingMetadata, StatusError, true},
		{"publish step to error", StatusReadyToSchedule, StatusError, true},
		{"draft to error", StatusDraft, StatusError, false},
		{"error retry back to pipeline", StatusError, StatusGenerateMetadata, true},
		{"error to unknown", StatusError, PinStatus("nope"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidTransition(tt.from, tt.to))
		})
	}
}
