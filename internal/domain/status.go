package domain

// PinStatus enumerates the pin generation pipeline. Transitions run
// one-directional along the pipeline except for explicit error-retry
// and restore-from-history actions.
type PinStatus string

const (
	StatusDraft              PinStatus = "draft"
	StatusReadyForGeneration PinStatus = "ready_for_generation"
	StatusGenerateMetadata   PinStatus = "generate_metadata"
	StatusGeneratingMetadata PinStatus = "generating_metadata"
	StatusMetadataCreated    PinStatus = "metadata_created"
	StatusReadyToSchedule    PinStatus = "ready_to_schedule"
	StatusPublished          PinStatus = "published"
	StatusError              PinStatus = "error"
)

var pipelineOrder = map[PinStatus]int{
	StatusDraft:              0,
	StatusReadyForGeneration: 1,
	StatusGenerateMetadata:   2,
	StatusGeneratingMetadata: 3,
	StatusMetadataCreated:    4,
	StatusReadyToSchedule:    5,
	StatusPublished:          6,
}

// Known reports whether s is a member of the closed status set.
func (s PinStatus) Known() bool {
	if s == StatusError {
		return true
	}
	_, ok := pipelineOrder[s]
	return ok
}

// ValidTransition reports whether a pin may move from one status to
// another: forward along the pipeline, into error from any
// generation/publish step, or back out of error to the retained
// previous status.
func ValidTransition(from, to PinStatus) bool {
	if to == StatusError {
		return from != StatusDraft && from != StatusError
	}
	if from == StatusError {
		return to.Known()
	}
	fo, ok1 := pipelineOrder[from]
	to2, ok2 := pipelineOrder[to]
	return ok1 && ok2 && to2 > fo
}

// Badge is the UI presentation for one status.
type Badge struct {
	Label string `json:"label"`
	Color string `json:"color"`
}

var statusBadges = map[PinStatus]Badge{
	StatusDraft:              {Label: "Draft", Color: "gray"},
	StatusReadyForGeneration: {Label: "Ready for generation", Color: "blue"},
	StatusGenerateMetadata:   {Label: "Queued", Color: "blue"},
	StatusGeneratingMetadata: {Label: "Generating", Color: "amber"},
	StatusMetadataCreated:    {Label: "Metadata created", Color: "purple"},
	StatusReadyToSchedule:    {Label: "Ready to schedule", Color: "teal"},
	StatusPublished:          {Label: "Published", Color: "green"},
	StatusError:              {Label: "Error", Color: "red"},
}

var defaultBadge = Badge{Label: "Unknown", Color: "gray"}

// BadgeFor maps a status to its badge. Total: unmapped values get the
// default badge, never an error.
func BadgeFor(s PinStatus) Badge {
	if b, ok := statusBadges[s]; ok {
		return b
	}
	return defaultBadge
}

// StatusTab is a named bucket of one or more concrete statuses used
// for UI filtering.
type StatusTab string

const (
	TabAll             StatusTab = "all"
	TabDraft           StatusTab = "draft"
	TabGeneration      StatusTab = "generation"
	TabMetadataCreated StatusTab = "metadata_created"
	TabPublished       StatusTab = "published"
	TabError           StatusTab = "error"
)

var tabStatuses = map[StatusTab][]PinStatus{
	TabDraft:           {StatusDraft},
	TabGeneration:      {StatusReadyForGeneration, StatusGenerateMetadata, StatusGeneratingMetadata},
	TabMetadataCreated: {StatusMetadataCreated, StatusReadyToSchedule},
	TabPublished:       {StatusPublished},
	TabError:           {StatusError},
}

// Tabs lists the filterable tabs in display order, "all" first.
func Tabs() []StatusTab {
	return []StatusTab{TabAll, TabDraft, TabGeneration, TabMetadataCreated, TabPublished, TabError}
}

// StatusesForTab returns the concrete statuses a tab covers; nil for
// "all" and for unknown tabs.
func StatusesForTab(tab StatusTab) []PinStatus {
	return tabStatuses[tab]
}

// FilterByTab keeps the pins whose status belongs to the tab's status
// set. The "all" tab is the identity.
func FilterByTab(pins []Pin, tab StatusTab) []Pin {
	if tab == TabAll {
		return pins
	}
	members, ok := tabStatuses[tab]
	if !ok {
		return nil
	}
	var out []Pin
	for _, p := range pins {
		for _, s := range members {
			if p.Status == s {
				out = append(out, p)
				break
			}
		}
	}
	return out
}

// CountByTab computes every tab's cardinality in a single pass. Only
// "all" is guaranteed inclusive; a pin whose status belongs to no
// defined group counts toward "all" alone.
func CountByTab(pins []Pin) map[StatusTab]int {
	counts := make(map[StatusTab]int, len(tabStatuses)+1)
	counts[TabAll] = len(pins)
	for tab := range tabStatuses {
		counts[tab] = 0
	}
	for _, p := range pins {
		for tab, members := range tabStatuses {
			for _, s := range members {
				if p.Status == s {
					counts[tab]++
					break
				}
			}
		}
	}
	return counts
}
