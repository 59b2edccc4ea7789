package scenario

// EventKind partitions the timeline into backstory, playable scenes and
// ending branches.
type EventKind string

const (
	EventBackground EventKind = "background"
	EventScenario   EventKind = "scenario"
	EventEnding     EventKind = "ending"
)

// Valid reports whether k is a known event kind.
func (k EventKind) Valid() bool {
	switch k {
	case EventBackground, EventScenario, EventEnding:
		return true
	}
	return false
}

// Difficulty tiers for skill checks.
const (
	DifficultyRegular = "Regular"
	DifficultyHard    = "Hard"
	DifficultyExtreme = "Extreme"
)

// SkillCheck is one authored check inside a scene: which skill, how hard,
// and what happens either way. Checks are ordered and edited by index.
type SkillCheck struct {
	Skill      string `json:"skill"`
	Difficulty string `json:"difficulty"`
	Success    string `json:"success"`
	Failure    string `json:"failure"`
}

// TimelineEvent is a single entry on the timeline. Date is a free-text
// label, not a parsed date. The three Linked*IDs slices reference entities
// by id; an id with no matching entity is tolerated and simply draws no
// string on the clue wall.
type TimelineEvent struct {
	ID                  string    `json:"id"`
	Date                string    `json:"date"`
	Title               string    `json:"title"`
	Content             string    `json:"content,omitempty"`
	Kind                EventKind `json:"kind"`
	IsInterventionPoint bool      `json:"is_intervention_point,omitempty"`
	ImageData           string    `json:"image_data,omitempty"`

	// Background events.
	EventLocation   string `json:"event_location,omitempty"`
	EventPeople     string `json:"event_people,omitempty"`
	EventResults    string `json:"event_results,omitempty"`
	ObtainableClues string `json:"obtainable_clues,omitempty"`

	// Playable scenes.
	Prerequisites  string `json:"prerequisites,omitempty"`
	ReadAloud      string `json:"read_aloud,omitempty"`
	SceneDetails   string `json:"scene_details,omitempty"`
	SceneFlow      string `json:"scene_flow,omitempty"`
	SceneObjective string `json:"scene_objective,omitempty"`

	// Ending branches.
	EndingCondition   string `json:"ending_condition,omitempty"`
	EndingDescription string `json:"ending_description,omitempty"`

	SkillChecks []SkillCheck `json:"skill_checks,omitempty"`

	LinkedCharacterIDs []string `json:"linked_character_ids,omitempty"`
	LinkedLocationIDs  []string `json:"linked_location_ids,omitempty"`
	LinkedItemIDs      []string `json:"linked_item_ids,omitempty"`

	BoardX *float64 `json:"board_x,omitempty"`
	BoardY *float64 `json:"board_y,omitempty"`
}

// LinkKind names which of an event's three link lists an id lives in.
type LinkKind string

const (
	LinkCharacter LinkKind = "character"
	LinkLocation  LinkKind = "location"
	LinkItem      LinkKind = "item"
)

// Links returns the event's id list for the given kind. The returned slice
// is the stored one; callers that modify it must go through ToggleLink.
func (e *TimelineEvent) Links(kind LinkKind) []string {
	switch kind {
	case LinkCharacter:
		return e.LinkedCharacterIDs
	case LinkLocation:
		return e.LinkedLocationIDs
	case LinkItem:
		return e.LinkedItemIDs
	}
	return nil
}
