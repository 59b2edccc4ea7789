// Package scenario holds the document model for a tabletop scenario:
// the outline, the timeline, the cast, the locations and items, and the
// reference shelf. A Scenario is the unit of save/load; every edit goes
// through the reducer functions in edit.go, which copy collections rather
// than mutating them in place.
package scenario

// OutlineTemplate selects the structural scaffold the outline is written
// against. Free-form text everywhere else; the template only steers the
// generation prompts.
type OutlineTemplate string

const (
	TemplateThreeAct     OutlineTemplate = "three_act"
	TemplateHerosJourney OutlineTemplate = "heros_journey"
	TemplateFourAct      OutlineTemplate = "four_act"
	TemplateHollywood    OutlineTemplate = "hollywood"
	TemplateClassicCoC   OutlineTemplate = "classic_coc"
	TemplateWhodunit     OutlineTemplate = "whodunit"
	TemplateNoir         OutlineTemplate = "noir"
	TemplateSurvival     OutlineTemplate = "survival"
	TemplateEscapeRoom   OutlineTemplate = "escape_room"
	TemplateHitchcock    OutlineTemplate = "hitchcock"
	TemplateFreeform     OutlineTemplate = "freeform"
)

// Templates lists every known outline template.
var Templates = []OutlineTemplate{
	TemplateThreeAct, TemplateHerosJourney, TemplateFourAct,
	TemplateHollywood, TemplateClassicCoC, TemplateWhodunit,
	TemplateNoir, TemplateSurvival, TemplateEscapeRoom,
	TemplateHitchcock, TemplateFreeform,
}

// Valid reports whether t is a known template.
func (t OutlineTemplate) Valid() bool {
	for _, known := range Templates {
		if t == known {
			return true
		}
	}
	return false
}

// Outline is the singleton top sheet of a scenario. It is never deleted,
// only mutated.
type Outline struct {
	Title      string          `json:"title"`
	Template   OutlineTemplate `json:"template"`
	Era        string          `json:"era,omitempty"`
	PlayerInfo string          `json:"player_info,omitempty"` // briefing handed to the players
	Act1       string          `json:"act1"`
	Act2       string          `json:"act2"`
	Act3       string          `json:"act3"`
	Act4       string          `json:"act4,omitempty"`
	Truth      string          `json:"truth"` // keeper-only core truth
	FAQ        string          `json:"faq,omitempty"`
}

// MapStyle affects only the presentation of the generated map background,
// never its geometry.
type MapStyle string

const (
	StyleVintage   MapStyle = "vintage"
	StyleRealistic MapStyle = "realistic"
	StyleBlueprint MapStyle = "blueprint"
	StyleIsometric MapStyle = "isometric"
	StylePixel     MapStyle = "pixel"
)

// Valid reports whether s is a known map style.
func (s MapStyle) Valid() bool {
	switch s {
	case StyleVintage, StyleRealistic, StyleBlueprint, StyleIsometric, StylePixel:
		return true
	}
	return false
}

// Scenario is the aggregate root: one authored document. Reducers return
// new collection values, so two Scenario values never share slices after
// an edit.
type Scenario struct {
	Outline    Outline          `json:"outline"`
	Timeline   []TimelineEvent  `json:"timeline"`
	Locations  []Location       `json:"locations"`
	Characters []Character      `json:"characters"`
	Items      []Item           `json:"items"`
	References []ReferenceEntry `json:"references"`
	MapStyle   MapStyle         `json:"map_style,omitempty"`
	// MapSeed is the only input to terrain generation. Identical seed,
	// identical map background.
	MapSeed int64 `json:"map_layout_seed,omitempty"`
}

// DefaultMapSeed seeds new documents so the map view is never blank.
const DefaultMapSeed = 12345

// New returns an empty scenario with the default template and map seed.
func New() *Scenario {
	return &Scenario{
		Outline: Outline{
			Template: TemplateThreeAct,
		},
		Timeline:   []TimelineEvent{},
		Locations:  []Location{},
		Characters: []Character{},
		Items:      []Item{},
		References: []ReferenceEntry{},
		MapSeed:    DefaultMapSeed,
	}
}

// Character returns the character with the given id, or nil.
func (s *Scenario) Character(id string) *Character {
	for i := range s.Characters {
		if s.Characters[i].ID == id {
			return &s.Characters[i]
		}
	}
	return nil
}

// Location returns the location with the given id, or nil.
func (s *Scenario) Location(id string) *Location {
	for i := range s.Locations {
		if s.Locations[i].ID == id {
			return &s.Locations[i]
		}
	}
	return nil
}

// Item returns the item with the given id, or nil.
func (s *Scenario) Item(id string) *Item {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}

// Event returns the timeline event with the given id, or nil.
func (s *Scenario) Event(id string) *TimelineEvent {
	for i := range s.Timeline {
		if s.Timeline[i].ID == id {
			return &s.Timeline[i]
		}
	}
	return nil
}
