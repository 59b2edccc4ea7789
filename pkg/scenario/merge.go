package scenario

import "math/rand"

// Drafts are the strongly-typed shapes of records produced by the
// generation service. Field names match the JSON the prompts ask the text
// service to emit. Merging a draft defaults every missing field
// explicitly, then goes through the same reducers as a hand edit.

// OutlineDraft is a partial outline; nil fields were absent from the
// response and leave the current outline untouched.
type OutlineDraft struct {
	Title      *string `json:"title,omitempty"`
	Era        *string `json:"era,omitempty"`
	PlayerInfo *string `json:"playerInfo,omitempty"`
	Act1       *string `json:"act1,omitempty"`
	Act2       *string `json:"act2,omitempty"`
	Act3       *string `json:"act3,omitempty"`
	Act4       *string `json:"act4,omitempty"`
	Truth      *string `json:"truth,omitempty"`
	FAQ        *string `json:"faq,omitempty"`
}

// MergeOutline overlays the draft onto the outline, field by field.
func (s *Scenario) MergeOutline(d OutlineDraft) {
	o := s.Outline
	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&o.Title, d.Title)
	set(&o.Era, d.Era)
	set(&o.PlayerInfo, d.PlayerInfo)
	set(&o.Act1, d.Act1)
	set(&o.Act2, d.Act2)
	set(&o.Act3, d.Act3)
	set(&o.Act4, d.Act4)
	set(&o.Truth, d.Truth)
	set(&o.FAQ, d.FAQ)
	s.Outline = o
}

// CharacterDraft is one generated dossier.
type CharacterDraft struct {
	Name        string `json:"name"`
	Age         string `json:"age"`
	Occupation  string `json:"occupation"`
	Description string `json:"description"`
	Personality string `json:"personality"`
	Belief      string `json:"belief"`
	Backstory   string `json:"backstory"`
	Goal        string `json:"goal"`
	ActionStyle string `json:"actionStyle"`
	Skills      string `json:"skills"`
	Secret      string `json:"secret"`
}

// MergeCharacters appends one character per draft.
func (s *Scenario) MergeCharacters(drafts []CharacterDraft) {
	for _, d := range drafts {
		if d.Name == "" {
			d.Name = "Unknown"
		}
		s.AddCharacter(Character{
			Name:        d.Name,
			Age:         d.Age,
			Occupation:  d.Occupation,
			Description: d.Description,
			Personality: d.Personality,
			Belief:      d.Belief,
			Backstory:   d.Backstory,
			Goal:        d.Goal,
			ActionStyle: d.ActionStyle,
			Skills:      d.Skills,
			Secret:      d.Secret,
		})
	}
}

// LocationDraft is one generated map pin. Nil coordinates get a random
// spot in the middle 80% of the map so new pins never stack on the edge.
type LocationDraft struct {
	Name        string   `json:"name"`
	X           *float64 `json:"x,omitempty"`
	Y           *float64 `json:"y,omitempty"`
	Description string   `json:"description"`
	NPCs        []string `json:"npcs"`
}

// MergeLocations appends one location per draft.
func (s *Scenario) MergeLocations(drafts []LocationDraft) {
	for _, d := range drafts {
		if d.Name == "" {
			d.Name = "Unnamed location"
		}
		x, y := randomBoardSpot()
		if d.X != nil {
			x = Clamp(*d.X)
		}
		if d.Y != nil {
			y = Clamp(*d.Y)
		}
		npcs := d.NPCs
		if npcs == nil {
			npcs = []string{}
		}
		s.AddLocation(Location{
			Name:        d.Name,
			Description: d.Description,
			NPCs:        npcs,
			X:           x,
			Y:           y,
		})
	}
}

// ItemDraft is one generated catalog entry.
type ItemDraft struct {
	Name          string `json:"name"`
	Category      string `json:"type"`
	Description   string `json:"description"`
	Attributes    string `json:"attributes"`
	Owner         string `json:"owner"`
	FoundLocation string `json:"foundLocation"`
}

// MergeItems appends one item per draft. Unknown categories fall back to
// Clue via AddItem.
func (s *Scenario) MergeItems(drafts []ItemDraft) {
	for _, d := range drafts {
		if d.Name == "" {
			d.Name = "New item"
		}
		s.AddItem(Item{
			Name:          d.Name,
			Category:      ItemCategory(d.Category),
			Description:   d.Description,
			Attributes:    d.Attributes,
			Owner:         d.Owner,
			FoundLocation: d.FoundLocation,
		})
	}
}

// EventDraft is one generated timeline event, background, scene or ending.
type EventDraft struct {
	Date                string       `json:"date"`
	Title               string       `json:"title"`
	Content             string       `json:"content"`
	Kind                string       `json:"type"`
	IsInterventionPoint bool         `json:"isInterventionPoint"`
	EventLocation       string       `json:"eventLocation"`
	EventPeople         string       `json:"eventPeople"`
	EventResults        string       `json:"eventResults"`
	ObtainableClues     string       `json:"obtainableClues"`
	Prerequisites       string       `json:"prerequisites"`
	ReadAloud           string       `json:"readAloud"`
	SceneDetails        string       `json:"sceneDetails"`
	SceneFlow           string       `json:"sceneFlow"`
	SceneObjective      string       `json:"sceneObjective"`
	SkillChecks         []SkillCheck `json:"skillChecks"`
	EndingCondition     string       `json:"endingCondition"`
	EndingDescription   string       `json:"endingDescription"`
}

// MergeEvents appends one timeline event per draft.
func (s *Scenario) MergeEvents(drafts []EventDraft) {
	for _, d := range drafts {
		if d.Date == "" {
			d.Date = "Unknown time"
		}
		if d.Title == "" {
			d.Title = "Untitled event"
		}
		checks := d.SkillChecks
		if checks == nil {
			checks = []SkillCheck{}
		}
		s.AddEvent(TimelineEvent{
			Date:                d.Date,
			Title:               d.Title,
			Content:             d.Content,
			Kind:                EventKind(d.Kind),
			IsInterventionPoint: d.IsInterventionPoint,
			EventLocation:       d.EventLocation,
			EventPeople:         d.EventPeople,
			EventResults:        d.EventResults,
			ObtainableClues:     d.ObtainableClues,
			Prerequisites:       d.Prerequisites,
			ReadAloud:           d.ReadAloud,
			SceneDetails:        d.SceneDetails,
			SceneFlow:           d.SceneFlow,
			SceneObjective:      d.SceneObjective,
			SkillChecks:         checks,
			EndingCondition:     d.EndingCondition,
			EndingDescription:   d.EndingDescription,
		})
	}
}

// MergeScene overlays a draft onto an existing event when the author
// expands a single scene. Only non-empty fields land, so a thin response
// cannot wipe authored text.
func (s *Scenario) MergeScene(eventID string, d EventDraft) {
	s.UpdateEvent(eventID, func(e *TimelineEvent) {
		overlay := func(dst *string, src string) {
			if src != "" {
				*dst = src
			}
		}
		if k := EventKind(d.Kind); k.Valid() {
			e.Kind = k
		}
		overlay(&e.Date, d.Date)
		overlay(&e.Title, d.Title)
		overlay(&e.Content, d.Content)
		overlay(&e.EventLocation, d.EventLocation)
		overlay(&e.EventPeople, d.EventPeople)
		overlay(&e.EventResults, d.EventResults)
		overlay(&e.ObtainableClues, d.ObtainableClues)
		overlay(&e.Prerequisites, d.Prerequisites)
		overlay(&e.ReadAloud, d.ReadAloud)
		overlay(&e.SceneDetails, d.SceneDetails)
		overlay(&e.SceneFlow, d.SceneFlow)
		overlay(&e.SceneObjective, d.SceneObjective)
		overlay(&e.EndingCondition, d.EndingCondition)
		overlay(&e.EndingDescription, d.EndingDescription)
		if len(d.SkillChecks) > 0 {
			e.SkillChecks = d.SkillChecks
		}
	})
}

func randomBoardSpot() (float64, float64) {
	return float64(rand.Intn(80) + 10), float64(rand.Intn(80) + 10)
}
