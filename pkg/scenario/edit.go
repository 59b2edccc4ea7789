package scenario

import (
	"slices"

	"github.com/google/uuid"
)

// NewID returns a fresh unique identifier for a new entity.
func NewID() string {
	return uuid.NewString()
}

// Clamp forces a percent coordinate into [0,100]. Interactive writes are
// clamped rather than rejected; out-of-range input is never an error.
func Clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// AddCharacter appends c to the cast, assigning an id if it has none, and
// returns the stored value.
func (s *Scenario) AddCharacter(c Character) Character {
	if c.ID == "" {
		c.ID = NewID()
	}
	s.Characters = append(slices.Clone(s.Characters), c)
	return c
}

// UpdateCharacter applies fn to the character with the given id on a fresh
// copy of the collection. Unknown ids are a no-op.
func (s *Scenario) UpdateCharacter(id string, fn func(*Character)) {
	out := slices.Clone(s.Characters)
	for i := range out {
		if out[i].ID == id {
			fn(&out[i])
			out[i].ID = id // ids are immutable after creation
		}
	}
	s.Characters = out
}

// RemoveCharacter deletes the character with the given id. Link lists on
// timeline events are left untouched; a dangling id simply stops drawing.
func (s *Scenario) RemoveCharacter(id string) {
	s.Characters = slices.DeleteFunc(slices.Clone(s.Characters), func(c Character) bool {
		return c.ID == id
	})
}

// AddLocation appends l to the map, assigning an id if needed.
func (s *Scenario) AddLocation(l Location) Location {
	if l.ID == "" {
		l.ID = NewID()
	}
	if l.NPCs == nil {
		l.NPCs = []string{}
	}
	l.X = Clamp(l.X)
	l.Y = Clamp(l.Y)
	s.Locations = append(slices.Clone(s.Locations), l)
	return l
}

// PlaceLocation creates a placeholder location at the clicked percent
// coordinates, the way the map's add mode does.
func (s *Scenario) PlaceLocation(x, y float64) Location {
	return s.AddLocation(Location{
		Name:        "New location",
		Description: "",
		NPCs:        []string{},
		X:           x,
		Y:           y,
	})
}

// UpdateLocation applies fn to the location with the given id.
func (s *Scenario) UpdateLocation(id string, fn func(*Location)) {
	out := slices.Clone(s.Locations)
	for i := range out {
		if out[i].ID == id {
			fn(&out[i])
			out[i].ID = id
		}
	}
	s.Locations = out
}

// RemoveLocation deletes the location with the given id, dangling links
// included.
func (s *Scenario) RemoveLocation(id string) {
	s.Locations = slices.DeleteFunc(slices.Clone(s.Locations), func(l Location) bool {
		return l.ID == id
	})
}

// AddItem appends i to the catalog, defaulting the category to Clue.
func (s *Scenario) AddItem(i Item) Item {
	if i.ID == "" {
		i.ID = NewID()
	}
	if !i.Category.Valid() {
		i.Category = ItemClue
	}
	s.Items = append(slices.Clone(s.Items), i)
	return i
}

// UpdateItem applies fn to the item with the given id.
func (s *Scenario) UpdateItem(id string, fn func(*Item)) {
	out := slices.Clone(s.Items)
	for i := range out {
		if out[i].ID == id {
			fn(&out[i])
			out[i].ID = id
		}
	}
	s.Items = out
}

// RemoveItem deletes the item with the given id.
func (s *Scenario) RemoveItem(id string) {
	s.Items = slices.DeleteFunc(slices.Clone(s.Items), func(i Item) bool {
		return i.ID == id
	})
}

// AddEvent appends e to the timeline, defaulting the kind to scenario.
func (s *Scenario) AddEvent(e TimelineEvent) TimelineEvent {
	if e.ID == "" {
		e.ID = NewID()
	}
	if !e.Kind.Valid() {
		e.Kind = EventScenario
	}
	s.Timeline = append(slices.Clone(s.Timeline), e)
	return e
}

// UpdateEvent applies fn to the event with the given id.
func (s *Scenario) UpdateEvent(id string, fn func(*TimelineEvent)) {
	out := slices.Clone(s.Timeline)
	for i := range out {
		if out[i].ID == id {
			fn(&out[i])
			out[i].ID = id
		}
	}
	s.Timeline = out
}

// RemoveEvent deletes the event with the given id.
func (s *Scenario) RemoveEvent(id string) {
	s.Timeline = slices.DeleteFunc(slices.Clone(s.Timeline), func(e TimelineEvent) bool {
		return e.ID == id
	})
}

// AddReference appends r to the reference shelf.
func (s *Scenario) AddReference(r ReferenceEntry) ReferenceEntry {
	if r.ID == "" {
		r.ID = NewID()
	}
	s.References = append(slices.Clone(s.References), r)
	return r
}

// RemoveReference deletes the reference with the given id.
func (s *Scenario) RemoveReference(id string) {
	s.References = slices.DeleteFunc(slices.Clone(s.References), func(r ReferenceEntry) bool {
		return r.ID == id
	})
}

// ToggleLink flips membership of targetID in the event's link list for the
// given kind: present ids are removed, absent ids are appended. Toggling
// twice restores the list exactly, append order included. Nothing checks
// that targetID resolves to a live entity.
func (s *Scenario) ToggleLink(eventID string, kind LinkKind, targetID string) {
	s.UpdateEvent(eventID, func(e *TimelineEvent) {
		var list *[]string
		switch kind {
		case LinkCharacter:
			list = &e.LinkedCharacterIDs
		case LinkLocation:
			list = &e.LinkedLocationIDs
		case LinkItem:
			list = &e.LinkedItemIDs
		default:
			return
		}
		if i := slices.Index(*list, targetID); i >= 0 {
			*list = slices.Delete(slices.Clone(*list), i, i+1)
			return
		}
		*list = append(slices.Clone(*list), targetID)
	})
}
