// Package export renders a scenario as a printable Markdown handout for
// the keeper: outline first, then the timeline grouped by kind, the
// locations, the cast dossiers, the item catalog and the ending branches.
package export

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/hallwright/scenario-workbench/pkg/scenario"
)

var titler = cases.Title(language.English)

// Markdown renders the whole scenario document. Sections with no content
// are omitted entirely, so an empty scenario exports as just its title.
func Markdown(s *scenario.Scenario) string {
	var b strings.Builder

	title := s.Outline.Title
	if title == "" {
		title = "Untitled Scenario"
	}
	fmt.Fprintf(&b, "# %s\n\n", title)

	writeOutline(&b, s.Outline)

	background := eventsOfKind(s, scenario.EventBackground)
	scenes := eventsOfKind(s, scenario.EventScenario)
	endings := eventsOfKind(s, scenario.EventEnding)

	if len(background) > 0 {
		b.WriteString("## Background Timeline\n\n")
		for _, e := range background {
			writeBackgroundEvent(&b, s, e)
		}
	}
	if len(scenes) > 0 {
		b.WriteString("## Scenes\n\n")
		for _, e := range scenes {
			writeScene(&b, s, e)
		}
	}
	if len(s.Locations) > 0 {
		b.WriteString("## Locations\n\n")
		for i := range s.Locations {
			writeLocation(&b, &s.Locations[i])
		}
	}
	if len(s.Characters) > 0 {
		b.WriteString("## Cast\n\n")
		for i := range s.Characters {
			writeCharacter(&b, &s.Characters[i])
		}
	}
	if len(s.Items) > 0 {
		b.WriteString("## Items\n\n")
		for i := range s.Items {
			writeItem(&b, &s.Items[i])
		}
	}
	if len(endings) > 0 {
		b.WriteString("## Endings\n\n")
		for _, e := range endings {
			writeEnding(&b, e)
		}
	}
	if len(s.References) > 0 {
		b.WriteString("## References\n\n")
		for _, r := range s.References {
			if r.URL != "" {
				fmt.Fprintf(&b, "- [%s](%s)", r.Title, r.URL)
			} else {
				fmt.Fprintf(&b, "- %s", r.Title)
			}
			if r.Note != "" {
				fmt.Fprintf(&b, " — %s", r.Note)
			}
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}

	return b.String()
}

func writeOutline(b *strings.Builder, o scenario.Outline) {
	b.WriteString("## Outline\n\n")
	if o.Template != "" {
		fmt.Fprintf(b, "**Structure:** %s  \n", templateLabel(o.Template))
	}
	if o.Era != "" {
		fmt.Fprintf(b, "**Era:** %s  \n", o.Era)
	}
	b.WriteByte('\n')
	field(b, "Player Briefing", o.PlayerInfo)
	field(b, "The Truth", o.Truth)
	field(b, "Act One", o.Act1)
	field(b, "Act Two", o.Act2)
	field(b, "Act Three", o.Act3)
	field(b, "Act Four", o.Act4)
	field(b, "Keeper FAQ", o.FAQ)
}

func writeBackgroundEvent(b *strings.Builder, s *scenario.Scenario, e *scenario.TimelineEvent) {
	fmt.Fprintf(b, "### %s", e.Title)
	if e.Date != "" {
		fmt.Fprintf(b, " (%s)", e.Date)
	}
	b.WriteString("\n\n")
	if e.Content != "" {
		fmt.Fprintf(b, "%s\n\n", e.Content)
	}
	inline(b, "Where", e.EventLocation)
	inline(b, "Who", e.EventPeople)
	inline(b, "Outcome", e.EventResults)
	inline(b, "Obtainable clues", e.ObtainableClues)
	writeLinks(b, s, e)
	b.WriteByte('\n')
}

func writeScene(b *strings.Builder, s *scenario.Scenario, e *scenario.TimelineEvent) {
	fmt.Fprintf(b, "### %s", e.Title)
	if e.Date != "" {
		fmt.Fprintf(b, " (%s)", e.Date)
	}
	if e.IsInterventionPoint {
		b.WriteString(" ⚑")
	}
	b.WriteString("\n\n")
	if e.Content != "" {
		fmt.Fprintf(b, "%s\n\n", e.Content)
	}
	field(b, "Prerequisites", e.Prerequisites)
	field(b, "Read Aloud", blockquote(e.ReadAloud))
	field(b, "Details", e.SceneDetails)
	field(b, "Flow", e.SceneFlow)
	field(b, "Objective", e.SceneObjective)

	if len(e.SkillChecks) > 0 {
		b.WriteString("**Skill Checks**\n\n")
		b.WriteString("| Skill | Difficulty | Success | Failure |\n")
		b.WriteString("| --- | --- | --- | --- |\n")
		for _, c := range e.SkillChecks {
			fmt.Fprintf(b, "| %s | %s | %s | %s |\n",
				cell(c.Skill), cell(c.Difficulty), cell(c.Success), cell(c.Failure))
		}
		b.WriteByte('\n')
	}
	writeLinks(b, s, e)
	b.WriteByte('\n')
}

func writeEnding(b *strings.Builder, e *scenario.TimelineEvent) {
	fmt.Fprintf(b, "### %s\n\n", e.Title)
	inline(b, "Condition", e.EndingCondition)
	if e.EndingDescription != "" {
		fmt.Fprintf(b, "%s\n", e.EndingDescription)
	} else if e.Content != "" {
		fmt.Fprintf(b, "%s\n", e.Content)
	}
	b.WriteByte('\n')
}

func writeLocation(b *strings.Builder, l *scenario.Location) {
	fmt.Fprintf(b, "### %s\n\n", l.Name)
	if l.Description != "" {
		fmt.Fprintf(b, "%s\n\n", l.Description)
	}
	if len(l.NPCs) > 0 {
		fmt.Fprintf(b, "**Present:** %s\n\n", strings.Join(l.NPCs, ", "))
	}
}

func writeCharacter(b *strings.Builder, c *scenario.Character) {
	fmt.Fprintf(b, "### %s\n\n", c.Name)
	inline(b, "Age", c.Age)
	inline(b, "Occupation", c.Occupation)
	inline(b, "Personality", c.Personality)
	inline(b, "Belief", c.Belief)
	inline(b, "Goal", c.Goal)
	inline(b, "Action Style", c.ActionStyle)
	inline(b, "Skills", c.Skills)
	field(b, "Description", c.Description)
	field(b, "Backstory", c.Backstory)
	field(b, "Secret", c.Secret)
}

func writeItem(b *strings.Builder, it *scenario.Item) {
	fmt.Fprintf(b, "### %s", it.Name)
	if it.Category != "" {
		fmt.Fprintf(b, " _(%s)_", it.Category)
	}
	b.WriteString("\n\n")
	if it.Description != "" {
		fmt.Fprintf(b, "%s\n\n", it.Description)
	}
	inline(b, "Attributes", it.Attributes)
	inline(b, "Owner", it.Owner)
	inline(b, "Found at", it.FoundLocation)
}

// writeLinks resolves an event's link lists to names. Ids with no
// matching entity are skipped, mirroring the clue wall.
func writeLinks(b *strings.Builder, s *scenario.Scenario, e *scenario.TimelineEvent) {
	var names []string
	for _, id := range e.LinkedCharacterIDs {
		if c := s.Character(id); c != nil {
			names = append(names, c.Name)
		}
	}
	for _, id := range e.LinkedLocationIDs {
		if l := s.Location(id); l != nil {
			names = append(names, l.Name)
		}
	}
	for _, id := range e.LinkedItemIDs {
		if it := s.Item(id); it != nil {
			names = append(names, it.Name)
		}
	}
	if len(names) > 0 {
		fmt.Fprintf(b, "**Connected:** %s\n", strings.Join(names, ", "))
	}
}

func eventsOfKind(s *scenario.Scenario, kind scenario.EventKind) []*scenario.TimelineEvent {
	var out []*scenario.TimelineEvent
	for i := range s.Timeline {
		if s.Timeline[i].Kind == kind {
			out = append(out, &s.Timeline[i])
		}
	}
	return out
}

// templateLabel turns a template slug into a display name.
func templateLabel(t scenario.OutlineTemplate) string {
	return titler.String(strings.ReplaceAll(string(t), "_", " "))
}

func field(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "**%s**\n\n%s\n\n", label, value)
}

func inline(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	fmt.Fprintf(b, "**%s:** %s  \n", label, value)
}

func blockquote(s string) string {
	if s == "" {
		return ""
	}
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "> " + l
	}
	return strings.Join(lines, "\n")
}

// cell escapes a value for use inside a Markdown table row.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}
