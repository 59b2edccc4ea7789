package export

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hallwright/scenario-workbench/pkg/scenario"
)

func sample() *scenario.Scenario {
	s := scenario.New()
	s.Outline.Title = "The Lighthouse Affair"
	s.Outline.Era = "1925, Maine"
	s.Outline.Truth = "The keeper drowned years ago."
	s.Outline.Act1 = "Arrival at the village."

	s.Characters = []scenario.Character{{
		ID: "c1", Name: "Abigail Crane", Occupation: "Librarian",
		Secret: "She forged the logbook.",
	}}
	s.Locations = []scenario.Location{{
		ID: "l1", Name: "The Lighthouse", Description: "Salt-stained and dark.",
		NPCs: []string{"Abigail Crane"},
	}}
	s.Items = []scenario.Item{{
		ID: "i1", Name: "Brass Key", Category: scenario.ItemClue, Owner: "Abigail",
	}}
	s.Timeline = []scenario.TimelineEvent{
		{
			ID: "e1", Title: "The Drowning", Date: "1898", Kind: scenario.EventBackground,
			EventResults: "The keeper vanished.",
		},
		{
			ID: "e2", Title: "First Night", Kind: scenario.EventScenario,
			ReadAloud:          "The lamp goes out.",
			LinkedCharacterIDs: []string{"c1", "missing-id"},
			LinkedItemIDs:      []string{"i1"},
			SkillChecks: []scenario.SkillCheck{
				{Skill: "Spot Hidden", Difficulty: scenario.DifficultyHard, Success: "Finds the key", Failure: "Nothing"},
			},
		},
		{
			ID: "e3", Title: "The Tide Takes All", Kind: scenario.EventEnding,
			EndingCondition:   "Investigators stay past midnight",
			EndingDescription: "The sea claims the tower.",
		},
	}
	return s
}

func TestMarkdownSections(t *testing.T) {
	md := Markdown(sample())

	assert.True(t, strings.HasPrefix(md, "# The Lighthouse Affair\n"))
	for _, heading := range []string{
		"## Outline", "## Background Timeline", "## Scenes",
		"## Locations", "## Cast", "## Items", "## Endings",
	} {
		assert.Contains(t, md, heading+"\n")
	}

	// Headings carry the entity titles.
	assert.Contains(t, md, "### The Drowning (1898)")
	assert.Contains(t, md, "### First Night")
	assert.Contains(t, md, "### Abigail Crane")
	assert.Contains(t, md, "### Brass Key _(Clue)_")

	// Ending body and condition.
	assert.Contains(t, md, "**Condition:** Investigators stay past midnight")
	assert.Contains(t, md, "The sea claims the tower.")
}

func TestMarkdownResolvesLinksByName(t *testing.T) {
	md := Markdown(sample())
	assert.Contains(t, md, "**Connected:** Abigail Crane, Brass Key")
	assert.NotContains(t, md, "missing-id")
}

func TestMarkdownSkillCheckTable(t *testing.T) {
	md := Markdown(sample())
	assert.Contains(t, md, "| Skill | Difficulty | Success | Failure |")
	assert.Contains(t, md, "| Spot Hidden | Hard | Finds the key | Nothing |")
}

func TestMarkdownReadAloudIsQuoted(t *testing.T) {
	md := Markdown(sample())
	assert.Contains(t, md, "> The lamp goes out.")
}

func TestMarkdownTemplateLabel(t *testing.T) {
	md := Markdown(sample())
	assert.Contains(t, md, "**Structure:** Three Act")
}

func TestMarkdownEmptyScenario(t *testing.T) {
	md := Markdown(scenario.New())
	assert.True(t, strings.HasPrefix(md, "# Untitled Scenario\n"))
	assert.NotContains(t, md, "## Scenes")
	assert.NotContains(t, md, "## Cast")
}

func TestMarkdownEscapesTableCells(t *testing.T) {
	s := scenario.New()
	s.Timeline = []scenario.TimelineEvent{{
		ID: "e1", Title: "Pipes", Kind: scenario.EventScenario,
		SkillChecks: []scenario.SkillCheck{{Skill: "A|B", Difficulty: "Regular", Success: "line\nbreak", Failure: "-"}},
	}}
	md := Markdown(s)
	assert.Contains(t, md, `A\|B`)
	assert.Contains(t, md, "line break")
}
