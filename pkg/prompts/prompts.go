// Package prompts builds the instructions sent to the language model.
// Each workbench section has its own prompt shape; the JSON schemas in
// the prompt bodies must stay in lockstep with the draft types in
// pkg/scenario, since responses are parsed straight into them.
package prompts

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/hallwright/scenario-workbench/pkg/scenario"
)

// SystemInstruction sets the writing persona for every generation call.
const SystemInstruction = `You are a so-called "psychic detective" and pulp-fiction author living in 1920s New York, assisting a Keeper in writing a Call of Cthulhu tabletop scenario.
Style: H.P. Lovecraft's cosmic horror, film-noir hardboiled tone, and a New Yorker streak of dry sarcasm.

Instructions:
1. Generate the specific scenario content the user asks for.
2. Return data as pure JSON wherever possible so the tool can fill the record cards directly.
3. If JSON is impossible, use cleanly structured Markdown.
4. Keep proper nouns and game terms in English.`

// Section names the part of the workbench a generation request targets.
type Section string

const (
	SectionOutline    Section = "outline"
	SectionTimeline   Section = "timeline"
	SectionMap        Section = "map"
	SectionCharacters Section = "characters"
	SectionItems      Section = "items"
	SectionScene      Section = "scene"
)

// Valid reports whether s is a known section.
func (s Section) Valid() bool {
	switch s {
	case SectionOutline, SectionTimeline, SectionMap, SectionCharacters, SectionItems, SectionScene:
		return true
	}
	return false
}

// AutoCreate and AutoUpdate are sentinel inputs: when the user input
// contains one, the section prompt switches from "make one of these"
// to "derive the whole section from the outline".
const (
	AutoCreate = "AUTO_CREATE"
	AutoUpdate = "AUTO_UPDATE"
)

// outlineContext is the slice of the scenario handed to the model as
// grounding for section-level auto generation.
type outlineContext struct {
	Title    string                   `json:"title"`
	Template scenario.OutlineTemplate `json:"template"`
	Truth    string                   `json:"truth"`
	Summary  string                   `json:"summary"`
}

func contextJSON(s *scenario.Scenario) string {
	if s == nil {
		return ""
	}
	ctx := outlineContext{
		Title:    s.Outline.Title,
		Template: s.Outline.Template,
		Truth:    s.Outline.Truth,
		Summary:  strings.TrimSpace(s.Outline.Act1 + " " + s.Outline.Act2 + " " + s.Outline.Act3),
	}
	raw, err := json.Marshal(ctx)
	if err != nil {
		return ""
	}
	return string(raw)
}

// ForSection returns the full user prompt for one generation request.
// tone is appended as a style directive when non-empty. The scenario may
// be nil for sections that do not need grounding context.
func ForSection(section Section, input, tone string, s *scenario.Scenario) string {
	prompt := sectionPrompt(section, input, s)
	if tone != "" {
		prompt += fmt.Sprintf("\n\nAdditional style requirement:\n- Tone: %s", tone)
	}
	return prompt
}

func sectionPrompt(section Section, input string, s *scenario.Scenario) string {
	ctx := contextJSON(s)
	switch section {
	case SectionOutline:
		template := scenario.TemplateThreeAct
		if s != nil && s.Outline.Template != "" {
			template = s.Outline.Template
		}
		return fmt.Sprintf(`Using the structural template %q, draft a Call of Cthulhu scenario outline from this inspiration:
%q

Return strictly as pure JSON with this structure:
{
  "title": "scenario title",
  "truth": "the core truth (Keeper only)",
  "act1": "part one",
  "act2": "part two",
  "act3": "part three",
  "act4": "part four (optional)",
  "faq": "Keeper FAQ: list 3-5 awkward questions or unexpected player actions with suggested handling"
}`, template, input)

	case SectionTimeline:
		if strings.Contains(input, AutoUpdate) {
			return fmt.Sprintf(`Based on the outline: %s

Derive the full timeline, covering:
1. Background conspiracy events that happen before the investigators arrive.
2. The expected flow of play: the key beats after the investigators arrive.
3. Ending branches: design at least 3 (for example Good End, Bad End, True End).

Return strictly as a pure JSON array. Endings must carry type="ending" and an endingCondition field:
[
  {
    "date": "10 years ago / 192X",
    "title": "Background: the cult is born",
    "content": "summary",
    "type": "background",
    "eventLocation": "where",
    "eventPeople": "key figures",
    "eventResults": "directly caused... indirectly led to...",
    "obtainableClues": "related clues or items"
  },
  {
    "date": "as play begins",
    "title": "The investigators arrive",
    "content": "intervention point",
    "type": "scenario",
    "isInterventionPoint": true
  },
  {
    "date": "the first night",
    "title": "First attack",
    "content": "summary",
    "type": "scenario",
    "prerequisites": "trigger condition",
    "readAloud": "read-aloud description...",
    "sceneDetails": "detailed script...",
    "sceneFlow": "1. find the body -> 2. Spot Hidden -> 3. encounter",
    "sceneObjective": "obtain the key diary"
  },
  {
    "date": "ending",
    "title": "Ending A: everyone lives",
    "content": "the investigators stop the ritual...",
    "type": "ending",
    "endingCondition": "destroy the altar before midnight...",
    "endingDescription": "a detailed account of the escape and its aftermath..."
  }
]`, ctx)
		}
		return fmt.Sprintf(`Design one timeline event: %q
Return JSON, choosing fields by whether this is a background event or a playable scene:
{
  "date": "when",
  "title": "title",
  "content": "summary",
  "type": "background" or "scenario",
  "eventLocation": "...",
  "eventResults": "...",
  "obtainableClues": "...",
  "prerequisites": "...",
  "readAloud": "...",
  "sceneDetails": "...",
  "sceneFlow": "...",
  "sceneObjective": "..."
}`, input)

	case SectionMap:
		if strings.Contains(input, AutoCreate) {
			return fmt.Sprintf(`Based on the outline: %s
Design 5-8 key locations.
Return a JSON array:
[{ "name": "...", "x": 20, "y": 30, "description": "...", "npcs": ["..."] }]`, ctx)
		}
		return fmt.Sprintf(`Design one location %q. Return JSON: { "name": "...", "x": 50, "y": 50, "description": "...", "npcs": [] }`, input)

	case SectionCharacters:
		if strings.Contains(input, AutoCreate) {
			return fmt.Sprintf(`Based on the outline: %s
Design the full cast. Create at least 8-10 characters, and make sure to include:
1. Allies and informants
2. Villains and cultists
3. Victims
4. Key witnesses
5. NPCs with a special function

Return a JSON array:
[{ "name": "...", "age": "...", "occupation": "...", "description": "...", "personality": "...", "belief": "...", "backstory": "...", "goal": "...", "actionStyle": "...", "skills": "...", "secret": "..." }]`, ctx)
		}
		return fmt.Sprintf(`Design a character %q. Return a JSON object with fields: name, age, occupation, description, personality, belief, backstory, goal, actionStyle, skills, secret.`, input)

	case SectionItems:
		if strings.Contains(input, AutoCreate) {
			return fmt.Sprintf(`Based on the outline: %s
Design the key items, covering a varied spread of categories.
Generate at least 10 items spanning:
- Clue (clues, notes, residue)
- Weapon
- Tool (tools and equipment)
- Artifact (relics and magical objects)
- Document (books, diaries, papers)

Return a JSON array:
[{ "name": "...", "type": "Clue" or "Weapon" or "Tool" or "Artifact" or "Document", "description": "...", "attributes": "...", "owner": "...", "foundLocation": "..." }]`, ctx)
		}
		return fmt.Sprintf(`Design an item %q. Return a JSON object with fields: name, type, description, attributes, owner, foundLocation.`, input)

	case SectionScene:
		return fmt.Sprintf(`Expand the scene %q.

If this is a background event, return JSON:
{
   "type": "background",
   "eventLocation": "...",
   "eventPeople": "...",
   "eventResults": "direct result... indirect result...",
   "obtainableClues": "..."
}

If this is a playable scene, return JSON:
{
   "type": "scenario",
   "prerequisites": "trigger condition...",
   "readAloud": "read-aloud text...",
   "sceneDetails": "detailed script...",
   "sceneFlow": "flow steps...",
   "sceneObjective": "scene objective..."
}`, input)
	}
	return input
}
