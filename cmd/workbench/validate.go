package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/hallwright/scenario-workbench/pkg/scenario"
)

var validateCommand = &cli.Command{
	Name:      "validate",
	Usage:     "Check a scenario JSON file for structural problems",
	ArgsUsage: "<scenario.json>",
	Flags: []cli.Flag{
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Treat warnings (dangling links, unplaced cards) as errors",
		},
	},
	Action: runValidate,
}

func runValidate(ctx context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("scenario file argument is required")
	}

	v := &documentValidator{}
	if err := v.validateFile(path); err != nil {
		return err
	}

	for _, w := range v.warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	if cmd.Bool("strict") && len(v.warnings) > 0 {
		return fmt.Errorf("%d warning(s) in strict mode", len(v.warnings))
	}

	fmt.Printf("%s is valid\n", filepath.Base(path))
	return nil
}

type documentValidator struct {
	errors   []string
	warnings []string
}

func (v *documentValidator) validateFile(path string) error {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, ".json") {
		return fmt.Errorf("scenario file must have .json extension: %s", base)
	}
	if !isValidDocFilename(strings.TrimSuffix(base, ".json")) {
		return fmt.Errorf("scenario filename %q must be lowercase snake_case (e.g. harbor_lights.json)", base)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}

	dec := json.NewDecoder(strings.NewReader(string(data)))
	dec.DisallowUnknownFields()
	var doc scenario.Scenario
	if err := dec.Decode(&doc); err != nil {
		return fmt.Errorf("file %s failed strict JSON unmarshaling: %w", path, err)
	}

	v.validateDocument(&doc)

	if len(v.errors) > 0 {
		return fmt.Errorf("validation errors in %s:\n%s", base, strings.Join(v.errors, "\n"))
	}
	return nil
}

func (v *documentValidator) validateDocument(doc *scenario.Scenario) {
	if doc.Outline.Template != "" && !doc.Outline.Template.Valid() {
		v.addError(fmt.Sprintf("outline template %q is not a known template", doc.Outline.Template))
	}
	if doc.MapStyle != "" && !doc.MapStyle.Valid() {
		v.addError(fmt.Sprintf("map style %q is not a known style", doc.MapStyle))
	}

	known := map[string]bool{}
	register := func(kind, id string) {
		if id == "" {
			v.addError(fmt.Sprintf("%s with empty id", kind))
			return
		}
		if known[id] {
			v.addError(fmt.Sprintf("duplicate id %q (%s)", id, kind))
		}
		known[id] = true
	}

	for i := range doc.Characters {
		c := &doc.Characters[i]
		register("character", c.ID)
		v.checkCard(fmt.Sprintf("character %q", c.ID), c.BoardX, c.BoardY)
	}
	for i := range doc.Locations {
		l := &doc.Locations[i]
		register("location", l.ID)
		v.checkPercent(fmt.Sprintf("location %q x", l.ID), l.X)
		v.checkPercent(fmt.Sprintf("location %q y", l.ID), l.Y)
	}
	for i := range doc.Items {
		it := &doc.Items[i]
		register("item", it.ID)
		if it.Category != "" && !it.Category.Valid() {
			v.addError(fmt.Sprintf("item %q has unknown category %q", it.ID, it.Category))
		}
		v.checkCard(fmt.Sprintf("item %q", it.ID), it.BoardX, it.BoardY)
	}
	for i := range doc.References {
		register("reference", doc.References[i].ID)
	}

	for i := range doc.Timeline {
		e := &doc.Timeline[i]
		register("event", e.ID)
		v.validateEvent(e)
	}

	// Link targets are resolved after every id is registered, so forward
	// references within the document are fine.
	for i := range doc.Timeline {
		e := &doc.Timeline[i]
		for _, kind := range []scenario.LinkKind{scenario.LinkCharacter, scenario.LinkLocation, scenario.LinkItem} {
			for _, id := range e.Links(kind) {
				if !known[id] {
					v.addWarning(fmt.Sprintf("event %q links %s id %q which does not exist", e.ID, kind, id))
				}
			}
		}
	}
}

func (v *documentValidator) validateEvent(e *scenario.TimelineEvent) {
	if e.Kind != "" && !e.Kind.Valid() {
		v.addError(fmt.Sprintf("event %q has unknown kind %q", e.ID, e.Kind))
	}
	if e.Kind == scenario.EventEnding && e.EndingCondition == "" {
		v.addWarning(fmt.Sprintf("ending event %q has no ending condition", e.ID))
	}
	for i, sc := range e.SkillChecks {
		switch sc.Difficulty {
		case "", scenario.DifficultyRegular, scenario.DifficultyHard, scenario.DifficultyExtreme:
		default:
			v.addError(fmt.Sprintf("event %q skill check %d has unknown difficulty %q", e.ID, i, sc.Difficulty))
		}
		if sc.Skill == "" {
			v.addError(fmt.Sprintf("event %q skill check %d has no skill name", e.ID, i))
		}
	}
	v.checkCard(fmt.Sprintf("event %q", e.ID), e.BoardX, e.BoardY)
}

func (v *documentValidator) checkCard(what string, x, y *float64) {
	if x == nil && y == nil {
		return
	}
	if x == nil || y == nil {
		v.addWarning(fmt.Sprintf("%s has only one board coordinate set", what))
		return
	}
	v.checkPercent(what+" board_x", *x)
	v.checkPercent(what+" board_y", *y)
}

func (v *documentValidator) checkPercent(what string, val float64) {
	if val < 0 || val > 100 {
		v.addError(fmt.Sprintf("%s is %.2f, outside [0,100]", what, val))
	}
}

func (v *documentValidator) addError(msg string) {
	v.errors = append(v.errors, "  - "+msg)
}

func (v *documentValidator) addWarning(msg string) {
	v.warnings = append(v.warnings, msg)
}

var validDocFilenameRegex = regexp.MustCompile(`^[a-z][a-z0-9_]*[a-z0-9]$|^[a-z]$`)

func isValidDocFilename(name string) bool {
	// A 'draft.' prefix marks work-in-progress documents.
	name = strings.TrimPrefix(name, "draft.")
	return validDocFilenameRegex.MatchString(name)
}
