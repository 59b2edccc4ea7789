package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/hallwright/scenario-workbench/pkg/prompts"
	"github.com/hallwright/scenario-workbench/pkg/scenario"
)

// AuthorService turns a generation request into scenario edits: it
// builds the section prompt, calls the model, parses the JSON reply and
// merges it into a copy of the scenario. On any parse failure the
// scenario is returned untouched alongside the error, so a garbled
// model reply never corrupts the document.
type AuthorService struct {
	llm    LLMService
	logger *slog.Logger
}

func NewAuthorService(llm LLMService, logger *slog.Logger) *AuthorService {
	return &AuthorService{
		llm:    llm,
		logger: logger,
	}
}

// GenerateRequest is one call to the model on behalf of a section.
type GenerateRequest struct {
	Section prompts.Section
	Input   string
	Tone    string
	// EventID targets scene expansion; only SectionScene uses it.
	EventID string
}

// Generate runs one request against the model and returns a new
// scenario with the response merged in. The input scenario is never
// mutated.
func (a *AuthorService) Generate(ctx context.Context, s *scenario.Scenario, req GenerateRequest) (*scenario.Scenario, error) {
	if !req.Section.Valid() {
		return nil, fmt.Errorf("unknown section: %s", req.Section)
	}
	if req.Section == prompts.SectionScene && req.EventID == "" {
		return nil, fmt.Errorf("scene generation requires an event id")
	}

	prompt := prompts.ForSection(req.Section, req.Input, req.Tone, s)
	raw, err := a.llm.Generate(ctx, prompts.SystemInstruction, prompt)
	if err != nil {
		return nil, fmt.Errorf("generation failed: %w", err)
	}

	out := *s
	if err := a.merge(&out, req, raw); err != nil {
		a.logger.Warn("Discarding unparseable model response",
			"section", string(req.Section), "error", err)
		return nil, err
	}
	return &out, nil
}

func (a *AuthorService) merge(s *scenario.Scenario, req GenerateRequest, raw string) error {
	body := StripFences(raw)

	switch req.Section {
	case prompts.SectionOutline:
		var d scenario.OutlineDraft
		if err := json.Unmarshal([]byte(body), &d); err != nil {
			return fmt.Errorf("failed to parse outline response: %w", err)
		}
		s.MergeOutline(d)

	case prompts.SectionTimeline:
		drafts, err := parseOneOrMany[scenario.EventDraft](body)
		if err != nil {
			return fmt.Errorf("failed to parse timeline response: %w", err)
		}
		s.MergeEvents(drafts)

	case prompts.SectionMap:
		drafts, err := parseOneOrMany[scenario.LocationDraft](body)
		if err != nil {
			return fmt.Errorf("failed to parse location response: %w", err)
		}
		s.MergeLocations(drafts)

	case prompts.SectionCharacters:
		drafts, err := parseOneOrMany[scenario.CharacterDraft](body)
		if err != nil {
			return fmt.Errorf("failed to parse character response: %w", err)
		}
		s.MergeCharacters(drafts)

	case prompts.SectionItems:
		drafts, err := parseOneOrMany[scenario.ItemDraft](body)
		if err != nil {
			return fmt.Errorf("failed to parse item response: %w", err)
		}
		s.MergeItems(drafts)

	case prompts.SectionScene:
		var d scenario.EventDraft
		if err := json.Unmarshal([]byte(body), &d); err != nil {
			return fmt.Errorf("failed to parse scene response: %w", err)
		}
		if s.Event(req.EventID) == nil {
			return fmt.Errorf("event %s not found", req.EventID)
		}
		s.MergeScene(req.EventID, d)
	}
	return nil
}

// parseOneOrMany accepts either a JSON array of drafts or a single
// draft object. Models answer single-entity prompts with a bare object;
// auto generation answers with an array.
func parseOneOrMany[T any](body string) ([]T, error) {
	trimmed := strings.TrimSpace(body)
	if strings.HasPrefix(trimmed, "[") {
		var many []T
		if err := json.Unmarshal([]byte(trimmed), &many); err != nil {
			return nil, err
		}
		return many, nil
	}
	var one T
	if err := json.Unmarshal([]byte(trimmed), &one); err != nil {
		return nil, err
	}
	return []T{one}, nil
}

// StripFences removes a surrounding Markdown code fence from a model
// reply, tolerating a language tag after the opening backticks.
func StripFences(raw string) string {
	body := strings.TrimSpace(raw)
	if !strings.HasPrefix(body, "```") {
		return body
	}
	body = strings.TrimPrefix(body, "```")
	if idx := strings.IndexByte(body, '\n'); idx >= 0 {
		// Drop the language tag line (e.g. "json").
		first := strings.TrimSpace(body[:idx])
		if first == "" || !strings.ContainsAny(first, "{[") {
			body = body[idx+1:]
		}
	}
	body = strings.TrimSuffix(strings.TrimSpace(body), "```")
	return strings.TrimSpace(body)
}
