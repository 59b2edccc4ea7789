package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/hallwright/scenario-workbench/internal/storage"
	"github.com/hallwright/scenario-workbench/pkg/prompts"
	"github.com/hallwright/scenario-workbench/pkg/scenario"
)

// APIClient wraps the workbench HTTP API for the console.
type APIClient struct {
	client  *http.Client
	baseURL string
}

func NewAPIClient(client *http.Client, baseURL string) *APIClient {
	return &APIClient{
		client:  client,
		baseURL: baseURL,
	}
}

// TestConnection checks the API is reachable. A degraded health status
// still counts as reachable; the console can work without the model.
func (a *APIClient) TestConnection() bool {
	resp, err := a.client.Get(a.baseURL + "/health")
	if err != nil {
		return false
	}
	defer func() { _ = resp.Body.Close() }()
	return resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusServiceUnavailable
}

func (a *APIClient) ListSaves() ([]storage.SlotInfo, error) {
	resp, err := a.client.Get(a.baseURL + "/v1/saves/")
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var infos []storage.SlotInfo
	if err := json.NewDecoder(resp.Body).Decode(&infos); err != nil {
		return nil, fmt.Errorf("failed to decode slot list: %w", err)
	}
	return infos, nil
}

func (a *APIClient) GetSave(id string) (*storage.SaveSlot, error) {
	resp, err := a.client.Get(a.baseURL + "/v1/saves/" + id)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var slot storage.SaveSlot
	if err := json.NewDecoder(resp.Body).Decode(&slot); err != nil {
		return nil, fmt.Errorf("failed to decode save slot: %w", err)
	}
	return &slot, nil
}

func (a *APIClient) PutSave(id, name string, doc *scenario.Scenario) error {
	body, err := json.Marshal(map[string]any{
		"name": name,
		"data": doc,
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPut, a.baseURL+"/v1/saves/"+id, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return apiError(resp)
	}
	return nil
}

// Generate runs one model call and returns the merged document.
func (a *APIClient) Generate(doc *scenario.Scenario, section prompts.Section, input, tone, eventID string) (*scenario.Scenario, error) {
	body, err := json.Marshal(map[string]any{
		"section":  section,
		"input":    input,
		"tone":     tone,
		"event_id": eventID,
		"scenario": doc,
	})
	if err != nil {
		return nil, err
	}

	resp, err := a.client.Post(a.baseURL+"/v1/generate", "application/json", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, apiError(resp)
	}

	var result struct {
		Scenario *scenario.Scenario `json:"scenario"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode generation response: %w", err)
	}
	return result.Scenario, nil
}

// ExportMarkdown renders the document server-side and returns Markdown.
func (a *APIClient) ExportMarkdown(doc *scenario.Scenario) (string, error) {
	body, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}

	resp, err := a.client.Post(a.baseURL+"/v1/export", "application/json", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return "", apiError(resp)
	}

	md, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	return string(md), nil
}

func apiError(resp *http.Response) error {
	body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
	msg := string(bytes.TrimSpace(body))
	if msg == "" {
		msg = resp.Status
	}
	return fmt.Errorf("api error (%d): %s", resp.StatusCode, msg)
}
