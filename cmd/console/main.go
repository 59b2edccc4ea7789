package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/hallwright/scenario-workbench/internal/config"
	"github.com/hallwright/scenario-workbench/pkg/scenario"
)

func main() {
	configPath := getEnv("WORKBENCH_CONFIG", "workbench.yaml")
	cfg, err := config.LoadClient(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	client := &http.Client{
		Timeout: 150 * time.Second,
	}

	api := NewAPIClient(client, cfg.APIBaseURL)
	if !api.TestConnection() {
		fmt.Fprintf(os.Stderr, "Could not connect to API at %s. Please ensure the API is running.\n", cfg.APIBaseURL)
		os.Exit(1)
	}

	doc := scenario.New()
	if cfg.SaveSlot != "" {
		slot, err := api.GetSave(cfg.SaveSlot)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load save slot %q: %v\n", cfg.SaveSlot, err)
			os.Exit(1)
		}
		doc = slot.Data
	}

	p := tea.NewProgram(NewConsoleUI(cfg, api, doc),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
