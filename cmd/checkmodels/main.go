// Command checkmodels is a standalone diagnostic that lists the Gemini
// models available to the configured API key that support content
// generation.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"google.golang.org/genai"

	"github.com/eshu1234m/resume-analyzer-app/internal/shared/config"
)

func main() {
	cfg := config.Load()
	if cfg.GeminiAPIKey == "" {
		log.Fatal("GEMINI_API_KEY is not set")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		log.Fatalf("create genai client: %v", err)
	}

	fmt.Println("Searching for models supporting generateContent...")

	found := 0
	page, err := client.Models.List(ctx, nil)
	for err == nil {
		for _, model := range page.Items {
			if supportsGeneration(model) {
				fmt.Printf("  -> %s\n", model.Name)
				found++
			}
		}
		page, err = page.Next(ctx)
	}
	if !errors.Is(err, genai.ErrPageDone) {
		log.Fatalf("list models: %v", err)
	}

	if found == 0 {
		log.Fatal("no models supporting generateContent were found for this API key")
	}
	fmt.Printf("Found %d usable model(s).\n", found)
}

func supportsGeneration(model *genai.Model) bool {
	if model == nil {
		return false
	}
	for _, action := range model.SupportedActions {
		if action == "generateContent" {
			return true
		}
	}
	return false
}
