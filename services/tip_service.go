// services/tip_service.go
package services

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"google.golang.org/genai"
)

const defaultTipModel = "gemini-3-flash-preview"

const tipSystemInstruction = "Du bist ein lokaler Premium-Insider. Fass dich extrem kurz " +
	"und nenne einen konkreten Ort oder eine Aktivität, die nicht offensichtlich ist."

// TipService generates short local insider tips via the Gemini API.
type TipService struct {
	client *genai.Client
	model  string
}

// NewTipService creates the service from GEMINI_API_KEY / GEMINI_MODEL.
// Returns an error when no API key is configured.
func NewTipService(ctx context.Context) (*TipService, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = defaultTipModel
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &TipService{
		client: client,
		model:  model,
	}, nil
}

// The German prompt names Bamberg directly; only the English variant
// interpolates the requested city.
func tipPrompt(city, lang string) string {
	if lang == "en" {
		return fmt.Sprintf("Exclusive short tip for %s (secret). Max 15 words.", city)
	}
	return "Exklusiver Kurz-Tipp für Bamberg (Geheimtipp). Max 15 Wörter."
}

// GetLocalTip returns a one-liner insider tip for the given city.
// Failures are logged and surface as an empty tip, never as a 5xx.
func (s *TipService) GetLocalTip(ctx context.Context, city, lang string) string {
	if city == "" {
		city = "Bamberg"
	}

	resp, err := s.client.Models.GenerateContent(ctx,
		s.model,
		genai.Text(tipPrompt(city, lang)),
		&genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(tipSystemInstruction, genai.RoleUser),
		},
	)
	if err != nil {
		logrus.WithError(err).WithField("city", city).Warn("gemini tip request failed")
		return ""
	}

	return strings.TrimSpace(resp.Text())
}
