// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/google/uuid"
	"google.golang.org/api/option"

	"github.com/pocket-ledger/backend/internal/application/adapter"
)

// GeminiSuggester implements the SuggestionService using Google Gemini.
type GeminiSuggester struct {
	apiKey    string
	modelName string
}

// NewGeminiSuggester creates a new Gemini suggester instance.
func NewGeminiSuggester(apiKey string) *GeminiSuggester {
	return &GeminiSuggester{
		apiKey:    apiKey,
		modelName: "gemini-2.5-flash-lite",
	}
}

// IsAvailable checks if the suggester is configured with an API key.
func (s *GeminiSuggester) IsAvailable() bool {
	return s.apiKey != ""
}

// SuggestCategory proposes a category for the given transaction description.
func (s *GeminiSuggester) SuggestCategory(ctx context.Context, request *adapter.CategorySuggestionRequest) (*adapter.CategorySuggestionResult, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini suggester is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.3)
	model.ResponseMIMEType = "application/json"

	prompt := s.buildPrompt(request)

	resp, err := model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	result, err := s.parseResponse(resp)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}

	return result, nil
}

// buildPrompt creates the prompt for Gemini.
func (s *GeminiSuggester) buildPrompt(request *adapter.CategorySuggestionRequest) string {
	var sb strings.Builder

	sb.WriteString(`You are an expert at categorizing personal finance transactions. Given a transaction description and the user's existing categories, suggest the best matching category.

RULES:
- Prefer an existing category when it fits well
- When no existing category fits, propose a new one with a name, an icon from the list below, and a hex color
- The suggested category type must match the transaction type

AVAILABLE ICONS (use ONLY these exact names):
Finance: wallet, credit-card, bank, receipt, coins, piggy-bank, chart-line, dollar-sign
Food: utensils, coffee, pizza, apple, wine
Transport: car, bus, plane, train, bike, gas-pump
Home: home, bed, sofa, lamp, wrench
Entertainment: music, film, gamepad, tv, ticket
Health: heart, medical, pill, dumbbell
Education: book, graduation-cap, pencil
Shopping: shopping-bag, shopping-cart, tag, gift, percent
Utilities: bolt, wifi, phone, droplet, flame
Other: briefcase, globe, star

EXISTING CATEGORIES:
`)

	if len(request.ExistingCategories) > 0 {
		for _, cat := range request.ExistingCategories {
			sb.WriteString(fmt.Sprintf("- ID: %s, Name: %s, Type: %s, Icon: %s\n",
				cat.ID, cat.Name, cat.Type, cat.Icon))
		}
	} else {
		sb.WriteString("(no existing categories)\n")
	}

	sb.WriteString(fmt.Sprintf("\nTRANSACTION:\n- Description: %q, Type: %s\n", request.Description, request.Type))

	sb.WriteString(`
Respond with a single JSON object:
{
  "category_id": "uuid of an existing category or null",
  "new_category": { "name": "string", "icon": "string from the icon list", "color": "#XXXXXX" } or null,
  "confidence": 0.0-1.0,
  "reasoning": "brief explanation"
}

Exactly one of category_id and new_category must be set.

RESPONSE FORMAT: Return only the JSON object, no additional text.
`)

	return sb.String()
}

// geminiSuggestion represents the raw response from Gemini.
type geminiSuggestion struct {
	CategoryID  *string            `json:"category_id"`
	NewCategory *geminiNewCategory `json:"new_category"`
	Confidence  float64            `json:"confidence"`
	Reasoning   string             `json:"reasoning"`
}

type geminiNewCategory struct {
	Name  string `json:"name"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

// parseResponse parses the Gemini response into a CategorySuggestionResult.
func (s *GeminiSuggester) parseResponse(resp *genai.GenerateContentResponse) (*adapter.CategorySuggestionResult, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return nil, fmt.Errorf("empty response from gemini")
	}

	var textContent string
	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok {
			textContent = string(text)
			break
		}
	}

	if textContent == "" {
		return nil, fmt.Errorf("no text content in response")
	}

	// Strip markdown code fences if present.
	textContent = strings.TrimPrefix(textContent, "```json")
	textContent = strings.TrimPrefix(textContent, "```")
	textContent = strings.TrimSuffix(textContent, "```")
	textContent = strings.TrimSpace(textContent)

	var suggestion geminiSuggestion
	if err := json.Unmarshal([]byte(textContent), &suggestion); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w, content: %s", err, textContent)
	}

	result := &adapter.CategorySuggestionResult{
		Confidence: suggestion.Confidence,
		Reasoning:  suggestion.Reasoning,
	}

	if suggestion.CategoryID != nil && *suggestion.CategoryID != "" {
		if catID, err := uuid.Parse(*suggestion.CategoryID); err == nil {
			result.CategoryID = &catID
		}
	}
	if result.CategoryID == nil && suggestion.NewCategory != nil {
		result.NewCategory = &adapter.SuggestedNewCategory{
			Name:  suggestion.NewCategory.Name,
			Icon:  suggestion.NewCategory.Icon,
			Color: suggestion.NewCategory.Color,
		}
	}

	if result.CategoryID == nil && result.NewCategory == nil {
		return nil, fmt.Errorf("suggestion contains neither an existing nor a new category")
	}

	return result, nil
}
