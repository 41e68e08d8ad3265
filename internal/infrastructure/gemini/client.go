package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/JSharma2K/cofounded/internal/domain"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

type GeminiClient struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewGeminiClient(apiKey string) (*GeminiClient, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("gemini API key is empty")
	}

	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}

	model := client.GenerativeModel("gemini-1.5-pro")
	model.SetTemperature(0.7)

	return &GeminiClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiClient) Close() {
	c.client.Close()
}

// GenerateIntros produces a few opening messages for a fresh match, based on
// both users' domains and skills. Failures fall back to canned intros so a
// match is never blocked on the model.
func (c *GeminiClient) GenerateIntros(ctx context.Context, a, b *domain.Profile) ([]string, error) {
	prompt := fmt.Sprintf(`
		Two startup people just matched on a cofounder-matching app.
		Person A — domains: %v, skills: %v, headline: %s
		Person B — domains: %v, skills: %v, headline: %s

		Task: write 3 short, professional opening messages Person A could send
		to Person B. Reference shared domains or complementary skills.
		Output: JSON array of strings. Example: ["Hi...", "Hello..."]
	`,
		a.Domains, a.Skills, deref(a.Headline),
		b.Domains, b.Skills, deref(b.Headline),
	)

	resp, err := c.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return fallbackIntros(a, b), nil
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return fallbackIntros(a, b), nil
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}

	text := strings.TrimSpace(sb.String())
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var intros []string
	if err := json.Unmarshal([]byte(text), &intros); err != nil || len(intros) == 0 {
		return fallbackIntros(a, b), nil
	}
	return intros, nil
}

func fallbackIntros(a, b *domain.Profile) []string {
	if shared := intersect(a.Domains, b.Domains); len(shared) > 0 {
		return []string{
			fmt.Sprintf("Hey! Saw we're both into %s — would love to hear what you're building.", shared[0]),
			"Great to match! What stage are you at right now?",
		}
	}
	return []string{
		"Great to match! What are you working on at the moment?",
		"Hey! Your profile stood out — want to trade notes on what we're each building?",
	}
}

func intersect(a, b []string) []string {
	var out []string
	for _, x := range a {
		for _, y := range b {
			if x == y {
				out = append(out, x)
				break
			}
		}
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
