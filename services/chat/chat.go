// Package chat implements the site chat widget responder: a keyword
// lookup over a small knowledge base with a fixed fallback pointing the
// visitor at the booking page.
package chat

import (
	"context"
	"fmt"
	"os"
	"strings"

	"google.golang.org/genai"
)

type entry struct {
	keywords []string
	answer   string
}

var knowledge = []entry{
	{
		keywords: []string{"service", "what do you do", "offer"},
		answer:   "We plan, design and run social media campaigns across Instagram, Facebook, YouTube and more. We handle content, ads, analytics and growth.",
	},
	{
		keywords: []string{"property", "real estate"},
		answer:   "We specialize in campaigns for property sellers: lead-gen ads, virtual tours, and content that converts inquiries into site visits.",
	},
	{
		keywords: []string{"price", "cost", "pricing"},
		answer:   "Pricing depends on scope. Most engagements start at monthly retainers with clear KPIs. Share your goals on the Booking page for a tailored quote.",
	},
	{
		keywords: []string{"portfolio", "work", "case study"},
		answer:   "Explore our recent images and a showreel on the Portfolio page.",
	},
	{
		keywords: []string{"book", "meeting", "contact", "reservation"},
		answer:   "You can book a slot on our Booking page. We'll confirm within 24 hours.",
	},
}

// Fallback is returned when no knowledge-base keyword matches.
const Fallback = "I can help with services, pricing, portfolio and booking. For complex queries, please share details on the Booking page and a strategist will respond quickly."

// Reply returns the answer for the first knowledge-base entry with a
// substring keyword hit in input (case-insensitive), or Fallback.
// Deterministic and stateless.
func Reply(input string) string {
	text := strings.ToLower(input)
	for _, e := range knowledge {
		for _, kw := range e.keywords {
			if strings.Contains(text, kw) {
				return e.answer
			}
		}
	}
	return Fallback
}

// Matched reports whether input hits any knowledge-base keyword.
func Matched(input string) bool {
	return Reply(input) != Fallback
}

// AssistReply asks Gemini for an answer when the knowledge base has none.
// Only used when GEMINI_API_KEY is configured; any failure falls back to
// the fixed string so the widget never errors.
func AssistReply(ctx context.Context, input string) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY not set")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}

	prompt := "You are the assistant on a social-media-marketing agency website. " +
		"Answer the visitor's question in at most three sentences. If the question " +
		"is about hiring the agency, direct them to the Booking page.\n\nQuestion: " + input

	result, err := client.Models.GenerateContent(
		ctx,
		"gemini-2.5-flash-lite",
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		&genai.GenerateContentConfig{
			Temperature: genai.Ptr(float32(0.3)),
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate reply: %w", err)
	}

	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	text := strings.TrimSpace(result.Candidates[0].Content.Parts[0].Text)
	if text == "" {
		return "", fmt.Errorf("empty reply")
	}
	return text, nil
}
