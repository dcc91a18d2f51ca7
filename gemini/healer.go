// Package gemini provides a self-heal selector provider backed by Google
// Gemini. It is an injected capability: the extraction pipeline never calls
// it automatically and is fully functional without it.
package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/jkoval/driftex"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

var _ driftex.HealProvider = (*Healer)(nil)

// Healer generates replacement selector versions from a captured markup
// snippet when every configured selector has failed for a section.
type Healer struct {
	client *genai.Client
}

// NewHealer creates a new Healer.
func NewHealer(client *genai.Client) *Healer {
	return &Healer{client: client}
}

// GenerateSelectors asks the model for replacement CSS selectors for the
// failed section and returns them as a registrable selector version. The
// caller decides whether to register and activate it.
func (h *Healer) GenerateSelectors(ctx context.Context, req driftex.HealRequest) (*driftex.SelectorVersion, error) {
	if req.Section == "" {
		return nil, driftex.Errorf(driftex.EINVALID, "section name required")
	}
	if req.HTMLSnippet == "" {
		return nil, driftex.Errorf(driftex.EINVALID, "HTML snippet required")
	}

	result, err := h.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildHealPrompt(req)}},
		}},
		BuildConfig(),
	)
	if err != nil {
		return nil, err
	}
	if result == nil {
		return nil, driftex.Errorf(driftex.EINTERNAL, "gemini returned nil result")
	}

	return ParseSelectorResponse(req.Section, result.Text())
}

// BuildConfig returns the GenerateContentConfig for selector generation.
// The response is constrained to JSON so it can be parsed mechanically.
func BuildConfig() *genai.GenerateContentConfig {
	temp := float32(0.2)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are an expert at writing robust CSS selectors for semi-structured HTML. Given a markup excerpt, propose selectors that locate the described repeating items. Prefer stable attributes (ids, data attributes, ARIA roles) over decorative class names. Respond with JSON only.",
			}},
		},
		Temperature:      &temp,
		ResponseMIMEType: "application/json",
	}
}

// BuildHealPrompt builds the user prompt describing the failure.
func BuildHealPrompt(req driftex.HealRequest) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Section: %s\n", req.Section)
	if req.ExpectedShape != "" {
		fmt.Fprintf(&sb, "Expected item shape: %s\n", req.ExpectedShape)
	}
	if len(req.FailedSelectors) > 0 {
		sb.WriteString("Selectors that no longer match:\n")
		for _, sel := range req.FailedSelectors {
			fmt.Fprintf(&sb, "- %s\n", sel)
		}
	}
	sb.WriteString("\nMarkup excerpt:\n<snippet>\n")
	sb.WriteString(req.HTMLSnippet)
	sb.WriteString("\n</snippet>\n\n")
	sb.WriteString(`Respond with JSON of the form {"itemSelectors": ["...", "..."], "containerSelectors": ["..."]}, ordered from most to least specific.`)
	return sb.String()
}

// selectorResponse is the JSON shape the model is asked to produce.
type selectorResponse struct {
	ItemSelectors      []string `json:"itemSelectors"`
	ContainerSelectors []string `json:"containerSelectors"`
}

// ParseSelectorResponse parses the model response into a selector version
// covering the failed section.
func ParseSelectorResponse(section, text string) (*driftex.SelectorVersion, error) {
	text = strings.TrimSpace(text)
	// Some models wrap JSON in a fenced code block despite the MIME type.
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")

	var resp selectorResponse
	if err := json.Unmarshal([]byte(text), &resp); err != nil {
		return nil, driftex.Errorf(driftex.EINVALID, "unparseable selector response: %v", err)
	}
	if len(resp.ItemSelectors) == 0 {
		return nil, driftex.Errorf(driftex.EINVALID, "selector response contains no item selectors")
	}

	now := time.Now().UTC()
	return &driftex.SelectorVersion{
		Version:   fmt.Sprintf("heal-%s-%s", section, now.Format("20060102T150405Z")),
		UpdatedAt: now,
		Sections: map[string]driftex.SectionSelectors{
			section: {
				ItemSelectors:      resp.ItemSelectors,
				ContainerSelectors: resp.ContainerSelectors,
			},
		},
	}, nil
}
