package enhance

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"strings"

	"google.golang.org/genai"

	"quickblog/apperr"
	"quickblog/logger"
)

const (
	ModeGrammar = "grammar"
	ModeFull    = "full_enhance"

	// MinInputRunes rejects inputs too short to be worth a model call.
	MinInputRunes = 30
)

const grammarPrompt = `Correct only the grammatical errors and spelling mistakes in the following text. Do not change the wording, style, or meaning otherwise. Return only the corrected text, without any introductory phrases like "Here's the corrected text:":

%q`

const fullEnhancePrompt = `You are a professional blog post editor. Review the following blog post content. Correct any grammatical errors and spelling mistakes. Enhance the text for clarity, flow, readability, and engagement, while preserving the original author's core message and voice. Return only the enhanced text, without any introductory phrases:

%q`

// Enhancer is the process-wide generative-text handle. It is constructed
// once at startup; when the API credential is absent the client stays nil
// and every call fails fast with 503 instead of crashing on first use.
type Enhancer struct {
	client *genai.Client
	model  string
}

func New(ctx context.Context, model string) *Enhancer {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		logger.Log.Warn("GEMINI_API_KEY is not set; text enhancement is disabled")
		return &Enhancer{model: model}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: apiKey})
	if err != nil {
		logger.Log.Errorf("failed to initialize genai client: %v", err)
		return &Enhancer{model: model}
	}
	return &Enhancer{client: client, model: model}
}

// NewDisabled returns an Enhancer with no client, for tests.
func NewDisabled(model string) *Enhancer {
	return &Enhancer{model: model}
}

func (e *Enhancer) Available() bool { return e.client != nil }

// Enhance runs the selected enhancement mode over the text and returns the
// rewritten result.
func (e *Enhancer) Enhance(ctx context.Context, text, mode string) (string, error) {
	if strings.TrimSpace(text) == "" || mode == "" {
		return "", apperr.BadRequest("text and enhancement type are required")
	}
	if len([]rune(text)) < MinInputRunes {
		return "", apperr.BadRequest(fmt.Sprintf("text is too short for enhancement (minimum %d characters)", MinInputRunes))
	}

	var prompt string
	switch mode {
	case ModeGrammar:
		prompt = fmt.Sprintf(grammarPrompt, text)
	case ModeFull:
		prompt = fmt.Sprintf(fullEnhancePrompt, text)
	default:
		return "", apperr.BadRequest("invalid enhancement type provided")
	}

	if e.client == nil {
		return "", apperr.Unavailable("text enhancement service is not available")
	}

	result, err := e.client.Models.GenerateContent(ctx, e.model, genai.Text(prompt), nil)
	if err != nil {
		return "", e.mapProviderError(err)
	}

	out := strings.TrimSpace(result.Text())
	if out == "" {
		return "", apperr.Upstream("text enhancement returned no content", nil)
	}
	return out, nil
}

// mapProviderError distinguishes provider failure classes instead of
// collapsing everything into a generic 500.
func (e *Enhancer) mapProviderError(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "SAFETY"):
		return apperr.ProviderPolicy("content generation blocked due to safety policies", err)
	case strings.Contains(msg, "API key not valid"), strings.Contains(msg, "API_KEY_INVALID"):
		return apperr.Unauthenticated("generative service credential rejected", err)
	case strings.Contains(msg, "is not found"), strings.Contains(msg, "NOT_FOUND"), strings.Contains(msg, "404"):
		return apperr.Upstream(fmt.Sprintf("model %q not found or incompatible", e.model), err).
			WithStatus(http.StatusNotFound)
	default:
		return apperr.Upstream("failed to enhance text", err)
	}
}
