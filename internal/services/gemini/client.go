package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"recipechat/internal/recipe"
	"recipechat/internal/services"
	"recipechat/internal/services/llm"
)

const defaultModel = "gemini-2.5-flash"

// Config captures Gemini connection settings.
type Config struct {
	APIKey         string
	Model          string
	BaseURL        string
	TimeoutSeconds int
}

// Client annotates steps through the Gemini generateContent endpoint.
type Client struct {
	genAI   *genai.Client
	model   string
	timeout time.Duration
}

// NewClient builds a Gemini client. BaseURL is only set in tests.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		return nil, services.Wrap(services.ErrConfiguration, "gemini", "init", "api key required", nil)
	}
	clientCfg := &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	}
	if base := strings.TrimSpace(cfg.BaseURL); base != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: base}
	}
	genAI, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, services.Wrap(services.ErrConfiguration, "gemini", "init", "create client", err)
	}
	model := strings.TrimSpace(cfg.Model)
	if model == "" {
		model = defaultModel
	}
	var timeout time.Duration
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	return &Client{genAI: genAI, model: model, timeout: timeout}, nil
}

// AnnotateSteps asks Gemini which ingredients and techniques each step uses.
func (c *Client) AnnotateSteps(ctx context.Context, ingredients []recipe.Ingredient, steps []recipe.Step) ([]recipe.Step, error) {
	if len(steps) == 0 {
		return steps, nil
	}
	input, err := llm.BuildAnnotationInput(ingredients, steps)
	if err != nil {
		return nil, err
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	res, err := c.genAI.Models.GenerateContent(ctx, c.model, []*genai.Content{
		genai.NewContentFromText(input, genai.RoleUser),
	}, &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(llm.StepAnnotationPrompt, genai.RoleModel),
		ResponseMIMEType:  "application/json",
		ResponseSchema:    annotationSchema,
		Temperature:       genai.Ptr[float32](0),
	})
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, services.Wrap(services.ErrTimeout, "gemini", "annotate", "request timed out", err)
		}
		return nil, services.Wrap(services.ErrExternalTool, "gemini", "annotate", "generate content", err)
	}
	text := strings.TrimSpace(res.Text())
	if text == "" {
		return nil, services.Wrap(services.ErrExternalTool, "gemini", "annotate", fmt.Sprintf("empty response (candidates=%d)", len(res.Candidates)), nil)
	}
	return llm.ApplyAnnotations(ingredients, steps, text)
}

var annotationSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"steps": {
			Type:        genai.TypeArray,
			Description: "One entry per input step, in order.",
			Items: &genai.Schema{
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"step_number": {
						Type: genai.TypeInteger,
					},
					"ingredients": {
						Type:        genai.TypeArray,
						Description: "Ingredient names used by the step, spelled as listed.",
						Items:       &genai.Schema{Type: genai.TypeString},
					},
					"methods": {
						Type:        genai.TypeArray,
						Description: "Cooking techniques as short lowercase verbs.",
						Items:       &genai.Schema{Type: genai.TypeString},
					},
				},
				Required: []string{"step_number", "ingredients", "methods"},
			},
		},
	},
	Required: []string{"steps"},
}
