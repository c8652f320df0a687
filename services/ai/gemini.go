package aisvc

import (
	"context"
	"strings"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/pkg/errors"
	"google.golang.org/api/option"

	"github.com/trezcool/colegio/core"
	"github.com/trezcool/colegio/core/report"
)

const serviceName = "gemini"

var (
	// errors
	ErrNoAPIKey   = errors.New("gemini API key not configured")
	ErrNoResponse = errors.New("no candidate in response")
)

// GeminiGenerator implements report.Generator on top of the Gemini API.
type GeminiGenerator struct {
	client  *genai.Client
	model   *genai.GenerativeModel
	timeout time.Duration
}

var _ report.Generator = (*GeminiGenerator)(nil)

func NewGeminiGenerator(ctx context.Context, conf core.GeminiConfig) (*GeminiGenerator, error) {
	if conf.APIKey == "" {
		return nil, ErrNoAPIKey
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(conf.APIKey))
	if err != nil {
		return nil, errors.Wrap(err, "creating gemini client")
	}
	model := client.GenerativeModel(conf.Model)
	if conf.MaxOutputTokens > 0 {
		model.SetMaxOutputTokens(conf.MaxOutputTokens)
	}
	return &GeminiGenerator{client: client, model: model, timeout: conf.Timeout}, nil
}

// Generate makes a single GenerateContent call, bounded by the configured timeout.
func (g *GeminiGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", report.NewServiceError(serviceName, err)
	}
	text, err := responseText(resp)
	if err != nil {
		return "", report.NewServiceError(serviceName, err)
	}
	return text, nil
}

func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// responseText joins the text parts of the first candidate. A candidate
// without text yields "", leaving the empty-report decision to the caller.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 {
		return "", ErrNoResponse
	}
	cand := resp.Candidates[0]
	if cand.Content == nil {
		return "", nil
	}
	var sb strings.Builder
	for _, part := range cand.Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			sb.WriteString(string(txt))
		}
	}
	return sb.String(), nil
}

// Unavailable is the Generator used when no AI backend is configured.
// Every call fails, so reports show the connection fallback.
type Unavailable struct {
	Reason error
}

var _ report.Generator = Unavailable{}

func (u Unavailable) Generate(context.Context, string) (string, error) {
	return "", report.NewServiceError(serviceName, u.Reason)
}
