package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/phrazzld/scry-studycards/internal/config"
	"github.com/phrazzld/scry-studycards/internal/generation"
	"google.golang.org/genai"
)

// Client sends prompts to Gemini models.
// It is safe for concurrent use.
type Client struct {
	genai       *genai.Client
	temperature float32
	logger      *slog.Logger
}

var _ generation.ModelClient = (*Client)(nil)

// NewClient creates a Client from the LLM configuration.
//
// Parameters:
//   - ctx: Context for client initialization
//   - cfg: LLM configuration; GeminiAPIKey is required, BaseURL and APIVersion
//     optionally redirect requests (used for proxies and tests)
//   - logger: A structured logger for operation logging
//
// Returns:
//   - A Client, or a configuration *generation.Error when the key is missing
//     or the SDK client cannot be created
func NewClient(ctx context.Context, cfg config.LLMConfig, logger *slog.Logger) (*Client, error) {
	if logger == nil {
		logger = slog.Default()
	}

	if strings.TrimSpace(cfg.GeminiAPIKey) == "" {
		return nil, generation.MissingCredentialError()
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{
			BaseURL:    cfg.BaseURL,
			APIVersion: cfg.APIVersion,
		},
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, generation.NewError(generation.KindConfiguration,
			"The Gemini client could not be created.", err)
	}

	return &Client{
		genai:       client,
		temperature: cfg.Temperature,
		logger:      logger.With("component", "gemini_client"),
	}, nil
}

// GenerateText implements generation.ModelClient.
func (c *Client) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.genai.Models.GenerateContent(ctx, model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature: genai.Ptr(c.temperature),
	})
	if err != nil {
		return "", translateError(err)
	}

	if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" {
		return "", fmt.Errorf("%w: prompt blocked (%s) %s", ErrContentBlocked, fb.BlockReason, fb.BlockReasonMessage)
	}
	if len(resp.Candidates) > 0 && resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: reply stopped by safety filters", ErrContentBlocked)
	}

	text := resp.Text()
	c.logger.DebugContext(ctx, "received model reply",
		"model", model,
		"model_version", resp.ModelVersion,
		"reply_length", len(text))

	return text, nil
}

// translateError maps SDK API errors to *generation.StatusError.
// Other errors (transport failures, cancellation) are returned unchanged.
func translateError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return statusError(apiErr)
	}

	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return statusError(*apiErrPtr)
	}

	return err
}

func statusError(apiErr genai.APIError) *generation.StatusError {
	return &generation.StatusError{
		StatusCode: apiErr.Code,
		Status:     apiErr.Status,
		Message:    apiErr.Message,
	}
}
