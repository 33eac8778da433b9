package openai

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"

	oai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"github.com/randalmurphal/posekit/model"
	"github.com/randalmurphal/posekit/probe"
)

// pingPrompt is the minimal request body used for liveness probes.
const pingPrompt = "ping"

// quotaCode is the provider error code distinguishing exhausted quota
// from ordinary rate limiting on a 429.
const quotaCode = "insufficient_quota"

// Client implements probe.Lister, probe.Pinger, and the wizard's
// completion interface over the OpenAI API.
type Client struct {
	api oai.Client
}

// NewClient creates a client for the given credential. The credential is
// held only in memory; nothing here persists it.
func NewClient(apiKey string, opts ...option.RequestOption) *Client {
	opts = append([]option.RequestOption{option.WithAPIKey(apiKey)}, opts...)
	return &Client{api: oai.NewClient(opts...)}
}

// ListModels returns the model identifiers the credential may use.
// One network call; the caller maps any failure to its credential step.
func (c *Client) ListModels(ctx context.Context) ([]model.ID, error) {
	page, err := c.api.Models.List(ctx)
	if err != nil {
		return nil, mapErr("list_models", "", err)
	}
	ids := make([]model.ID, 0, len(page.Data))
	for _, m := range page.Data {
		ids = append(ids, model.ID(m.ID))
	}
	return ids, nil
}

// Ping sends one minimal completion to id. A nil return means a
// non-empty reply was observed.
func (c *Client) Ping(ctx context.Context, id model.ID) error {
	params := oai.ChatCompletionNewParams{
		Model: oai.ChatModel(id),
		Messages: []oai.ChatCompletionMessageParamUnion{
			oai.UserMessage(pingPrompt),
		},
	}
	if model.IsReasoningFamily(id) {
		// Reasoning models reject max_tokens and ignore temperature.
		params.MaxCompletionTokens = oai.Int(16)
	} else {
		params.MaxTokens = oai.Int(1)
		if model.SupportsTemperature(id) {
			params.Temperature = oai.Float(0)
		}
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return mapErr("ping", id, err)
	}
	if len(resp.Choices) == 0 {
		return probe.NewError("ping", id, probe.ErrEmptyReply, false)
	}
	return nil
}

// Complete sends one real completion and returns the reply text. When
// image is non-nil it is attached inline as a data URL, which is how the
// wizard's vision step ships the user's photo.
func (c *Client) Complete(ctx context.Context, id model.ID, prompt string, image []byte, mediaType string, maxTokens int) (string, error) {
	var message oai.ChatCompletionMessageParamUnion
	if len(image) > 0 {
		url := "data:" + mediaType + ";base64," + base64.StdEncoding.EncodeToString(image)
		message = oai.UserMessage([]oai.ChatCompletionContentPartUnionParam{
			oai.TextContentPart(prompt),
			oai.ImageContentPart(oai.ChatCompletionContentPartImageImageURLParam{URL: url}),
		})
	} else {
		message = oai.UserMessage(prompt)
	}

	params := oai.ChatCompletionNewParams{
		Model:    oai.ChatModel(id),
		Messages: []oai.ChatCompletionMessageParamUnion{message},
	}
	if model.IsReasoningFamily(id) {
		params.MaxCompletionTokens = oai.Int(int64(maxTokens))
	} else {
		params.MaxTokens = oai.Int(int64(maxTokens))
	}

	resp, err := c.api.Chat.Completions.New(ctx, params)
	if err != nil {
		return "", mapErr("complete", id, err)
	}
	if len(resp.Choices) == 0 {
		return "", probe.NewError("complete", id, probe.ErrEmptyReply, false)
	}
	return resp.Choices[0].Message.Content, nil
}

// mapErr translates SDK failures into the probe package's typed errors.
// Auth, authorization, and exhausted quota are permanent; a plain 429 is
// rate limiting and stays transient.
func mapErr(op string, id model.ID, err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var apierr *oai.Error
	if errors.As(err, &apierr) {
		switch apierr.StatusCode {
		case http.StatusUnauthorized:
			return probe.NewError(op, id, probe.ErrInvalidCredential, true)
		case http.StatusForbidden:
			return probe.NewError(op, id, probe.ErrForbidden, true)
		case http.StatusTooManyRequests:
			if apierr.Code == quotaCode {
				return probe.NewError(op, id, probe.ErrQuotaExhausted, true)
			}
			return probe.NewError(op, id, probe.ErrRateLimited, false)
		}
	}
	return probe.NewError(op, id, probe.ErrUnavailable, false)
}
