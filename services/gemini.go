package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.0-flash"

// maxImagesPerCall bounds the number of inline attachments per request so a
// multi-page upload cannot blow up the upstream payload.
const maxImagesPerCall = 3

// ErrKind classifies gateway failures so callers never have to match on
// upstream message text.
type ErrKind int

const (
	KindMissingKey ErrKind = iota
	KindAuth
	KindUpstream
)

// GatewayError wraps a failed Gemini call with its classification.
type GatewayError struct {
	Kind ErrKind
	Err  error
}

func (e *GatewayError) Error() string { return e.Err.Error() }
func (e *GatewayError) Unwrap() error { return e.Err }

// ErrorKind extracts the classification from an error chain, defaulting to
// KindUpstream for anything that is not a GatewayError.
func ErrorKind(err error) ErrKind {
	var ge *GatewayError
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindUpstream
}

// Image is an inline attachment for a multimodal call. MIME covers raster
// formats as well as application/pdf.
type Image struct {
	MIME string
	Data []byte
}

// Gateway is the single chokepoint for outbound model calls. It is an
// interface so services and handlers can be tested with a stub.
type Gateway interface {
	Generate(ctx context.Context, apiKey, prompt string, images []Image) (string, error)
	Verify(ctx context.Context, apiKey string) error
}

// GeminiGateway calls the Gemini API with the caller-supplied key. Each
// request gets its own client: the credential arrives per request and is
// never stored or logged.
type GeminiGateway struct {
	Model string
}

func NewGeminiGateway(model string) *GeminiGateway {
	if strings.TrimSpace(model) == "" {
		model = defaultGeminiModel
	}
	return &GeminiGateway{Model: model}
}

// Generate sends one prompt, optionally with inline attachments, and returns
// the raw model text. Attachments precede the prompt text: putting the image
// first measurably improves problem extraction. No retries; a failed call is
// returned to the caller classified by kind.
func (g *GeminiGateway) Generate(ctx context.Context, apiKey, prompt string, images []Image) (string, error) {
	if strings.TrimSpace(apiKey) == "" {
		return "", &GatewayError{Kind: KindMissingKey, Err: errors.New("no API key supplied")}
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", classify(fmt.Errorf("create Gemini client: %w", err))
	}

	if len(images) > maxImagesPerCall {
		images = images[:maxImagesPerCall]
	}

	parts := make([]*genai.Part, 0, len(images)+1)
	for _, img := range images {
		parts = append(parts, &genai.Part{
			InlineData: &genai.Blob{MIMEType: img.MIME, Data: img.Data},
		})
	}
	parts = append(parts, &genai.Part{Text: prompt})

	contents := []*genai.Content{{Role: "user", Parts: parts}}

	resp, err := client.Models.GenerateContent(ctx, g.Model, contents, nil)
	if err != nil {
		return "", classify(err)
	}
	return resp.Text(), nil
}

// Verify checks a key with a minimal round trip.
func (g *GeminiGateway) Verify(ctx context.Context, apiKey string) error {
	_, err := g.Generate(ctx, apiKey, "Reply with the single word OK.", nil)
	return err
}

// classify maps an upstream failure onto a typed kind. Gemini reports a bad
// key as 400 INVALID_ARGUMENT, so 400 counts as an auth failure alongside the
// usual 401/403.
func classify(err error) error {
	var apiErr *genai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.Code {
		case 400, 401, 403:
			return &GatewayError{Kind: KindAuth, Err: err}
		}
	}
	return &GatewayError{Kind: KindUpstream, Err: err}
}
