package generator

import (
	"context"
	"fmt"

	"github.com/shouni/gemini-imagen-kit/pkg/credential"
	"github.com/shouni/gemini-imagen-kit/pkg/domain"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// NewGenAIClient は API キーで Gemini API 用のクライアントを作ります。
// ネットワークにはまだ接続しません。
func NewGenAIClient(ctx context.Context, cred credential.Credential) (*genai.Client, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cred.Reveal(),
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return client, nil
}

// genaiContentClient は genai の Models を ContentClient として使うためのアダプターです。
type genaiContentClient struct {
	models TextModel
}

// NewGenAIContentClient は TextModel（通常は client.Models）を ContentClient に変換します。
func NewGenAIContentClient(models TextModel) ContentClient {
	return &genaiContentClient{models: models}
}

func (c *genaiContentClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
	config := &genai.GenerateContentConfig{
		ResponseModalities: []string{"IMAGE", "TEXT"},
	}
	if opts.SystemPrompt != "" {
		config.SystemInstruction = genai.NewContentFromText(opts.SystemPrompt, genai.RoleUser)
	}
	if opts.AspectRatio != "" {
		config.ImageConfig = &genai.ImageConfig{AspectRatio: opts.AspectRatio}
	}

	contents := []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
	resp, err := c.models.GenerateContent(ctx, model, contents, config)
	if err != nil {
		return nil, err
	}
	return &gemini.Response{RawResponse: resp}, nil
}

// BackendFactory は API キーごとにバックエンドを組み立てます。
type BackendFactory func(ctx context.Context, cred credential.Credential) (Backend, error)

// NewBackendFactory は opts.Mode に応じたバックエンドを genai クライアントで組み立てる
// BackendFactory を返します。
func NewBackendFactory(opts Options) BackendFactory {
	opts = opts.withDefaults()
	return func(ctx context.Context, cred credential.Credential) (Backend, error) {
		client, err := NewGenAIClient(ctx, cred)
		if err != nil {
			return nil, err
		}
		return NewBackend(opts, client.Models)
	}
}

// NewBackend は opts.Mode に応じたバックエンドを作ります。
// models は *genai.Models か、テストでは同じメソッドを持つ代替品です。
func NewBackend(opts Options, models interface {
	ImageModel
	TextModel
}) (Backend, error) {
	opts = opts.withDefaults()
	switch opts.Mode {
	case domain.ModeImage:
		return NewImagenBackend(models, opts.ImageModel, opts.OutputMIMEType)
	case domain.ModeGeminiImage:
		return NewGeminiImageBackend(NewGenAIContentClient(models), opts.GeminiImageModel, opts.OutputMIMEType, opts.JPEGQuality)
	case domain.ModeDescription:
		return NewDescriptionBackend(models, opts.TextModel)
	default:
		return nil, fmt.Errorf("unknown mode: %q", opts.Mode)
	}
}
