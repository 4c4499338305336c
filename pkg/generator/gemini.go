package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-imagen-kit/pkg/domain"
	"github.com/shouni/gemini-imagen-kit/pkg/imgutil"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// geminiImageSystemPrompt は画像だけを返させるための指示なのだ。
const geminiImageSystemPrompt = "Generate exactly one image that matches the user's description. Do not answer with text only."

// GeminiImageBackend は Gemini のネイティブ画像出力で画像を1枚生成します。
type GeminiImageBackend struct {
	client         ContentClient
	model          string
	outputMIMEType string
	jpegQuality    int
}

// NewGeminiImageBackend は GeminiImageBackend を初期化するのだ。
func NewGeminiImageBackend(client ContentClient, model, outputMIMEType string, jpegQuality int) (*GeminiImageBackend, error) {
	if client == nil {
		return nil, fmt.Errorf("client (ContentClient) is required")
	}
	o := Options{GeminiImageModel: model, OutputMIMEType: outputMIMEType, JPEGQuality: jpegQuality}.withDefaults()
	return &GeminiImageBackend{
		client:         client,
		model:          o.GeminiImageModel,
		outputMIMEType: o.OutputMIMEType,
		jpegQuality:    o.JPEGQuality,
	}, nil
}

func (b *GeminiImageBackend) Model() string { return b.model }

// Generate はプロンプトをテキストパーツにして1回だけ送信するのだ。
func (b *GeminiImageBackend) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	parts := []*genai.Part{{Text: req.Prompt}}
	opts := gemini.GenerateOptions{
		AspectRatio:  string(req.AspectRatio),
		SystemPrompt: geminiImageSystemPrompt,
	}

	resp, err := b.client.GenerateWithParts(ctx, b.model, parts, opts)
	if err != nil {
		return nil, fmt.Errorf("Gemini画像生成エラー: %w", err)
	}

	var raw *genai.GenerateContentResponse
	if resp != nil {
		raw = resp.RawResponse
	}

	blob := firstInlineImage(firstCandidateParts(raw))
	if blob == nil {
		return nil, emptyOrBlocked(raw, domain.KindImage)
	}

	data, mimeType := blob.Data, blob.MIMEType
	if mimeType != b.outputMIMEType {
		converted, convertedType, err := imgutil.Transcode(data, b.outputMIMEType, b.jpegQuality)
		if err != nil {
			return nil, fmt.Errorf("出力形式の変換に失敗しました (%s -> %s): %w", mimeType, b.outputMIMEType, err)
		}
		slog.DebugContext(ctx, "画像の形式を変換しました", "from", mimeType, "to", convertedType)
		data, mimeType = converted, convertedType
	}

	return domain.NewImageResult(data, mimeType, b.model), nil
}

// firstInlineImage は最初の画像パーツを探すのだ。
func firstInlineImage(parts []*genai.Part) *genai.Blob {
	for _, p := range parts {
		if p != nil && p.InlineData != nil && len(p.InlineData.Data) > 0 {
			return p.InlineData
		}
	}
	return nil
}
