package generator

import (
	"context"

	"github.com/shouni/gemini-imagen-kit/pkg/domain"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// Backend は1回の生成を外部サービスに投げる実装です。
// 1回の Generate につきネットワーク呼び出しは1回だけです。
type Backend interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
	// Model はログ用のモデル名です。
	Model() string
}

// ImageModel は Imagen の generateImages を呼ぶためのインターフェースです。
// *genai.Models がこれを満たします。
type ImageModel interface {
	GenerateImages(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
}

// TextModel は generateContent を呼ぶためのインターフェースです。
// *genai.Models がこれを満たします。
type TextModel interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// ContentClient はパーツ単位で generateContent を呼ぶクライアントです。
// go-gemini-client の gemini.GenerativeModel と同じシグネチャなので、そのまま差し込めます。
type ContentClient interface {
	GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error)
}
