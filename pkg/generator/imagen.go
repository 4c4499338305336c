package generator

import (
	"context"
	"fmt"

	"github.com/shouni/gemini-imagen-kit/pkg/domain"
	"google.golang.org/genai"
)

// ImagenBackend は Imagen の generateImages で画像を1枚生成します。
type ImagenBackend struct {
	models         ImageModel
	model          string
	outputMIMEType string
}

// NewImagenBackend は ImagenBackend を作ります。
func NewImagenBackend(models ImageModel, model, outputMIMEType string) (*ImagenBackend, error) {
	if models == nil {
		return nil, fmt.Errorf("models (ImageModel) is required")
	}
	if model == "" {
		model = DefaultImageModel
	}
	if outputMIMEType == "" {
		outputMIMEType = DefaultOutputMIMEType
	}
	return &ImagenBackend{models: models, model: model, outputMIMEType: outputMIMEType}, nil
}

func (b *ImagenBackend) Model() string { return b.model }

// Generate は1回だけ API を呼び、最初の画像のバイト列をそのまま返します。
func (b *ImagenBackend) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	resp, err := b.models.GenerateImages(ctx, b.model, req.Prompt, &genai.GenerateImagesConfig{
		NumberOfImages:   1,
		OutputMIMEType:   b.outputMIMEType,
		AspectRatio:      string(req.AspectRatio),
		IncludeRAIReason: true,
	})
	if err != nil {
		return nil, fmt.Errorf("Imagen画像生成エラー: %w", err)
	}

	if resp == nil || len(resp.GeneratedImages) == 0 {
		return nil, domain.NewEmptyResultError(domain.KindImage)
	}

	// NumberOfImages=1 なので先頭だけを見る
	img := resp.GeneratedImages[0]
	if img == nil || img.Image == nil || len(img.Image.ImageBytes) == 0 {
		if img != nil && img.RAIFilteredReason != "" {
			return nil, domain.NewSafetyBlockedError(img.RAIFilteredReason)
		}
		return nil, domain.NewEmptyResultError(domain.KindImage)
	}

	mimeType := img.Image.MIMEType
	if mimeType == "" {
		mimeType = b.outputMIMEType
	}
	return domain.NewImageResult(img.Image.ImageBytes, mimeType, b.model), nil
}
