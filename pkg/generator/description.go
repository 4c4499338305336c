package generator

import (
	"context"
	"fmt"

	"github.com/shouni/gemini-imagen-kit/pkg/domain"
	"google.golang.org/genai"
)

// descriptionTemplate はプロンプトを包む固定の指示文です。
const descriptionTemplate = `You are an art director. Write a vivid, concrete description of a single image based on the idea below.
Cover the subject, composition, lighting and colour palette in one paragraph of at most 120 words.
The image is framed in a %s aspect ratio. Reply with the description only.

Idea: %s`

// BuildDescriptionPrompt はテンプレートにプロンプトと縦横比を埋め込みます。
func BuildDescriptionPrompt(prompt string, ratio domain.AspectRatio) string {
	return fmt.Sprintf(descriptionTemplate, ratio, prompt)
}

// DescriptionBackend は画像の代わりに説明文を生成します。
type DescriptionBackend struct {
	models TextModel
	model  string
}

// NewDescriptionBackend は DescriptionBackend を作ります。
func NewDescriptionBackend(models TextModel, model string) (*DescriptionBackend, error) {
	if models == nil {
		return nil, fmt.Errorf("models (TextModel) is required")
	}
	if model == "" {
		model = DefaultTextModel
	}
	return &DescriptionBackend{models: models, model: model}, nil
}

func (b *DescriptionBackend) Model() string { return b.model }

func (b *DescriptionBackend) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	contents := genai.Text(BuildDescriptionPrompt(req.Prompt, req.AspectRatio))

	resp, err := b.models.GenerateContent(ctx, b.model, contents, nil)
	if err != nil {
		return nil, fmt.Errorf("Gemini説明文生成エラー: %w", err)
	}

	text := joinText(firstCandidateParts(resp))
	if text == "" {
		return nil, emptyOrBlocked(resp, domain.KindText)
	}
	return domain.NewTextResult(text, b.model), nil
}
