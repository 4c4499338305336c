package generator

import (
	"context"

	"github.com/shouni/gemini-imagen-kit/pkg/domain"
	"github.com/shouni/go-gemini-client/pkg/gemini"
	"google.golang.org/genai"
)

// --- Mocks ---

// mockBackend は Backend のテスト用モックなのだ。呼ばれた回数を数える。
type mockBackend struct {
	model        string
	generateFunc func(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
	calls        int
	lastReq      domain.GenerationRequest
}

func (m *mockBackend) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	m.calls++
	m.lastReq = req
	if m.generateFunc != nil {
		return m.generateFunc(ctx, req)
	}
	return domain.NewImageResult([]byte("fake-png"), "image/png", m.Model()), nil
}

func (m *mockBackend) Model() string {
	if m.model == "" {
		return "mock-model"
	}
	return m.model
}

// mockModels は *genai.Models の代わり。ImageModel と TextModel の両方を満たす。
type mockModels struct {
	generateImagesFunc  func(model, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error)
	generateContentFunc func(model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
	imageCalls          int
	contentCalls        int
}

func (m *mockModels) GenerateImages(ctx context.Context, model string, prompt string, config *genai.GenerateImagesConfig) (*genai.GenerateImagesResponse, error) {
	m.imageCalls++
	if m.generateImagesFunc != nil {
		return m.generateImagesFunc(model, prompt, config)
	}
	return nil, nil
}

func (m *mockModels) GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	m.contentCalls++
	if m.generateContentFunc != nil {
		return m.generateContentFunc(model, contents, config)
	}
	return nil, nil
}

// mockContentClient は ContentClient（gemini.GenerativeModel 相当）のモックなのだ。
type mockContentClient struct {
	generateFunc func(model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error)
	calls        int
}

func (m *mockContentClient) GenerateWithParts(ctx context.Context, model string, parts []*genai.Part, opts gemini.GenerateOptions) (*gemini.Response, error) {
	m.calls++
	if m.generateFunc != nil {
		return m.generateFunc(model, parts, opts)
	}
	return nil, nil
}

// imageResponse は画像パーツを1つ持つレスポンスを作るヘルパー
func imageResponse(mimeType string, data []byte) *genai.GenerateContentResponse {
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{
			Content: &genai.Content{
				Parts: []*genai.Part{{InlineData: &genai.Blob{MIMEType: mimeType, Data: data}}},
			},
			FinishReason: genai.FinishReasonStop,
		}},
	}
}

// textResponse はテキストパーツだけのレスポンスを作るヘルパー
func textResponse(texts ...string) *genai.GenerateContentResponse {
	parts := make([]*genai.Part, 0, len(texts))
	for _, t := range texts {
		parts = append(parts, &genai.Part{Text: t})
	}
	return &genai.GenerateContentResponse{
		Candidates: []*genai.Candidate{{Content: &genai.Content{Parts: parts}}},
	}
}
