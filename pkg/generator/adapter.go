package generator

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/shouni/gemini-imagen-kit/pkg/domain"
)

// Adapter は入力の検証、バックエンド呼び出し、エラー分類をまとめたものです。
// 状態を持たないので、同じ Adapter を並行して使えます。
type Adapter struct {
	backend Backend
}

// NewAdapter はバックエンドを注入して Adapter を作ります。
func NewAdapter(backend Backend) (*Adapter, error) {
	if backend == nil {
		return nil, fmt.Errorf("backend is required")
	}
	return &Adapter{backend: backend}, nil
}

// Generate はプロンプトから画像（または説明文）を1つ生成します。
// 失敗した場合は必ず *domain.ClassifiedError を返します。再試行はしません。
func (a *Adapter) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	// 検証に失敗したらネットワークには出ない
	if err := req.Validate(); err != nil {
		slog.WarnContext(ctx, "生成リクエストが不正です", "error", err)
		return nil, err
	}

	slog.InfoContext(ctx, "生成リクエストを送信します",
		"model", a.backend.Model(), "aspect_ratio", req.AspectRatio, "prompt_len", len(req.Prompt))

	res, err := a.backend.Generate(ctx, req)
	if err != nil {
		ce := Classify(err)
		slog.ErrorContext(ctx, "生成に失敗しました",
			"model", a.backend.Model(), "category", ce.Category, "error", err)
		return nil, ce
	}

	if res == nil || (res.Kind == domain.KindImage && len(res.Data) == 0) || (res.Kind == domain.KindText && res.Text == "") {
		kind := domain.KindImage
		if res != nil {
			kind = res.Kind
		}
		slog.WarnContext(ctx, "生成結果が空でした", "model", a.backend.Model())
		return nil, domain.NewEmptyResultError(kind)
	}

	slog.InfoContext(ctx, "生成が完了しました",
		"model", res.Model, "kind", res.Kind, "mime_type", res.MIMEType, "bytes", len(res.Data))
	return res, nil
}
