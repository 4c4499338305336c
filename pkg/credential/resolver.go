package credential

import (
	"log/slog"
	"strings"

	"github.com/shouni/gemini-imagen-kit/pkg/domain"
)

// Resolver は複数の取得元から API キーを決定します。
// 取得元は登録順に優先されます。
type Resolver struct {
	sources []Source
}

// NewResolver は取得元を優先順に受け取って Resolver を作ります。nil は無視します。
func NewResolver(sources ...Source) *Resolver {
	r := &Resolver{}
	for _, s := range sources {
		if s != nil {
			r.sources = append(r.sources, s)
		}
	}
	return r
}

// Resolve は最初に見つかった有効なキーを返します。
// 空の値とプレースホルダーは飛ばします。何も見つからなければ
// Configuration に分類されたエラーを返します。
func (r *Resolver) Resolve() (Credential, error) {
	sawPlaceholder := false
	for _, s := range r.sources {
		raw, ok := s.Lookup()
		if !ok {
			continue
		}
		v := strings.TrimSpace(raw)
		if v == "" {
			continue
		}
		if IsPlaceholder(v) {
			slog.Warn("APIキーがプレースホルダーのままです", "source", s.Name())
			sawPlaceholder = true
			continue
		}

		c := Credential(v)
		slog.Debug("APIキーを解決しました", "source", s.Name(), "key", c)
		return c, nil
	}

	if sawPlaceholder {
		return "", domain.NewConfigurationError(domain.ErrPlaceholderCredential)
	}
	return "", domain.NewConfigurationError(domain.ErrMissingCredential)
}
