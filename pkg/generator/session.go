package generator

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/shouni/gemini-imagen-kit/pkg/credential"
	"github.com/shouni/gemini-imagen-kit/pkg/domain"
)

// Session は API キーの解決と、キーごとのバックエンドの使い回しを担当します。
// バックエンドは同じキーに対して一度だけ作られ、キーが変わったときだけ作り直します。
type Session struct {
	resolver *credential.Resolver
	factory  BackendFactory

	mu      sync.Mutex
	cred    credential.Credential
	adapter *Adapter
}

// NewSession は Resolver と BackendFactory を注入して Session を作ります。
func NewSession(resolver *credential.Resolver, factory BackendFactory) (*Session, error) {
	if resolver == nil {
		return nil, fmt.Errorf("resolver is required")
	}
	if factory == nil {
		return nil, fmt.Errorf("factory is required")
	}
	return &Session{resolver: resolver, factory: factory}, nil
}

// Generate は API キーを解決してから1回だけ生成を行います。
// キーの設定エラーは他のどのエラーよりも優先して、そのまま返します。
func (s *Session) Generate(ctx context.Context, prompt string, ratio domain.AspectRatio) (*domain.GenerationResult, error) {
	cred, err := s.resolver.Resolve()
	if err != nil {
		return nil, err
	}

	req := domain.GenerationRequest{Prompt: prompt, AspectRatio: ratio}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	adapter, err := s.adapterFor(ctx, cred)
	if err != nil {
		return nil, Classify(err)
	}
	return adapter.Generate(ctx, req)
}

// adapterFor はキーに対応する Adapter を返す。なければ作る。
func (s *Session) adapterFor(ctx context.Context, cred credential.Credential) (*Adapter, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.adapter != nil && s.cred == cred {
		return s.adapter, nil
	}

	backend, err := s.factory(ctx, cred)
	if err != nil {
		return nil, fmt.Errorf("バックエンドの初期化に失敗しました: %w", err)
	}
	adapter, err := NewAdapter(backend)
	if err != nil {
		return nil, err
	}

	slog.InfoContext(ctx, "バックエンドを初期化しました", "model", backend.Model(), "key", cred)
	s.cred = cred
	s.adapter = adapter
	return adapter, nil
}
