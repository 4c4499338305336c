package generator

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shouni/gemini-imagen-kit/pkg/credential"
	"github.com/shouni/gemini-imagen-kit/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingFactory は作られたバックエンドと受け取ったキーを記録する
type countingFactory struct {
	mu       sync.Mutex
	creds    []credential.Credential
	backends []*mockBackend
	err      error
}

func (f *countingFactory) build(ctx context.Context, cred credential.Credential) (Backend, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	b := &mockBackend{}
	f.creds = append(f.creds, cred)
	f.backends = append(f.backends, b)
	return b, nil
}

func TestNewSession(t *testing.T) {
	_, err := NewSession(nil, (&countingFactory{}).build)
	assert.Error(t, err)

	_, err = NewSession(credential.NewResolver(), nil)
	assert.Error(t, err)
}

func TestSession_Generate(t *testing.T) {
	ctx := context.Background()

	t.Run("同じキーならバックエンドは1回だけ作られる", func(t *testing.T) {
		factory := &countingFactory{}
		s, err := NewSession(credential.NewResolver(credential.NewConfigSource("AIza-test-key-0001")), factory.build)
		require.NoError(t, err)

		for i := 0; i < 3; i++ {
			res, err := s.Generate(ctx, "a red fox in snow", domain.AspectSquare)
			require.NoError(t, err)
			assert.True(t, res.IsImage())
		}

		require.Len(t, factory.backends, 1)
		assert.Equal(t, 3, factory.backends[0].calls)
		assert.Equal(t, "AIza-test-key-0001", factory.creds[0].Reveal())
	})

	t.Run("キーが変わったら作り直す", func(t *testing.T) {
		factory := &countingFactory{}
		form := credential.NewFormSource()
		require.NoError(t, form.Submit("AIza-first-key-0001"))
		s, _ := NewSession(credential.NewResolver(form), factory.build)

		_, err := s.Generate(ctx, "fox", domain.AspectSquare)
		require.NoError(t, err)
		require.NoError(t, form.Submit("AIza-second-key-0002"))
		_, err = s.Generate(ctx, "fox", domain.AspectSquare)
		require.NoError(t, err)

		require.Len(t, factory.creds, 2)
		assert.Equal(t, "AIza-second-key-0002", factory.creds[1].Reveal())
	})

	t.Run("キー未設定は Configuration エラーが最優先される", func(t *testing.T) {
		factory := &countingFactory{}
		s, _ := NewSession(credential.NewResolver(credential.NewConfigSource("")), factory.build)

		// プロンプトも空だが、キーのエラーが返る
		_, err := s.Generate(ctx, "   ", domain.AspectSquare)

		assert.Equal(t, domain.CategoryConfiguration, domain.CategoryOf(err))
		assert.ErrorIs(t, err, domain.ErrMissingCredential)
		assert.Empty(t, factory.backends, "no backend must be built")
	})

	t.Run("空のプロンプトはバックエンドを作らずに失敗する", func(t *testing.T) {
		factory := &countingFactory{}
		s, _ := NewSession(credential.NewResolver(credential.NewConfigSource("AIza-test-key-0001")), factory.build)

		_, err := s.Generate(ctx, "", domain.AspectSquare)

		assert.ErrorIs(t, err, domain.ErrEmptyPrompt)
		assert.Empty(t, factory.backends)
	})

	t.Run("バックエンドの初期化失敗も分類される", func(t *testing.T) {
		factory := &countingFactory{err: errors.New("api key required")}
		s, _ := NewSession(credential.NewResolver(credential.NewConfigSource("AIza-test-key-0001")), factory.build)

		_, err := s.Generate(ctx, "fox", domain.AspectSquare)

		assert.Equal(t, domain.CategoryConfiguration, domain.CategoryOf(err))
	})

	t.Run("並行に呼んでもバックエンドはひとつ", func(t *testing.T) {
		factory := &countingFactory{}
		s, _ := NewSession(credential.NewResolver(credential.NewConfigSource("AIza-test-key-0001")), factory.build)

		var wg sync.WaitGroup
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, _ = s.adapterFor(ctx, credential.Credential("AIza-test-key-0001"))
			}()
		}
		wg.Wait()

		assert.Len(t, factory.backends, 1)
	})
}
