package credential

import (
	"errors"
	"strings"
	"sync"
)

// MessageBlankFormInput はフォームに空のキーが送信されたときの文言です。
const MessageBlankFormInput = "Please enter a valid API key."

// ErrBlankFormInput はフォーム入力が空だったことを示します。
var ErrBlankFormInput = errors.New(MessageBlankFormInput)

// Source は API キーの取得元です。
type Source interface {
	// Name はログ用の取得元名です。
	Name() string
	// Lookup は値と、値が存在したかどうかを返します。
	Lookup() (string, bool)
}

// ConfigSource は環境変数や設定ファイルなど、外部から注入された値です。
type ConfigSource struct {
	value string
}

// NewConfigSource は読み込み済みの設定値から ConfigSource を作ります。
func NewConfigSource(value string) *ConfigSource {
	return &ConfigSource{value: value}
}

func (s *ConfigSource) Name() string { return "config" }

func (s *ConfigSource) Lookup() (string, bool) {
	return s.value, s.value != ""
}

// FormSource は利用者が入力したキーです。セッションの間だけ保持します。
type FormSource struct {
	mu    sync.RWMutex
	value string
}

// NewFormSource は空の FormSource を作ります。
func NewFormSource() *FormSource {
	return &FormSource{}
}

// Submit はフォームから送信されたキーを保存します。空白だけの入力は拒否します。
func (s *FormSource) Submit(value string) error {
	value = strings.TrimSpace(value)
	if value == "" {
		return ErrBlankFormInput
	}
	s.mu.Lock()
	s.value = value
	s.mu.Unlock()
	return nil
}

// Clear は保存したキーを破棄します。
func (s *FormSource) Clear() {
	s.mu.Lock()
	s.value = ""
	s.mu.Unlock()
}

func (s *FormSource) Name() string { return "form" }

func (s *FormSource) Lookup() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value, s.value != ""
}

// StaticSource はコードに埋め込まれた定数です。
type StaticSource struct {
	value string
}

// NewStaticSource は固定値の Source を作ります。
func NewStaticSource(value string) *StaticSource {
	return &StaticSource{value: value}
}

func (s *StaticSource) Name() string { return "static" }

func (s *StaticSource) Lookup() (string, bool) {
	return s.value, s.value != ""
}

// EmbeddedAPIKey はビルド時に埋め込むキーです。
// 未設定のままなら Resolver はプレースホルダーとして扱います。
//
//	go build -ldflags "-X github.com/shouni/gemini-imagen-kit/pkg/credential.EmbeddedAPIKey=..."
var EmbeddedAPIKey = "YOUR_API_KEY_HERE"
