package domain

import (
	"regexp"
	"strings"

	"github.com/shouni/gemini-imagen-kit/pkg/imgutil"
)

// ResultKind は生成結果の種類です。
type ResultKind string

const (
	KindImage ResultKind = "image"
	KindText  ResultKind = "text"
)

// GenerationResult は生成結果です。Data と Text のどちらか一方だけが設定されます。
type GenerationResult struct {
	Kind     ResultKind
	Data     []byte
	MIMEType string
	Text     string
	Model    string
}

// NewImageResult は画像の結果を作ります。
func NewImageResult(data []byte, mimeType, model string) *GenerationResult {
	if mimeType == "" {
		mimeType = imgutil.DetectMIMEType(data)
	}
	return &GenerationResult{Kind: KindImage, Data: data, MIMEType: mimeType, Model: model}
}

// NewTextResult は説明文の結果を作ります。
func NewTextResult(text, model string) *GenerationResult {
	return &GenerationResult{Kind: KindText, Text: text, MIMEType: "text/plain", Model: model}
}

// IsImage は画像の結果かどうかを返します。
func (r *GenerationResult) IsImage() bool {
	return r != nil && r.Kind == KindImage
}

// Base64 は画像バイト列の base64 表現を返します。テキスト結果では空文字です。
func (r *GenerationResult) Base64() string {
	if !r.IsImage() {
		return ""
	}
	return imgutil.EncodeBase64(r.Data)
}

// DataURI は画像を data URI として返します。テキスト結果では空文字です。
func (r *GenerationResult) DataURI() string {
	if !r.IsImage() {
		return ""
	}
	return imgutil.EncodeDataURI(r.Data, r.MIMEType)
}

var (
	whitespaceRun   = regexp.MustCompile(`\s+`)
	// パス区切りや制御文字はファイル名に使わない
	unsafeFileChars = regexp.MustCompile(`[/\\:*?"<>|\x00-\x1f\x7f]`)
)

const (
	fileNamePromptRunes = 20
	fallbackFileName    = "generated_image"
)

// FileName はダウンロード用のファイル名をプロンプトから作ります。
// 先頭20文字の空白とパス区切りを "_" に置き換えるので、結果は常にカレントディレクトリ内の名前になります。
// 空白や記号しか残らなければ generated_image を使います。
func (r *GenerationResult) FileName(prompt string) string {
	runes := []rune(prompt)
	if len(runes) > fileNamePromptRunes {
		runes = runes[:fileNamePromptRunes]
	}
	base := whitespaceRun.ReplaceAllString(string(runes), "_")
	base = unsafeFileChars.ReplaceAllString(base, "_")
	base = strings.TrimLeft(base, ".")
	if strings.Trim(base, "_") == "" {
		base = fallbackFileName
	}

	if r != nil && r.Kind == KindText {
		return base + ".txt"
	}
	mimeType := ""
	if r != nil {
		mimeType = r.MIMEType
	}
	return base + imgutil.Extension(mimeType)
}
