package domain

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerationResult_Encoding(t *testing.T) {
	t.Run("画像は base64 と data URI に変換できる", func(t *testing.T) {
		r := NewImageResult([]byte("png-bytes"), "image/png", "imagen-4.0-generate-001")

		assert.Equal(t, "cG5nLWJ5dGVz", r.Base64())
		assert.Equal(t, "data:image/png;base64,cG5nLWJ5dGVz", r.DataURI())
	})

	t.Run("テキスト結果はエンコードしない", func(t *testing.T) {
		r := NewTextResult("a fox", "gemini-2.5-flash")

		assert.False(t, r.IsImage())
		assert.Empty(t, r.Base64())
		assert.Empty(t, r.DataURI())
	})
}

func TestGenerationResult_FileName(t *testing.T) {
	png := &GenerationResult{Kind: KindImage, MIMEType: "image/png"}
	jpg := &GenerationResult{Kind: KindImage, MIMEType: "image/jpeg"}

	tests := []struct {
		name   string
		result *GenerationResult
		prompt string
		want   string
	}{
		{"空白はアンダースコア", png, "a red fox in snow", "a_red_fox_in_snow.png"},
		{"20文字で切る", png, "A majestic lion wearing a crown", "A_majestic_lion_wear.png"},
		{"連続する空白はひとつに", jpg, "two   words", "two_words.jpg"},
		{"空ならデフォルト名", png, "", "generated_image.png"},
		{"テキストは txt", NewTextResult("x", ""), "fox", "fox.txt"},
		{"マルチバイトも文字単位", png, "ずんだもんが雪の中を走る", "ずんだもんが雪の中を走る.png"},
		{"スラッシュは区切りにしない", png, "a/b", "a_b.png"},
		{"日付のようなプロンプト", png, "24/7 diner", "24_7_diner.png"},
		{"絶対パスにならない", png, "/tmp/x", "_tmp_x.png"},
		{"親ディレクトリに出ない", png, "../x", "_x.png"},
		{"深い相対パスも平らにする", png, "../../etc/cron.d/x", "_.._etc_cron.d_x.png"},
		{"バックスラッシュとコロン", jpg, `C:\temp\x`, "C__temp_x.jpg"},
		{"隠しファイルにならない", png, ".env", "env.png"},
		{"空白だけならデフォルト名", png, "   ", "generated_image.png"},
		{"記号だけならデフォルト名", png, "//", "generated_image.png"},
		{"テキストも同じ規則", NewTextResult("x", ""), "../notes", "_notes.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name+"（パスの外に出ない）", func(t *testing.T) {
			got := tt.result.FileName(tt.prompt)
			assert.Equal(t, filepath.Base(got), got)
			assert.False(t, strings.HasPrefix(got, "."))
		})
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.result.FileName(tt.prompt))
		})
	}
}
