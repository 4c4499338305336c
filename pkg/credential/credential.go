package credential

import (
	"log/slog"
	"strings"
)

// Credential は API キーです。メモリ上にだけ保持し、ログには伏せ字で出します。
type Credential string

// String は伏せ字を返します。%v や %s で誤って出力しても値が漏れないようにします。
func (c Credential) String() string {
	return mask(string(c))
}

// LogValue は slog.LogValuer の実装です。
func (c Credential) LogValue() slog.Value {
	return slog.StringValue(mask(string(c)))
}

// Reveal は API クライアントに渡すための生の値を返します。
func (c Credential) Reveal() string {
	return string(c)
}

// 先頭4文字だけ残して残りを伏せる
func mask(s string) string {
	if s == "" {
		return "?"
	}
	if len(s) <= 8 {
		return "***"
	}
	return s[:4] + "***"
}

// Placeholders は「まだ設定されていない」ことを示す既知の値です。
var Placeholders = []string{
	"YOUR_API_KEY",
	"YOUR_API_KEY_HERE",
	"PLACEHOLDER_API_KEY",
	"<your-api-key>",
}

// IsPlaceholder は値が既知のプレースホルダーかどうかを返します。
func IsPlaceholder(v string) bool {
	v = strings.TrimSpace(v)
	for _, p := range Placeholders {
		if strings.EqualFold(v, p) {
			return true
		}
	}
	return false
}
