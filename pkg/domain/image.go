package domain

import (
	"fmt"
	"strings"
)

// AspectRatio は生成画像の縦横比です。
type AspectRatio string

const (
	AspectSquare    AspectRatio = "1:1"
	AspectWide      AspectRatio = "16:9"
	AspectTall      AspectRatio = "9:16"
	AspectLandscape AspectRatio = "4:3"
	AspectPortrait  AspectRatio = "3:4"

	DefaultAspectRatio = AspectSquare
)

// SupportedAspectRatios は API が受け付ける縦横比の一覧です（表示順）。
var SupportedAspectRatios = []AspectRatio{
	AspectSquare,
	AspectWide,
	AspectTall,
	AspectLandscape,
	AspectPortrait,
}

// Valid は縦横比がサポート対象かどうかを返します。
func (a AspectRatio) Valid() bool {
	for _, r := range SupportedAspectRatios {
		if a == r {
			return true
		}
	}
	return false
}

// Label は UI 表示用の名前です。
func (a AspectRatio) Label() string {
	switch a {
	case AspectSquare:
		return "Square"
	case AspectWide:
		return "Widescreen"
	case AspectTall:
		return "Portrait"
	case AspectLandscape:
		return "Landscape"
	case AspectPortrait:
		return "Tall"
	default:
		return string(a)
	}
}

// ParseAspectRatio は文字列を AspectRatio に変換します。空文字はデフォルト値になります。
func ParseAspectRatio(s string) (AspectRatio, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return DefaultAspectRatio, nil
	}
	a := AspectRatio(s)
	if !a.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedAspectRatio, s)
	}
	return a, nil
}

// Mode はどの API で何を生成するかを表します。
type Mode string

const (
	// ModeImage は Imagen の generateImages で画像を生成します。
	ModeImage Mode = "image"
	// ModeGeminiImage は Gemini のネイティブ画像出力 (generateContent) で画像を生成します。
	ModeGeminiImage Mode = "gemini-image"
	// ModeDescription は画像の代わりに説明文を生成します。
	ModeDescription Mode = "description"
)

// ParseMode は文字列を Mode に変換します。
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.TrimSpace(s)); m {
	case ModeImage, ModeGeminiImage, ModeDescription:
		return m, nil
	case "":
		return ModeImage, nil
	default:
		return "", fmt.Errorf("unknown mode %q (image, gemini-image, description)", s)
	}
}

// GenerationRequest は1回の生成要求です。
// 認証情報はバックエンド生成時に束縛されるため、ここには含めません。
type GenerationRequest struct {
	Prompt      string
	AspectRatio AspectRatio
}

// Validate はネットワーク呼び出し前に入力を検証します。
func (r GenerationRequest) Validate() error {
	if strings.TrimSpace(r.Prompt) == "" {
		return &ClassifiedError{
			Category: CategoryConfiguration,
			Message:  MessageEmptyPrompt,
			Err:      ErrEmptyPrompt,
		}
	}
	if !r.AspectRatio.Valid() {
		return &ClassifiedError{
			Category: CategoryConfiguration,
			Message:  fmt.Sprintf("Unsupported aspect ratio %q. Choose one of 1:1, 16:9, 9:16, 4:3, 3:4.", r.AspectRatio),
			Err:      ErrUnsupportedAspectRatio,
		}
	}
	return nil
}
