package generator

import (
	"github.com/shouni/gemini-imagen-kit/pkg/domain"
	"github.com/shouni/gemini-imagen-kit/pkg/imgutil"
)

const (
	DefaultImageModel       = "imagen-4.0-generate-001"
	DefaultGeminiImageModel = "gemini-2.5-flash-image"
	DefaultTextModel        = "gemini-2.5-flash"
	DefaultOutputMIMEType   = imgutil.MIMETypePNG
	DefaultJPEGQuality      = 90
)

// Options はバックエンドの構成です。どのモードを使うかは1つの設定で決まります。
type Options struct {
	Mode             domain.Mode
	ImageModel       string
	GeminiImageModel string
	TextModel        string
	OutputMIMEType   string
	JPEGQuality      int
}

// DefaultOptions は Imagen で PNG を1枚生成する構成を返します。
func DefaultOptions() Options {
	return Options{
		Mode:             domain.ModeImage,
		ImageModel:       DefaultImageModel,
		GeminiImageModel: DefaultGeminiImageModel,
		TextModel:        DefaultTextModel,
		OutputMIMEType:   DefaultOutputMIMEType,
		JPEGQuality:      DefaultJPEGQuality,
	}
}

// withDefaults は空のフィールドをデフォルト値で埋める
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Mode == "" {
		o.Mode = d.Mode
	}
	if o.ImageModel == "" {
		o.ImageModel = d.ImageModel
	}
	if o.GeminiImageModel == "" {
		o.GeminiImageModel = d.GeminiImageModel
	}
	if o.TextModel == "" {
		o.TextModel = d.TextModel
	}
	if o.OutputMIMEType == "" {
		o.OutputMIMEType = d.OutputMIMEType
	}
	if o.JPEGQuality <= 0 || o.JPEGQuality > 100 {
		o.JPEGQuality = d.JPEGQuality
	}
	return o
}
