package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/shouni/gemini-imagen-kit/pkg/domain"
	"github.com/shouni/gemini-imagen-kit/pkg/generator"
	"github.com/shouni/gemini-imagen-kit/pkg/imgutil"
)

// Config はアプリケーション全体の設定です。
// 設定ファイル（YAML）を読み込んだあと、環境変数で上書きします。
type Config struct {
	APIKey           string `yaml:"api_key" env:"GEMINI_API_KEY,API_KEY" env-description:"Gemini API key"`
	Mode             string `yaml:"mode" env:"IMAGEGEN_MODE" env-default:"image" env-description:"image, gemini-image or description"`
	ImageModel       string `yaml:"image_model" env:"IMAGEGEN_IMAGE_MODEL" env-default:"imagen-4.0-generate-001" env-description:"Imagen model name"`
	GeminiImageModel string `yaml:"gemini_image_model" env:"IMAGEGEN_GEMINI_IMAGE_MODEL" env-default:"gemini-2.5-flash-image" env-description:"Gemini image model name"`
	TextModel        string `yaml:"text_model" env:"IMAGEGEN_TEXT_MODEL" env-default:"gemini-2.5-flash" env-description:"Gemini text model name for descriptions"`
	AspectRatio      string `yaml:"aspect_ratio" env:"IMAGEGEN_ASPECT_RATIO" env-default:"1:1" env-description:"1:1, 16:9, 9:16, 4:3 or 3:4"`
	OutputMIMEType   string `yaml:"output_mime_type" env:"IMAGEGEN_OUTPUT_MIME_TYPE" env-default:"image/png" env-description:"image/png or image/jpeg"`
	JPEGQuality      int    `yaml:"jpeg_quality" env:"IMAGEGEN_JPEG_QUALITY" env-default:"90" env-description:"JPEG quality (1-100)"`
	LogLevel         string `yaml:"log_level" env:"LOG_LEVEL" env-default:"info" env-description:"debug, info, warn or error"`
}

// Load は設定を読み込みます。path が空なら環境変数だけを使います。
func Load(path string) (*Config, error) {
	cfg := &Config{}

	var err error
	if path == "" {
		err = cleanenv.ReadEnv(cfg)
	} else {
		err = cleanenv.ReadConfig(path, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Usage は環境変数の説明を返します。
func Usage() string {
	desc, err := cleanenv.GetDescription(&Config{}, nil)
	if err != nil {
		return ""
	}
	return desc
}

// Validate は列挙値を検証します。API キーの有無は Resolver が判断するのでここでは見ません。
func (c *Config) Validate() error {
	if _, err := domain.ParseMode(c.Mode); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if _, err := domain.ParseAspectRatio(c.AspectRatio); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	switch c.OutputMIMEType {
	case imgutil.MIMETypePNG, imgutil.MIMETypeJPEG:
	default:
		return fmt.Errorf("config: unsupported output_mime_type %q", c.OutputMIMEType)
	}
	if c.JPEGQuality < 1 || c.JPEGQuality > 100 {
		return fmt.Errorf("config: jpeg_quality must be between 1 and 100, got %d", c.JPEGQuality)
	}
	if _, err := parseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// GeneratorOptions は generator 用のオプションに変換します。
func (c *Config) GeneratorOptions() generator.Options {
	mode, _ := domain.ParseMode(c.Mode)
	return generator.Options{
		Mode:             mode,
		ImageModel:       c.ImageModel,
		GeminiImageModel: c.GeminiImageModel,
		TextModel:        c.TextModel,
		OutputMIMEType:   c.OutputMIMEType,
		JPEGQuality:      c.JPEGQuality,
	}
}

// DefaultAspectRatio は設定された縦横比です。
func (c *Config) DefaultAspectRatio() domain.AspectRatio {
	r, err := domain.ParseAspectRatio(c.AspectRatio)
	if err != nil {
		return domain.DefaultAspectRatio
	}
	return r
}

// SlogLevel はログレベルを返します。
func (c *Config) SlogLevel() slog.Level {
	l, _ := parseLevel(c.LogLevel)
	return l
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, nil
	case "", "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return slog.LevelInfo, fmt.Errorf("unknown log level %q", s)
	}
}
