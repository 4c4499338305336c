package imgutil

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"net/http"
	"strings"
)

const (
	MIMETypePNG  = "image/png"
	MIMETypeJPEG = "image/jpeg"
)

// CompressToJPEG は画像データ（PNG, GIF, JPEG等）をJPEG形式に変換します。
func CompressToJPEG(data []byte, quality int) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("画像のデコードに失敗しました: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := jpeg.Encode(buf, img, &jpeg.Options{Quality: quality}); err != nil {
		return nil, fmt.Errorf("JPEGエンコードに失敗しました: %w", err)
	}
	return buf.Bytes(), nil
}

// ConvertToPNG は画像データをPNG形式に変換します。
func ConvertToPNG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("画像のデコードに失敗しました: %w", err)
	}

	buf := new(bytes.Buffer)
	if err := png.Encode(buf, img); err != nil {
		return nil, fmt.Errorf("PNGエンコードに失敗しました: %w", err)
	}
	return buf.Bytes(), nil
}

// Transcode は data を mimeType の形式に揃えます。
// すでに同じ形式であればそのまま返します（再エンコードしない）。
func Transcode(data []byte, mimeType string, jpegQuality int) ([]byte, string, error) {
	current := DetectMIMEType(data)
	if current == mimeType {
		return data, mimeType, nil
	}

	switch mimeType {
	case MIMETypeJPEG:
		out, err := CompressToJPEG(data, jpegQuality)
		return out, MIMETypeJPEG, err
	case MIMETypePNG:
		out, err := ConvertToPNG(data)
		return out, MIMETypePNG, err
	default:
		return nil, "", fmt.Errorf("未対応の出力形式です: %s", mimeType)
	}
}

// DetectMIMEType はバイト列から MIME タイプを判定します。パラメータ部分は除きます。
func DetectMIMEType(data []byte) string {
	mimeType := http.DetectContentType(data)
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = mimeType[:i]
	}
	return mimeType
}

// EncodeBase64 は標準の base64 文字列を返します。
func EncodeBase64(data []byte) string {
	return base64.StdEncoding.EncodeToString(data)
}

// EncodeDataURI は <img src> にそのまま使える data URI を返します。
func EncodeDataURI(data []byte, mimeType string) string {
	if mimeType == "" {
		mimeType = DetectMIMEType(data)
	}
	return "data:" + mimeType + ";base64," + EncodeBase64(data)
}

// Extension は MIME タイプに対応するファイル拡張子（ドット付き）を返します。
func Extension(mimeType string) string {
	switch mimeType {
	case MIMETypeJPEG:
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
