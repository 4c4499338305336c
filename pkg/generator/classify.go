package generator

import (
	"errors"
	"strings"

	"github.com/shouni/gemini-imagen-kit/pkg/domain"
)

// 認証エラーとみなす文字列。最後のものは自分たちの MessageInvalidKey に一致させるため。
var invalidKeyMarkers = []string{
	"API key not valid",
	"API_KEY_INVALID",
	"API key is not valid",
}

// 課金まわりの文字列（小文字で比較）。"billed users" は Imagen が無料枠で返す文言。
var billingMarkers = []string{
	"billing",
	"billed users",
}

// ClassifyMessage はエラーメッセージから分類を決める純粋関数です。
// どの目印にも一致しなければ CategoryUnknown を返します。
func ClassifyMessage(msg string) domain.Category {
	for _, m := range invalidKeyMarkers {
		if strings.Contains(msg, m) {
			return domain.CategoryAuthentication
		}
	}

	lower := strings.ToLower(msg)
	for _, m := range billingMarkers {
		if strings.Contains(lower, m) {
			return domain.CategoryBilling
		}
	}
	if strings.Contains(lower, "api key") {
		return domain.CategoryConfiguration
	}
	return domain.CategoryUnknown
}

// UserMessage は分類に対応する利用者向けの文言を返します。
// Unknown の場合は元のメッセージを含めます。
func UserMessage(c domain.Category, original string) string {
	switch c {
	case domain.CategoryAuthentication:
		return domain.MessageInvalidKey
	case domain.CategoryBilling:
		return domain.MessageBilling
	case domain.CategoryConfiguration:
		return domain.MessageMissingKey
	default:
		return domain.MessageUnknownPrefix + original
	}
}

// Classify は任意のエラーを ClassifiedError に変換します。
// すでに分類済みのエラー（Resolver の Configuration エラーなど）はそのまま返します。
func Classify(err error) *domain.ClassifiedError {
	if err == nil {
		return nil
	}

	var ce *domain.ClassifiedError
	if errors.As(err, &ce) && ce != nil {
		return ce
	}

	// 分類はラップ全体の文言で行い、利用者向けにはサービス自身のメッセージだけを見せる
	c := ClassifyMessage(err.Error())
	return &domain.ClassifiedError{
		Category: c,
		Message:  UserMessage(c, rootCause(err).Error()),
		Err:      err,
	}
}

// rootCause は errors.Unwrap をたどった一番内側のエラーを返す
func rootCause(err error) error {
	for {
		inner := errors.Unwrap(err)
		if inner == nil {
			return err
		}
		err = inner
	}
}
