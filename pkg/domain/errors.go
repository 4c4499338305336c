package domain

import (
	"errors"
	"fmt"
)

// Category はユーザーに見せるエラーの分類です。
type Category string

const (
	CategoryConfiguration  Category = "configuration"
	CategoryAuthentication Category = "authentication"
	CategoryBilling        Category = "billing"
	CategorySafetyBlocked  Category = "safety_blocked"
	CategoryEmptyResult    Category = "empty_result"
	CategoryUnknown        Category = "unknown"
)

// ユーザー向けメッセージ。UI はこれをそのまま表示します。
const (
	MessageEmptyPrompt    = "Please enter a prompt."
	MessageMissingKey     = "Configuration Error: The API key is missing. Please ensure it is set up correctly in your environment configuration."
	MessagePlaceholderKey = "Configuration Error: The API key is still set to a placeholder value. Please replace it with a real key."
	MessageInvalidKey     = "Authentication Error: The API key is not valid. Please check your environment configuration."
	MessageBilling        = "Account Issue: This feature requires a billing-enabled Google Cloud project. Please enable billing and try again."
	MessageEmptyResult    = "No image was generated. The response was empty, possibly blocked by the safety policy."
	MessageEmptyText      = "No description was generated. The response was empty, possibly blocked by the safety policy."
	MessageUnknownPrefix  = "An unexpected error occurred: "
)

var (
	ErrEmptyPrompt            = errors.New("prompt is empty")
	ErrUnsupportedAspectRatio = errors.New("unsupported aspect ratio")
	ErrMissingCredential      = errors.New("credential is not configured")
	ErrPlaceholderCredential  = errors.New("credential is a placeholder")
	ErrEmptyResult            = errors.New("service returned no result")
	ErrSafetyBlocked          = errors.New("blocked by safety policy")
)

// ClassifiedError は分類済みのエラーです。Message は利用者にそのまま表示できる文言です。
type ClassifiedError struct {
	Category Category
	Message  string
	Err      error
}

func (e *ClassifiedError) Error() string {
	if e == nil {
		return "classified error"
	}
	if e.Message != "" {
		return e.Message
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("%s error", e.Category)
}

func (e *ClassifiedError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// CategoryOf はエラーチェーン中の ClassifiedError の分類を返します。
// 分類されていないエラーは CategoryUnknown です。
func CategoryOf(err error) Category {
	var ce *ClassifiedError
	if errors.As(err, &ce) && ce != nil {
		return ce.Category
	}
	return CategoryUnknown
}

// IsCategory は err が分類 c に属するかを返します。
func IsCategory(err error, c Category) bool {
	if err == nil {
		return false
	}
	return CategoryOf(err) == c
}

// NewConfigurationError は認証情報まわりの設定エラーを作ります。
func NewConfigurationError(cause error) *ClassifiedError {
	msg := MessageMissingKey
	if errors.Is(cause, ErrPlaceholderCredential) {
		msg = MessagePlaceholderKey
	}
	return &ClassifiedError{Category: CategoryConfiguration, Message: msg, Err: cause}
}

// NewEmptyResultError は結果が0件だった場合のエラーです。
func NewEmptyResultError(kind ResultKind) *ClassifiedError {
	msg := MessageEmptyResult
	if kind == KindText {
		msg = MessageEmptyText
	}
	return &ClassifiedError{Category: CategoryEmptyResult, Message: msg, Err: ErrEmptyResult}
}

// NewSafetyBlockedError は安全フィルターによるブロックを表します。reason は API が返した理由です。
func NewSafetyBlockedError(reason string) *ClassifiedError {
	msg := "The request was blocked by the safety policy."
	if reason != "" {
		msg = fmt.Sprintf("The request was blocked by the safety policy: %s", reason)
	}
	return &ClassifiedError{Category: CategorySafetyBlocked, Message: msg, Err: ErrSafetyBlocked}
}
