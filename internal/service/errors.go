package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/folio/internal/store"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrValidation 表示输入缺失或格式错误，在任何写入之前返回。
	ErrValidation = errors.New("invalid input")
	// ErrStore 表示记录存储读写失败，可由用户手动重试。
	ErrStore = errors.New("record store unavailable")
	// ErrUnknownKind 表示请求的内容类型不存在。
	ErrUnknownKind = errors.New("unknown content kind")
	// ErrNotModerated 表示该类型没有审核状态，不能切换。
	ErrNotModerated = store.ErrNotModerated
)

// ValidationError 描述单个字段的校验失败。
type ValidationError struct {
	Field string
	Rule  string
	Param string
}

func (e *ValidationError) Error() string {
	if e.Param != "" {
		return fmt.Sprintf("%s: %s=%s", e.Field, e.Rule, e.Param)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Rule)
}

// Unwrap 让 errors.Is(err, ErrValidation) 成立。
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

func storeError(op string, err error) error {
	return fmt.Errorf("%s: %w: %w", op, ErrStore, err)
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}
		return name
	})
	return v
}

// validateInput 返回第一个失败字段；字段顺序与结构体声明一致。
func validateInput(input any) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		first := fieldErrs[0]
		return &ValidationError{Field: first.Field(), Rule: first.Tag(), Param: first.Param()}
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}
