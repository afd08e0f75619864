package handler

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// FieldError 驗證失敗的單一欄位：path 用 json 欄位路徑
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

var alphanumSpaceRegex = regexp.MustCompile(`^[a-zA-Z0-9 ]+$`)

// RegisterValidations 掛上自訂規則並讓錯誤訊息用 json tag 當欄位名。
// 需在綁定任何請求前呼叫一次。
func RegisterValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("unexpected validator engine")
	}

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return v.RegisterValidation("alphanumspace", func(fl validator.FieldLevel) bool {
		return alphanumSpaceRegex.MatchString(fl.Field().String())
	})
}

// FieldErrorsFrom 把綁定錯誤轉成 {path, message} 清單
func FieldErrorsFrom(err error) []FieldError {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []FieldError{{Path: "", Message: "Invalid request body"}}
	}

	fieldErrors := make([]FieldError, 0, len(verrs))
	for _, fe := range verrs {
		fieldErrors = append(fieldErrors, FieldError{
			Path:    fieldPath(fe),
			Message: fieldMessage(fe),
		})
	}
	return fieldErrors
}

// fieldPath 去掉最外層的結構名稱："UpsertEventRequest.location.latitude" → "location.latitude"
func fieldPath(fe validator.FieldError) string {
	parts := strings.Split(fe.Namespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	return strings.Join(parts, ".")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "Field is required"
	case "alphanumspace":
		return "Name must be alphanumeric"
	default:
		return fmt.Sprintf("Failed on rule %q", fe.Tag())
	}
}
