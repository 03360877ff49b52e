package apperrors

import (
	"errors"
	"net/http"
)

// Category hata sınıfını tanımlar; HTTP durum koduna eşlenir.
type Category int

const (
	CategoryBadRequest Category = iota
	CategoryUnauthorized
	CategoryForbidden
	CategoryNotFound
	CategoryConflict
	CategoryInternal
)

// AppError servis katmanının dışarı verdiği tek hata tipidir.
type AppError struct {
	Category Category
	Message  string
	Err      error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is aynı kategorideki iki AppError'ı eş sayar; böylece servislerin
// tanımladığı adlandırılmış hata sabitleri errors.Is ile karşılaştırılabilir.
func (e *AppError) Is(target error) bool {
	var t *AppError
	if errors.As(target, &t) {
		return e.Category == t.Category
	}
	return false
}

// StatusCode kategorinin HTTP karşılığını döndürür.
func (e *AppError) StatusCode() int {
	switch e.Category {
	case CategoryBadRequest:
		return http.StatusBadRequest
	case CategoryUnauthorized:
		return http.StatusUnauthorized
	case CategoryForbidden:
		return http.StatusForbidden
	case CategoryNotFound:
		return http.StatusNotFound
	case CategoryConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func New(category Category, message string) *AppError {
	return &AppError{Category: category, Message: message}
}

func NotFound(message string) *AppError {
	return New(CategoryNotFound, message)
}

func Conflict(message string) *AppError {
	return New(CategoryConflict, message)
}

func BadRequest(message string) *AppError {
	return New(CategoryBadRequest, message)
}

func Unauthorized(message string) *AppError {
	return New(CategoryUnauthorized, message)
}

func Forbidden(message string) *AppError {
	return New(CategoryForbidden, message)
}

// Internal beklenmeyen bir hatayı sarmalar; mesaj istemciye gider, asıl
// hata loglama için Err alanında kalır.
func Internal(err error) *AppError {
	return &AppError{Category: CategoryInternal, Message: "beklenmeyen bir hata oluştu", Err: err}
}

// StatusOf herhangi bir hatadan HTTP durum kodu türetir.
func StatusOf(err error) int {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.StatusCode()
	}
	return http.StatusInternalServerError
}
