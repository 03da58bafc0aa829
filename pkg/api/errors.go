package api

import "fmt"

// ResultError бизнес-ошибка: backend ответил кодом, отличным от 200.
// Error() возвращает resultMessage без изменений, чтобы его можно было
// показать пользователю.
type ResultError struct {
	Code    ResultCode
	Message string
}

func (e *ResultError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with result code %s", e.Code)
	}
	return e.Message
}

// Forbidden сообщает, что ошибка вызвана отказом в доступе (403)
func (e *ResultError) Forbidden() bool {
	return e.Code.IsForbidden()
}

// Err возвращает nil для успешного конверта, иначе *ResultError
// с resultMessage или fallback
func (e *Envelope[T]) Err(fallback string) error {
	if e == nil {
		return &ResultError{Message: fallback}
	}
	if e.ResultCode.IsSuccess() {
		return nil
	}
	return &ResultError{Code: e.ResultCode, Message: e.Message(fallback)}
}
