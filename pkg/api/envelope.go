package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Коды результата, которые возвращает backend в поле resultCode
const (
	CodeSuccess   = 200
	CodeForbidden = 403
)

// ResultCode код результата из конверта ответа.
// Backend присылает его то строкой ("200"), то числом (200),
// поэтому значение нормализуется при декодировании и дальше
// сравнивается только через IsSuccess/IsForbidden.
type ResultCode string

// UnmarshalJSON принимает как строку, так и число
func (c *ResultCode) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*c = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("invalid result code: %w", err)
		}
		*c = ResultCode(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid result code: %w", err)
	}
	*c = ResultCode(n.String())
	return nil
}

// Int возвращает числовое значение кода, ok=false если код не число
func (c ResultCode) Int() (int, bool) {
	n, err := strconv.Atoi(string(c))
	if err != nil {
		// "200.0" тоже встречается у некоторых шлюзов
		f, ferr := strconv.ParseFloat(string(c), 64)
		if ferr != nil || f != float64(int(f)) {
			return 0, false
		}
		return int(f), true
	}
	return n, true
}

// Is сравнивает код с числовым значением
func (c ResultCode) Is(code int) bool {
	n, ok := c.Int()
	return ok && n == code
}

// IsSuccess сообщает, является ли код успешным (200 строкой или числом)
func (c ResultCode) IsSuccess() bool {
	return c.Is(CodeSuccess)
}

// IsForbidden сообщает об ошибке авторизации (403)
func (c ResultCode) IsForbidden() bool {
	return c.Is(CodeForbidden)
}

// IsSuccess единая точка сравнения кода результата с признаком успеха
func IsSuccess(code ResultCode) bool {
	return code.IsSuccess()
}

// Envelope единый конверт ответа backend
type Envelope[T any] struct {
	Result        T          `json:"result"`
	ResultCode    ResultCode `json:"resultCode"`
	ResultMessage string     `json:"resultMessage"`
}

// Message возвращает resultMessage или fallback, если сообщение пустое
func (e *Envelope[T]) Message(fallback string) string {
	if e == nil || strings.TrimSpace(e.ResultMessage) == "" {
		return fallback
	}
	return e.ResultMessage
}

// CodeItem элемент справочника кодов (подсказки пароля, пол)
type CodeItem struct {
	Code   string `json:"code"`
	CodeNm string `json:"codeNm"`
}

// CodeName ищет название кода в справочнике, возвращает сам код если не найден
func CodeName(items []CodeItem, code string) string {
	for _, item := range items {
		if item.Code == code {
			if item.CodeNm == "" {
				return code
			}
			return item.CodeNm
		}
	}
	return code
}

// FormatDate обрезает дату backend до YYYY-MM-DD
func FormatDate(s string) string {
	if len(s) < 10 {
		return s
	}
	return s[:10]
}

// FormatDateTime приводит дату backend к виду YYYY-MM-DD HH:MM:SS
func FormatDateTime(s string) string {
	s = strings.Replace(s, "T", " ", 1)
	if len(s) < 19 {
		return s
	}
	return s[:19]
}
