package validation

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	// MinPasswordLen минимальная длина пароля при регистрации.
	// Считается в символах, не в байтах.
	MinPasswordLen = 4
)

var (
	ErrMemberIDEmpty     = errors.New("id is required")
	ErrPasswordMismatch  = errors.New("passwords do not match")
	ErrPasswordTooShort  = fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	ErrTitleRequired     = errors.New("title is required")
	ErrContentRequired   = errors.New("content is required")
	ErrRequiredFieldMiss = errors.New("field is required")
)

// ValidateMemberID проверяет, что id не пустой
func ValidateMemberID(id string) error {
	if strings.TrimSpace(id) == "" {
		return ErrMemberIDEmpty
	}
	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
func ValidatePassword(password string) error {
	if utf8.RuneCountInString(password) < MinPasswordLen {
		return ErrPasswordTooShort
	}
	return nil
}

// ValidatePasswordConfirm проверяет совпадение пароля и подтверждения
func ValidatePasswordConfirm(password, confirm string) error {
	if password != confirm {
		return ErrPasswordMismatch
	}
	return nil
}

// Required проверяет, что значение не пустое после trim
func Required(value string) error {
	if strings.TrimSpace(value) == "" {
		return ErrRequiredFieldMiss
	}
	return nil
}
