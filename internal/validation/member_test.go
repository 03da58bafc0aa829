package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{name: "empty", password: "", wantErr: ErrPasswordTooShort},
		{name: "too short (2 chars)", password: "ab", wantErr: ErrPasswordTooShort},
		{name: "too short (3 chars)", password: "abc", wantErr: ErrPasswordTooShort},
		{name: "min length", password: "abcd", wantErr: nil},
		{name: "long", password: "a-very-long-password", wantErr: nil},
		{name: "multibyte counts runes", password: "비밀번호", wantErr: nil},
		{name: "multibyte too short", password: "비밀", wantErr: ErrPasswordTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidatePasswordMessage(t *testing.T) {
	assert.EqualError(t, ValidatePassword("ab"), "password must be at least 4 characters")
}

func TestValidatePasswordConfirm(t *testing.T) {
	assert.NoError(t, ValidatePasswordConfirm("secret", "secret"))
	assert.ErrorIs(t, ValidatePasswordConfirm("secret", "Secret"), ErrPasswordMismatch)
	assert.ErrorIs(t, ValidatePasswordConfirm("secret", ""), ErrPasswordMismatch)
}

func TestValidateMemberID(t *testing.T) {
	assert.NoError(t, ValidateMemberID("user01"))
	assert.ErrorIs(t, ValidateMemberID(""), ErrMemberIDEmpty)
	assert.ErrorIs(t, ValidateMemberID("   "), ErrMemberIDEmpty)
}

func TestRequired(t *testing.T) {
	assert.NoError(t, Required("title"))
	assert.NoError(t, Required("  title  "))
	assert.ErrorIs(t, Required(""), ErrRequiredFieldMiss)
	assert.ErrorIs(t, Required(" \t\n"), ErrRequiredFieldMiss)
}
