package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultCode_Unmarshal(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		success   bool
		forbidden bool
	}{
		{name: "string 200", raw: `{"resultCode":"200"}`, success: true},
		{name: "number 200", raw: `{"resultCode":200}`, success: true},
		{name: "padded string", raw: `{"resultCode":" 200 "}`, success: true},
		{name: "number 403", raw: `{"resultCode":403}`, forbidden: true},
		{name: "string 403", raw: `{"resultCode":"403"}`, forbidden: true},
		{name: "other code", raw: `{"resultCode":"900"}`},
		{name: "missing", raw: `{}`},
		{name: "null", raw: `{"resultCode":null}`},
		{name: "text", raw: `{"resultCode":"fail"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var env Envelope[json.RawMessage]
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &env))
			assert.Equal(t, tt.success, IsSuccess(env.ResultCode))
			assert.Equal(t, tt.forbidden, env.ResultCode.IsForbidden())
		})
	}
}

func TestResultCode_UnmarshalInvalid(t *testing.T) {
	var env Envelope[json.RawMessage]
	err := json.Unmarshal([]byte(`{"resultCode":{"a":1}}`), &env)
	assert.Error(t, err)
}

func TestEnvelope_Err(t *testing.T) {
	ok := &Envelope[any]{ResultCode: "200"}
	assert.NoError(t, ok.Err("fallback"))

	failed := &Envelope[any]{ResultCode: "500", ResultMessage: "duplicate id"}
	err := failed.Err("fallback")
	var resErr *ResultError
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "duplicate id", err.Error())
	assert.False(t, resErr.Forbidden())

	noMsg := &Envelope[any]{ResultCode: "403"}
	err = noMsg.Err("fallback")
	require.ErrorAs(t, err, &resErr)
	assert.Equal(t, "fallback", err.Error())
	assert.True(t, resErr.Forbidden())

	var nilEnv *Envelope[any]
	assert.EqualError(t, nilEnv.Err("fallback"), "fallback")
}

func TestLoginResponse_TokenAndUser(t *testing.T) {
	var top LoginResponse
	require.NoError(t, json.Unmarshal([]byte(`{"resultCode":"200","jToken":"t1","resultVO":{"id":"u1","name":"U"}}`), &top))
	assert.Equal(t, "t1", top.Token())
	assert.Equal(t, "u1", top.User().ID)

	var nested LoginResponse
	require.NoError(t, json.Unmarshal([]byte(`{"resultCode":200,"result":{"jToken":"t2","resultVO":{"id":"u2","name":"U"}}}`), &nested))
	assert.Equal(t, "t2", nested.Token())
	assert.Equal(t, "u2", nested.User().ID)

	var empty LoginResponse
	assert.Empty(t, empty.Token())
	assert.Nil(t, empty.User())
}

func TestHelpers(t *testing.T) {
	assert.Equal(t, "2024-01-02", FormatDate("2024-01-02 10:11:12"))
	assert.Equal(t, "", FormatDate(""))
	assert.Equal(t, "2024-01-02 10:11:12", FormatDateTime("2024-01-02T10:11:12.000"))

	codes := []CodeItem{{Code: "M", CodeNm: "Male"}, {Code: "F", CodeNm: "Female"}}
	assert.Equal(t, "Female", CodeName(codes, "F"))
	assert.Equal(t, "X", CodeName(codes, "X"))

	a := BoardArticle{NtcrNm: "guest", ReplyLc: "2"}
	assert.Equal(t, "guest", a.Author())
	assert.Equal(t, 2, a.ReplyDepth())
	assert.Equal(t, "-", (&BoardArticle{}).Author())

	assert.Equal(t, "active", Member{MberSttus: "P"}.StatusName())
	assert.Equal(t, "Z", Member{MberSttus: "Z"}.StatusName())

	assert.True(t, (&User{UserSe: UserSeAdmin}).IsAdmin())
	assert.True(t, (&User{GroupNm: GroupAdmin}).IsAdmin())
	assert.False(t, (&User{UserSe: UserSeMember}).IsAdmin())
}
