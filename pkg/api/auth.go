package api

// Типы пользователя (userSe) backend
const (
	UserSeGeneral = "GNR"
	UserSeMember  = "USR"
	UserSeAdmin   = "ADM"

	// GroupAdmin группа администраторов
	GroupAdmin = "ROLE_ADMIN"
)

// User представляет авторизованного пользователя (resultVO)
type User struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	UserSe  string `json:"userSe,omitempty"`
	UniqID  string `json:"uniqId,omitempty"`
	GroupNm string `json:"groupNm,omitempty"`
}

// IsAdmin подсказка для интерфейса, не является проверкой прав.
// Реальную авторизацию выполняет backend.
func (u *User) IsAdmin() bool {
	if u == nil {
		return false
	}
	return u.UserSe == UserSeAdmin || u.GroupNm == GroupAdmin
}

// LoginRequest запрос на вход (POST /auth/login-jwt)
type LoginRequest struct {
	ID       string `json:"id"`
	Password string `json:"password"`
	UserSe   string `json:"userSe,omitempty"`
}

// LoginResult полезная нагрузка ответа на вход
type LoginResult struct {
	ResultVO *User  `json:"resultVO,omitempty"`
	JToken   string `json:"jToken,omitempty"`
}

// LoginResponse ответ на вход.
// Backend кладет jToken и resultVO либо в корень конверта, либо в result,
// поддерживаются оба варианта.
type LoginResponse struct {
	Result        *LoginResult `json:"result,omitempty"`
	ResultVO      *User        `json:"resultVO,omitempty"`
	ResultCode    ResultCode   `json:"resultCode"`
	ResultMessage string       `json:"resultMessage"`
	JToken        string       `json:"jToken,omitempty"`
}

// Token возвращает jToken из корня ответа или из result
func (r *LoginResponse) Token() string {
	if r == nil {
		return ""
	}
	if r.JToken != "" {
		return r.JToken
	}
	if r.Result != nil {
		return r.Result.JToken
	}
	return ""
}

// User возвращает resultVO из корня ответа или из result
func (r *LoginResponse) User() *User {
	if r == nil {
		return nil
	}
	if r.ResultVO != nil {
		return r.ResultVO
	}
	if r.Result != nil {
		return r.Result.ResultVO
	}
	return nil
}
