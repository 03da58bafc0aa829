package api

// MemberData форма регистрации (POST /etc/member_insert, form-urlencoded)
type MemberData struct {
	MberID         string `json:"mberId"`
	MberNm         string `json:"mberNm"`
	Password       string `json:"password"`
	PasswordHint   string `json:"passwordHint"`
	PasswordCnsr   string `json:"passwordCnsr"`
	MberEmailAdres string `json:"mberEmailAdres"`
	SexdstnCode    string `json:"sexdstnCode"`
	MoblphonNo     string `json:"moblphonNo,omitempty"`
	Zip            string `json:"zip,omitempty"`
	Adres          string `json:"adres,omitempty"`
	DetailAdres    string `json:"detailAdres,omitempty"`
}

// Form возвращает поля формы в порядке, в котором их ожидает backend.
// Пустые необязательные поля не отправляются.
func (m MemberData) Form() [][2]string {
	fields := [][2]string{
		{"mberId", m.MberID},
		{"mberNm", m.MberNm},
		{"password", m.Password},
		{"passwordHint", m.PasswordHint},
		{"passwordCnsr", m.PasswordCnsr},
		{"mberEmailAdres", m.MberEmailAdres},
		{"sexdstnCode", m.SexdstnCode},
	}
	optional := [][2]string{
		{"moblphonNo", m.MoblphonNo},
		{"zip", m.Zip},
		{"adres", m.Adres},
		{"detailAdres", m.DetailAdres},
	}
	for _, f := range optional {
		if f[1] != "" {
			fields = append(fields, f)
		}
	}
	return fields
}

// SignupFormData справочники для формы регистрации (GET /etc/member_insert)
type SignupFormData struct {
	PasswordHints []CodeItem `json:"passwordHint_result"`
	GenderCodes   []CodeItem `json:"sexdstnCode_result"`
}

// CheckIDResult результат проверки идентификатора (GET /etc/member_checkid/{id})
type CheckIDResult struct {
	CheckID string `json:"checkId"`
	UsedCnt int    `json:"usedCnt"`
}

// Available сообщает, свободен ли идентификатор
func (r *CheckIDResult) Available() bool {
	return r != nil && r.UsedCnt == 0
}

// AgreementData условия использования (GET /etc/member_agreement)
type AgreementData struct {
	StplatList any    `json:"stplatList"`
	SbscrbTy   string `json:"sbscrbTy"`
}

// Member строка списка пользователей (GET /members)
type Member struct {
	UniqID         string `json:"uniqId"`
	MberID         string `json:"mberId"`
	MberNm         string `json:"mberNm"`
	MberEmailAdres string `json:"mberEmailAdres"`
	MberSttus      string `json:"mberSttus"`
	SbscrbDe       string `json:"sbscrbDe"`
}

// StatusName название статуса пользователя
func (m Member) StatusName() string {
	switch m.MberSttus {
	case "P":
		return "active"
	case "D":
		return "withdrawn"
	case "S":
		return "suspended"
	default:
		return m.MberSttus
	}
}

// MemberListResponse страница списка пользователей
type MemberListResponse struct {
	ResultList     []Member        `json:"resultList"`
	PaginationInfo *PaginationInfo `json:"paginationInfo,omitempty"`
}
