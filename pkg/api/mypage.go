package api

// MemberManage профиль пользователя (mberManageVO)
type MemberManage struct {
	UniqID         string `json:"uniqId"`
	MberID         string `json:"mberId"`
	MberNm         string `json:"mberNm"`
	MberEmailAdres string `json:"mberEmailAdres"`
	SexdstnCode    string `json:"sexdstnCode"`
	MoblphonNo     string `json:"moblphonNo"`
	Zip            string `json:"zip"`
	Adres          string `json:"adres"`
	DetailAdres    string `json:"detailAdres"`
	PasswordHint   string `json:"passwordHint"`
	PasswordCnsr   string `json:"passwordCnsr"`
	Password       string `json:"password,omitempty"`
}

// MypageData ответ GET /mypage
type MypageData struct {
	MberManageVO  *MemberManage `json:"mberManageVO,omitempty"`
	PasswordHints []CodeItem    `json:"passwordHint_result,omitempty"`
	GenderCodes   []CodeItem    `json:"sexdstnCode_result,omitempty"`
}

// WithdrawRequest запрос на удаление аккаунта (PUT /mypage/delete)
type WithdrawRequest struct {
	UniqID string `json:"uniqId"`
}
