// Package member реализует экран регистрации пользователя.
package member

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"

	"github.com/iudanet/egovcms/internal/client/api"
	"github.com/iudanet/egovcms/internal/validation"
	pkgapi "github.com/iudanet/egovcms/pkg/api"
)

//go:generate moq -out api_mock_test.go . API

// API операции REST клиента, нужные регистрации
type API interface {
	SignupForm(ctx context.Context) (*pkgapi.Envelope[*pkgapi.SignupFormData], error)
	CheckID(ctx context.Context, id string) (*pkgapi.Envelope[*pkgapi.CheckIDResult], error)
	Signup(ctx context.Context, data pkgapi.MemberData) (*pkgapi.Envelope[json.RawMessage], error)
	Agreement(ctx context.Context) (*pkgapi.Envelope[*pkgapi.AgreementData], error)
}

const (
	MsgSignupFailed    = "signup failed"
	MsgFormFailed      = "failed to load signup form"
	MsgAgreementFailed = "failed to load terms of use"
)

var (
	ErrIDTaken      = errors.New("id is already in use")
	ErrIDNotChecked = errors.New("check id availability first")
)

// Signup состояние формы регистрации.
// Проверка id действительна только для того id, который проверялся.
type Signup struct {
	api           API
	passwordHints []pkgapi.CodeItem
	genderCodes   []pkgapi.CodeItem
	checkedID     string
	idAvailable   bool
}

// NewSignup создает контроллер регистрации
func NewSignup(a API) *Signup {
	return &Signup{api: a}
}

// LoadForm загружает справочники формы (подсказки пароля, пол)
func (s *Signup) LoadForm(ctx context.Context) error {
	resp, err := s.api.SignupForm(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("signup form failed")
		return api.Unavailable(err)
	}
	if err := resp.Err(MsgFormFailed); err != nil {
		return err
	}
	if resp.Result != nil {
		s.passwordHints = resp.Result.PasswordHints
		s.genderCodes = resp.Result.GenderCodes
	}
	return nil
}

// PasswordHints справочник подсказок пароля
func (s *Signup) PasswordHints() []pkgapi.CodeItem {
	return append([]pkgapi.CodeItem(nil), s.passwordHints...)
}

// GenderCodes справочник кодов пола
func (s *Signup) GenderCodes() []pkgapi.CodeItem {
	return append([]pkgapi.CodeItem(nil), s.genderCodes...)
}

// SetID вызывается при изменении id в форме: проверка сбрасывается
func (s *Signup) SetID(id string) {
	if id != s.checkedID {
		s.checkedID = ""
		s.idAvailable = false
	}
}

// IDChecked сообщает, что id проверен и свободен
func (s *Signup) IDChecked(id string) bool {
	return s.checkedID != "" && s.checkedID == id && s.idAvailable
}

// CheckID проверяет, свободен ли id. Занятый id возвращает ErrIDTaken.
func (s *Signup) CheckID(ctx context.Context, id string) error {
	s.SetID(id)
	if err := validation.ValidateMemberID(id); err != nil {
		return criterio.NewFieldErrors("mberId", err)
	}

	resp, err := s.api.CheckID(ctx, id)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("id", id).Msg("check id failed")
		return api.Unavailable(err)
	}

	s.checkedID = id
	s.idAvailable = resp.Result.Available()
	if !s.idAvailable {
		return ErrIDTaken
	}
	return nil
}

// Submit проверяет форму и отправляет регистрацию.
// При ошибке проверки запрос не выполняется.
func (s *Signup) Submit(ctx context.Context, data pkgapi.MemberData, confirm string) error {
	if err := s.Validate(data, confirm); err != nil {
		return err
	}

	resp, err := s.api.Signup(ctx, data)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("id", data.MberID).Msg("signup failed")
		return api.Unavailable(err)
	}
	if err := resp.Err(MsgSignupFailed); err != nil {
		return err
	}

	zerolog.Ctx(ctx).Info().Str("id", data.MberID).Msg("member registered")
	return nil
}

// Validate проверяет форму: id проверен, пароли совпадают, длина пароля
func (s *Signup) Validate(data pkgapi.MemberData, confirm string) error {
	var errs criterio.FieldErrorsBuilder
	if !s.IDChecked(data.MberID) {
		errs = errs.Append("mberId", ErrIDNotChecked)
	}
	if err := validation.ValidatePasswordConfirm(data.Password, confirm); err != nil {
		errs = errs.Append("password", err)
	}
	if err := validation.ValidatePassword(data.Password); err != nil {
		errs = errs.Append("password", err)
	}
	if strings.TrimSpace(data.MberNm) == "" {
		errs = errs.Append("mberNm", validation.ErrRequiredFieldMiss)
	}
	return errs.ToError()
}

// Agreement загружает условия использования
func (s *Signup) Agreement(ctx context.Context) (*pkgapi.AgreementData, error) {
	resp, err := s.api.Agreement(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("agreement failed")
		return nil, api.Unavailable(err)
	}
	if err := resp.Err(MsgAgreementFailed); err != nil {
		return nil, err
	}
	if resp.Result == nil {
		return &pkgapi.AgreementData{}, nil
	}
	return resp.Result, nil
}
