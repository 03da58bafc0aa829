// Package mypage реализует экран профиля: просмотр, изменение и удаление аккаунта.
package mypage

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"

	"github.com/iudanet/egovcms/internal/client/api"
	"github.com/iudanet/egovcms/internal/client/session"
	"github.com/iudanet/egovcms/internal/validation"
	pkgapi "github.com/iudanet/egovcms/pkg/api"
)

// API операции REST клиента, нужные профилю
type API interface {
	Mypage(ctx context.Context) (*pkgapi.Envelope[*pkgapi.MypageData], error)
	UpdateMypage(ctx context.Context, m pkgapi.MemberManage) (*pkgapi.Envelope[json.RawMessage], error)
	WithdrawMypage(ctx context.Context, uniqID string) (*pkgapi.Envelope[json.RawMessage], error)
}

// Session операции сессии, нужные профилю
type Session interface {
	RequireLogin() error
	User() *pkgapi.User
	SetUser(ctx context.Context, user *pkgapi.User) error
	Clear(ctx context.Context) error
}

const (
	MsgLoadFailed     = "failed to load profile"
	MsgUpdateFailed   = "failed to update profile"
	MsgWithdrawFailed = "failed to delete account"
)

var ErrProfileMissing = errors.New("profile not found")

// Profile профиль со справочниками кодов
type Profile struct {
	Member        pkgapi.MemberManage
	PasswordHints []pkgapi.CodeItem
	GenderCodes   []pkgapi.CodeItem
}

// GenderName название кода пола
func (p *Profile) GenderName() string {
	return pkgapi.CodeName(p.GenderCodes, p.Member.SexdstnCode)
}

// PasswordHintName название подсказки пароля
func (p *Profile) PasswordHintName() string {
	return pkgapi.CodeName(p.PasswordHints, p.Member.PasswordHint)
}

// Service операции над профилем текущего пользователя
type Service struct {
	api     API
	session Session
}

// NewService создает сервис профиля
func NewService(a API, s Session) *Service {
	return &Service{api: a, session: s}
}

// Load загружает профиль. При 403 сессия считается недействительной и очищается.
func (s *Service) Load(ctx context.Context) (*Profile, error) {
	log := zerolog.Ctx(ctx)

	if err := s.session.RequireLogin(); err != nil {
		return nil, err
	}

	resp, err := s.api.Mypage(ctx)
	if err != nil {
		log.Error().Err(err).Msg("mypage load failed")
		return nil, api.Unavailable(err)
	}
	if resp.ResultCode.IsForbidden() {
		if err := s.session.Clear(ctx); err != nil {
			log.Warn().Err(err).Msg("failed to clear stale session")
		}
		return nil, session.ErrLoginRequired
	}
	if err := resp.Err(MsgLoadFailed); err != nil {
		return nil, err
	}
	if resp.Result == nil || resp.Result.MberManageVO == nil {
		return nil, ErrProfileMissing
	}

	return &Profile{
		Member:        *resp.Result.MberManageVO,
		PasswordHints: resp.Result.PasswordHints,
		GenderCodes:   resp.Result.GenderCodes,
	}, nil
}

// Update сохраняет профиль и переносит новое имя в пользователя сессии
func (s *Service) Update(ctx context.Context, m pkgapi.MemberManage) error {
	log := zerolog.Ctx(ctx)

	if err := s.session.RequireLogin(); err != nil {
		return err
	}
	if err := validateProfile(m); err != nil {
		return err
	}

	resp, err := s.api.UpdateMypage(ctx, m)
	if err != nil {
		log.Error().Err(err).Msg("mypage update failed")
		return api.Unavailable(err)
	}
	if resp.ResultCode.IsForbidden() {
		return session.ErrLoginRequired
	}
	if err := resp.Err(MsgUpdateFailed); err != nil {
		return err
	}

	if user := s.session.User(); user != nil && m.MberNm != "" {
		user.Name = m.MberNm
		if m.MberEmailAdres != "" {
			user.Email = m.MberEmailAdres
		}
		if err := s.session.SetUser(ctx, user); err != nil {
			log.Warn().Err(err).Msg("failed to persist updated user")
		}
	}
	return nil
}

// Withdraw удаляет аккаунт и при успехе завершает сессию локально
func (s *Service) Withdraw(ctx context.Context, uniqID string) error {
	log := zerolog.Ctx(ctx)

	if err := s.session.RequireLogin(); err != nil {
		return err
	}
	if uniqID == "" {
		if user := s.session.User(); user != nil {
			uniqID = user.UniqID
		}
	}
	if uniqID == "" {
		return ErrProfileMissing
	}

	resp, err := s.api.WithdrawMypage(ctx, uniqID)
	if err != nil {
		log.Error().Err(err).Msg("mypage withdraw failed")
		return api.Unavailable(err)
	}
	if resp.ResultCode.IsForbidden() {
		return session.ErrLoginRequired
	}
	if err := resp.Err(MsgWithdrawFailed); err != nil {
		return err
	}

	log.Info().Str("uniqId", uniqID).Msg("account withdrawn")
	return s.session.Clear(ctx)
}

func validateProfile(m pkgapi.MemberManage) error {
	var errs criterio.FieldErrorsBuilder
	if strings.TrimSpace(m.MberNm) == "" {
		errs = errs.Append("mberNm", validation.ErrRequiredFieldMiss)
	}
	if m.Password != "" {
		if err := validation.ValidatePassword(m.Password); err != nil {
			errs = errs.Append("password", err)
		}
	}
	return errs.ToError()
}
