// Package session holds the client-side authentication state: the current
// user, the bearer token and transient login flags. Token and user are
// persisted through a storage.KeyValue collaborator which is the only
// owner of those durable entries.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/iudanet/egovcms/internal/client/storage"
	"github.com/iudanet/egovcms/pkg/api"
)

// Ключи durable storage
const (
	StorageNamespace = "auth-storage"
	TokenKey         = StorageNamespace + "/jToken"
	UserKey          = StorageNamespace + "/user"
)

// DefaultUserSe тип пользователя по умолчанию при входе
const DefaultUserSe = api.UserSeMember

// Сообщения об ошибках входа
const (
	MsgLoginFailed = "login failed"
	MsgLoginError  = "an error occurred during login"
)

// ErrLoginRequired возвращается, если операция требует входа
var ErrLoginRequired = errors.New("login required")

// Authenticator удаленные операции входа и выхода
type Authenticator interface {
	Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error)
	Logout(ctx context.Context) (*api.Envelope[json.RawMessage], error)
}

// Store хранит состояние сессии.
// Безопасен для конкурентного использования.
type Store struct {
	auth      Authenticator
	persist   storage.KeyValue
	user      *api.User
	log       zerolog.Logger
	token     string
	err       string
	mu        sync.RWMutex
	isLoading bool
}

// New создает пустое хранилище сессии.
// persist может быть nil: тогда состояние живет только в памяти,
// а Hydrate ничего не делает.
func New(auth Authenticator, persist storage.KeyValue, log zerolog.Logger) *Store {
	return &Store{
		auth:    auth,
		persist: persist,
		log:     log.With().Str("component", "session").Logger(),
	}
}

// Login выполняет вход. Никогда не возвращает ошибку:
// результат сообщается через bool, причина неудачи через LastError().
func (s *Store) Login(ctx context.Context, id, password, userSe string) bool {
	if userSe == "" {
		userSe = DefaultUserSe
	}

	s.mu.Lock()
	s.isLoading = true
	s.err = ""
	s.mu.Unlock()

	if s.auth == nil {
		s.log.Warn().Str("id", id).Msg("login without authenticator")
		s.fail(MsgLoginError)
		return false
	}

	resp, err := s.auth.Login(ctx, api.LoginRequest{ID: id, Password: password, UserSe: userSe})
	if err != nil {
		s.log.Warn().Err(err).Str("id", id).Msg("login request failed")
		s.fail(MsgLoginError)
		return false
	}

	if !resp.ResultCode.IsSuccess() {
		s.log.Debug().Str("id", id).Str("code", string(resp.ResultCode)).Msg("login rejected")
		msg := MsgLoginFailed
		if resp.ResultMessage != "" {
			msg = resp.ResultMessage
		}
		s.fail(msg)
		return false
	}

	user, token := resp.User(), resp.Token()
	if token == "" || user == nil {
		s.log.Warn().Str("id", id).Msg("login response without token or user")
		s.fail(MsgLoginFailed)
		return false
	}

	s.mu.Lock()
	s.user = cloneUser(user)
	s.token = token
	s.isLoading = false
	s.err = ""
	s.mu.Unlock()

	if err := s.persistSession(ctx, user, token); err != nil {
		// Сессия остается в памяти текущего процесса
		s.log.Warn().Err(err).Msg("failed to persist session")
	}

	return true
}

// Logout уведомляет backend (ошибка игнорируется) и очищает сессию
func (s *Store) Logout(ctx context.Context) error {
	if s.auth != nil {
		if _, err := s.auth.Logout(ctx); err != nil {
			s.log.Warn().Err(err).Msg("remote logout failed")
		}
	}
	return s.Clear(ctx)
}

// Clear очищает сессию локально, без обращения к backend.
// Память очищается всегда, ошибка относится только к durable storage.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.err = ""
	s.mu.Unlock()

	return s.removePersisted(ctx)
}

// Hydrate восстанавливает сессию из durable storage.
// Сессия восстанавливается только если есть и токен, и разбираемая запись
// пользователя. Неполная или поврежденная пара удаляется из storage.
func (s *Store) Hydrate(ctx context.Context) bool {
	if s.persist == nil {
		return false
	}

	token, err := s.read(ctx, TokenKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read stored token")
		return false
	}
	userStr, err := s.read(ctx, UserKey)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to read stored user")
		return false
	}

	if token == "" && userStr == "" {
		return false
	}

	if token == "" || userStr == "" {
		s.log.Debug().
			Bool("has_token", token != "").
			Bool("has_user", userStr != "").
			Msg("discarding partial stored session")
		s.discard(ctx)
		return false
	}

	var user *api.User
	if err := json.Unmarshal([]byte(userStr), &user); err != nil || user == nil {
		s.log.Warn().Err(err).Msg("discarding unreadable stored user")
		s.discard(ctx)
		return false
	}

	s.mu.Lock()
	s.user = user
	s.token = token
	s.mu.Unlock()

	return true
}

// SetUser заменяет пользователя и сохраняет его, nil удаляет запись
func (s *Store) SetUser(ctx context.Context, user *api.User) error {
	s.mu.Lock()
	s.user = cloneUser(user)
	s.mu.Unlock()

	if s.persist == nil {
		return nil
	}
	if user == nil {
		return s.persist.Remove(ctx, UserKey)
	}
	return s.writeUser(ctx, user)
}

// SetToken заменяет токен и сохраняет его, пустая строка удаляет запись
func (s *Store) SetToken(ctx context.Context, token string) error {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()

	if s.persist == nil {
		return nil
	}
	if token == "" {
		return s.persist.Remove(ctx, TokenKey)
	}
	return s.persist.Set(ctx, TokenKey, token)
}

// SetError задает сообщение об ошибке
func (s *Store) SetError(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = msg
}

// ClearError сбрасывает сообщение об ошибке
func (s *Store) ClearError() {
	s.SetError("")
}

// User возвращает копию текущего пользователя или nil
func (s *Store) User() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneUser(s.user)
}

// Token возвращает текущий токен, реализует api.TokenSource
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// IsLoggedIn сообщает, есть ли токен
func (s *Store) IsLoggedIn() bool {
	return s.Token() != ""
}

// IsLoading сообщает, выполняется ли вход
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isLoading
}

// LastError возвращает последнее сообщение об ошибке
func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.err
}

// RequireLogin возвращает ErrLoginRequired, если токена нет
func (s *Store) RequireLogin() error {
	if !s.IsLoggedIn() {
		return ErrLoginRequired
	}
	return nil
}

func (s *Store) fail(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.isLoading = false
	s.err = msg
}

func (s *Store) persistSession(ctx context.Context, user *api.User, token string) error {
	if s.persist == nil {
		return nil
	}
	if err := s.persist.Set(ctx, TokenKey, token); err != nil {
		return fmt.Errorf("failed to save token: %w", err)
	}
	return s.writeUser(ctx, user)
}

func (s *Store) writeUser(ctx context.Context, user *api.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to marshal user: %w", err)
	}
	if err := s.persist.Set(ctx, UserKey, string(data)); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

func (s *Store) removePersisted(ctx context.Context) error {
	if s.persist == nil {
		return nil
	}
	return errors.Join(
		s.persist.Remove(ctx, TokenKey),
		s.persist.Remove(ctx, UserKey),
	)
}

// discard удаляет устаревшие записи, ошибки только логируются
func (s *Store) discard(ctx context.Context) {
	if err := s.removePersisted(ctx); err != nil {
		s.log.Warn().Err(err).Msg("failed to discard stored session")
	}
}

// read возвращает значение ключа, пустую строку если ключа нет
func (s *Store) read(ctx context.Context, key string) (string, error) {
	v, err := s.persist.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return "", nil
	}
	return v, err
}

func cloneUser(u *api.User) *api.User {
	if u == nil {
		return nil
	}
	c := *u
	return &c
}
