// Package board реализует экраны досок: каталог, список, просмотр,
// создание/изменение и удаление записей.
package board

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/iudanet/egovcms/internal/client/session"
	pkgapi "github.com/iudanet/egovcms/pkg/api"
)

//go:generate moq -out api_mock_test.go . API

// API операции REST клиента, нужные экранам досок
type API interface {
	BoardList(ctx context.Context, q pkgapi.ListQuery) (*pkgapi.Envelope[*pkgapi.BoardListResponse], error)
	BoardDetail(ctx context.Context, bbsID string, nttID int64) (*pkgapi.Envelope[*pkgapi.BoardDetailResponse], error)
	CreateArticle(ctx context.Context, draft pkgapi.ArticleDraft) (*pkgapi.Envelope[json.RawMessage], error)
	UpdateArticle(ctx context.Context, nttID int64, draft pkgapi.ArticleDraft) (*pkgapi.Envelope[json.RawMessage], error)
	DeleteArticle(ctx context.Context, bbsID string, nttID int64) (*pkgapi.Envelope[json.RawMessage], error)
	FileAtchInfo(ctx context.Context, bbsID string) (*pkgapi.Envelope[*pkgapi.BoardMaster], error)
}

// Session данные сессии, нужные экранам досок
type Session interface {
	RequireLogin() error
	User() *pkgapi.User
}

const (
	// DefaultBoardName имя доски, если backend не вернул brdMstrVO
	DefaultBoardName = "Board"

	MsgListFailed   = "failed to load articles"
	MsgDetailFailed = "failed to load article"
	MsgCreateFailed = "failed to create article"
	MsgUpdateFailed = "failed to update article"
	MsgDeleteFailed = "failed to delete article"
)

var (
	ErrArticleNotFound    = errors.New("article not found")
	ErrAttachmentsBlocked = errors.New("attachments are not allowed on this board")
)

// Service операции над записями конкретных досок
type Service struct {
	api     API
	session Session
}

// NewService создает сервис досок
func NewService(a API, s Session) *Service {
	return &Service{api: a, session: s}
}

// checkEnvelope переводит код ответа в ошибку: 403 означает, что нужен вход
func checkEnvelope[T any](env *pkgapi.Envelope[T], fallback string) error {
	if env != nil && env.ResultCode.IsForbidden() {
		return session.ErrLoginRequired
	}
	return env.Err(fallback)
}
