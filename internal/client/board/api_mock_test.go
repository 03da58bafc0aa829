package board

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/iudanet/egovcms/internal/client/session"
	pkgapi "github.com/iudanet/egovcms/pkg/api"
)

// APIMock ручная реализация API в стиле moq
type APIMock struct {
	BoardListFunc     func(ctx context.Context, q pkgapi.ListQuery) (*pkgapi.Envelope[*pkgapi.BoardListResponse], error)
	BoardDetailFunc   func(ctx context.Context, bbsID string, nttID int64) (*pkgapi.Envelope[*pkgapi.BoardDetailResponse], error)
	CreateArticleFunc func(ctx context.Context, draft pkgapi.ArticleDraft) (*pkgapi.Envelope[json.RawMessage], error)
	UpdateArticleFunc func(ctx context.Context, nttID int64, draft pkgapi.ArticleDraft) (*pkgapi.Envelope[json.RawMessage], error)
	DeleteArticleFunc func(ctx context.Context, bbsID string, nttID int64) (*pkgapi.Envelope[json.RawMessage], error)
	FileAtchInfoFunc  func(ctx context.Context, bbsID string) (*pkgapi.Envelope[*pkgapi.BoardMaster], error)

	mu          sync.Mutex
	listCalls   []pkgapi.ListQuery
	createCalls []pkgapi.ArticleDraft
	updateCalls []int64
	deleteCalls []int64
}

var _ API = (*APIMock)(nil)

func (m *APIMock) BoardList(ctx context.Context, q pkgapi.ListQuery) (*pkgapi.Envelope[*pkgapi.BoardListResponse], error) {
	m.mu.Lock()
	m.listCalls = append(m.listCalls, q)
	m.mu.Unlock()
	if m.BoardListFunc == nil {
		panic("APIMock.BoardListFunc: method is nil but API.BoardList was just called")
	}
	return m.BoardListFunc(ctx, q)
}

func (m *APIMock) BoardDetail(ctx context.Context, bbsID string, nttID int64) (*pkgapi.Envelope[*pkgapi.BoardDetailResponse], error) {
	if m.BoardDetailFunc == nil {
		panic("APIMock.BoardDetailFunc: method is nil but API.BoardDetail was just called")
	}
	return m.BoardDetailFunc(ctx, bbsID, nttID)
}

func (m *APIMock) CreateArticle(ctx context.Context, draft pkgapi.ArticleDraft) (*pkgapi.Envelope[json.RawMessage], error) {
	m.mu.Lock()
	m.createCalls = append(m.createCalls, draft)
	m.mu.Unlock()
	if m.CreateArticleFunc == nil {
		panic("APIMock.CreateArticleFunc: method is nil but API.CreateArticle was just called")
	}
	return m.CreateArticleFunc(ctx, draft)
}

func (m *APIMock) UpdateArticle(ctx context.Context, nttID int64, draft pkgapi.ArticleDraft) (*pkgapi.Envelope[json.RawMessage], error) {
	m.mu.Lock()
	m.updateCalls = append(m.updateCalls, nttID)
	m.mu.Unlock()
	if m.UpdateArticleFunc == nil {
		panic("APIMock.UpdateArticleFunc: method is nil but API.UpdateArticle was just called")
	}
	return m.UpdateArticleFunc(ctx, nttID, draft)
}

func (m *APIMock) DeleteArticle(ctx context.Context, bbsID string, nttID int64) (*pkgapi.Envelope[json.RawMessage], error) {
	m.mu.Lock()
	m.deleteCalls = append(m.deleteCalls, nttID)
	m.mu.Unlock()
	if m.DeleteArticleFunc == nil {
		panic("APIMock.DeleteArticleFunc: method is nil but API.DeleteArticle was just called")
	}
	return m.DeleteArticleFunc(ctx, bbsID, nttID)
}

func (m *APIMock) FileAtchInfo(ctx context.Context, bbsID string) (*pkgapi.Envelope[*pkgapi.BoardMaster], error) {
	if m.FileAtchInfoFunc == nil {
		panic("APIMock.FileAtchInfoFunc: method is nil but API.FileAtchInfo was just called")
	}
	return m.FileAtchInfoFunc(ctx, bbsID)
}

// ListCalls возвращает запросы списка в порядке вызова
func (m *APIMock) ListCalls() []pkgapi.ListQuery {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]pkgapi.ListQuery(nil), m.listCalls...)
}

// fakeSession сессия с фиксированным пользователем
type fakeSession struct {
	user *pkgapi.User
}

func (s *fakeSession) RequireLogin() error {
	if s.user == nil {
		return session.ErrLoginRequired
	}
	return nil
}

func (s *fakeSession) User() *pkgapi.User {
	return s.user
}

func ok[T any](v T) *pkgapi.Envelope[T] {
	return &pkgapi.Envelope[T]{Result: v, ResultCode: "200"}
}

func fail[T any](code, msg string) *pkgapi.Envelope[T] {
	return &pkgapi.Envelope[T]{ResultCode: pkgapi.ResultCode(code), ResultMessage: msg}
}
