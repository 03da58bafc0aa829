package member

import (
	"context"
	"encoding/json"
	"sync"

	pkgapi "github.com/iudanet/egovcms/pkg/api"
)

// APIMock ручная реализация API в стиле moq
type APIMock struct {
	SignupFormFunc func(ctx context.Context) (*pkgapi.Envelope[*pkgapi.SignupFormData], error)
	CheckIDFunc    func(ctx context.Context, id string) (*pkgapi.Envelope[*pkgapi.CheckIDResult], error)
	SignupFunc     func(ctx context.Context, data pkgapi.MemberData) (*pkgapi.Envelope[json.RawMessage], error)
	AgreementFunc  func(ctx context.Context) (*pkgapi.Envelope[*pkgapi.AgreementData], error)

	mu          sync.Mutex
	checkCalls  []string
	signupCalls []pkgapi.MemberData
}

var _ API = (*APIMock)(nil)

func (m *APIMock) SignupForm(ctx context.Context) (*pkgapi.Envelope[*pkgapi.SignupFormData], error) {
	if m.SignupFormFunc == nil {
		panic("APIMock.SignupFormFunc: method is nil but API.SignupForm was just called")
	}
	return m.SignupFormFunc(ctx)
}

func (m *APIMock) CheckID(ctx context.Context, id string) (*pkgapi.Envelope[*pkgapi.CheckIDResult], error) {
	m.mu.Lock()
	m.checkCalls = append(m.checkCalls, id)
	m.mu.Unlock()
	if m.CheckIDFunc == nil {
		panic("APIMock.CheckIDFunc: method is nil but API.CheckID was just called")
	}
	return m.CheckIDFunc(ctx, id)
}

func (m *APIMock) Signup(ctx context.Context, data pkgapi.MemberData) (*pkgapi.Envelope[json.RawMessage], error) {
	m.mu.Lock()
	m.signupCalls = append(m.signupCalls, data)
	m.mu.Unlock()
	if m.SignupFunc == nil {
		panic("APIMock.SignupFunc: method is nil but API.Signup was just called")
	}
	return m.SignupFunc(ctx, data)
}

func (m *APIMock) Agreement(ctx context.Context) (*pkgapi.Envelope[*pkgapi.AgreementData], error) {
	if m.AgreementFunc == nil {
		panic("APIMock.AgreementFunc: method is nil but API.Agreement was just called")
	}
	return m.AgreementFunc(ctx)
}
