// Package admin реализует экран администратора со списком пользователей.
package admin

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/iudanet/egovcms/internal/client/api"
	"github.com/iudanet/egovcms/internal/client/paging"
	pkgapi "github.com/iudanet/egovcms/pkg/api"
)

// API операции REST клиента, нужные администратору
type API interface {
	Members(ctx context.Context, pageIndex int) (*pkgapi.Envelope[*pkgapi.MemberListResponse], error)
}

// Session данные сессии, нужные администратору
type Session interface {
	RequireLogin() error
	User() *pkgapi.User
}

const MsgMembersFailed = "failed to load members"

// ErrAdminRequired backend отказал в доступе к списку пользователей
var ErrAdminRequired = errors.New("admin permission required")

// MemberPage снимок страницы списка пользователей
type MemberPage struct {
	Members    []pkgapi.Member
	Pages      []int
	Page       int
	TotalPages int
	Total      int
	HasPrev    bool
	HasNext    bool
}

// MembersController постраничный список пользователей
type MembersController struct {
	api     API
	session Session
	pager   *paging.Pager
	members []pkgapi.Member
	total   int
}

// NewMembersController создает контроллер списка пользователей
func NewMembersController(a API, s Session) *MembersController {
	return &MembersController{api: a, session: s, pager: paging.New()}
}

// IsAdmin подсказка для отображения: роль берется из пользователя сессии.
// Доступ все равно проверяет backend.
func (c *MembersController) IsAdmin() bool {
	return c.session.User().IsAdmin()
}

// Load загружает текущую страницу.
// Запрос за пределами [1, TotalPages] не отправляется.
func (c *MembersController) Load(ctx context.Context) (*MemberPage, error) {
	if err := c.session.RequireLogin(); err != nil {
		return nil, err
	}

	// число страниц неизвестно: узнаем его по первой странице
	if c.pager.Total == 0 && c.pager.Current > 1 {
		requested := c.pager.Current
		c.pager.Current = 1
		if err := c.fetch(ctx); err != nil {
			c.pager.Current = requested
			return nil, err
		}
		if c.pager.Goto(requested) == 1 {
			return c.snapshot(), nil
		}
	}
	if err := c.fetch(ctx); err != nil {
		return nil, err
	}
	return c.snapshot(), nil
}

// Goto переходит на страницу page с ограничением диапазона
func (c *MembersController) Goto(ctx context.Context, page int) (*MemberPage, error) {
	c.pager.Goto(page)
	return c.Load(ctx)
}

// Next следующая страница
func (c *MembersController) Next(ctx context.Context) (*MemberPage, error) {
	return c.Goto(ctx, c.pager.Next())
}

// Prev предыдущая страница
func (c *MembersController) Prev(ctx context.Context) (*MemberPage, error) {
	return c.Goto(ctx, c.pager.Prev())
}

func (c *MembersController) fetch(ctx context.Context) error {
	resp, err := c.api.Members(ctx, c.pager.Current)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int("page", c.pager.Current).Msg("members request failed")
		return api.Unavailable(err)
	}
	if resp.ResultCode.IsForbidden() {
		zerolog.Ctx(ctx).Warn().Msg("members list forbidden")
		return ErrAdminRequired
	}
	if err := resp.Err(MsgMembersFailed); err != nil {
		return err
	}

	c.members = nil
	c.total = 0
	totalPages := 1
	if r := resp.Result; r != nil {
		c.members = r.ResultList
		if r.PaginationInfo != nil {
			totalPages = r.PaginationInfo.TotalPageCount
			c.total = r.PaginationInfo.TotalRecordCount
		}
	}
	c.pager.SetTotal(totalPages)
	return nil
}

func (c *MembersController) snapshot() *MemberPage {
	return &MemberPage{
		Members:    append([]pkgapi.Member(nil), c.members...),
		Total:      c.total,
		Page:       c.pager.Current,
		TotalPages: c.pager.Total,
		Pages:      c.pager.Pages(paging.DefaultWindow),
		HasPrev:    c.pager.HasPrev(),
		HasNext:    c.pager.HasNext(),
	}
}
