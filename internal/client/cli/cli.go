// Package cli реализует команды терминального клиента CMS поверх
// контроллеров экранов.
package cli

import (
	"errors"
	"fmt"

	"github.com/hay-kot/criterio"

	"github.com/iudanet/egovcms/internal/client/admin"
	"github.com/iudanet/egovcms/internal/client/api"
	"github.com/iudanet/egovcms/internal/client/board"
	"github.com/iudanet/egovcms/internal/client/iocli"
	"github.com/iudanet/egovcms/internal/client/member"
	"github.com/iudanet/egovcms/internal/client/mypage"
	"github.com/iudanet/egovcms/internal/client/session"
	"github.com/iudanet/egovcms/internal/client/ui"
)

// AppName имя команды в подсказках
const AppName = "egovcms"

type Cli struct {
	io      iocli.IO
	api     *api.Client
	session *session.Store
	ui      *ui.Store
	boards  *board.Service
	signup  *member.Signup
	mypage  *mypage.Service
	catalog []board.Board
}

// New создает CLI. Контроллеры строятся поверх одного API клиента и одной сессии.
func New(io iocli.IO, apiClient *api.Client, sess *session.Store, uiStore *ui.Store, catalog []board.Board) *Cli {
	if len(catalog) == 0 {
		catalog = board.DefaultCatalog()
	}
	return &Cli{
		io:      io,
		api:     apiClient,
		session: sess,
		ui:      uiStore,
		boards:  board.NewService(apiClient, sess),
		signup:  member.NewSignup(apiClient),
		mypage:  mypage.NewService(apiClient, sess),
		catalog: catalog,
	}
}

// Friendly приводит ошибку к сообщению для пользователя.
// Ошибки проверки полей возвращаются без изменений для постраничного вывода.
func Friendly(err error) error {
	if err == nil {
		return nil
	}

	var fieldErrs criterio.FieldErrors
	switch {
	case errors.As(err, &fieldErrs):
		return err
	case errors.Is(err, api.ErrServerUnavailable):
		return api.ErrServerUnavailable
	case errors.Is(err, session.ErrLoginRequired):
		return fmt.Errorf("%w. Run '%s login' first", session.ErrLoginRequired, AppName)
	case errors.Is(err, admin.ErrAdminRequired):
		return admin.ErrAdminRequired
	}
	return err
}
