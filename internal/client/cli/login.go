package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/egovcms/internal/client/session"
	"github.com/iudanet/egovcms/internal/client/ui"
)

// LoginParams параметры входа, пустые поля запрашиваются интерактивно
type LoginParams struct {
	ID       string
	Password string
	UserSe   string
}

func (c *Cli) RunLogin(ctx context.Context, p LoginParams) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	id, err := c.prompt(p.ID, "ID")
	if err != nil {
		return err
	}
	password, err := c.promptPassword(p.Password, "Password")
	if err != nil {
		return err
	}
	if id == "" || password == "" {
		return errors.New("id and password are required")
	}

	c.ui.SetLoading(true, "Authenticating...")
	c.io.Println("Authenticating...")
	ok := c.session.Login(ctx, id, password, p.UserSe)
	c.ui.SetLoading(false, "")

	if !ok {
		msg := c.session.LastError()
		if msg == "" {
			msg = session.MsgLoginFailed
		}
		return errors.New(msg)
	}

	user := c.session.User()
	c.notify(ui.ToastSuccess, "Login successful! Welcome, %s", displayName(user.Name, user.ID))
	if user.IsAdmin() {
		c.io.Printf("Role: administrator (run '%s admin members')\n", AppName)
	}
	return nil
}

func (c *Cli) RunLogout(ctx context.Context) error {
	if !c.session.IsLoggedIn() {
		c.io.Println("Not logged in.")
		return nil
	}

	if err := c.session.Logout(ctx); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	c.notify(ui.ToastSuccess, "Logged out")
	return nil
}

func displayName(name, id string) string {
	if name == "" {
		return id
	}
	return name
}
