package cli

import (
	"context"
	"time"

	"github.com/iudanet/egovcms/internal/client/session"
)

// RunHome выводит стартовый экран: пользователь или подсказки входа
func (c *Cli) RunHome(ctx context.Context) error {
	c.io.Println("=== eGovFrame CMS ===")
	c.io.Printf("Server: %s\n", c.api.BaseURL())
	c.io.Println()

	if user := c.session.User(); c.session.IsLoggedIn() && user != nil {
		c.io.Printf("Welcome, %s (%s)\n", displayName(user.Name, user.ID), user.ID)
		c.io.Println()
		c.io.Println("Boards:")
		for _, b := range c.catalog {
			c.io.Printf("  %-22s %s\n", b.BbsID, b.Name)
		}
		c.io.Println()
		c.io.Printf("Run '%s board list <bbsId>' to browse, '%s mypage show' for your profile.\n", AppName, AppName)
		if user.IsAdmin() {
			c.io.Printf("Run '%s admin members' to manage members.\n", AppName)
		}
		return nil
	}

	c.io.Println("You are not logged in.")
	c.io.Printf("Run '%s login' to sign in or '%s signup' to create an account.\n", AppName, AppName)
	return nil
}

func (c *Cli) RunStatus(ctx context.Context) error {
	c.io.Println("=== Authentication Status ===")
	c.io.Println()

	if !c.session.IsLoggedIn() {
		c.io.Println("Status: Not authenticated")
		c.io.Println()
		c.io.Printf("Run '%s login' to authenticate.\n", AppName)
		return nil
	}

	c.io.Println("Status: Authenticated")
	if user := c.session.User(); user != nil {
		c.io.Printf("User:     %s (%s)\n", displayName(user.Name, user.ID), user.ID)
		if user.UserSe != "" {
			c.io.Printf("Type:     %s\n", user.UserSe)
		}
		if user.IsAdmin() {
			c.io.Println("Role:     administrator")
		}
	}

	info, err := session.InspectToken(c.session.Token())
	if err != nil {
		// Токен может быть непрозрачным, это не ошибка сессии
		c.io.Println("Token:    opaque (claims unavailable)")
		return nil
	}
	if info.Subject != "" {
		c.io.Printf("Subject:  %s\n", info.Subject)
	}
	if info.ExpiresAt.IsZero() {
		c.io.Println("Token expires: never")
		return nil
	}

	c.io.Printf("Token expires: %s\n", info.ExpiresAt.Format(time.RFC3339))
	if remaining := time.Until(info.ExpiresAt); remaining > 0 {
		c.io.Printf("Time remaining: %s\n", remaining.Round(time.Second))
	} else {
		c.io.Printf("⚠️  Token has expired. Please run '%s login' again.\n", AppName)
	}
	return nil
}
