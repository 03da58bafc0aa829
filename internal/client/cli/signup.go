package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/egovcms/internal/client/member"
	"github.com/iudanet/egovcms/internal/client/ui"
	pkgapi "github.com/iudanet/egovcms/pkg/api"
)

// SignupParams поля формы регистрации, пустые обязательные поля запрашиваются
type SignupParams struct {
	ID           string
	Name         string
	Email        string
	Password     string
	Confirm      string
	PasswordHint string
	HintAnswer   string
	Gender       string
	Phone        string
	Zip          string
	Address      string
	DetailAddr   string
	ShowTerms    bool
}

func (c *Cli) RunSignup(ctx context.Context, p SignupParams) error {
	c.io.Println("=== Sign up ===")
	c.io.Println()

	if err := c.withLoading(ctx, "Loading signup form...", func() error {
		return c.signup.LoadForm(ctx)
	}); err != nil {
		return err
	}

	if p.ShowTerms {
		if err := c.printAgreement(ctx); err != nil {
			return err
		}
	}

	id, err := c.prompt(p.ID, "ID")
	if err != nil {
		return err
	}
	c.signup.SetID(id)
	if err := c.signup.CheckID(ctx, id); err != nil {
		if errors.Is(err, member.ErrIDTaken) {
			c.notify(ui.ToastError, "%s", err)
		}
		return err
	}
	c.notify(ui.ToastSuccess, "ID %s is available", id)

	data := pkgapi.MemberData{
		MberID:      id,
		MoblphonNo:  p.Phone,
		Zip:         p.Zip,
		Adres:       p.Address,
		DetailAdres: p.DetailAddr,
	}
	if data.MberNm, err = c.prompt(p.Name, "Name"); err != nil {
		return err
	}
	if data.MberEmailAdres, err = c.prompt(p.Email, "Email"); err != nil {
		return err
	}
	if data.Password, err = c.promptPassword(p.Password, "Password"); err != nil {
		return err
	}
	confirm, err := c.promptPassword(p.Confirm, "Confirm password")
	if err != nil {
		return err
	}

	if p.PasswordHint == "" {
		c.printCodes("Password hints", c.signup.PasswordHints())
	}
	if data.PasswordHint, err = c.prompt(p.PasswordHint, "Password hint code"); err != nil {
		return err
	}
	if data.PasswordCnsr, err = c.prompt(p.HintAnswer, "Password hint answer"); err != nil {
		return err
	}
	if p.Gender == "" {
		c.printCodes("Gender", c.signup.GenderCodes())
	}
	if data.SexdstnCode, err = c.prompt(p.Gender, "Gender code"); err != nil {
		return err
	}

	if err := c.withLoading(ctx, "Submitting...", func() error {
		return c.signup.Submit(ctx, data, confirm)
	}); err != nil {
		return err
	}

	c.notify(ui.ToastSuccess, "Signup complete. Run '%s login' to sign in.", AppName)
	return nil
}

func (c *Cli) printAgreement(ctx context.Context) error {
	agreement, err := c.signup.Agreement(ctx)
	if err != nil {
		return err
	}
	c.io.Println("--- Terms of use ---")
	switch terms := agreement.StplatList.(type) {
	case nil:
		c.io.Println("(no terms published)")
	case []any:
		for _, item := range terms {
			c.io.Println(describeTerm(item))
		}
	default:
		c.io.Println(fmt.Sprint(terms))
	}
	c.io.Println("--------------------")
	c.io.Println()
	return nil
}

func describeTerm(item any) string {
	m, ok := item.(map[string]any)
	if !ok {
		return fmt.Sprint(item)
	}
	for _, key := range []string{"useStplatCn", "useStplatNm"} {
		if s, ok := m[key].(string); ok && s != "" {
			return s
		}
	}
	return fmt.Sprint(item)
}

func (c *Cli) printCodes(title string, items []pkgapi.CodeItem) {
	if len(items) == 0 {
		return
	}
	c.io.Printf("%s:\n", title)
	for _, item := range items {
		c.io.Printf("  %-6s %s\n", item.Code, item.CodeNm)
	}
}
