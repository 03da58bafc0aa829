package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/iudanet/egovcms/internal/client/board"
	"github.com/iudanet/egovcms/internal/client/ui"
	pkgapi "github.com/iudanet/egovcms/pkg/api"
)

// WriteParams параметры создания или изменения записи
type WriteParams struct {
	BbsID   string
	Title   string
	Content string
	Files   []string
	EditID  int64
}

// RunBoardWrite создает запись, при EditID > 0 изменяет существующую
func (c *Cli) RunBoardWrite(ctx context.Context, p WriteParams) error {
	if p.BbsID == "" {
		return fmt.Errorf("missing board id. Usage: %s board write <bbsId>", AppName)
	}
	if err := c.session.RequireLogin(); err != nil {
		return err
	}

	draft := board.Draft{BbsID: p.BbsID, Title: p.Title, Content: p.Content}
	if p.EditID > 0 {
		current, err := c.boards.LoadDraft(ctx, p.BbsID, p.EditID)
		if err != nil {
			return err
		}
		if draft.Title == "" {
			draft.Title = current.Title
		}
		if draft.Content == "" {
			draft.Content = current.Content
		}
		c.io.Printf("=== Edit article %d ===\n", p.EditID)
	} else {
		c.io.Println("=== New article ===")
	}
	c.io.Println()

	var err error
	if draft.Title, err = c.prompt(draft.Title, "Title"); err != nil {
		return err
	}
	if draft.Content, err = c.prompt(draft.Content, "Content"); err != nil {
		return err
	}

	for _, path := range p.Files {
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read attachment: %w", err)
		}
		draft.Files = append(draft.Files, pkgapi.Attachment{Name: filepath.Base(path), Data: data})
	}

	if err := c.withLoading(ctx, "Saving...", func() error {
		return c.boards.Write(ctx, draft, p.EditID)
	}); err != nil {
		return err
	}

	if p.EditID > 0 {
		c.notify(ui.ToastSuccess, "Article updated")
	} else {
		c.notify(ui.ToastSuccess, "Article created")
	}
	return nil
}

// ProfileParams изменяемые поля профиля, пустые поля сохраняют текущее значение
type ProfileParams struct {
	Name         string
	Email        string
	Phone        string
	Zip          string
	Address      string
	DetailAddr   string
	Gender       string
	PasswordHint string
	HintAnswer   string
	Password     string
}

// RunMypageUpdate изменяет профиль текущего пользователя
func (c *Cli) RunMypageUpdate(ctx context.Context, p ProfileParams) error {
	profile, err := c.loadProfile(ctx)
	if err != nil {
		return err
	}

	m := profile.Member
	set := func(dst *string, v string) {
		if v = strings.TrimSpace(v); v != "" {
			*dst = v
		}
	}
	set(&m.MberNm, p.Name)
	set(&m.MberEmailAdres, p.Email)
	set(&m.MoblphonNo, p.Phone)
	set(&m.Zip, p.Zip)
	set(&m.Adres, p.Address)
	set(&m.DetailAdres, p.DetailAddr)
	set(&m.SexdstnCode, p.Gender)
	set(&m.PasswordHint, p.PasswordHint)
	set(&m.PasswordCnsr, p.HintAnswer)
	m.Password = p.Password

	if err := c.withLoading(ctx, "Saving profile...", func() error {
		return c.mypage.Update(ctx, m)
	}); err != nil {
		return err
	}

	c.notify(ui.ToastSuccess, "Profile updated")
	return nil
}
