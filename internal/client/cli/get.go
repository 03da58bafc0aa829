package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/egovcms/internal/client/board"
	"github.com/iudanet/egovcms/internal/client/mypage"
)

// RunBoardShow выводит запись доски
func (c *Cli) RunBoardShow(ctx context.Context, bbsID string, nttID int64) error {
	var view *board.ArticleView
	err := c.withLoading(ctx, "", func() error {
		var err error
		view, err = c.boards.Detail(ctx, bbsID, nttID)
		return err
	})
	if err != nil {
		return err
	}

	if err := articleTmpl.Execute(c.io, view); err != nil {
		return fmt.Errorf("failed to render article: %w", err)
	}

	if view.IsAuthor {
		c.io.Println()
		c.io.Printf("Edit:   %s board write %s --edit %d\n", AppName, bbsID, nttID)
		c.io.Printf("Delete: %s board delete %s %d\n", AppName, bbsID, nttID)
	}
	return nil
}

// RunMypageShow выводит профиль текущего пользователя
func (c *Cli) RunMypageShow(ctx context.Context) error {
	profile, err := c.loadProfile(ctx)
	if err != nil {
		return err
	}
	if err := profileTmpl.Execute(c.io, profile); err != nil {
		return fmt.Errorf("failed to render profile: %w", err)
	}
	return nil
}

func (c *Cli) loadProfile(ctx context.Context) (*mypage.Profile, error) {
	var profile *mypage.Profile
	err := c.withLoading(ctx, "Loading profile...", func() error {
		var err error
		profile, err = c.mypage.Load(ctx)
		return err
	})
	return profile, err
}
