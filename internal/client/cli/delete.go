package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/egovcms/internal/client/ui"
)

// RunBoardDelete удаляет запись после подтверждения
func (c *Cli) RunBoardDelete(ctx context.Context, bbsID string, nttID int64, assumeYes bool) error {
	if err := c.session.RequireLogin(); err != nil {
		return err
	}

	ok, err := c.confirm("Delete article", fmt.Sprintf("Article %d will be deleted.", nttID), assumeYes)
	if err != nil {
		return err
	}
	if !ok {
		c.notify(ui.ToastInfo, "Cancelled")
		return nil
	}

	if err := c.withLoading(ctx, "Deleting...", func() error {
		return c.boards.Delete(ctx, bbsID, nttID)
	}); err != nil {
		return err
	}

	c.notify(ui.ToastSuccess, "Article %d deleted", nttID)
	return nil
}

// RunMypageWithdraw удаляет аккаунт после подтверждения
func (c *Cli) RunMypageWithdraw(ctx context.Context, assumeYes bool) error {
	profile, err := c.loadProfile(ctx)
	if err != nil {
		return err
	}

	ok, err := c.confirm("Delete account",
		fmt.Sprintf("Account %s will be deleted and you will be logged out.", profile.Member.MberID), assumeYes)
	if err != nil {
		return err
	}
	if !ok {
		c.notify(ui.ToastInfo, "Cancelled")
		return nil
	}

	if err := c.withLoading(ctx, "Deleting account...", func() error {
		return c.mypage.Withdraw(ctx, profile.Member.UniqID)
	}); err != nil {
		return err
	}

	c.notify(ui.ToastSuccess, "Account deleted")
	return nil
}
