package cli

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog"

	"github.com/iudanet/egovcms/internal/client/admin"
	"github.com/iudanet/egovcms/internal/client/board"
	pkgapi "github.com/iudanet/egovcms/pkg/api"
)

// BoardListParams параметры списка записей
type BoardListParams struct {
	BbsID     string
	Search    string
	SearchCnd string
	Page      int
}

// RunBoards выводит каталог досок
func (c *Cli) RunBoards(ctx context.Context) error {
	c.io.Println("=== Boards ===")
	c.io.Println()

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "BBS ID\tNAME\tDESCRIPTION")
	for _, b := range c.catalog {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\n", b.BbsID, b.Name, b.Description)
	}
	return w.Flush()
}

// RunBoardList выводит страницу записей доски
func (c *Cli) RunBoardList(ctx context.Context, p BoardListParams) error {
	if p.BbsID == "" {
		return fmt.Errorf("missing board id. Usage: %s board list <bbsId>", AppName)
	}

	list := board.NewListController(c.api, p.BbsID)
	list.SetSearchCondition(p.SearchCnd)

	var page *board.ListPage
	err := c.withLoading(ctx, "", func() error {
		var err error
		switch {
		case strings.TrimSpace(p.Search) != "":
			if page, err = list.Search(ctx, p.Search); err == nil && p.Page > 1 {
				page, err = list.Goto(ctx, p.Page)
			}
		default:
			page, err = list.Goto(ctx, p.Page)
		}
		return err
	})
	if err != nil {
		return err
	}

	name := page.BoardName
	if name == board.DefaultBoardName {
		if b, ok := board.Lookup(c.catalog, p.BbsID); ok {
			name = b.Name
		}
	}
	c.io.Printf("=== %s ===\n", name)
	c.io.Println()

	if len(page.Articles) == 0 {
		c.io.Println("No articles found.")
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "NO\tTITLE\tAUTHOR\tDATE\tVIEWS")
	for i := range page.Articles {
		a := &page.Articles[i]
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\n",
			a.NttID, articleTitle(a), a.Author(), pkgapi.FormatDate(a.FrstRegisterPnttm), a.InqireCo)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	c.io.Println()
	c.io.Println(pageBar(page.Pages, page.Page, page.TotalPages))
	return nil
}

// RunAdminMembers выводит страницу списка пользователей
func (c *Cli) RunAdminMembers(ctx context.Context, pageIndex int) error {
	members := admin.NewMembersController(c.api, c.session)
	if !members.IsAdmin() {
		zerolog.Ctx(ctx).Debug().Msg("session user has no admin role, request sent anyway")
	}

	var page *admin.MemberPage
	err := c.withLoading(ctx, "Loading members...", func() error {
		var err error
		page, err = members.Goto(ctx, pageIndex)
		return err
	})
	if err != nil {
		return err
	}

	c.io.Println("=== Members ===")
	c.io.Println()
	if len(page.Members) == 0 {
		c.io.Println("No members found.")
		return nil
	}

	w := tabwriter.NewWriter(c.io, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tEMAIL\tSTATUS\tJOINED")
	for _, m := range page.Members {
		_, _ = fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			m.MberID, m.MberNm, m.MberEmailAdres, m.StatusName(), pkgapi.FormatDate(m.SbscrbDe))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	c.io.Println()
	c.io.Printf("Total: %d\n", page.Total)
	c.io.Println(pageBar(page.Pages, page.Page, page.TotalPages))
	return nil
}

// articleTitle заголовок с отступом для ответов
func articleTitle(a *pkgapi.BoardArticle) string {
	title := truncate(a.NttSj, 48)
	if depth := a.ReplyDepth(); depth > 0 {
		return strings.Repeat("  ", depth-1) + "└ " + title
	}
	return title
}

// pageBar строка навигации: текущая страница в скобках
func pageBar(pages []int, current, total int) string {
	var b strings.Builder
	for i, n := range pages {
		if i > 0 {
			b.WriteByte(' ')
		}
		if n == current {
			fmt.Fprintf(&b, "[%d]", n)
		} else {
			fmt.Fprintf(&b, "%d", n)
		}
	}
	fmt.Fprintf(&b, "  (page %d of %d)", current, total)
	return b.String()
}
