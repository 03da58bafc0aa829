package board

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iudanet/egovcms/internal/client/api"
	"github.com/iudanet/egovcms/internal/client/paging"
	pkgapi "github.com/iudanet/egovcms/pkg/api"
)

// ListPage снимок экрана списка записей
type ListPage struct {
	BoardName  string
	Articles   []pkgapi.BoardArticle
	Pages      []int
	Total      int
	Page       int
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// ListController состояние списка записей одной доски
type ListController struct {
	api       API
	pager     *paging.Pager
	boardName string
	bbsID     string
	searchCnd string
	searchWrd string
	articles  []pkgapi.BoardArticle
	total     int
}

// NewListController создает контроллер списка для доски bbsID
func NewListController(a API, bbsID string) *ListController {
	return &ListController{
		api:       a,
		bbsID:     bbsID,
		pager:     paging.New(),
		boardName: DefaultBoardName,
	}
}

// SetSearchCondition задает условие поиска (searchCnd): поле, по которому ищем
func (c *ListController) SetSearchCondition(cnd string) {
	c.searchCnd = strings.TrimSpace(cnd)
}

// Load загружает текущую страницу.
// Пока число страниц неизвестно, сначала загружается первая страница:
// запрос за пределами [1, TotalPages] не отправляется.
func (c *ListController) Load(ctx context.Context) (*ListPage, error) {
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
		if c.pager.Current != requested {
			zerolog.Ctx(ctx).Debug().
				Int("requested", requested).
				Int("page", c.pager.Current).
				Msg("page out of range, loading last page")
		}
	}
	if err := c.fetch(ctx); err != nil {
		return nil, err
	}
	return c.snapshot(), nil
}

// Goto переходит на страницу page, ограниченную диапазоном [1, TotalPages]
func (c *ListController) Goto(ctx context.Context, page int) (*ListPage, error) {
	c.pager.Goto(page)
	return c.Load(ctx)
}

// Next переходит на следующую страницу
func (c *ListController) Next(ctx context.Context) (*ListPage, error) {
	return c.Goto(ctx, c.pager.Next())
}

// Prev переходит на предыдущую страницу
func (c *ListController) Prev(ctx context.Context) (*ListPage, error) {
	return c.Goto(ctx, c.pager.Prev())
}

// Search задает поисковое слово и возвращается на первую страницу.
// Пустое слово сбрасывает поиск.
func (c *ListController) Search(ctx context.Context, word string) (*ListPage, error) {
	c.searchWrd = strings.TrimSpace(word)
	c.pager.Goto(1)
	return c.Load(ctx)
}

func (c *ListController) fetch(ctx context.Context) error {
	q := pkgapi.ListQuery{
		BbsID:     c.bbsID,
		PageIndex: c.pager.Current,
	}
	if c.searchWrd != "" {
		q.SearchCnd = c.searchCnd
		q.SearchWrd = c.searchWrd
	}

	resp, err := c.api.BoardList(ctx, q)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("bbsId", c.bbsID).Msg("board list failed")
		return api.Unavailable(err)
	}
	if err := checkEnvelope(resp, MsgListFailed); err != nil {
		return err
	}

	c.articles = nil
	c.total = 0
	totalPages := 1
	if r := resp.Result; r != nil {
		c.articles = r.ResultList
		c.total = r.ResultCnt
		if r.BrdMstrVO != nil && r.BrdMstrVO.BbsNm != "" {
			c.boardName = r.BrdMstrVO.BbsNm
		}
		if r.PaginationInfo != nil {
			totalPages = r.PaginationInfo.TotalPageCount
		}
	}
	c.pager.SetTotal(totalPages)
	return nil
}

func (c *ListController) snapshot() *ListPage {
	return &ListPage{
		BoardName:  c.boardName,
		Articles:   append([]pkgapi.BoardArticle(nil), c.articles...),
		Total:      c.total,
		Page:       c.pager.Current,
		TotalPages: c.pager.Total,
		Pages:      c.pager.Pages(paging.DefaultWindow),
		HasPrev:    c.pager.HasPrev(),
		HasNext:    c.pager.HasNext(),
	}
}
