package board

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/iudanet/egovcms/internal/client/api"
	pkgapi "github.com/iudanet/egovcms/pkg/api"
)

// ArticleView запись с признаком авторства текущего пользователя
type ArticleView struct {
	Article   *pkgapi.BoardArticle
	Board     *pkgapi.BoardMaster
	BoardName string
	IsAuthor  bool
}

// Detail загружает запись nttID доски bbsID
func (s *Service) Detail(ctx context.Context, bbsID string, nttID int64) (*ArticleView, error) {
	resp, err := s.api.BoardDetail(ctx, bbsID, nttID)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str("bbsId", bbsID).Int64("nttId", nttID).Msg("board detail failed")
		return nil, api.Unavailable(err)
	}
	if err := checkEnvelope(resp, MsgDetailFailed); err != nil {
		return nil, err
	}
	if resp.Result == nil || resp.Result.Result == nil {
		return nil, ErrArticleNotFound
	}

	detail := resp.Result
	view := &ArticleView{
		Article:   detail.Result,
		Board:     detail.BrdMstrVO,
		BoardName: DefaultBoardName,
		IsAuthor:  IsAuthor(detail, s.session.User()),
	}
	if detail.BrdMstrVO != nil && detail.BrdMstrVO.BbsNm != "" {
		view.BoardName = detail.BrdMstrVO.BbsNm
	}
	return view, nil
}

// IsAuthor сообщает, является ли пользователь автором записи.
// Без пользователя в сессии всегда false; иначе автором считается
// совпадение sessionUniqId ответа или uniqId пользователя.
// Это подсказка для отображения кнопок; права проверяет backend.
func IsAuthor(detail *pkgapi.BoardDetailResponse, user *pkgapi.User) bool {
	if user == nil || detail == nil || detail.Result == nil {
		return false
	}
	author := detail.Result.FrstRegisterID
	if author == "" {
		return false
	}
	return detail.SessionUniqID == author || user.UniqID == author
}
