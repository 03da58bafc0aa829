package board

import (
	"context"
	"fmt"
	"strings"

	"github.com/hay-kot/criterio"
	"github.com/rs/zerolog"

	"github.com/iudanet/egovcms/internal/client/api"
	"github.com/iudanet/egovcms/internal/validation"
	pkgapi "github.com/iudanet/egovcms/pkg/api"
)

// Draft форма создания или изменения записи
type Draft struct {
	BbsID   string
	Title   string
	Content string
	Files   []pkgapi.Attachment
}

// Validate проверяет обязательные поля формы
func (d Draft) Validate() error {
	var errs criterio.FieldErrorsBuilder
	if err := validation.Required(d.Title); err != nil {
		errs = errs.Append("title", validation.ErrTitleRequired)
	}
	if err := validation.Required(d.Content); err != nil {
		errs = errs.Append("content", validation.ErrContentRequired)
	}
	return errs.ToError()
}

// BoardInfo возвращает настройки доски (вложения, имя)
func (s *Service) BoardInfo(ctx context.Context, bbsID string) (*pkgapi.BoardMaster, error) {
	resp, err := s.api.FileAtchInfo(ctx, bbsID)
	if err != nil {
		return nil, api.Unavailable(err)
	}
	if err := checkEnvelope(resp, MsgDetailFailed); err != nil {
		return nil, err
	}
	return resp.Result, nil
}

// Write создает запись. При nttID > 0 изменяет существующую.
// Проверки выполняются до сетевого запроса.
func (s *Service) Write(ctx context.Context, d Draft, nttID int64) error {
	log := zerolog.Ctx(ctx)

	if err := s.session.RequireLogin(); err != nil {
		return err
	}
	if err := d.Validate(); err != nil {
		return err
	}
	if len(d.Files) > 0 {
		if err := s.checkAttachments(ctx, d); err != nil {
			return err
		}
	}

	draft := pkgapi.ArticleDraft{
		BbsID: d.BbsID,
		NttSj: strings.TrimSpace(d.Title),
		NttCn: d.Content,
		Files: d.Files,
	}

	if nttID > 0 {
		resp, err := s.api.UpdateArticle(ctx, nttID, draft)
		if err != nil {
			log.Error().Err(err).Int64("nttId", nttID).Msg("update article failed")
			return api.Unavailable(err)
		}
		return checkEnvelope(resp, MsgUpdateFailed)
	}

	resp, err := s.api.CreateArticle(ctx, draft)
	if err != nil {
		log.Error().Err(err).Str("bbsId", d.BbsID).Msg("create article failed")
		return api.Unavailable(err)
	}
	return checkEnvelope(resp, MsgCreateFailed)
}

// LoadDraft заполняет форму изменения данными существующей записи
func (s *Service) LoadDraft(ctx context.Context, bbsID string, nttID int64) (Draft, error) {
	view, err := s.Detail(ctx, bbsID, nttID)
	if err != nil {
		return Draft{}, err
	}
	return Draft{
		BbsID:   bbsID,
		Title:   view.Article.NttSj,
		Content: view.Article.NttCn,
	}, nil
}

// Delete удаляет запись (soft delete на стороне backend)
func (s *Service) Delete(ctx context.Context, bbsID string, nttID int64) error {
	if err := s.session.RequireLogin(); err != nil {
		return err
	}

	resp, err := s.api.DeleteArticle(ctx, bbsID, nttID)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Int64("nttId", nttID).Msg("delete article failed")
		return api.Unavailable(err)
	}
	return checkEnvelope(resp, MsgDeleteFailed)
}

// checkAttachments сверяет вложения с настройками доски.
// Если настройки получить не удалось, решение остается за backend.
func (s *Service) checkAttachments(ctx context.Context, d Draft) error {
	info, err := s.BoardInfo(ctx, d.BbsID)
	if err != nil || info == nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str("bbsId", d.BbsID).Msg("attachment policy unavailable")
		return nil
	}
	if !info.AllowsAttachments() {
		return criterio.NewFieldErrors("files", ErrAttachmentsBlocked)
	}
	if info.PosblAtchFileNumber > 0 && len(d.Files) > info.PosblAtchFileNumber {
		return criterio.NewFieldErrors("files",
			fmt.Errorf("at most %d attachments allowed", info.PosblAtchFileNumber))
	}
	if info.PosblAtchFileSize > 0 {
		for _, f := range d.Files {
			if int64(len(f.Data)) > info.PosblAtchFileSize {
				return criterio.NewFieldErrors("files",
					fmt.Errorf("%s exceeds %d bytes", f.Name, info.PosblAtchFileSize))
			}
		}
	}
	return nil
}
