package board

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/hay-kot/criterio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/egovcms/internal/client/api"
	"github.com/iudanet/egovcms/internal/client/session"
	"github.com/iudanet/egovcms/internal/validation"
	pkgapi "github.com/iudanet/egovcms/pkg/api"
)

func TestIsAuthor(t *testing.T) {
	article := &pkgapi.BoardArticle{FrstRegisterID: "USRCNFRM_00000000001"}

	tests := []struct {
		name   string
		detail *pkgapi.BoardDetailResponse
		user   *pkgapi.User
		want   bool
	}{
		{
			name:   "session uniq id matches",
			detail: &pkgapi.BoardDetailResponse{Result: article, SessionUniqID: "USRCNFRM_00000000001"},
			user:   &pkgapi.User{UniqID: "USRCNFRM_00000000009"},
			want:   true,
		},
		{
			name:   "session uniq id without cached user",
			detail: &pkgapi.BoardDetailResponse{Result: article, SessionUniqID: "USRCNFRM_00000000001"},
			want:   false,
		},
		{
			name:   "user uniq id matches",
			detail: &pkgapi.BoardDetailResponse{Result: article},
			user:   &pkgapi.User{UniqID: "USRCNFRM_00000000001"},
			want:   true,
		},
		{
			name:   "user uniq id matches despite other session uniq id",
			detail: &pkgapi.BoardDetailResponse{Result: article, SessionUniqID: "USRCNFRM_00000000002"},
			user:   &pkgapi.User{UniqID: "USRCNFRM_00000000001"},
			want:   true,
		},
		{
			name:   "different user",
			detail: &pkgapi.BoardDetailResponse{Result: article},
			user:   &pkgapi.User{UniqID: "USRCNFRM_00000000009"},
			want:   false,
		},
		{
			name:   "anonymous",
			detail: &pkgapi.BoardDetailResponse{Result: article},
			want:   false,
		},
		{
			name:   "empty author never matches",
			detail: &pkgapi.BoardDetailResponse{Result: &pkgapi.BoardArticle{}},
			user:   &pkgapi.User{},
			want:   false,
		},
		{
			name: "nil detail",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsAuthor(tt.detail, tt.user))
		})
	}
}

func TestService_Detail(t *testing.T) {
	m := &APIMock{
		BoardDetailFunc: func(_ context.Context, bbsID string, nttID int64) (*pkgapi.Envelope[*pkgapi.BoardDetailResponse], error) {
			assert.Equal(t, NoticeBoardID, bbsID)
			assert.Equal(t, int64(12), nttID)
			return ok(&pkgapi.BoardDetailResponse{
				Result:    &pkgapi.BoardArticle{NttID: 12, NttSj: "hello", FrstRegisterID: "U1"},
				BrdMstrVO: &pkgapi.BoardMaster{BbsNm: "Notice"},
			}), nil
		},
	}
	s := NewService(m, &fakeSession{user: &pkgapi.User{ID: "user01", UniqID: "U1"}})

	view, err := s.Detail(context.Background(), NoticeBoardID, 12)
	require.NoError(t, err)
	assert.Equal(t, "hello", view.Article.NttSj)
	assert.Equal(t, "Notice", view.BoardName)
	assert.True(t, view.IsAuthor)
}

func TestService_DetailErrors(t *testing.T) {
	tests := []struct {
		name   string
		resp   *pkgapi.Envelope[*pkgapi.BoardDetailResponse]
		err    error
		wantIs error
	}{
		{name: "forbidden", resp: fail[*pkgapi.BoardDetailResponse]("403", ""), wantIs: session.ErrLoginRequired},
		{name: "missing article", resp: ok(&pkgapi.BoardDetailResponse{}), wantIs: ErrArticleNotFound},
		{name: "nil result", resp: ok[*pkgapi.BoardDetailResponse](nil), wantIs: ErrArticleNotFound},
		{name: "transport", err: errors.New("timeout"), wantIs: api.ErrServerUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &APIMock{
				BoardDetailFunc: func(context.Context, string, int64) (*pkgapi.Envelope[*pkgapi.BoardDetailResponse], error) {
					return tt.resp, tt.err
				},
			}
			_, err := NewService(m, &fakeSession{}).Detail(context.Background(), FreeBoardID, 1)
			assert.ErrorIs(t, err, tt.wantIs)
		})
	}
}

func okRaw() *pkgapi.Envelope[json.RawMessage] {
	return ok(json.RawMessage(`{}`))
}

func loggedIn() *fakeSession {
	return &fakeSession{user: &pkgapi.User{ID: "user01", UniqID: "U1"}}
}

func TestService_WriteCreates(t *testing.T) {
	m := &APIMock{
		CreateArticleFunc: func(_ context.Context, d pkgapi.ArticleDraft) (*pkgapi.Envelope[json.RawMessage], error) {
			assert.Equal(t, FreeBoardID, d.BbsID)
			assert.Equal(t, "title", d.NttSj)
			assert.Equal(t, "body", d.NttCn)
			require.Len(t, d.Files, 1)
			return okRaw(), nil
		},
		FileAtchInfoFunc: func(context.Context, string) (*pkgapi.Envelope[*pkgapi.BoardMaster], error) {
			return ok(&pkgapi.BoardMaster{FileAtchPosblAt: "Y", PosblAtchFileNumber: 3}), nil
		},
	}
	s := NewService(m, loggedIn())

	err := s.Write(context.Background(), Draft{
		BbsID:   FreeBoardID,
		Title:   "  title ",
		Content: "body",
		Files:   []pkgapi.Attachment{{Name: "a.txt", Data: []byte("a")}},
	}, 0)
	require.NoError(t, err)
	assert.Len(t, m.createCalls, 1)
	assert.Empty(t, m.updateCalls)
}

func TestService_WriteUpdates(t *testing.T) {
	m := &APIMock{
		UpdateArticleFunc: func(_ context.Context, nttID int64, d pkgapi.ArticleDraft) (*pkgapi.Envelope[json.RawMessage], error) {
			assert.Equal(t, int64(7), nttID)
			return fail[json.RawMessage]("500", "not the author"), nil
		},
	}
	s := NewService(m, loggedIn())

	err := s.Write(context.Background(), Draft{BbsID: FreeBoardID, Title: "t", Content: "c"}, 7)
	require.Error(t, err)
	assert.EqualError(t, err, "not the author")

	var resultErr *pkgapi.ResultError
	assert.ErrorAs(t, err, &resultErr)
}

func TestService_WriteValidation(t *testing.T) {
	m := &APIMock{}
	s := NewService(m, loggedIn())

	err := s.Write(context.Background(), Draft{BbsID: FreeBoardID, Title: "   ", Content: "\n"}, 0)

	var fieldErrs criterio.FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	require.Len(t, fieldErrs, 2)
	assert.Equal(t, "title", fieldErrs[0].Field)
	assert.ErrorIs(t, fieldErrs[0].Err, validation.ErrTitleRequired)
	assert.Equal(t, "content", fieldErrs[1].Field)
	assert.ErrorIs(t, fieldErrs[1].Err, validation.ErrContentRequired)
	assert.Empty(t, m.createCalls, "no request on invalid form")
}

func TestService_WriteRequiresLogin(t *testing.T) {
	m := &APIMock{}
	s := NewService(m, &fakeSession{})

	err := s.Write(context.Background(), Draft{BbsID: FreeBoardID, Title: "t", Content: "c"}, 0)
	assert.ErrorIs(t, err, session.ErrLoginRequired)
	assert.Empty(t, m.createCalls)
}

func TestService_WriteAttachmentPolicy(t *testing.T) {
	files := []pkgapi.Attachment{{Name: "a.png", Data: []byte("12345")}, {Name: "b.png", Data: []byte("1")}}

	tests := []struct {
		name    string
		master  *pkgapi.BoardMaster
		wantErr bool
	}{
		{name: "attachments disabled", master: &pkgapi.BoardMaster{FileAtchPosblAt: "N"}, wantErr: true},
		{name: "too many files", master: &pkgapi.BoardMaster{FileAtchPosblAt: "Y", PosblAtchFileNumber: 1}, wantErr: true},
		{name: "file too large", master: &pkgapi.BoardMaster{FileAtchPosblAt: "Y", PosblAtchFileSize: 4}, wantErr: true},
		{name: "allowed", master: &pkgapi.BoardMaster{FileAtchPosblAt: "Y", PosblAtchFileNumber: 2, PosblAtchFileSize: 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &APIMock{
				FileAtchInfoFunc: func(context.Context, string) (*pkgapi.Envelope[*pkgapi.BoardMaster], error) {
					return ok(tt.master), nil
				},
				CreateArticleFunc: func(context.Context, pkgapi.ArticleDraft) (*pkgapi.Envelope[json.RawMessage], error) {
					return okRaw(), nil
				},
			}
			s := NewService(m, loggedIn())

			err := s.Write(context.Background(), Draft{BbsID: GalleryBoardID, Title: "t", Content: "c", Files: files}, 0)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Len(t, m.createCalls, 1)
				return
			}
			var fieldErrs criterio.FieldErrors
			require.ErrorAs(t, err, &fieldErrs)
			assert.Equal(t, "files", fieldErrs[0].Field)
			assert.Empty(t, m.createCalls)
		})
	}
}

func TestService_Delete(t *testing.T) {
	m := &APIMock{
		DeleteArticleFunc: func(_ context.Context, bbsID string, nttID int64) (*pkgapi.Envelope[json.RawMessage], error) {
			assert.Equal(t, FreeBoardID, bbsID)
			return okRaw(), nil
		},
	}

	err := NewService(m, loggedIn()).Delete(context.Background(), FreeBoardID, 3)
	require.NoError(t, err)
	assert.Equal(t, []int64{3}, m.deleteCalls)

	err = NewService(m, &fakeSession{}).Delete(context.Background(), FreeBoardID, 4)
	assert.ErrorIs(t, err, session.ErrLoginRequired)
	assert.Equal(t, []int64{3}, m.deleteCalls)
}

func TestService_LoadDraft(t *testing.T) {
	m := &APIMock{
		BoardDetailFunc: func(context.Context, string, int64) (*pkgapi.Envelope[*pkgapi.BoardDetailResponse], error) {
			return ok(&pkgapi.BoardDetailResponse{Result: &pkgapi.BoardArticle{NttSj: "old", NttCn: "text"}}), nil
		},
	}

	d, err := NewService(m, loggedIn()).LoadDraft(context.Background(), FreeBoardID, 5)
	require.NoError(t, err)
	assert.Equal(t, Draft{BbsID: FreeBoardID, Title: "old", Content: "text"}, d)
}
