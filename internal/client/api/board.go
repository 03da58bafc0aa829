package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/iudanet/egovcms/pkg/api"
)

// BoardList получает список записей доски.
// searchCnd и searchWrd добавляются только если не пустые.
func (c *Client) BoardList(ctx context.Context, q api.ListQuery) (*api.Envelope[*api.BoardListResponse], error) {
	params := url.Values{}
	params.Set("bbsId", q.BbsID)
	params.Set("pageIndex", strconv.Itoa(q.PageIndex))
	if q.SearchCnd != "" {
		params.Set("searchCnd", q.SearchCnd)
	}
	if q.SearchWrd != "" {
		params.Set("searchWrd", q.SearchWrd)
	}

	var resp api.Envelope[*api.BoardListResponse]
	if err := c.doJSON(ctx, "GET", "/board?"+params.Encode(), true, nil, &resp); err != nil {
		return nil, fmt.Errorf("board list request failed: %w", err)
	}
	return &resp, nil
}

// BoardDetail получает запись доски
func (c *Client) BoardDetail(ctx context.Context, bbsID string, nttID int64) (*api.Envelope[*api.BoardDetailResponse], error) {
	var raw api.Envelope[json.RawMessage]
	path := fmt.Sprintf("/board/%s/%d", url.PathEscape(bbsID), nttID)
	if err := c.doJSON(ctx, "GET", path, true, nil, &raw); err != nil {
		return nil, fmt.Errorf("board detail request failed: %w", err)
	}

	resp := &api.Envelope[*api.BoardDetailResponse]{
		ResultCode:    raw.ResultCode,
		ResultMessage: raw.ResultMessage,
	}
	if !raw.ResultCode.IsSuccess() {
		return resp, nil
	}

	detail, err := api.ParseBoardDetail(raw.Result)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrServerUnavailable, err)
	}
	resp.Result = detail
	return resp, nil
}

// CreateArticle создает запись (POST /board, multipart)
func (c *Client) CreateArticle(ctx context.Context, draft api.ArticleDraft) (*api.Envelope[json.RawMessage], error) {
	var resp api.Envelope[json.RawMessage]
	if err := c.doMultipart(ctx, "POST", "/board", draftFields(draft), draft.Files, &resp); err != nil {
		return nil, fmt.Errorf("create article request failed: %w", err)
	}
	return &resp, nil
}

// UpdateArticle изменяет запись (PUT /board/{nttId}, multipart)
func (c *Client) UpdateArticle(ctx context.Context, nttID int64, draft api.ArticleDraft) (*api.Envelope[json.RawMessage], error) {
	var resp api.Envelope[json.RawMessage]
	path := fmt.Sprintf("/board/%d", nttID)
	if err := c.doMultipart(ctx, "PUT", path, draftFields(draft), draft.Files, &resp); err != nil {
		return nil, fmt.Errorf("update article request failed: %w", err)
	}
	return &resp, nil
}

// DeleteArticle мягко удаляет запись (PATCH с пустым телом)
func (c *Client) DeleteArticle(ctx context.Context, bbsID string, nttID int64) (*api.Envelope[json.RawMessage], error) {
	var resp api.Envelope[json.RawMessage]
	path := fmt.Sprintf("/board/%s/%d", url.PathEscape(bbsID), nttID)
	if err := c.doJSON(ctx, "PATCH", path, true, struct{}{}, &resp); err != nil {
		return nil, fmt.Errorf("delete article request failed: %w", err)
	}
	return &resp, nil
}

// FileAtchInfo получает политику вложений доски
func (c *Client) FileAtchInfo(ctx context.Context, bbsID string) (*api.Envelope[*api.BoardMaster], error) {
	var resp api.Envelope[*api.BoardMaster]
	path := fmt.Sprintf("/boardFileAtch/%s", url.PathEscape(bbsID))
	if err := c.doJSON(ctx, "GET", path, true, nil, &resp); err != nil {
		return nil, fmt.Errorf("file attachment info request failed: %w", err)
	}
	return &resp, nil
}

func draftFields(d api.ArticleDraft) [][2]string {
	return [][2]string{
		{"bbsId", d.BbsID},
		{"nttSj", d.NttSj},
		{"nttCn", d.NttCn},
	}
}
