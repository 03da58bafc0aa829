package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/egovcms/pkg/api"
)

// Mypage получает профиль текущего пользователя
func (c *Client) Mypage(ctx context.Context) (*api.Envelope[*api.MypageData], error) {
	var resp api.Envelope[*api.MypageData]
	if err := c.doJSON(ctx, "GET", "/mypage", true, nil, &resp); err != nil {
		return nil, fmt.Errorf("mypage request failed: %w", err)
	}
	return &resp, nil
}

// UpdateMypage сохраняет профиль
func (c *Client) UpdateMypage(ctx context.Context, m api.MemberManage) (*api.Envelope[json.RawMessage], error) {
	var resp api.Envelope[json.RawMessage]
	if err := c.doJSON(ctx, "PUT", "/mypage/update", true, m, &resp); err != nil {
		return nil, fmt.Errorf("mypage update request failed: %w", err)
	}
	return &resp, nil
}

// WithdrawMypage удаляет аккаунт
func (c *Client) WithdrawMypage(ctx context.Context, uniqID string) (*api.Envelope[json.RawMessage], error) {
	var resp api.Envelope[json.RawMessage]
	if err := c.doJSON(ctx, "PUT", "/mypage/delete", true, api.WithdrawRequest{UniqID: uniqID}, &resp); err != nil {
		return nil, fmt.Errorf("mypage delete request failed: %w", err)
	}
	return &resp, nil
}
