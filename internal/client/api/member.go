package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"github.com/iudanet/egovcms/pkg/api"
)

// SignupForm получает справочники формы регистрации
func (c *Client) SignupForm(ctx context.Context) (*api.Envelope[*api.SignupFormData], error) {
	var resp api.Envelope[*api.SignupFormData]
	if err := c.doJSON(ctx, "GET", "/etc/member_insert", false, nil, &resp); err != nil {
		return nil, fmt.Errorf("signup form request failed: %w", err)
	}
	return &resp, nil
}

// CheckID проверяет, занят ли идентификатор
func (c *Client) CheckID(ctx context.Context, id string) (*api.Envelope[*api.CheckIDResult], error) {
	var resp api.Envelope[*api.CheckIDResult]
	path := fmt.Sprintf("/etc/member_checkid/%s", url.PathEscape(id))
	if err := c.doJSON(ctx, "GET", path, false, nil, &resp); err != nil {
		return nil, fmt.Errorf("check id request failed: %w", err)
	}
	return &resp, nil
}

// Signup отправляет форму регистрации (form-urlencoded)
func (c *Client) Signup(ctx context.Context, data api.MemberData) (*api.Envelope[json.RawMessage], error) {
	var resp api.Envelope[json.RawMessage]
	if err := c.doForm(ctx, "POST", "/etc/member_insert", data.Form(), &resp); err != nil {
		return nil, fmt.Errorf("signup request failed: %w", err)
	}
	return &resp, nil
}

// Agreement получает условия использования
func (c *Client) Agreement(ctx context.Context) (*api.Envelope[*api.AgreementData], error) {
	var resp api.Envelope[*api.AgreementData]
	if err := c.doJSON(ctx, "GET", "/etc/member_agreement", false, nil, &resp); err != nil {
		return nil, fmt.Errorf("agreement request failed: %w", err)
	}
	return &resp, nil
}

// Members получает страницу списка пользователей (администратор)
func (c *Client) Members(ctx context.Context, pageIndex int) (*api.Envelope[*api.MemberListResponse], error) {
	var resp api.Envelope[*api.MemberListResponse]
	path := fmt.Sprintf("/members?pageIndex=%d", pageIndex)
	if err := c.doJSON(ctx, "GET", path, true, nil, &resp); err != nil {
		return nil, fmt.Errorf("members request failed: %w", err)
	}
	return &resp, nil
}
