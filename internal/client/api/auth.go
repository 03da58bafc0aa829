package api

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/egovcms/pkg/api"
)

// Login выполняет аутентификацию пользователя (POST /auth/login-jwt)
func (c *Client) Login(ctx context.Context, req api.LoginRequest) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	if err := c.doJSON(ctx, "POST", "/auth/login-jwt", false, req, &resp); err != nil {
		return nil, fmt.Errorf("login request failed: %w", err)
	}
	return &resp, nil
}

// Logout уведомляет backend о выходе (POST /auth/logout)
func (c *Client) Logout(ctx context.Context) (*api.Envelope[json.RawMessage], error) {
	var resp api.Envelope[json.RawMessage]
	if err := c.doJSON(ctx, "POST", "/auth/logout", true, nil, &resp); err != nil {
		return nil, fmt.Errorf("logout request failed: %w", err)
	}
	return &resp, nil
}
