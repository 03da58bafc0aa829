package session

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenInfo сведения из JWT токена, подпись не проверяется
type TokenInfo struct {
	ExpiresAt time.Time
	IssuedAt  time.Time
	Claims    jwt.MapClaims
	Subject   string
}

// InspectToken разбирает claims токена без проверки подписи.
// Используется только для отображения: ключ подписи есть только у backend.
func InspectToken(raw string) (*TokenInfo, error) {
	raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))
	if raw == "" {
		return nil, fmt.Errorf("token is empty")
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	info := &TokenInfo{Claims: claims}
	if sub, err := claims.GetSubject(); err == nil {
		info.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		info.ExpiresAt = exp.Time
	}
	if iat, err := claims.GetIssuedAt(); err == nil && iat != nil {
		info.IssuedAt = iat.Time
	}

	return info, nil
}

// Claim возвращает строковое значение claim или пустую строку
func (i *TokenInfo) Claim(name string) string {
	v, ok := i.Claims[name]
	if !ok || v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// Expired сообщает, истек ли токен. Токен без exp не истекает.
func (i *TokenInfo) Expired(now time.Time) bool {
	return !i.ExpiresAt.IsZero() && now.After(i.ExpiresAt)
}
