package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/iudanet/egovcms/pkg/api"
)

// ErrServerUnavailable транспортная ошибка: запрос не дошел до backend
// или ответ не удалось разобрать
var ErrServerUnavailable = errors.New("failed to connect to server")

// Unavailable помечает ошибку вызова как транспортную, если она еще не помечена
func Unavailable(err error) error {
	if err == nil || errors.Is(err, ErrServerUnavailable) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrServerUnavailable, err)
}

// TokenSource источник токена для авторизованных запросов
type TokenSource interface {
	Token() string
}

// Client представляет HTTP клиент для взаимодействия с backend CMS
type Client struct {
	httpClient *http.Client
	tokens     TokenSource
	log        zerolog.Logger
	baseURL    string
}

// Option настраивает Client
type Option func(*Client)

// WithHTTPClient подменяет http.Client
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithLogger задает логгер для диагностики запросов
func WithLogger(l zerolog.Logger) Option {
	return func(c *Client) {
		c.log = l
	}
}

// WithTokenSource задает источник токена
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) {
		c.tokens = ts
	}
}

// NewClient создает новый API клиент.
// Таймаут не задается: запрос ограничивается только контекстом.
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     zerolog.Nop(),
		httpClient: &http.Client{
			// Настройка обработки редиректов
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				// Ограничиваем количество редиректов
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				// Копируем заголовки Authorization при редиректе
				if len(via) > 0 && via[0].Header.Get("Authorization") != "" {
					req.Header.Set("Authorization", via[0].Header.Get("Authorization"))
				}
				return nil
			},
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// SetTokenSource задает источник токена после создания клиента.
// Нужен, когда session store сам зависит от клиента.
func (c *Client) SetTokenSource(ts TokenSource) {
	c.tokens = ts
}

// BaseURL возвращает адрес backend
func (c *Client) BaseURL() string {
	return c.baseURL
}

// doJSON выполняет запрос с JSON телом
func (c *Client) doJSON(ctx context.Context, method, path string, auth bool, body, result any) error {
	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, auth, result)
}

// doForm выполняет запрос с form-urlencoded телом
func (c *Client) doForm(ctx context.Context, method, path string, fields [][2]string, result any) error {
	form := url.Values{}
	for _, f := range fields {
		form.Add(f[0], f[1])
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return c.do(req, false, result)
}

// doMultipart выполняет multipart запрос. Content-Type с boundary
// выставляется из writer, других переопределений нет.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields [][2]string, files []api.Attachment, result any) error {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for _, f := range fields {
		if err := mw.WriteField(f[0], f[1]); err != nil {
			return fmt.Errorf("failed to write field %s: %w", f[0], err)
		}
	}
	for _, file := range files {
		part, err := mw.CreateFormFile("files", file.Name)
		if err != nil {
			return fmt.Errorf("failed to create file part %s: %w", file.Name, err)
		}
		if _, err := part.Write(file.Data); err != nil {
			return fmt.Errorf("failed to write file %s: %w", file.Name, err)
		}
	}
	if err := mw.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())

	return c.do(req, true, result)
}

// do выполняет HTTP запрос и декодирует тело в конверт.
// HTTP статус не проверяется, если тело разбирается как JSON:
// backend сообщает об ошибках через resultCode.
func (c *Client) do(req *http.Request, auth bool, result any) error {
	if auth && c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", token)
		}
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: request failed: %w", ErrServerUnavailable, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	// Читаем тело ответа
	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", ErrServerUnavailable, err)
	}

	c.log.Debug().
		Str("method", req.Method).
		Str("path", req.URL.Path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("api request")

	if result == nil {
		return nil
	}

	if err := json.Unmarshal(respBody, result); err != nil {
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return fmt.Errorf("%w: request failed with status %d: %s", ErrServerUnavailable, resp.StatusCode, truncate(respBody, 200))
		}
		return fmt.Errorf("%w: failed to decode response: %w", ErrServerUnavailable, err)
	}

	return nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
