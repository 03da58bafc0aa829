package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/iudanet/egovcms/internal/client/ui"
)

var toastPrefix = map[ui.ToastType]string{
	ui.ToastSuccess: "✓",
	ui.ToastError:   "✗",
	ui.ToastWarning: "!",
	ui.ToastInfo:    "•",
}

// notify добавляет toast и сразу выводит накопленные уведомления
func (c *Cli) notify(typ ui.ToastType, format string, a ...any) {
	c.ui.AddToast(typ, fmt.Sprintf(format, a...))
	c.flushToasts()
}

// flushToasts выводит активные toast и удаляет их
func (c *Cli) flushToasts() {
	for _, t := range c.ui.Toasts() {
		c.io.Printf("%s %s\n", toastPrefix[t.Type], t.Message)
		c.ui.RemoveToast(t.ID)
	}
}

// withLoading выполняет fn с индикатором загрузки
func (c *Cli) withLoading(ctx context.Context, text string, fn func() error) error {
	c.ui.SetLoading(true, text)
	defer c.ui.SetLoading(false, "")

	if _, msg := c.ui.Loading(); msg != "" {
		c.io.Println(msg)
	}
	err := fn()
	if err != nil {
		zerolog.Ctx(ctx).Debug().Err(err).Str("action", text).Msg("action failed")
	}
	return err
}

// confirm показывает диалог подтверждения через modal.
// assumeYes подтверждает без вопроса.
func (c *Cli) confirm(title, content string, assumeYes bool) (bool, error) {
	confirmed := false
	c.ui.OpenModal(ui.Modal{
		Title:     title,
		Content:   content,
		OnConfirm: func() { confirmed = true },
		OnCancel:  func() { confirmed = false },
	})
	defer c.ui.CloseModal()

	m := c.ui.ActiveModal()
	if assumeYes {
		m.OnConfirm()
		return confirmed, nil
	}

	c.io.Println(m.Title)
	if m.Content != "" {
		c.io.Println(m.Content)
	}
	answer, err := c.io.ReadInput("Continue? [y/N]: ")
	if err != nil {
		return false, fmt.Errorf("failed to read confirmation: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		m.OnConfirm()
	default:
		m.OnCancel()
	}
	return confirmed, nil
}

// prompt возвращает value или спрашивает его, если пусто
func (c *Cli) prompt(value, label string) (string, error) {
	if value != "" {
		return value, nil
	}
	input, err := c.io.ReadInput(label + ": ")
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	return input, nil
}

// promptPassword возвращает value или спрашивает пароль без эха
func (c *Cli) promptPassword(value, label string) (string, error) {
	if value != "" {
		return value, nil
	}
	input, err := c.io.ReadPassword(label + ": ")
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", strings.ToLower(label), err)
	}
	return input, nil
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
