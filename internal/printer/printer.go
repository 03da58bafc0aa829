// Package printer форматирует итоговые сообщения команд в stderr.
package printer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hay-kot/criterio"
)

// ANSI коды цветов
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[38;2;215;95;107m"
	ColorGreen  = "\033[38;2;158;206;106m"
	ColorYellow = "\033[38;2;224;175;104m"
	ColorGray   = "\033[38;2;86;95;137m"
)

const (
	Check = "✔"
	Cross = "✘"
	Dot   = "•"
)

type ctxKey struct{}

// Printer вывод с цветами. Без цвета, если задан NO_COLOR.
type Printer struct {
	writer io.Writer
	color  bool
}

// New создает Printer поверх w
func New(w io.Writer) *Printer {
	return &Printer{writer: w, color: os.Getenv("NO_COLOR") == ""}
}

// NewPlain создает Printer без цветов
func NewPlain(w io.Writer) *Printer {
	return &Printer{writer: w}
}

// NewContext кладет printer в контекст
func NewContext(ctx context.Context, p *Printer) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

// Ctx достает printer из контекста или создает stderr printer
func Ctx(ctx context.Context) *Printer {
	if p, ok := ctx.Value(ctxKey{}).(*Printer); ok {
		return p
	}
	return New(os.Stderr)
}

// FatalError выводит ошибку в рамке. Выход из процесса остается за вызывающим.
func (p *Printer) FatalError(err error) {
	if err == nil {
		return
	}

	var fieldErrs criterio.FieldErrors
	if errors.As(err, &fieldErrs) {
		p.printValidationErrors(err, fieldErrs)
		return
	}

	p.line(p.colorize(ColorRed, "╭ Error"))
	p.line(p.colorize(ColorRed, "│") + " " + err.Error())
	p.line(p.colorize(ColorRed, "╵"))
}

func (p *Printer) printValidationErrors(wrapped error, fieldErrs criterio.FieldErrors) {
	errStr := wrapped.Error()
	fieldErrStr := fieldErrs.Error()

	errContext := ""
	if idx := strings.Index(errStr, fieldErrStr); idx > 0 {
		errContext = strings.TrimSuffix(errStr[:idx], ": ")
	}

	p.line(p.colorize(ColorRed, "╭ Validation Error"))
	if errContext != "" {
		p.line(p.colorize(ColorRed, "│") + " " + p.colorize(ColorGray, errContext))
		p.line(p.colorize(ColorRed, "│"))
	}
	for _, fe := range fieldErrs {
		line := p.colorize(ColorRed, "│") + " " + p.colorize(ColorRed, Cross) + " "
		if fe.Field != "" {
			line += p.colorize(ColorGray, fe.Field+": ")
		}
		line += fe.Err.Error()
		p.line(line)
	}
	p.line(p.colorize(ColorRed, "╵"))
}

// Errorf красное сообщение об ошибке
func (p *Printer) Errorf(format string, args ...any) {
	p.line(p.colorize(ColorRed, Cross+" "+fmt.Sprintf(format, args...)))
}

// Successf зеленое сообщение
func (p *Printer) Successf(format string, args ...any) {
	p.line(p.colorize(ColorGreen, Check+" "+fmt.Sprintf(format, args...)))
}

// Warnf желтое предупреждение
func (p *Printer) Warnf(format string, args ...any) {
	p.line(p.colorize(ColorYellow, Dot+" "+fmt.Sprintf(format, args...)))
}

// Infof серое информационное сообщение
func (p *Printer) Infof(format string, args ...any) {
	p.line(p.colorize(ColorGray, Dot+" "+fmt.Sprintf(format, args...)))
}

func (p *Printer) line(s string) {
	_, _ = io.WriteString(p.writer, s+"\n")
}

func (p *Printer) colorize(color, text string) string {
	if !p.color {
		return text
	}
	return color + text + ColorReset
}
