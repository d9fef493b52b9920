package render

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"
	"path/filepath"

	"github.com/schoolledger/school_ledger_app/internal/core/domain"
	portssvc "github.com/schoolledger/school_ledger_app/internal/core/ports/services"
	"github.com/schoolledger/school_ledger_app/internal/middleware"
	"github.com/schoolledger/school_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// Renderer executes a resolved template against a render context.
type Renderer struct{}

// NewRenderer creates a template renderer.
func NewRenderer() *Renderer {
	return &Renderer{}
}

// Ensure Renderer implements the RendererSvc interface
var _ portssvc.RendererSvc = (*Renderer)(nil)

// funcMap exposes the formatting utilities as named template filters.
func funcMap() template.FuncMap {
	return template.FuncMap{
		"currency":  utils.FormatCurrency,
		"localdate": utils.FormatLocalDate,
		"sub":       subtractValues,
	}
}

// subtractValues computes a - b over the value shapes a render context
// carries, treating absent or malformed operands as zero.
func subtractValues(a, b any) decimal.Decimal {
	x, _ := utils.ToDecimal(a)
	y, _ := utils.ToDecimal(b)
	return x.Sub(y)
}

// Render parses the template file and executes it with the context. Any
// failure (unreadable template, parse error, missing required mapping,
// filter error) is logged and yields the fixed error document instead of
// propagating: a malformed report must never crash the print surface.
// Templates are re-read per call so on-disk customizations apply without a
// restart.
func (r *Renderer) Render(ctx context.Context, handle domain.TemplateHandle, rc domain.RenderContext) string {
	logger := middleware.GetLoggerFromCtx(ctx)

	tmpl, err := template.New(filepath.Base(handle.Path)).Funcs(funcMap()).ParseFiles(handle.Path)
	if err != nil {
		logger.Error("Template parse failed",
			slog.String("template", handle.Name),
			slog.String("path", handle.Path),
			slog.String("error", err.Error()))
		return ErrorDocument()
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any(rc)); err != nil {
		logger.Error("Template execution failed",
			slog.String("template", handle.Name),
			slog.String("error", err.Error()))
		return ErrorDocument()
	}

	return buf.String()
}
