package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/schoolledger/school_ledger_app/internal/core/domain"
	portssvc "github.com/schoolledger/school_ledger_app/internal/core/ports/services"
	"github.com/schoolledger/school_ledger_app/internal/render"
	"github.com/schoolledger/school_ledger_app/internal/utils"
)

// ProductStamp is the fixed product identity injected into every document.
type ProductStamp struct {
	Name      string
	Version   string
	PrintedBy string
}

// reportService implements the ReportSvc interface.
type reportService struct {
	BaseService
	registry portssvc.TemplateRegistrySvc
	renderer portssvc.RendererSvc
	stamp    ProductStamp
}

// NewReportService creates the document pipeline over a template registry
// and renderer.
func NewReportService(registry portssvc.TemplateRegistrySvc, renderer portssvc.RendererSvc, stamp ProductStamp) portssvc.ReportSvc {
	return &reportService{
		registry: registry,
		renderer: renderer,
		stamp:    stamp,
	}
}

// Ensure reportService implements the ReportSvc interface
var _ portssvc.ReportSvc = (*reportService)(nil)

// Assemble builds the render context: the caller's payload layered over the
// process-wide common fields. A key already present in the payload is never
// overwritten. Derived aggregates are not auto-injected; callers compute
// them explicitly and include them in the payload.
func (s *reportService) Assemble(ctx context.Context, docType domain.DocumentType, payload map[string]any) domain.RenderContext {
	now := time.Now()

	// Aliased types carry the canonical type's title.
	canonical := render.Canonicalize(docType)

	rc := domain.RenderContext{
		"current_date": now.Format("02/01/2006"),
		"current_time": now.Format("15:04"),
		"print_date":   utils.FormatLocalDate(now),
		"app_version":  s.stamp.Name + " " + s.stamp.Version,
		"printed_by":   s.stamp.PrintedBy,
		"page_title":   canonical.DisplayTitle(),
	}

	for k, v := range payload {
		rc[k] = v
	}

	if canonical == domain.DocPaymentReceipt {
		ensureReceiptNumber(rc)
	}

	return rc
}

// ensureReceiptNumber supplies a short receipt number when the caller's
// receipt payload carries none.
func ensureReceiptNumber(rc domain.RenderContext) {
	receipt, ok := rc["receipt"].(map[string]any)
	if !ok {
		return
	}
	if id, has := receipt["id"]; has && id != nil && id != "" {
		return
	}
	receipt["id"] = strings.ToUpper(uuid.NewString()[:8])
}

// GenerateDocument runs the full pipeline: assemble the context, resolve the
// template, render. Resolution and render failures come back as the fixed
// error document so the print surface always receives markup.
func (s *reportService) GenerateDocument(ctx context.Context, docType domain.DocumentType, payload map[string]any, settings *domain.PrintSettings) string {
	rc := s.Assemble(ctx, docType, payload)

	if settings == nil {
		defaults := domain.DefaultPrintSettings()
		settings = &defaults
	}
	applyPrintSettings(rc, *settings)

	handle, err := s.registry.Resolve(ctx, docType)
	if err != nil {
		s.LogError(ctx, err, "Template resolution failed",
			slog.String("doc_type", string(docType)))
		return render.ErrorDocument()
	}

	markup := s.renderer.Render(ctx, handle, rc)

	s.LogInfo(ctx, "Document generated",
		slog.String("doc_type", string(docType)),
		slog.String("template", handle.Name),
		slog.Int("markup_bytes", len(markup)))
	return markup
}

// applyPrintSettings injects page geometry fields, without overriding any
// the payload already set.
func applyPrintSettings(rc domain.RenderContext, settings domain.PrintSettings) {
	m := settings.Margins
	setIfAbsent(rc, "page_size", settings.PageCSSSize())
	setIfAbsent(rc, "page_margins", fmt.Sprintf("%gmm %gmm %gmm %gmm", m.Top, m.Right, m.Bottom, m.Left))
	setIfAbsent(rc, "print_dpi", settings.Quality.DPI())
	setIfAbsent(rc, "show_header", settings.ShowHeader)
	setIfAbsent(rc, "show_footer", settings.ShowFooter)
	setIfAbsent(rc, "show_page_numbers", settings.ShowPageNumbers)
}

func setIfAbsent(rc domain.RenderContext, key string, value any) {
	if _, ok := rc[key]; !ok {
		rc[key] = value
	}
}
