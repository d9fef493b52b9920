package services

import (
	"context"

	"github.com/schoolledger/school_ledger_app/internal/core/domain"
)

// ReportSvc assembles render contexts and runs the document pipeline.
type ReportSvc interface {
	// Assemble layers the common fields (dates, product stamp, printed-by,
	// page title) under the caller's payload. Payload wins on conflict.
	Assemble(ctx context.Context, docType domain.DocumentType, payload map[string]any) domain.RenderContext

	// GenerateDocument assembles, resolves, and renders a document. It
	// always returns markup: resolution and render failures come back as
	// the fixed error document, never as a propagated error to the print
	// surface.
	GenerateDocument(ctx context.Context, docType domain.DocumentType, payload map[string]any, settings *domain.PrintSettings) string
}
