package services

import (
	"context"

	"github.com/schoolledger/school_ledger_app/internal/core/domain"
)

// TemplateRegistrySvc resolves document types to template resources,
// provisioning the built-in defaults when a resource is missing.
type TemplateRegistrySvc interface {
	// Resolve canonicalizes the document type and locates its template
	// file, provisioning defaults and retrying once when it is missing.
	// Returns apperrors.ErrTemplateUnavailable when resolution still fails.
	Resolve(ctx context.Context, docType domain.DocumentType) (domain.TemplateHandle, error)

	// ProvisionDefaults writes each built-in template that does not already
	// exist. Idempotent: it never overwrites a user-customized template.
	ProvisionDefaults(ctx context.Context) error
}

// RendererSvc executes a template against a render context. It always
// returns markup: any failure yields the fixed error document.
type RendererSvc interface {
	Render(ctx context.Context, handle domain.TemplateHandle, rc domain.RenderContext) string
}
