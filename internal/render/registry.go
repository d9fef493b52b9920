package render

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/schoolledger/school_ledger_app/internal/apperrors"
	"github.com/schoolledger/school_ledger_app/internal/core/domain"
	portssvc "github.com/schoolledger/school_ledger_app/internal/core/ports/services"
	"github.com/schoolledger/school_ledger_app/internal/middleware"
)

// templateExt is the fixed extension for template resources.
const templateExt = ".html"

// docTypeAliases maps every accepted historical alias to its canonical
// document type. Canonicalization happens only here, at the registry
// boundary, never at call sites.
var docTypeAliases = map[domain.DocumentType]domain.DocumentType{
	"students_list":       domain.DocStudentList,
	"student_list_report": domain.DocStudentList,
}

// Canonicalize resolves aliased document types to their canonical name.
func Canonicalize(t domain.DocumentType) domain.DocumentType {
	if canonical, ok := docTypeAliases[t]; ok {
		return canonical
	}
	return t
}

// Registry resolves document types to template files under a configured
// template directory, provisioning the built-in defaults lazily.
type Registry struct {
	templateDir string
}

// NewRegistry creates a template registry rooted at templateDir. The
// directory is passed in explicitly; there is no global template location.
func NewRegistry(templateDir string) *Registry {
	return &Registry{templateDir: templateDir}
}

// Ensure Registry implements the TemplateRegistrySvc interface
var _ portssvc.TemplateRegistrySvc = (*Registry)(nil)

// Resolve canonicalizes the document type and locates its template file.
// When the file is missing it provisions the defaults and retries once;
// if resolution still fails it returns apperrors.ErrTemplateUnavailable.
func (g *Registry) Resolve(ctx context.Context, docType domain.DocumentType) (domain.TemplateHandle, error) {
	canonical := Canonicalize(docType)
	if !domain.IsKnownDocumentType(canonical) {
		return domain.TemplateHandle{}, fmt.Errorf("%w: unknown document type %q", apperrors.ErrTemplateUnavailable, docType)
	}

	handle := domain.TemplateHandle{
		Type: canonical,
		Name: string(canonical),
		Path: filepath.Join(g.templateDir, string(canonical)+templateExt),
	}

	if fileExists(handle.Path) {
		return handle, nil
	}

	// Lazy provisioning: write the built-in defaults and look again.
	if err := g.ProvisionDefaults(ctx); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Provisioning default templates failed",
			slog.String("template_dir", g.templateDir),
			slog.String("error", err.Error()))
	}

	if fileExists(handle.Path) {
		return handle, nil
	}

	return domain.TemplateHandle{}, fmt.Errorf("%w: %s", apperrors.ErrTemplateUnavailable, canonical)
}

// ProvisionDefaults writes one built-in template per known document type,
// skipping any file that already exists so a user-customized template is
// never clobbered. Safe to call any number of times. A write failure for
// one type is logged and does not stop provisioning of the others.
func (g *Registry) ProvisionDefaults(ctx context.Context) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := os.MkdirAll(g.templateDir, 0o755); err != nil {
		return fmt.Errorf("failed to create template directory %s: %w", g.templateDir, err)
	}

	var errs []error
	for _, docType := range domain.KnownDocumentTypes {
		content, ok := defaultTemplates[docType]
		if !ok {
			continue
		}

		path := filepath.Join(g.templateDir, string(docType)+templateExt)
		if fileExists(path) {
			continue
		}

		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			logger.Warn("Failed to write default template",
				slog.String("doc_type", string(docType)),
				slog.String("path", path),
				slog.String("error", err.Error()))
			errs = append(errs, fmt.Errorf("write %s: %w", docType, err))
		}
	}

	return errors.Join(errs...)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
