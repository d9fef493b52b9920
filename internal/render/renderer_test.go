package render_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/schoolledger/school_ledger_app/internal/core/domain"
	"github.com/schoolledger/school_ledger_app/internal/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderContextFixture() domain.RenderContext {
	return domain.RenderContext{
		"page_title":        "تقرير الطالب",
		"print_date":        "5 مارس 2024",
		"current_date":      "05/03/2024",
		"current_time":      "10:30",
		"app_version":       "School Ledger v1.0",
		"printed_by":        "نظام الحسابات المدرسية",
		"page_size":         "210mm 297mm",
		"page_margins":      "15mm 15mm 15mm 15mm",
		"print_dpi":         300,
		"show_header":       true,
		"show_footer":       true,
		"show_page_numbers": true,
	}
}

func resolveTemplate(t *testing.T, registry *render.Registry, docType domain.DocumentType) domain.TemplateHandle {
	t.Helper()
	handle, err := registry.Resolve(context.Background(), docType)
	require.NoError(t, err)
	return handle
}

func TestRender_StudentReport(t *testing.T) {
	registry := render.NewRegistry(t.TempDir())
	handle := resolveTemplate(t, registry, domain.DocStudentReport)

	rc := renderContextFixture()
	rc["student"] = map[string]any{
		"name":      "علي حسن",
		"school":    "مدرسة النور",
		"grade":     "الرابع",
		"section":   "أ",
		"gender":    "ذكر",
		"phone":     "07701234567",
		"status":    "مستمر",
		"total_fee": 1000,
	}

	markup := render.NewRenderer().Render(context.Background(), handle, rc)

	assert.Contains(t, markup, "علي حسن")
	assert.Contains(t, markup, "1,000.00 دينار")
	assert.Contains(t, markup, "تقرير الطالب")
	assert.Contains(t, markup, "210mm 297mm")
	assert.NotEqual(t, render.ErrorDocument(), markup)
}

func TestRender_MissingAmountRendersAsZero(t *testing.T) {
	registry := render.NewRegistry(t.TempDir())
	handle := resolveTemplate(t, registry, domain.DocStudentReport)

	rc := renderContextFixture()
	rc["student"] = map[string]any{"name": "علي حسن"}

	markup := render.NewRenderer().Render(context.Background(), handle, rc)

	assert.Contains(t, markup, "0.00 دينار")
	assert.NotEqual(t, render.ErrorDocument(), markup)
}

func TestRender_HiddenHeaderAndFooter(t *testing.T) {
	registry := render.NewRegistry(t.TempDir())
	handle := resolveTemplate(t, registry, domain.DocCustom)

	rc := renderContextFixture()
	rc["show_header"] = false
	rc["show_footer"] = false
	rc["content"] = "نص حر"

	markup := render.NewRenderer().Render(context.Background(), handle, rc)

	assert.Contains(t, markup, "نص حر")
	assert.NotContains(t, markup, `class="header"`)
	assert.NotContains(t, markup, `class="footer"`)
}

func TestRender_ReceiptUsesDateFilter(t *testing.T) {
	registry := render.NewRegistry(t.TempDir())
	handle := resolveTemplate(t, registry, domain.DocPaymentReceipt)

	rc := renderContextFixture()
	rc["receipt"] = map[string]any{
		"id":             "AB12CD34",
		"student_name":   "علي حسن",
		"school_name":    "مدرسة النور",
		"payment_date":   "2024-03-05",
		"payment_method": "نقدا",
		"description":    "قسط أول",
		"amount":         "500",
	}

	markup := render.NewRenderer().Render(context.Background(), handle, rc)

	assert.Contains(t, markup, "AB12CD34")
	assert.Contains(t, markup, "5 مارس 2024")
	assert.Contains(t, markup, "500.00 دينار")
}

func TestRender_FinancialReportComputesNetFromTotals(t *testing.T) {
	registry := render.NewRegistry(t.TempDir())
	handle := resolveTemplate(t, registry, domain.DocFinancialReport)

	rc := renderContextFixture()
	rc["financial_data"] = map[string]any{
		"total_income":   5000,
		"total_expenses": 1500,
	}

	markup := render.NewRenderer().Render(context.Background(), handle, rc)

	assert.Contains(t, markup, "5,000.00 دينار")
	assert.Contains(t, markup, "1,500.00 دينار")
	assert.Contains(t, markup, "3,500.00 دينار")
}

func TestRender_FinancialReportKeepsExplicitNet(t *testing.T) {
	registry := render.NewRegistry(t.TempDir())
	handle := resolveTemplate(t, registry, domain.DocFinancialReport)

	rc := renderContextFixture()
	rc["financial_data"] = map[string]any{
		"total_income":   5000,
		"total_expenses": 1500,
		"net_balance":    3000,
	}

	markup := render.NewRenderer().Render(context.Background(), handle, rc)

	assert.Contains(t, markup, "3,000.00 دينار")
	assert.NotContains(t, markup, "3,500.00 دينار")
}

func TestRender_MissingTemplateFileYieldsErrorDocument(t *testing.T) {
	handle := domain.TemplateHandle{
		Type: domain.DocStudentReport,
		Name: "student_report",
		Path: filepath.Join(t.TempDir(), "student_report.html"),
	}

	markup := render.NewRenderer().Render(context.Background(), handle, renderContextFixture())

	assert.Equal(t, render.ErrorDocument(), markup)
}

func TestRender_MalformedTemplateYieldsErrorDocument(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.html")
	require.NoError(t, os.WriteFile(path, []byte("{{.unclosed"), 0o644))

	handle := domain.TemplateHandle{Type: domain.DocCustom, Name: "custom", Path: path}

	markup := render.NewRenderer().Render(context.Background(), handle, renderContextFixture())

	assert.Equal(t, render.ErrorDocument(), markup)
}

func TestRender_PicksUpOnDiskCustomization(t *testing.T) {
	dir := t.TempDir()
	registry := render.NewRegistry(dir)
	handle := resolveTemplate(t, registry, domain.DocCustom)

	require.NoError(t, os.WriteFile(handle.Path, []byte("<html><body>{{.content}}</body></html>"), 0o644))

	rc := renderContextFixture()
	rc["content"] = "نسخة معدلة"

	markup := render.NewRenderer().Render(context.Background(), handle, rc)

	assert.Contains(t, markup, "نسخة معدلة")
	assert.NotContains(t, markup, "header")
}
