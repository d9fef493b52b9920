package services_test

import (
	"context"
	"testing"

	"github.com/schoolledger/school_ledger_app/internal/apperrors"
	"github.com/schoolledger/school_ledger_app/internal/core/domain"
	portssvc "github.com/schoolledger/school_ledger_app/internal/core/ports/services"
	"github.com/schoolledger/school_ledger_app/internal/core/services"
	"github.com/schoolledger/school_ledger_app/internal/render"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock TemplateRegistrySvc ---
type MockTemplateRegistry struct {
	mock.Mock
}

func (m *MockTemplateRegistry) Resolve(ctx context.Context, docType domain.DocumentType) (domain.TemplateHandle, error) {
	args := m.Called(ctx, docType)
	return args.Get(0).(domain.TemplateHandle), args.Error(1)
}

func (m *MockTemplateRegistry) ProvisionDefaults(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Mock RendererSvc ---
type MockRenderer struct {
	mock.Mock
}

func (m *MockRenderer) Render(ctx context.Context, handle domain.TemplateHandle, rc domain.RenderContext) string {
	args := m.Called(ctx, handle, rc)
	return args.String(0)
}

// --- Test Suite ---
type ReportServiceTestSuite struct {
	suite.Suite
	mockRegistry *MockTemplateRegistry
	mockRenderer *MockRenderer
	service      portssvc.ReportSvc
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.mockRegistry = new(MockTemplateRegistry)
	suite.mockRenderer = new(MockRenderer)
	suite.service = services.NewReportService(suite.mockRegistry, suite.mockRenderer, services.ProductStamp{
		Name:      "School Ledger",
		Version:   "v1.0",
		PrintedBy: "نظام الحسابات المدرسية",
	})
}

// --- Assemble ---

func (suite *ReportServiceTestSuite) TestAssemble_InjectsCommonFields() {
	ctx := context.Background()

	rc := suite.service.Assemble(ctx, domain.DocStudentReport, map[string]any{
		"student": map[string]any{"name": "Ali"},
	})

	suite.NotEmpty(rc["current_date"])
	suite.NotEmpty(rc["current_time"])
	suite.NotEmpty(rc["print_date"])
	suite.Equal("School Ledger v1.0", rc["app_version"])
	suite.Equal("نظام الحسابات المدرسية", rc["printed_by"])
	suite.Equal("تقرير الطالب", rc["page_title"])
	suite.Equal(map[string]any{"name": "Ali"}, rc["student"])
}

func (suite *ReportServiceTestSuite) TestAssemble_AliasedTypeGetsCanonicalTitle() {
	ctx := context.Background()

	for _, alias := range []domain.DocumentType{"students_list", "student_list_report"} {
		rc := suite.service.Assemble(ctx, alias, map[string]any{})
		suite.Equal("قائمة الطلاب", rc["page_title"], string(alias))
	}
}

func (suite *ReportServiceTestSuite) TestAssemble_PayloadWinsOverCommonFields() {
	ctx := context.Background()

	rc := suite.service.Assemble(ctx, domain.DocStudentReport, map[string]any{
		"page_title": "عنوان مخصص",
		"printed_by": "المدير",
	})

	suite.Equal("عنوان مخصص", rc["page_title"])
	suite.Equal("المدير", rc["printed_by"])
}

func (suite *ReportServiceTestSuite) TestAssemble_GeneratesReceiptNumber() {
	ctx := context.Background()

	rc := suite.service.Assemble(ctx, domain.DocPaymentReceipt, map[string]any{
		"receipt": map[string]any{"amount": 500},
	})

	receipt := rc["receipt"].(map[string]any)
	id, ok := receipt["id"].(string)
	suite.Require().True(ok)
	suite.Len(id, 8)
}

func (suite *ReportServiceTestSuite) TestAssemble_KeepsCallerReceiptNumber() {
	ctx := context.Background()

	rc := suite.service.Assemble(ctx, domain.DocPaymentReceipt, map[string]any{
		"receipt": map[string]any{"id": "RCPT-001"},
	})

	receipt := rc["receipt"].(map[string]any)
	suite.Equal("RCPT-001", receipt["id"])
}

// --- GenerateDocument ---

func (suite *ReportServiceTestSuite) TestGenerateDocument_Success() {
	ctx := context.Background()
	handle := domain.TemplateHandle{Type: domain.DocStudentReport, Name: "student_report", Path: "data/templates/student_report.html"}

	suite.mockRegistry.On("Resolve", ctx, domain.DocStudentReport).Return(handle, nil).Once()
	suite.mockRenderer.On("Render", ctx, handle, mock.MatchedBy(func(rc domain.RenderContext) bool {
		return rc["page_size"] == "210mm 297mm" &&
			rc["page_margins"] == "15mm 15mm 15mm 15mm" &&
			rc["print_dpi"] == 300 &&
			rc["show_header"] == true &&
			rc["show_footer"] == true &&
			rc["show_page_numbers"] == true
	})).Return("<html>ok</html>").Once()

	markup := suite.service.GenerateDocument(ctx, domain.DocStudentReport, map[string]any{}, nil)

	suite.Equal("<html>ok</html>", markup)
	suite.mockRegistry.AssertExpectations(suite.T())
	suite.mockRenderer.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestGenerateDocument_CustomPrintSettings() {
	ctx := context.Background()
	handle := domain.TemplateHandle{Type: domain.DocStudentList, Name: "student_list", Path: "data/templates/student_list.html"}
	settings := domain.PrintSettings{
		Paper:       domain.PaperA5,
		Orientation: domain.Landscape,
		Quality:     domain.QualityHigh,
		Margins:     domain.Margins{Top: 10, Right: 5, Bottom: 10, Left: 5},
	}

	suite.mockRegistry.On("Resolve", ctx, domain.DocStudentList).Return(handle, nil).Once()
	suite.mockRenderer.On("Render", ctx, handle, mock.MatchedBy(func(rc domain.RenderContext) bool {
		return rc["page_size"] == "210mm 148mm" &&
			rc["page_margins"] == "10mm 5mm 10mm 5mm" &&
			rc["print_dpi"] == 600
	})).Return("<html>list</html>").Once()

	markup := suite.service.GenerateDocument(ctx, domain.DocStudentList, map[string]any{}, &settings)

	suite.Equal("<html>list</html>", markup)
	suite.mockRegistry.AssertExpectations(suite.T())
	suite.mockRenderer.AssertExpectations(suite.T())
}

func (suite *ReportServiceTestSuite) TestGenerateDocument_ResolutionFailureYieldsErrorDocument() {
	ctx := context.Background()

	suite.mockRegistry.On("Resolve", ctx, domain.DocumentType("custom")).
		Return(domain.TemplateHandle{}, apperrors.ErrTemplateUnavailable).Once()

	markup := suite.service.GenerateDocument(ctx, domain.DocCustom, map[string]any{}, nil)

	suite.Equal(render.ErrorDocument(), markup)
	suite.mockRegistry.AssertExpectations(suite.T())
	suite.mockRenderer.AssertNotCalled(suite.T(), "Render")
}

// --- Run Suite ---
func TestReportService(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
