package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/schoolledger/school_ledger_app/internal/core/domain"
	"github.com/schoolledger/school_ledger_app/internal/dto"
	"github.com/schoolledger/school_ledger_app/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock ReportService ---
type MockReportService struct {
	mock.Mock
}

func (m *MockReportService) Assemble(ctx context.Context, docType domain.DocumentType, payload map[string]any) domain.RenderContext {
	args := m.Called(ctx, docType, payload)
	return args.Get(0).(domain.RenderContext)
}

func (m *MockReportService) GenerateDocument(ctx context.Context, docType domain.DocumentType, payload map[string]any, settings *domain.PrintSettings) string {
	args := m.Called(ctx, docType, payload, settings)
	return args.String(0)
}

// --- Mock TemplateRegistryService ---
type MockTemplateRegistryService struct {
	mock.Mock
}

func (m *MockTemplateRegistryService) Resolve(ctx context.Context, docType domain.DocumentType) (domain.TemplateHandle, error) {
	args := m.Called(ctx, docType)
	return args.Get(0).(domain.TemplateHandle), args.Error(1)
}

func (m *MockTemplateRegistryService) ProvisionDefaults(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- Test Suite ---
type DocumentHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockReport   *MockReportService
	mockRegistry *MockTemplateRegistryService
}

func (suite *DocumentHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()

	suite.mockReport = new(MockReportService)
	suite.mockRegistry = new(MockTemplateRegistryService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterDocumentRoutes(v1, suite.mockReport, suite.mockRegistry)
}

// --- Test Cases ---

func (suite *DocumentHandlerTestSuite) TestRenderDocument_Success() {
	payload := map[string]any{"student": map[string]any{"name": "Ali"}}

	suite.mockReport.On("GenerateDocument",
		mock.Anything,
		domain.DocStudentReport,
		payload,
		(*domain.PrintSettings)(nil),
	).Return("<html>report</html>").Once()

	body, _ := json.Marshal(dto.RenderDocumentRequest{Payload: payload})
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/documents/student_report", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.Contains(w.Header().Get("Content-Type"), "text/html")
	suite.Equal("<html>report</html>", w.Body.String())
	suite.mockReport.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestRenderDocument_WithPrintSettings() {
	suite.mockReport.On("GenerateDocument",
		mock.Anything,
		domain.DocStudentList,
		map[string]any{},
		mock.MatchedBy(func(s *domain.PrintSettings) bool {
			return s != nil && s.Paper == domain.PaperA5 && s.Orientation == domain.Landscape
		}),
	).Return("<html>list</html>").Once()

	body := `{"payload":{},"print":{"paper":"A5","orientation":"LANDSCAPE"}}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/documents/student_list", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.mockReport.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestRenderDocument_InvalidBody() {
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/documents/student_report", bytes.NewBufferString(`{"print":{}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReport.AssertNotCalled(suite.T(), "GenerateDocument")
}

func (suite *DocumentHandlerTestSuite) TestRenderDocument_InvalidPaperSize() {
	body := `{"payload":{},"print":{"paper":"A3"}}`
	req, _ := http.NewRequest(http.MethodPost, "/api/v1/documents/student_report", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockReport.AssertNotCalled(suite.T(), "GenerateDocument")
}

func (suite *DocumentHandlerTestSuite) TestListDocumentTypes() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/documents/types", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)

	var types []dto.DocumentTypeResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &types))
	suite.Len(types, len(domain.KnownDocumentTypes))
	suite.Equal("student_report", types[0].Type)
	suite.Equal("تقرير الطالب", types[0].Title)
}

func (suite *DocumentHandlerTestSuite) TestProvisionTemplates_Success() {
	suite.mockRegistry.On("ProvisionDefaults", mock.Anything).Return(nil).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/documents/provision", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"provisioned":true}`, w.Body.String())
	suite.mockRegistry.AssertExpectations(suite.T())
}

func (suite *DocumentHandlerTestSuite) TestProvisionTemplates_Failure() {
	suite.mockRegistry.On("ProvisionDefaults", mock.Anything).Return(assert.AnError).Once()

	req, _ := http.NewRequest(http.MethodPost, "/api/v1/documents/provision", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusInternalServerError, w.Code)
	suite.mockRegistry.AssertExpectations(suite.T())
}

// --- Run Suite ---
func TestDocumentHandler(t *testing.T) {
	suite.Run(t, new(DocumentHandlerTestSuite))
}
