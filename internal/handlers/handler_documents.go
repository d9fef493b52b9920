package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/schoolledger/school_ledger_app/internal/core/domain"
	portssvc "github.com/schoolledger/school_ledger_app/internal/core/ports/services"
	"github.com/schoolledger/school_ledger_app/internal/dto"
	"github.com/schoolledger/school_ledger_app/internal/middleware"
)

// documentHandler handles HTTP requests that produce printable documents.
type documentHandler struct {
	reportService   portssvc.ReportSvc
	templateService portssvc.TemplateRegistrySvc
}

// newDocumentHandler creates a new documentHandler.
func newDocumentHandler(rs portssvc.ReportSvc, ts portssvc.TemplateRegistrySvc) *documentHandler {
	return &documentHandler{
		reportService:   rs,
		templateService: ts,
	}
}

// RegisterDocumentRoutes registers document rendering routes.
func RegisterDocumentRoutes(rg *gin.RouterGroup, rs portssvc.ReportSvc, ts portssvc.TemplateRegistrySvc) {
	h := newDocumentHandler(rs, ts)

	documents := rg.Group("/documents")
	{
		documents.GET("/types", h.listDocumentTypes)
		documents.POST("/provision", h.provisionTemplates)
		documents.POST("/:docType", h.renderDocument)
	}
}

// renderDocument godoc
// @Summary Render a printable document
// @Description Assembles the payload with the common fields and renders the template for the document type. Failures come back as the fixed error document, so the response is always markup.
// @Tags documents
// @Accept json
// @Produce html
// @Param docType path string true "Document type (canonical name or accepted alias)"
// @Param request body dto.RenderDocumentRequest true "Payload and optional print settings"
// @Success 200 {string} string "Rendered markup"
// @Failure 400 {object} map[string]string "Invalid request body"
// @Router /documents/{docType} [post]
func (h *documentHandler) renderDocument(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	docType := domain.DocumentType(c.Param("docType"))

	var req dto.RenderDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Invalid render request", slog.String("doc_type", string(docType)), slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	var settings *domain.PrintSettings
	if req.Print != nil {
		s := req.Print.ToDomainPrintSettings()
		settings = &s
	}

	markup := h.reportService.GenerateDocument(c.Request.Context(), docType, req.Payload, settings)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(markup))
}

// listDocumentTypes godoc
// @Summary List canonical document types
// @Tags documents
// @Produce json
// @Success 200 {array} dto.DocumentTypeResponse
// @Router /documents/types [get]
func (h *documentHandler) listDocumentTypes(c *gin.Context) {
	types := make([]dto.DocumentTypeResponse, 0, len(domain.KnownDocumentTypes))
	for _, t := range domain.KnownDocumentTypes {
		types = append(types, dto.DocumentTypeResponse{
			Type:  string(t),
			Title: t.DisplayTitle(),
		})
	}
	c.JSON(http.StatusOK, types)
}

// provisionTemplates godoc
// @Summary Provision the built-in default templates
// @Description Writes each missing default template. Idempotent: existing templates, including user-customized ones, are left untouched.
// @Tags documents
// @Produce json
// @Success 200 {object} map[string]bool
// @Failure 500 {object} map[string]string "One or more templates could not be written"
// @Router /documents/provision [post]
func (h *documentHandler) provisionTemplates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := h.templateService.ProvisionDefaults(c.Request.Context()); err != nil {
		logger.Error("Provisioning default templates failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to provision templates: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"provisioned": true})
}
