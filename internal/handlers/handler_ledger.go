package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/schoolledger/school_ledger_app/internal/core/domain"
	portsrepo "github.com/schoolledger/school_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/schoolledger/school_ledger_app/internal/core/ports/services"
	"github.com/schoolledger/school_ledger_app/internal/dto"
	"github.com/schoolledger/school_ledger_app/internal/middleware"
	"github.com/shopspring/decimal"
)

// ledgerHandler handles HTTP requests for derived financial state.
type ledgerHandler struct {
	ledgerService portssvc.LedgerSvc
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(ls portssvc.LedgerSvc) *ledgerHandler {
	return &ledgerHandler{ledgerService: ls}
}

// registerLedgerRoutes registers balance, summary, and record listing routes.
func registerLedgerRoutes(rg *gin.RouterGroup, ls portssvc.LedgerSvc) {
	h := newLedgerHandler(ls)

	rg.GET("/students/:studentID/balance", h.getStudentBalance)

	ledger := rg.Group("/ledger")
	{
		ledger.GET("/summary", h.getSummary)
		ledger.GET("/records", h.listRecords)
	}
}

// getStudentBalance godoc
// @Summary Compute a student's scope balance
// @Description Sums the student's installment payments against the given total obligation. Remaining is not clamped and goes negative on overpayment.
// @Tags ledger
// @Produce json
// @Param studentID path string true "Student ID"
// @Param totalOwed query string true "Total tuition obligation"
// @Success 200 {object} dto.ScopeBalanceResponse
// @Failure 400 {object} map[string]string "Invalid totalOwed"
// @Failure 500 {object} map[string]string "Failed to compute balance"
// @Router /students/{studentID}/balance [get]
func (h *ledgerHandler) getStudentBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	studentID := c.Param("studentID")

	totalOwed, err := decimal.NewFromString(c.Query("totalOwed"))
	if err != nil {
		logger.Warn("Invalid totalOwed parameter", slog.String("totalOwed", c.Query("totalOwed")))
		c.JSON(http.StatusBadRequest, gin.H{"error": "totalOwed must be a decimal number"})
		return
	}

	balance, err := h.ledgerService.StudentBalance(c.Request.Context(), studentID, totalOwed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToScopeBalanceResponse(*balance))
}

// getSummary godoc
// @Summary Aggregate records into a summary
// @Description Aggregates the records matching the filter into totals, per-kind breakdowns, and a collection rate. An empty match yields an all-zero summary.
// @Tags ledger
// @Produce json
// @Param kind query string false "Record kind"
// @Param status query string false "Record status"
// @Param ownerID query string false "Owning entity ID"
// @Param ownerKind query string false "Owner kind (STUDENT or STAFF)"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} dto.AggregateSummaryResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Failed to aggregate"
// @Router /ledger/summary [get]
func (h *ledgerHandler) getSummary(c *gin.Context) {
	filter, err := parseRecordFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	summary, err := h.ledgerService.Summary(c.Request.Context(), filter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ToAggregateSummaryResponse(*summary))
}

// listRecords godoc
// @Summary List transaction records
// @Tags ledger
// @Produce json
// @Param kind query string false "Record kind"
// @Param status query string false "Record status"
// @Param ownerID query string false "Owning entity ID"
// @Param ownerKind query string false "Owner kind (STUDENT or STAFF)"
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Continuation token from a previous page"
// @Success 200 {object} dto.ListRecordsResponse
// @Failure 400 {object} map[string]string "Invalid filter"
// @Failure 500 {object} map[string]string "Failed to list records"
// @Router /ledger/records [get]
func (h *ledgerHandler) listRecords(c *gin.Context) {
	filter, err := parseRecordFilter(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := 50
	if limitStr := c.Query("limit"); limitStr != "" {
		limit, err = strconv.Atoi(limitStr)
		if err != nil || limit <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
	}

	var nextToken *string
	if token := c.Query("nextToken"); token != "" {
		nextToken = &token
	}

	records, token, err := h.ledgerService.ListRecords(c.Request.Context(), filter, limit, nextToken)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.ListRecordsResponse{
		Records:   dto.ToRecordResponses(records),
		NextToken: token,
	})
}

// parseRecordFilter builds a RecordFilter from query parameters.
func parseRecordFilter(c *gin.Context) (portsrepo.RecordFilter, error) {
	var filter portsrepo.RecordFilter

	if kind := c.Query("kind"); kind != "" {
		k := domain.RecordKind(kind)
		filter.Kind = &k
	}
	if status := c.Query("status"); status != "" {
		s := domain.RecordStatus(status)
		filter.Status = &s
	}
	if ownerID := c.Query("ownerID"); ownerID != "" {
		filter.OwnerID = &ownerID
	}
	if ownerKind := c.Query("ownerKind"); ownerKind != "" {
		k := domain.OwnerKind(ownerKind)
		filter.OwnerKind = &k
	}

	for _, q := range []struct {
		name string
		dest **time.Time
	}{
		{"from", &filter.From},
		{"to", &filter.To},
	} {
		if value := c.Query(q.name); value != "" {
			t, err := time.Parse("2006-01-02", value)
			if err != nil {
				return filter, &dateFilterError{param: q.name, value: value}
			}
			*q.dest = &t
		}
	}

	return filter, nil
}

type dateFilterError struct {
	param string
	value string
}

func (e *dateFilterError) Error() string {
	return "invalid " + e.param + " date '" + e.value + "': use YYYY-MM-DD"
}
