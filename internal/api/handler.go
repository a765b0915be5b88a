package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/nishanthjadav/financial-backend/internal/domain/dto"
	"github.com/nishanthjadav/financial-backend/internal/domain/models"
	"github.com/nishanthjadav/financial-backend/internal/service"
	"github.com/nishanthjadav/financial-backend/internal/transform"
)

// Handler provides HTTP handlers for the income-statement endpoint.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Interact with the service layer to fetch and transform statements
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.StatementService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.StatementService): Service dependency used for fetching and transforming statements.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.StatementService) *Handler {
	return &Handler{svc: svc}
}

// FetchData handles GET /fetch_data requests.
//
// Query Parameters (all optional):
//   - startDate, endDate (int): inclusive bounds on the reporting date.
//   - minRevenue, maxRevenue (float): inclusive bounds on revenue.
//   - minNetIncome, maxNetIncome (float): inclusive bounds on net income.
//   - sortBy (string, default "date"): date | revenue | netIncome, descending.
//     Unrecognized values keep the provider's order.
//
// Responses:
//   - 200 OK: JSON array of statements, provider fields preserved.
//   - 400 Bad Request: A numeric parameter could not be parsed.
//   - 500 Internal Server Error: The upstream fetch failed.
//
// FetchData godoc
// @Summary      Fetch filtered income statements
// @Description  Retrieves annual income statements from the upstream provider, filtered and sorted by the given query parameters
// @Tags         statements
// @Produce      json
// @Param        startDate     query     int     false  "Minimum reporting date (inclusive)" example(2020)
// @Param        endDate       query     int     false  "Maximum reporting date (inclusive)" example(2024)
// @Param        minRevenue    query     number  false  "Minimum revenue (inclusive)"
// @Param        maxRevenue    query     number  false  "Maximum revenue (inclusive)"
// @Param        minNetIncome  query     number  false  "Minimum net income (inclusive)"
// @Param        maxNetIncome  query     number  false  "Maximum net income (inclusive)"
// @Param        sortBy        query     string  false  "Sort field: date, revenue or netIncome (descending)" default(date)
// @Success      200           {array}   map[string]interface{}  "Filtered statements"
// @Failure      400           {object}  dto.ErrorResponse       "Bad Request"
// @Failure      500           {object}  dto.ErrorResponse       "Upstream failure"
// @Router       /fetch_data [get]
func (h *Handler) FetchData(c *gin.Context) {
	// ─── Parse optional bound params ──────────────────────────
	criteria, err := parseCriteria(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid query parameter", err))
		return
	}

	// ─── Sort key (default: date) ─────────────────────────────
	sortBy := models.SortKey(c.DefaultQuery("sortBy", string(models.DefaultSortKey)))

	// ─── Query service (with request context) ─────────────────
	statements, err := h.svc.ListStatements(c.Request.Context(), criteria, sortBy)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch income statements", err))
		return
	}

	c.JSON(http.StatusOK, statements)
}

// parseCriteria reads the six optional bound parameters, rejecting values
// that are present but not numeric.
func parseCriteria(c *gin.Context) (transform.Criteria, error) {
	var criteria transform.Criteria
	var err error

	if criteria.StartDate, err = intQuery(c, "startDate"); err != nil {
		return criteria, err
	}
	if criteria.EndDate, err = intQuery(c, "endDate"); err != nil {
		return criteria, err
	}
	if criteria.MinRevenue, err = floatQuery(c, "minRevenue"); err != nil {
		return criteria, err
	}
	if criteria.MaxRevenue, err = floatQuery(c, "maxRevenue"); err != nil {
		return criteria, err
	}
	if criteria.MinNetIncome, err = floatQuery(c, "minNetIncome"); err != nil {
		return criteria, err
	}
	criteria.MaxNetIncome, err = floatQuery(c, "maxNetIncome")
	return criteria, err
}

func intQuery(c *gin.Context, name string) (*int, error) {
	s := c.Query(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, fmt.Errorf("%s must be an integer, got %q", name, s)
	}
	return &v, nil
}

func floatQuery(c *gin.Context, name string) (*float64, error) {
	s := c.Query(name)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number, got %q", name, s)
	}
	return &v, nil
}
