package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/stockpulse/internal/analytics"
	"github.com/guttosm/stockpulse/internal/domain/dto"
	"github.com/guttosm/stockpulse/internal/domain/models"
	"github.com/guttosm/stockpulse/internal/provider"
	"github.com/guttosm/stockpulse/internal/service"
)

// Handler provides HTTP handlers for the market-data endpoints.
//
// Responsibilities:
//   - Bind and sanity-check incoming payloads and path parameters
//   - Delegate to the service layer
//   - Map domain error kinds onto HTTP status codes
//   - Return structured JSON responses
type Handler struct {
	svc service.MarketService
}

// NewHandler constructs a Handler backed by the given service.
func NewHandler(svc service.MarketService) *Handler {
	return &Handler{svc: svc}
}

// statusFor maps a domain error onto the transport status class:
// validation failures are client errors, unknown symbols are 404,
// analytics on an empty series is 422, and upstream failures are 502 so
// callers can tell transient infrastructure issues from bad requests.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidDateFormat),
		errors.Is(err, models.ErrInvalidDateRange),
		errors.Is(err, models.ErrInvalidInterval):
		return http.StatusBadRequest
	case errors.Is(err, provider.ErrSymbolNotFound):
		return http.StatusNotFound
	case errors.Is(err, analytics.ErrEmptySeries):
		return http.StatusUnprocessableEntity
	case errors.Is(err, provider.ErrUpstreamUnavailable):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, message string, err error) {
	c.JSON(statusFor(err), dto.NewErrorResponse(message, err))
}

// GetHistoricalData handles POST /api/v1/historical-data requests.
//
// GetHistoricalData godoc
// @Summary      Get historical market data
// @Description  Returns the OHLCV bar series for a symbol over a date range
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        request  body      dto.HistoricalRequest  true  "Query parameters"
// @Success      200      {object}  dto.HistoricalResponse "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Invalid input"
// @Failure      404      {object}  dto.ErrorResponse      "Symbol not found"
// @Failure      502      {object}  dto.ErrorResponse      "Upstream unavailable"
// @Router       /api/v1/historical-data [post]
func (h *Handler) GetHistoricalData(c *gin.Context) {
	req, ok := bindHistoricalRequest(c)
	if !ok {
		return
	}

	hist, err := h.svc.GetHistory(c.Request.Context(), req.Symbol, req.StartDate, req.EndDate, req.Interval)
	if err != nil {
		respondError(c, "failed to fetch historical data", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewHistoricalResponse(hist.Symbol, hist.Window.Interval, hist.Series))
}

// GetAnalyticalInsights handles POST /api/v1/analytical-insights requests.
//
// GetAnalyticalInsights godoc
// @Summary      Get analytical insights
// @Description  Returns the bar series plus derived statistics (average/max/min close, volatility, total return)
// @Tags         market
// @Accept       json
// @Produce      json
// @Param        request  body      dto.HistoricalRequest  true  "Query parameters"
// @Success      200      {object}  dto.InsightsResponse   "Success"
// @Failure      400      {object}  dto.ErrorResponse      "Invalid input"
// @Failure      404      {object}  dto.ErrorResponse      "Symbol not found"
// @Failure      422      {object}  dto.ErrorResponse      "No bars in range"
// @Failure      502      {object}  dto.ErrorResponse      "Upstream unavailable"
// @Router       /api/v1/analytical-insights [post]
func (h *Handler) GetAnalyticalInsights(c *gin.Context) {
	req, ok := bindHistoricalRequest(c)
	if !ok {
		return
	}

	ins, err := h.svc.GetInsights(c.Request.Context(), req.Symbol, req.StartDate, req.EndDate, req.Interval)
	if err != nil {
		respondError(c, "failed to compute analytical insights", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewInsightsResponse(ins.Symbol, ins.Window, ins.Series, ins.Stats))
}

// GetCompanyInfo handles GET /api/v1/company-info/:symbol requests.
//
// GetCompanyInfo godoc
// @Summary      Get company profile
// @Description  Returns descriptive company information for a symbol
// @Tags         market
// @Produce      json
// @Param        symbol  path      string  true  "Stock symbol"  example(AAPL)
// @Success      200     {object}  dto.CompanyInfoResponse "Success"
// @Failure      400     {object}  dto.ErrorResponse       "Invalid input"
// @Failure      404     {object}  dto.ErrorResponse       "Symbol not found"
// @Failure      502     {object}  dto.ErrorResponse       "Upstream unavailable"
// @Router       /api/v1/company-info/{symbol} [get]
func (h *Handler) GetCompanyInfo(c *gin.Context) {
	symbol, ok := bindSymbolParam(c)
	if !ok {
		return
	}

	profile, err := h.svc.GetProfile(c.Request.Context(), symbol)
	if err != nil {
		respondError(c, "failed to fetch company information", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewCompanyInfoResponse(profile))
}

// GetStockData handles GET /api/v1/stock-data/:symbol requests.
//
// GetStockData godoc
// @Summary      Get current market data
// @Description  Returns a snapshot quote for a symbol
// @Tags         market
// @Produce      json
// @Param        symbol  path      string  true  "Stock symbol"  example(AAPL)
// @Success      200     {object}  dto.StockDataResponse "Success"
// @Failure      400     {object}  dto.ErrorResponse     "Invalid input"
// @Failure      404     {object}  dto.ErrorResponse     "Symbol not found"
// @Failure      502     {object}  dto.ErrorResponse     "Upstream unavailable"
// @Router       /api/v1/stock-data/{symbol} [get]
func (h *Handler) GetStockData(c *gin.Context) {
	symbol, ok := bindSymbolParam(c)
	if !ok {
		return
	}

	quote, err := h.svc.GetQuote(c.Request.Context(), symbol)
	if err != nil {
		respondError(c, "failed to fetch market data", err)
		return
	}

	c.JSON(http.StatusOK, dto.NewStockDataResponse(quote))
}

// bindHistoricalRequest binds the shared request body and rejects blank
// symbols. Returns ok=false after writing the error response.
func bindHistoricalRequest(c *gin.Context) (dto.HistoricalRequest, bool) {
	var req dto.HistoricalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return req, false
	}
	if strings.TrimSpace(req.Symbol) == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("symbol cannot be empty", nil))
		return req, false
	}
	return req, true
}

func bindSymbolParam(c *gin.Context) (string, bool) {
	symbol := strings.TrimSpace(c.Param("symbol"))
	if symbol == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("symbol is required", nil))
		return "", false
	}
	return symbol, true
}
