package api

import (
	"errors"
	"net/http"
	"time"

	models "SwapDesk/internal/domain/models"
	"SwapDesk/internal/usecase"
	xhttp "SwapDesk/pkg/http"
	xlogger "SwapDesk/pkg/logger"

	"github.com/labstack/echo/v4"
)

// QuotesHandler exposes the swap pipeline to the chart frontend.
type QuotesHandler struct {
	logger *xlogger.Logger
	quoter *usecase.SwapQuoter
}

func NewQuotesHandler(logger *xlogger.Logger, quoter *usecase.SwapQuoter) *QuotesHandler {
	return &QuotesHandler{logger: logger, quoter: quoter}
}

func (h *QuotesHandler) RegisterRoutes(e *echo.Echo) {
	g := e.Group("/api")
	g.GET("/anchors", h.Anchors)
	g.GET("/quote", h.Quote)

	e.GET("/healthz", h.Health)
}

// Anchors returns the valid contract start dates together with the parameter
// bounds and defaults the frontend renders as widgets.
func (h *QuotesHandler) Anchors(c echo.Context) error {
	return xhttp.SuccessResponse(c, models.NewAnchorSet(h.quoter.Anchors()))
}

// Quote computes the cashflow tables for one contract parameter set. An empty
// contract window is a normal 200 response with empty arrays.
func (h *QuotesHandler) Quote(c echo.Context) error {
	req := &models.QuoteRequest{}
	if verr := xhttp.ReadAndValidateRequest(c, req); verr != nil {
		return xhttp.BadRequestResponse(c, verr)
	}

	start, err := time.Parse(models.DateOnlyLayout, req.Start)
	if err != nil {
		return xhttp.BadRequestResponse(c, []xhttp.ValidationError{{
			Code:    "ERR_DATE",
			Field:   "start",
			Message: "start must be formatted as " + models.DateOnlyLayout,
		}})
	}

	res, err := h.quoter.Quote(c.Request().Context(), start, req.Tenure, req.Notional, req.FixedRate, *req.Spread)
	if err != nil {
		if errors.Is(err, models.ErrNotAnAnchor) {
			return xhttp.AppErrorResponse(c, xhttp.BadRequestError(err.Error()).WithError(err))
		}
		h.logger.Error("quote usecase error", xlogger.Error(err))
		return xhttp.AppErrorResponse(c, xhttp.BadRequestErrorf("invalid contract parameters: %v", err).WithError(err))
	}
	return xhttp.SuccessResponse(c, res)
}

// Health reports liveness once the series is loaded.
func (h *QuotesHandler) Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
