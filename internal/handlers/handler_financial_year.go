package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/Yeldokv/Finora/internal/apperrors"
	portssvc "github.com/Yeldokv/Finora/internal/core/ports/services"
	"github.com/Yeldokv/Finora/internal/dto"
	"github.com/Yeldokv/Finora/internal/middleware"
	"github.com/gin-gonic/gin"
)

// financialYearHandler handles HTTP requests related to financial years.
type financialYearHandler struct {
	fyService portssvc.FinancialYearSvcFacade
}

func newFinancialYearHandler(fys portssvc.FinancialYearSvcFacade) *financialYearHandler {
	return &financialYearHandler{fyService: fys}
}

// registerFinancialYearRoutes registers routes related to financial years.
func registerFinancialYearRoutes(rg *gin.RouterGroup, fyService portssvc.FinancialYearSvcFacade) {
	h := newFinancialYearHandler(fyService)

	years := rg.Group("/financial-years")
	{
		years.POST("", h.createFinancialYear)
		years.GET("", h.listFinancialYears)
		years.GET("/active", h.getActiveFinancialYear)
	}
}

// createFinancialYear godoc
// @Summary Create a financial year
// @Description Creates an accounting period; creating it as active deactivates all others
// @Tags financial-years
// @Accept  json
// @Produce  json
// @Param   year body dto.CreateFinancialYearRequest true "Financial year details"
// @Success 201 {object} dto.FinancialYearResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 409 {object} map[string]string "Financial year already exists"
// @Failure 500 {object} map[string]string "Failed to create financial year"
// @Router /financial-years [post]
func (h *financialYearHandler) createFinancialYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateFinancialYearRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateFinancialYear", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	fy, err := h.fyService.CreateFinancialYear(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create financial year", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create financial year"})
		}
		return
	}

	logger.Info("Financial year created", slog.String("financial_year_id", fy.FinancialYearID), slog.Bool("is_active", fy.IsActive))
	c.JSON(http.StatusCreated, dto.ToFinancialYearResponse(fy))
}

// listFinancialYears godoc
// @Summary List financial years
// @Description Retrieves all financial years, newest first
// @Tags financial-years
// @Produce  json
// @Success 200 {array} dto.FinancialYearResponse
// @Failure 500 {object} map[string]string "Failed to list financial years"
// @Router /financial-years [get]
func (h *financialYearHandler) listFinancialYears(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	years, err := h.fyService.ListFinancialYears(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list financial years", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list financial years"})
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialYearResponses(years))
}

// getActiveFinancialYear godoc
// @Summary Get the active financial year
// @Description Retrieves the single currently active financial year
// @Tags financial-years
// @Produce  json
// @Success 200 {object} dto.FinancialYearResponse
// @Failure 404 {object} map[string]string "No active financial year"
// @Failure 500 {object} map[string]string "Failed to retrieve active financial year"
// @Router /financial-years/active [get]
func (h *financialYearHandler) getActiveFinancialYear(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	fy, err := h.fyService.GetActiveFinancialYear(c.Request.Context())
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No active financial year"})
		} else {
			logger.Error("Failed to get active financial year", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve active financial year"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToFinancialYearResponse(fy))
}
