package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/predictor/internal/domain"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// EnergyHandler handles the bulk energy grant
type EnergyHandler struct {
	cycleUseCase domain.EnergyCycleUseCase
	logger       *logger.Logger
}

// NewEnergyHandler creates a new energy handler
func NewEnergyHandler(cycleUseCase domain.EnergyCycleUseCase, logger *logger.Logger) *EnergyHandler {
	return &EnergyHandler{
		cycleUseCase: cycleUseCase,
		logger:       logger,
	}
}

// CycleRequest represents the bulk grant request body
type CycleRequest struct {
	CycleID string `json:"cycleId" example:"daily-2024-05-10"`
}

// CycleResponse represents the bulk grant response body
type CycleResponse struct {
	Success          bool   `json:"success" example:"true"`
	Message          string `json:"message" example:"Energy granted to all players"`
	UpdatedCount     *int   `json:"updatedCount,omitempty" example:"120"`
	FailedCount      int    `json:"failedCount,omitempty" example:"0"`
	AlreadyProcessed bool   `json:"alreadyProcessed,omitempty" example:"false"`
	CycleID          string `json:"cycleId" example:"daily-2024-05-10"`
}

// RunCycle grants one energy to every player once per cycle id
// @Summary Run bulk energy grant
// @Description Grant +1 energy to every player. Re-posting a processed cycleId is a no-op.
// @Tags energy
// @Accept json
// @Produce json
// @Param request body CycleRequest true "Cycle id"
// @Success 200 {object} CycleResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Failure 503 {object} domain.ErrorResponse
// @Router /energy/cycles [post]
func (h *EnergyHandler) RunCycle(c *gin.Context) {
	log := h.logger.WithContext(c.Request.Context())

	var req CycleRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.CycleID) == "" {
		log.Warn("Cycle request rejected, missing cycleId")
		respondBadRequest(c, "Missing required field: cycleId")
		return
	}

	result, err := h.cycleUseCase.RunBulkEnergyGrant(c.Request.Context(), req.CycleID)
	if err != nil {
		log.Error("Bulk energy grant failed",
			zap.String("cycleID", req.CycleID),
			zap.Int("status", statusOf(err)),
			zap.Error(err))
		respondError(c, err)
		return
	}

	if result.AlreadyProcessed {
		c.JSON(http.StatusOK, CycleResponse{
			Success:          true,
			Message:          "Cycle already processed",
			AlreadyProcessed: true,
			CycleID:          result.CycleID,
		})
		return
	}

	message := "Energy granted to all players"
	if result.FailedCount > 0 {
		message = "Energy granted with failures"
		log.Warn("Bulk energy grant finished with failures",
			zap.String("cycleID", result.CycleID),
			zap.Int("updated", result.UpdatedCount),
			zap.Int("failed", result.FailedCount))
	}

	updated := result.UpdatedCount
	c.JSON(http.StatusOK, CycleResponse{
		Success:      result.Succeeded,
		Message:      message,
		UpdatedCount: &updated,
		FailedCount:  result.FailedCount,
		CycleID:      result.CycleID,
	})
}
