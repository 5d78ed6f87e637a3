package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/predictor/internal/domain"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// PlayerHandler handles the client-facing player endpoints
type PlayerHandler struct {
	playerUseCase domain.PlayerUseCase
	logger        *logger.Logger
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(playerUseCase domain.PlayerUseCase, logger *logger.Logger) *PlayerHandler {
	return &PlayerHandler{
		playerUseCase: playerUseCase,
		logger:        logger,
	}
}

// PlayerResponse represents a player's visible state
type PlayerResponse struct {
	UserID        string  `json:"user_id" example:"123456"`
	DepositAmount float64 `json:"deposit_amount" example:"150"`
	Chance        int     `json:"chance" example:"55"`
	Energy        int     `json:"energy" example:"3"`
	LastLoginDate *string `json:"last_login_date" example:"2024-05-10"`
}

// DrawResponse represents the result of a prediction draw
type DrawResponse struct {
	Success     bool    `json:"success" example:"true"`
	UserID      string  `json:"user_id" example:"123456"`
	Energy      int     `json:"energy" example:"2"`
	Chance      int     `json:"chance" example:"55"`
	Coefficient float64 `json:"coefficient" example:"2.35"`
	Range       string  `json:"range" example:"mid"`
}

func newPlayerResponse(p *domain.Player) PlayerResponse {
	resp := PlayerResponse{
		UserID:        p.ExternalID,
		DepositAmount: p.DepositTotal,
		Chance:        p.Chance,
		Energy:        p.Energy,
	}
	if p.LastLoginDate != nil && !p.LastLoginDate.IsZero() {
		s := p.LastLoginDate.String()
		resp.LastLoginDate = &s
	}
	return resp
}

// Login registers a client visit and applies the daily energy refill
// @Summary Player login
// @Description Create the player if unseen, then grant today's energy at most once
// @Tags players
// @Produce json
// @Param external_id path string true "Player id"
// @Success 200 {object} PlayerResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Failure 503 {object} domain.ErrorResponse
// @Router /players/{external_id}/login [post]
func (h *PlayerHandler) Login(c *gin.Context) {
	externalID := c.Param("external_id")

	player, err := h.playerUseCase.Login(c.Request.Context(), externalID)
	if err != nil {
		h.logger.WithContext(c.Request.Context()).Error("Login failed",
			zap.String("userID", externalID),
			zap.Int("status", statusOf(err)),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPlayerResponse(player))
}

// Draw spends one energy on a prediction
// @Summary Draw prediction
// @Description Debit one energy and return a display coefficient
// @Tags players
// @Produce json
// @Param external_id path string true "Player id"
// @Success 200 {object} DrawResponse
// @Failure 404 {object} domain.ErrorResponse
// @Failure 409 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /players/{external_id}/draw [post]
func (h *PlayerHandler) Draw(c *gin.Context) {
	externalID := c.Param("external_id")

	draw, err := h.playerUseCase.DrawPrediction(c.Request.Context(), externalID)
	if err != nil {
		h.logger.WithContext(c.Request.Context()).Warn("Draw failed",
			zap.String("userID", externalID),
			zap.Int("status", statusOf(err)),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DrawResponse{
		Success:     true,
		UserID:      draw.Player.ExternalID,
		Energy:      draw.Energy,
		Chance:      draw.Player.Chance,
		Coefficient: draw.Prediction.Coefficient,
		Range:       draw.Prediction.Range,
	})
}

// GetPlayer returns a player's state
// @Summary Get player
// @Tags players
// @Produce json
// @Param external_id path string true "Player id"
// @Success 200 {object} PlayerResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /players/{external_id} [get]
func (h *PlayerHandler) GetPlayer(c *gin.Context) {
	player, err := h.playerUseCase.GetPlayer(c.Request.Context(), c.Param("external_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPlayerResponse(player))
}
