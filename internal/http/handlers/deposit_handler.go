package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/predictor/internal/domain"
	"github.com/saradorri/predictor/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// DepositHandler handles deposit ingestion from the betting platform
type DepositHandler struct {
	playerUseCase domain.PlayerUseCase
	logger        *logger.Logger
}

// NewDepositHandler creates a new deposit handler
func NewDepositHandler(playerUseCase domain.PlayerUseCase, logger *logger.Logger) *DepositHandler {
	return &DepositHandler{
		playerUseCase: playerUseCase,
		logger:        logger,
	}
}

// DepositRequest represents the deposit request body
type DepositRequest struct {
	UserID  FlexString `json:"user_id" swaggertype:"string" example:"123456"`
	Deposit FlexString `json:"deposit" swaggertype:"string" example:"150.00"`
}

// DepositResponse represents the deposit response body
type DepositResponse struct {
	Success       bool    `json:"success" example:"true"`
	UserID        string  `json:"user_id" example:"123456"`
	DepositAmount float64 `json:"deposit_amount" example:"150"`
	Chance        int     `json:"chance" example:"55"`
}

// Deposit handles a plain deposit notification
// @Summary Ingest deposit
// @Description Add a deposit to the player's total and recompute the chance
// @Tags deposits
// @Accept json
// @Produce json
// @Param request body DepositRequest true "Deposit details"
// @Success 200 {object} DepositResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Failure 503 {object} domain.ErrorResponse
// @Router /deposit [post]
func (h *DepositHandler) Deposit(c *gin.Context) {
	log := h.logger.WithContext(c.Request.Context())

	var req DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Warn("Deposit body binding failed", zap.Error(err))
		respondBadRequest(c, "Missing required fields: user_id, deposit")
		return
	}

	userID := req.UserID.String()
	rawAmount := req.Deposit.String()
	if userID == "" || rawAmount == "" {
		log.Warn("Deposit rejected, missing fields", zap.String("userID", userID), zap.String("deposit", rawAmount))
		respondBadRequest(c, "Missing required fields: user_id, deposit")
		return
	}

	h.apply(c, userID, rawAmount, domain.EventDeposit)
}

// Postback handles the platform's GET postback
// @Summary Ingest postback
// @Description Apply a reg, dep or redep postback from the betting platform
// @Tags deposits
// @Produce json
// @Param player_id query string true "Player id on the platform" example:"123456"
// @Param amount query string true "Deposit amount" example:"50"
// @Param event query string false "Postback event" Enums(reg, dep, redep)
// @Success 200 {object} DepositResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Failure 503 {object} domain.ErrorResponse
// @Router /postback [get]
func (h *DepositHandler) Postback(c *gin.Context) {
	userID := FlexString(c.Query("player_id")).String()
	rawAmount := FlexString(c.Query("amount")).String()
	event := domain.ParsePostbackEvent(c.Query("event"))

	if userID == "" || rawAmount == "" {
		h.logger.WithContext(c.Request.Context()).Warn("Postback rejected, missing fields",
			zap.String("userID", userID),
			zap.String("amount", rawAmount))
		respondBadRequest(c, "Missing required fields: player_id, amount")
		return
	}

	h.apply(c, userID, rawAmount, event)
}

// PostbackPost is the POST alias of Postback, reading the same query parameters
// @Summary Ingest postback (POST)
// @Description Same as GET /postback
// @Tags deposits
// @Produce json
// @Param player_id query string true "Player id on the platform"
// @Param amount query string true "Deposit amount"
// @Param event query string false "Postback event" Enums(reg, dep, redep)
// @Success 200 {object} DepositResponse
// @Failure 400 {object} domain.ErrorResponse
// @Router /postback [post]
func (h *DepositHandler) PostbackPost(c *gin.Context) {
	h.Postback(c)
}

func (h *DepositHandler) apply(c *gin.Context, userID, rawAmount string, event domain.EventKind) {
	log := h.logger.WithContext(c.Request.Context())

	amount, err := domain.ParseDepositAmount(rawAmount)
	if err != nil {
		log.Warn("Deposit rejected, invalid amount", zap.String("userID", userID), zap.String("amount", rawAmount))
		respondError(c, err)
		return
	}

	player, err := h.playerUseCase.ApplyDeposit(c.Request.Context(), userID, amount, event)
	if err != nil {
		log.Error("Deposit failed",
			zap.String("userID", userID),
			zap.Float64("amount", amount),
			zap.String("event", string(event)),
			zap.Int("status", statusOf(err)),
			zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, DepositResponse{
		Success:       true,
		UserID:        player.ExternalID,
		DepositAmount: player.DepositTotal,
		Chance:        player.Chance,
	})
}
