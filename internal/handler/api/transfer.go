package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	reqdto "pawhaven/internal/handler/dto/request"
	resdto "pawhaven/internal/handler/dto/response"
	"pawhaven/internal/handler/middleware"
	"pawhaven/internal/usecase/commands"
	"pawhaven/internal/usecase/queries"
)

type TransferHandler struct {
	transferCommands commands.TransferCommands
	transferQueries  queries.TransferQueries
}

func NewTransferHandler(transferCommands commands.TransferCommands, transferQueries queries.TransferQueries) *TransferHandler {
	return &TransferHandler{
		transferCommands: transferCommands,
		transferQueries:  transferQueries,
	}
}

// @Summary Initiate ownership transfer
// @Description Transfer an animal to a recipient by email; completes immediately for registered recipients, otherwise issues a claim invitation
// @Tags transfers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Animal ID"
// @Param request body reqdto.InitiateTransferRequest true "Transfer request"
// @Success 200 {object} resdto.TransferInitiatedResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /animals/{id}/transfer [post]
func (h *TransferHandler) InitiateTransfer(c *gin.Context) {
	shelterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	animalID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid animal ID format",
		})
		return
	}

	var req reqdto.InitiateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	outcome, err := h.transferCommands.Initiate(c.Request.Context(), animalID, req.RecipientEmail, shelterID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidRecipientEmail):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid recipient email",
			})
		case errors.Is(err, commands.ErrAnimalNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Animal not found",
			})
		case errors.Is(err, commands.ErrTransferConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Animal is not available for transfer",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTransferOutcome(outcome))
}

// @Summary Claim a transferred animal
// @Description Redeem a claim token to take ownership of an animal
// @Tags transfers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.ClaimTransferRequest true "Claim request"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 410 {object} map[string]string
// @Router /transfers/claim [post]
func (h *TransferHandler) ClaimTransfer(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}
	userEmail, ok := middleware.GetUserEmail(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.ClaimTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	outcome, err := h.transferCommands.ResolveClaim(c.Request.Context(), req.ClaimToken, userID, userEmail)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTransferNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Transfer not found",
			})
		case errors.Is(err, commands.ErrTransferAlreadyCompleted):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Transfer already completed",
			})
		case errors.Is(err, commands.ErrTransferCancelled):
			c.JSON(http.StatusGone, gin.H{
				"error": "Transfer was cancelled",
			})
		case errors.Is(err, commands.ErrTransferExpired):
			c.JSON(http.StatusGone, gin.H{
				"error": "Transfer has expired",
			})
		case errors.Is(err, commands.ErrEmailMismatch):
			c.JSON(http.StatusForbidden, gin.H{
				"error": "This transfer is addressed to a different account",
			})
		case errors.Is(err, commands.ErrInvalidRecipientEmail):
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid account email",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromClaimOutcome(outcome))
}

// @Summary Cancel a pending transfer
// @Description Cancel a pending transfer initiated by the authenticated shelter
// @Tags transfers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transfer ID"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /transfers/{id}/cancel [post]
func (h *TransferHandler) CancelTransfer(c *gin.Context) {
	shelterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	transferID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid transfer ID format",
		})
		return
	}

	err = h.transferCommands.Cancel(c.Request.Context(), transferID, shelterID)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrTransferNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Transfer not found",
			})
		case errors.Is(err, commands.ErrTransferConflict):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Transfer is no longer pending",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Get transfer
// @Description Get a transfer of the authenticated shelter by ID
// @Tags transfers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transfer ID"
// @Success 200 {object} resdto.TransferResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /transfers/{id} [get]
func (h *TransferHandler) GetTransfer(c *gin.Context) {
	shelterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	transferID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid transfer ID format",
		})
		return
	}

	view, err := h.transferQueries.GetByID(c.Request.Context(), shelterID, transferID)
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrTransferViewNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Transfer not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromTransferView(view))
}

// @Summary List shelter transfers
// @Description List all transfers of the authenticated shelter
// @Tags transfers
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.TransferResponse
// @Failure 401 {object} map[string]string
// @Router /transfers [get]
func (h *TransferHandler) ListTransfers(c *gin.Context) {
	shelterID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	// Dashboard reads double as the expiry sweep; failures only delay the
	// persisted flip, display still shows expired.
	if _, err := h.transferCommands.ExpireOverdue(c.Request.Context(), shelterID); err != nil {
		slog.Warn("expiry sweep on transfer list failed", "shelter_id", shelterID, "error", err.Error())
	}

	views, err := h.transferQueries.ListByShelter(c.Request.Context(), shelterID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	response := make([]*resdto.TransferResponse, len(views))
	for i, view := range views {
		response[i] = resdto.FromTransferView(view)
	}

	c.JSON(http.StatusOK, response)
}
