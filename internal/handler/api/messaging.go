package api

import (
	"errors"
	"net/http"

	"nobat/internal/domain/credit"
	reqdto "nobat/internal/handler/dto/request"
	resdto "nobat/internal/handler/dto/response"
	"nobat/internal/handler/httperr"
	"nobat/internal/handler/middleware"
	"nobat/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type MessagingHandler struct {
	messaging commands.MessagingCommands
}

func NewMessagingHandler(messaging commands.MessagingCommands) *MessagingHandler {
	return &MessagingHandler{messaging: messaging}
}

// @Summary Send bulk messages
// @Description Send one SMS per recipient, metered against the credit balance
// @Tags messages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.BulkSendRequest true "Messages to send"
// @Success 200 {object} resdto.BulkSendResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 402 {object} httperr.Response
// @Router /messages/bulk [post]
func (h *MessagingHandler) SendBulk(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	var req reqdto.BulkSendRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	requests := make([]commands.SendRequest, len(req.Messages))
	for i, m := range req.Messages {
		requests[i] = commands.SendRequest{
			RecipientPhone: m.RecipientPhone,
			Content:        m.Content,
			Cost:           m.Cost,
		}
	}

	results, err := h.messaging.SendBulk(c.Request.Context(), businessID, requests)
	if err != nil {
		var insufficient *credit.InsufficientCreditError
		switch {
		case errors.As(err, &insufficient):
			httperr.AbortWithError(c, http.StatusPaymentRequired, err,
				"Not enough credit for the whole batch", gin.H{
					"required":  insufficient.Required,
					"available": insufficient.Available,
					"shortfall": insufficient.Shortfall(),
				})
		case errors.Is(err, credit.ErrAccountNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Credit account not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	response, err := resdto.FromSendResults(results)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}
