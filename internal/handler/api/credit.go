package api

import (
	"errors"
	"net/http"

	"nobat/internal/domain/credit"
	resdto "nobat/internal/handler/dto/response"
	"nobat/internal/handler/middleware"
	"nobat/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type CreditHandler struct {
	credits queries.CreditQueries
}

func NewCreditHandler(credits queries.CreditQueries) *CreditHandler {
	return &CreditHandler{credits: credits}
}

// @Summary Credit balance
// @Description Current plan and purchased credit of the business
// @Tags credit
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.BalanceResponse
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /credit/balance [get]
func (h *CreditHandler) GetBalance(c *gin.Context) {
	businessID, ok := middleware.GetBusinessID(c)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	view, err := h.credits.Balance(c.Request.Context(), businessID)
	if err != nil {
		switch {
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

	response, err := resdto.FromBalanceView(view)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}
