package handlers

import (
	"net/http"

	"signestimate/internal/usecase"
	"signestimate/pkg"

	"github.com/gin-gonic/gin"
)

// StandardRateHandler serves the read-only standard-rate reference table.

type StandardRateHandler struct {
	usecase usecase.IStandardRateUseCase
}

func NewStandardRateHandler(uc usecase.IStandardRateUseCase) *StandardRateHandler {
	return &StandardRateHandler{usecase: uc}
}

// GetStandardRates returns the table grouped department -> task -> rate.
func (h *StandardRateHandler) GetStandardRates(c *gin.Context) {
	grouped, err := h.usecase.RatesByDepartment(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, grouped)
}
