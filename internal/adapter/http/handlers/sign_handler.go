package handlers

import (
	"errors"
	"net/http"

	request "signestimate/internal/adapter/http/dto/request"
	response "signestimate/internal/adapter/http/dto/response"
	"signestimate/internal/domain/entities"
	"signestimate/internal/usecase"
	"signestimate/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidSignPayload = pkg.NewDomainErrorSimple("INVALID_SIGN_INPUT", "Invalid sign payload", http.StatusBadRequest)

// SignHandler handles sign cost sheets under a job.

type SignHandler struct {
	usecase usecase.ISignUseCase
}

func NewSignHandler(uc usecase.ISignUseCase) *SignHandler {
	return &SignHandler{usecase: uc}
}

// CreateSign accepts the full editable cost sheet and answers with the
// persisted sign plus its computed totals.
func (h *SignHandler) CreateSign(c *gin.Context) {
	var payload request.SignRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidSignPayload.HTTPStatus, errInvalidSignPayload.ToHTTPError())
		return
	}

	sign, totals, err := h.usecase.Create(c.Request.Context(), c.Param("id"), payload.ToSign())
	if err != nil {
		appErr := mapSignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromSignWithTotals(sign, totals))
}

func (h *SignHandler) ListSignsByJob(c *gin.Context) {
	signs, err := h.usecase.ListByJob(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSigns(signs))
}

func (h *SignHandler) GetSign(c *gin.Context) {
	sign, totals, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapSignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSignWithTotals(sign, totals))
}

func (h *SignHandler) DeleteSign(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), c.Param("id")); err != nil {
		appErr := mapSignError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GetSignDefaults returns the blank cost sheet an estimator starts from:
// the shop's standard task sets with their default rates.
func (h *SignHandler) GetSignDefaults(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromSign(entities.NewDefaultSign()))
}

func mapSignError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSignID), errors.Is(err, usecase.ErrInvalidSignInput), errors.Is(err, usecase.ErrInvalidJobID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSignNotFound):
		return pkg.NewDomainErrorSimple("SIGN_NOT_FOUND", "Sign not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
