package handlers

import (
	"errors"
	"log"
	"net/http"

	request "signestimate/internal/adapter/http/dto/request"
	response "signestimate/internal/adapter/http/dto/response"
	"signestimate/internal/infrastructure/netsuite"
	"signestimate/internal/usecase"
	"signestimate/internal/usecase/interfaces"
	"signestimate/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidConvertPayload = pkg.NewDomainErrorSimple("INVALID_CONVERT_INPUT", "Invalid convert payload", http.StatusBadRequest)

// NetSuiteHandler handles the NetSuite-facing endpoints: the live read path,
// the sync action, the conversion action and the local listing.

type NetSuiteHandler struct {
	requests   usecase.IEstimateRequestUseCase
	conversion usecase.IConversionUseCase
	gateway    interfaces.INetSuiteGateway
}

func NewNetSuiteHandler(requests usecase.IEstimateRequestUseCase, conversion usecase.IConversionUseCase, gateway interfaces.INetSuiteGateway) *NetSuiteHandler {
	return &NetSuiteHandler{requests: requests, conversion: conversion, gateway: gateway}
}

// GetEstimateRequests serves the live pending batch. This is the read/display
// path: on any upstream failure it degrades to the deterministic mock batch
// instead of erroring, so the board stays usable while NetSuite is down.
func (h *NetSuiteHandler) GetEstimateRequests(c *gin.Context) {
	batch, err := h.requests.FetchPendingFromNetSuite(c.Request.Context())
	if err != nil {
		log.Printf("[netsuite][handler] live fetch failed, serving mock data err=%v", err)
		c.JSON(http.StatusOK, response.FromNetSuiteBatch(netsuite.MockEstimateRequests(), true))
		return
	}

	c.JSON(http.StatusOK, response.FromNetSuiteBatch(batch, h.gateway.MockMode()))
}

// SyncEstimateRequests runs the sync engine. Unlike the read path there is no
// mock fallback here: a failed or empty upstream fetch must not look like a
// successful sync.
func (h *NetSuiteHandler) SyncEstimateRequests(c *gin.Context) {
	res, err := h.requests.SyncFromNetSuite(c.Request.Context())
	if err != nil {
		appErr := mapSyncError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.SyncResponse{Success: true, SyncedCount: res.SyncedCount})
}

// ConvertRequest converts a synced estimate request into a job estimate.
// Converting an already-converted request is a 200 pointing at the existing
// job, not an error.
func (h *NetSuiteHandler) ConvertRequest(c *gin.Context) {
	var payload request.ConvertRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidConvertPayload.HTTPStatus, errInvalidConvertPayload.ToHTTPError())
		return
	}

	out, err := h.conversion.ConvertRequestToJob(c.Request.Context(), payload.ResolveRequestID())
	if err != nil {
		appErr := mapConversionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	resp := response.ConvertResponse{
		Success:        true,
		JobEstimateID:  out.JobID,
		AlreadyExisted: out.AlreadyConverted,
		Message:        out.Message,
	}
	if !out.AlreadyConverted {
		job := response.FromJob(out.Job)
		resp.Job = &job
	}
	c.JSON(http.StatusOK, resp)
}

// ListLocalEstimateRequests returns every synced row from storage, converted
// or not.
func (h *NetSuiteHandler) ListLocalEstimateRequests(c *gin.Context) {
	reqs, err := h.requests.ListLocal(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromEstimateRequests(reqs))
}

func mapSyncError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSyncUpstream):
		return pkg.NewDomainError("SYNC_UPSTREAM_FAILED", "NetSuite fetch failed, nothing was synced", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrSyncEmptyBatch):
		return pkg.NewDomainError("SYNC_EMPTY_BATCH", "NetSuite returned no records, nothing was synced", err, http.StatusBadGateway)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func mapConversionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidRequestID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Estimate request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
