package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"signestimate/internal/adapter/http/handlers/mocks"
	"signestimate/internal/domain/costing"
	"signestimate/internal/domain/entities"
	"signestimate/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSignHandler_CreateSign(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignUseCase(ctrl)
		h := NewSignHandler(uc)

		r := gin.New()
		r.POST("/api/jobs/:id/signs", h.CreateSign)

		req := httptest.NewRequest(http.MethodPost, "/api/jobs/job-1/signs", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignUseCase(ctrl)
		h := NewSignHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "job-x", gomock.Any()).Return(entities.Sign{}, costing.SignTotals{}, usecase.ErrJobNotFound)

		r := gin.New()
		r.POST("/api/jobs/:id/signs", h.CreateSign)

		req := httptest.NewRequest(http.MethodPost, "/api/jobs/job-x/signs", bytes.NewBufferString(`{"quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("create success returns sign with totals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISignUseCase(ctrl)
		h := NewSignHandler(uc)

		uc.EXPECT().Create(gomock.Any(), "job-1", gomock.Any()).DoAndReturn(
			func(_ context.Context, jobID string, sheet entities.Sign) (entities.Sign, costing.SignTotals, error) {
				sheet.ID = "sign-1"
				sheet.JobID = jobID
				sheet.SignNumber = 1
				return sheet, costing.ComputeSignTotals(sheet), nil
			},
		)

		r := gin.New()
		r.POST("/api/jobs/:id/signs", h.CreateSign)

		payload := `{"sign_type":"channel letters","quantity":2,"art_department":[{"task_name":"design","hours":2,"rate":127.33}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/jobs/job-1/signs", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body struct {
			ID     string `json:"id"`
			Totals *struct {
				ArtSubtotal              float64 `json:"art_subtotal"`
				TotalBillableForQuantity float64 `json:"total_billable_for_quantity"`
			} `json:"totals"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.ID != "sign-1" || body.Totals == nil {
			t.Fatalf("unexpected body: %+v", body)
		}
		if body.Totals.ArtSubtotal != 254.66 || body.Totals.TotalBillableForQuantity != 509.32 {
			t.Fatalf("unexpected totals: %+v", body.Totals)
		}
	})
}

func TestSignHandler_GetSignDefaults(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewSignHandler(nil)

	r := gin.New()
	r.GET("/api/signs/defaults", h.GetSignDefaults)

	req := httptest.NewRequest(http.MethodGet, "/api/signs/defaults", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body struct {
		Quantity      int `json:"quantity"`
		ArtDepartment []struct {
			TaskName string  `json:"task_name"`
			Rate     float64 `json:"rate"`
		} `json:"art_department"`
		CratingFees []struct {
			ItemName string  `json:"item_name"`
			UnitCost float64 `json:"unit_cost"`
		} `json:"crating_fees"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body.Quantity != 1 || len(body.ArtDepartment) != 8 {
		t.Fatalf("unexpected defaults: %+v", body)
	}
	if body.ArtDepartment[0].TaskName != "design" || body.ArtDepartment[0].Rate != 127.33 {
		t.Fatalf("unexpected design default: %+v", body.ArtDepartment[0])
	}
	if body.CratingFees[3].ItemName != "hotel" || body.CratingFees[3].UnitCost != 225.00 {
		t.Fatalf("unexpected hotel default: %+v", body.CratingFees[3])
	}
}

func TestSignHandler_DeleteSign(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockISignUseCase(ctrl)
	h := NewSignHandler(uc)

	uc.EXPECT().Delete(gomock.Any(), "sign-1").Return(nil)

	r := gin.New()
	r.DELETE("/api/signs/:id", h.DeleteSign)

	req := httptest.NewRequest(http.MethodDelete, "/api/signs/sign-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestStandardRateHandler_GetStandardRates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIStandardRateUseCase(ctrl)
	h := NewStandardRateHandler(uc)

	uc.EXPECT().RatesByDepartment(gomock.Any()).Return(map[string]map[string]float64{
		"art": {"design": 127.33},
	}, nil)

	r := gin.New()
	r.GET("/api/standard-rates", h.GetStandardRates)

	req := httptest.NewRequest(http.MethodGet, "/api/standard-rates", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]map[string]float64
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if body["art"]["design"] != 127.33 {
		t.Fatalf("unexpected body: %+v", body)
	}
}
