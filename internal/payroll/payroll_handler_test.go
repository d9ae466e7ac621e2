package payroll_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go-payroll/internal/payroll"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/payslip"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type fakePayrollService struct {
	CreateFn            func(ctx context.Context, companyID string, req payroll.CreatePayrollEntryRequest) (payroll.PayrollEntryResponse, error)
	GetAllFn            func(ctx context.Context, companyID string, filter payroll.PayrollEntryFilter) ([]payroll.PayrollEntryResponse, int64, error)
	GetByIDFn           func(ctx context.Context, companyID, id string) (payroll.PayrollEntryResponse, error)
	GetPayslipFn        func(ctx context.Context, companyID, id string) (payslip.Document, error)
	UpdateFn            func(ctx context.Context, companyID, id string, req payroll.UpdatePayrollEntryRequest) (payroll.PayrollEntryResponse, error)
	GenerateForPeriodFn func(ctx context.Context, companyID string, req payroll.GenerateForPeriodRequest) ([]payroll.PayrollEntryResponse, error)
	ApproveFn           func(ctx context.Context, companyID, id string) (payroll.PayrollEntryResponse, error)
	MarkAsPaidFn        func(ctx context.Context, companyID, id string) (payroll.PayrollEntryResponse, error)
	GeneratePayslipFn   func(ctx context.Context, companyID, id string) (payroll.PayrollEntryResponse, error)
	DeleteFn            func(ctx context.Context, companyID, id string) error
}

func (f *fakePayrollService) Create(ctx context.Context, companyID string, req payroll.CreatePayrollEntryRequest) (payroll.PayrollEntryResponse, error) {
	return f.CreateFn(ctx, companyID, req)
}
func (f *fakePayrollService) GetAll(ctx context.Context, companyID string, filter payroll.PayrollEntryFilter) ([]payroll.PayrollEntryResponse, int64, error) {
	return f.GetAllFn(ctx, companyID, filter)
}
func (f *fakePayrollService) GetByID(ctx context.Context, companyID, id string) (payroll.PayrollEntryResponse, error) {
	return f.GetByIDFn(ctx, companyID, id)
}
func (f *fakePayrollService) GetPayslip(ctx context.Context, companyID, id string) (payslip.Document, error) {
	return f.GetPayslipFn(ctx, companyID, id)
}
func (f *fakePayrollService) Update(ctx context.Context, companyID, id string, req payroll.UpdatePayrollEntryRequest) (payroll.PayrollEntryResponse, error) {
	return f.UpdateFn(ctx, companyID, id, req)
}
func (f *fakePayrollService) GenerateForPeriod(ctx context.Context, companyID string, req payroll.GenerateForPeriodRequest) ([]payroll.PayrollEntryResponse, error) {
	return f.GenerateForPeriodFn(ctx, companyID, req)
}
func (f *fakePayrollService) Approve(ctx context.Context, companyID, id string) (payroll.PayrollEntryResponse, error) {
	return f.ApproveFn(ctx, companyID, id)
}
func (f *fakePayrollService) MarkAsPaid(ctx context.Context, companyID, id string) (payroll.PayrollEntryResponse, error) {
	return f.MarkAsPaidFn(ctx, companyID, id)
}
func (f *fakePayrollService) GeneratePayslip(ctx context.Context, companyID, id string) (payroll.PayrollEntryResponse, error) {
	return f.GeneratePayslipFn(ctx, companyID, id)
}
func (f *fakePayrollService) Delete(ctx context.Context, companyID, id string) error {
	return f.DeleteFn(ctx, companyID, id)
}

func withCompany(companyID string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("company_id", companyID)
		c.Next()
	}
}

func TestPayrollHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		companyID := uuid.New().String()

		svc := &fakePayrollService{
			CreateFn: func(ctx context.Context, cid string, req payroll.CreatePayrollEntryRequest) (payroll.PayrollEntryResponse, error) {
				assert.Equal(t, companyID, cid)
				assert.Len(t, req.RateEntries, 1)
				return payroll.PayrollEntryResponse{
					ID:       uuid.New().String(),
					GrossPay: "600.00",
					NetPay:   "441.00",
					Status:   payroll.StatusDraft,
				}, nil
			},
		}

		h := payroll.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employee_id":"` + uuid.New().String() + `","period_id":"` + uuid.New().String() + `","rate_entries":[{"date":"2025-03-18","amount":"600.00","status":"Present"}]}`
		req := httptest.NewRequest(http.MethodPost, "/api/v1/payrolls", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Set("company_id", companyID)

		h.Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Contains(t, w.Body.String(), "441.00")
	})

	t.Run("employee_id wajib uuid", func(t *testing.T) {
		svc := &fakePayrollService{}
		h := payroll.NewHandler(svc)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employee_id":"bukan-uuid","period_id":"` + uuid.New().String() + `"}`
		req := httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Set("company_id", uuid.New().String())

		h.Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "VALIDATION_ERROR")
	})

	t.Run("duplicate entry", func(t *testing.T) {
		svc := &fakePayrollService{
			CreateFn: func(ctx context.Context, cid string, req payroll.CreatePayrollEntryRequest) (payroll.PayrollEntryResponse, error) {
				return payroll.PayrollEntryResponse{}, payrollerrors.ErrDuplicateEntry
			},
		}

		h := payroll.NewHandler(svc)
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)

		body := `{"employee_id":"` + uuid.New().String() + `","period_id":"` + uuid.New().String() + `"}`
		req := httptest.NewRequest(http.MethodPost, "/payrolls", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		c.Request = req
		c.Set("company_id", uuid.New().String())

		h.Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), "CONFLICT")
	})
}

func TestPayrollHandler_GetAll(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()

	t.Run("filter dan halaman diteruskan", func(t *testing.T) {
		periodID := uuid.New().String()

		svc := &fakePayrollService{
			GetAllFn: func(ctx context.Context, cid string, filter payroll.PayrollEntryFilter) ([]payroll.PayrollEntryResponse, int64, error) {
				assert.Equal(t, periodID, filter.PeriodID)
				assert.Equal(t, payroll.StatusDraft, filter.Status)
				assert.Equal(t, 2, filter.Page)
				assert.Equal(t, 5, filter.PageSize)
				return []payroll.PayrollEntryResponse{
					{ID: uuid.New().String(), Status: payroll.StatusDraft},
				}, 23, nil
			},
		}

		r := gin.New()
		r.GET("/payrolls", withCompany(companyID), payroll.NewHandler(svc).GetAll)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/payrolls?period_id="+periodID+"&status=DRAFT&page=2&page_size=5", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "DRAFT")

		// meta.total datang dari count repo, bukan panjang halaman
		assert.Contains(t, w.Body.String(), `"total":23`)
	})

	t.Run("invalid status filter", func(t *testing.T) {
		svc := &fakePayrollService{
			GetAllFn: func(ctx context.Context, cid string, filter payroll.PayrollEntryFilter) ([]payroll.PayrollEntryResponse, int64, error) {
				return nil, 0, payrollerrors.ErrInvalidStatusFilter
			},
		}

		r := gin.New()
		r.GET("/payrolls", withCompany(companyID), payroll.NewHandler(svc).GetAll)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/payrolls?status=PENDING", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPayrollHandler_GetPayslip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()
	entryID := uuid.New().String()

	svc := &fakePayrollService{
		GetPayslipFn: func(ctx context.Context, cid, id string) (payslip.Document, error) {
			assert.Equal(t, entryID, id)
			return payslip.Document{
				Header:   payslip.Header{EmployeeName: "Maria Santos", PeriodLabel: "2025-03-18 to 2025-03-24"},
				GrossPay: "3000.00",
				NetPay:   "2745.00",
			}, nil
		},
	}

	r := gin.New()
	r.GET("/payrolls/:id/payslip", withCompany(companyID), payroll.NewHandler(svc).GetPayslip)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/payrolls/"+entryID+"/payslip", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Maria Santos")
	assert.Contains(t, w.Body.String(), "2745.00")
}

func TestPayrollHandler_DownloadPayslip(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()
	entryID := uuid.New().String()

	t.Run("redirect ke file", func(t *testing.T) {
		url := "/files/payslips/payslip_" + entryID + ".pdf"
		svc := &fakePayrollService{
			GetByIDFn: func(ctx context.Context, cid, id string) (payroll.PayrollEntryResponse, error) {
				return payroll.PayrollEntryResponse{ID: id, PayslipURL: &url}, nil
			},
		}

		r := gin.New()
		r.GET("/payrolls/:id/payslip/download", withCompany(companyID), payroll.NewHandler(svc).DownloadPayslip)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/payrolls/"+entryID+"/payslip/download", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
		assert.Equal(t, url, w.Header().Get("Location"))
	})

	t.Run("payslip belum dibuat", func(t *testing.T) {
		svc := &fakePayrollService{
			GetByIDFn: func(ctx context.Context, cid, id string) (payroll.PayrollEntryResponse, error) {
				return payroll.PayrollEntryResponse{ID: id}, nil
			},
		}

		r := gin.New()
		r.GET("/payrolls/:id/payslip/download", withCompany(companyID), payroll.NewHandler(svc).DownloadPayslip)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/payrolls/"+entryID+"/payslip/download", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestPayrollHandler_GenerateForPeriod(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakePayrollService{
			GenerateForPeriodFn: func(ctx context.Context, cid string, req payroll.GenerateForPeriodRequest) ([]payroll.PayrollEntryResponse, error) {
				return []payroll.PayrollEntryResponse{
					{ID: uuid.New().String(), Status: payroll.StatusDraft},
					{ID: uuid.New().String(), Status: payroll.StatusDraft},
				}, nil
			},
		}

		r := gin.New()
		r.POST("/payrolls/generate", withCompany(companyID), payroll.NewHandler(svc).GenerateForPeriod)

		w := httptest.NewRecorder()
		body := `{"period_id":"` + uuid.New().String() + `"}`
		req := httptest.NewRequest(http.MethodPost, "/payrolls/generate", strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusCreated, w.Code)
	})

	t.Run("period_id wajib", func(t *testing.T) {
		svc := &fakePayrollService{}

		r := gin.New()
		r.POST("/payrolls/generate", withCompany(companyID), payroll.NewHandler(svc).GenerateForPeriod)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/payrolls/generate", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestPayrollHandler_Approve(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()
	entryID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		svc := &fakePayrollService{
			ApproveFn: func(ctx context.Context, cid, id string) (payroll.PayrollEntryResponse, error) {
				assert.Equal(t, entryID, id)
				return payroll.PayrollEntryResponse{ID: id, Status: payroll.StatusApproved}, nil
			},
		}

		r := gin.New()
		r.POST("/payrolls/:id/approve", withCompany(companyID), payroll.NewHandler(svc).Approve)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/payrolls/"+entryID+"/approve", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), payroll.StatusApproved)
	})

	t.Run("bukan DRAFT", func(t *testing.T) {
		svc := &fakePayrollService{
			ApproveFn: func(ctx context.Context, cid, id string) (payroll.PayrollEntryResponse, error) {
				return payroll.PayrollEntryResponse{}, payrollerrors.ErrApproveOnlyDraft
			},
		}

		r := gin.New()
		r.POST("/payrolls/:id/approve", withCompany(companyID), payroll.NewHandler(svc).Approve)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/payrolls/"+entryID+"/approve", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_STATE")
	})
}

func TestPayrollHandler_Delete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	companyID := uuid.New().String()
	entryID := uuid.New().String()

	t.Run("not found", func(t *testing.T) {
		svc := &fakePayrollService{
			DeleteFn: func(ctx context.Context, cid, id string) error {
				return payrollerrors.ErrEntryNotFound
			},
		}

		r := gin.New()
		r.DELETE("/payrolls/:id", withCompany(companyID), payroll.NewHandler(svc).Delete)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/payrolls/"+entryID, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("success", func(t *testing.T) {
		svc := &fakePayrollService{
			DeleteFn: func(ctx context.Context, cid, id string) error { return nil },
		}

		r := gin.New()
		r.DELETE("/payrolls/:id", withCompany(companyID), payroll.NewHandler(svc).Delete)

		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/payrolls/"+entryID, nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "deleted")
	})
}
