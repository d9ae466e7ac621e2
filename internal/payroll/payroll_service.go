package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go-payroll/internal/events"
	"go-payroll/internal/messaging/kafka"
	"go-payroll/internal/paycalc"
	payrollerrors "go-payroll/internal/payroll/errors"
	"go-payroll/internal/payslip"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	StatusDraft    = "DRAFT"
	StatusApproved = "APPROVED"
	StatusPaid     = "PAID"
)

const (
	defaultPayslipStorageDir = "./storage/payslips"
	defaultPayslipBaseURL    = "/files/payslips"
)

// clampNegativeNet membaca kebijakan net minus dari env. Default: net
// minus dibiarkan (kasbon besar memang bisa bikin net negatif).
func clampNegativeNet() bool {
	return strings.EqualFold(os.Getenv("PAYROLL_NEGATIVE_NET"), "clamp")
}

//go:generate mockgen -source=payroll_service.go -destination=mock/payroll_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreatePayrollEntryRequest) (PayrollEntryResponse, error)
	GetAll(ctx context.Context, companyID string, filter PayrollEntryFilter) ([]PayrollEntryResponse, int64, error)
	GetByID(ctx context.Context, companyID, id string) (PayrollEntryResponse, error)
	GetPayslip(ctx context.Context, companyID, id string) (payslip.Document, error)
	Update(ctx context.Context, companyID, id string, req UpdatePayrollEntryRequest) (PayrollEntryResponse, error)
	GenerateForPeriod(ctx context.Context, companyID string, req GenerateForPeriodRequest) ([]PayrollEntryResponse, error)
	Approve(ctx context.Context, companyID, id string) (PayrollEntryResponse, error)
	MarkAsPaid(ctx context.Context, companyID, id string) (PayrollEntryResponse, error)
	GeneratePayslip(ctx context.Context, companyID, id string) (PayrollEntryResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	outbox kafka.OutboxRepository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, nil, logger...)
}

func NewServiceWithOutbox(db *sql.DB, repo Repository, outboxRepo kafka.OutboxRepository, logger ...*zap.Logger) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{db: db, repo: repo, outbox: outboxRepo, logger: l}
}

// buildRateEntries mengubah input harian jadi baris child + RateLine
// untuk kalkulasi. Tanggal wajib di dalam rentang period.
func buildRateEntries(companyID string, period *PeriodRef, inputs []RateEntryInput) ([]RateEntry, []paycalc.RateLine, error) {
	rows := make([]RateEntry, 0, len(inputs))
	lines := make([]paycalc.RateLine, 0, len(inputs))

	for _, in := range inputs {
		date, err := time.Parse("2006-01-02", in.Date)
		if err != nil {
			return nil, nil, payrollerrors.ErrInvalidDateFormat
		}
		if date.Before(period.StartDate) || date.After(period.EndDate) {
			return nil, nil, payrollerrors.ErrRateEntryOutsidePeriod
		}

		status := strings.TrimSpace(in.Status)
		if status != "" {
			status = paycalc.NormalizeStatus(status)
		}

		amount := paycalc.ParseAmount(in.Amount)
		adjustment := paycalc.ParseAmount(in.Adjustment)

		rows = append(rows, RateEntry{
			ID:         uuid.New(),
			CompanyID:  uuid.MustParse(companyID),
			WorkDate:   date,
			Status:     status,
			Amount:     amount,
			Adjustment: adjustment,
		})
		lines = append(lines, paycalc.RateLine{
			Date:       date,
			Amount:     amount,
			Adjustment: adjustment,
			Status:     status,
		})
	}

	return rows, lines, nil
}

// recompute menurunkan semua field turunan dari baris harian. Dipanggil
// di setiap jalur tulis supaya gross/total/net tidak pernah basi.
func recompute(e *PayrollEntry, lines []paycalc.RateLine) {
	e.GrossPay = paycalc.AggregateGross(lines)

	var mandated paycalc.Deductions
	if e.AutoCalcDeductions {
		mandated = paycalc.MandatedDeductions(e.GrossPay)
		e.SSSDeduction = mandated.SSS
		e.PhilHealthDeduction = mandated.PhilHealth
		e.PagIBIGDeduction = mandated.PagIBIG
	} else {
		mandated = paycalc.Deductions{
			SSS:        e.SSSDeduction,
			PhilHealth: e.PhilHealthDeduction,
			PagIBIG:    e.PagIBIGDeduction,
		}
	}

	manual := paycalc.ManualDeductions{
		Tax:         e.TaxDeduction,
		CashAdvance: e.CashAdvance,
		Loan:        e.LoanDeduction,
		VAT:         e.VATDeduction,
		Other:       e.OtherDeductions,
	}

	e.TotalDeductions = paycalc.TotalDeductions(mandated, manual)
	e.NetPay = paycalc.Net(e.GrossPay, e.TotalDeductions)
	if e.NetPay < 0 && clampNegativeNet() {
		e.NetPay = 0
	}
}

// applyYTD mengisi YTD dan gaji ke-13. priorGross = total gross entry
// lain di tahun berjalan, tidak termasuk entry ini.
func applyYTD(e *PayrollEntry, priorGross int64) {
	e.YTDEarnings = priorGross + e.GrossPay
	e.ThirteenthMonthPay = decimal.NewFromInt(e.YTDEarnings).
		DivRound(decimal.NewFromInt(12), 0).
		IntPart()
}

func (s *service) Create(ctx context.Context, companyID string, req CreatePayrollEntryRequest) (PayrollEntryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create payroll entry requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("period_id", req.PeriodID),
	)

	ok, err := s.repo.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		s.logger.Error("create entry employee check failed", zap.Error(err))
		return PayrollEntryResponse{}, err
	}
	if !ok {
		return PayrollEntryResponse{}, payrollerrors.ErrEmployeeNotInCompany
	}

	period, err := s.repo.GetPeriod(ctx, companyID, req.PeriodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PayrollEntryResponse{}, payrollerrors.ErrPeriodNotFound
		}
		return PayrollEntryResponse{}, err
	}

	rows, lines, err := buildRateEntries(companyID, period, req.RateEntries)
	if err != nil {
		return PayrollEntryResponse{}, err
	}

	e := &PayrollEntry{
		ID:                  uuid.New(),
		CompanyID:           uuid.MustParse(companyID),
		EmployeeID:          uuid.MustParse(req.EmployeeID),
		PeriodID:            uuid.MustParse(req.PeriodID),
		AutoCalcDeductions:  req.AutoCalcDeductions == nil || *req.AutoCalcDeductions,
		SSSDeduction:        paycalc.ParseAmount(req.SSS),
		PhilHealthDeduction: paycalc.ParseAmount(req.PhilHealth),
		PagIBIGDeduction:    paycalc.ParseAmount(req.PagIBIG),
		TaxDeduction:        paycalc.ParseAmount(req.Tax),
		CashAdvance:         paycalc.ParseAmount(req.CashAdvance),
		LoanDeduction:       paycalc.ParseAmount(req.Loan),
		VATDeduction:        paycalc.ParseAmount(req.VAT),
		OtherDeductions:     paycalc.ParseAmount(req.Others),
		Status:              StatusDraft,
	}
	for i := range rows {
		rows[i].EntryID = e.ID
	}
	e.RateEntries = rows

	recompute(e, lines)

	priorGross, err := s.repo.SumGrossForYear(ctx, companyID, req.EmployeeID, period.StartDate.Year())
	if err != nil {
		s.logger.Error("create entry ytd sum failed", zap.Error(err))
		return PayrollEntryResponse{}, err
	}
	applyYTD(e, priorGross)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create entry begin tx failed", zap.Error(err))
		return PayrollEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, e); err != nil {
		s.logger.Error("create entry persist failed", zap.Error(err))
		return PayrollEntryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create entry commit failed", zap.Error(err))
		return PayrollEntryResponse{}, err
	}

	s.logger.Info("create payroll entry success",
		zap.String("request_id", rid),
		zap.String("entry_id", e.ID.String()),
		zap.Int64("net_pay", e.NetPay),
	)

	return mapToResponse(*e), nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter PayrollEntryFilter) ([]PayrollEntryResponse, int64, error) {
	if filter.Status != "" {
		switch filter.Status {
		case StatusDraft, StatusApproved, StatusPaid:
		default:
			return nil, 0, payrollerrors.ErrInvalidStatusFilter
		}
	}

	rows, total, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("get all payroll entries failed", zap.Error(err))
		return nil, 0, mapRepositoryError(err)
	}

	res := make([]PayrollEntryResponse, len(rows))
	for i, e := range rows {
		res[i] = mapToResponse(e)
	}
	return res, total, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PayrollEntryResponse, error) {
	e, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		s.logger.Error("get payroll entry by id failed", zap.Error(err))
		return PayrollEntryResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*e), nil
}

func (s *service) GetPayslip(ctx context.Context, companyID, id string) (payslip.Document, error) {
	e, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return payslip.Document{}, mapRepositoryError(err)
	}

	doc, err := s.assemble(ctx, companyID, e)
	if err != nil {
		return payslip.Document{}, err
	}
	return doc, nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdatePayrollEntryRequest) (PayrollEntryResponse, error) {
	s.logger.Debug("update payroll entry requested",
		zap.String("company_id", companyID),
		zap.String("entry_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update entry begin tx failed", zap.Error(err))
		return PayrollEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollEntryResponse{}, mapRepositoryError(err)
	}
	if e.Status != StatusDraft {
		return PayrollEntryResponse{}, payrollerrors.ErrUpdateOnlyDraft
	}

	period := e.Period
	if period == nil {
		period, err = qtx.GetPeriod(ctx, companyID, e.PeriodID.String())
		if err != nil {
			return PayrollEntryResponse{}, mapRepositoryError(err)
		}
	}

	rows, lines, err := buildRateEntries(companyID, period, req.RateEntries)
	if err != nil {
		return PayrollEntryResponse{}, err
	}
	for i := range rows {
		rows[i].EntryID = e.ID
	}

	oldGross := e.GrossPay

	if req.AutoCalcDeductions != nil {
		e.AutoCalcDeductions = *req.AutoCalcDeductions
	}
	if !e.AutoCalcDeductions {
		e.SSSDeduction = paycalc.ParseAmount(req.SSS)
		e.PhilHealthDeduction = paycalc.ParseAmount(req.PhilHealth)
		e.PagIBIGDeduction = paycalc.ParseAmount(req.PagIBIG)
	}
	e.TaxDeduction = paycalc.ParseAmount(req.Tax)
	e.CashAdvance = paycalc.ParseAmount(req.CashAdvance)
	e.LoanDeduction = paycalc.ParseAmount(req.Loan)
	e.VATDeduction = paycalc.ParseAmount(req.VAT)
	e.OtherDeductions = paycalc.ParseAmount(req.Others)

	recompute(e, lines)

	totalYear, err := qtx.SumGrossForYear(ctx, companyID, e.EmployeeID.String(), period.StartDate.Year())
	if err != nil {
		return PayrollEntryResponse{}, err
	}
	applyYTD(e, totalYear-oldGross)

	if err := qtx.ReplaceRateEntries(ctx, id, rows); err != nil {
		s.logger.Error("update entry replace rate entries failed", zap.Error(err))
		return PayrollEntryResponse{}, mapRepositoryError(err)
	}
	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("update entry persist failed", zap.Error(err))
		return PayrollEntryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update entry commit failed", zap.Error(err))
		return PayrollEntryResponse{}, err
	}

	e.RateEntries = rows

	s.logger.Info("update payroll entry success",
		zap.String("entry_id", id),
		zap.Int64("net_pay", e.NetPay),
	)

	return mapToResponse(*e), nil
}

// GenerateForPeriod membuat satu entry DRAFT per karyawan aktif dari
// catatan absensi period tersebut. Satu transaksi: gagal satu, batal
// semua. Period yang berhasil digenerate pindah ke status processing.
func (s *service) GenerateForPeriod(ctx context.Context, companyID string, req GenerateForPeriodRequest) ([]PayrollEntryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate payroll for period requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("period_id", req.PeriodID),
	)

	period, err := s.repo.GetPeriod(ctx, companyID, req.PeriodID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, payrollerrors.ErrPeriodNotFound
		}
		return nil, err
	}
	if period.Status != "open" {
		return nil, payrollerrors.ErrPeriodNotOpen
	}

	employees, err := s.repo.ListActiveEmployees(ctx, companyID)
	if err != nil {
		s.logger.Error("generate payroll list employees failed", zap.Error(err))
		return nil, err
	}
	if len(employees) == 0 {
		return nil, payrollerrors.ErrNoEmployeesToGenerate
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("generate payroll begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)
	res := make([]PayrollEntryResponse, 0, len(employees))

	for _, emp := range employees {
		attendance, err := qtx.ListAttendance(ctx, companyID, emp.ID.String(), period.StartDate, period.EndDate)
		if err != nil {
			s.logger.Error("generate payroll attendance fetch failed",
				zap.String("employee_id", emp.ID.String()),
				zap.Error(err),
			)
			return nil, err
		}

		e := &PayrollEntry{
			ID:                 uuid.New(),
			CompanyID:          uuid.MustParse(companyID),
			EmployeeID:         emp.ID,
			PeriodID:           period.ID,
			AutoCalcDeductions: true,
			Status:             StatusDraft,
		}

		lines := make([]paycalc.RateLine, 0, len(attendance))
		for _, a := range attendance {
			rate := a.DailyRate
			if rate == 0 {
				rate = emp.DailyRate
			}
			status := paycalc.NormalizeStatus(a.Status)
			row := RateEntry{
				ID:         uuid.New(),
				EntryID:    e.ID,
				CompanyID:  e.CompanyID,
				WorkDate:   a.WorkDate,
				Status:     status,
				Amount:     paycalc.Contribution(status, rate),
				Adjustment: a.Adjustment,
			}
			e.RateEntries = append(e.RateEntries, row)
			lines = append(lines, paycalc.RateLine{
				Date:       row.WorkDate,
				Amount:     row.Amount,
				Adjustment: row.Adjustment,
				Status:     row.Status,
			})
		}

		recompute(e, lines)

		priorGross, err := qtx.SumGrossForYear(ctx, companyID, emp.ID.String(), period.StartDate.Year())
		if err != nil {
			return nil, err
		}
		applyYTD(e, priorGross)

		if err := qtx.Create(ctx, e); err != nil {
			s.logger.Error("generate payroll persist failed",
				zap.String("employee_id", emp.ID.String()),
				zap.Error(err),
			)
			return nil, mapRepositoryError(err)
		}

		res = append(res, mapToResponse(*e))
	}

	if err := qtx.UpdatePeriodStatus(ctx, companyID, req.PeriodID, "processing"); err != nil {
		s.logger.Error("generate payroll mark period failed", zap.Error(err))
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("generate payroll commit failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("generate payroll for period success",
		zap.String("request_id", rid),
		zap.String("period_id", req.PeriodID),
		zap.Int("entries", len(res)),
	)

	return res, nil
}

func (s *service) Approve(ctx context.Context, companyID, id string) (PayrollEntryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("approve payroll entry requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("entry_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("approve entry begin tx failed", zap.Error(err))
		return PayrollEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollEntryResponse{}, mapRepositoryError(err)
	}
	if e.Status != StatusDraft {
		return PayrollEntryResponse{}, payrollerrors.ErrApproveOnlyDraft
	}

	now := time.Now().UTC()
	e.Status = StatusApproved
	e.ApprovedAt = &now

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("approve entry persist failed", zap.Error(err))
		return PayrollEntryResponse{}, mapRepositoryError(err)
	}

	// Payslip dibuat async oleh consumer, event-nya ikut transaksi ini
	// lewat outbox.
	if s.outbox != nil {
		event := events.PayslipRequestedEvent{
			EventType:  "payslip_requested",
			RequestID:  rid,
			EntryID:    e.ID.String(),
			CompanyID:  companyID,
			OccurredAt: now,
		}
		payload, err := json.Marshal(event)
		if err != nil {
			s.logger.Error("marshal payslip event failed", zap.Error(err))
			return PayrollEntryResponse{}, err
		}

		if err := s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
			ID:            uuid.NewString(),
			RequestID:     rid,
			AggregateType: "payroll_entry",
			AggregateID:   e.ID.String(),
			EventType:     event.EventType,
			Topic:         events.PayslipRequestedTopic,
			Payload:       payload,
			Status:        kafka.OutboxStatusPending,
		}); err != nil {
			s.logger.Error("approve entry outbox persist failed", zap.Error(err))
			return PayrollEntryResponse{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("approve entry commit failed", zap.Error(err))
		return PayrollEntryResponse{}, err
	}

	s.logger.Info("approve payroll entry success",
		zap.String("request_id", rid),
		zap.String("entry_id", id),
	)

	return mapToResponse(*e), nil
}

func (s *service) MarkAsPaid(ctx context.Context, companyID, id string) (PayrollEntryResponse, error) {
	s.logger.Debug("mark payroll entry paid requested",
		zap.String("company_id", companyID),
		zap.String("entry_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("mark paid begin tx failed", zap.Error(err))
		return PayrollEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollEntryResponse{}, mapRepositoryError(err)
	}
	if e.Status != StatusApproved {
		return PayrollEntryResponse{}, payrollerrors.ErrMarkPaidOnlyApproved
	}

	now := time.Now().UTC()
	e.Status = StatusPaid
	e.PaidAt = &now

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("mark paid persist failed", zap.Error(err))
		return PayrollEntryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("mark paid commit failed", zap.Error(err))
		return PayrollEntryResponse{}, err
	}

	s.logger.Info("mark payroll entry paid success", zap.String("entry_id", id))

	return mapToResponse(*e), nil
}

// GeneratePayslip merakit dokumen, render PDF ke storage lokal dan
// simpan URL-nya di entry. Dipanggil consumer setelah approve, bisa
// juga dipanggil ulang untuk regenerate.
func (s *service) GeneratePayslip(ctx context.Context, companyID, id string) (PayrollEntryResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("generate payslip requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("entry_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("generate payslip begin tx failed", zap.Error(err))
		return PayrollEntryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayrollEntryResponse{}, mapRepositoryError(err)
	}

	doc, err := s.assemble(ctx, companyID, e)
	if err != nil {
		return PayrollEntryResponse{}, err
	}

	pdf, err := renderPayslipPDF(doc)
	if err != nil {
		s.logger.Error("render payslip pdf failed", zap.Error(err))
		return PayrollEntryResponse{}, err
	}

	storageDir := os.Getenv("PAYSLIP_STORAGE_DIR")
	if storageDir == "" {
		storageDir = defaultPayslipStorageDir
	}
	if err := os.MkdirAll(storageDir, 0o755); err != nil {
		s.logger.Error("create payslip storage dir failed", zap.Error(err))
		return PayrollEntryResponse{}, err
	}

	filename := fmt.Sprintf("payslip_%s.pdf", e.ID.String())
	if err := os.WriteFile(filepath.Join(storageDir, filename), pdf, 0o644); err != nil {
		s.logger.Error("write payslip pdf failed", zap.Error(err))
		return PayrollEntryResponse{}, err
	}

	baseURL := os.Getenv("PAYSLIP_PUBLIC_BASE_URL")
	if baseURL == "" {
		baseURL = defaultPayslipBaseURL
	}
	url := strings.TrimRight(baseURL, "/") + "/" + filename
	now := time.Now().UTC()
	e.PayslipURL = &url
	e.PayslipGeneratedAt = &now

	if err := qtx.Update(ctx, e); err != nil {
		s.logger.Error("generate payslip persist failed", zap.Error(err))
		return PayrollEntryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("generate payslip commit failed", zap.Error(err))
		return PayrollEntryResponse{}, err
	}

	s.logger.Info("generate payslip success",
		zap.String("request_id", rid),
		zap.String("entry_id", id),
		zap.String("url", url),
	)

	return mapToResponse(*e), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	s.logger.Debug("delete payroll entry requested",
		zap.String("company_id", companyID),
		zap.String("entry_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete entry begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	e, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}
	if e.Status != StatusDraft {
		return payrollerrors.ErrDeleteOnlyDraft
	}

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		s.logger.Error("delete entry failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete entry commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete payroll entry success", zap.String("entry_id", id))
	return nil
}

// assemble melengkapi data master lalu merakit dokumen slip gaji.
// Selisih gross hasil rakit ulang dicatat sebagai warning, tidak fatal.
func (s *service) assemble(ctx context.Context, companyID string, e *PayrollEntry) (payslip.Document, error) {
	emp := e.Employee
	if emp == nil {
		var err error
		emp, err = s.repo.GetEmployee(ctx, companyID, e.EmployeeID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return payslip.Document{}, payrollerrors.ErrEmployeeNotInCompany
			}
			return payslip.Document{}, err
		}
	}

	period := e.Period
	if period == nil {
		var err error
		period, err = s.repo.GetPeriod(ctx, companyID, e.PeriodID.String())
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return payslip.Document{}, payrollerrors.ErrPeriodNotFound
			}
			return payslip.Document{}, err
		}
	}

	attendance, err := s.repo.ListAttendance(ctx, companyID, e.EmployeeID.String(), period.StartDate, period.EndDate)
	if err != nil {
		s.logger.Error("assemble payslip attendance fetch failed", zap.Error(err))
		return payslip.Document{}, err
	}

	attnDays := make([]payslip.AttendanceDay, len(attendance))
	for i, a := range attendance {
		attnDays[i] = payslip.AttendanceDay{Date: a.WorkDate, Status: a.Status}
	}

	lines := make([]paycalc.RateLine, len(e.RateEntries))
	for i, r := range e.RateEntries {
		lines[i] = paycalc.RateLine{
			Date:       r.WorkDate,
			Amount:     r.Amount,
			Adjustment: r.Adjustment,
			Status:     r.Status,
		}
	}

	doc := payslip.Assemble(
		payslip.EmployeeInfo{
			FullName:       emp.FirstName + " " + emp.LastName,
			EmployeeNumber: emp.EmployeeNumber,
			Position:       emp.Position,
			Department:     emp.Department,
			DailyRate:      emp.DailyRate,
		},
		payslip.PeriodInfo{
			StartDate:   period.StartDate,
			EndDate:     period.EndDate,
			PaymentDate: period.PaymentDate,
		},
		payslip.EntryInfo{
			GrossPay:        e.GrossPay,
			SSS:             e.SSSDeduction,
			PagIBIG:         e.PagIBIGDeduction,
			PhilHealth:      e.PhilHealthDeduction,
			CashAdvance:     e.CashAdvance,
			Loan:            e.LoanDeduction,
			VAT:             e.VATDeduction,
			Other:           e.OtherDeductions,
			TotalDeductions: e.TotalDeductions,
			NetPay:          e.NetPay,
			RateLines:       lines,
		},
		attnDays,
	)

	if doc.GrossDrift != 0 {
		s.logger.Warn("payslip gross drift detected",
			zap.String("entry_id", e.ID.String()),
			zap.Int64("drift", doc.GrossDrift),
		)
	}

	return doc, nil
}

func formatTimePtr(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

func mapToResponse(e PayrollEntry) PayrollEntryResponse {
	rateEntries := make([]RateEntryResponse, len(e.RateEntries))
	for i, r := range e.RateEntries {
		rateEntries[i] = RateEntryResponse{
			Date:       r.WorkDate.Format("2006-01-02"),
			Amount:     paycalc.FormatAmount(r.Amount),
			Adjustment: paycalc.FormatAmount(r.Adjustment),
			Status:     r.Status,
		}
	}

	var employeeName string
	if e.Employee != nil {
		employeeName = e.Employee.FirstName + " " + e.Employee.LastName
	}

	return PayrollEntryResponse{
		ID:           e.ID.String(),
		CompanyID:    e.CompanyID.String(),
		EmployeeID:   e.EmployeeID.String(),
		EmployeeName: employeeName,
		PeriodID:     e.PeriodID.String(),

		GrossPay:           paycalc.FormatAmount(e.GrossPay),
		SSS:                paycalc.FormatAmount(e.SSSDeduction),
		PhilHealth:         paycalc.FormatAmount(e.PhilHealthDeduction),
		PagIBIG:            paycalc.FormatAmount(e.PagIBIGDeduction),
		Tax:                paycalc.FormatAmount(e.TaxDeduction),
		CashAdvance:        paycalc.FormatAmount(e.CashAdvance),
		Loan:               paycalc.FormatAmount(e.LoanDeduction),
		VAT:                paycalc.FormatAmount(e.VATDeduction),
		Others:             paycalc.FormatAmount(e.OtherDeductions),
		TotalDeductions:    paycalc.FormatAmount(e.TotalDeductions),
		NetPay:             paycalc.FormatAmount(e.NetPay),
		AutoCalcDeductions: e.AutoCalcDeductions,
		YTDEarnings:        paycalc.FormatAmount(e.YTDEarnings),
		ThirteenthMonthPay: paycalc.FormatAmount(e.ThirteenthMonthPay),

		Status:             e.Status,
		RateEntries:        rateEntries,
		ApprovedAt:         formatTimePtr(e.ApprovedAt),
		PaidAt:             formatTimePtr(e.PaidAt),
		PayslipURL:         e.PayslipURL,
		PayslipGeneratedAt: formatTimePtr(e.PayslipGeneratedAt),
	}
}
