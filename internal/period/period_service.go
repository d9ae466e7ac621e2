package period

import (
	"context"
	"database/sql"
	"errors"
	"time"

	perioderrors "go-payroll/internal/period/errors"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	// default satu minggu per period, gajian 3 hari setelah tutup
	defaultPeriodDays    = 7
	defaultPaymentOffset = 3
)

//go:generate mockgen -source=period_service.go -destination=mock/period_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreatePeriodRequest) (PeriodResponse, error)
	GenerateNext(ctx context.Context, companyID string) (PeriodResponse, error)
	GetAll(ctx context.Context, companyID string) ([]PeriodResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PeriodResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdatePeriodRequest) (PeriodResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("period.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("period.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

func parseDates(startStr, endStr, paymentStr string) (start, end, payment time.Time, err error) {
	start, err = time.Parse("2006-01-02", startStr)
	if err != nil {
		return start, end, payment, perioderrors.ErrInvalidDateFormat
	}
	end, err = time.Parse("2006-01-02", endStr)
	if err != nil {
		return start, end, payment, perioderrors.ErrInvalidDateFormat
	}
	payment, err = time.Parse("2006-01-02", paymentStr)
	if err != nil {
		return start, end, payment, perioderrors.ErrInvalidDateFormat
	}
	if start.After(end) || end.After(payment) {
		return start, end, payment, perioderrors.ErrInvalidPeriodDates
	}
	return start, end, payment, nil
}

func (s *service) Create(ctx context.Context, companyID string, req CreatePeriodRequest) (PeriodResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create period requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	start, end, payment, err := parseDates(req.StartDate, req.EndDate, req.PaymentDate)
	if err != nil {
		return PeriodResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create period begin tx failed", zap.Error(err))
		return PeriodResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	overlap, err := qtx.HasOverlapping(ctx, companyID, start, end, "")
	if err != nil {
		s.logger.Error("create period overlap check failed", zap.Error(err))
		return PeriodResponse{}, err
	}
	if overlap {
		return PeriodResponse{}, perioderrors.ErrOverlappingPeriod
	}

	p := &PayrollPeriod{
		ID:          uuid.New(),
		CompanyID:   uuid.MustParse(companyID),
		StartDate:   start,
		EndDate:     end,
		PaymentDate: payment,
		Status:      StatusOpen,
	}

	if err := qtx.Create(ctx, p); err != nil {
		s.logger.Error("create period persist failed", zap.Error(err))
		return PeriodResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create period commit failed", zap.Error(err))
		return PeriodResponse{}, err
	}

	s.logger.Info("create period success",
		zap.String("request_id", rid),
		zap.String("period_id", p.ID.String()),
	)

	return mapToResponse(*p), nil
}

// GenerateNext membuat period baru menyambung period terakhir.
// Kalau company belum punya period sama sekali, period pertama
// dimulai dari hari ini.
func (s *service) GenerateNext(ctx context.Context, companyID string) (PeriodResponse, error) {
	s.logger.Debug("generate next period requested", zap.String("company_id", companyID))

	var start time.Time
	latest, err := s.repo.FindLatestByCompany(ctx, companyID)
	switch {
	case err == nil:
		start = latest.EndDate.AddDate(0, 0, 1)
	case errors.Is(err, gorm.ErrRecordNotFound):
		now := time.Now().UTC()
		start = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	default:
		s.logger.Error("generate next period lookup failed", zap.Error(err))
		return PeriodResponse{}, err
	}

	end := start.AddDate(0, 0, defaultPeriodDays-1)
	payment := end.AddDate(0, 0, defaultPaymentOffset)

	return s.Create(ctx, companyID, CreatePeriodRequest{
		StartDate:   start.Format("2006-01-02"),
		EndDate:     end.Format("2006-01-02"),
		PaymentDate: payment.Format("2006-01-02"),
	})
}

func (s *service) GetAll(ctx context.Context, companyID string) ([]PeriodResponse, error) {
	rows, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		s.logger.Error("get all periods failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]PeriodResponse, len(rows))
	for i, p := range rows {
		res[i] = mapToResponse(p)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (PeriodResponse, error) {
	p, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		s.logger.Error("get period by id failed", zap.Error(err))
		return PeriodResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*p), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdatePeriodRequest) (PeriodResponse, error) {
	s.logger.Debug("update period requested",
		zap.String("company_id", companyID),
		zap.String("period_id", id),
	)

	start, end, payment, err := parseDates(req.StartDate, req.EndDate, req.PaymentDate)
	if err != nil {
		return PeriodResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update period begin tx failed", zap.Error(err))
		return PeriodResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	p, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		s.logger.Error("update period fetch existing failed", zap.Error(err))
		return PeriodResponse{}, mapRepositoryError(err)
	}

	overlap, err := qtx.HasOverlapping(ctx, companyID, start, end, id)
	if err != nil {
		return PeriodResponse{}, err
	}
	if overlap {
		return PeriodResponse{}, perioderrors.ErrOverlappingPeriod
	}

	p.StartDate = start
	p.EndDate = end
	p.PaymentDate = payment
	p.Status = req.Status

	if err := qtx.Update(ctx, p); err != nil {
		s.logger.Error("update period persist failed", zap.Error(err))
		return PeriodResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update period commit failed", zap.Error(err))
		return PeriodResponse{}, err
	}

	s.logger.Info("update period success", zap.String("period_id", id))

	return mapToResponse(*p), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	s.logger.Debug("delete period requested",
		zap.String("company_id", companyID),
		zap.String("period_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete period begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if _, err := qtx.FindByIDAndCompany(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	// entries ikut terhapus bersama period-nya
	if err := qtx.DeleteEntriesByPeriod(ctx, companyID, id); err != nil {
		s.logger.Error("delete period entries failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		s.logger.Error("delete period failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete period commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete period success", zap.String("period_id", id))
	return nil
}

func mapToResponse(p PayrollPeriod) PeriodResponse {
	return PeriodResponse{
		ID:          p.ID.String(),
		CompanyID:   p.CompanyID.String(),
		StartDate:   p.StartDate.Format("2006-01-02"),
		EndDate:     p.EndDate.Format("2006-01-02"),
		PaymentDate: p.PaymentDate.Format("2006-01-02"),
		Status:      p.Status,
	}
}
