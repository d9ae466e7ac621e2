package attendance

import (
	"context"
	"database/sql"
	"time"

	attendanceerrors "go-payroll/internal/attendance/errors"
	"go-payroll/internal/paycalc"
	"go-payroll/internal/shared/contextutil"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=attendance_service.go -destination=mock/attendance_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID string, req CreateAttendanceRequest) (AttendanceResponse, error)
	BulkCreate(ctx context.Context, companyID string, req BulkCreateAttendanceRequest) ([]AttendanceResponse, error)
	GetAll(ctx context.Context, companyID string, filter AttendanceFilter) ([]AttendanceResponse, error)
	GetByID(ctx context.Context, companyID, id string) (AttendanceResponse, error)
	Update(ctx context.Context, companyID, id string, req UpdateAttendanceRequest) (AttendanceResponse, error)
	Delete(ctx context.Context, companyID, id string) error
}

type service struct {
	db     *sql.DB
	repo   Repository
	logger *zap.Logger
}

func NewService(db *sql.DB, repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	return &service{db: db, repo: repo, logger: l}
}

// buildRow memvalidasi satu request dan mengubahnya jadi entity.
// Status dinormalisasi, daily rate diambil dari master employee
// kalau request tidak membawa nilai sendiri.
func (s *service) buildRow(ctx context.Context, repo Repository, companyID string, req CreateAttendanceRequest) (*Attendance, error) {
	workDate, err := time.Parse("2006-01-02", req.WorkDate)
	if err != nil {
		return nil, attendanceerrors.ErrInvalidWorkDate
	}

	dailyRate := paycalc.ParseAmount(req.DailyRate)
	if req.DailyRate == "" {
		rate, found, err := repo.GetEmployeeDailyRate(ctx, companyID, req.EmployeeID)
		if err != nil {
			return nil, err
		}
		if !found {
			return nil, attendanceerrors.ErrEmployeeNotFound
		}
		dailyRate = rate
	}

	return &Attendance{
		ID:         uuid.New(),
		CompanyID:  uuid.MustParse(companyID),
		EmployeeID: uuid.MustParse(req.EmployeeID),
		WorkDate:   workDate,
		Status:     paycalc.NormalizeStatus(req.Status),
		DailyRate:  dailyRate,
		Adjustment: paycalc.ParseAmount(req.Adjustment),
		Notes:      req.Notes,
	}, nil
}

func (s *service) Create(ctx context.Context, companyID string, req CreateAttendanceRequest) (AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create attendance requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("work_date", req.WorkDate),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create attendance begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := s.buildRow(ctx, qtx, companyID, req)
	if err != nil {
		return AttendanceResponse{}, err
	}

	if err := qtx.Create(ctx, row); err != nil {
		s.logger.Error("create attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create attendance commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("create attendance success",
		zap.String("request_id", rid),
		zap.String("attendance_id", row.ID.String()),
	)

	return mapToResponse(*row), nil
}

func (s *service) BulkCreate(ctx context.Context, companyID string, req BulkCreateAttendanceRequest) ([]AttendanceResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("bulk create attendance requested",
		zap.String("request_id", rid),
		zap.String("company_id", companyID),
		zap.Int("count", len(req.Records)),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("bulk create attendance begin tx failed", zap.Error(err))
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	rows := make([]*Attendance, 0, len(req.Records))
	for _, r := range req.Records {
		row, err := s.buildRow(ctx, qtx, companyID, r)
		if err != nil {
			// satu record rusak membatalkan seluruh batch
			return nil, err
		}
		rows = append(rows, row)
	}

	if err := qtx.CreateBatch(ctx, rows); err != nil {
		s.logger.Error("bulk create attendance persist failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("bulk create attendance commit failed", zap.Error(err))
		return nil, err
	}

	s.logger.Info("bulk create attendance success",
		zap.String("request_id", rid),
		zap.Int("count", len(rows)),
	)

	res := make([]AttendanceResponse, len(rows))
	for i, row := range rows {
		res[i] = mapToResponse(*row)
	}
	return res, nil
}

func (s *service) GetAll(ctx context.Context, companyID string, filter AttendanceFilter) ([]AttendanceResponse, error) {
	if filter.From != "" && filter.To != "" {
		from, errFrom := time.Parse("2006-01-02", filter.From)
		to, errTo := time.Parse("2006-01-02", filter.To)
		if errFrom != nil || errTo != nil || from.After(to) {
			return nil, attendanceerrors.ErrInvalidDateRange
		}
	}
	if filter.Status != "" {
		filter.Status = paycalc.NormalizeStatus(filter.Status)
	}

	rows, err := s.repo.FindAllByCompany(ctx, companyID, filter)
	if err != nil {
		s.logger.Error("get all attendance failed", zap.Error(err))
		return nil, mapRepositoryError(err)
	}

	res := make([]AttendanceResponse, len(rows))
	for i, r := range rows {
		res[i] = mapToResponse(r)
	}
	return res, nil
}

func (s *service) GetByID(ctx context.Context, companyID, id string) (AttendanceResponse, error) {
	row, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		s.logger.Error("get attendance by id failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}
	return mapToResponse(*row), nil
}

func (s *service) Update(ctx context.Context, companyID, id string, req UpdateAttendanceRequest) (AttendanceResponse, error) {
	s.logger.Debug("update attendance requested",
		zap.String("company_id", companyID),
		zap.String("attendance_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("update attendance begin tx failed", zap.Error(err))
		return AttendanceResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	row, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		s.logger.Error("update attendance fetch existing failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	row.Status = paycalc.NormalizeStatus(req.Status)
	if req.DailyRate != "" {
		row.DailyRate = paycalc.ParseAmount(req.DailyRate)
	}
	if req.Adjustment != "" {
		row.Adjustment = paycalc.ParseAmount(req.Adjustment)
	}
	if req.Notes != nil {
		row.Notes = req.Notes
	}

	if err := qtx.Update(ctx, row); err != nil {
		s.logger.Error("update attendance persist failed", zap.Error(err))
		return AttendanceResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("update attendance commit failed", zap.Error(err))
		return AttendanceResponse{}, err
	}

	s.logger.Info("update attendance success", zap.String("attendance_id", id))

	return mapToResponse(*row), nil
}

func (s *service) Delete(ctx context.Context, companyID, id string) error {
	s.logger.Debug("delete attendance requested",
		zap.String("company_id", companyID),
		zap.String("attendance_id", id),
	)

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("delete attendance begin tx failed", zap.Error(err))
		return err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		s.logger.Error("delete attendance failed", zap.Error(err))
		return mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("delete attendance commit failed", zap.Error(err))
		return err
	}

	s.logger.Info("delete attendance success", zap.String("attendance_id", id))
	return nil
}

func mapToResponse(a Attendance) AttendanceResponse {
	resp := AttendanceResponse{
		ID:         a.ID.String(),
		CompanyID:  a.CompanyID.String(),
		EmployeeID: a.EmployeeID.String(),
		WorkDate:   a.WorkDate.Format("2006-01-02"),
		Status:     a.Status,
		DailyRate:  paycalc.FormatAmount(a.DailyRate),
		Adjustment: paycalc.FormatAmount(a.Adjustment),
		Notes:      a.Notes,
	}
	if a.Employee != nil {
		resp.EmployeeName = a.Employee.FirstName + " " + a.Employee.LastName
	}
	return resp
}
