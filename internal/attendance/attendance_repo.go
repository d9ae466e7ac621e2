package attendance

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/shared/connection"
	"go-payroll/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=attendance_repo.go -destination=mock/attendance_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, a *Attendance) error
	CreateBatch(ctx context.Context, rows []*Attendance) error
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Attendance, error)
	FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error)
	FindAllByCompany(ctx context.Context, companyID string, filter AttendanceFilter) ([]Attendance, error)
	FindByEmployeeAndRange(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]Attendance, error)
	GetEmployeeDailyRate(ctx context.Context, companyID, employeeID string) (int64, bool, error)
	Update(ctx context.Context, a *Attendance) error
	Delete(ctx context.Context, companyID, id string) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// WithTx mengembalikan repository yang seluruh query-nya jalan di
// transaksi milik caller, bukan di pool auto-commit.
func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: connection.UseTx(r.db, tx)}
}

func (r *repository) Create(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Create(a).Error
}

func (r *repository) CreateBatch(ctx context.Context, rows []*Attendance) error {
	return r.db.WithContext(ctx).Create(rows).Error
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&a, "id = ?", id).Error
	return &a, err
}

func (r *repository) FindByEmployeeAndDate(ctx context.Context, companyID, employeeID string, date time.Time) (*Attendance, error) {
	var a Attendance
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("employee_id = ?", employeeID).
		Where("work_date = ?", date.Format("2006-01-02")).
		First(&a).Error
	return &a, err
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter AttendanceFilter) ([]Attendance, error) {
	q := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID))

	if filter.EmployeeID != "" {
		q = q.Where("employee_id = ?", filter.EmployeeID)
	}
	if filter.From != "" {
		q = q.Where("work_date >= ?", filter.From)
	}
	if filter.To != "" {
		q = q.Where("work_date <= ?", filter.To)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var rows []Attendance
	err := q.Order("work_date DESC, employee_id ASC").Find(&rows).Error
	return rows, err
}

func (r *repository) FindByEmployeeAndRange(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]Attendance, error) {
	var rows []Attendance
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("employee_id = ?", employeeID).
		Where("work_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Order("work_date ASC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) GetEmployeeDailyRate(ctx context.Context, companyID, employeeID string) (int64, bool, error) {
	var rates []int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Select("daily_rate").
		Where("id = ?", employeeID).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Limit(1).
		Scan(&rates).Error
	if err != nil {
		return 0, false, err
	}
	if len(rates) == 0 {
		return 0, false, nil
	}
	return rates[0], true, nil
}

func (r *repository) Update(ctx context.Context, a *Attendance) error {
	return r.db.WithContext(ctx).Save(a).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&Attendance{}, "id = ?", id).Error
}
