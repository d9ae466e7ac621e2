package payroll

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/shared/connection"
	"go-payroll/internal/tenant"

	"gorm.io/gorm"
)

// AttendanceRow adalah potongan tabel attendances yang dibutuhkan
// generate payroll dan perakitan slip gaji.
type AttendanceRow struct {
	EmployeeID string    `gorm:"column:employee_id"`
	WorkDate   time.Time `gorm:"column:work_date"`
	Status     string    `gorm:"column:status"`
	DailyRate  int64     `gorm:"column:daily_rate"`
	Adjustment int64     `gorm:"column:adjustment"`
}

//go:generate mockgen -source=payroll_repo.go -destination=mock/payroll_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, e *PayrollEntry) error
	FindAllByCompany(ctx context.Context, companyID string, filter PayrollEntryFilter) ([]PayrollEntry, int64, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*PayrollEntry, error)
	Update(ctx context.Context, e *PayrollEntry) error
	ReplaceRateEntries(ctx context.Context, entryID string, rows []RateEntry) error
	Delete(ctx context.Context, companyID, id string) error

	EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error)
	GetEmployee(ctx context.Context, companyID, employeeID string) (*EmployeeRef, error)
	ListActiveEmployees(ctx context.Context, companyID string) ([]EmployeeRef, error)
	GetPeriod(ctx context.Context, companyID, periodID string) (*PeriodRef, error)
	UpdatePeriodStatus(ctx context.Context, companyID, periodID, status string) error
	ListAttendance(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]AttendanceRow, error)
	SumGrossForYear(ctx context.Context, companyID, employeeID string, year int) (int64, error)
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

func (r *repository) Create(ctx context.Context, e *PayrollEntry) error {
	return r.db.WithContext(ctx).Create(e).Error
}

// FindAllByCompany memaginasi di database (LIMIT/OFFSET); total
// dihitung terpisah dengan filter yang sama.
func (r *repository) FindAllByCompany(ctx context.Context, companyID string, filter PayrollEntryFilter) ([]PayrollEntry, int64, error) {
	scope := func(q *gorm.DB) *gorm.DB {
		q = q.Scopes(tenant.Scope(companyID))
		if filter.PeriodID != "" {
			q = q.Where("period_id = ?", filter.PeriodID)
		}
		if filter.EmployeeID != "" {
			q = q.Where("employee_id = ?", filter.EmployeeID)
		}
		if filter.Status != "" {
			q = q.Where("status = ?", filter.Status)
		}
		return q
	}

	var total int64
	if err := scope(r.db.WithContext(ctx).Model(&PayrollEntry{})).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	size := filter.PageSize
	if size < 1 {
		size = 10
	}

	var rows []PayrollEntry
	err := scope(r.db.WithContext(ctx)).
		Preload("Employee").
		Order("created_at DESC").
		Limit(size).
		Offset((page - 1) * size).
		Find(&rows).Error
	return rows, total, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*PayrollEntry, error) {
	var e PayrollEntry
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Preload("Employee").
		Preload("Period").
		Preload("RateEntries", func(db *gorm.DB) *gorm.DB {
			return db.Order("work_date ASC")
		}).
		First(&e, "id = ?", id).Error
	return &e, err
}

func (r *repository) Update(ctx context.Context, e *PayrollEntry) error {
	return r.db.WithContext(ctx).
		Omit("RateEntries", "Employee", "Period").
		Save(e).Error
}

// ReplaceRateEntries mengganti seluruh baris harian sebuah entry.
// Hard delete, baris lama tidak perlu jejak.
func (r *repository) ReplaceRateEntries(ctx context.Context, entryID string, rows []RateEntry) error {
	if err := r.db.WithContext(ctx).
		Where("entry_id = ?", entryID).
		Delete(&RateEntry{}).Error; err != nil {
		return err
	}
	if len(rows) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&rows).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&PayrollEntry{}, "id = ?", id).Error
}

func (r *repository) EmployeeBelongsToCompany(ctx context.Context, companyID, employeeID string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Table("employees").
		Where("id = ?", employeeID).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		Count(&count).Error
	return count > 0, err
}

func (r *repository) GetEmployee(ctx context.Context, companyID, employeeID string) (*EmployeeRef, error) {
	var emp EmployeeRef
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		First(&emp, "id = ?", employeeID).Error
	return &emp, err
}

func (r *repository) ListActiveEmployees(ctx context.Context, companyID string) ([]EmployeeRef, error) {
	var emps []EmployeeRef
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("employment_status IN ?", []string{"Active", "Probationary"}).
		Where("deleted_at IS NULL").
		Order("employee_number ASC").
		Find(&emps).Error
	return emps, err
}

func (r *repository) GetPeriod(ctx context.Context, companyID, periodID string) (*PeriodRef, error) {
	var p PeriodRef
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Where("deleted_at IS NULL").
		First(&p, "id = ?", periodID).Error
	return &p, err
}

func (r *repository) UpdatePeriodStatus(ctx context.Context, companyID, periodID, status string) error {
	return r.db.WithContext(ctx).
		Table("payroll_periods").
		Where("id = ?", periodID).
		Where("company_id = ?", companyID).
		Update("status", status).Error
}

func (r *repository) ListAttendance(ctx context.Context, companyID, employeeID string, from, to time.Time) ([]AttendanceRow, error) {
	var rows []AttendanceRow
	err := r.db.WithContext(ctx).
		Table("attendances").
		Select("employee_id, work_date, status, daily_rate, adjustment").
		Where("company_id = ?", companyID).
		Where("employee_id = ?", employeeID).
		Where("work_date BETWEEN ? AND ?", from.Format("2006-01-02"), to.Format("2006-01-02")).
		Where("deleted_at IS NULL").
		Order("work_date ASC").
		Scan(&rows).Error
	return rows, err
}

// SumGrossForYear menjumlahkan gross entry milik employee yang
// period-nya mulai di tahun kalender tersebut, untuk YTD dan gaji-13.
func (r *repository) SumGrossForYear(ctx context.Context, companyID, employeeID string, year int) (int64, error) {
	var total sql.NullInt64
	err := r.db.WithContext(ctx).
		Table("payroll_entries pe").
		Select("COALESCE(SUM(pe.gross_pay), 0)").
		Joins("JOIN payroll_periods pp ON pp.id = pe.period_id").
		Where("pe.company_id = ?", companyID).
		Where("pe.employee_id = ?", employeeID).
		Where("EXTRACT(YEAR FROM pp.start_date) = ?", year).
		Where("pe.deleted_at IS NULL").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total.Int64, nil
}
