package period

import (
	"context"
	"database/sql"
	"time"

	"go-payroll/internal/shared/connection"
	"go-payroll/internal/tenant"

	"gorm.io/gorm"
)

//go:generate mockgen -source=period_repo.go -destination=mock/period_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, p *PayrollPeriod) error
	FindAllByCompany(ctx context.Context, companyID string) ([]PayrollPeriod, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*PayrollPeriod, error)
	FindLatestByCompany(ctx context.Context, companyID string) (*PayrollPeriod, error)
	HasOverlapping(ctx context.Context, companyID string, start, end time.Time, excludeID string) (bool, error)
	Update(ctx context.Context, p *PayrollPeriod) error
	Delete(ctx context.Context, companyID, id string) error
	DeleteEntriesByPeriod(ctx context.Context, companyID, periodID string) error
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

func (r *repository) Create(ctx context.Context, p *PayrollPeriod) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]PayrollPeriod, error) {
	var rows []PayrollPeriod
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("start_date DESC").
		Find(&rows).Error
	return rows, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*PayrollPeriod, error) {
	var p PayrollPeriod
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repository) FindLatestByCompany(ctx context.Context, companyID string) (*PayrollPeriod, error) {
	var p PayrollPeriod
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Order("end_date DESC").
		First(&p).Error
	return &p, err
}

func (r *repository) HasOverlapping(ctx context.Context, companyID string, start, end time.Time, excludeID string) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).
		Model(&PayrollPeriod{}).
		Scopes(tenant.Scope(companyID)).
		Where("start_date <= ? AND end_date >= ?", end.Format("2006-01-02"), start.Format("2006-01-02"))
	if excludeID != "" {
		q = q.Where("id <> ?", excludeID)
	}
	err := q.Count(&count).Error
	return count > 0, err
}

func (r *repository) Update(ctx context.Context, p *PayrollPeriod) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *repository) Delete(ctx context.Context, companyID, id string) error {
	return r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Delete(&PayrollPeriod{}, "id = ?", id).Error
}

// DeleteEntriesByPeriod ikut menghapus payroll entries milik period,
// supaya tidak ada entry yatim setelah period dihapus.
func (r *repository) DeleteEntriesByPeriod(ctx context.Context, companyID, periodID string) error {
	return r.db.WithContext(ctx).
		Table("payroll_entries").
		Where("company_id = ?", companyID).
		Where("period_id = ?", periodID).
		Where("deleted_at IS NULL").
		Update("deleted_at", time.Now().UTC()).Error
}
