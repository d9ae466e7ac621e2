package period

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	perioderrors "go-payroll/internal/period/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

type fakeRepo struct {
	withTxFn                func(tx *sql.Tx) Repository
	createFn                func(ctx context.Context, p *PayrollPeriod) error
	findAllFn               func(ctx context.Context, companyID string) ([]PayrollPeriod, error)
	findByIDFn              func(ctx context.Context, companyID, id string) (*PayrollPeriod, error)
	findLatestFn            func(ctx context.Context, companyID string) (*PayrollPeriod, error)
	hasOverlappingFn        func(ctx context.Context, companyID string, start, end time.Time, excludeID string) (bool, error)
	updateFn                func(ctx context.Context, p *PayrollPeriod) error
	deleteFn                func(ctx context.Context, companyID, id string) error
	deleteEntriesByPeriodFn func(ctx context.Context, companyID, periodID string) error
}

func (f *fakeRepo) WithTx(tx *sql.Tx) Repository { return f.withTxFn(tx) }
func (f *fakeRepo) Create(ctx context.Context, p *PayrollPeriod) error {
	return f.createFn(ctx, p)
}
func (f *fakeRepo) FindAllByCompany(ctx context.Context, companyID string) ([]PayrollPeriod, error) {
	return f.findAllFn(ctx, companyID)
}
func (f *fakeRepo) FindByIDAndCompany(ctx context.Context, companyID, id string) (*PayrollPeriod, error) {
	return f.findByIDFn(ctx, companyID, id)
}
func (f *fakeRepo) FindLatestByCompany(ctx context.Context, companyID string) (*PayrollPeriod, error) {
	return f.findLatestFn(ctx, companyID)
}
func (f *fakeRepo) HasOverlapping(ctx context.Context, companyID string, start, end time.Time, excludeID string) (bool, error) {
	return f.hasOverlappingFn(ctx, companyID, start, end, excludeID)
}
func (f *fakeRepo) Update(ctx context.Context, p *PayrollPeriod) error {
	return f.updateFn(ctx, p)
}
func (f *fakeRepo) Delete(ctx context.Context, companyID, id string) error {
	return f.deleteFn(ctx, companyID, id)
}
func (f *fakeRepo) DeleteEntriesByPeriod(ctx context.Context, companyID, periodID string) error {
	return f.deleteEntriesByPeriodFn(ctx, companyID, periodID)
}

func newFakeRepo() *fakeRepo {
	repo := &fakeRepo{}
	repo.withTxFn = func(tx *sql.Tx) Repository { return repo }
	repo.hasOverlappingFn = func(ctx context.Context, companyID string, start, end time.Time, excludeID string) (bool, error) {
		return false, nil
	}
	return repo
}

func TestPeriodService_Create(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New().String()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		var saved PayrollPeriod
		repo := newFakeRepo()
		repo.createFn = func(ctx context.Context, p *PayrollPeriod) error { saved = *p; return nil }

		svc := NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Create(ctx, companyID, CreatePeriodRequest{
			StartDate:   "2025-03-18",
			EndDate:     "2025-03-24",
			PaymentDate: "2025-03-27",
		})

		assert.NoError(t, err)
		assert.Equal(t, StatusOpen, saved.Status)
		assert.Equal(t, "2025-03-18", resp.StartDate)
		assert.Equal(t, "2025-03-27", resp.PaymentDate)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("start after end rejected", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(db, repo)

		_, err := svc.Create(ctx, companyID, CreatePeriodRequest{
			StartDate:   "2025-03-24",
			EndDate:     "2025-03-18",
			PaymentDate: "2025-03-27",
		})

		assert.ErrorIs(t, err, perioderrors.ErrInvalidPeriodDates)
	})

	t.Run("payment before end rejected", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewService(db, repo)

		_, err := svc.Create(ctx, companyID, CreatePeriodRequest{
			StartDate:   "2025-03-18",
			EndDate:     "2025-03-24",
			PaymentDate: "2025-03-20",
		})

		assert.ErrorIs(t, err, perioderrors.ErrInvalidPeriodDates)
	})

	t.Run("single day period allowed", func(t *testing.T) {
		repo := newFakeRepo()
		repo.createFn = func(ctx context.Context, p *PayrollPeriod) error { return nil }
		svc := NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Create(ctx, companyID, CreatePeriodRequest{
			StartDate:   "2025-03-18",
			EndDate:     "2025-03-18",
			PaymentDate: "2025-03-18",
		})

		assert.NoError(t, err)
		assert.Equal(t, resp.StartDate, resp.EndDate)
	})

	t.Run("overlapping period rejected", func(t *testing.T) {
		repo := newFakeRepo()
		repo.hasOverlappingFn = func(ctx context.Context, companyID string, start, end time.Time, excludeID string) (bool, error) {
			return true, nil
		}
		svc := NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.Create(ctx, companyID, CreatePeriodRequest{
			StartDate:   "2025-03-18",
			EndDate:     "2025-03-24",
			PaymentDate: "2025-03-27",
		})

		assert.ErrorIs(t, err, perioderrors.ErrOverlappingPeriod)
	})
}

func TestPeriodService_GenerateNext(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New().String()
	ctx := context.Background()

	t.Run("menyambung period terakhir", func(t *testing.T) {
		end, _ := time.Parse("2006-01-02", "2025-03-24")
		latest := &PayrollPeriod{
			ID:      uuid.New(),
			EndDate: end,
		}

		var saved PayrollPeriod
		repo := newFakeRepo()
		repo.findLatestFn = func(ctx context.Context, companyID string) (*PayrollPeriod, error) {
			return latest, nil
		}
		repo.createFn = func(ctx context.Context, p *PayrollPeriod) error { saved = *p; return nil }

		svc := NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.GenerateNext(ctx, companyID)

		assert.NoError(t, err)
		assert.Equal(t, "2025-03-25", resp.StartDate)
		assert.Equal(t, "2025-03-31", resp.EndDate)
		assert.Equal(t, "2025-04-03", resp.PaymentDate)
		assert.Equal(t, StatusOpen, saved.Status)
	})

	t.Run("period pertama dimulai hari ini", func(t *testing.T) {
		repo := newFakeRepo()
		repo.findLatestFn = func(ctx context.Context, companyID string) (*PayrollPeriod, error) {
			return nil, gorm.ErrRecordNotFound
		}
		repo.createFn = func(ctx context.Context, p *PayrollPeriod) error { return nil }

		svc := NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.GenerateNext(ctx, companyID)

		assert.NoError(t, err)
		start, _ := time.Parse("2006-01-02", resp.StartDate)
		end, _ := time.Parse("2006-01-02", resp.EndDate)
		assert.Equal(t, 6, int(end.Sub(start).Hours()/24))
	})
}

func TestPeriodService_Delete(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New().String()
	targetID := uuid.New().String()
	ctx := context.Background()

	t.Run("entries ikut terhapus", func(t *testing.T) {
		entriesDeleted := false
		repo := newFakeRepo()
		repo.findByIDFn = func(ctx context.Context, cid, id string) (*PayrollPeriod, error) {
			return &PayrollPeriod{ID: uuid.MustParse(targetID)}, nil
		}
		repo.deleteEntriesByPeriodFn = func(ctx context.Context, cid, pid string) error {
			entriesDeleted = true
			assert.Equal(t, targetID, pid)
			return nil
		}
		repo.deleteFn = func(ctx context.Context, cid, id string) error {
			assert.True(t, entriesDeleted, "entries harus dihapus sebelum period")
			return nil
		}

		svc := NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()

		assert.NoError(t, svc.Delete(ctx, companyID, targetID))
		assert.True(t, entriesDeleted)
	})

	t.Run("not found", func(t *testing.T) {
		repo := newFakeRepo()
		repo.findByIDFn = func(ctx context.Context, cid, id string) (*PayrollPeriod, error) {
			return nil, gorm.ErrRecordNotFound
		}

		svc := NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()

		err := svc.Delete(ctx, companyID, targetID)
		assert.ErrorIs(t, err, perioderrors.ErrPeriodNotFound)
	})

	t.Run("entry delete error -> rollback", func(t *testing.T) {
		repo := newFakeRepo()
		repo.findByIDFn = func(ctx context.Context, cid, id string) (*PayrollPeriod, error) {
			return &PayrollPeriod{}, nil
		}
		repo.deleteEntriesByPeriodFn = func(ctx context.Context, cid, pid string) error {
			return errors.New("db error")
		}

		svc := NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()

		assert.Error(t, svc.Delete(ctx, companyID, targetID))
	})
}

func TestPeriodService_Update(t *testing.T) {
	db, mock, _ := sqlmock.New()
	defer db.Close()

	companyID := uuid.New().String()
	targetID := uuid.New()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		existing := &PayrollPeriod{
			ID:        targetID,
			CompanyID: uuid.MustParse(companyID),
			Status:    StatusOpen,
		}

		var saved PayrollPeriod
		repo := newFakeRepo()
		repo.findByIDFn = func(ctx context.Context, cid, id string) (*PayrollPeriod, error) {
			return existing, nil
		}
		repo.updateFn = func(ctx context.Context, p *PayrollPeriod) error { saved = *p; return nil }

		svc := NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectCommit()

		resp, err := svc.Update(ctx, companyID, targetID.String(), UpdatePeriodRequest{
			StartDate:   "2025-04-01",
			EndDate:     "2025-04-07",
			PaymentDate: "2025-04-10",
			Status:      StatusClosed,
		})

		assert.NoError(t, err)
		assert.Equal(t, StatusClosed, saved.Status)
		assert.Equal(t, "2025-04-07", resp.EndDate)
	})

	t.Run("overlap dengan period lain ditolak", func(t *testing.T) {
		repo := newFakeRepo()
		repo.findByIDFn = func(ctx context.Context, cid, id string) (*PayrollPeriod, error) {
			return &PayrollPeriod{ID: targetID}, nil
		}
		repo.hasOverlappingFn = func(ctx context.Context, companyID string, start, end time.Time, excludeID string) (bool, error) {
			assert.Equal(t, targetID.String(), excludeID)
			return true, nil
		}

		svc := NewService(db, repo)

		mock.ExpectBegin()
		mock.ExpectRollback()

		_, err := svc.Update(ctx, companyID, targetID.String(), UpdatePeriodRequest{
			StartDate:   "2025-04-01",
			EndDate:     "2025-04-07",
			PaymentDate: "2025-04-10",
			Status:      StatusOpen,
		})

		assert.ErrorIs(t, err, perioderrors.ErrOverlappingPeriod)
	})
}
