package period

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusOpen       = "open"
	StatusProcessing = "processing"
	StatusClosed     = "closed"
)

type PayrollPeriod struct {
	ID          uuid.UUID      `gorm:"column:id;type:uuid;primaryKey"`
	CompanyID   uuid.UUID      `gorm:"column:company_id;type:uuid;not null;index"`
	StartDate   time.Time      `gorm:"column:start_date;type:date;not null"`
	EndDate     time.Time      `gorm:"column:end_date;type:date;not null"`
	PaymentDate time.Time      `gorm:"column:payment_date;type:date;not null"`
	Status      string         `gorm:"column:status;type:varchar(20);not null;default:'open'"`
	CreatedAt   time.Time      `gorm:"column:created_at"`
	UpdatedAt   time.Time      `gorm:"column:updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (PayrollPeriod) TableName() string {
	return "payroll_periods"
}
