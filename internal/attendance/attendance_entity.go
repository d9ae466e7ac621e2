package attendance

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Attendance struct {
	ID         uuid.UUID `gorm:"column:id;type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID `gorm:"column:company_id;type:uuid;not null;index"`
	EmployeeID uuid.UUID `gorm:"column:employee_id;type:uuid;not null;index;uniqueIndex:uq_attendance_employee_date"`
	WorkDate   time.Time `gorm:"column:work_date;type:date;not null;index;uniqueIndex:uq_attendance_employee_date"`
	Status     string    `gorm:"column:status;type:varchar(30);not null;default:'No Record'"`
	// DailyRate snapshot saat record dibuat, dalam satuan terkecil (sen)
	DailyRate  int64          `gorm:"column:daily_rate;not null;default:0"`
	Adjustment int64          `gorm:"column:adjustment;not null;default:0"`
	Notes      *string        `gorm:"column:notes;type:text"`
	CreatedAt  time.Time      `gorm:"column:created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"column:deleted_at;index"`
	Employee   *EmployeeRef   `gorm:"foreignKey:EmployeeID;references:ID"`
}

func (Attendance) TableName() string {
	return "attendances"
}

type EmployeeRef struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	FirstName string    `gorm:"column:first_name"`
	LastName  string    `gorm:"column:last_name"`
	DailyRate int64     `gorm:"column:daily_rate"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}
