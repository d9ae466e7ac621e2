package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID      uuid.UUID `gorm:"type:uuid;index;uniqueIndex:uq_employee_number"`
	EmployeeNumber string    `gorm:"uniqueIndex:uq_employee_number"`
	FirstName      string
	LastName       string
	Position       string
	Department     string
	HireDate       time.Time
	// Active, Probationary, Resigned, Terminated
	EmploymentStatus string
	// DailyRate dalam satuan terkecil (sen)
	DailyRate int64
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}
