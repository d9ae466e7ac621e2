package payroll

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PayrollEntry struct {
	ID         uuid.UUID    `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID  uuid.UUID    `gorm:"type:uuid;not null;index:idx_company_status"`
	EmployeeID uuid.UUID    `gorm:"type:uuid;not null;index:idx_employee_period,unique"`
	PeriodID   uuid.UUID    `gorm:"type:uuid;not null;index:idx_employee_period,unique"`
	Employee   *EmployeeRef `gorm:"foreignKey:EmployeeID;references:ID"`
	Period     *PeriodRef   `gorm:"foreignKey:PeriodID;references:ID"`

	// Financials disimpan dalam satuan terkecil (sen) untuk hindari floating error.
	GrossPay int64 `gorm:"type:bigint;not null;default:0"`

	// Potongan wajib, dihitung ulang dari gross kalau AutoCalcDeductions aktif
	SSSDeduction        int64 `gorm:"type:bigint;not null;default:0"`
	PhilHealthDeduction int64 `gorm:"type:bigint;not null;default:0"`
	PagIBIGDeduction    int64 `gorm:"type:bigint;not null;default:0"`

	// Potongan manual, selalu apa adanya dari input
	TaxDeduction    int64 `gorm:"type:bigint;not null;default:0"`
	CashAdvance     int64 `gorm:"type:bigint;not null;default:0"`
	LoanDeduction   int64 `gorm:"type:bigint;not null;default:0"`
	VATDeduction    int64 `gorm:"type:bigint;not null;default:0"`
	OtherDeductions int64 `gorm:"type:bigint;not null;default:0"`

	TotalDeductions int64 `gorm:"type:bigint;not null;default:0"`
	NetPay          int64 `gorm:"type:bigint;not null;default:0"`

	AutoCalcDeductions bool `gorm:"not null;default:true"`

	YTDEarnings        int64 `gorm:"type:bigint;not null;default:0"`
	ThirteenthMonthPay int64 `gorm:"type:bigint;not null;default:0"`

	// Workflow & Audit
	Status             string     `gorm:"type:varchar(20);not null;default:'DRAFT';index:idx_company_status"`
	ApprovedAt         *time.Time `gorm:"index"`
	PaidAt             *time.Time `gorm:"index"`
	PayslipURL         *string
	PayslipGeneratedAt *time.Time `gorm:"index"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`

	RateEntries []RateEntry `gorm:"foreignKey:EntryID"`
}

func (PayrollEntry) TableName() string {
	return "payroll_entries"
}

// RateEntry adalah baris harian penyusun gross satu entry.
type RateEntry struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	EntryID   uuid.UUID `gorm:"type:uuid;not null;index"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	WorkDate  time.Time `gorm:"type:date;not null"`
	Status    string    `gorm:"type:varchar(30);not null;default:''"`

	Amount     int64 `gorm:"type:bigint;not null;default:0"`
	Adjustment int64 `gorm:"type:bigint;not null;default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

func (RateEntry) TableName() string {
	return "rate_entries"
}

type EmployeeRef struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	EmployeeNumber string    `gorm:"column:employee_number"`
	FirstName      string    `gorm:"column:first_name"`
	LastName       string    `gorm:"column:last_name"`
	Position       string    `gorm:"column:position"`
	Department     string    `gorm:"column:department"`
	DailyRate      int64     `gorm:"column:daily_rate"`
}

func (EmployeeRef) TableName() string {
	return "employees"
}

type PeriodRef struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartDate   time.Time `gorm:"column:start_date"`
	EndDate     time.Time `gorm:"column:end_date"`
	PaymentDate time.Time `gorm:"column:payment_date"`
	Status      string    `gorm:"column:status"`
}

func (PeriodRef) TableName() string {
	return "payroll_periods"
}
