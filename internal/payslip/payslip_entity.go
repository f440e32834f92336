package payslip

import (
	"time"
)

// Payslip is one pay statement for one issue year/month.
// Amounts are whole yen. Totals are derived and rewritten on every save.
type Payslip struct {
	ID      string `gorm:"type:varchar(64);primaryKey"`
	OwnerID string `gorm:"type:varchar(64);not null;index:idx_payslip_owner_period,priority:1"`

	IssueYear  int `gorm:"not null;index:idx_payslip_owner_period,priority:2"`
	IssueMonth int `gorm:"not null;index:idx_payslip_owner_period,priority:3"`

	EmployeeName string `gorm:"type:varchar(255)"`
	CompanyName  string `gorm:"type:varchar(255)"`
	CompanyLogo  string `gorm:"type:text"` // opaque handle, usually a data URL

	// Attendance period, unset when the statement has no fixed range.
	WorkStartYear  *int
	WorkStartMonth *int
	WorkStartDay   *int
	WorkEndYear    *int
	WorkEndMonth   *int
	WorkEndDay     *int

	WorkingDays   float64 `gorm:"not null"`
	WorkingHours  float64 `gorm:"not null"`
	OvertimeHours float64 `gorm:"not null"`

	// Earnings
	BasicSalary    int64 `gorm:"type:bigint;not null"`
	TaxFreeCommute int64 `gorm:"type:bigint;not null"`
	OvertimePay    int64 `gorm:"type:bigint;not null"`
	OtherAllowance int64 `gorm:"type:bigint;not null"`

	// Deductions
	IncomeTax           int64 `gorm:"type:bigint;not null"`
	ResidentTax         int64 `gorm:"type:bigint;not null"`
	HealthInsurance     int64 `gorm:"type:bigint;not null"`
	PensionInsurance    int64 `gorm:"type:bigint;not null"`
	EmploymentInsurance int64 `gorm:"type:bigint;not null"`
	OtherDeduction      int64 `gorm:"type:bigint;not null"`

	TotalEarnings   int64 `gorm:"type:bigint;not null"`
	TotalDeductions int64 `gorm:"type:bigint;not null"`
	NetPay          int64 `gorm:"type:bigint;not null"`

	SelectedFormat int `gorm:"not null"`

	CreatedAt time.Time `gorm:"autoCreateTime:false;index"`
	UpdatedAt time.Time `gorm:"autoUpdateTime:false"`
}

func (Payslip) TableName() string {
	return "payslips"
}

func (p Payslip) Period() (year, month int) {
	return p.IssueYear, p.IssueMonth
}

// HasWorkPeriod reports whether both attendance bounds are fully set.
func (p Payslip) HasWorkPeriod() bool {
	return p.WorkStartYear != nil && p.WorkStartMonth != nil && p.WorkStartDay != nil &&
		p.WorkEndYear != nil && p.WorkEndMonth != nil && p.WorkEndDay != nil
}
