package hr

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/workshop-erp/backend/internal/domain/shared"
)

// EmployeeStatus represents an employee's working status
type EmployeeStatus string

const (
	EmployeeStatusActive   EmployeeStatus = "ACTIVE"
	EmployeeStatusInactive EmployeeStatus = "INACTIVE"
	EmployeeStatusOnLeave  EmployeeStatus = "ON_LEAVE"
)

// IsValid checks if the status is a valid EmployeeStatus
func (s EmployeeStatus) IsValid() bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusInactive, EmployeeStatusOnLeave:
		return true
	}
	return false
}

// String returns the string representation of EmployeeStatus
func (s EmployeeStatus) String() string {
	return string(s)
}

// Employee is a salaried worker whose pay period anchors to the
// day-of-month they were hired on
type Employee struct {
	shared.BaseEntity
	Name          string          `json:"name"`
	HireDate      time.Time       `json:"hire_date"`
	MonthlySalary decimal.Decimal `json:"monthly_salary"`
	Status        EmployeeStatus  `json:"status"`
}

// NewEmployee creates an employee record
func NewEmployee(name string, hireDate time.Time, monthlySalary decimal.Decimal, status EmployeeStatus) (*Employee, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewValidationError("employee name cannot be empty")
	}
	if hireDate.IsZero() {
		return nil, shared.NewValidationError("employee hire date is required")
	}
	if monthlySalary.IsNegative() {
		return nil, shared.NewValidationError("monthly salary cannot be negative")
	}
	if !status.IsValid() {
		return nil, shared.NewValidationError("invalid employee status")
	}

	return &Employee{
		BaseEntity:    shared.NewBaseEntity(),
		Name:          name,
		HireDate:      hireDate,
		MonthlySalary: monthlySalary,
		Status:        status,
	}, nil
}

// AllowanceEvent records an advance or allowance drawn against salary.
// Each allowance belongs to exactly one salary cycle, determined by its
// date.
type AllowanceEvent struct {
	ID         uuid.UUID       `json:"id"`
	EmployeeID uuid.UUID       `json:"employee_id"`
	Date       time.Time       `json:"date"`
	Amount     decimal.Decimal `json:"amount"`
	Notes      string          `json:"notes,omitempty"`
}

// NewAllowanceEvent creates an allowance, rejecting non-positive amounts
func NewAllowanceEvent(employeeID uuid.UUID, date time.Time, amount decimal.Decimal, notes string) (*AllowanceEvent, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewValidationError("allowance employee id cannot be empty")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewValidationError("allowance amount must be positive")
	}

	return &AllowanceEvent{
		ID:         uuid.New(),
		EmployeeID: employeeID,
		Date:       date,
		Amount:     amount,
		Notes:      notes,
	}, nil
}
