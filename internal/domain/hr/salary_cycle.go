package hr

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/workshop-erp/backend/internal/domain/shared"
	"github.com/workshop-erp/backend/internal/domain/shared/valueobject"
)

// SalaryCycle is the derived pay-period window an allowance belongs to.
// It is computed from the employee's hire-day anchor, never stored.
// Both bounds are inclusive.
type SalaryCycle struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Contains reports whether date falls inside the cycle, inclusive on
// both ends. Only the calendar day matters.
func (c SalaryCycle) Contains(date time.Time) bool {
	d := dayOf(date)
	return !d.Before(c.Start) && !d.After(c.End)
}

// CycleFor computes the salary cycle containing referenceDate for a pay
// period anchored to hireDay (1..31). The anchor is clamped to each
// month's length, so an employee hired on the 31st cycles on the 28th,
// 29th or 30th in shorter months. The cycle ends the day before the
// next cycle starts.
func CycleFor(hireDay int, referenceDate time.Time) (SalaryCycle, error) {
	if hireDay < 1 || hireDay > 31 {
		return SalaryCycle{}, shared.NewValidationError("hire day must be between 1 and 31")
	}

	ref := dayOf(referenceDate)
	year, month, _ := ref.Date()

	start := anchorIn(year, month, hireDay, ref.Location())
	if ref.Before(start) {
		start = anchorIn(year, month-1, hireDay, ref.Location())
	}

	nextStart := anchorIn(start.Year(), start.Month()+1, hireDay, ref.Location())
	end := nextStart.AddDate(0, 0, -1)

	return SalaryCycle{Start: start, End: end}, nil
}

// anchorIn places the hire-day anchor in the given month, clamped to
// the month's last day. Month arithmetic relies on time.Date
// normalizing out-of-range months.
func anchorIn(year int, month time.Month, hireDay int, loc *time.Location) time.Time {
	firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	lastDay := time.Date(firstOfMonth.Year(), firstOfMonth.Month()+1, 0, 0, 0, 0, 0, loc).Day()

	day := hireDay
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfMonth.Year(), firstOfMonth.Month(), day, 0, 0, 0, 0, loc)
}

// dayOf truncates a timestamp to its calendar day
func dayOf(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// AllowancesInCycle filters allowances to those dated inside the cycle
func AllowancesInCycle(allowances []AllowanceEvent, cycle SalaryCycle) []AllowanceEvent {
	out := make([]AllowanceEvent, 0)
	for _, a := range allowances {
		if cycle.Contains(a.Date) {
			out = append(out, a)
		}
	}
	return out
}

// RemainingSalary returns the salary left after the cycle's allowances.
// A negative result means the employee is overdrawn for the cycle; that
// is a reportable state, not an error.
func RemainingSalary(employee *Employee, allowances []AllowanceEvent) decimal.Decimal {
	amounts := make([]decimal.Decimal, 0, len(allowances))
	for _, a := range allowances {
		amounts = append(amounts, a.Amount)
	}
	return employee.MonthlySalary.Sub(valueobject.Sum(amounts))
}

// SalaryBook answers salary-cycle questions over an employee roster and
// its allowance stream.
type SalaryBook struct {
	employees  map[uuid.UUID]*Employee
	ordered    []*Employee
	allowances []AllowanceEvent
}

// NewSalaryBook builds a salary book over the given records
func NewSalaryBook(employees []*Employee, allowances []AllowanceEvent) *SalaryBook {
	byID := make(map[uuid.UUID]*Employee, len(employees))
	for _, e := range employees {
		byID[e.ID] = e
	}
	return &SalaryBook{employees: byID, ordered: employees, allowances: allowances}
}

// Employee returns the roster record for the given id
func (b *SalaryBook) Employee(employeeID uuid.UUID) (*Employee, error) {
	e, ok := b.employees[employeeID]
	if !ok {
		return nil, shared.NewNotFoundError("employee", employeeID.String())
	}
	return e, nil
}

// Employees returns the roster in input order
func (b *SalaryBook) Employees() []*Employee {
	return b.ordered
}

// CycleInfo is the derived salary standing of one employee for the
// cycle containing referenceDate
type CycleInfo struct {
	Employee   *Employee        `json:"employee"`
	Cycle      SalaryCycle      `json:"cycle"`
	Allowances []AllowanceEvent `json:"allowances"`
	Drawn      decimal.Decimal  `json:"drawn"`
	Remaining  decimal.Decimal  `json:"remaining"`
}

// CycleInfoFor computes the salary cycle standing for one employee
func (b *SalaryBook) CycleInfoFor(employeeID uuid.UUID, referenceDate time.Time) (*CycleInfo, error) {
	e, err := b.Employee(employeeID)
	if err != nil {
		return nil, err
	}

	cycle, err := CycleFor(e.HireDate.Day(), referenceDate)
	if err != nil {
		return nil, err
	}

	mine := make([]AllowanceEvent, 0)
	for _, a := range b.allowances {
		if a.EmployeeID == employeeID {
			mine = append(mine, a)
		}
	}
	inCycle := AllowancesInCycle(mine, cycle)

	drawn := decimal.Zero
	for _, a := range inCycle {
		drawn = drawn.Add(a.Amount)
	}

	return &CycleInfo{
		Employee:   e,
		Cycle:      cycle,
		Allowances: inCycle,
		Drawn:      drawn,
		Remaining:  e.MonthlySalary.Sub(drawn),
	}, nil
}
