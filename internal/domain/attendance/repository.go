package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	Create(ctx context.Context, day Day) (Day, error)
	GetByID(ctx context.Context, id string) (Day, error)
	// ListByEmployeeRange returns the employee's days in [from, to] in
	// ascending date order; the aggregator depends on that ordering.
	ListByEmployeeRange(ctx context.Context, employeeCode string, from, to time.Time) ([]Day, error)
	ListByRange(ctx context.Context, from, to time.Time) ([]Day, error)
	Update(ctx context.Context, day Day) (Day, error)
	// Purge deletes all days in [from, to]; employeeCode narrows the purge to
	// one employee when non-empty. Returns the number of rows removed.
	Purge(ctx context.Context, employeeCode string, from, to time.Time) (int64, error)
}
