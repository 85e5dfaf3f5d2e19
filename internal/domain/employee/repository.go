package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)
	GetByCode(ctx context.Context, code string) (Employee, error)
	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)
	GetActive(ctx context.Context) ([]Employee, error)
	Update(ctx context.Context, emp Employee) (Employee, error)
	// BulkAdjust updates the given financial fields on every active employee
	// whose code is not linked to an admin user. Returns affected row count.
	BulkAdjust(ctx context.Context, req BulkAdjustRequest) (int64, error)
	SetStatus(ctx context.Context, code string, status Status) error
	// Delete removes an employee unless the code is linked to an admin user,
	// in which case ErrAdminProtected is returned.
	Delete(ctx context.Context, code string) error
}
