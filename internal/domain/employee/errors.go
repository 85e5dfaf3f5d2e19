package employee

import "errors"

var (
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrEmployeeCodeExists = errors.New("employee code already exists")
	ErrAdminProtected     = errors.New("employee is linked to an admin account and cannot be deleted")
)
