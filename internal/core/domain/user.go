package domain

import "time"

// Manager is a farm manager account. Managers self-register and own the
// employee records they provision.
type Manager struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name"`
	Contact      string    `json:"contact"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Employee is a farm employee account. Employees are always provisioned by a
// manager and keep a back-reference to that manager's account.
type Employee struct {
	ID           string    `json:"id"`
	EmployeeID   string    `json:"employee_id"`
	Name         string    `json:"name"`
	Gender       string    `json:"gender"`
	Contact      string    `json:"contact"`
	Salary       float64   `json:"salary"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	ManagerID    string    `json:"manager_id"`
	CreatedAt    time.Time `json:"created_at"`
}
