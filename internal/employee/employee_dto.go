package employee

type CreateEmployeeRequest struct {
	FullName       string  `json:"full_name" binding:"required,max=150"`
	Email          string  `json:"email" binding:"required,email"`
	EmployeeNumber string  `json:"employee_number" binding:"omitempty,max=20"`
	Phone          *string `json:"phone" binding:"omitempty,max=30"`
	HireDate       string  `json:"hire_date" binding:"required"`
	PositionID     string  `json:"position_id" binding:"required,uuid"`
	BaseSalary     string  `json:"base_salary" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FullName       string  `json:"full_name" binding:"required,max=150"`
	Email          string  `json:"email" binding:"required,email"`
	EmployeeNumber string  `json:"employee_number" binding:"required,max=20"`
	Phone          *string `json:"phone" binding:"omitempty,max=30"`
	HireDate       string  `json:"hire_date" binding:"required"`
	PositionID     string  `json:"position_id" binding:"required,uuid"`
	BaseSalary     string  `json:"base_salary" binding:"required"`
	IsActive       *bool   `json:"is_active" binding:"required"`
}

type EmployeeRefResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type EmployeeResponse struct {
	ID             string               `json:"id"`
	FullName       string               `json:"full_name"`
	Email          string               `json:"email"`
	EmployeeNumber string               `json:"employee_number"`
	Phone          *string              `json:"phone,omitempty"`
	HireDate       string               `json:"hire_date"`
	BaseSalary     string               `json:"base_salary"`
	IsActive       bool                 `json:"is_active"`
	DepartmentID   string               `json:"department_id,omitempty"`
	PositionID     string               `json:"position_id,omitempty"`
	Department     *EmployeeRefResponse `json:"department,omitempty"`
	Position       *EmployeeRefResponse `json:"position,omitempty"`
}
