package attendance

type CreateStatusRequest struct {
	Name           string  `json:"name" binding:"required,max=20"`
	Description    *string `json:"description" binding:"omitempty,max=100"`
	Category       string  `json:"category" binding:"required,oneof=late absence other"`
	IsDeduction    bool    `json:"is_deduction"`
	DeductionValue string  `json:"deduction_value" binding:"omitempty"`
	DeductionUnit  string  `json:"deduction_unit" binding:"omitempty,oneof=ratio fixed"`
}

type UpdateStatusRequest struct {
	Name           string  `json:"name" binding:"required,max=20"`
	Description    *string `json:"description" binding:"omitempty,max=100"`
	Category       string  `json:"category" binding:"required,oneof=late absence other"`
	IsDeduction    bool    `json:"is_deduction"`
	DeductionValue string  `json:"deduction_value" binding:"omitempty"`
	DeductionUnit  string  `json:"deduction_unit" binding:"omitempty,oneof=ratio fixed"`
}

type StatusResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Description    *string `json:"description,omitempty"`
	Category       string  `json:"category"`
	IsDeduction    bool    `json:"is_deduction"`
	DeductionValue string  `json:"deduction_value"`
	DeductionUnit  string  `json:"deduction_unit"`
}

type CreateRecordRequest struct {
	EmployeeID    string  `json:"employee_id" binding:"required,uuid"`
	Date          string  `json:"date" binding:"required"`
	StatusID      string  `json:"status_id" binding:"required,uuid"`
	OvertimeHours string  `json:"overtime_hours" binding:"omitempty"`
	Remarks       *string `json:"remarks" binding:"omitempty,max=255"`
}

type UpdateRecordRequest struct {
	StatusID      string  `json:"status_id" binding:"required,uuid"`
	OvertimeHours string  `json:"overtime_hours" binding:"omitempty"`
	Remarks       *string `json:"remarks" binding:"omitempty,max=255"`
}

type RecordResponse struct {
	ID            string          `json:"id"`
	EmployeeID    string          `json:"employee_id"`
	Date          string          `json:"date"`
	StatusID      string          `json:"status_id"`
	Status        *StatusResponse `json:"status,omitempty"`
	OvertimeHours string          `json:"overtime_hours"`
	Remarks       *string         `json:"remarks,omitempty"`
}
