package salary

type GenerateRequest struct {
	Year         int      `json:"year" binding:"required,min=2000,max=2100"`
	Month        int      `json:"month" binding:"required,min=1,max=12"`
	DepartmentID *string  `json:"department_id" binding:"omitempty,uuid"`
	EmployeeIDs  []string `json:"employee_ids" binding:"omitempty,dive,uuid"`
}

type GenerateResult struct {
	GeneratedCount int      `json:"generated_count"`
	FailedCount    int      `json:"failed_count"`
	Errors         []string `json:"errors"`
}

type MarkPaidRequest struct {
	PaymentDate string `json:"payment_date" binding:"omitempty"`
}

type RecordResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	Year               int     `json:"year"`
	Month              int     `json:"month"`
	BaseSalary         string  `json:"base_salary"`
	OvertimePay        string  `json:"overtime_pay"`
	Bonus              string  `json:"bonus"`
	PerformanceBonus   string  `json:"performance_bonus"`
	AttendanceBonus    string  `json:"attendance_bonus"`
	TransportAllowance string  `json:"transport_allowance"`
	MealAllowance      string  `json:"meal_allowance"`
	Deduction          string  `json:"deduction"`
	SocialSecurity     string  `json:"social_security"`
	PersonalTax        string  `json:"personal_tax"`
	LateDeduction      string  `json:"late_deduction"`
	AbsenceDeduction   string  `json:"absence_deduction"`
	NetSalary          string  `json:"net_salary"`
	Status             string  `json:"status"`
	PaymentDate        *string `json:"payment_date,omitempty"`
}

type DetailResponse struct {
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name,omitempty"`
	Kind     string `json:"kind,omitempty"`
	Amount   string `json:"amount"`
}

type RecordDetailResponse struct {
	RecordResponse
	IncomeItems    []DetailResponse `json:"income_items"`
	DeductionItems []DetailResponse `json:"deduction_items"`
}
