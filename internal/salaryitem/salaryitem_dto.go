package salaryitem

type CreateSalaryItemRequest struct {
	Name         string `json:"name" binding:"required,max=50"`
	Kind         string `json:"kind" binding:"required,oneof=addition deduction"`
	Bucket       string `json:"bucket" binding:"required,max=30"`
	IsPercentage bool   `json:"is_percentage"`
}

type UpdateSalaryItemRequest struct {
	Name         string `json:"name" binding:"required,max=50"`
	Kind         string `json:"kind" binding:"required,oneof=addition deduction"`
	Bucket       string `json:"bucket" binding:"required,max=30"`
	IsPercentage bool   `json:"is_percentage"`
}

type SalaryItemResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Kind         string `json:"kind"`
	Bucket       string `json:"bucket"`
	IsPercentage bool   `json:"is_percentage"`
	IsSystem     bool   `json:"is_system"`
}
