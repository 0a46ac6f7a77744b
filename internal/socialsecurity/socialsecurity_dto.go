package socialsecurity

type CreateConfigRequest struct {
	Name             string `json:"name" binding:"required,max=50"`
	PensionRate      string `json:"pension_rate" binding:"required"`
	MedicalRate      string `json:"medical_rate" binding:"required"`
	UnemploymentRate string `json:"unemployment_rate" binding:"required"`
	InjuryRate       string `json:"injury_rate" binding:"required"`
	MaternityRate    string `json:"maternity_rate" binding:"required"`
	HousingFundRate  string `json:"housing_fund_rate" binding:"required"`
	IsDefault        bool   `json:"is_default"`
}

type UpdateConfigRequest struct {
	Name             string `json:"name" binding:"required,max=50"`
	PensionRate      string `json:"pension_rate" binding:"required"`
	MedicalRate      string `json:"medical_rate" binding:"required"`
	UnemploymentRate string `json:"unemployment_rate" binding:"required"`
	InjuryRate       string `json:"injury_rate" binding:"required"`
	MaternityRate    string `json:"maternity_rate" binding:"required"`
	HousingFundRate  string `json:"housing_fund_rate" binding:"required"`
	IsDefault        bool   `json:"is_default"`
}

type ConfigResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	PensionRate      string `json:"pension_rate"`
	MedicalRate      string `json:"medical_rate"`
	UnemploymentRate string `json:"unemployment_rate"`
	InjuryRate       string `json:"injury_rate"`
	MaternityRate    string `json:"maternity_rate"`
	HousingFundRate  string `json:"housing_fund_rate"`
	IsDefault        bool   `json:"is_default"`
}

type SetDefaultResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type CreateEnrollmentRequest struct {
	EmployeeID      string `json:"employee_id" binding:"required,uuid"`
	ConfigID        string `json:"config_id" binding:"required,uuid"`
	BaseNumber      string `json:"base_number" binding:"required"`
	HousingFundBase string `json:"housing_fund_base" binding:"required"`
	EffectiveDate   string `json:"effective_date" binding:"required"`
}

type UpdateEnrollmentRequest struct {
	ConfigID        string `json:"config_id" binding:"required,uuid"`
	BaseNumber      string `json:"base_number" binding:"required"`
	HousingFundBase string `json:"housing_fund_base" binding:"required"`
	EffectiveDate   string `json:"effective_date" binding:"required"`
}

type BatchCreateEnrollmentRequest struct {
	EmployeeIDs     []string `json:"employee_ids" binding:"required,min=1,dive,uuid"`
	ConfigID        string   `json:"config_id" binding:"required,uuid"`
	BaseNumber      string   `json:"base_number" binding:"required"`
	HousingFundBase string   `json:"housing_fund_base" binding:"required"`
	EffectiveDate   string   `json:"effective_date" binding:"required"`
}

type EnrollmentEmployee struct {
	ID             string `json:"id"`
	FullName       string `json:"full_name"`
	EmployeeNumber string `json:"employee_number"`
}

type EnrollmentResponse struct {
	ID              string              `json:"id"`
	EmployeeID      string              `json:"employee_id"`
	Employee        *EnrollmentEmployee `json:"employee,omitempty"`
	ConfigID        string              `json:"config_id"`
	Config          *ConfigResponse     `json:"config,omitempty"`
	BaseNumber      string              `json:"base_number"`
	HousingFundBase string              `json:"housing_fund_base"`
	EffectiveDate   string              `json:"effective_date"`
}
