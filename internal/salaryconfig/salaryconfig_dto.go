package salaryconfig

type ConfigEntryRequest struct {
	ItemID        string  `json:"item_id" binding:"required,uuid"`
	Value         string  `json:"value" binding:"required"`
	BaseItem      *string `json:"base_item" binding:"omitempty,max=50"`
	EffectiveDate string  `json:"effective_date" binding:"omitempty"`
	ExpiryDate    *string `json:"expiry_date" binding:"omitempty"`
}

type PutConfigRequest struct {
	Entries []ConfigEntryRequest `json:"entries" binding:"required,min=1,dive"`
}

type ConfigEntryResponse struct {
	ID            string  `json:"id"`
	ItemID        string  `json:"item_id"`
	ItemName      string  `json:"item_name,omitempty"`
	Bucket        string  `json:"bucket,omitempty"`
	IsPercentage  bool    `json:"is_percentage"`
	Value         string  `json:"value"`
	BaseItem      *string `json:"base_item,omitempty"`
	IsActive      bool    `json:"is_active"`
	EffectiveDate string  `json:"effective_date"`
	ExpiryDate    *string `json:"expiry_date,omitempty"`
}

type ResolvedConfigResponse struct {
	Source  string                `json:"source"`
	Entries []ConfigEntryResponse `json:"entries"`
}
