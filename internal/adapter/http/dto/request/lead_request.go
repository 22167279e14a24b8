package request

type LeadRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Origin     string `json:"origin"`
	DeviceInfo string `json:"device_info"`
	SearchType string `json:"search_type"`
}

func (r LeadRequest) ResolvePhone() string {
	return onlyDigits(r.Phone)
}
