package entities

import "time"

// Lead is a captured visitor contact from the lead-capture step, persisted for
// the admin review list. Leads are independent of orders.

type Lead struct {
	ID         string     `json:"id"`
	Name       string     `json:"name"`
	Email      string     `json:"email"`
	Phone      string     `json:"phone"`
	Date       time.Time  `json:"date"`
	Origin     string     `json:"origin"`
	DeviceInfo string     `json:"device_info"`
	SearchType SearchType `json:"search_type_of_interest"`
}
