package domain

// VehicleType is reference data created at seed time and never mutated
// by the booking engine. Wheels is either 2 or 4.
type VehicleType struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Wheels int    `json:"wheels"`
}

// Vehicle belongs to exactly one VehicleType.
type Vehicle struct {
	ID            int64        `json:"id"`
	Model         string       `json:"model"`
	VehicleTypeID int64        `json:"vehicle_type_id"`
	VehicleType   *VehicleType `json:"vehicle_type,omitempty"`
}
