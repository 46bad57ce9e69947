package booking

import "vehiclerental/internal/domain"

type CreateBookingRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	VehicleID int64  `json:"vehicleId"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type AvailabilityResponse struct {
	Available bool   `json:"available"`
	Message   string `json:"message"`
}

type VehicleTypeInfo struct {
	Name string `json:"name"`
}

type VehicleInfo struct {
	Model       string           `json:"model"`
	VehicleType *VehicleTypeInfo `json:"vehicleType,omitempty"`
}

type BookingResponse struct {
	ID        int64        `json:"id"`
	FirstName string       `json:"firstName"`
	LastName  string       `json:"lastName"`
	StartDate string       `json:"startDate"`
	EndDate   string       `json:"endDate"`
	Vehicle   *VehicleInfo `json:"vehicle,omitempty"`
}

func toBookingResponse(b *domain.Booking) BookingResponse {
	resp := BookingResponse{
		ID:        b.ID,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		StartDate: b.StartDate.Format(dateLayout),
		EndDate:   b.EndDate.Format(dateLayout),
	}
	if b.Vehicle != nil {
		v := &VehicleInfo{Model: b.Vehicle.Model}
		if b.Vehicle.VehicleType != nil {
			v.VehicleType = &VehicleTypeInfo{Name: b.Vehicle.VehicleType.Name}
		}
		resp.Vehicle = v
	}
	return resp
}
