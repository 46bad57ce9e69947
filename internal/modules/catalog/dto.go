package catalog

import "vehiclerental/internal/domain"

type VehicleTypeResponse struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Wheels int    `json:"wheels"`
}

type VehicleTypeSummary struct {
	Name   string `json:"name"`
	Wheels int    `json:"wheels"`
}

type VehicleResponse struct {
	ID          int64               `json:"id"`
	Model       string              `json:"model"`
	VehicleType *VehicleTypeSummary `json:"vehicleType,omitempty"`
}

func toVehicleTypeResponses(types []domain.VehicleType) []VehicleTypeResponse {
	out := make([]VehicleTypeResponse, 0, len(types))
	for _, t := range types {
		out = append(out, VehicleTypeResponse{ID: t.ID, Name: t.Name, Wheels: t.Wheels})
	}
	return out
}

func toVehicleResponses(vehicles []domain.Vehicle) []VehicleResponse {
	out := make([]VehicleResponse, 0, len(vehicles))
	for _, v := range vehicles {
		resp := VehicleResponse{ID: v.ID, Model: v.Model}
		if v.VehicleType != nil {
			resp.VehicleType = &VehicleTypeSummary{
				Name:   v.VehicleType.Name,
				Wheels: v.VehicleType.Wheels,
			}
		}
		out = append(out, resp)
	}
	return out
}
