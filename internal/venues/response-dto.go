package venues

import "time"

type VenueResponse struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Description    string             `json:"description"`
	Location       string             `json:"location"`
	MinCapacity    int                `json:"min_capacity"`
	MaxCapacity    int                `json:"max_capacity"`
	ApprovalStatus string             `json:"approval_status"`
	IsActive       bool               `json:"is_active"`
	RoomTypes      []RoomTypeResponse `json:"room_types,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

type RoomTypeResponse struct {
	ID            string `json:"id"`
	VenueID       string `json:"venue_id"`
	Name          string `json:"name"`
	Capacity      int    `json:"capacity"`
	TotalRooms    int    `json:"total_rooms"`
	PricePerNight int64  `json:"price_per_night"`
}

type RoomResponse struct {
	ID         string `json:"id"`
	RoomTypeID string `json:"room_type_id"`
	RoomNumber string `json:"room_number"`
	Status     string `json:"status"`
}

type PaginatedVenues struct {
	Venues     []VenueResponse `json:"venues"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

func (v *Venue) ToResponse() VenueResponse {
	resp := VenueResponse{
		ID:             v.ID.String(),
		Name:           v.Name,
		Description:    v.Description,
		Location:       v.Location,
		MinCapacity:    v.MinCapacity,
		MaxCapacity:    v.MaxCapacity,
		ApprovalStatus: string(v.ApprovalStatus),
		IsActive:       v.IsActive,
		CreatedAt:      v.CreatedAt,
	}
	for i := range v.RoomTypes {
		resp.RoomTypes = append(resp.RoomTypes, v.RoomTypes[i].ToResponse())
	}
	return resp
}

func (rt *RoomType) ToResponse() RoomTypeResponse {
	return RoomTypeResponse{
		ID:            rt.ID.String(),
		VenueID:       rt.VenueID.String(),
		Name:          rt.Name,
		Capacity:      rt.Capacity,
		TotalRooms:    rt.TotalRooms,
		PricePerNight: rt.PricePerNight,
	}
}

func (r *Room) ToResponse() RoomResponse {
	return RoomResponse{
		ID:         r.ID.String(),
		RoomTypeID: r.RoomTypeID.String(),
		RoomNumber: r.RoomNumber,
		Status:     string(r.Status),
	}
}
