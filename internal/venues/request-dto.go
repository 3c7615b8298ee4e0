package venues

type CreateVenueRequest struct {
	Name        string `json:"name" binding:"required,min=3,max=255"`
	Description string `json:"description" binding:"max=2000"`
	Location    string `json:"location" binding:"max=255"`
	MinCapacity int    `json:"min_capacity" binding:"omitempty,min=0"`
	MaxCapacity int    `json:"max_capacity" binding:"required,min=1,max=100000"`
}

type UpdateVenueRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=3,max=255"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	Location    *string `json:"location" binding:"omitempty,max=255"`
	MinCapacity *int    `json:"min_capacity" binding:"omitempty,min=0"`
	MaxCapacity *int    `json:"max_capacity" binding:"omitempty,min=1,max=100000"`
	IsActive    *bool   `json:"is_active"`
}

type CreateRoomTypeRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=255"`
	Capacity      int    `json:"capacity" binding:"required,min=1,max=50"`
	TotalRooms    int    `json:"total_rooms" binding:"required,min=0,max=1000"`
	PricePerNight int64  `json:"price_per_night" binding:"required,min=0"`
}

type CreateRoomRequest struct {
	RoomNumber string `json:"room_number" binding:"required,min=1,max=32"`
	Status     string `json:"status" binding:"omitempty,oneof=AVAILABLE OCCUPIED MAINTENANCE RESERVED"`
}

type UpdateRoomStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=AVAILABLE OCCUPIED MAINTENANCE RESERVED"`
}

type VenueListQuery struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Search   string `form:"search"`
	Approval string `form:"approval" binding:"omitempty,oneof=PENDING APPROVED REJECTED"`
}
