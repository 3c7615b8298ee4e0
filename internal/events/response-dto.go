package events

import "time"

type TicketTypeResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int    `json:"quantity"`
	Available int    `json:"available"`
	Sold      int    `json:"sold"`
}

type EventResponse struct {
	ID          string               `json:"id"`
	Title       string               `json:"title"`
	Description string               `json:"description"`
	Location    string               `json:"location"`
	Date        time.Time            `json:"date"`
	Status      string               `json:"status"`
	IsActive    bool                 `json:"is_active"`
	TicketsSold int                  `json:"tickets_sold"`
	TicketTypes []TicketTypeResponse `json:"ticket_types,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

type PaginatedEvents struct {
	Events     []EventResponse `json:"events"`
	TotalCount int64           `json:"total_count"`
	Page       int             `json:"page"`
	Limit      int             `json:"limit"`
	TotalPages int             `json:"total_pages"`
}

func (t *TicketType) ToResponse() TicketTypeResponse {
	return TicketTypeResponse{
		ID:        t.ID.String(),
		Name:      t.Name,
		Price:     t.Price,
		Quantity:  t.Quantity,
		Available: t.Available,
		Sold:      t.Sold,
	}
}

func (e *Event) ToResponse() EventResponse {
	resp := EventResponse{
		ID:          e.ID.String(),
		Title:       e.Title,
		Description: e.Description,
		Location:    e.Location,
		Date:        e.Date,
		Status:      string(e.Status),
		IsActive:    e.IsActive,
		TicketsSold: e.TicketsSold,
		CreatedAt:   e.CreatedAt,
	}
	for i := range e.TicketTypes {
		resp.TicketTypes = append(resp.TicketTypes, e.TicketTypes[i].ToResponse())
	}
	return resp
}
