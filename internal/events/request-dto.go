package events

import "time"

type TicketTypeRequest struct {
	Name     string `json:"name" binding:"required,min=1,max=100"`
	Price    int64  `json:"price" binding:"required,min=0"`
	Quantity int    `json:"quantity" binding:"required,min=1,max=100000"`
}

type CreateEventRequest struct {
	Title       string              `json:"title" binding:"required,min=3,max=255"`
	Description string              `json:"description" binding:"max=2000"`
	Location    string              `json:"location" binding:"max=255"`
	Date        time.Time           `json:"date" binding:"required"`
	TicketTypes []TicketTypeRequest `json:"ticket_types" binding:"required,min=1,max=20,dive"`
}

type UpdateEventStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=DRAFT APPROVED REJECTED CANCELLED COMPLETED"`
}

type EventListQuery struct {
	Page   int    `form:"page" binding:"omitempty,min=1"`
	Limit  int    `form:"limit" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=DRAFT APPROVED REJECTED CANCELLED COMPLETED"`
}
