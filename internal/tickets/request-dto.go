package tickets

type LineItem struct {
	TicketType     string `json:"ticket_type" binding:"required,min=1,max=100"`
	Quantity       int    `json:"quantity" binding:"required,min=1,max=50"`
	PricePerTicket int64  `json:"price_per_ticket" binding:"min=0"`
}

type ContactInfo struct {
	Name  string `json:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"omitempty,min=7,max=20"`
}

type PaymentInfo struct {
	Status string `json:"status" binding:"omitempty,oneof=PENDING COMPLETED FAILED REFUNDED"`
}

type PurchaseRequest struct {
	EventID     string      `json:"event_id" binding:"required,uuid"`
	Tickets     []LineItem  `json:"tickets" binding:"required,min=1,max=20,dive"`
	ContactInfo ContactInfo `json:"contact_info" binding:"required"`
	Payment     PaymentInfo `json:"payment"`
	TotalAmount int64       `json:"total_amount" binding:"min=0"`
	ServiceFee  int64       `json:"service_fee" binding:"min=0"`
}

type PurchaseListQuery struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}
