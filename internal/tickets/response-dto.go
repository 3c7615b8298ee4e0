package tickets

import "time"

type TicketResponse struct {
	TicketNumber string `json:"ticket_number"`
	TicketType   string `json:"ticket_type"`
	Price        int64  `json:"price"`
}

type PurchaseResponse struct {
	TransactionID string           `json:"transaction_id"`
	EventID       string           `json:"event_id"`
	TicketCount   int              `json:"ticket_count"`
	ServiceFee    int64            `json:"service_fee"`
	TotalAmount   int64            `json:"total_amount"`
	PaymentStatus string           `json:"payment_status"`
	Tickets       []TicketResponse `json:"tickets"`
	CreatedAt     time.Time        `json:"created_at"`
}

type PaginatedPurchases struct {
	Purchases  []PurchaseResponse `json:"purchases"`
	TotalCount int64              `json:"total_count"`
	Limit      int                `json:"limit"`
	Offset     int                `json:"offset"`
}

func (t *Ticket) ToResponse() TicketResponse {
	return TicketResponse{
		TicketNumber: t.TicketNumber,
		TicketType:   t.TicketType,
		Price:        t.Price,
	}
}

func (p *TicketPurchase) ToResponse() PurchaseResponse {
	resp := PurchaseResponse{
		TransactionID: p.TransactionID,
		EventID:       p.EventID.String(),
		TicketCount:   p.TicketCount,
		ServiceFee:    p.ServiceFee,
		TotalAmount:   p.TotalAmount,
		PaymentStatus: string(p.PaymentStatus),
		CreatedAt:     p.CreatedAt,
	}
	for i := range p.Tickets {
		resp.Tickets = append(resp.Tickets, p.Tickets[i].ToResponse())
	}
	return resp
}
