package events

type Status string

const (
	StatusDraft     Status = "DRAFT"
	StatusApproved  Status = "APPROVED"
	StatusRejected  Status = "REJECTED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusDraft, StatusApproved, StatusRejected, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

func (s Status) String() string {
	return string(s)
}
