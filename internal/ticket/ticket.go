package ticket

// Ticket status values stored in the status column.
const (
	StatusOpen  = "Open"
	StatusClose = "Close"
)

// Ticket is both the domain model and the row shape for the tickets table.
type Ticket struct {
	ID       int64  `json:"id" gorm:"primaryKey"`
	Title    string `json:"title"`
	Desc     string `json:"desc" gorm:"column:desc"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
	Assignee string `json:"assignee"`
}

func (Ticket) TableName() string {
	return "tickets"
}
