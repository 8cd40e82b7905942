package ticket

import "github.com/frahmantamala/employee-management/internal"

// TicketDTO is the request body for create and update; update replaces
// every field.
type TicketDTO struct {
	Title    string `json:"title"`
	Desc     string `json:"desc"`
	Priority string `json:"priority"`
	Status   string `json:"status"`
	Assignee string `json:"assignee"`
}

func (d TicketDTO) Validate() error {
	if d.Title == "" {
		return internal.NewValidationError("title is required")
	}
	return nil
}
