package project

import "github.com/frahmantamala/employee-management/internal"

// ProjectDTO is the request body for create and update; update replaces
// every field.
type ProjectDTO struct {
	Name   string `json:"name"`
	Desc   string `json:"desc"`
	Status string `json:"status"`
}

func (d ProjectDTO) Validate() error {
	if d.Name == "" {
		return internal.NewValidationError("name is required")
	}
	return nil
}
