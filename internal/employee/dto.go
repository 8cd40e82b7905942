package employee

import (
	"net/http"

	"github.com/frahmantamala/employee-management/internal"
)

// CreateEmployeeDTO carries the multipart form fields of the signup-style
// create endpoint. The photo file travels separately.
type CreateEmployeeDTO struct {
	Name       string
	Email      string
	Password   string
	DOB        string
	Phone      string
	Address    string
	City       string
	State      string
	Zip        string
	Job        string
	Department string
	Manager    string
	Salary     string
	Status     string
	Project    string
}

// UpdateEmployeeDTO is the full replacement field set. Password and photo
// are not updatable through this endpoint.
type UpdateEmployeeDTO struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	DOB        string `json:"dob"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	Zip        string `json:"zip"`
	Job        string `json:"job"`
	Department string `json:"department"`
	Manager    string `json:"manager"`
	Salary     string `json:"salary"`
	Status     string `json:"status"`
	Project    string `json:"project"`
}

// CreateDTOFromForm reads the posted form values into the DTO.
func CreateDTOFromForm(r *http.Request) CreateEmployeeDTO {
	return CreateEmployeeDTO{
		Name:       r.FormValue("name"),
		Email:      r.FormValue("email"),
		Password:   r.FormValue("password"),
		DOB:        r.FormValue("dob"),
		Phone:      r.FormValue("phone"),
		Address:    r.FormValue("address"),
		City:       r.FormValue("city"),
		State:      r.FormValue("state"),
		Zip:        r.FormValue("zip"),
		Job:        r.FormValue("job"),
		Department: r.FormValue("department"),
		Manager:    r.FormValue("manager"),
		Salary:     r.FormValue("salary"),
		Status:     r.FormValue("status"),
		Project:    r.FormValue("project"),
	}
}

func (d CreateEmployeeDTO) Validate() error {
	if d.Name == "" {
		return internal.NewValidationError("name is required")
	}
	if d.Email == "" {
		return internal.NewValidationError("email is required")
	}
	if d.Password == "" {
		return internal.NewValidationError("password is required")
	}
	return nil
}

func (d UpdateEmployeeDTO) Validate() error {
	if d.Name == "" {
		return internal.NewValidationError("name is required")
	}
	if d.Email == "" {
		return internal.NewValidationError("email is required")
	}
	return nil
}
