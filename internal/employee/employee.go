package employee

// Employment status values stored in the status column.
const (
	StatusFullTime = "Full-Time"
	StatusPartTime = "Part-Time"
)

// Employee is both the domain model and the row shape for the employees
// table. Form-submitted fields are stored verbatim as text; the password is
// a bcrypt digest and never serialized.
type Employee struct {
	ID         int64  `json:"id" gorm:"primaryKey"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"-"`
	DOB        string `json:"dob" gorm:"column:dob"`
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
	Photo      string `json:"photo"`
	Project    string `json:"project"`
}

func (Employee) TableName() string {
	return "employees"
}
