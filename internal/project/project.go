package project

// Project status values stored in the status column.
const (
	StatusInProgress = "In Progress"
	StatusToDo       = "To Do"
)

// Project is both the domain model and the row shape for the projects
// table. The description column is named desc to match the existing schema.
type Project struct {
	ID     int64  `json:"id" gorm:"primaryKey"`
	Name   string `json:"name"`
	Desc   string `json:"desc" gorm:"column:desc"`
	Status string `json:"status"`
}

func (Project) TableName() string {
	return "projects"
}
