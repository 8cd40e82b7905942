package postgres

import (
	"github.com/frahmantamala/employee-management/internal/employee"
	"gorm.io/gorm"
)

// EmployeeRepository implements employee.RepositoryAPI using GORM
type EmployeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) employee.RepositoryAPI {
	return &EmployeeRepository{db: db}
}

func (r *EmployeeRepository) GetAll() ([]*employee.Employee, error) {
	var employees []*employee.Employee
	err := r.db.Find(&employees).Error
	return employees, err
}

func (r *EmployeeRepository) GetByID(id int64) (*employee.Employee, error) {
	var e employee.Employee
	err := r.db.Where("id = ?", id).First(&e).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &e, nil
}

func (r *EmployeeRepository) Create(e *employee.Employee) error {
	return r.db.Create(e).Error
}

// Update overwrites every updatable column; a missing id affects zero rows
// and is not an error.
func (r *EmployeeRepository) Update(e *employee.Employee) error {
	return r.db.Model(&employee.Employee{}).
		Where("id = ?", e.ID).
		Updates(map[string]interface{}{
			"name":       e.Name,
			"email":      e.Email,
			"dob":        e.DOB,
			"phone":      e.Phone,
			"address":    e.Address,
			"city":       e.City,
			"state":      e.State,
			"zip":        e.Zip,
			"job":        e.Job,
			"department": e.Department,
			"manager":    e.Manager,
			"salary":     e.Salary,
			"status":     e.Status,
			"project":    e.Project,
		}).Error
}

func (r *EmployeeRepository) Delete(id int64) error {
	return r.db.Delete(&employee.Employee{}, id).Error
}

func (r *EmployeeRepository) CountAll() (int64, error) {
	var n int64
	err := r.db.Model(&employee.Employee{}).Count(&n).Error
	return n, err
}

func (r *EmployeeRepository) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.db.Model(&employee.Employee{}).Where("status = ?", status).Count(&n).Error
	return n, err
}
