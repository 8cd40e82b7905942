package postgres

import (
	"github.com/frahmantamala/employee-management/internal/project"
	"gorm.io/gorm"
)

// ProjectRepository implements project.RepositoryAPI using GORM
type ProjectRepository struct {
	db *gorm.DB
}

func NewProjectRepository(db *gorm.DB) project.RepositoryAPI {
	return &ProjectRepository{db: db}
}

func (r *ProjectRepository) GetAll() ([]*project.Project, error) {
	var projects []*project.Project
	err := r.db.Find(&projects).Error
	return projects, err
}

func (r *ProjectRepository) GetByID(id int64) (*project.Project, error) {
	var p project.Project
	err := r.db.Where("id = ?", id).First(&p).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) Create(p *project.Project) error {
	return r.db.Create(p).Error
}

func (r *ProjectRepository) Update(p *project.Project) error {
	return r.db.Model(&project.Project{}).
		Where("id = ?", p.ID).
		Updates(map[string]interface{}{
			"name":   p.Name,
			"desc":   p.Desc,
			"status": p.Status,
		}).Error
}

func (r *ProjectRepository) Delete(id int64) error {
	return r.db.Delete(&project.Project{}, id).Error
}

func (r *ProjectRepository) CountAll() (int64, error) {
	var n int64
	err := r.db.Model(&project.Project{}).Count(&n).Error
	return n, err
}

func (r *ProjectRepository) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.db.Model(&project.Project{}).Where("status = ?", status).Count(&n).Error
	return n, err
}
