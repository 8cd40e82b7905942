package postgres

import (
	"github.com/frahmantamala/employee-management/internal/ticket"
	"gorm.io/gorm"
)

// TicketRepository implements ticket.RepositoryAPI using GORM
type TicketRepository struct {
	db *gorm.DB
}

func NewTicketRepository(db *gorm.DB) ticket.RepositoryAPI {
	return &TicketRepository{db: db}
}

func (r *TicketRepository) GetAll() ([]*ticket.Ticket, error) {
	var tickets []*ticket.Ticket
	err := r.db.Find(&tickets).Error
	return tickets, err
}

func (r *TicketRepository) GetByID(id int64) (*ticket.Ticket, error) {
	var t ticket.Ticket
	err := r.db.Where("id = ?", id).First(&t).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *TicketRepository) Create(t *ticket.Ticket) error {
	return r.db.Create(t).Error
}

func (r *TicketRepository) Update(t *ticket.Ticket) error {
	return r.db.Model(&ticket.Ticket{}).
		Where("id = ?", t.ID).
		Updates(map[string]interface{}{
			"title":    t.Title,
			"desc":     t.Desc,
			"priority": t.Priority,
			"status":   t.Status,
			"assignee": t.Assignee,
		}).Error
}

func (r *TicketRepository) Delete(id int64) error {
	return r.db.Delete(&ticket.Ticket{}, id).Error
}

func (r *TicketRepository) CountAll() (int64, error) {
	var n int64
	err := r.db.Model(&ticket.Ticket{}).Count(&n).Error
	return n, err
}

func (r *TicketRepository) CountByStatus(status string) (int64, error) {
	var n int64
	err := r.db.Model(&ticket.Ticket{}).Where("status = ?", status).Count(&n).Error
	return n, err
}
