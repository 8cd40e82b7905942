package ticket

import (
	"log/slog"
)

type RepositoryAPI interface {
	GetAll() ([]*Ticket, error)
	GetByID(id int64) (*Ticket, error)
	Create(t *Ticket) error
	Update(t *Ticket) error
	Delete(id int64) error
	CountAll() (int64, error)
	CountByStatus(status string) (int64, error)
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAll() ([]*Ticket, error) {
	tickets, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get tickets from repository", "error", err)
		return nil, err
	}
	if tickets == nil {
		tickets = []*Ticket{}
	}
	return tickets, nil
}

// GetByID returns nil without error when no row matches.
func (s *Service) GetByID(id int64) (*Ticket, error) {
	t, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get ticket from repository", "id", id, "error", err)
		return nil, err
	}
	return t, nil
}

func (s *Service) Create(dto TicketDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	t := &Ticket{
		Title:    dto.Title,
		Desc:     dto.Desc,
		Priority: dto.Priority,
		Status:   dto.Status,
		Assignee: dto.Assignee,
	}

	if err := s.repo.Create(t); err != nil {
		s.logger.Error("failed to insert ticket", "error", err)
		return err
	}

	s.logger.Info("ticket created", "title", t.Title)
	return nil
}

func (s *Service) Update(id int64, dto TicketDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	t := &Ticket{
		ID:       id,
		Title:    dto.Title,
		Desc:     dto.Desc,
		Priority: dto.Priority,
		Status:   dto.Status,
		Assignee: dto.Assignee,
	}

	if err := s.repo.Update(t); err != nil {
		s.logger.Error("failed to update ticket", "id", id, "error", err)
		return err
	}
	return nil
}

func (s *Service) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete ticket", "id", id, "error", err)
		return err
	}
	return nil
}

func (s *Service) CountAll() (int64, error) {
	return s.repo.CountAll()
}

func (s *Service) CountOpen() (int64, error) {
	return s.repo.CountByStatus(StatusOpen)
}

func (s *Service) CountClosed() (int64, error) {
	return s.repo.CountByStatus(StatusClose)
}
