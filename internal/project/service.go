package project

import (
	"log/slog"
)

type RepositoryAPI interface {
	GetAll() ([]*Project, error)
	GetByID(id int64) (*Project, error)
	Create(p *Project) error
	Update(p *Project) error
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

func (s *Service) GetAll() ([]*Project, error) {
	projects, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get projects from repository", "error", err)
		return nil, err
	}
	if projects == nil {
		projects = []*Project{}
	}
	return projects, nil
}

// GetByID returns nil without error when no row matches.
func (s *Service) GetByID(id int64) (*Project, error) {
	p, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get project from repository", "id", id, "error", err)
		return nil, err
	}
	return p, nil
}

func (s *Service) Create(dto ProjectDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	p := &Project{
		Name:   dto.Name,
		Desc:   dto.Desc,
		Status: dto.Status,
	}

	if err := s.repo.Create(p); err != nil {
		s.logger.Error("failed to insert project", "error", err)
		return err
	}

	s.logger.Info("project created", "name", p.Name)
	return nil
}

func (s *Service) Update(id int64, dto ProjectDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	p := &Project{
		ID:     id,
		Name:   dto.Name,
		Desc:   dto.Desc,
		Status: dto.Status,
	}

	if err := s.repo.Update(p); err != nil {
		s.logger.Error("failed to update project", "id", id, "error", err)
		return err
	}
	return nil
}

func (s *Service) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete project", "id", id, "error", err)
		return err
	}
	return nil
}

func (s *Service) CountAll() (int64, error) {
	return s.repo.CountAll()
}

func (s *Service) CountInProgress() (int64, error) {
	return s.repo.CountByStatus(StatusInProgress)
}

func (s *Service) CountToDo() (int64, error) {
	return s.repo.CountByStatus(StatusToDo)
}
