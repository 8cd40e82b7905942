package employee

import (
	"io"
	"log/slog"

	"github.com/frahmantamala/employee-management/internal"
	"golang.org/x/crypto/bcrypt"
)

type RepositoryAPI interface {
	GetAll() ([]*Employee, error)
	GetByID(id int64) (*Employee, error)
	Create(e *Employee) error
	Update(e *Employee) error
	Delete(id int64) error
	CountAll() (int64, error)
	CountByStatus(status string) (int64, error)
}

// PasswordHasher hashes an employee's plaintext password before it is
// written to the store.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
}

// BcryptHasher is the production hasher, salted adaptive hashing with a
// fixed cost factor.
type BcryptHasher struct {
	Cost int
}

func NewBcryptHasher(cost int) BcryptHasher {
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	return BcryptHasher{Cost: cost}
}

func (h BcryptHasher) Hash(plaintext string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.Cost)
	if err != nil {
		return "", err
	}
	return string(digest), nil
}

type Service struct {
	repo   RepositoryAPI
	hasher PasswordHasher
	photos PhotoStore
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, hasher PasswordHasher, photos PhotoStore, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		photos: photos,
		logger: logger,
	}
}

func (s *Service) GetAll() ([]*Employee, error) {
	employees, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to get employees from repository", "error", err)
		return nil, err
	}
	if employees == nil {
		employees = []*Employee{}
	}
	return employees, nil
}

// GetByID returns nil without error when no row matches; the handler
// serializes that as a success with an empty result set.
func (s *Service) GetByID(id int64) (*Employee, error) {
	e, err := s.repo.GetByID(id)
	if err != nil {
		s.logger.Error("failed to get employee from repository", "id", id, "error", err)
		return nil, err
	}
	return e, nil
}

// Create hashes the password, stores the photo, then inserts the row. A
// hashing fault aborts before anything is written.
func (s *Service) Create(dto CreateEmployeeDTO, photo io.Reader, photoName string) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	digest, err := s.hasher.Hash(dto.Password)
	if err != nil {
		s.logger.Error("password hashing failed", "error", err)
		return internal.NewHashingError("Error in hashing password", err)
	}

	filename, err := s.photos.Save(photo, photoName)
	if err != nil {
		s.logger.Error("failed to store photo", "error", err)
		return err
	}

	e := &Employee{
		Name:       dto.Name,
		Email:      dto.Email,
		Password:   digest,
		DOB:        dto.DOB,
		Phone:      dto.Phone,
		Address:    dto.Address,
		City:       dto.City,
		State:      dto.State,
		Zip:        dto.Zip,
		Job:        dto.Job,
		Department: dto.Department,
		Manager:    dto.Manager,
		Salary:     dto.Salary,
		Status:     dto.Status,
		Photo:      filename,
		Project:    dto.Project,
	}

	if err := s.repo.Create(e); err != nil {
		s.logger.Error("failed to insert employee", "error", err)
		return err
	}

	s.logger.Info("employee created", "email", e.Email)
	return nil
}

// Update replaces every updatable column of the row. Updating a missing id
// succeeds with zero rows affected.
func (s *Service) Update(id int64, dto UpdateEmployeeDTO) error {
	if err := dto.Validate(); err != nil {
		return err
	}

	e := &Employee{
		ID:         id,
		Name:       dto.Name,
		Email:      dto.Email,
		DOB:        dto.DOB,
		Phone:      dto.Phone,
		Address:    dto.Address,
		City:       dto.City,
		State:      dto.State,
		Zip:        dto.Zip,
		Job:        dto.Job,
		Department: dto.Department,
		Manager:    dto.Manager,
		Salary:     dto.Salary,
		Status:     dto.Status,
		Project:    dto.Project,
	}

	if err := s.repo.Update(e); err != nil {
		s.logger.Error("failed to update employee", "id", id, "error", err)
		return err
	}
	return nil
}

// Delete removes at most one row and is idempotent.
func (s *Service) Delete(id int64) error {
	if err := s.repo.Delete(id); err != nil {
		s.logger.Error("failed to delete employee", "id", id, "error", err)
		return err
	}
	return nil
}

func (s *Service) CountAll() (int64, error) {
	return s.repo.CountAll()
}

func (s *Service) CountFullTime() (int64, error) {
	return s.repo.CountByStatus(StatusFullTime)
}

func (s *Service) CountPartTime() (int64, error) {
	return s.repo.CountByStatus(StatusPartTime)
}
