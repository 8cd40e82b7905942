package auth

// UserRepository resolves login credentials against the users table. The
// lookup is a direct equality match on email and password; the users table
// stores plaintext while employee passwords are hashed at rest. The two
// credential models coexist in the schema contract and are kept as-is.
type UserRepository interface {
	FindIDByCredentials(email, password string) (userID int64, found bool, err error)
}

// Service is the main auth service with dependencies
type Service struct {
	userRepo       UserRepository
	tokenGenerator TokenGenerator
}

// NewService creates a new auth service
func NewService(userRepo UserRepository, tokenGen TokenGenerator) *Service {
	return &Service{
		userRepo:       userRepo,
		tokenGenerator: tokenGen,
	}
}

// Login validates credentials and returns a signed session token. When
// several rows match, the first match wins.
func (s *Service) Login(dto LoginDTO) (string, error) {
	if err := dto.Validate(); err != nil {
		return "", err
	}

	userID, found, err := s.userRepo.FindIDByCredentials(dto.Email, dto.Password)
	if err != nil {
		return "", err
	}
	if !found {
		return "", ErrInvalidCredentials
	}

	return s.tokenGenerator.GenerateToken(userID)
}

// ValidateToken validates a session token and returns its claims.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	return s.tokenGenerator.ValidateToken(tokenString)
}
