package auth

import (
	"database/sql"

	"gorm.io/gorm"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// FindIDByCredentials matches email and password directly against the users
// table and returns the first matching row's id.
func (r *Repository) FindIDByCredentials(email, password string) (int64, bool, error) {
	var userID int64
	query := `SELECT id FROM users WHERE email = ? AND password = ?`

	row := r.db.Raw(query, email, password).Row()
	if err := row.Scan(&userID); err != nil {
		if err == sql.ErrNoRows {
			return 0, false, nil
		}
		return 0, false, err
	}
	return userID, true, nil
}
