package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"simplecrm/internal/models"
)

type UserRepository interface {
	// CreateOrganizer создаёт пользователя-организатора и его организацию
	// одной транзакцией.
	CreateOrganizer(user *models.User) (*models.Organization, error)
	GetByEmail(email string) (*models.User, error)
	GetByID(id int) (*models.User, error)
}

type userRepository struct {
	DB *sql.DB
}

func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{DB: db}
}

func (r *userRepository) CreateOrganizer(user *models.User) (*models.Organization, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	user.IsOrganizer = true

	const insertUser = `
		INSERT INTO users (email, first_name, last_name, password_hash, is_organizer, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	if err := tx.QueryRow(insertUser,
		user.Email,
		user.FirstName,
		user.LastName,
		user.PasswordHash,
		user.IsOrganizer,
		user.CreatedAt,
	).Scan(&user.ID); err != nil {
		return nil, fmt.Errorf("insert user: %w", err)
	}

	org := &models.Organization{UserID: user.ID, CreatedAt: user.CreatedAt}
	const insertOrg = `
		INSERT INTO organizations (user_id, created_at)
		VALUES ($1, $2)
		RETURNING id
	`
	if err := tx.QueryRow(insertOrg, org.UserID, org.CreatedAt).Scan(&org.ID); err != nil {
		return nil, fmt.Errorf("insert organization: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return org, nil
}

func (r *userRepository) GetByEmail(email string) (*models.User, error) {
	const q = `
		SELECT id, email, first_name, last_name, password_hash, is_organizer, created_at
		FROM users
		WHERE email = $1
	`
	u := &models.User{}
	err := r.DB.QueryRow(q, email).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.IsOrganizer, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (r *userRepository) GetByID(id int) (*models.User, error) {
	const q = `
		SELECT id, email, first_name, last_name, password_hash, is_organizer, created_at
		FROM users
		WHERE id = $1
	`
	u := &models.User{}
	err := r.DB.QueryRow(q, id).Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName, &u.PasswordHash, &u.IsOrganizer, &u.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
