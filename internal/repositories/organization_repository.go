package repositories

import (
	"database/sql"

	"simplecrm/internal/models"
)

type OrganizationRepository interface {
	GetByOwner(userID int) (*models.Organization, error)
}

type organizationRepository struct {
	DB *sql.DB
}

func NewOrganizationRepository(db *sql.DB) OrganizationRepository {
	return &organizationRepository{DB: db}
}

func (r *organizationRepository) GetByOwner(userID int) (*models.Organization, error) {
	const q = `SELECT id, user_id, created_at FROM organizations WHERE user_id = $1`
	org := &models.Organization{}
	err := r.DB.QueryRow(q, userID).Scan(&org.ID, &org.UserID, &org.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return org, nil
}
