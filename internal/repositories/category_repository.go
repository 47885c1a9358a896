package repositories

import (
	"database/sql"

	"simplecrm/internal/models"
)

type CategoryRepository interface {
	Create(category *models.Category) error
	GetByIDInOrg(id, orgID int) (*models.Category, error)
	ListByOrg(orgID int) ([]*models.Category, error)
	UpdateInOrg(category *models.Category) (bool, error)
	DeleteInOrg(id, orgID int) (bool, error)
}

type categoryRepository struct {
	DB *sql.DB
}

func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{DB: db}
}

func (r *categoryRepository) Create(category *models.Category) error {
	const q = `
		INSERT INTO categories (name, organization_id)
		VALUES ($1, $2)
		RETURNING id
	`
	return r.DB.QueryRow(q, category.Name, category.OrganizationID).Scan(&category.ID)
}

func (r *categoryRepository) GetByIDInOrg(id, orgID int) (*models.Category, error) {
	const q = `SELECT id, name, organization_id FROM categories WHERE id = $1 AND organization_id = $2`
	cat := &models.Category{}
	err := r.DB.QueryRow(q, id, orgID).Scan(&cat.ID, &cat.Name, &cat.OrganizationID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return cat, nil
}

func (r *categoryRepository) ListByOrg(orgID int) ([]*models.Category, error) {
	const q = `SELECT id, name, organization_id FROM categories WHERE organization_id = $1 ORDER BY name`
	rows, err := r.DB.Query(q, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Category
	for rows.Next() {
		var cat models.Category
		if err := rows.Scan(&cat.ID, &cat.Name, &cat.OrganizationID); err != nil {
			return nil, err
		}
		out = append(out, &cat)
	}
	return out, rows.Err()
}

func (r *categoryRepository) UpdateInOrg(category *models.Category) (bool, error) {
	const q = `UPDATE categories SET name = $1 WHERE id = $2 AND organization_id = $3`
	res, err := r.DB.Exec(q, category.Name, category.ID, category.OrganizationID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *categoryRepository) DeleteInOrg(id, orgID int) (bool, error) {
	// lead.category_id обнуляется по FK ON DELETE SET NULL
	const q = `DELETE FROM categories WHERE id = $1 AND organization_id = $2`
	res, err := r.DB.Exec(q, id, orgID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
