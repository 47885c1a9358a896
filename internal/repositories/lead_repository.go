package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"simplecrm/internal/authz"
	"simplecrm/internal/models"
)

type LeadRepository interface {
	Create(lead *models.Lead) error
	GetScoped(id int, scope authz.LeadScope) (*models.Lead, error)
	ListScoped(scope authz.LeadScope, limit, offset int) ([]*models.Lead, error)
	Update(lead *models.Lead) error
	Delete(id int) error
	SetAgent(id int, agentID *int) error
	SetCategory(id int, categoryID *int) error

	// отчётность
	CountByOrg(orgID int) (int, error)
	CountAssigned(orgID int, assigned bool) (int, error)
	CountWithoutCategory(orgID int) (int, error)
	CountPerCategory(orgID int) ([]models.CategoryCount, error)
}

type leadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) LeadRepository {
	return &leadRepository{DB: db}
}

const leadColumns = `
	id, first_name, last_name, age, email, phone_number, description,
	organization_id, agent_id, category_id, created_at
`

func scanLead(row interface{ Scan(...interface{}) error }) (*models.Lead, error) {
	l := &models.Lead{}
	var agentID, categoryID sql.NullInt64
	err := row.Scan(
		&l.ID, &l.FirstName, &l.LastName, &l.Age, &l.Email, &l.PhoneNumber, &l.Description,
		&l.OrganizationID, &agentID, &categoryID, &l.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if agentID.Valid {
		v := int(agentID.Int64)
		l.AgentID = &v
	}
	if categoryID.Valid {
		v := int(categoryID.Int64)
		l.CategoryID = &v
	}
	return l, nil
}

// scopeWhere превращает предикат видимости в WHERE-условия.
func scopeWhere(scope authz.LeadScope, startArg int) (string, []interface{}) {
	where := fmt.Sprintf(" AND organization_id = $%d", startArg)
	args := []interface{}{scope.OrgID}
	i := startArg + 1

	if scope.AgentUserID > 0 {
		where += fmt.Sprintf(" AND agent_id IN (SELECT id FROM agents WHERE user_id = $%d)", i)
		args = append(args, scope.AgentUserID)
		i++
	}
	if scope.Assigned != nil {
		if *scope.Assigned {
			where += " AND agent_id IS NOT NULL"
		} else {
			where += " AND agent_id IS NULL"
		}
	}
	return where, args
}

func (r *leadRepository) Create(lead *models.Lead) error {
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = time.Now()
	}
	const q = `
		INSERT INTO leads (first_name, last_name, age, email, phone_number, description,
			organization_id, agent_id, category_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRow(q,
		lead.FirstName, lead.LastName, lead.Age, lead.Email, lead.PhoneNumber, lead.Description,
		lead.OrganizationID, lead.AgentID, lead.CategoryID, lead.CreatedAt,
	).Scan(&lead.ID)
}

func (r *leadRepository) GetScoped(id int, scope authz.LeadScope) (*models.Lead, error) {
	where, scopeArgs := scopeWhere(scope, 2)
	q := `SELECT ` + leadColumns + ` FROM leads WHERE id = $1` + where
	args := append([]interface{}{id}, scopeArgs...)

	lead, err := scanLead(r.DB.QueryRow(q, args...))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return lead, nil
}

func (r *leadRepository) ListScoped(scope authz.LeadScope, limit, offset int) ([]*models.Lead, error) {
	where, args := scopeWhere(scope, 1)
	q := `SELECT ` + leadColumns + ` FROM leads WHERE 1=1` + where
	q += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, offset)

	rows, err := r.DB.Query(q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Lead
	for rows.Next() {
		lead, err := scanLead(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, lead)
	}
	return out, rows.Err()
}

// Update пишет только изменяемые поля: organization_id и created_at
// не входят в UPDATE никогда.
func (r *leadRepository) Update(lead *models.Lead) error {
	const q = `
		UPDATE leads
		SET first_name = $1, last_name = $2, age = $3, email = $4,
			phone_number = $5, description = $6
		WHERE id = $7
	`
	_, err := r.DB.Exec(q,
		lead.FirstName, lead.LastName, lead.Age, lead.Email,
		lead.PhoneNumber, lead.Description, lead.ID,
	)
	return err
}

func (r *leadRepository) Delete(id int) error {
	const q = `DELETE FROM leads WHERE id = $1`
	_, err := r.DB.Exec(q, id)
	return err
}

func (r *leadRepository) SetAgent(id int, agentID *int) error {
	const q = `UPDATE leads SET agent_id = $1 WHERE id = $2`
	_, err := r.DB.Exec(q, agentID, id)
	return err
}

func (r *leadRepository) SetCategory(id int, categoryID *int) error {
	const q = `UPDATE leads SET category_id = $1 WHERE id = $2`
	_, err := r.DB.Exec(q, categoryID, id)
	return err
}

func (r *leadRepository) CountByOrg(orgID int) (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM leads WHERE organization_id = $1`, orgID).Scan(&count)
	return count, err
}

func (r *leadRepository) CountAssigned(orgID int, assigned bool) (int, error) {
	q := `SELECT COUNT(*) FROM leads WHERE organization_id = $1 AND agent_id IS NOT NULL`
	if !assigned {
		q = `SELECT COUNT(*) FROM leads WHERE organization_id = $1 AND agent_id IS NULL`
	}
	var count int
	err := r.DB.QueryRow(q, orgID).Scan(&count)
	return count, err
}

func (r *leadRepository) CountWithoutCategory(orgID int) (int, error) {
	var count int
	err := r.DB.QueryRow(
		`SELECT COUNT(*) FROM leads WHERE organization_id = $1 AND category_id IS NULL`, orgID,
	).Scan(&count)
	return count, err
}

func (r *leadRepository) CountPerCategory(orgID int) ([]models.CategoryCount, error) {
	const q = `
		SELECT c.id, c.name, COUNT(l.id)
		FROM categories c
		LEFT JOIN leads l ON l.category_id = c.id
		WHERE c.organization_id = $1
		GROUP BY c.id, c.name
		ORDER BY c.name
	`
	rows, err := r.DB.Query(q, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.CategoryCount
	for rows.Next() {
		var cc models.CategoryCount
		if err := rows.Scan(&cc.CategoryID, &cc.Name, &cc.Leads); err != nil {
			return nil, err
		}
		out = append(out, cc)
	}
	return out, rows.Err()
}
