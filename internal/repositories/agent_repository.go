package repositories

import (
	"database/sql"
	"fmt"
	"time"

	"simplecrm/internal/models"
)

type AgentRepository interface {
	// CreateWithUser создаёт пользователя-агента и запись агента одной
	// транзакцией: либо оба, либо никто.
	CreateWithUser(user *models.User, orgID int) (*models.Agent, error)
	GetByUserID(userID int) (*models.Agent, error)
	GetByIDInOrg(id, orgID int) (*models.Agent, error)
	ListByOrg(orgID int) ([]*models.Agent, error)
	UpdateInOrg(agent *models.Agent) (bool, error)
	DeleteInOrg(id, orgID int) (bool, error)
	CountByOrg(orgID int) (int, error)
}

type agentRepository struct {
	DB *sql.DB
}

func NewAgentRepository(db *sql.DB) AgentRepository {
	return &agentRepository{DB: db}
}

const agentColumns = `
	a.id, a.user_id, a.organization_id, u.email, u.first_name, u.last_name, a.created_at
`

func scanAgent(row interface{ Scan(...interface{}) error }) (*models.Agent, error) {
	ag := &models.Agent{}
	err := row.Scan(&ag.ID, &ag.UserID, &ag.OrganizationID, &ag.Email, &ag.FirstName, &ag.LastName, &ag.CreatedAt)
	if err != nil {
		return nil, err
	}
	return ag, nil
}

func (r *agentRepository) CreateWithUser(user *models.User, orgID int) (*models.Agent, error) {
	tx, err := r.DB.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	user.IsOrganizer = false

	const insertUser = `
		INSERT INTO users (email, first_name, last_name, password_hash, is_organizer, created_at)
		VALUES ($1, $2, $3, $4, FALSE, $5)
		RETURNING id
	`
	if err := tx.QueryRow(insertUser,
		user.Email, user.FirstName, user.LastName, user.PasswordHash, user.CreatedAt,
	).Scan(&user.ID); err != nil {
		return nil, fmt.Errorf("insert agent user: %w", err)
	}

	ag := &models.Agent{
		UserID:         user.ID,
		OrganizationID: orgID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		CreatedAt:      user.CreatedAt,
	}
	const insertAgent = `
		INSERT INTO agents (user_id, organization_id, created_at)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	if err := tx.QueryRow(insertAgent, ag.UserID, ag.OrganizationID, ag.CreatedAt).Scan(&ag.ID); err != nil {
		return nil, fmt.Errorf("insert agent: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ag, nil
}

func (r *agentRepository) GetByUserID(userID int) (*models.Agent, error) {
	const q = `
		SELECT ` + agentColumns + `
		FROM agents a
		JOIN users u ON u.id = a.user_id
		WHERE a.user_id = $1
	`
	ag, err := scanAgent(r.DB.QueryRow(q, userID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ag, nil
}

func (r *agentRepository) GetByIDInOrg(id, orgID int) (*models.Agent, error) {
	const q = `
		SELECT ` + agentColumns + `
		FROM agents a
		JOIN users u ON u.id = a.user_id
		WHERE a.id = $1 AND a.organization_id = $2
	`
	ag, err := scanAgent(r.DB.QueryRow(q, id, orgID))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return ag, nil
}

func (r *agentRepository) ListByOrg(orgID int) ([]*models.Agent, error) {
	const q = `
		SELECT ` + agentColumns + `
		FROM agents a
		JOIN users u ON u.id = a.user_id
		WHERE a.organization_id = $1
		ORDER BY a.created_at DESC
	`
	rows, err := r.DB.Query(q, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*models.Agent
	for rows.Next() {
		ag, err := scanAgent(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, ag)
	}
	return out, rows.Err()
}

func (r *agentRepository) UpdateInOrg(agent *models.Agent) (bool, error) {
	// имя хранится на пользователе; организация и email не меняются
	const q = `
		UPDATE users u
		SET first_name = $1, last_name = $2
		FROM agents a
		WHERE a.user_id = u.id AND a.id = $3 AND a.organization_id = $4
	`
	res, err := r.DB.Exec(q, agent.FirstName, agent.LastName, agent.ID, agent.OrganizationID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *agentRepository) DeleteInOrg(id, orgID int) (bool, error) {
	// lead.agent_id обнуляется по FK ON DELETE SET NULL
	const q = `DELETE FROM agents WHERE id = $1 AND organization_id = $2`
	res, err := r.DB.Exec(q, id, orgID)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

func (r *agentRepository) CountByOrg(orgID int) (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM agents WHERE organization_id = $1`, orgID).Scan(&count)
	return count, err
}
