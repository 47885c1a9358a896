package services

import (
	"log"
	"strings"

	"simplecrm/internal/authz"
	"simplecrm/internal/models"
	"simplecrm/internal/repositories"
	"simplecrm/internal/utils"
)

type AgentService struct {
	Repo         repositories.AgentRepository
	UserRepo     repositories.UserRepository
	AuthService  AuthService
	EmailService EmailService
}

func NewAgentService(
	repo repositories.AgentRepository,
	userRepo repositories.UserRepository,
	authService AuthService,
	emailService EmailService,
) *AgentService {
	return &AgentService{
		Repo:         repo,
		UserRepo:     userRepo,
		AuthService:  authService,
		EmailService: emailService,
	}
}

// Create заводит агента: пользователь + запись агента одной транзакцией.
// Пароль генерируется случайный числовой; в приглашение он не попадает —
// так делает и исходная система, вопрос доставки пароля открыт у продукта.
func (s *AgentService) Create(actor authz.Actor, req *models.CreateAgentRequest) (*models.Agent, error) {
	if !actor.IsOrganizer() {
		return nil, ErrPermissionDenied
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	existing, err := s.UserRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	password, err := utils.NewNumericPassword(6)
	if err != nil {
		return nil, err
	}
	hash, err := s.AuthService.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Email:        email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: hash,
	}
	agent, err := s.Repo.CreateWithUser(user, actor.OrgID)
	if err != nil {
		return nil, err
	}

	// письмо best-effort: неудача не отменяет создание
	if s.EmailService != nil {
		if err := s.EmailService.SendAgentInvitation(email); err != nil {
			log.Printf("AgentService.Create: warning: failed to send invitation to %s: %v", email, err)
		}
	}
	return agent, nil
}

func (s *AgentService) List(actor authz.Actor) ([]*models.Agent, error) {
	if !actor.IsOrganizer() {
		return nil, ErrPermissionDenied
	}
	return s.Repo.ListByOrg(authz.ForOrg(actor).OrgID)
}

func (s *AgentService) GetByID(actor authz.Actor, id int) (*models.Agent, error) {
	if !actor.IsOrganizer() {
		return nil, ErrPermissionDenied
	}
	agent, err := s.Repo.GetByIDInOrg(id, actor.OrgID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, ErrNotFound
	}
	return agent, nil
}

func (s *AgentService) Update(actor authz.Actor, id int, req *models.UpdateAgentRequest) (*models.Agent, error) {
	if !actor.IsOrganizer() {
		return nil, ErrPermissionDenied
	}
	agent := &models.Agent{
		ID:             id,
		OrganizationID: actor.OrgID,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
	}
	ok, err := s.Repo.UpdateInOrg(agent)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return s.Repo.GetByIDInOrg(id, actor.OrgID)
}

// Delete удаляет запись агента; его лиды остаются и теряют назначение
// (agent_id -> NULL), сами лиды не удаляются.
func (s *AgentService) Delete(actor authz.Actor, id int) error {
	if !actor.IsOrganizer() {
		return ErrPermissionDenied
	}
	ok, err := s.Repo.DeleteInOrg(id, actor.OrgID)
	if err != nil {
		return err
	}
	if !ok {
		return ErrNotFound
	}
	return nil
}
