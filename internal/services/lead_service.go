package services

import (
	"log"

	"simplecrm/internal/authz"
	"simplecrm/internal/models"
	"simplecrm/internal/repositories"
)

type LeadService struct {
	Repo         repositories.LeadRepository
	AgentRepo    repositories.AgentRepository
	CategoryRepo repositories.CategoryRepository
	EmailService EmailService
	NotifyEmail  string
}

func NewLeadService(
	repo repositories.LeadRepository,
	agentRepo repositories.AgentRepository,
	categoryRepo repositories.CategoryRepository,
	emailService EmailService,
	notifyEmail string,
) *LeadService {
	return &LeadService{
		Repo:         repo,
		AgentRepo:    agentRepo,
		CategoryRepo: categoryRepo,
		EmailService: emailService,
		NotifyEmail:  notifyEmail,
	}
}

// Create: организация берётся из актора, что бы ни прислал клиент.
func (s *LeadService) Create(actor authz.Actor, req *models.LeadRequest) (*models.Lead, error) {
	if !actor.IsOrganizer() {
		return nil, ErrPermissionDenied
	}

	lead := &models.Lead{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Age:            req.Age,
		Email:          req.Email,
		PhoneNumber:    req.PhoneNumber,
		Description:    req.Description,
		OrganizationID: actor.OrgID,
	}
	if err := s.Repo.Create(lead); err != nil {
		return nil, err
	}

	// уведомление best-effort
	if s.EmailService != nil {
		if err := s.EmailService.SendLeadCreated(s.NotifyEmail); err != nil {
			log.Printf("LeadService.Create: warning: failed to send notification: %v", err)
		}
	}
	return lead, nil
}

// List — основной список: только назначенные лиды в зоне видимости.
func (s *LeadService) List(actor authz.Actor, limit, offset int) ([]*models.Lead, error) {
	return s.Repo.ListScoped(authz.ForLeadList(actor), limit, offset)
}

// ListUnassigned — дополнение основного списка, только для организатора.
func (s *LeadService) ListUnassigned(actor authz.Actor, limit, offset int) ([]*models.Lead, error) {
	if !actor.IsOrganizer() {
		return nil, ErrPermissionDenied
	}
	return s.Repo.ListScoped(authz.ForUnassignedLeads(actor), limit, offset)
}

func (s *LeadService) GetByID(actor authz.Actor, id int) (*models.Lead, error) {
	lead, err := s.Repo.GetScoped(id, authz.ForLeads(actor))
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrNotFound
	}
	return lead, nil
}

// Update: лид ищется через предикат видимости — чужой выглядит как
// отсутствующий. Организация и дата создания неизменяемы.
func (s *LeadService) Update(actor authz.Actor, id int, req *models.LeadRequest) (*models.Lead, error) {
	if !actor.IsOrganizer() {
		return nil, ErrPermissionDenied
	}
	current, err := s.Repo.GetScoped(id, authz.ForLeads(actor))
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	current.FirstName = req.FirstName
	current.LastName = req.LastName
	current.Age = req.Age
	current.Email = req.Email
	current.PhoneNumber = req.PhoneNumber
	current.Description = req.Description

	if err := s.Repo.Update(current); err != nil {
		return nil, err
	}
	return current, nil
}

func (s *LeadService) Delete(actor authz.Actor, id int) error {
	if !actor.IsOrganizer() {
		return ErrPermissionDenied
	}
	lead, err := s.Repo.GetScoped(id, authz.ForLeads(actor))
	if err != nil {
		return err
	}
	if lead == nil {
		return ErrNotFound
	}
	return s.Repo.Delete(lead.ID)
}

// AssignAgent: кандидаты ограничены организацией актора ещё на выборке —
// агент чужого тенанта недостижим, а не отклоняется постфактум.
func (s *LeadService) AssignAgent(actor authz.Actor, leadID, agentID int) (*models.Lead, error) {
	if !actor.IsOrganizer() {
		return nil, ErrPermissionDenied
	}
	lead, err := s.Repo.GetScoped(leadID, authz.ForLeads(actor))
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrNotFound
	}

	agent, err := s.AgentRepo.GetByIDInOrg(agentID, actor.OrgID)
	if err != nil {
		return nil, err
	}
	if agent == nil {
		return nil, ErrInvalidAgent
	}

	if err := s.Repo.SetAgent(lead.ID, &agent.ID); err != nil {
		return nil, err
	}
	lead.AgentID = &agent.ID
	// уведомление при назначении не шлём — только при создании
	return lead, nil
}

// AssignableAgents — список кандидатов для формы назначения.
func (s *LeadService) AssignableAgents(actor authz.Actor) ([]*models.Agent, error) {
	if !actor.IsOrganizer() {
		return nil, ErrPermissionDenied
	}
	return s.AgentRepo.ListByOrg(actor.OrgID)
}

// UpdateCategory доступен и организатору, и агенту — в пределах их
// видимости. nil снимает категорию.
func (s *LeadService) UpdateCategory(actor authz.Actor, leadID int, categoryID *int) (*models.Lead, error) {
	lead, err := s.Repo.GetScoped(leadID, authz.ForLeads(actor))
	if err != nil {
		return nil, err
	}
	if lead == nil {
		return nil, ErrNotFound
	}

	if categoryID != nil {
		category, err := s.CategoryRepo.GetByIDInOrg(*categoryID, lead.OrganizationID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, ErrInvalidCategory
		}
	}

	if err := s.Repo.SetCategory(lead.ID, categoryID); err != nil {
		return nil, err
	}
	lead.CategoryID = categoryID
	return lead, nil
}
