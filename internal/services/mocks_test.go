package services

import (
	"errors"

	"simplecrm/internal/authz"
	"simplecrm/internal/models"
)

// Мок-репозитории в памяти. Предикаты видимости повторяют SQL-версию.

type mockUserRepo struct {
	nextID int
	users  map[int]*models.User
	orgs   map[int]*models.Organization // key: org id
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		nextID: 1,
		users:  map[int]*models.User{},
		orgs:   map[int]*models.Organization{},
	}
}

func (m *mockUserRepo) CreateOrganizer(user *models.User) (*models.Organization, error) {
	user.ID = m.nextID
	m.nextID++
	user.IsOrganizer = true
	m.users[user.ID] = user

	org := &models.Organization{ID: m.nextID, UserID: user.ID}
	m.nextID++
	m.orgs[org.ID] = org
	return org, nil
}

func (m *mockUserRepo) GetByEmail(email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) GetByID(id int) (*models.User, error) {
	return m.users[id], nil
}

type mockOrgRepo struct {
	users *mockUserRepo
}

func (m *mockOrgRepo) GetByOwner(userID int) (*models.Organization, error) {
	for _, org := range m.users.orgs {
		if org.UserID == userID {
			return org, nil
		}
	}
	return nil, nil
}

type mockAgentRepo struct {
	nextID int
	agents map[int]*models.Agent
	users  *mockUserRepo
	leads  *mockLeadRepo // для эмуляции ON DELETE SET NULL
}

func newMockAgentRepo(users *mockUserRepo) *mockAgentRepo {
	return &mockAgentRepo{nextID: 100, agents: map[int]*models.Agent{}, users: users}
}

func (m *mockAgentRepo) CreateWithUser(user *models.User, orgID int) (*models.Agent, error) {
	user.ID = m.users.nextID
	m.users.nextID++
	user.IsOrganizer = false
	m.users.users[user.ID] = user

	ag := &models.Agent{
		ID:             m.nextID,
		UserID:         user.ID,
		OrganizationID: orgID,
		Email:          user.Email,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
	}
	m.nextID++
	m.agents[ag.ID] = ag
	return ag, nil
}

func (m *mockAgentRepo) GetByUserID(userID int) (*models.Agent, error) {
	for _, ag := range m.agents {
		if ag.UserID == userID {
			return ag, nil
		}
	}
	return nil, nil
}

func (m *mockAgentRepo) GetByIDInOrg(id, orgID int) (*models.Agent, error) {
	ag := m.agents[id]
	if ag == nil || ag.OrganizationID != orgID {
		return nil, nil
	}
	return ag, nil
}

func (m *mockAgentRepo) ListByOrg(orgID int) ([]*models.Agent, error) {
	var out []*models.Agent
	for _, ag := range m.agents {
		if ag.OrganizationID == orgID {
			out = append(out, ag)
		}
	}
	return out, nil
}

func (m *mockAgentRepo) UpdateInOrg(agent *models.Agent) (bool, error) {
	existing := m.agents[agent.ID]
	if existing == nil || existing.OrganizationID != agent.OrganizationID {
		return false, nil
	}
	existing.FirstName = agent.FirstName
	existing.LastName = agent.LastName
	return true, nil
}

func (m *mockAgentRepo) DeleteInOrg(id, orgID int) (bool, error) {
	ag := m.agents[id]
	if ag == nil || ag.OrganizationID != orgID {
		return false, nil
	}
	delete(m.agents, id)
	if m.leads != nil {
		for _, l := range m.leads.leads {
			if l.AgentID != nil && *l.AgentID == id {
				l.AgentID = nil
			}
		}
	}
	return true, nil
}

func (m *mockAgentRepo) CountByOrg(orgID int) (int, error) {
	n := 0
	for _, ag := range m.agents {
		if ag.OrganizationID == orgID {
			n++
		}
	}
	return n, nil
}

type mockCategoryRepo struct {
	nextID     int
	categories map[int]*models.Category
}

func newMockCategoryRepo() *mockCategoryRepo {
	return &mockCategoryRepo{nextID: 200, categories: map[int]*models.Category{}}
}

func (m *mockCategoryRepo) Create(category *models.Category) error {
	category.ID = m.nextID
	m.nextID++
	m.categories[category.ID] = category
	return nil
}

func (m *mockCategoryRepo) GetByIDInOrg(id, orgID int) (*models.Category, error) {
	cat := m.categories[id]
	if cat == nil || cat.OrganizationID != orgID {
		return nil, nil
	}
	return cat, nil
}

func (m *mockCategoryRepo) ListByOrg(orgID int) ([]*models.Category, error) {
	var out []*models.Category
	for _, cat := range m.categories {
		if cat.OrganizationID == orgID {
			out = append(out, cat)
		}
	}
	return out, nil
}

func (m *mockCategoryRepo) UpdateInOrg(category *models.Category) (bool, error) {
	existing := m.categories[category.ID]
	if existing == nil || existing.OrganizationID != category.OrganizationID {
		return false, nil
	}
	existing.Name = category.Name
	return true, nil
}

func (m *mockCategoryRepo) DeleteInOrg(id, orgID int) (bool, error) {
	cat := m.categories[id]
	if cat == nil || cat.OrganizationID != orgID {
		return false, nil
	}
	delete(m.categories, id)
	return true, nil
}

type mockLeadRepo struct {
	nextID int
	leads  map[int]*models.Lead
	agents *mockAgentRepo
}

func newMockLeadRepo(agents *mockAgentRepo) *mockLeadRepo {
	m := &mockLeadRepo{nextID: 300, leads: map[int]*models.Lead{}, agents: agents}
	agents.leads = m
	return m
}

func (m *mockLeadRepo) matches(l *models.Lead, s authz.LeadScope) bool {
	if l.OrganizationID != s.OrgID {
		return false
	}
	if s.AgentUserID > 0 {
		if l.AgentID == nil {
			return false
		}
		ag := m.agents.agents[*l.AgentID]
		if ag == nil || ag.UserID != s.AgentUserID {
			return false
		}
	}
	if s.Assigned != nil {
		if *s.Assigned && l.AgentID == nil {
			return false
		}
		if !*s.Assigned && l.AgentID != nil {
			return false
		}
	}
	return true
}

func (m *mockLeadRepo) Create(lead *models.Lead) error {
	lead.ID = m.nextID
	m.nextID++
	m.leads[lead.ID] = lead
	return nil
}

func (m *mockLeadRepo) GetScoped(id int, scope authz.LeadScope) (*models.Lead, error) {
	l := m.leads[id]
	if l == nil || !m.matches(l, scope) {
		return nil, nil
	}
	copied := *l
	return &copied, nil
}

func (m *mockLeadRepo) ListScoped(scope authz.LeadScope, limit, offset int) ([]*models.Lead, error) {
	var out []*models.Lead
	for _, l := range m.leads {
		if m.matches(l, scope) {
			copied := *l
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (m *mockLeadRepo) Update(lead *models.Lead) error {
	existing := m.leads[lead.ID]
	if existing == nil {
		return errors.New("no such lead")
	}
	// организация и created_at не трогаются, как в SQL UPDATE
	existing.FirstName = lead.FirstName
	existing.LastName = lead.LastName
	existing.Age = lead.Age
	existing.Email = lead.Email
	existing.PhoneNumber = lead.PhoneNumber
	existing.Description = lead.Description
	return nil
}

func (m *mockLeadRepo) Delete(id int) error {
	delete(m.leads, id)
	return nil
}

func (m *mockLeadRepo) SetAgent(id int, agentID *int) error {
	l := m.leads[id]
	if l == nil {
		return errors.New("no such lead")
	}
	l.AgentID = agentID
	return nil
}

func (m *mockLeadRepo) SetCategory(id int, categoryID *int) error {
	l := m.leads[id]
	if l == nil {
		return errors.New("no such lead")
	}
	l.CategoryID = categoryID
	return nil
}

func (m *mockLeadRepo) CountByOrg(orgID int) (int, error) {
	n := 0
	for _, l := range m.leads {
		if l.OrganizationID == orgID {
			n++
		}
	}
	return n, nil
}

func (m *mockLeadRepo) CountAssigned(orgID int, assigned bool) (int, error) {
	n := 0
	for _, l := range m.leads {
		if l.OrganizationID == orgID && (l.AgentID != nil) == assigned {
			n++
		}
	}
	return n, nil
}

func (m *mockLeadRepo) CountWithoutCategory(orgID int) (int, error) {
	n := 0
	for _, l := range m.leads {
		if l.OrganizationID == orgID && l.CategoryID == nil {
			n++
		}
	}
	return n, nil
}

func (m *mockLeadRepo) CountPerCategory(orgID int) ([]models.CategoryCount, error) {
	counts := map[int]int{}
	for _, l := range m.leads {
		if l.OrganizationID == orgID && l.CategoryID != nil {
			counts[*l.CategoryID]++
		}
	}
	var out []models.CategoryCount
	for id, n := range counts {
		out = append(out, models.CategoryCount{CategoryID: id, Leads: n})
	}
	return out, nil
}

// mockEmailService записывает отправки; умеет имитировать сбой SMTP.
type mockEmailService struct {
	invitations  []string
	leadCreated  []string
	failNextSend bool
}

func (m *mockEmailService) SendAgentInvitation(email string) error {
	if m.failNextSend {
		m.failNextSend = false
		return errors.New("smtp unavailable")
	}
	m.invitations = append(m.invitations, email)
	return nil
}

func (m *mockEmailService) SendLeadCreated(notifyEmail string) error {
	if m.failNextSend {
		m.failNextSend = false
		return errors.New("smtp unavailable")
	}
	m.leadCreated = append(m.leadCreated, notifyEmail)
	return nil
}
