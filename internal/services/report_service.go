package services

import (
	"simplecrm/internal/authz"
	"simplecrm/internal/models"
	"simplecrm/internal/pdf"
	"simplecrm/internal/repositories"
)

type ReportService struct {
	LeadRepo  repositories.LeadRepository
	AgentRepo repositories.AgentRepository
	PDF       *pdf.ReportGenerator
}

func NewReportService(leadRepo repositories.LeadRepository, agentRepo repositories.AgentRepository, gen *pdf.ReportGenerator) *ReportService {
	return &ReportService{LeadRepo: leadRepo, AgentRepo: agentRepo, PDF: gen}
}

func (s *ReportService) Summary(actor authz.Actor) (*models.OrgSummary, error) {
	if !actor.IsOrganizer() {
		return nil, ErrPermissionDenied
	}
	orgID := actor.OrgID

	total, err := s.LeadRepo.CountByOrg(orgID)
	if err != nil {
		return nil, err
	}
	assigned, err := s.LeadRepo.CountAssigned(orgID, true)
	if err != nil {
		return nil, err
	}
	unassigned, err := s.LeadRepo.CountAssigned(orgID, false)
	if err != nil {
		return nil, err
	}
	uncategorized, err := s.LeadRepo.CountWithoutCategory(orgID)
	if err != nil {
		return nil, err
	}
	agents, err := s.AgentRepo.CountByOrg(orgID)
	if err != nil {
		return nil, err
	}
	perCategory, err := s.LeadRepo.CountPerCategory(orgID)
	if err != nil {
		return nil, err
	}

	return &models.OrgSummary{
		TotalLeads:         total,
		AssignedLeads:      assigned,
		UnassignedLeads:    unassigned,
		UncategorizedLeads: uncategorized,
		Agents:             agents,
		Categories:         perCategory,
	}, nil
}

// ExportLeadsPDF возвращает PDF со всеми лидами организации.
func (s *ReportService) ExportLeadsPDF(actor authz.Actor) ([]byte, error) {
	if !actor.IsOrganizer() {
		return nil, ErrPermissionDenied
	}
	// без пагинации: отчёт по всей организации
	leads, err := s.LeadRepo.ListScoped(authz.LeadScope{OrgID: actor.OrgID}, 10000, 0)
	if err != nil {
		return nil, err
	}
	return s.PDF.LeadsReport(leads)
}
