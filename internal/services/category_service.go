package services

import (
	"simplecrm/internal/authz"
	"simplecrm/internal/models"
	"simplecrm/internal/repositories"
)

type CategoryService struct {
	Repo repositories.CategoryRepository
}

func NewCategoryService(repo repositories.CategoryRepository) *CategoryService {
	return &CategoryService{Repo: repo}
}

// List и GetByID доступны обеим ролям: агент видит все категории своей
// организации, без фильтра по собственным лидам.
func (s *CategoryService) List(actor authz.Actor) ([]*models.Category, error) {
	return s.Repo.ListByOrg(authz.ForOrg(actor).OrgID)
}

func (s *CategoryService) GetByID(actor authz.Actor, id int) (*models.Category, error) {
	category, err := s.Repo.GetByIDInOrg(id, authz.ForOrg(actor).OrgID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, ErrNotFound
	}
	return category, nil
}

func (s *CategoryService) Create(actor authz.Actor, req *models.CategoryRequest) (*models.Category, error) {
	if !actor.IsOrganizer() {
		return nil, ErrPermissionDenied
	}
	category := &models.Category{
		Name:           req.Name,
		OrganizationID: actor.OrgID,
	}
	if err := s.Repo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (s *CategoryService) Update(actor authz.Actor, id int, req *models.CategoryRequest) (*models.Category, error) {
	if !actor.IsOrganizer() {
		return nil, ErrPermissionDenied
	}
	category := &models.Category{
		ID:             id,
		Name:           req.Name,
		OrganizationID: actor.OrgID,
	}
	ok, err := s.Repo.UpdateInOrg(category)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotFound
	}
	return category, nil
}

// Delete: лиды категории не удаляются, category_id у них обнуляется.
func (s *CategoryService) Delete(actor authz.Actor, id int) error {
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
