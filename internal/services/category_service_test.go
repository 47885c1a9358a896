package services

import (
	"errors"
	"testing"

	"simplecrm/internal/models"
)

func TestCategoriesVisibleToAgents(t *testing.T) {
	f := newFixture()
	orgX := f.organizer(t, "x@crm.test")
	orgY := f.organizer(t, "y@crm.test")
	agentG, _ := f.agent(t, orgX, "g@crm.test")

	if _, err := f.catSvc.Create(orgX, &models.CategoryRequest{Name: "New"}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.catSvc.Create(orgX, &models.CategoryRequest{Name: "Contacted"}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.catSvc.Create(orgY, &models.CategoryRequest{Name: "Converted"}); err != nil {
		t.Fatal(err)
	}

	// агент видит все категории своей организации, не только по своим лидам
	list, err := f.catSvc.List(agentG)
	if err != nil {
		t.Fatal(err)
	}
	if len(list) != 2 {
		t.Fatalf("agent sees %d categories, want 2", len(list))
	}
	for _, cat := range list {
		if cat.OrganizationID != orgX.OrgID {
			t.Errorf("category %q from foreign org leaked", cat.Name)
		}
	}
}

func TestCategoryWriteOrganizerOnly(t *testing.T) {
	f := newFixture()
	orgX := f.organizer(t, "x@crm.test")
	agentG, _ := f.agent(t, orgX, "g@crm.test")

	if _, err := f.catSvc.Create(agentG, &models.CategoryRequest{Name: "New"}); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("agent create = %v, want ErrPermissionDenied", err)
	}

	cat, err := f.catSvc.Create(orgX, &models.CategoryRequest{Name: "New"})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.catSvc.Update(agentG, cat.ID, &models.CategoryRequest{Name: "Renamed"}); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("agent update = %v, want ErrPermissionDenied", err)
	}
	if err := f.catSvc.Delete(agentG, cat.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Errorf("agent delete = %v, want ErrPermissionDenied", err)
	}
}

func TestCategoryCrossOrgInvisible(t *testing.T) {
	f := newFixture()
	orgX := f.organizer(t, "x@crm.test")
	orgY := f.organizer(t, "y@crm.test")

	cat, err := f.catSvc.Create(orgX, &models.CategoryRequest{Name: "New"})
	if err != nil {
		t.Fatal(err)
	}

	if _, err := f.catSvc.GetByID(orgY, cat.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign get = %v, want ErrNotFound", err)
	}
	if _, err := f.catSvc.Update(orgY, cat.ID, &models.CategoryRequest{Name: "Stolen"}); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign update = %v, want ErrNotFound", err)
	}
	if err := f.catSvc.Delete(orgY, cat.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("foreign delete = %v, want ErrNotFound", err)
	}
}
