package authz

import (
	"errors"
	"testing"
)

func TestAgentActorRequiresProfile(t *testing.T) {
	if _, err := AgentActor(7, 0, 1); !errors.Is(err, ErrMissingAgentProfile) {
		t.Fatalf("err = %v, want ErrMissingAgentProfile", err)
	}
	actor, err := AgentActor(7, 3, 1)
	if err != nil {
		t.Fatal(err)
	}
	if actor.IsOrganizer() {
		t.Error("agent actor must not be an organizer")
	}
}

func TestForLeads(t *testing.T) {
	org := Organizer(1, 10)
	s := ForLeads(org)
	if s.OrgID != 10 || s.AgentUserID != 0 || s.Assigned != nil {
		t.Errorf("organizer scope = %+v, want org-only", s)
	}

	agent, _ := AgentActor(7, 3, 10)
	s = ForLeads(agent)
	if s.OrgID != 10 || s.AgentUserID != 7 {
		t.Errorf("agent scope = %+v, want org match and own user", s)
	}
}

func TestForLeadListRequiresAssignment(t *testing.T) {
	s := ForLeadList(Organizer(1, 10))
	if s.Assigned == nil || !*s.Assigned {
		t.Error("main list scope must require a non-null agent")
	}
}

func TestUnassignedScopeIsComplement(t *testing.T) {
	main := ForLeadList(Organizer(1, 10))
	unassigned := ForUnassignedLeads(Organizer(1, 10))
	if unassigned.OrgID != main.OrgID {
		t.Error("both scopes must target the same organization")
	}
	if unassigned.Assigned == nil || *unassigned.Assigned {
		t.Error("unassigned scope must require a null agent")
	}
	// предикаты взаимоисключающие: один лид не попадёт в оба списка
	if *main.Assigned == *unassigned.Assigned {
		t.Error("main and unassigned scopes must be disjoint")
	}
}
