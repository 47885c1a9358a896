package authz

import "errors"

// ErrMissingAgentProfile: не-организатор без записи агента. Это нарушение
// предусловия, а не пользовательская ошибка — наверх уходит как 500.
var ErrMissingAgentProfile = errors.New("authz: non-organizer actor has no agent profile")

type Role int

const (
	RoleOrganizer Role = iota + 1
	RoleAgent
)

// Actor — кто выполняет запрос. Ровно один из двух вариантов:
// организатор (orgID) или агент (agentID + orgID агента).
type Actor struct {
	UserID  int
	OrgID   int
	AgentID int // только для роли агента
	role    Role
}

func Organizer(userID, orgID int) Actor {
	return Actor{UserID: userID, OrgID: orgID, role: RoleOrganizer}
}

func AgentActor(userID, agentID, orgID int) (Actor, error) {
	if agentID == 0 {
		return Actor{}, ErrMissingAgentProfile
	}
	return Actor{UserID: userID, OrgID: orgID, AgentID: agentID, role: RoleAgent}, nil
}

func (a Actor) IsOrganizer() bool { return a.role == RoleOrganizer }

func (a Actor) Role() Role { return a.role }
