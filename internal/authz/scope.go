package authz

// LeadScope — предикат видимости лидов для актора. Репозиторий превращает
// его в WHERE. Нулевые значения означают "без ограничения".
type LeadScope struct {
	OrgID       int
	AgentUserID int   // >0: только лиды, чей агент принадлежит этому пользователю
	Assigned    *bool // true: agent_id IS NOT NULL; false: IS NULL
}

// ForLeads возвращает базовый предикат видимости:
// организатор видит всю свою организацию, агент — только свои лиды.
func ForLeads(a Actor) LeadScope {
	if a.IsOrganizer() {
		return LeadScope{OrgID: a.OrgID}
	}
	return LeadScope{OrgID: a.OrgID, AgentUserID: a.UserID}
}

// ForLeadList — основной список: только назначенные лиды. Для агента
// условие "назначен" избыточно (его предикат и так требует его агента),
// но предикат единый для обеих ролей.
func ForLeadList(a Actor) LeadScope {
	s := ForLeads(a)
	s.Assigned = boolPtr(true)
	return s
}

// ForUnassignedLeads — дополнение к основному списку; доступно только
// организатору, агент неназначенные лиды не видит по определению.
func ForUnassignedLeads(a Actor) LeadScope {
	return LeadScope{OrgID: a.OrgID, Assigned: boolPtr(false)}
}

// OrgScope — предикат для агентов и категорий: совпадение организации,
// без фильтра по собственным лидам.
type OrgScope struct {
	OrgID int
}

func ForOrg(a Actor) OrgScope { return OrgScope{OrgID: a.OrgID} }

func boolPtr(b bool) *bool { return &b }
