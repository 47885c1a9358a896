package models

type CategoryCount struct {
	CategoryID int    `json:"category_id"`
	Name       string `json:"name"`
	Leads      int    `json:"leads"`
}

type OrgSummary struct {
	TotalLeads         int             `json:"total_leads"`
	AssignedLeads      int             `json:"assigned_leads"`
	UnassignedLeads    int             `json:"unassigned_leads"`
	UncategorizedLeads int             `json:"uncategorized_leads"`
	Agents             int             `json:"agents"`
	Categories         []CategoryCount `json:"categories"`
}
