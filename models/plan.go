package models

// PlanLimits is the hidden resource-limit profile of a service plan. It is
// used only when talking to the panel and is never exposed to the UI layer.
type PlanLimits struct {
	// Memory is the RAM limit in MiB.
	Memory int `json:"memory"`

	// Disk is the disk limit in MiB.
	Disk int `json:"disk"`

	// CPU is the CPU share in percent (100 = one core).
	CPU int `json:"cpu"`

	// Databases and Backups are the panel feature limits for the plan.
	Databases int `json:"databases"`
	Backups   int `json:"backups"`
}

// ServicePlan is a locally-defined purchasable tier mapping a coin cost to
// a resource-limit profile.
type ServicePlan struct {
	ID       string     `json:"id"`
	Name     string     `json:"name"`
	Cost     int        `json:"cost"`
	Features []string   `json:"features"`
	Limits   PlanLimits `json:"-"`
}

// View returns the public projection of the plan, stripped of the panel
// limit profile.
func (p ServicePlan) View() ServicePlanView {
	return ServicePlanView{
		ID:       p.ID,
		Name:     p.Name,
		Cost:     p.Cost,
		Features: p.Features,
	}
}

// ServicePlanView is the UI-facing shape of a plan.
type ServicePlanView struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Cost     int      `json:"cost"`
	Features []string `json:"features"`
}
