package handlers

import (
	"net/http"

	"github.com/client-portal/engine/internal/api/types"
	"github.com/client-portal/engine/internal/models"
	"github.com/client-portal/engine/internal/services"
	"github.com/go-chi/chi/v5"
)

// RestrictedTenant is the only tenant shown the restricted tools.
const RestrictedTenant = "sa"

// DashboardHandler serves the tenant-scoped /c/{domain} routes.
type DashboardHandler struct {
	svc services.ConfigService
}

func NewDashboardHandler(svc services.ConfigService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// @Summary      Tenant dashboard status
// @Tags         dashboard
// @Produce      json
// @Param        domain  path  string  true  "Tenant subdomain"
// @Success      200  {object}  types.APIResponse{data=types.StatusView}
// @Failure      404  {object}  types.APIResponse
// @Router       /c/{domain} [get]
func (h *DashboardHandler) Status(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetProject(r.Context(), chi.URLParam(r, "domain"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: statusView(t)})
}

// @Summary      Automation catalog
// @Tags         dashboard
// @Produce      json
// @Param        domain  path  string  true  "Tenant subdomain"
// @Success      200  {object}  types.APIResponse{data=[]types.Automation}
// @Router       /c/{domain}/automations [get]
func (h *DashboardHandler) Automations(w http.ResponseWriter, r *http.Request) {
	domain := chi.URLParam(r, "domain")
	base := "/c/" + domain
	catalog := []types.Automation{
		{
			Title:       "InboxBench Verification",
			Description: "Automated coding email validation and warmup monitoring.",
			Href:        base,
			Status:      "Active",
		},
		{
			Title:       "Lead Enrichment",
			Description: "Enrich Apollo leads with verified emails using Waterfall methodology.",
			Href:        base + "/tools/apollo",
			Status:      "Beta",
			Restricted:  true,
		},
	}
	visible := catalog[:0]
	for _, a := range catalog {
		if a.Restricted && domain != RestrictedTenant {
			continue
		}
		visible = append(visible, a)
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: visible})
}

// Apollo describes the lead enrichment tool. Unknown to every other tenant.
// @Summary      Lead enrichment tool
// @Tags         dashboard
// @Produce      json
// @Param        domain  path  string  true  "Tenant subdomain"
// @Success      200  {object}  types.APIResponse{data=types.ToolDescriptor}
// @Failure      404  {object}  types.APIResponse
// @Router       /c/{domain}/tools/apollo [get]
func (h *DashboardHandler) Apollo(w http.ResponseWriter, r *http.Request) {
	domain := chi.URLParam(r, "domain")
	if domain != RestrictedTenant {
		writeJSON(w, http.StatusNotFound, types.APIResponse{Success: false, Error: &types.APIError{Code: "not_found", Message: "tool not found"}})
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: types.ToolDescriptor{
		Tenant:      domain,
		Title:       "Lead Enrichment",
		Description: "Enrich Apollo leads with verified emails using Waterfall methodology.",
		Submit:      "/api/proxy",
		Poll:        "/api/proxy?path=",
	}})
}

func statusView(t *models.Tenant) types.StatusView {
	return types.StatusView{
		Subdomain:       t.Subdomain,
		ClientName:      t.ClientName,
		ProjectName:     t.ProjectName,
		Status:          t.Status,
		ProgressPercent: t.ProgressPercent,
		CurrentPhase:    t.CurrentPhase,
		NextMilestone:   t.NextMilestone,
		LastUpdated:     t.LastUpdated,
		BlueprintPath:   models.Deref(t.BlueprintPath),
	}
}
