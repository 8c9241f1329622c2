package handlers

import (
	"net/http"
	"strings"

	"github.com/client-portal/engine/internal/api/types"
	"github.com/client-portal/engine/internal/services"
	appErr "github.com/client-portal/engine/pkg/errors"
)

// ConfigHandler serves the per-tenant integration settings.
type ConfigHandler struct {
	svc services.ConfigService
}

func NewConfigHandler(svc services.ConfigService) *ConfigHandler {
	return &ConfigHandler{svc: svc}
}

// GetVerifyConfig answers GET /api/instantly/verify. A tenant that has never
// been configured gets empty fields rather than 404.
// @Summary      Read integration settings
// @Tags         config
// @Produce      json
// @Param        domain  query  string  true  "Tenant subdomain"
// @Success      200  {object}  services.ConfigView
// @Failure      400  {object}  types.ContractError
// @Router       /api/instantly/verify [get]
func (h *ConfigHandler) GetVerifyConfig(w http.ResponseWriter, r *http.Request) {
	domain := strings.TrimSpace(r.URL.Query().Get("domain"))
	if domain == "" {
		writeContractError(w, http.StatusBadRequest, "Domain required", nil)
		return
	}
	view, err := h.svc.GetConfig(r.Context(), domain)
	if err != nil {
		writeContractError(w, statusFor(err), "Fetch error", err)
		return
	}
	writeJSON(w, http.StatusOK, view)
}

// GetProjectConfig answers GET /api/project/config. Unknown tenants are 404.
// @Summary      Read project configuration
// @Tags         config
// @Produce      json
// @Param        domain  query  string  true  "Tenant subdomain"
// @Success      200  {object}  services.ConfigView
// @Failure      404  {object}  types.ContractError
// @Router       /api/project/config [get]
func (h *ConfigHandler) GetProjectConfig(w http.ResponseWriter, r *http.Request) {
	domain := strings.TrimSpace(r.URL.Query().Get("domain"))
	if domain == "" {
		writeContractError(w, http.StatusBadRequest, "Domain is required", nil)
		return
	}
	t, err := h.svc.GetProject(r.Context(), domain)
	if err != nil {
		if appErr.IsCode(err, appErr.CodeNotFound) {
			writeContractError(w, http.StatusNotFound, "Project not found", nil)
			return
		}
		writeContractError(w, statusFor(err), "Internal Server Error", err)
		return
	}
	writeJSON(w, http.StatusOK, services.NewConfigView(t))
}

// PutConfig upserts the supplied settings, creating the tenant record if needed.
// @Summary      Write integration settings
// @Tags         config
// @Accept       json
// @Produce      json
// @Param        body  body  types.ConfigWriteRequest  true  "Settings"
// @Success      200  {object}  map[string]bool
// @Failure      400  {object}  types.ContractError
// @Router       /api/instantly/verify [put]
// @Router       /api/project/config [put]
// @Router       /api/project/config [post]
func (h *ConfigHandler) PutConfig(w http.ResponseWriter, r *http.Request) {
	var req types.ConfigWriteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeContractError(w, http.StatusBadRequest, "invalid json", err)
		return
	}
	if strings.TrimSpace(req.Domain) == "" {
		writeContractError(w, http.StatusBadRequest, "Domain required", nil)
		return
	}
	if err := h.svc.UpsertConfig(r.Context(), req.Domain, req.Patch()); err != nil {
		writeContractError(w, statusFor(err), "Update error", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"success": true})
}
