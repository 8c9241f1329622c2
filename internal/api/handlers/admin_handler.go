package handlers

import (
	"net/http"

	"github.com/client-portal/engine/internal/api/types"
	"github.com/client-portal/engine/internal/api/validators"
	"github.com/client-portal/engine/internal/models"
	"github.com/client-portal/engine/internal/queue/tasks"
	"github.com/client-portal/engine/internal/services"
	appErr "github.com/client-portal/engine/pkg/errors"
	"github.com/client-portal/engine/pkg/logger"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AdminHandler exposes tenant management to operators.
type AdminHandler struct {
	svc   services.ConfigService
	queue tasks.Enqueuer
}

// NewAdminHandler builds the handler. queue may be nil when Redis is not configured.
func NewAdminHandler(svc services.ConfigService, queue tasks.Enqueuer) *AdminHandler {
	return &AdminHandler{svc: svc, queue: queue}
}

// @Summary      List tenants
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  types.APIResponse{data=[]types.TenantView}
// @Failure      401  {string}  string
// @Router       /api/admin/tenants [get]
func (h *AdminHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.ListProjects(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	out := make([]types.TenantView, 0, len(items))
	for i := range items {
		out = append(out, tenantView(&items[i]))
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: out, Meta: &types.Meta{Total: int64(len(out))}})
}

// @Summary      Get a tenant
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        subdomain  path  string  true  "Tenant subdomain"
// @Success      200  {object}  types.APIResponse{data=types.TenantView}
// @Failure      404  {object}  types.APIResponse
// @Router       /api/admin/tenants/{subdomain} [get]
func (h *AdminHandler) Get(w http.ResponseWriter, r *http.Request) {
	t, err := h.svc.GetProject(r.Context(), chi.URLParam(r, "subdomain"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: tenantView(t)})
}

// Seed creates a tenant if absent: 201 when created, 200 with the existing record otherwise.
// @Summary      Seed a tenant
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body  types.SeedTenantRequest  true  "Tenant"
// @Success      201  {object}  types.APIResponse{data=types.TenantView}
// @Success      200  {object}  types.APIResponse{data=types.TenantView}
// @Failure      400  {object}  types.APIResponse
// @Router       /api/admin/tenants [post]
func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request) {
	var req types.SeedTenantRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	t, created, err := h.svc.SeedProject(r.Context(), services.SeedInput{
		Subdomain:       req.Subdomain,
		ClientName:      req.ClientName,
		ProjectName:     req.ProjectName,
		Status:          req.Status,
		ProgressPercent: req.ProgressPercent,
		CurrentPhase:    req.CurrentPhase,
		NextMilestone:   req.NextMilestone,
		BlueprintPath:   req.BlueprintPath,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	writeJSON(w, status, types.APIResponse{Success: true, Data: tenantView(t)})
}

// @Summary      Update project status
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        subdomain  path  string                     true  "Tenant subdomain"
// @Param        body       body  types.StatusUpdateRequest  true  "Status fields"
// @Success      200  {object}  types.APIResponse{data=types.TenantView}
// @Failure      400  {object}  types.APIResponse
// @Router       /api/admin/tenants/{subdomain}/status [patch]
func (h *AdminHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req types.StatusUpdateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	if err := validators.New().Struct(req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, err.Error())
		return
	}
	sub := chi.URLParam(r, "subdomain")
	err := h.svc.UpdateStatus(r.Context(), sub, services.StatusUpdate{
		Status:          req.Status,
		ProgressPercent: req.ProgressPercent,
		CurrentPhase:    req.CurrentPhase,
		NextMilestone:   req.NextMilestone,
	})
	if err != nil {
		writeError(w, err)
		return
	}
	t, err := h.svc.GetProject(r.Context(), sub)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, types.APIResponse{Success: true, Data: tenantView(t)})
}

// EnqueueRun schedules an immediate daily-cycle run for the tenant.
// @Summary      Enqueue a daily cycle run
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        subdomain  path  string                   true   "Tenant subdomain"
// @Param        body       body  types.EnqueueRunRequest  false  "Run options"
// @Success      202  {object}  types.APIResponse{data=types.EnqueuedRun}
// @Failure      404  {object}  types.APIResponse
// @Failure      503  {object}  types.APIResponse
// @Router       /api/admin/tenants/{subdomain}/runs [post]
func (h *AdminHandler) EnqueueRun(w http.ResponseWriter, r *http.Request) {
	if h.queue == nil {
		writeError(w, appErr.New(appErr.CodeUnavailable, "job queue not configured"))
		return
	}
	var req types.EnqueueRunRequest
	if err := decodeJSON(r, &req); err != nil {
		writeErrorStr(w, http.StatusBadRequest, "invalid json")
		return
	}
	sub := chi.URLParam(r, "subdomain")
	if _, err := h.svc.GetProject(r.Context(), sub); err != nil {
		writeError(w, err)
		return
	}

	task, err := tasks.NewDailyCycleTask(sub, req.DryRun, 0)
	if err != nil {
		writeError(w, err)
		return
	}
	info, err := h.queue.EnqueueContext(r.Context(), task)
	if err != nil {
		logger.L().Error("enqueue daily cycle failed", zap.String("subdomain", sub), zap.Error(err))
		writeError(w, appErr.Wrap(err, appErr.CodeUnavailable, "enqueue failed"))
		return
	}
	logger.L().Info("daily cycle enqueued", zap.String("subdomain", sub), zap.String("task_id", info.ID))
	writeJSON(w, http.StatusAccepted, types.APIResponse{Success: true, Data: types.EnqueuedRun{
		TaskID:    info.ID,
		Queue:     info.Queue,
		Subdomain: sub,
		DryRun:    req.DryRun,
	}})
}

func tenantView(t *models.Tenant) types.TenantView {
	return types.TenantView{
		StatusView:     statusView(t),
		ID:             t.ID.String(),
		HasAPIKey:      models.Deref(t.InstantlyAPIKey) != "",
		GoogleSheetURL: models.Deref(t.GoogleSheetURL),
		ShareEmail:     models.Deref(t.ShareEmail),
		ReportEmail:    models.Deref(t.ReportEmail),
		RunTime:        models.Deref(t.RunTime),
	}
}
