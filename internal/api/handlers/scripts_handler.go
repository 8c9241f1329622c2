package handlers

import (
	"crypto/subtle"
	"errors"
	"net/http"

	"github.com/client-portal/engine/internal/api/types"
	"github.com/client-portal/engine/internal/scripts"
	appErr "github.com/client-portal/engine/pkg/errors"
)

// ScriptsHandler triggers the automation scripts and relays their JSON output.
type ScriptsHandler struct {
	runner  scripts.Runner
	diagKey string
}

func NewScriptsHandler(runner scripts.Runner, diagKey string) *ScriptsHandler {
	return &ScriptsHandler{runner: runner, diagKey: diagKey}
}

// @Summary      Verify an Instantly workspace
// @Tags         scripts
// @Accept       json
// @Produce      json
// @Param        body  body  types.VerifyRequest  true  "API token"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  types.ScriptFailure
// @Failure      500  {object}  types.ScriptFailure
// @Router       /api/instantly/verify [post]
func (h *ScriptsHandler) VerifyWorkspace(w http.ResponseWriter, r *http.Request) {
	var req types.VerifyRequest
	if err := decodeJSON(r, &req); err != nil {
		writeScriptFailure(w, http.StatusBadRequest, errMessage(err), nil)
		return
	}
	if req.Token == "" {
		writeScriptFailure(w, http.StatusBadRequest, "Token is required", nil)
		return
	}
	if !scripts.ValidToken(req.Token) {
		writeScriptFailure(w, http.StatusBadRequest, "Invalid characters in token", nil)
		return
	}
	h.run(w, r, scripts.VerifyWorkspace, "--key", req.Token)
}

// @Summary      Run the ad-hoc workflow
// @Tags         scripts
// @Accept       json
// @Produce      json
// @Param        body  body  types.RunRequest  true  "Run arguments"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  types.ScriptFailure
// @Failure      500  {object}  types.ScriptFailure
// @Router       /api/instantly/run [post]
func (h *ScriptsHandler) RunWorkflow(w http.ResponseWriter, r *http.Request) {
	var req types.RunRequest
	if err := decodeJSON(r, &req); err != nil {
		writeScriptFailure(w, http.StatusBadRequest, errMessage(err), nil)
		return
	}
	if req.Token == "" {
		writeScriptFailure(w, http.StatusBadRequest, "Token is required", nil)
		return
	}
	if !scripts.ValidToken(req.Token) {
		writeScriptFailure(w, http.StatusBadRequest, "Invalid characters in token", nil)
		return
	}
	args := []string{"--key", req.Token}
	if req.SheetURL != "" {
		args = append(args, "--sheet", scripts.CleanURL(req.SheetURL))
	}
	if req.ReportEmail != "" {
		args = append(args, "--report_email", scripts.CleanEmail(req.ReportEmail))
	}
	h.run(w, r, scripts.RunAdhocWorkflow, args...)
}

// @Summary      Check Google Sheet access
// @Tags         scripts
// @Accept       json
// @Produce      json
// @Param        body  body  types.SheetAccessRequest  true  "Sheet URL"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  types.ScriptFailure
// @Failure      500  {object}  types.ScriptFailure
// @Router       /api/sheets/check-access [post]
func (h *ScriptsHandler) CheckSheetAccess(w http.ResponseWriter, r *http.Request) {
	var req types.SheetAccessRequest
	if err := decodeJSON(r, &req); err != nil {
		writeScriptFailure(w, http.StatusBadRequest, errMessage(err), nil)
		return
	}
	if req.SheetURL == "" {
		writeScriptFailure(w, http.StatusBadRequest, "URL is required", nil)
		return
	}
	h.run(w, r, scripts.CheckSheetAccess, "--url", scripts.CleanURL(req.SheetURL))
}

// @Summary      Create a client sheet
// @Tags         scripts
// @Accept       json
// @Produce      json
// @Param        body  body  types.SheetCreateRequest  false  "Sheet options"
// @Success      200  {object}  map[string]interface{}
// @Failure      500  {object}  types.ScriptFailure
// @Router       /api/sheets/create [post]
func (h *ScriptsHandler) CreateSheet(w http.ResponseWriter, r *http.Request) {
	var req types.SheetCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeScriptFailure(w, http.StatusBadRequest, errMessage(err), nil)
		return
	}
	args := []string{"--title", scripts.CleanTitle(req.Title)}
	if req.ShareEmail != "" {
		args = append(args, "--share_email", scripts.CleanEmail(req.ShareEmail))
	}
	h.run(w, r, scripts.CreateClientSheet, args...)
}

// DebugAuth runs the credential diagnostics and returns raw output. Disabled
// when no diagnostics key is configured.
// @Summary      Credential diagnostics
// @Tags         scripts
// @Accept       json
// @Produce      json
// @Param        body  body  types.DiagRequest  true  "Diagnostics key"
// @Success      200  {object}  map[string]string
// @Failure      401  {object}  types.ContractError
// @Router       /api/debug/auth [post]
func (h *ScriptsHandler) DebugAuth(w http.ResponseWriter, r *http.Request) {
	var req types.DiagRequest
	if err := decodeJSON(r, &req); err != nil {
		writeScriptFailure(w, http.StatusBadRequest, errMessage(err), nil)
		return
	}
	if h.diagKey == "" || subtle.ConstantTimeCompare([]byte(req.APIKey), []byte(h.diagKey)) != 1 {
		writeContractError(w, http.StatusUnauthorized, "Unauthorized", nil)
		return
	}
	res, err := h.runner.Run(r.Context(), scripts.DebugCreds)
	if err != nil {
		writeScriptFailure(w, http.StatusInternalServerError, errMessage(err), res)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"stdout": res.Stdout, "stderr": res.Stderr})
}

func (h *ScriptsHandler) run(w http.ResponseWriter, r *http.Request, script string, args ...string) {
	res, err := h.runner.Run(r.Context(), script, args...)
	if err != nil {
		writeScriptFailure(w, http.StatusInternalServerError, errMessage(err), res)
		return
	}
	out, err := res.JSON()
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, types.ScriptFailure{
			Success: false,
			Error:   "Failed to parse script output",
			Details: res.Stdout,
			Stderr:  res.Stderr,
		})
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func writeScriptFailure(w http.ResponseWriter, status int, msg string, res *scripts.Result) {
	body := types.ScriptFailure{Success: false, Error: msg}
	if res != nil {
		body.Stderr = res.Stderr
	}
	writeJSON(w, status, body)
}

func errMessage(err error) string {
	var ae *appErr.AppError
	if errors.As(err, &ae) {
		return ae.Message
	}
	return err.Error()
}
