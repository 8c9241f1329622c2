package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/client-portal/engine/internal/api/types"
	"github.com/client-portal/engine/internal/backend"
	appErr "github.com/client-portal/engine/pkg/errors"
)

// ProxyHandler forwards browser calls to the lead-processing backend.
type ProxyHandler struct {
	client *backend.Client
}

func NewProxyHandler(client *backend.Client) *ProxyHandler {
	return &ProxyHandler{client: client}
}

// @Summary      Proxy a GET to the lead backend
// @Tags         proxy
// @Produce      json
// @Param        path  query  string  true  "Backend path, starting with /"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  types.ProxyError
// @Failure      500  {object}  types.ProxyError
// @Router       /api/proxy [get]
func (h *ProxyHandler) Get(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		writeJSON(w, http.StatusBadRequest, types.ProxyError{Message: "Missing path param"})
		return
	}
	h.forward(w, r, http.MethodGet, path, nil)
}

// Post forwards the JSON body. Without ?path= it targets the lead processing endpoint.
// @Summary      Proxy a POST to the lead backend
// @Tags         proxy
// @Accept       json
// @Produce      json
// @Param        path  query  string  false  "Backend path, defaults to /api/leads/process-url"
// @Param        body  body  object  true  "JSON payload"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  types.ProxyError
// @Failure      500  {object}  types.ProxyError
// @Router       /api/proxy [post]
func (h *ProxyHandler) Post(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Query().Get("path")
	if path == "" {
		path = backend.DefaultPostPath
	}
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil || !json.Valid(body) {
		writeJSON(w, http.StatusBadRequest, types.ProxyError{Message: "invalid json"})
		return
	}
	h.forward(w, r, http.MethodPost, path, body)
}

func (h *ProxyHandler) forward(w http.ResponseWriter, r *http.Request, method, path string, body []byte) {
	if !h.client.Configured() {
		writeJSON(w, http.StatusInternalServerError, types.ProxyError{Message: "Backend URL not configured"})
		return
	}
	// A relative path keeps the target on the configured backend host.
	if !strings.HasPrefix(path, "/") || strings.HasPrefix(path, "//") {
		writeJSON(w, http.StatusBadRequest, types.ProxyError{Message: "path must start with /"})
		return
	}

	resp, err := h.client.Forward(r.Context(), method, path, body)
	if err != nil {
		pe := types.ProxyError{Message: err.Error(), DebugURL: h.client.URL(path)}
		var ae *appErr.AppError
		if errors.As(err, &ae) {
			pe.Message = ae.Message
		}
		writeJSON(w, http.StatusInternalServerError, pe)
		return
	}

	ct := resp.ContentType
	if ct == "" {
		ct = "application/json"
	}
	w.Header().Set("Content-Type", ct)
	w.WriteHeader(resp.Status)
	_, _ = w.Write(resp.Body)
}
