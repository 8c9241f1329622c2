package types

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *APIError   `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

type Meta struct {
	RequestID string `json:"request_id,omitempty"`
	Total     int64  `json:"total,omitempty"`
}

// ContractError is the flat error body of the integration endpoints.
type ContractError struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// ScriptFailure is returned when a script cannot be run or its output parsed.
type ScriptFailure struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
	Stderr  string `json:"stderr,omitempty"`
}

// ProxyError mirrors the backend proxy's error body.
type ProxyError struct {
	Message  string `json:"message"`
	DebugURL string `json:"debug_url,omitempty"`
}

// StatusView is the dashboard project card.
type StatusView struct {
	Subdomain       string `json:"subdomain"`
	ClientName      string `json:"client_name"`
	ProjectName     string `json:"project_name"`
	Status          string `json:"status"`
	ProgressPercent int    `json:"progress_percent"`
	CurrentPhase    string `json:"current_phase"`
	NextMilestone   string `json:"next_milestone"`
	LastUpdated     string `json:"last_updated"`
	BlueprintPath   string `json:"blueprint_path"`
}

// TenantView is the admin listing entry. The API key is reported, never returned.
type TenantView struct {
	StatusView
	ID             string `json:"id"`
	HasAPIKey      bool   `json:"has_api_key"`
	GoogleSheetURL string `json:"google_sheet_url"`
	ShareEmail     string `json:"share_email"`
	ReportEmail    string `json:"report_email"`
	RunTime        string `json:"run_time"`
}

type Automation struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Href        string `json:"href"`
	Status      string `json:"status"`
	Restricted  bool   `json:"restricted"`
}

type ToolDescriptor struct {
	Tenant      string `json:"tenant"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Submit      string `json:"submit"`
	Poll        string `json:"poll"`
}

type EnqueuedRun struct {
	TaskID    string `json:"task_id"`
	Queue     string `json:"queue"`
	Subdomain string `json:"subdomain"`
	DryRun    bool   `json:"dry_run"`
}
