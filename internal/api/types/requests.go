package types

import "github.com/client-portal/engine/internal/models"

// ConfigWriteRequest is the body of the config-writing endpoints. Omitted
// fields are left untouched; an explicit "" clears a field.
type ConfigWriteRequest struct {
	Domain          string  `json:"domain"`
	InstantlyAPIKey *string `json:"instantlyApiKey"`
	GoogleSheetURL  *string `json:"googleSheetUrl"`
	ShareEmail      *string `json:"shareEmail"`
	ReportEmail     *string `json:"reportEmail"`
	RunTime         *string `json:"runTime"`
}

func (r ConfigWriteRequest) Patch() models.TenantPatch {
	return models.TenantPatch{
		InstantlyAPIKey: r.InstantlyAPIKey,
		GoogleSheetURL:  r.GoogleSheetURL,
		ShareEmail:      r.ShareEmail,
		ReportEmail:     r.ReportEmail,
		RunTime:         r.RunTime,
	}
}

type VerifyRequest struct {
	Token string `json:"token"`
}

type RunRequest struct {
	Token       string `json:"token"`
	SheetURL    string `json:"sheetUrl"`
	ReportEmail string `json:"reportEmail"`
}

type SheetAccessRequest struct {
	SheetURL string `json:"sheetUrl"`
}

type SheetCreateRequest struct {
	Title      string `json:"title"`
	ShareEmail string `json:"shareEmail"`
}

type DiagRequest struct {
	APIKey string `json:"apiKey"`
}

type SeedTenantRequest struct {
	Subdomain       string  `json:"subdomain" validate:"required,max=63,hostname_rfc1123"`
	ClientName      string  `json:"client_name" validate:"max=200"`
	ProjectName     string  `json:"project_name" validate:"max=200"`
	Status          string  `json:"status" validate:"max=32"`
	ProgressPercent int     `json:"progress_percent" validate:"gte=0,lte=100"`
	CurrentPhase    string  `json:"current_phase"`
	NextMilestone   string  `json:"next_milestone"`
	BlueprintPath   *string `json:"blueprint_path"`
}

type StatusUpdateRequest struct {
	Status          *string `json:"status" validate:"omitempty,min=1,max=32"`
	ProgressPercent *int    `json:"progress_percent" validate:"omitempty,gte=0,lte=100"`
	CurrentPhase    *string `json:"current_phase"`
	NextMilestone   *string `json:"next_milestone"`
}

type EnqueueRunRequest struct {
	DryRun bool `json:"dry_run"`
}
