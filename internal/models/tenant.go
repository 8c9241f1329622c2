package models

import (
	"time"

	"github.com/google/uuid"
)

// Workflow statuses shown on the dashboard. The set is open: any string is stored as-is.
const (
	StatusPlanning = "planning"
	StatusBuilding = "building"
	StatusTesting  = "testing"
	StatusLive     = "live"
	// StatusActive marks records created implicitly by an integration write.
	StatusActive = "active"
)

// Tenant is the per-subdomain project record.
type Tenant struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Subdomain       string    `gorm:"column:subdomain;type:text;uniqueIndex;not null" json:"subdomain" validate:"required"`
	ClientName      string    `gorm:"column:client_name;type:text;not null" json:"client_name" validate:"required"`
	ProjectName     string    `gorm:"column:project_name;type:text;not null" json:"project_name" validate:"required"`
	Status          string    `gorm:"column:status;type:varchar(32);not null" json:"status" validate:"required"`
	ProgressPercent int       `gorm:"column:progress_percent;not null" json:"progress_percent" validate:"gte=0,lte=100"`
	CurrentPhase    string    `gorm:"column:current_phase;type:text;not null" json:"current_phase"`
	NextMilestone   string    `gorm:"column:next_milestone;type:text;not null" json:"next_milestone"`
	LastUpdated     string    `gorm:"column:last_updated;type:text;not null" json:"last_updated"`
	BlueprintPath   *string   `gorm:"column:blueprint_path;type:text" json:"blueprint_path"`

	InstantlyAPIKey *string `gorm:"column:instantly_api_key;type:text" json:"-"`
	GoogleSheetURL  *string `gorm:"column:google_sheet_url;type:text" json:"google_sheet_url"`
	ShareEmail      *string `gorm:"column:share_email;type:text" json:"share_email"`
	ReportEmail     *string `gorm:"column:report_email;type:text" json:"report_email"`
	RunTime         *string `gorm:"column:run_time;type:text" json:"run_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Tenant) TableName() string { return "projects" }

// TenantPatch is a partial mutation. A nil field is left untouched.
type TenantPatch struct {
	ClientName      *string
	ProjectName     *string
	Status          *string
	ProgressPercent *int
	CurrentPhase    *string
	NextMilestone   *string
	BlueprintPath   *string
	InstantlyAPIKey *string
	GoogleSheetURL  *string
	ShareEmail      *string
	ReportEmail     *string
	RunTime         *string
}

type patchField struct {
	column string
	set    bool
	apply  func(t *Tenant)
}

func (p TenantPatch) fields() []patchField {
	str := func(src *string, dst func(t *Tenant) *string) func(*Tenant) {
		return func(t *Tenant) { *dst(t) = *src }
	}
	opt := func(src *string, dst func(t *Tenant) **string) func(*Tenant) {
		return func(t *Tenant) { v := *src; *dst(t) = &v }
	}
	return []patchField{
		{"client_name", p.ClientName != nil, str(p.ClientName, func(t *Tenant) *string { return &t.ClientName })},
		{"project_name", p.ProjectName != nil, str(p.ProjectName, func(t *Tenant) *string { return &t.ProjectName })},
		{"status", p.Status != nil, str(p.Status, func(t *Tenant) *string { return &t.Status })},
		{"progress_percent", p.ProgressPercent != nil, func(t *Tenant) { t.ProgressPercent = *p.ProgressPercent }},
		{"current_phase", p.CurrentPhase != nil, str(p.CurrentPhase, func(t *Tenant) *string { return &t.CurrentPhase })},
		{"next_milestone", p.NextMilestone != nil, str(p.NextMilestone, func(t *Tenant) *string { return &t.NextMilestone })},
		{"blueprint_path", p.BlueprintPath != nil, opt(p.BlueprintPath, func(t *Tenant) **string { return &t.BlueprintPath })},
		{"instantly_api_key", p.InstantlyAPIKey != nil, opt(p.InstantlyAPIKey, func(t *Tenant) **string { return &t.InstantlyAPIKey })},
		{"google_sheet_url", p.GoogleSheetURL != nil, opt(p.GoogleSheetURL, func(t *Tenant) **string { return &t.GoogleSheetURL })},
		{"share_email", p.ShareEmail != nil, opt(p.ShareEmail, func(t *Tenant) **string { return &t.ShareEmail })},
		{"report_email", p.ReportEmail != nil, opt(p.ReportEmail, func(t *Tenant) **string { return &t.ReportEmail })},
		{"run_time", p.RunTime != nil, opt(p.RunTime, func(t *Tenant) **string { return &t.RunTime })},
	}
}

// Columns returns the database columns the patch supplies, in declaration order.
func (p TenantPatch) Columns() []string {
	var cols []string
	for _, f := range p.fields() {
		if f.set {
			cols = append(cols, f.column)
		}
	}
	return cols
}

// Apply copies the supplied fields onto t.
func (p TenantPatch) Apply(t *Tenant) {
	for _, f := range p.fields() {
		if f.set {
			f.apply(t)
		}
	}
}

// IsEmpty reports whether the patch supplies no fields.
func (p TenantPatch) IsEmpty() bool { return len(p.Columns()) == 0 }

// Deref returns the pointed-to string or "" for nil.
func Deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
