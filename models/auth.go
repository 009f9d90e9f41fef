// models/auth.go
package models

// AdminLoginRequest carries the shared-secret password for the admin gate.
type AdminLoginRequest struct {
	Password string `json:"password" validate:"required"`
}

// AdminLoginData is returned on a successful login.
type AdminLoginData struct {
	Token string `json:"token"`
}

// WeeklyHours is the structured editing form of a provider's free-text
// opening hours, one field per day of week.
type WeeklyHours struct {
	Monday    string `json:"mo"`
	Tuesday   string `json:"di"`
	Wednesday string `json:"mi"`
	Thursday  string `json:"do"`
	Friday    string `json:"fr"`
	Saturday  string `json:"sa"`
	Sunday    string `json:"so"`
}

// ProviderSaveRequest is the admin editor payload: the full provider
// record plus the per-day hour fields, which the server serializes back
// into the single openingHours string.
type ProviderSaveRequest struct {
	Provider
	Hours WeeklyHours `json:"hours"`
}

// ProviderEditView is the admin editor representation of an existing
// provider, with openingHours parsed into per-day fields.
type ProviderEditView struct {
	Provider
	Hours WeeklyHours `json:"hours"`
}

// RegistrationRequest is the reduced public intake field set.
type RegistrationRequest struct {
	Name        string      `json:"name" validate:"required"`
	Category    string      `json:"category" validate:"required"`
	Address     string      `json:"address" validate:"required"`
	Phone       string      `json:"phone" validate:"required"`
	Description string      `json:"description" validate:"max=300"`
	Website     string      `json:"website,omitempty"`
	Instagram   string      `json:"instagram,omitempty"`
	Facebook    string      `json:"facebook,omitempty"`
	Tier        PricingTier `json:"tier" validate:"required,oneof=free basic premium exclusive"`
}

// ReviewRequest is the public review-submission payload.
type ReviewRequest struct {
	UserName string `json:"userName" validate:"required"`
	Rating   int    `json:"rating" validate:"required,min=1,max=5"`
	Comment  string `json:"comment" validate:"required"`
	Image    string `json:"image,omitempty"`
	Lang     string `json:"lang,omitempty"`
}

// CategoryRequest creates a new top-level category. The identifier is
// slugged server-side; the icon must come from the closed icon set.
type CategoryRequest struct {
	ID       string `json:"id" validate:"required"`
	LabelDe  string `json:"labelDe" validate:"required"`
	LabelEn  string `json:"labelEn,omitempty"`
	IconName string `json:"iconName,omitempty"`
}

// SubCategoryRequest appends a subcategory to an existing category; its
// id is derived from the German label.
type SubCategoryRequest struct {
	LabelDe string `json:"labelDe" validate:"required"`
	LabelEn string `json:"labelEn,omitempty"`
}
