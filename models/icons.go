// models/icons.go
package models

// DefaultIconName is the explicit fallback for categories created
// without an icon.
const DefaultIconName = "Briefcase"

// iconNames is the closed set of icon identifiers the frontend can
// render. Unknown identifiers are rejected at data-entry time instead
// of being silently substituted at render time.
var iconNames = map[string]bool{
	"Star": true, "MapPin": true, "Phone": true, "ExternalLink": true,
	"Share2": true, "Navigation": true, "ShoppingCart": true, "Trash2": true,
	"Heart": true, "Search": true, "Menu": true, "X": true, "Plus": true,
	"LogIn": true, "LayoutDashboard": true, "Settings": true,
	"CheckCircle": true, "ShieldCheck": true, "ChevronRight": true,
	"Car": true, "Sparkle": true, "Sparkles": true, "Pencil": true,
	"Instagram": true, "Facebook": true, "User": true, "Briefcase": true,
	"Globe": true, "Clock": true, "TikTok": true, "Utensils": true,
	"Calendar": true, "ShoppingBag": true, "HeartPulse": true,
	"Coffee": true, "Sandwich": true, "Pizza": true, "Drumstick": true,
}

// IsValidIconName reports whether name is in the closed icon set.
func IsValidIconName(name string) bool {
	return iconNames[name]
}
