// repositories/seed.go
package repositories

import (
	"time"

	"github.com/top5deutschland/top5_backend/models"
)

// SeedProviderID is the hard-coded record seeded into the providers
// collection on first load if absent (a data patch, not a general
// behavior).
const SeedProviderID = "carskin-folientechnik-bamberg"

// SeedCategories is the built-in default taxonomy used when the
// categories key is absent from the store.
func SeedCategories() []models.CategoryInfo {
	return []models.CategoryInfo{
		{
			ID:       "gastronomy",
			Label:    models.LocalizedLabel{De: "Gastronomie", En: "Dining & Drinks"},
			IconName: "Utensils",
			SubCategories: []models.SubCategory{
				{ID: "breakfast", Label: models.LocalizedLabel{De: "Frühstück", En: "Breakfast & Brunch"}},
				{ID: "doener", Label: models.LocalizedLabel{De: "Döner", En: "Kebab Specials"}},
				{ID: "italian", Label: models.LocalizedLabel{De: "Italienisch", En: "Italian Cuisine"}},
				{ID: "schnitzel", Label: models.LocalizedLabel{De: "Schnitzel", En: "Traditional Schnitzel"}},
			},
		},
		{ID: "beauty", Label: models.LocalizedLabel{De: "Beauty & Wellness", En: "Beauty & Wellbeing"}, IconName: "Sparkles", SubCategories: []models.SubCategory{}},
		{ID: "auto", Label: models.LocalizedLabel{De: "Auto & Mobilität", En: "Automotive"}, IconName: "Car", SubCategories: []models.SubCategory{}},
		{ID: "events", Label: models.LocalizedLabel{De: "Freizeit & Events", En: "Culture & Leisure"}, IconName: "Calendar", SubCategories: []models.SubCategory{}},
		{ID: "shopping", Label: models.LocalizedLabel{De: "Shopping", En: "Boutiques & Retail"}, IconName: "ShoppingBag", SubCategories: []models.SubCategory{}},
		{ID: "health", Label: models.LocalizedLabel{De: "Gesundheit", En: "Medical & Health"}, IconName: "HeartPulse", SubCategories: []models.SubCategory{}},
		{ID: "services", Label: models.LocalizedLabel{De: "Dienstleistungen", En: "Professional Services"}, IconName: "Briefcase", SubCategories: []models.SubCategory{}},
	}
}

// SeedProviders is the built-in default provider collection.
func SeedProviders() []models.Provider {
	validUntil := time.Now().AddDate(1, 0, 0).Format("2006-01-02")
	return []models.Provider{
		{
			ID:          SeedProviderID,
			Name:        "CarSkin Folientechnik",
			Category:    "auto",
			City:        "Bamberg",
			Description: "Ihr Spezialist für exklusive Fahrzeugfolierung, XPEL-Lackschutz und professionelle Scheibentönung in Bamberg. Wir bieten Voll- und Teilfolierung, Keramikversiegelung und Steinschlagschutz mit bis zu 10 Jahren Garantie. Ihr Fahrzeug wird bei uns zum Unikat.",
			Features:    "XPEL-Lackschutz • Fahrzeugfolierung • Scheibentönung • Keramikversiegelung",
			Attributes:  []string{"Parkplatz", "Terminvereinbarung", "Garantie"},
			Tags:        []string{"Fahrzeugfolierung", "Lackschutz", "PPF", "XPEL", "Scheibentönung"},
			Image:       "https://carskin.de/wp-content/uploads/2023/10/Slider-Carskin-Bamberg.jpg",
			Gallery: []string{
				"https://carskin.de/wp-content/uploads/2023/10/Lackschutz-PPF-Bamberg-Portfolio.jpg",
				"https://carskin.de/wp-content/uploads/2023/10/Vollfolierung-Sportwagen-Bamberg-Referenz.jpg",
				"https://carskin.de/wp-content/uploads/2023/10/Scheibentoenung-Carskin-Bamberg-Galerie.jpg",
			},
			SocialMedia: models.SocialMedia{
				Instagram: "https://www.instagram.com/carskin.de/",
				Facebook:  "https://www.facebook.com/carskin",
			},
			Website:        "https://carskin.de",
			Phone:          "+49 173 2682613",
			WhatsApp:       "+49 173 2682613",
			Email:          "info@carskin.de",
			Address:        "Laubanger 10, 96052 Bamberg",
			Rating:         5.0,
			ReviewCount:    158,
			Reviews:        []models.Review{},
			Tier:           models.TierExclusive,
			OpeningHours:   "Montag: 09:00 - 16:00\nDienstag: 09:00 - 16:00\nMittwoch: 09:00 - 16:00\nDonnerstag: 09:00 - 16:00\nFreitag: 09:00 - 16:00\nSamstag: Geschlossen\nSonntag: Geschlossen",
			IsApproved:     true,
			ApprovalStatus: models.ApprovalActive,
			PaymentStatus:  models.PaymentPaid,
			ValidUntil:     validUntil,
			Coordinates:    models.Coordinates{Lat: 49.91428, Lng: 10.88725},
			MapsURL:        "https://www.google.com/maps/place/Laubanger+10,+96052+Bamberg",
		},
	}
}
