// models/provider.go
package models

import "math"

type PricingTier string

const (
	TierFree      PricingTier = "free"
	TierBasic     PricingTier = "basic"
	TierPremium   PricingTier = "premium"
	TierExclusive PricingTier = "exclusive"
)

type PaymentStatus string

const (
	PaymentPaid    PaymentStatus = "paid"
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPending PaymentStatus = "pending"
)

type ApprovalStatus string

const (
	ApprovalActive  ApprovalStatus = "active"
	ApprovalPending ApprovalStatus = "pending"
	ApprovalExpired ApprovalStatus = "expired"
)

// Review is user feedback embedded in exactly one provider.
type Review struct {
	ID       string `json:"id" bson:"id"`
	UserName string `json:"userName" bson:"userName"`
	Rating   int    `json:"rating" bson:"rating"`
	Comment  string `json:"comment" bson:"comment"`
	Date     string `json:"date" bson:"date"`
	Image    string `json:"image,omitempty" bson:"image,omitempty"`
}

type SocialMedia struct {
	Instagram string `json:"instagram,omitempty" bson:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty" bson:"facebook,omitempty"`
	TikTok    string `json:"tiktok,omitempty" bson:"tiktok,omitempty"`
}

type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// Provider is a single business listing.
//
// Rating and ReviewCount are denormalized aggregates: outside the admin
// manual-override path they are only ever written by AddReview and
// RemoveReview.
type Provider struct {
	ID               string         `json:"id" bson:"id"`
	Name             string         `json:"name" bson:"name"`
	Category         string         `json:"category" bson:"category"`
	SubCategory      string         `json:"subCategory,omitempty" bson:"subCategory,omitempty"`
	City             string         `json:"city" bson:"city"`
	Address          string         `json:"address" bson:"address"`
	Coordinates      Coordinates    `json:"coordinates" bson:"coordinates"`
	MapsURL          string         `json:"mapsUrl,omitempty" bson:"mapsUrl,omitempty"`
	Description      string         `json:"description" bson:"description"`
	Features         string         `json:"features,omitempty" bson:"features,omitempty"`
	Attributes       []string       `json:"attributes,omitempty" bson:"attributes,omitempty"`
	Tags             []string       `json:"tags,omitempty" bson:"tags,omitempty"`
	Logo             string         `json:"logo,omitempty" bson:"logo,omitempty"`
	Image            string         `json:"image,omitempty" bson:"image,omitempty"`
	Gallery          []string       `json:"gallery,omitempty" bson:"gallery,omitempty"`
	SocialMedia      SocialMedia    `json:"socialMedia,omitempty" bson:"socialMedia,omitempty"`
	Website          string         `json:"website,omitempty" bson:"website,omitempty"`
	Phone            string         `json:"phone" bson:"phone"`
	WhatsApp         string         `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
	Email            string         `json:"email,omitempty" bson:"email,omitempty"`
	Rating           float64        `json:"rating" bson:"rating"`
	ReviewCount      int            `json:"reviewCount" bson:"reviewCount"`
	Reviews          []Review       `json:"reviews" bson:"reviews"`
	Tier             PricingTier    `json:"tier" bson:"tier"`
	OpeningHours     string         `json:"openingHours" bson:"openingHours"`
	IsApproved       bool           `json:"isApproved" bson:"isApproved"`
	ApprovalStatus   ApprovalStatus `json:"approvalStatus,omitempty" bson:"approvalStatus,omitempty"`
	PaymentStatus    PaymentStatus  `json:"paymentStatus,omitempty" bson:"paymentStatus,omitempty"`
	ValidUntil       string         `json:"validUntil,omitempty" bson:"validUntil,omitempty"`
	PromotionalOffer string         `json:"promotionalOffer,omitempty" bson:"promotionalOffer,omitempty"`
}

// roundRating rounds a mean rating to one decimal place.
func roundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

func recalculateAggregate(p Provider) Provider {
	p.ReviewCount = len(p.Reviews)
	if p.ReviewCount == 0 {
		p.Rating = 0
		return p
	}
	sum := 0
	for _, r := range p.Reviews {
		sum += r.Rating
	}
	p.Rating = roundRating(float64(sum) / float64(p.ReviewCount))
	return p
}

// AddReview returns a copy of the provider with the review prepended
// (most recent first) and the rating aggregate recomputed.
func AddReview(p Provider, review Review) Provider {
	reviews := make([]Review, 0, len(p.Reviews)+1)
	reviews = append(reviews, review)
	reviews = append(reviews, p.Reviews...)
	p.Reviews = reviews
	return recalculateAggregate(p)
}

// RemoveReview returns a copy of the provider without the matching
// review and the rating aggregate recomputed. Removing an unknown id is
// a no-op apart from the recomputation.
func RemoveReview(p Provider, reviewID string) Provider {
	reviews := make([]Review, 0, len(p.Reviews))
	for _, r := range p.Reviews {
		if r.ID != reviewID {
			reviews = append(reviews, r)
		}
	}
	p.Reviews = reviews
	return recalculateAggregate(p)
}
