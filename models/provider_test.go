package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddReviewRecalculatesAggregate(t *testing.T) {
	p := Provider{ID: "p1", Reviews: []Review{}}

	p = AddReview(p, Review{ID: "r1", UserName: "Anna", Rating: 5, Comment: "Top"})
	assert.Equal(t, 1, p.ReviewCount)
	assert.Equal(t, 5.0, p.Rating)

	p = AddReview(p, Review{ID: "r2", UserName: "Ben", Rating: 4, Comment: "Gut"})
	assert.Equal(t, 2, p.ReviewCount)
	assert.Equal(t, 4.5, p.Rating)
}

func TestAddReviewPrependsNewestFirst(t *testing.T) {
	p := Provider{ID: "p1"}
	p = AddReview(p, Review{ID: "old", Rating: 3})
	p = AddReview(p, Review{ID: "new", Rating: 5})

	assert.Equal(t, "new", p.Reviews[0].ID)
	assert.Equal(t, "old", p.Reviews[1].ID)
}

func TestAddReviewRoundsToOneDecimal(t *testing.T) {
	p := Provider{ID: "p1"}
	p = AddReview(p, Review{ID: "r1", Rating: 5})
	p = AddReview(p, Review{ID: "r2", Rating: 4})
	p = AddReview(p, Review{ID: "r3", Rating: 4})

	// mean 13/3 = 4.333..., rounded to 4.3
	assert.Equal(t, 4.3, p.Rating)
}

func TestAddReviewOverwritesManualAggregate(t *testing.T) {
	// Imported listings can start with hand-set aggregates and no
	// review records; the first real review resets both fields.
	p := Provider{ID: "p1", Rating: 5.0, ReviewCount: 158, Reviews: []Review{}}
	p = AddReview(p, Review{ID: "r1", Rating: 3})

	assert.Equal(t, 1, p.ReviewCount)
	assert.Equal(t, 3.0, p.Rating)
}

func TestRemoveReviewRecalculates(t *testing.T) {
	p := Provider{ID: "p1"}
	p = AddReview(p, Review{ID: "r1", Rating: 5})
	p = AddReview(p, Review{ID: "r2", Rating: 1})

	p = RemoveReview(p, "r2")
	assert.Equal(t, 1, p.ReviewCount)
	assert.Equal(t, 5.0, p.Rating)
}

func TestRemoveLastReviewZeroesRating(t *testing.T) {
	p := Provider{ID: "p1"}
	p = AddReview(p, Review{ID: "r1", Rating: 4})

	p = RemoveReview(p, "r1")
	assert.Equal(t, 0, p.ReviewCount)
	assert.Equal(t, 0.0, p.Rating)
}

func TestRemoveUnknownReviewKeepsReviews(t *testing.T) {
	p := Provider{ID: "p1"}
	p = AddReview(p, Review{ID: "r1", Rating: 4})

	p = RemoveReview(p, "does-not-exist")
	assert.Equal(t, 1, p.ReviewCount)
	assert.Equal(t, 4.0, p.Rating)
}
