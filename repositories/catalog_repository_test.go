package repositories

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/top5deutschland/top5_backend/models"
)

func newTestRepo(t *testing.T) (*CatalogRepository, *MemoryStore) {
	t.Helper()
	store := NewMemoryStore()
	repo := NewCatalogRepository(store)
	require.NoError(t, repo.Init(context.Background()))
	return repo, store
}

func TestInitSeedsEmptyStore(t *testing.T) {
	repo, _ := newTestRepo(t)

	categories := repo.Categories()
	assert.Len(t, categories, 7)
	assert.Equal(t, "gastronomy", categories[0].ID)
	assert.Len(t, categories[0].SubCategories, 4)

	providers := repo.Providers()
	require.Len(t, providers, 1)
	assert.Equal(t, SeedProviderID, providers[0].ID)

	assert.Empty(t, repo.Favorites())
}

func TestInitPatchesSeedProviderIntoExistingData(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	require.NoError(t, store.Save(ctx, KeyProviders, []byte(`[{"id":"existing","name":"Old","city":"Bamberg"}]`)))

	repo := NewCatalogRepository(store)
	require.NoError(t, repo.Init(ctx))

	providers := repo.Providers()
	require.Len(t, providers, 2)
	assert.Equal(t, SeedProviderID, providers[0].ID)
	assert.Equal(t, "existing", providers[1].ID)
}

func TestInitDoesNotDuplicateSeedProvider(t *testing.T) {
	_, store := newTestRepo(t)

	// Second boot against the same store must not insert a second copy.
	repo2 := NewCatalogRepository(store)
	require.NoError(t, repo2.Init(context.Background()))
	assert.Len(t, repo2.Providers(), 1)
}

func TestPrependProviderGoesToHead(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.PrependProvider(ctx, models.Provider{ID: "first", Name: "First"}))
	require.NoError(t, repo.PrependProvider(ctx, models.Provider{ID: "second", Name: "Second"}))

	providers := repo.Providers()
	assert.Equal(t, "second", providers[0].ID)
	assert.Equal(t, "first", providers[1].ID)
	assert.Equal(t, SeedProviderID, providers[2].ID)
}

func TestMutationsSurviveReload(t *testing.T) {
	repo, store := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.PrependProvider(ctx, models.Provider{ID: "p1", Name: "One"}))
	_, err := repo.UpdateProvider(ctx, "p1", func(p models.Provider) models.Provider {
		return models.AddReview(p, models.Review{ID: "r1", Rating: 4})
	})
	require.NoError(t, err)

	repo2 := NewCatalogRepository(store)
	require.NoError(t, repo2.Init(ctx))

	p, err := repo2.FindProvider("p1")
	require.NoError(t, err)
	assert.Equal(t, 1, p.ReviewCount)
	assert.Equal(t, 4.0, p.Rating)
}

func TestReplaceProviderUnknownID(t *testing.T) {
	repo, _ := newTestRepo(t)
	err := repo.ReplaceProvider(context.Background(), models.Provider{ID: "ghost"})
	assert.ErrorIs(t, err, ErrProviderNotFound)
}

func TestDeleteProvider(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.DeleteProvider(ctx, SeedProviderID))
	_, err := repo.FindProvider(SeedProviderID)
	assert.ErrorIs(t, err, ErrProviderNotFound)

	assert.ErrorIs(t, repo.DeleteProvider(ctx, SeedProviderID), ErrProviderNotFound)
}

func TestAddCategoryRejectsDuplicateID(t *testing.T) {
	repo, _ := newTestRepo(t)
	err := repo.AddCategory(context.Background(), models.CategoryInfo{ID: "gastronomy"})
	assert.Error(t, err)
}

func TestDeleteCategoryDoesNotCascade(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.PrependProvider(ctx, models.Provider{
		ID: "pizza-haus", Category: "gastronomy", City: "Bamberg", IsApproved: true,
	}))
	require.NoError(t, repo.DeleteCategory(ctx, "gastronomy"))

	// The provider keeps its stale category reference.
	p, err := repo.FindProvider("pizza-haus")
	require.NoError(t, err)
	assert.Equal(t, "gastronomy", p.Category)

	// And the category is gone from the taxonomy.
	assert.Nil(t, models.FindCategory(repo.Categories(), "gastronomy"))
}

func TestAddSubCategoryUniqueWithinParent(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	sub := models.SubCategory{ID: "vegan", Label: models.LocalizedLabel{De: "Vegan", En: "Vegan"}}
	require.NoError(t, repo.AddSubCategory(ctx, "gastronomy", sub))
	assert.Error(t, repo.AddSubCategory(ctx, "gastronomy", sub))

	// The same id is fine under a different parent.
	assert.NoError(t, repo.AddSubCategory(ctx, "shopping", sub))
}

func TestDeleteSubCategoryLeavesSiblings(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.DeleteSubCategory(ctx, "gastronomy", "doener"))

	cat := models.FindCategory(repo.Categories(), "gastronomy")
	require.NotNil(t, cat)
	assert.Len(t, cat.SubCategories, 3)
	assert.False(t, cat.HasSubCategory("doener"))
	assert.True(t, cat.HasSubCategory("italian"))
}

func TestToggleFavorite(t *testing.T) {
	repo, _ := newTestRepo(t)
	ctx := context.Background()

	on, err := repo.ToggleFavorite(ctx, SeedProviderID)
	require.NoError(t, err)
	assert.True(t, on)
	assert.Equal(t, []string{SeedProviderID}, repo.Favorites())

	off, err := repo.ToggleFavorite(ctx, SeedProviderID)
	require.NoError(t, err)
	assert.False(t, off)
	assert.Empty(t, repo.Favorites())
}
