package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *Service {
	return NewService(NewRepo(SeedCategories(), SeedProducts()))
}

func TestPriceRange(t *testing.T) {
	t.Run("multi variant reports min and max", func(t *testing.T) {
		p := Product{Variants: []Variant{
			{PriceCents: 15000},
			{PriceCents: 20000},
			{PriceCents: 25000},
		}}
		min, max := p.PriceRange()
		assert.Equal(t, int64(15000), min)
		assert.Equal(t, int64(25000), max)
	})

	t.Run("single variant reports that exact price", func(t *testing.T) {
		p := Product{Variants: []Variant{{PriceCents: 9900}}}
		min, max := p.PriceRange()
		assert.Equal(t, int64(9900), min)
		assert.Equal(t, int64(9900), max)
	})
}

func TestDeleteCategoryCascades(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	// cat_1 has prod_1 and prod_3; cat_2 has prod_2
	require.NoError(t, svc.DeleteCategory(ctx, "cat_1"))

	prods, err := svc.List(ctx, "")
	require.NoError(t, err)
	require.Len(t, prods, 1)
	assert.Equal(t, "prod_2", prods[0].ID)

	cats, err := svc.ListCategories(ctx)
	require.NoError(t, err)
	require.Len(t, cats, 1)
	assert.Equal(t, "cat_2", cats[0].ID)
}

func TestAddProductRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	in := ProductInput{
		CategoryID:  "cat_2",
		Name:        "Banner Pack",
		Description: "Three banner sizes.",
		ImageURL:    "https://example.com/banner.jpg",
		Variants: []VariantInput{
			{Name: "Standard", PriceCents: 4900, FileName: "banner.zip"},
			{Name: "Extended", PriceCents: 7900, FileName: "banner_ext.zip"},
		},
	}
	created, err := svc.AddProduct(ctx, in)
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, in.Name, got.Name)
	assert.Equal(t, in.Description, got.Description)
	assert.Equal(t, in.CategoryID, got.CategoryID)
	require.Len(t, got.Variants, 2)
	assert.Equal(t, "Standard", got.Variants[0].Name)
	assert.Equal(t, int64(4900), got.Variants[0].PriceCents)
	assert.NotEqual(t, got.Variants[0].ID, got.Variants[1].ID)
}

func TestAddProductValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.AddProduct(ctx, ProductInput{CategoryID: "cat_1", Name: "No variants"})
	require.Error(t, err)

	_, err = svc.AddProduct(ctx, ProductInput{
		CategoryID: "nope",
		Name:       "Bad category",
		Variants:   []VariantInput{{Name: "v", PriceCents: 100}},
	})
	require.Error(t, err)

	_, err = svc.AddProduct(ctx, ProductInput{
		CategoryID: "cat_1",
		Name:       "Negative price",
		Variants:   []VariantInput{{Name: "v", PriceCents: -1}},
	})
	require.Error(t, err)
}

func TestUpdateProduct(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	updated, err := svc.UpdateProduct(ctx, "prod_2", ProductInput{
		CategoryID:  "cat_2",
		Name:        "Social Media Kit v2",
		Description: "Updated copy.",
		Variants: []VariantInput{
			{Name: "Basic Package (JPG)", PriceCents: 10900},
			{Name: "Pro Package (PNG & Source)", PriceCents: 15900},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Social Media Kit v2", updated.Name)
	// variant ids survive an edit
	assert.Equal(t, "v2_1", updated.Variants[0].ID)
	assert.Equal(t, int64(10900), updated.Variants[0].PriceCents)

	_, err = svc.UpdateProduct(ctx, "missing", ProductInput{
		CategoryID: "cat_2",
		Name:       "x",
		Variants:   []VariantInput{{Name: "v", PriceCents: 1}},
	})
	require.Error(t, err)
}

func TestSnapshotsAreIsolated(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	before, err := svc.Get(ctx, "prod_1")
	require.NoError(t, err)

	// mutate the returned copy; the stored product must not change
	before.Variants[0].PriceCents = 1

	after, err := svc.Get(ctx, "prod_1")
	require.NoError(t, err)
	assert.Equal(t, int64(15000), after.Variants[0].PriceCents)
}
