package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/shalabia/storefront/app/catalog"
)

func TestAllReturnsTheCollection(t *testing.T) {
	items := catalog.All()
	require.Len(t, items, 3)

	// Callers must not be able to mutate the live catalog.
	items[0].Title = "scribbled"
	require.Equal(t, "Linen Blend Dress", catalog.All()[0].Title)
}

func TestFind(t *testing.T) {
	p, ok := catalog.Find(2)
	require.True(t, ok)
	require.Equal(t, "Silk Evening Scarf", p.Title)
	require.Equal(t, 2500, p.Price)
	require.True(t, p.InStock)

	_, ok = catalog.Find(999)
	require.False(t, ok)
}

func TestCategoriesLeadWithAll(t *testing.T) {
	cats := catalog.Categories()
	require.Equal(t, []string{"All", "Dresses", "Accessories", "Outerwear"}, cats)
}

func TestByCategory(t *testing.T) {
	require.Len(t, catalog.ByCategory("All"), 3)
	require.Len(t, catalog.ByCategory("Dresses"), 1)
	require.Empty(t, catalog.ByCategory("Shoes"))
}

func TestSearchMatchesTitleAndCategory(t *testing.T) {
	require.Len(t, catalog.Search("silk"), 1)
	require.Len(t, catalog.Search("DRESS"), 1)
	require.Len(t, catalog.Search("outerwear"), 1)
	require.Empty(t, catalog.Search("denim"))
	require.Empty(t, catalog.Search("  "))
}
