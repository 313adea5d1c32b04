package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bakehouse/internal/domain/entity"
	"bakehouse/internal/domain/repository"
)

func TestStaticCatalog_MenuByID(t *testing.T) {
	c := NewStaticCatalog()

	menu, err := c.MenuByID("standard-trays")
	require.NoError(t, err)
	assert.Equal(t, "Sensational Sweet Trays", menu.Title)

	_, err = c.MenuByID("no-such-menu")
	assert.ErrorIs(t, err, repository.ErrMenuNotFound)
}

// TestStaticCatalog_DataConsistency guards the hand-maintained data set:
// every declared reference must resolve within its menu.
func TestStaticCatalog_DataConsistency(t *testing.T) {
	c := NewStaticCatalog()
	require.NotEmpty(t, c.Menus())

	for _, menu := range c.Menus() {
		assert.NotEmpty(t, menu.ID)
		assert.NotEmpty(t, menu.Title)
		assert.True(t, menu.OrderMode.IsValid(), menu.ID)

		switch menu.Template {
		case entity.TemplateCatalog:
			assert.NotEmpty(t, menu.Items, menu.ID)
		case entity.TemplateMatrix:
			require.NotNil(t, menu.Matrix, menu.ID)
			assert.NotEmpty(t, menu.Matrix.Rows, menu.ID)
			assert.NotEmpty(t, menu.Matrix.Columns, menu.ID)
			for _, column := range menu.Matrix.Columns {
				assert.True(t, column.Price.IsPositive(), menu.ID)
			}
		default:
			t.Fatalf("menu %s has unknown template %q", menu.ID, menu.Template)
		}

		for _, item := range menu.Items {
			require.NotEmpty(t, item.Sizes, item.ID)

			_, ok := item.SizeByID(item.DefaultSizeID)
			assert.True(t, ok, "default size of %s must resolve", item.ID)

			if item.Kind == entity.KindFlavor {
				assert.NotEmpty(t, item.FlavorOptions, item.ID)
			} else {
				assert.Empty(t, item.FlavorOptions, item.ID)
			}
		}
	}
}

func TestStaticCatalog_ProductsAndNews(t *testing.T) {
	c := NewStaticCatalog()

	require.NotEmpty(t, c.Products())
	for _, product := range c.Products() {
		assert.NotEmpty(t, product.ID)
		assert.NotEmpty(t, product.Name)
		assert.NotEmpty(t, product.Tags, product.ID)
	}

	assert.Len(t, c.News(), 3)
}
