package flavor_test

import (
	"testing"
	"time"

	"pastelstand/internal/core/domain/model/flavor"
	"pastelstand/internal/core/domain/model/kernel"
	"pastelstand/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 11, 8, 9, 0, 0, 0, time.UTC)

func newTestFlavor(t *testing.T, quantity int) *flavor.Flavor {
	t.Helper()
	f, err := flavor.NewFlavor(kernel.NewUUID(), "Queijo", "Mussarela", "",
		quantity, decimal.RequireFromString("10.90"), testNow)
	require.NoError(t, err)
	return f
}

func TestNewFlavor(t *testing.T) {
	t.Run("creates_valid_flavor", func(t *testing.T) {
		f := newTestFlavor(t, 100)

		assert.Equal(t, "Queijo", f.Name())
		assert.Equal(t, "Mussarela", f.Description())
		assert.Equal(t, 100, f.AvailableQuantity())
		assert.Equal(t, "10.90", f.Price().StringFixed(2))
		require.NoError(t, f.Validate())
	})

	t.Run("trims_the_name", func(t *testing.T) {
		f, err := flavor.NewFlavor(kernel.NewUUID(), "  Carne  ", "", "",
			0, decimal.Zero, testNow)

		require.NoError(t, err)
		assert.Equal(t, "Carne", f.Name())
	})

	t.Run("rejects_blank_name", func(t *testing.T) {
		_, err := flavor.NewFlavor(kernel.NewUUID(), "   ", "", "", 0, decimal.Zero, testNow)

		var businessErr *errs.BusinessError
		require.ErrorAs(t, err, &businessErr)
		assert.Equal(t, errs.CodeFlavorNameRequired, businessErr.Code)
	})

	t.Run("rejects_negative_quantity_and_price", func(t *testing.T) {
		_, err := flavor.NewFlavor(kernel.NewUUID(), "Carne", "", "", -1, decimal.Zero, testNow)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = flavor.NewFlavor(kernel.NewUUID(), "Carne", "", "", 0,
			decimal.RequireFromString("-0.01"), testNow)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero_value_flavor_fails_validation", func(t *testing.T) {
		var f flavor.Flavor
		require.ErrorIs(t, f.Validate(), flavor.ErrFlavorIsNotConstructed)
	})
}

func TestFlavor_Reserve(t *testing.T) {
	t.Run("decrements_stock", func(t *testing.T) {
		f := newTestFlavor(t, 2)

		require.NoError(t, f.Reserve(2))

		assert.Equal(t, 0, f.AvailableQuantity())
	})

	t.Run("insufficient_stock_reports_flavor_name", func(t *testing.T) {
		f := newTestFlavor(t, 1)

		err := f.Reserve(2)

		var businessErr *errs.BusinessError
		require.ErrorAs(t, err, &businessErr)
		assert.Equal(t, errs.CodeFlavorOutOfStock, businessErr.Code)
		assert.Equal(t, []any{"Queijo"}, businessErr.Params)
		assert.Equal(t, 1, f.AvailableQuantity())
	})

	t.Run("can_reserve_does_not_mutate", func(t *testing.T) {
		f := newTestFlavor(t, 5)

		require.NoError(t, f.CanReserve(5))
		require.Error(t, f.CanReserve(6))

		assert.Equal(t, 5, f.AvailableQuantity())
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		f := newTestFlavor(t, 5)

		require.Error(t, f.Reserve(0))
		require.Error(t, f.Reserve(-1))
	})
}

func TestFlavor_Release(t *testing.T) {
	t.Run("increments_stock_without_upper_bound", func(t *testing.T) {
		f := newTestFlavor(t, 0)

		require.NoError(t, f.Release(3))
		require.NoError(t, f.Release(1000))

		assert.Equal(t, 1003, f.AvailableQuantity())
	})

	t.Run("rejects_non_positive_quantity", func(t *testing.T) {
		f := newTestFlavor(t, 0)

		require.Error(t, f.Release(0))
	})
}

func TestFlavor_AdminMutations(t *testing.T) {
	t.Run("restock_adds_to_stock", func(t *testing.T) {
		f := newTestFlavor(t, 10)

		require.NoError(t, f.Restock(5))

		assert.Equal(t, 15, f.AvailableQuantity())
	})

	t.Run("set_inventory_is_absolute", func(t *testing.T) {
		f := newTestFlavor(t, 10)

		require.NoError(t, f.SetInventory(3))
		assert.Equal(t, 3, f.AvailableQuantity())

		require.Error(t, f.SetInventory(-1))
	})

	t.Run("set_price_replaces_price", func(t *testing.T) {
		f := newTestFlavor(t, 10)

		require.NoError(t, f.SetPrice(decimal.RequireFromString("12.50")))
		assert.Equal(t, "12.50", f.Price().StringFixed(2))

		require.Error(t, f.SetPrice(decimal.RequireFromString("-1")))
	})

	t.Run("update_details_ignores_blank_values", func(t *testing.T) {
		f := newTestFlavor(t, 10)

		f.UpdateDetails("", "https://example.com/queijo.jpg")

		assert.Equal(t, "Mussarela", f.Description())
		assert.Equal(t, "https://example.com/queijo.jpg", f.ImageURL())
	})

	t.Run("replace_details_overwrites_unconditionally", func(t *testing.T) {
		f := newTestFlavor(t, 10)

		f.ReplaceDetails("", "")

		assert.Empty(t, f.Description())
		assert.Empty(t, f.ImageURL())
	})

	t.Run("rename_trims_and_validates", func(t *testing.T) {
		f := newTestFlavor(t, 10)

		require.NoError(t, f.Rename(" Frango c/ Catupiry "))
		assert.Equal(t, "Frango c/ Catupiry", f.Name())

		require.Error(t, f.Rename("  "))
	})
}
