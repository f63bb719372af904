package kernel_test

import (
	"math"
	"testing"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("normalizes currency", func(t *testing.T) {
		m, err := kernel.NewMoney(500, " jpy ")

		require.NoError(t, err)
		assert.Equal(t, int64(500), m.Amount())
		assert.Equal(t, "JPY", m.Currency())
		assert.Equal(t, "500 JPY", m.String())
	})

	t.Run("rejects negative amounts", func(t *testing.T) {
		_, err := kernel.NewMoney(-1, "JPY")

		assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("rejects malformed currency", func(t *testing.T) {
		_, err := kernel.NewMoney(1, "YEN!")

		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestMoney_Times(t *testing.T) {
	total, err := kernel.Yen(500).Times(2)
	require.NoError(t, err)
	assert.Equal(t, int64(1000), total.Amount())

	_, err = kernel.Yen(math.MaxInt64).Times(2)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)

	_, err = kernel.Yen(1).Times(-1)
	assert.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
}

func TestMoney_Add(t *testing.T) {
	sum, err := kernel.Yen(500).Add(kernel.Yen(250))
	require.NoError(t, err)
	assert.Equal(t, int64(750), sum.Amount())

	usd, _ := kernel.NewMoney(1, "USD")
	_, err = kernel.Yen(1).Add(usd)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMoney_ZeroValueDefaultsToYen(t *testing.T) {
	var m kernel.Money

	assert.Equal(t, kernel.DefaultCurrency, m.Currency())
	assert.Equal(t, int64(0), m.Amount())
}
