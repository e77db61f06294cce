package queries_test

import (
	"testing"

	"pastelstand/internal/core/application/usecases/queries"
	"pastelstand/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGetCustomerOrdersQuery_Valid(t *testing.T) {
	query, err := queries.NewGetCustomerOrdersQuery(kernel.NewUUID())
	require.NoError(t, err)
	require.NoError(t, query.Validate())
}

func TestNewGetCustomerOrdersQuery_InvalidCustomerID(t *testing.T) {
	_, err := queries.NewGetCustomerOrdersQuery(kernel.UUID{})
	require.Error(t, err)
}

func TestGetCustomerOrdersQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCustomerOrdersQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCustomerOrdersQueryIsNotConstructed)
}
