package queries_test

import (
	"testing"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func accountID(t *testing.T, value string) kernel.AccountID {
	t.Helper()
	id, err := kernel.NewAccountID(value)
	require.NoError(t, err)
	return id
}

func orderID(t *testing.T, value string) kernel.OrderID {
	t.Helper()
	id, err := kernel.NewOrderID(value)
	require.NoError(t, err)
	return id
}

func TestNewGetOrderByIDQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderByIDQuery(accountID(t, "alice.near"), orderID(t, "order-1"))
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.Equal(t, "alice.near", query.Caller().String())
	assert.Equal(t, "order-1", query.OrderID().String())
}

func TestNewGetOrderByIDQuery_EmptyIDs(t *testing.T) {
	_, err := queries.NewGetOrderByIDQuery(kernel.AccountID{}, orderID(t, "order-1"))
	require.Error(t, err)

	_, err = queries.NewGetOrderByIDQuery(accountID(t, "alice.near"), kernel.OrderID{})
	require.Error(t, err)
}

func TestGetOrderByIDQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderByIDQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderByIDQueryIsNotConstructed)
}

func TestNewGetOrderListQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrderListQuery(accountID(t, "admin.near"))
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.Equal(t, "admin.near", query.Caller().String())
}

func TestGetOrderListQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrderListQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrderListQueryIsNotConstructed)
}

func TestNewGetOrdersByCustomerIDQuery_Valid(t *testing.T) {
	query, err := queries.NewGetOrdersByCustomerIDQuery(
		accountID(t, "alice.near"), accountID(t, "alice.near"))
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.Equal(t, "alice.near", query.CustomerID().String())
}

func TestGetOrdersByCustomerIDQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetOrdersByCustomerIDQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetOrdersByCustomerIDQueryIsNotConstructed)
}

func TestNewGetCustomerByAccountIDQuery_Valid(t *testing.T) {
	query, err := queries.NewGetCustomerByAccountIDQuery(
		accountID(t, "alice.near"), accountID(t, "alice.near"))
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.Equal(t, "alice.near", query.AccountID().String())
}

func TestGetCustomerByAccountIDQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetCustomerByAccountIDQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetCustomerByAccountIDQueryIsNotConstructed)
}

func TestNewGetAdminByAccountIDQuery_Valid(t *testing.T) {
	query, err := queries.NewGetAdminByAccountIDQuery(
		accountID(t, "admin.near"), accountID(t, "other-admin.near"))
	require.NoError(t, err)
	require.NoError(t, query.Validate())

	assert.Equal(t, "admin.near", query.Caller().String())
	assert.Equal(t, "other-admin.near", query.AccountID().String())
}

func TestGetAdminByAccountIDQuery_NotConstructedViaConstructor(t *testing.T) {
	query := queries.GetAdminByAccountIDQuery{}
	err := query.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, queries.ErrGetAdminByAccountIDQueryIsNotConstructed)
}
