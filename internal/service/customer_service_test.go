package service

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/customer-service/internal/domain"
	"github.com/spec-kit/customer-service/internal/seed"
	"github.com/spec-kit/customer-service/internal/store"
)

func newCustomerFixture(t *testing.T) (*CustomerService, *store.Store) {
	t.Helper()
	s := store.New()
	seed.Load(s)
	return NewCustomerService(s), s
}

func TestSearchCustomerRequiresAParameter(t *testing.T) {
	svc, _ := newCustomerFixture(t)

	_, err := svc.SearchCustomer(context.Background(), CustomerSearchInput{})
	requireCode(t, err, "VALIDATION_FAILED")
}

func TestSearchCustomerByID(t *testing.T) {
	svc, _ := newCustomerFixture(t)

	result, err := svc.SearchCustomer(context.Background(), CustomerSearchInput{CustomerID: "CUST-123"})
	require.NoError(t, err)
	assert.Equal(t, "John Doe", result.Customer.Name)
	assert.Equal(t, domain.LoyaltyTierGold, result.Customer.LoyaltyTier)
}

func TestSearchCustomerIDWinsOverOtherKeys(t *testing.T) {
	svc, _ := newCustomerFixture(t)

	// email and phone point at a different customer; the exact ID match wins
	result, err := svc.SearchCustomer(context.Background(), CustomerSearchInput{
		CustomerID: "CUST-123",
		Email:      "jane.smith@email.com",
		Phone:      "+1-555-0456",
	})
	require.NoError(t, err)
	assert.Equal(t, "CUST-123", result.Customer.ID)
}

func TestSearchCustomerByEmailCaseInsensitive(t *testing.T) {
	svc, _ := newCustomerFixture(t)

	result, err := svc.SearchCustomer(context.Background(), CustomerSearchInput{Email: "JANE.SMITH@EMAIL.COM"})
	require.NoError(t, err)
	assert.Equal(t, "CUST-456", result.Customer.ID)
}

func TestSearchCustomerByPhoneExactMatch(t *testing.T) {
	svc, _ := newCustomerFixture(t)

	result, err := svc.SearchCustomer(context.Background(), CustomerSearchInput{Phone: "+1-555-0123"})
	require.NoError(t, err)
	assert.Equal(t, "CUST-123", result.Customer.ID)

	_, err = svc.SearchCustomer(context.Background(), CustomerSearchInput{Phone: "555-0123"})
	requireCode(t, err, "NOT_FOUND")
}

func TestSearchCustomerNoMatch(t *testing.T) {
	svc, _ := newCustomerFixture(t)

	_, err := svc.SearchCustomer(context.Background(), CustomerSearchInput{Email: "nobody@email.com"})
	requireCode(t, err, "NOT_FOUND")
}

func TestSearchCustomerFirstMatchInInsertionOrder(t *testing.T) {
	s := store.New()
	s.PutCustomer(domain.Customer{ID: "CUST-A", Email: "shared@email.com", Phone: "+1-555-1111"})
	s.PutCustomer(domain.Customer{ID: "CUST-B", Email: "other@email.com", Phone: "+1-555-2222"})
	svc := NewCustomerService(s)

	// CUST-A matches by email, CUST-B by phone; the earlier insertion wins
	result, err := svc.SearchCustomer(context.Background(), CustomerSearchInput{
		Email: "shared@email.com",
		Phone: "+1-555-2222",
	})
	require.NoError(t, err)
	assert.Equal(t, "CUST-A", result.Customer.ID)
}

func TestSearchCustomerReturnsThreeMostRecentOrders(t *testing.T) {
	svc, s := newCustomerFixture(t)
	for i := 1; i <= 5; i++ {
		s.PutOrder(domain.Order{
			ID:         fmt.Sprintf("ORD-10%d", i),
			CustomerID: "CUST-123",
			OrderDate:  fmt.Sprintf("2025-07-0%d", i),
			Total:      float64(i),
		})
	}

	result, err := svc.SearchCustomer(context.Background(), CustomerSearchInput{CustomerID: "CUST-123"})
	require.NoError(t, err)
	require.Len(t, result.RecentOrders, 3)
	assert.Equal(t, "2025-07-05", result.RecentOrders[0].OrderDate)
	assert.Equal(t, "2025-07-04", result.RecentOrders[1].OrderDate)
	assert.Equal(t, "2025-07-03", result.RecentOrders[2].OrderDate)
}

func TestGetCustomerOrders(t *testing.T) {
	svc, _ := newCustomerFixture(t)

	result, err := svc.GetCustomerOrders(context.Background(), "CUST-456", 10)
	require.NoError(t, err)
	assert.Equal(t, 1, result.TotalCount)
	require.Len(t, result.Orders, 1)
	assert.Equal(t, "ORD-002", result.Orders[0].ID)
}

func TestGetCustomerOrdersSortedAndLimited(t *testing.T) {
	svc, s := newCustomerFixture(t)
	for i := 1; i <= 5; i++ {
		s.PutOrder(domain.Order{
			ID:         fmt.Sprintf("ORD-20%d", i),
			CustomerID: "CUST-456",
			OrderDate:  fmt.Sprintf("2025-08-0%d", i),
		})
	}

	result, err := svc.GetCustomerOrders(context.Background(), "CUST-456", 2)
	require.NoError(t, err)
	assert.Equal(t, 6, result.TotalCount)
	require.Len(t, result.Orders, 2)
	assert.Equal(t, "2025-08-05", result.Orders[0].OrderDate)
	assert.Equal(t, "2025-08-04", result.Orders[1].OrderDate)
}

func TestGetCustomerOrdersNonPositiveLimit(t *testing.T) {
	svc, _ := newCustomerFixture(t)

	for _, limit := range []int{0, -5} {
		result, err := svc.GetCustomerOrders(context.Background(), "CUST-456", limit)
		require.NoError(t, err, "limit %d", limit)
		assert.Equal(t, 1, result.TotalCount)
		assert.Empty(t, result.Orders)
	}
}

func TestGetCustomerOrdersUnknownCustomer(t *testing.T) {
	svc, _ := newCustomerFixture(t)

	_, err := svc.GetCustomerOrders(context.Background(), "CUST-999", 10)
	requireCode(t, err, "NOT_FOUND")
}
