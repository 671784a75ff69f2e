package relay

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func item(qty, price string) OrderItem {
	return OrderItem{
		ProductID:   "prod-1",
		ProductName: "Tomatoes",
		Quantity:    decimal.RequireFromString(qty),
		UnitPrice:   decimal.RequireFromString(price),
		Unit:        "kg",
	}
}

func TestCalculateTotals(t *testing.T) {
	t.Run("single line without shipping", func(t *testing.T) {
		totals := CalculateTotals([]OrderItem{item("2", "10")}, decimal.Zero)

		assert.True(t, totals.Subtotal.Equal(decimal.NewFromInt(20)))
		assert.True(t, totals.Tax.Equal(decimal.RequireFromString("1.6")))
		assert.True(t, totals.Shipping.IsZero())
		assert.True(t, totals.Discount.IsZero())
		assert.True(t, totals.Total.Equal(decimal.RequireFromString("21.6")))
	})

	t.Run("tax rounds to cents", func(t *testing.T) {
		totals := CalculateTotals([]OrderItem{item("3", "3.33")}, decimal.Zero)

		assert.Equal(t, "9.99", totals.Subtotal.String())
		assert.Equal(t, "0.8", totals.Tax.String())
		assert.Equal(t, "10.79", totals.Total.String())
	})

	t.Run("total includes shipping", func(t *testing.T) {
		items := []OrderItem{item("1", "5.5"), item("4", "2.25")}
		totals := CalculateTotals(items, decimal.NewFromInt(7))

		assert.Equal(t, "14.5", totals.Subtotal.String())
		assert.Equal(t, "1.16", totals.Tax.String())
		assert.Equal(t, "22.66", totals.Total.String())
	})

	t.Run("invariant holds for fractional quantities", func(t *testing.T) {
		items := []OrderItem{item("0.5", "12.40"), item("1.25", "3")}
		totals := CalculateTotals(items, decimal.RequireFromString("2.5"))

		want := totals.Subtotal.Add(totals.Tax).Add(totals.Shipping).Sub(totals.Discount)
		assert.True(t, totals.Total.Equal(want))
	})
}

func TestOrderStatus_IsValid(t *testing.T) {
	for _, s := range []OrderStatus{OrderStatusDraft, OrderStatusSent, OrderStatusConfirmed, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled, OrderStatusInvoiced, OrderStatusPaid} {
		assert.True(t, s.IsValid(), s)
	}
	assert.False(t, OrderStatus("pending").IsValid())
	assert.False(t, OrderStatus("").IsValid())
}

func TestOrder_Submission(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	t.Run("applies defaults", func(t *testing.T) {
		order := &Order{
			OrderID:      "PO-1",
			RestaurantID: "rest-1",
			SupplierID:   "sup-1",
			Items:        []OrderItem{item("2", "10")},
		}

		sub := order.Submission(now)

		assert.Equal(t, OrderStatusSent, sub.Status)
		assert.Equal(t, "2024-03-01T09:30:00.000Z", sub.OrderDate)
		assert.Equal(t, PaymentStatusPending, sub.PaymentStatus)
		assert.Equal(t, OrderSourceMenuPlatform, sub.CreatedBy)
		assert.Equal(t, 20.0, sub.Subtotal)
		assert.Equal(t, 1.6, sub.Tax)
		assert.Equal(t, 21.6, sub.Total)
		require.Len(t, sub.Items, 1)
		assert.Equal(t, 20.0, sub.Items[0].Total)
		assert.Nil(t, sub.Items[0].SKU)
		assert.Nil(t, sub.Items[0].Notes)
	})

	t.Run("keeps caller values", func(t *testing.T) {
		order := &Order{
			OrderID:               "PO-2",
			RestaurantID:          "rest-1",
			SupplierID:            "sup-1",
			Items:                 []OrderItem{{ProductID: "p", ProductName: "n", SKU: "SKU-9", Notes: "cold", Quantity: decimal.NewFromInt(1), UnitPrice: decimal.NewFromInt(4), Unit: "box"}},
			Shipping:              decimal.NewFromInt(3),
			DeliveryAddress:       json.RawMessage(`{"street":"1 Main St"}`),
			Status:                OrderStatusConfirmed,
			OrderDate:             "2024-02-28T10:00:00.000Z",
			RequestedDeliveryDate: "2024-03-05",
			Notes:                 "back door",
		}

		sub := order.Submission(now)

		assert.Equal(t, OrderStatusConfirmed, sub.Status)
		assert.Equal(t, "2024-02-28T10:00:00.000Z", sub.OrderDate)
		assert.Equal(t, 3.0, sub.Shipping)
		require.NotNil(t, sub.Items[0].SKU)
		assert.Equal(t, "SKU-9", *sub.Items[0].SKU)
		assert.JSONEq(t, `{"street":"1 Main St"}`, string(sub.DeliveryAddress))
	})

	t.Run("encodes absent delivery address as null", func(t *testing.T) {
		order := &Order{OrderID: "PO-3", Items: []OrderItem{item("1", "1")}}

		body, err := json.Marshal(order.Submission(now))
		require.NoError(t, err)

		var decoded map[string]any
		require.NoError(t, json.Unmarshal(body, &decoded))
		assert.Contains(t, decoded, "deliveryAddress")
		assert.Nil(t, decoded["deliveryAddress"])
		assert.NotContains(t, decoded, "requestedDeliveryDate")
		assert.NotContains(t, decoded, "notes")
	})
}
