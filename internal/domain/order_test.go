package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDeliveryMethod(t *testing.T) {
	m, err := ParseDeliveryMethod("")
	require.NoError(t, err)
	assert.Equal(t, DeliveryPickup, m)

	m, err = ParseDeliveryMethod("delivery")
	require.NoError(t, err)
	assert.Equal(t, DeliveryDelivery, m)

	m, err = ParseDeliveryMethod("PICKUP")
	require.NoError(t, err)
	assert.Equal(t, DeliveryPickup, m)

	_, err = ParseDeliveryMethod("drone")
	assert.Error(t, err)
}

func TestOrderDetails_Validate(t *testing.T) {
	valid := OrderDetails{
		CustomerName:   "John Doe",
		Phone:          "+971 50 123 4567",
		Email:          "john@company.com",
		DeliveryMethod: DeliveryPickup,
	}
	assert.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*OrderDetails)
		field  string
	}{
		{"missing name", func(d *OrderDetails) { d.CustomerName = " " }, "customer_name"},
		{"missing phone", func(d *OrderDetails) { d.Phone = "" }, "phone"},
		{"missing email", func(d *OrderDetails) { d.Email = "" }, "email"},
		{"delivery without address", func(d *OrderDetails) { d.DeliveryMethod = DeliveryDelivery }, "address"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := valid
			tt.mutate(&d)
			err := d.Validate()
			require.ErrorIs(t, err, ErrValidation)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestOrderDetails_Validate_PickupIgnoresAddress(t *testing.T) {
	d := OrderDetails{
		CustomerName:   "John Doe",
		Phone:          "+971 50 123 4567",
		Email:          "john@company.com",
		DeliveryMethod: DeliveryPickup,
		Address:        "",
	}
	assert.NoError(t, d.Validate())
}

func TestCart_Total(t *testing.T) {
	c := Cart{Items: []CartItem{{TotalPrice: 645}, {TotalPrice: 50}}}
	assert.Equal(t, int64(695), c.Total())
	assert.Equal(t, int64(0), Cart{}.Total())
}
