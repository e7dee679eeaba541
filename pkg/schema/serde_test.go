package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solemarket/storefront/pkg/schema"
)

func TestSerdeCartSnapshotV1(t *testing.T) {

	t.Run("EncodeDecode", func(t *testing.T) {
		serde, err := schema.NewSerdeCartSnapshotV1()
		require.NoError(t, err)

		originalPrice := 149.99
		discount := 13
		rating := 4.8
		reviews := 234

		snap1 := schema.CartSnapshotV1{
			Items: []schema.LineItemV1{
				{
					Product: schema.ProductV1{
						ID:            "1",
						Name:          "Air Max Classic White",
						Brand:         "Nike",
						Category:      "Zapatillas",
						Type:          "Running",
						Price:         129.99,
						OriginalPrice: &originalPrice,
						Discount:      &discount,
						Image:         "sneaker-1.jpg",
						Images:        []string{"sneaker-1.jpg"},
						Description:   "Zapatillas deportivas clásicas",
						Availability:  "in-stock",
						Stock:         25,
						Rating:        &rating,
						Reviews:       &reviews,
					},
					Quantity: 2,
				},
			},
			Subtotal: 259.98,
			Total:    259.98,
		}

		data, err := serde.Encode(snap1)
		require.NoError(t, err)

		var snap2 schema.CartSnapshotV1
		require.NoError(t, serde.Decode(data, &snap2))

		require.Len(t, snap2.Items, 1)
		assert.Equal(t, snap1.Items[0].Quantity, snap2.Items[0].Quantity)
		assert.Equal(t, snap1.Items[0].Product, snap2.Items[0].Product)
		assert.InDelta(t, snap1.Subtotal, snap2.Subtotal, 1e-9)
		assert.InDelta(t, snap1.Total, snap2.Total, 1e-9)
		assert.Nil(t, snap2.Tax)
	})

	t.Run("NullableFieldsSurviveAsNil", func(t *testing.T) {
		serde, err := schema.NewSerdeCartSnapshotV1()
		require.NoError(t, err)

		snap1 := schema.CartSnapshotV1{
			Items: []schema.LineItemV1{{
				Product: schema.ProductV1{
					ID: "3", Name: "Canvas High Top Navy", Brand: "Converse",
					Category: "Zapatillas", Type: "Casual", Price: 79.99,
					Image: "sneaker-3.jpg", Images: []string{"sneaker-3.jpg"},
					Availability: "in-stock", Stock: 32,
				},
				Quantity: 1,
			}},
			Subtotal: 79.99,
			Total:    79.99,
		}

		data, err := serde.Encode(snap1)
		require.NoError(t, err)

		var snap2 schema.CartSnapshotV1
		require.NoError(t, serde.Decode(data, &snap2))

		p := snap2.Items[0].Product
		assert.Nil(t, p.OriginalPrice)
		assert.Nil(t, p.Discount)
		assert.Nil(t, p.Rating)
		assert.Nil(t, p.Reviews)
	})

	t.Run("GarbageFailsToDecode", func(t *testing.T) {
		serde, err := schema.NewSerdeCartSnapshotV1()
		require.NoError(t, err)

		var snap schema.CartSnapshotV1
		assert.Error(t, serde.Decode([]byte("not a snapshot"), &snap))
	})
}

func TestSerdeCategoryListV1(t *testing.T) {
	serde, err := schema.NewSerdeCategoryListV1()
	require.NoError(t, err)

	list1 := schema.CategoryListV1{
		Categories: []schema.CategoryV1{
			{ID: "1", Name: "Zapatillas", Description: "Calzado deportivo", Active: true},
			{ID: "2", Name: "Botas", Active: false},
		},
	}

	data, err := serde.Encode(list1)
	require.NoError(t, err)

	var list2 schema.CategoryListV1
	require.NoError(t, serde.Decode(data, &list2))
	assert.Equal(t, list1, list2)
}
