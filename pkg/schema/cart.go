package schema

const CartSnapshotSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "cart_snapshot",
	"fields": [
		{"name": "items", "type": {"type": "array", "items": {
			"type": "record",
			"name": "line_item",
			"fields": [
				{"name": "product", "type": {
					"type": "record",
					"name": "product",
					"fields": [
						{"name": "id", "type": "string"},
						{"name": "name", "type": "string"},
						{"name": "brand", "type": "string"},
						{"name": "category", "type": "string"},
						{"name": "product_type", "type": "string"},
						{"name": "price", "type": "double"},
						{"name": "original_price", "type": ["null", "double"], "default": null},
						{"name": "discount", "type": ["null", "int"], "default": null},
						{"name": "image", "type": "string"},
						{"name": "images", "type": {"type": "array", "items": "string"}},
						{"name": "description", "type": "string"},
						{"name": "availability", "type": "string"},
						{"name": "stock", "type": "int"},
						{"name": "rating", "type": ["null", "double"], "default": null},
						{"name": "reviews", "type": ["null", "int"], "default": null}
					]
				}},
				{"name": "quantity", "type": "int"}
			]
		}}},
		{"name": "subtotal", "type": "double"},
		{"name": "total", "type": "double"},
		{"name": "tax", "type": ["null", "double"], "default": null}
	]
}`

type (
	CartSnapshotV1 struct {
		Items    []LineItemV1 `avro:"items"`
		Subtotal float64      `avro:"subtotal"`
		Total    float64      `avro:"total"`
		Tax      *float64     `avro:"tax"`
	}

	LineItemV1 struct {
		Product  ProductV1 `avro:"product"`
		Quantity int       `avro:"quantity"`
	}

	ProductV1 struct {
		ID            string   `avro:"id"`
		Name          string   `avro:"name"`
		Brand         string   `avro:"brand"`
		Category      string   `avro:"category"`
		Type          string   `avro:"product_type"`
		Price         float64  `avro:"price"`
		OriginalPrice *float64 `avro:"original_price"`
		Discount      *int     `avro:"discount"`
		Image         string   `avro:"image"`
		Images        []string `avro:"images"`
		Description   string   `avro:"description"`
		Availability  string   `avro:"availability"`
		Stock         int      `avro:"stock"`
		Rating        *float64 `avro:"rating"`
		Reviews       *int     `avro:"reviews"`
	}
)
