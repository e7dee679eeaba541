package schema

const CategoryListSchemaTextV1 = `{
	"type": "record",
	"namespace": "storefront",
	"name": "category_list",
	"fields": [
		{"name": "categories", "type": {"type": "array", "items": {
			"type": "record",
			"name": "category",
			"fields": [
				{"name": "id", "type": "string"},
				{"name": "name", "type": "string"},
				{"name": "description", "type": "string"},
				{"name": "active", "type": "boolean"}
			]
		}}}
	]
}`

type (
	CategoryListV1 struct {
		Categories []CategoryV1 `avro:"categories"`
	}

	CategoryV1 struct {
		ID          string `avro:"id"`
		Name        string `avro:"name"`
		Description string `avro:"description"`
		Active      bool   `avro:"active"`
	}
)
