// Package schema defines the persisted snapshot layouts and their
// avro serdes. Snapshots are whole-document blobs: no versioning or
// migration beyond the V1 suffix on the record types.
package schema

import (
	"fmt"

	"github.com/hamba/avro/v2"
)

type Serde interface {
	Encode(v any) ([]byte, error)
	Decode(data []byte, v any) error
}

type serde struct {
	avroSchema avro.Schema
}

func (s serde) Encode(v any) ([]byte, error) {
	return avro.Marshal(s.avroSchema, v)
}

func (s serde) Decode(data []byte, v any) error {
	return avro.Unmarshal(s.avroSchema, data, v)
}

func NewSerdeCartSnapshotV1() (Serde, error) {
	const op = "NewSerdeCartSnapshotV1"
	return newSerde(CartSnapshotSchemaTextV1, op)
}

func NewSerdeCategoryListV1() (Serde, error) {
	const op = "NewSerdeCategoryListV1"
	return newSerde(CategoryListSchemaTextV1, op)
}

func newSerde(schemaText, op string) (Serde, error) {
	avroSchema, err := avro.Parse(schemaText)
	if err != nil {
		return serde{}, fmt.Errorf("%s: %w", op, err)
	}
	return serde{avroSchema}, nil
}
