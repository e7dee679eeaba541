package port

import (
	"context"
	"errors"

	"github.com/solemarket/storefront/internal/core/domain"
)

// ErrSnapshotNotFound is returned by a SnapshotStore when the key has
// never been written.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore is the durable local key-value storage behind the cart
// and category snapshots. Values are opaque whole-document blobs.
type SnapshotStore interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, value []byte) error
}

type ProductBrowser interface {
	Browse(sel domain.FilterSelection, sort domain.SortKey) []domain.Product
	Facets() domain.FacetOptions
	Product(id string) (domain.Product, bool)
}

// CatalogReceiver accepts a replacement product list, used by the
// catalog file watcher.
type CatalogReceiver interface {
	Replace(ps []domain.Product)
}

type CartEditor interface {
	Add(ctx context.Context, p domain.Product, quantity int) error
	Remove(ctx context.Context, productID string) error
	SetQuantity(ctx context.Context, productID string, quantity int) error
	Clear(ctx context.Context) error
	Cart() domain.Cart
	ItemCount() int
}

type CategoryManager interface {
	Add(ctx context.Context, name, description string, active bool) (domain.Category, error)
	Edit(ctx context.Context, id string, patch domain.CategoryPatch) error
	Delete(ctx context.Context, id string) error
	List() []domain.Category
	Active() []domain.Category
}

type CheckoutStatus string

const (
	CheckoutAccepted CheckoutStatus = "accepted"
	CheckoutDeclined CheckoutStatus = "declined"
)

type CheckoutResult struct {
	OrderRef string
	Status   CheckoutStatus
}

// CheckoutGateway is the payment integration boundary. The shipped
// implementation is a stub; a real provider adapter plugs in here.
type CheckoutGateway interface {
	Checkout(ctx context.Context, cart domain.Cart) (CheckoutResult, error)
}

type Checkouter interface {
	Checkout(ctx context.Context) (CheckoutResult, error)
}

// PriceFormatter renders numeric amounts for display; the core deals
// only in numbers.
type PriceFormatter interface {
	Format(amount float64) string
}
