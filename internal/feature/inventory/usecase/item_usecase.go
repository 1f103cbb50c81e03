package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"pantry_backend/internal/feature/inventory/domain/entity"
)

// UngroupedName is the display bucket for items whose location is unset.
const UngroupedName = "Ungrouped"

// ItemRow is one inventory item joined with its display names.
type ItemRow struct {
	ID           uint
	Name         string
	Quantity     int
	DateAdded    time.Time
	ExpiryDate   *time.Time
	Barcode      *string
	StorageArea  string
	LocationName *string
}

// LocationGroup is a location bucket in the grouped inventory listing.
type LocationGroup struct {
	Location string
	Items    []ItemRow
}

// StorageAreaGroup is a storage-area bucket in the grouped inventory listing.
type StorageAreaGroup struct {
	StorageArea string
	Locations   []LocationGroup
}

// ItemStore abstracts the transactional persistence operations for items.
// Following Go convention, the interface is defined by the consumer
// (usecase), not the provider (adapters).
type ItemStore interface {
	// InTx runs fn inside a single transaction. Any error returned by fn
	// rolls the whole transaction back.
	InTx(ctx context.Context, fn func(tx ItemStore) error) error

	// FindOwned retrieves an item by ID restricted to the owner. It returns
	// ErrItemNotFound for missing and foreign-owned items alike.
	FindOwned(ctx context.Context, userID, id uint) (*entity.Item, error)

	// Create inserts an item and fills in its generated ID.
	Create(ctx context.Context, item *entity.Item) error

	// UpdateFull overwrites the item's caller-supplied fields, owner-scoped.
	UpdateFull(ctx context.Context, userID uint, item *entity.Item) error

	// UpdatePlacement persists quantity, location_id and original_location_id
	// in one statement. Only the quantity path calls it.
	UpdatePlacement(ctx context.Context, id uint, quantity int, locationID, originalLocationID *uint) error

	// Delete removes an owned item.
	Delete(ctx context.Context, userID, id uint) error

	// ListRows returns the user's items joined with storage-area and
	// location names, ordered for grouping: storage area, then location with
	// the sentinel last, then item name.
	ListRows(ctx context.Context, userID uint) ([]ItemRow, error)

	// SentinelLocationID finds or lazily creates the user's "Not in Storage"
	// location and returns its ID. Safe against concurrent creation.
	SentinelLocationID(ctx context.Context, userID uint) (uint, error)
}

// itemUsecase implements item management including the zero-quantity
// relocation state machine.
type itemUsecase struct {
	store ItemStore
}

// NewItemUsecase creates a new itemUsecase instance.
func NewItemUsecase(store ItemStore) *itemUsecase {
	return &itemUsecase{store: store}
}

// CreateItem stores a new item for the user.
func (u *itemUsecase) CreateItem(ctx context.Context, item *entity.Item) error {
	if item.Quantity < 0 {
		return entity.ErrNegativeQuantity
	}
	if err := u.store.Create(ctx, item); err != nil {
		return fmt.Errorf("create item: %w", err)
	}
	return nil
}

// UpdateItem is the full-update path (the "edit everything" form). It writes
// the caller-supplied fields verbatim, including the location, and never
// touches original_location_id. The quantity path must use SetQuantity.
func (u *itemUsecase) UpdateItem(ctx context.Context, userID uint, item *entity.Item) error {
	if item.Quantity < 0 {
		return entity.ErrNegativeQuantity
	}
	return u.store.UpdateFull(ctx, userID, item)
}

// SetQuantity is the quantity-only path (the "quantity nudge" form). It runs
// the placement state machine in a single transaction: zeroing an item parks
// it in the sentinel location and remembers where it was; restoring it moves
// it to the explicit target, or back to the remembered location, and clears
// the memory.
func (u *itemUsecase) SetQuantity(ctx context.Context, userID, itemID uint, quantity int, explicitLocationID *uint) error {
	return u.store.InTx(ctx, func(tx ItemStore) error {
		item, err := tx.FindOwned(ctx, userID, itemID)
		if err != nil {
			return err
		}

		next, err := entity.Transition(item.Placement(), quantity, explicitLocationID)
		if err != nil {
			return err
		}

		switch p := next.(type) {
		case entity.NotInStorage:
			sentinelID, err := tx.SentinelLocationID(ctx, userID)
			if err != nil {
				return fmt.Errorf("resolve sentinel location: %w", err)
			}
			slog.Info("item moved to sentinel", "item_id", item.ID, "user_id", userID)
			return tx.UpdatePlacement(ctx, item.ID, 0, &sentinelID, p.RememberedLocationID)
		case entity.Placed:
			return tx.UpdatePlacement(ctx, item.ID, quantity, p.LocationID, nil)
		}
		return nil
	})
}

// DeleteItem removes an owned item.
func (u *itemUsecase) DeleteItem(ctx context.Context, userID, id uint) error {
	return u.store.Delete(ctx, userID, id)
}

// ListGrouped returns the user's inventory grouped by storage area and then
// location. Items without a location fall into the "Ungrouped" bucket; the
// sentinel group always sorts last within its storage area.
func (u *itemUsecase) ListGrouped(ctx context.Context, userID uint) ([]StorageAreaGroup, error) {
	rows, err := u.store.ListRows(ctx, userID)
	if err != nil {
		return nil, err
	}

	var groups []StorageAreaGroup
	byArea := map[string]int{}
	byLocation := map[string]map[string]int{}

	for _, row := range rows {
		areaIdx, ok := byArea[row.StorageArea]
		if !ok {
			areaIdx = len(groups)
			byArea[row.StorageArea] = areaIdx
			byLocation[row.StorageArea] = map[string]int{}
			groups = append(groups, StorageAreaGroup{StorageArea: row.StorageArea})
		}

		locName := UngroupedName
		if row.LocationName != nil {
			locName = *row.LocationName
		}

		locIdx, ok := byLocation[row.StorageArea][locName]
		if !ok {
			locIdx = len(groups[areaIdx].Locations)
			byLocation[row.StorageArea][locName] = locIdx
			groups[areaIdx].Locations = append(groups[areaIdx].Locations, LocationGroup{Location: locName})
		}

		loc := &groups[areaIdx].Locations[locIdx]
		loc.Items = append(loc.Items, row)
	}

	// Rows arrive ordered by the store; keep the sentinel bucket last even
	// if a backend returns NULL location names in a different position.
	for i := range groups {
		sort.SliceStable(groups[i].Locations, func(a, b int) bool {
			la, lb := groups[i].Locations[a].Location, groups[i].Locations[b].Location
			if (la == entity.SentinelLocationName) != (lb == entity.SentinelLocationName) {
				return lb == entity.SentinelLocationName
			}
			return false
		})
	}

	return groups, nil
}
