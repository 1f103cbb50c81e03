package entity

import "errors"

var (
	// ErrNegativeQuantity is returned when a quantity update carries a value
	// below zero.
	ErrNegativeQuantity = errors.New("quantity must not be negative")

	// ErrRelocationRequired is returned when an item is restored from zero
	// quantity with no explicit target and no remembered location to return
	// to. The sentinel is never silently reused as a real location.
	ErrRelocationRequired = errors.New("a location is required to restore this item")
)

// Placement is the placement state of an item: either physically placed or
// parked in the user's sentinel "Not in Storage" location.
type Placement interface {
	isPlacement()
}

// Placed means the item has positive quantity and lives at a location
// (nil LocationID = no location assigned, "ungrouped").
type Placed struct {
	LocationID *uint
}

// NotInStorage means the item's quantity is zero and it sits in the sentinel
// location. RememberedLocationID is where it should return to on restore.
type NotInStorage struct {
	RememberedLocationID *uint
}

func (Placed) isPlacement()       {}
func (NotInStorage) isPlacement() {}

// Transition applies a quantity update to a placement and returns the next
// placement. It is the single place the placement state machine lives:
//
//	Placed(L)       --qty 0-->                NotInStorage(remember L)
//	NotInStorage(R) --qty>0, explicit M-->    Placed(M)
//	NotInStorage(R) --qty>0, no explicit-->   Placed(R)
//	Placed(L)       --qty>0-->                Placed(L)
//
// Zeroing an already-parked item keeps its remembered location. Restoring an
// item that has neither an explicit target nor a remembered location fails
// with ErrRelocationRequired.
func Transition(current Placement, quantity int, explicitLocationID *uint) (Placement, error) {
	if quantity < 0 {
		return nil, ErrNegativeQuantity
	}

	if quantity == 0 {
		switch p := current.(type) {
		case Placed:
			return NotInStorage{RememberedLocationID: p.LocationID}, nil
		case NotInStorage:
			return p, nil
		}
	}

	if explicitLocationID != nil {
		return Placed{LocationID: explicitLocationID}, nil
	}

	switch p := current.(type) {
	case Placed:
		return p, nil
	case NotInStorage:
		if p.RememberedLocationID == nil {
			return nil, ErrRelocationRequired
		}
		return Placed{LocationID: p.RememberedLocationID}, nil
	}

	return nil, errors.New("unknown placement state")
}
