package connection

import "fmt"

// Side names which half of a duplicate insert collided.
type Side int

const (
	LeftSide Side = iota
	RightSide
)

func (s Side) String() string {
	if s == LeftSide {
		return "left"
	}
	return "right"
}

// AlreadyPresentError reports that Index.Insert found an id already
// registered on the named side.
type AlreadyPresentError struct {
	Side Side
	ID   uint64
}

func (e *AlreadyPresentError) Error() string {
	return fmt.Sprintf("connection index: id %d already present on %s side", e.ID, e.Side)
}

// Index is the bidirectional map the runtime uses to find, by either
// endpoint's id, the connection that endpoint currently participates in.
// It maintains left-id -> right-id, right-id -> left-id, and
// left-id -> Connection in lockstep; all three always have equal length.
type Index struct {
	leftToRight map[uint64]uint64
	rightToLeft map[uint64]uint64
	leftToPair  map[uint64]Connection
}

// NewIndex returns an empty Index.
func NewIndex() *Index {
	return &Index{
		leftToRight: make(map[uint64]uint64),
		rightToLeft: make(map[uint64]uint64),
		leftToPair:  make(map[uint64]Connection),
	}
}

// Len returns the number of connections currently stored.
func (idx *Index) Len() int {
	return len(idx.leftToPair)
}

// Insert adds c, keyed by the id of its left endpoint. It fails if
// either endpoint's id is already registered on either side.
func (idx *Index) Insert(c Connection) error {
	leftID, rightID := c.Left.ID(), c.Right.ID()

	if _, exists := idx.leftToRight[leftID]; exists {
		return &AlreadyPresentError{Side: LeftSide, ID: leftID}
	}
	if _, exists := idx.rightToLeft[rightID]; exists {
		return &AlreadyPresentError{Side: RightSide, ID: rightID}
	}
	if _, exists := idx.rightToLeft[leftID]; exists {
		return &AlreadyPresentError{Side: RightSide, ID: leftID}
	}
	if _, exists := idx.leftToRight[rightID]; exists {
		return &AlreadyPresentError{Side: LeftSide, ID: rightID}
	}

	idx.leftToRight[leftID] = rightID
	idx.rightToLeft[rightID] = leftID
	idx.leftToPair[leftID] = c
	return nil
}

// GetByLeftID returns the connection keyed by the given left-side id.
func (idx *Index) GetByLeftID(leftID uint64) (Connection, bool) {
	c, ok := idx.leftToPair[leftID]
	return c, ok
}

// GetByRightID returns the connection whose right-side endpoint has the
// given id.
func (idx *Index) GetByRightID(rightID uint64) (Connection, bool) {
	leftID, ok := idx.rightToLeft[rightID]
	if !ok {
		return Connection{}, false
	}
	return idx.GetByLeftID(leftID)
}

// GetByID returns the connection in which id appears on either side.
func (idx *Index) GetByID(id uint64) (Connection, bool) {
	if c, ok := idx.GetByLeftID(id); ok {
		return c, ok
	}
	return idx.GetByRightID(id)
}

// RemoveByLeftID removes and returns the connection keyed by leftID.
func (idx *Index) RemoveByLeftID(leftID uint64) (Connection, bool) {
	c, ok := idx.leftToPair[leftID]
	if !ok {
		return Connection{}, false
	}
	delete(idx.leftToPair, leftID)
	delete(idx.rightToLeft, c.Right.ID())
	delete(idx.leftToRight, leftID)
	return c, true
}

// RemoveByRightID removes and returns the connection whose right-side
// endpoint has the given id.
func (idx *Index) RemoveByRightID(rightID uint64) (Connection, bool) {
	leftID, ok := idx.rightToLeft[rightID]
	if !ok {
		return Connection{}, false
	}
	return idx.RemoveByLeftID(leftID)
}

// RemoveByID removes the connection in which id appears on either side.
func (idx *Index) RemoveByID(id uint64) (Connection, bool) {
	if c, ok := idx.RemoveByLeftID(id); ok {
		return c, ok
	}
	return idx.RemoveByRightID(id)
}

// All returns every connection currently stored, in unspecified order.
func (idx *Index) All() []Connection {
	out := make([]Connection, 0, len(idx.leftToPair))
	for _, c := range idx.leftToPair {
		out = append(out, c)
	}
	return out
}

func (idx *Index) String() string {
	s := fmt.Sprintf("Index(%d):\n", idx.Len())
	for _, c := range idx.All() {
		s += "\t" + c.String() + "\n"
	}
	return s
}
