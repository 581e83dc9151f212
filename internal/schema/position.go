package schema

// Position tracks signed quantities of one bond across trading books.
// It is mutated only by adding a signed delta for one book at a time.
type Position struct {
	Bond  Bond
	books map[string]int64
}

// NewPosition creates a zero position for a bond.
func NewPosition(bond Bond) Position {
	return Position{Bond: bond, books: make(map[string]int64)}
}

// Add applies a signed quantity delta to the named book.
func (p Position) Add(book string, quantity int64) {
	p.books[book] = p.books[book] + quantity
}

// Quantity returns the signed position in one book.
func (p Position) Quantity(book string) int64 {
	return p.books[book]
}

// Aggregate sums the position across all books. It may be negative.
func (p Position) Aggregate() int64 {
	var total int64
	for _, q := range p.books {
		total += q
	}
	return total
}

// Books returns the book names holding a recorded position.
func (p Position) Books() []string {
	names := make([]string, 0, len(p.books))
	for name := range p.books {
		names = append(names, name)
	}
	return names
}
