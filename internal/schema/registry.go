package schema

import (
	"github.com/yanun0323/errors"

	"main/pkg/exception"
)

// BondRegistry stores the static bond universe, keyed by CUSIP.
// It is populated once at startup and read-only afterwards.
type BondRegistry struct {
	bonds   []Bond
	byCUSIP map[CUSIP]int
}

// NewBondRegistry creates an empty registry.
func NewBondRegistry() *BondRegistry {
	return &BondRegistry{byCUSIP: make(map[CUSIP]int)}
}

// Add registers a new bond. Re-registering a CUSIP is an error.
func (r *BondRegistry) Add(b Bond) error {
	if b.CUSIP == "" {
		return errors.New("bond cusip is empty")
	}
	if _, ok := r.byCUSIP[b.CUSIP]; ok {
		return errors.Wrapf(exception.ErrDuplicateKey, "bond %s", b.CUSIP)
	}
	r.byCUSIP[b.CUSIP] = len(r.bonds)
	r.bonds = append(r.bonds, b)
	return nil
}

// Bond returns the bond registered under cusip.
func (r *BondRegistry) Bond(cusip CUSIP) (Bond, error) {
	idx, ok := r.byCUSIP[cusip]
	if !ok {
		return Bond{}, errors.Wrapf(exception.ErrNotFound, "bond %s", cusip)
	}
	return r.bonds[idx], nil
}

// Count returns the number of registered bonds.
func (r *BondRegistry) Count() int {
	return len(r.bonds)
}

// At returns the bond by zero-based registration index.
func (r *BondRegistry) At(index int) (Bond, bool) {
	if index < 0 || index >= len(r.bonds) {
		return Bond{}, false
	}
	return r.bonds[index], true
}
