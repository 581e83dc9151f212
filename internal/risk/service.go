// Package risk tracks PV01 sensitivity per bond and per sector bucket.
package risk

import (
	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"
	"github.com/yanun0323/logs"

	"main/internal/bus"
	"main/internal/schema"
)

// Service accumulates position-driven PV01 quantities.
//
// PV01 values are seeded once and never recomputed; position updates only
// accumulate into the quantity field. A position for a bond that was
// never seeded is an error and aborts the triggering cascade.
type Service struct {
	pv01s   *bus.Service[schema.CUSIP, schema.PV01]
	sectors []schema.BucketedSector
}

// NewService creates an empty risk service.
func NewService() *Service {
	return &Service{
		pv01s: bus.New("risk", func(p schema.PV01) schema.CUSIP {
			return p.Bond.CUSIP
		}),
	}
}

// PV01s exposes the underlying keyed store for listener wiring.
func (s *Service) PV01s() *bus.Service[schema.CUSIP, schema.PV01] {
	return s.pv01s
}

// Seed stores the initial PV01 for a bond without fanning out.
func (s *Service) Seed(p schema.PV01) {
	s.pv01s.Store(p)
}

// AddSector registers a sector bucket for bucketed risk queries.
func (s *Service) AddSector(sector schema.BucketedSector) {
	s.sectors = append(s.sectors, sector)
}

// Sectors returns the registered sector buckets.
func (s *Service) Sectors() []schema.BucketedSector {
	return s.sectors
}

// Get returns the current PV01 for a bond.
func (s *Service) Get(cusip schema.CUSIP) (schema.PV01, error) {
	return s.pv01s.Get(cusip)
}

// AddPosition accumulates the position's aggregate quantity into the
// bond's PV01 quantity and fans out the updated PV01.
func (s *Service) AddPosition(pos schema.Position) error {
	pv, err := s.pv01s.Get(pos.Bond.CUSIP)
	if err != nil {
		return errors.Wrap(err, "risk not seeded")
	}
	pv.Quantity += pos.Aggregate()
	logs.Infof("pv01 of %s is %s, quantity %d", pv.Bond.CUSIP, pv.Value, pv.Quantity)
	return s.pv01s.OnMessage(pv)
}

// BucketedRisk sums the current PV01 value of every sector member. The
// sum is recomputed on each call, never cached.
func (s *Service) BucketedRisk(sector schema.BucketedSector) (schema.SectorRisk, error) {
	total := decimal.Zero
	for _, bond := range sector.Bonds {
		pv, err := s.pv01s.Get(bond.CUSIP)
		if err != nil {
			return schema.SectorRisk{}, errors.Wrapf(err, "sector %s", sector.Name)
		}
		total = total.Add(pv.Value)
	}
	return schema.SectorRisk{Sector: sector, Value: total, Quantity: 1}, nil
}
