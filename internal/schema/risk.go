package schema

import "github.com/shopspring/decimal"

// PV01 is interest-rate risk for one bond. The value is supplied at
// seeding and never recomputed; only the quantity accumulates as
// positions change.
type PV01 struct {
	Bond     Bond
	Value    decimal.Decimal
	Quantity int64
}

// BucketedSector is a named, fixed set of bonds.
type BucketedSector struct {
	Name  string
	Bonds []Bond
}

// SectorRisk is the synthetic PV01 of a whole sector, keyed by the
// sector name rather than a single bond.
type SectorRisk struct {
	Sector   BucketedSector
	Value    decimal.Decimal
	Quantity int64
}
