// Package ops loads runtime configuration for the trading pipeline.
package ops

import (
	"os"
	"time"

	"github.com/bytedance/sonic"
	"github.com/shopspring/decimal"
	"github.com/yanun0323/errors"

	"main/internal/schema"
)

// FileConfig mirrors the JSON config layout. Every field is optional;
// missing sections fall back to the default treasury universe.
type FileConfig struct {
	DataDir           string         `json:"dataDir"`
	OutDir            string         `json:"outDir"`
	GUIThrottleMS     int            `json:"guiThrottleMs"`
	FillsPerExecution int            `json:"fillsPerExecution"`
	Seed              int64          `json:"seed"`
	Bonds             []BondConfig   `json:"bonds"`
	Sectors           []SectorConfig `json:"sectors"`
}

// BondConfig describes one bond of the universe.
type BondConfig struct {
	CUSIP    string `json:"cusip"`
	Ticker   string `json:"ticker"`
	Coupon   string `json:"coupon"`
	Maturity string `json:"maturity"`
	Yield    string `json:"yield"`
}

// SectorConfig names a risk bucket and its member CUSIPs.
type SectorConfig struct {
	Name   string   `json:"name"`
	Cusips []string `json:"cusips"`
}

// Loaded is the resolved configuration ready for wiring.
type Loaded struct {
	DataDir           string
	OutDir            string
	GUIThrottle       time.Duration
	FillsPerExecution int
	Seed              int64

	Registry *schema.BondRegistry
	Yields   map[schema.CUSIP]decimal.Decimal
	Sectors  []schema.BucketedSector
}

// Default returns the built-in six-bond treasury universe: 2Y through
// 30Y on-the-run issues bucketed into FrontEnd, Belly and LongEnd.
func Default() Loaded {
	loaded := Loaded{
		DataDir:           "data",
		OutDir:            "out",
		GUIThrottle:       300 * time.Millisecond,
		FillsPerExecution: 10,
		Seed:              1,
		Registry:          schema.NewBondRegistry(),
		Yields:            make(map[schema.CUSIP]decimal.Decimal),
	}
	universe := []struct {
		cusip    schema.CUSIP
		maturity string
		yield    string
	}{
		{"9128283H1", "2019-11-30", "0.01765"},
		{"9128283L2", "2020-12-15", "0.01932"},
		{"912828M80", "2022-11-30", "0.02066"},
		{"9128283J7", "2024-11-30", "0.02230"},
		{"9128283F5", "2027-11-15", "0.02384"},
		{"912810RZ3", "2047-11-15", "0.02801"},
	}
	for _, u := range universe {
		maturity, _ := time.Parse("2006-01-02", u.maturity)
		_ = loaded.Registry.Add(schema.Bond{
			CUSIP:    u.cusip,
			Ticker:   "T",
			Coupon:   decimal.Zero,
			Maturity: maturity,
		})
		loaded.Yields[u.cusip] = decimal.RequireFromString(u.yield)
	}
	loaded.Sectors = []schema.BucketedSector{
		sectorOf(loaded.Registry, "FrontEnd", "9128283H1", "9128283L2"),
		sectorOf(loaded.Registry, "Belly", "912828M80", "9128283J7", "9128283F5"),
		sectorOf(loaded.Registry, "LongEnd", "912810RZ3"),
	}
	return loaded
}

func sectorOf(registry *schema.BondRegistry, name string, cusips ...schema.CUSIP) schema.BucketedSector {
	sector := schema.BucketedSector{Name: name}
	for _, cusip := range cusips {
		bond, err := registry.Bond(cusip)
		if err != nil {
			continue
		}
		sector.Bonds = append(sector.Bonds, bond)
	}
	return sector
}

// Load reads a JSON config file and resolves it over the defaults. An
// empty path returns the defaults unchanged.
func Load(path string) (Loaded, error) {
	loaded := Default()
	if path == "" {
		return loaded, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Loaded{}, errors.Wrapf(err, "read config %s", path)
	}
	var cfg FileConfig
	if err := sonic.Unmarshal(data, &cfg); err != nil {
		return Loaded{}, errors.Wrapf(err, "parse config %s", path)
	}
	return resolve(loaded, cfg)
}

func resolve(loaded Loaded, cfg FileConfig) (Loaded, error) {
	if cfg.DataDir != "" {
		loaded.DataDir = cfg.DataDir
	}
	if cfg.OutDir != "" {
		loaded.OutDir = cfg.OutDir
	}
	if cfg.GUIThrottleMS > 0 {
		loaded.GUIThrottle = time.Duration(cfg.GUIThrottleMS) * time.Millisecond
	}
	if cfg.FillsPerExecution > 0 {
		loaded.FillsPerExecution = cfg.FillsPerExecution
	}
	if cfg.Seed != 0 {
		loaded.Seed = cfg.Seed
	}
	if len(cfg.Bonds) == 0 {
		return loaded, nil
	}

	// A configured universe replaces the defaults entirely, sectors
	// included.
	loaded.Registry = schema.NewBondRegistry()
	loaded.Yields = make(map[schema.CUSIP]decimal.Decimal)
	loaded.Sectors = nil
	for _, b := range cfg.Bonds {
		bond, yield, err := resolveBond(b)
		if err != nil {
			return Loaded{}, err
		}
		if err := loaded.Registry.Add(bond); err != nil {
			return Loaded{}, err
		}
		loaded.Yields[bond.CUSIP] = yield
	}
	for _, s := range cfg.Sectors {
		sector := schema.BucketedSector{Name: s.Name}
		for _, c := range s.Cusips {
			bond, err := loaded.Registry.Bond(schema.CUSIP(c))
			if err != nil {
				return Loaded{}, errors.Wrapf(err, "sector %s references unknown bond %s", s.Name, c)
			}
			sector.Bonds = append(sector.Bonds, bond)
		}
		loaded.Sectors = append(loaded.Sectors, sector)
	}
	return loaded, nil
}

func resolveBond(cfg BondConfig) (schema.Bond, decimal.Decimal, error) {
	if cfg.CUSIP == "" {
		return schema.Bond{}, decimal.Zero, errors.New("bond cusip is empty")
	}
	bond := schema.Bond{CUSIP: schema.CUSIP(cfg.CUSIP), Ticker: cfg.Ticker}
	if bond.Ticker == "" {
		bond.Ticker = "T"
	}
	if cfg.Coupon != "" {
		coupon, err := decimal.NewFromString(cfg.Coupon)
		if err != nil {
			return schema.Bond{}, decimal.Zero, errors.Wrapf(err, "bond %s coupon", cfg.CUSIP)
		}
		bond.Coupon = coupon
	}
	if cfg.Maturity != "" {
		maturity, err := time.Parse("2006-01-02", cfg.Maturity)
		if err != nil {
			return schema.Bond{}, decimal.Zero, errors.Wrapf(err, "bond %s maturity", cfg.CUSIP)
		}
		bond.Maturity = maturity
	}
	if cfg.Yield == "" {
		return schema.Bond{}, decimal.Zero, errors.Errorf("bond %s has no yield", cfg.CUSIP)
	}
	yield, err := decimal.NewFromString(cfg.Yield)
	if err != nil {
		return schema.Bond{}, decimal.Zero, errors.Wrapf(err, "bond %s yield", cfg.CUSIP)
	}
	return bond, yield, nil
}
