// Package gen writes synthetic input files for the trading pipeline.
package gen

import (
	"bufio"
	"fmt"
	"math/rand"
	"os"

	"github.com/yanun0323/errors"

	"main/internal/codec"
	"main/internal/schema"
)

const (
	defaultTradesPerBond = 10
	defaultBookRounds    = 10
	defaultPriceRounds   = 100
	defaultInquiryRounds = 10

	baseHandle  = 99
	tickSpan    = 2*256 + 1 // mids land in [99, 101]
	depthLevels = 5
)

// Generator writes the four input files for a bond universe. Output is
// deterministic for a seeded rand source.
type Generator struct {
	bonds []schema.Bond
	rng   *rand.Rand

	TradesPerBond int
	BookRounds    int
	PriceRounds   int
	InquiryRounds int
}

// NewGenerator creates a generator over every bond in the registry.
func NewGenerator(registry *schema.BondRegistry, rng *rand.Rand) (*Generator, error) {
	if registry == nil || registry.Count() == 0 {
		return nil, errors.New("registry has no bonds")
	}
	bonds := make([]schema.Bond, 0, registry.Count())
	for i := 0; i < registry.Count(); i++ {
		bond, ok := registry.At(i)
		if !ok {
			continue
		}
		bonds = append(bonds, bond)
	}
	return &Generator{
		bonds:         bonds,
		rng:           rng,
		TradesPerBond: defaultTradesPerBond,
		BookRounds:    defaultBookRounds,
		PriceRounds:   defaultPriceRounds,
		InquiryRounds: defaultInquiryRounds,
	}, nil
}

// WriteAll writes all four input files into dir with their default names.
func (g *Generator) WriteAll(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "create data dir %s", dir)
	}
	for _, step := range []struct {
		name  string
		write func(string) error
	}{
		{"trades.txt", g.WriteTrades},
		{"inquiries.txt", g.WriteInquiries},
		{"marketdata.txt", g.WriteMarketData},
		{"prices.txt", g.WritePrices},
	} {
		if err := step.write(dir + "/" + step.name); err != nil {
			return errors.Wrapf(err, "generate %s", step.name)
		}
	}
	return nil
}

// WriteTrades writes trade records: ten per bond, random 256th prices
// around the base handle, TRSY1..3 books, 1-9MM quantities.
func (g *Generator) WriteTrades(path string) error {
	return g.writeFile(path, "CUSIP,TradeID,Book,Price,Quantity,Side", func(w *bufio.Writer) error {
		id := 0
		for _, bond := range g.bonds {
			for j := 0; j < g.TradesPerBond; j++ {
				id++
				fmt.Fprintf(w, "%s,T%d,TRSY%d,%s,%d,%s\n",
					bond.CUSIP,
					id,
					1+g.rng.Intn(3),
					g.randomPrice(),
					int64(1+g.rng.Intn(9))*1_000_000,
					g.randomSide(),
				)
			}
		}
		return nil
	})
}

// WriteInquiries writes inquiry records, always in RECEIVED state.
func (g *Generator) WriteInquiries(path string) error {
	return g.writeFile(path, "CUSIP,Side,Quantity,Price,State", func(w *bufio.Writer) error {
		for i := 0; i < g.InquiryRounds; i++ {
			for _, bond := range g.bonds {
				fmt.Fprintf(w, "%s,%s,%d,100,RECEIVED\n",
					bond.CUSIP,
					g.randomSide(),
					int64(1+g.rng.Intn(9))*1_000_000,
				)
			}
		}
		return nil
	})
}

// WriteMarketData writes order book snapshots: five bid and five offer
// levels one tick apart around a random mid, sizes 1MM..5MM.
func (g *Generator) WriteMarketData(path string) error {
	header := "CUSIP"
	for k := 1; k <= depthLevels; k++ {
		header += fmt.Sprintf(",bidprice%d,quantity", k)
	}
	for k := 1; k <= depthLevels; k++ {
		header += fmt.Sprintf(",offerprice%d,quantity", k)
	}

	return g.writeFile(path, header, func(w *bufio.Writer) error {
		for i := 0; i < g.BookRounds; i++ {
			for _, bond := range g.bonds {
				w.WriteString(string(bond.CUSIP))
				mid := int64(depthLevels + g.rng.Intn(tickSpan-2*depthLevels))
				for k := int64(1); k <= depthLevels; k++ {
					fmt.Fprintf(w, ",%s,%d", codec.Format(codec.FromTicks(baseHandle, mid-k)), k*1_000_000)
				}
				for k := int64(1); k <= depthLevels; k++ {
					fmt.Fprintf(w, ",%s,%d", codec.Format(codec.FromTicks(baseHandle, mid+k)), k*1_000_000)
				}
				w.WriteByte('\n')
			}
		}
		return nil
	})
}

// WritePrices writes mid/spread quotes; spreads oscillate between 2 and
// 4 256ths.
func (g *Generator) WritePrices(path string) error {
	return g.writeFile(path, "CUSIP,Mid,BidOfferSpread", func(w *bufio.Writer) error {
		for i := 0; i < g.PriceRounds; i++ {
			for _, bond := range g.bonds {
				mid := int64(4 + g.rng.Intn(tickSpan-8))
				spread := int64(2 + g.rng.Intn(3))
				fmt.Fprintf(w, "%s,%s,%s\n",
					bond.CUSIP,
					codec.Format(codec.FromTicks(baseHandle, mid)),
					codec.Format(codec.FromTicks(0, spread)),
				)
			}
		}
		return nil
	})
}

func (g *Generator) randomPrice() string {
	return codec.Format(codec.FromTicks(baseHandle, int64(g.rng.Intn(tickSpan))))
}

func (g *Generator) randomSide() string {
	if g.rng.Intn(2) == 0 {
		return schema.SideBuy.String()
	}
	return schema.SideSell.String()
}

// writeFile truncates path, writes the header line, then the body.
// Generation is process-start initialization, so truncation here does
// not violate the append-only rule of the output sinks.
func (g *Generator) writeFile(path, header string, body func(*bufio.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	w.WriteString(header)
	w.WriteByte('\n')
	if err := body(w); err != nil {
		return err
	}
	if err := w.Flush(); err != nil {
		return errors.Wrapf(err, "flush %s", path)
	}
	return nil
}
