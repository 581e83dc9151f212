package pricing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"main/internal/bus"
	"main/internal/codec"
	"main/internal/schema"
)

var bond = schema.Bond{CUSIP: "9128283H1", Ticker: "T"}

func testRegistry(t *testing.T) *schema.BondRegistry {
	t.Helper()
	reg := schema.NewBondRegistry()
	require.NoError(t, reg.Add(bond))
	return reg
}

func writePriceFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "prices.txt")
	all := append([]string{"CUSIP,Mid,BidOfferSpread"}, lines...)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(all, "\n")+"\n"), 0o644))
	return path
}

func TestSubscribeParsesFractionalPrices(t *testing.T) {
	svc := NewService()
	conn := NewConnector(testRegistry(t), svc, writePriceFile(t, "9128283H1,99-16+,0-002"))
	require.NoError(t, conn.Subscribe())

	p, err := svc.Get(bond.CUSIP)
	require.NoError(t, err)
	assert.Equal(t, "99-16+", codec.Format(p.Mid))
	assert.Equal(t, "0-002", codec.Format(p.BidOfferSpread))
	assert.Equal(t, "T", p.Bond.Ticker)
}

func TestSubscribeLastWriteWins(t *testing.T) {
	svc := NewService()
	conn := NewConnector(testRegistry(t), svc, writePriceFile(t,
		"9128283H1,99-000,0-002",
		"9128283H1,100-000,0-004",
	))
	require.NoError(t, conn.Subscribe())

	p, err := svc.Get(bond.CUSIP)
	require.NoError(t, err)
	assert.Equal(t, "100-000", codec.Format(p.Mid))
}

func TestSubscribeFansOutEveryPrice(t *testing.T) {
	svc := NewService()
	var mids []string
	svc.Prices().AddListener(bus.ListenerFunc[schema.Price](func(p schema.Price) error {
		mids = append(mids, codec.Format(p.Mid))
		return nil
	}))

	conn := NewConnector(testRegistry(t), svc, writePriceFile(t,
		"9128283H1,99-000,0-002",
		"9128283H1,100-000,0-004",
	))
	require.NoError(t, conn.Subscribe())
	assert.Equal(t, []string{"99-000", "100-000"}, mids)
}

func TestSubscribeMalformedSpread(t *testing.T) {
	svc := NewService()
	conn := NewConnector(testRegistry(t), svc, writePriceFile(t, "9128283H1,99-000,bad"))
	err := conn.Subscribe()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestSubscribeUnknownBond(t *testing.T) {
	svc := NewService()
	conn := NewConnector(testRegistry(t), svc, writePriceFile(t, "912810RZ3,99-000,0-002"))
	require.Error(t, conn.Subscribe())
}

func TestSubscribeListenerFailureAborts(t *testing.T) {
	svc := NewService()
	svc.Prices().AddListener(bus.ListenerFunc[schema.Price](func(schema.Price) error {
		return assert.AnError
	}))

	conn := NewConnector(testRegistry(t), svc, writePriceFile(t, "9128283H1,99-000,0-002"))
	require.Error(t, conn.Subscribe())
}
