package marketdata

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

func bookLine(cusip string) string {
	fields := []string{cusip}
	for _, prices := range [][]string{
		{"99-317", "99-316", "99-315", "99-314", "99-313"},
		{"100-001", "100-002", "100-003", "100-004", "100-005"},
	} {
		for k, p := range prices {
			fields = append(fields, p, []string{"1000000", "2000000", "3000000", "4000000", "5000000"}[k])
		}
	}
	return strings.Join(fields, ",")
}

func writeBookFile(t *testing.T, lines ...string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "marketdata.txt")
	all := append([]string{"CUSIP,levels"}, lines...)
	require.NoError(t, os.WriteFile(path, []byte(strings.Join(all, "\n")+"\n"), 0o644))
	return path
}

func TestSubscribeParsesFullDepth(t *testing.T) {
	svc := NewService()
	conn := NewConnector(testRegistry(t), svc, writeBookFile(t, bookLine("9128283H1")))
	require.NoError(t, conn.Subscribe())

	book, err := svc.Get(bond.CUSIP)
	require.NoError(t, err)
	require.Len(t, book.Bids, 5)
	require.Len(t, book.Offers, 5)
	assert.Equal(t, "99-317", codec.Format(book.Bids[0].Price))
	assert.Equal(t, int64(1_000_000), book.Bids[0].Quantity)
	assert.Equal(t, "100-005", codec.Format(book.Offers[4].Price))
	assert.Equal(t, schema.PricingSideOffer, book.Offers[0].Side)
}

func TestBestBidOffer(t *testing.T) {
	svc := NewService()
	conn := NewConnector(testRegistry(t), svc, writeBookFile(t, bookLine("9128283H1")))
	require.NoError(t, conn.Subscribe())

	top, err := svc.BestBidOffer(bond.CUSIP)
	require.NoError(t, err)
	assert.Equal(t, "99-317", codec.Format(top.Bid.Price))
	assert.Equal(t, "100-001", codec.Format(top.Offer.Price))
}

func TestBestBidOfferUnknownBond(t *testing.T) {
	svc := NewService()
	_, err := svc.BestBidOffer("912810RZ3")
	require.Error(t, err)
}

func TestSubscribeFansOutEachBook(t *testing.T) {
	svc := NewService()
	count := 0
	svc.Books().AddListener(bus.ListenerFunc[schema.OrderBook](func(schema.OrderBook) error {
		count++
		return nil
	}))

	conn := NewConnector(testRegistry(t), svc,
		writeBookFile(t, bookLine("9128283H1"), bookLine("9128283H1")))
	require.NoError(t, conn.Subscribe())
	assert.Equal(t, 2, count)
}

func TestSubscribeRejectsUnknownCUSIP(t *testing.T) {
	svc := NewService()
	conn := NewConnector(testRegistry(t), svc, writeBookFile(t, bookLine("912810RZ3")))
	err := conn.Subscribe()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestSubscribeRejectsShortRecord(t *testing.T) {
	svc := NewService()
	conn := NewConnector(testRegistry(t), svc, writeBookFile(t, "9128283H1,99-317,1000000"))
	require.Error(t, conn.Subscribe())
}

func TestSubscribeRejectsBadPrice(t *testing.T) {
	svc := NewService()
	line := strings.Replace(bookLine("9128283H1"), "99-317", "99-99x", 1)
	conn := NewConnector(testRegistry(t), svc, writeBookFile(t, line))
	require.Error(t, conn.Subscribe())
}
