package schema

import (
	"sort"
	"testing"
)

func TestPositionAddAndAggregate(t *testing.T) {
	pos := NewPosition(Bond{CUSIP: "9128283H1"})
	pos.Add("TRSY1", 5_000_000)
	pos.Add("TRSY2", -2_000_000)
	pos.Add("TRSY1", 1_000_000)

	if got := pos.Quantity("TRSY1"); got != 6_000_000 {
		t.Fatalf("TRSY1 = %d, want 6000000", got)
	}
	if got := pos.Quantity("TRSY2"); got != -2_000_000 {
		t.Fatalf("TRSY2 = %d, want -2000000", got)
	}
	if got := pos.Aggregate(); got != 4_000_000 {
		t.Fatalf("aggregate = %d, want 4000000", got)
	}
}

func TestPositionUnknownBookIsZero(t *testing.T) {
	pos := NewPosition(Bond{CUSIP: "9128283H1"})
	if got := pos.Quantity("TRSY3"); got != 0 {
		t.Fatalf("TRSY3 = %d, want 0", got)
	}
}

func TestPositionBooks(t *testing.T) {
	pos := NewPosition(Bond{CUSIP: "9128283H1"})
	pos.Add("TRSY2", 1)
	pos.Add("TRSY1", 1)

	books := pos.Books()
	sort.Strings(books)
	if len(books) != 2 || books[0] != "TRSY1" || books[1] != "TRSY2" {
		t.Fatalf("books = %v", books)
	}
}

func TestInquiryStateTerminal(t *testing.T) {
	terminal := []InquiryState{InquiryStateDone, InquiryStateRejected, InquiryStateCustomerRejected}
	for _, s := range terminal {
		if !s.Terminal() {
			t.Fatalf("%s should be terminal", s)
		}
	}
	for _, s := range []InquiryState{InquiryStateReceived, InquiryStateQuoted} {
		if s.Terminal() {
			t.Fatalf("%s should not be terminal", s)
		}
	}
}
