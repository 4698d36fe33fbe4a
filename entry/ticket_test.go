package entry

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestProvisionalTicket(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	got := ProvisionalTicket(now)
	if !strings.HasPrefix(got, "PENDING-") {
		t.Fatalf("unexpected provisional ticket %q", got)
	}
}

func TestTicketCode(t *testing.T) {
	id := uuid.MustParse("9f8b21c4-0000-4000-8000-000000000000")

	cases := []struct {
		name     string
		location string
		want     string
	}{
		{"plain", "A", "A-9F8B21C4"},
		{"lowercase location", "zone-b", "ZONE-B-9F8B21C4"},
		{"padded location", "  c1 ", "C1-9F8B21C4"},
		{"empty location falls back", "", "A-9F8B21C4"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TicketCode(tc.location, id); got != tc.want {
				t.Fatalf("TicketCode(%q) = %q, want %q", tc.location, got, tc.want)
			}
		})
	}
}

func TestTicketCodeUniquePerEntry(t *testing.T) {
	a := TicketCode("A", uuid.New())
	b := TicketCode("A", uuid.New())
	if a == b {
		t.Fatalf("distinct entries produced the same ticket %q", a)
	}
}
