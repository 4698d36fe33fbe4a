package entry

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ProvisionalTicket is the placeholder ticket code an entry carries between
// the first and second write of the admission transaction, before the record
// id needed for the real code exists.
func ProvisionalTicket(now time.Time) string {
	return fmt.Sprintf("PENDING-%d", now.UnixNano())
}

// TicketCode derives the human-facing ticket identifier from the admission
// location's display name and the entry id, e.g. "A-9F8B21C4".
func TicketCode(locationName string, id uuid.UUID) string {
	prefix := strings.ToUpper(strings.TrimSpace(locationName))
	if prefix == "" {
		prefix = "A"
	}
	short := strings.ToUpper(strings.ReplaceAll(id.String(), "-", ""))[:8]
	return fmt.Sprintf("%s-%s", prefix, short)
}
