package billing

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// SynthesizeNumber generates a display invoice number for invoices the
// user left unnumbered: "INV-" + the last four digits of the creation
// unix-millis + a random suffix. Numbers generated this way are persisted
// at creation time so they stay stable across views.
func SynthesizeNumber(now time.Time) string {
	return fmt.Sprintf("INV-%04d-%d", now.UnixMilli()%10000, rand.IntN(1000))
}
