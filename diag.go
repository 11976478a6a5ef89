package kayadata

import "fmt"

// Diagnostics collects non-fatal query warnings, such as a region filter that
// matched no rows. Queries append at most one message per event.
//
// A nil *Diagnostics is valid everywhere and suppresses collection entirely,
// which is how callers request quiet operation. All methods are nil-safe.
type Diagnostics struct {
	messages []string
}

// Warnf records a formatted diagnostic message. No-op on a nil receiver.
func (d *Diagnostics) Warnf(format string, args ...any) {
	if d == nil {
		return
	}
	d.messages = append(d.messages, fmt.Sprintf(format, args...))
}

// Messages returns the collected diagnostics in arrival order.
// The returned slice is a copy; mutating it does not affect the sink.
func (d *Diagnostics) Messages() []string {
	if d == nil {
		return nil
	}
	out := make([]string, len(d.messages))
	copy(out, d.messages)
	return out
}

// Len reports the number of collected diagnostics.
func (d *Diagnostics) Len() int {
	if d == nil {
		return 0
	}
	return len(d.messages)
}
