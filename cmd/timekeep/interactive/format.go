package interactive

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/timekeep/timekeep-go/pkg/store"
	"github.com/timekeep/timekeep-go/pkg/timer"
)

// FormatTimer renders t as one line: id and start first, remaining fields
// sorted by name.
func FormatTimer(t timer.Timer) string {
	var b strings.Builder
	if id := t.ID(); id != nil {
		fmt.Fprintf(&b, "id=%s", formatValue(id))
	} else {
		b.WriteString("id=-")
	}
	if start := t.Start(); start != nil {
		fmt.Fprintf(&b, " start=%s", formatValue(start))
	}

	keys := make([]string, 0, len(t))
	for k := range t {
		if k != timer.FieldID && k != timer.FieldStart {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%s", k, formatValue(t[k]))
	}
	return b.String()
}

// FormatTimers renders a numbered list, or "(none)".
func FormatTimers(ts []timer.Timer) string {
	if len(ts) == 0 {
		return "  (none)\n"
	}
	var b strings.Builder
	for i, t := range ts {
		fmt.Fprintf(&b, "  %2d. %s\n", i+1, FormatTimer(t))
	}
	return b.String()
}

// FormatChange renders a store change notification.
func FormatChange(c store.Change) string {
	switch c.Kind {
	case store.TimersReplaced, store.CurrentTimersReplaced:
		return fmt.Sprintf("[CHANGE] %s count=%d", c.Kind, c.Count)
	case store.CurrentTimerRemoved:
		return fmt.Sprintf("[CHANGE] %s id=%s removed=%d", c.Kind, timer.PathID(c.ID), c.Count)
	case store.TimeoutChanged:
		return fmt.Sprintf("[CHANGE] %s timeout=%s", c.Kind, FormatDuration(c.Timeout))
	default:
		return fmt.Sprintf("[CHANGE] %s %s", c.Kind, FormatTimer(c.Timer))
	}
}

// FormatDuration renders d with its millisecond count.
func FormatDuration(d time.Duration) string {
	return fmt.Sprintf("%s (%d ms)", d, d.Milliseconds())
}

func formatValue(v any) string {
	switch x := v.(type) {
	case string:
		return fmt.Sprintf("%q", x)
	case nil:
		return "null"
	}
	if _, ok := v.(float64); ok {
		return timer.PathID(v)
	}
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	return string(data)
}
