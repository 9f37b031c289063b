package tablefmt

import (
	"fmt"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	kb = int64(1024)
	mb = kb * 1024
	gb = mb * 1024
	tb = gb * 1024
)

// FormatBytes renders a byte count as a human-readable size ("2.00 KB").
// Accepts any integer kind or a numeric string; anything else yields an
// empty cell. Use as a Column Formatter.
func FormatBytes(v any) string {
	n, ok := toInt64(v)
	if !ok {
		return ""
	}
	switch {
	case n > tb:
		return fmt.Sprintf("%.2f TB", float64(n)/float64(tb))
	case n > gb:
		return fmt.Sprintf("%.2f GB", float64(n)/float64(gb))
	case n > mb:
		return fmt.Sprintf("%.2f MB", float64(n)/float64(mb))
	case n > kb:
		return fmt.Sprintf("%.2f KB", float64(n)/float64(kb))
	default:
		return fmt.Sprintf("%.2f  B", float64(n))
	}
}

var commaPrinter = message.NewPrinter(language.English)

// FormatCommas renders an integer with thousands separators ("1,234,567").
// Accepts any integer kind or a numeric string; anything else yields an
// empty cell. Use as a Column Formatter.
func FormatCommas(v any) string {
	n, ok := toInt64(v)
	if !ok {
		return ""
	}
	return commaPrinter.Sprintf("%d", n)
}

func toInt64(v any) (int64, bool) {
	switch t := v.(type) {
	case int:
		return int64(t), true
	case int8:
		return int64(t), true
	case int16:
		return int64(t), true
	case int32:
		return int64(t), true
	case int64:
		return t, true
	case uint:
		return int64(t), true
	case uint8:
		return int64(t), true
	case uint16:
		return int64(t), true
	case uint32:
		return int64(t), true
	case uint64:
		return int64(t), true
	case float32:
		return int64(t), true
	case float64:
		return int64(t), true
	case string:
		n, err := strconv.ParseInt(t, 10, 64)
		if err != nil {
			return 0, false
		}
		return n, true
	}
	return 0, false
}
