package value

import (
	"fmt"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
)

// decimalDigits is the precision used when rendering non-terminating decimals.
const decimalDigits = 10

// Format renders v for display.
func Format(v Value) string {
	var sb strings.Builder
	writeValue(&sb, v, false)
	return sb.String()
}

func writeValue(sb *strings.Builder, v Value, nested bool) {
	switch val := v.(type) {
	case nil, Nothing:
		sb.WriteString("nothing")
	case Int:
		sb.WriteString(val.big().String())
	case Decimal:
		sb.WriteString(formatRat(val.rat()))
	case Filesize:
		sb.WriteString(humanize.Bytes(uint64(val)))
	case Text:
		if nested {
			sb.WriteString(strconv.Quote(val.Text()))
		} else {
			sb.WriteString(val.Text())
		}
	case Path:
		sb.WriteString(string(val))
	case Boolean:
		sb.WriteString(strconv.FormatBool(bool(val)))
	case Date:
		sb.WriteString(val.t.Format(time.RFC3339))
	case Duration:
		sb.WriteString(time.Duration(val).String())
	case Binary:
		fmt.Fprintf(sb, "0x%x", []byte(val))
	case Uuid:
		sb.WriteString(val.String())
	case *Row:
		sb.WriteString("{")
		for i, k := range val.keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(k)
			sb.WriteString(": ")
			writeValue(sb, val.values[k], true)
		}
		sb.WriteString("}")
	case Table:
		sb.WriteString("[")
		for i, item := range val {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeValue(sb, item, true)
		}
		sb.WriteString("]")
	}
}

// formatRat renders r in decimal notation with at least one fractional digit.
func formatRat(r *big.Rat) string {
	if r.IsInt() {
		return r.Num().String() + ".0"
	}
	s := r.FloatString(decimalDigits)
	s = strings.TrimRight(s, "0")
	if strings.HasSuffix(s, ".") {
		s += "0"
	}
	return s
}
