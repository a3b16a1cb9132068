package mmlog

import (
	"strconv"
	"strings"
	"time"
)

// appendRecord appends one formatted record to dst:
//
//	[<seconds-since-epoch> <thread-id> <tag> <callsite-or-empty> <target>] <message>\n
//
// A trailing newline is added only when the message does not already end
// with one.
func appendRecord(dst []byte, now time.Time, tid int, level Level, callsite, target, msg string) []byte {
	dst = append(dst, '[')
	dst = appendEpoch(dst, now)
	dst = append(dst, ' ')
	dst = strconv.AppendInt(dst, int64(tid), 10)
	dst = append(dst, ' ')
	dst = append(dst, level.Tag()...)
	dst = append(dst, ' ')
	dst = append(dst, callsite...)
	dst = append(dst, ' ')
	dst = append(dst, target...)
	dst = append(dst, ']', ' ')
	dst = append(dst, msg...)
	if !strings.HasSuffix(msg, "\n") {
		dst = append(dst, '\n')
	}
	return dst
}

// appendEpoch renders the duration since the Unix epoch as seconds with a
// nanosecond fraction, trailing zeros trimmed: "1756500000.25s".
func appendEpoch(dst []byte, now time.Time) []byte {
	dst = strconv.AppendInt(dst, now.Unix(), 10)
	if ns := now.Nanosecond(); ns > 0 {
		var frac [9]byte
		for i := 8; i >= 0; i-- {
			frac[i] = byte('0' + ns%10)
			ns /= 10
		}
		n := 9
		for n > 0 && frac[n-1] == '0' {
			n--
		}
		dst = append(dst, '.')
		dst = append(dst, frac[:n]...)
	}
	return append(dst, 's')
}
