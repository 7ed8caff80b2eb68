package handler

import (
	"bytes"
	"strconv"
	"strings"
)

// appendKeyValue renders " key=value" onto buf, quoting values that would
// otherwise be ambiguous on a single line.
func appendKeyValue(buf *bytes.Buffer, key, val string) {
	buf.WriteByte(' ')
	buf.WriteString(key)
	buf.WriteByte('=')
	if val == "" || strings.ContainsAny(val, " =\"\t\r\n") {
		buf.WriteString(strconv.Quote(val))
		return
	}
	buf.WriteString(val)
}
