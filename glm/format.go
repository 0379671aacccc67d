package glm

import (
	"fmt"
	"log/slog"
	"strings"
)

func format[V storage[T], T Scalar](v V) string {
	var sb strings.Builder

	sb.WriteByte('(')
	for i := 0; i < len(v); i++ {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(fmt.Sprint(v[i]))
	}
	sb.WriteByte(')')

	return sb.String()
}

// logValue renders v as an slog group keyed by axis name, e.g. x=1 y=2.
func logValue[V storage[T], T Scalar](v V) slog.Value {
	attrs := make([]slog.Attr, len(v))
	for i := 0; i < len(v); i++ {
		attrs[i] = slog.Any(Axis(i).String(), v[i])
	}

	return slog.GroupValue(attrs...)
}
