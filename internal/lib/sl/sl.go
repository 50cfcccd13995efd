package sl

import (
	"log/slog"
	"strings"
)

func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}
	return slog.String("error", err.Error())
}

func Module(name string) slog.Attr {
	return slog.String("module", name)
}

// Secret logs only the edges of a sensitive value.
func Secret(key, value string) slog.Attr {
	if len(value) < 8 {
		return slog.String(key, strings.Repeat("*", len(value)))
	}
	return slog.String(key, value[:2]+"*****"+value[len(value)-2:])
}
