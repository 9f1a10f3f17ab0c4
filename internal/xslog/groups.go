package xslog

import (
	"fmt"
	"log/slog"
	"runtime"
)

const (
	groupError   = "error"
	groupRuntime = "runtime"
)

const (
	keyMessage = "message"
	keyType    = "type"
	keyGOOS    = "goos"
	keyGOARCH  = "goarch"
	keyGo      = "go"
)

func ErrorGroup(err error) slog.Attr {
	if err == nil {
		return slog.Group(groupError)
	}
	return slog.Group(groupError,
		slog.String(keyMessage, err.Error()),
		slog.String(keyType, fmt.Sprintf("%T", err)),
	)
}

func RuntimeGroup() slog.Attr {
	return slog.Group(groupRuntime,
		slog.String(keyGOOS, runtime.GOOS),
		slog.String(keyGOARCH, runtime.GOARCH),
		slog.String(keyGo, runtime.Version()),
	)
}
