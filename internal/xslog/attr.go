package xslog

import (
	"log/slog"
	"time"

	"github.com/garrettladley/tock/internal/version"
)

const (
	keyError = "error"
)

func Error(err error) slog.Attr {
	return slog.String(keyError, err.Error())
}

func Duration(duration time.Duration) slog.Attr {
	const durationKey = "duration"
	return slog.Duration(durationKey, duration)
}

func Version() slog.Attr {
	const versionKey = "version"
	return slog.String(versionKey, version.Get())
}

func SessionID(id string) slog.Attr {
	const sessionIDKey = "session_id"
	return slog.String(sessionIDKey, id)
}

func Mode(mode string) slog.Attr {
	const modeKey = "mode"
	return slog.String(modeKey, mode)
}

func Timezone(tz string) slog.Attr {
	const timezoneKey = "timezone"
	return slog.String(timezoneKey, tz)
}

func Seconds(s uint64) slog.Attr {
	const secondsKey = "seconds"
	return slog.Uint64(secondsKey, s)
}

func Frame(text string) slog.Attr {
	const frameKey = "frame"
	return slog.String(frameKey, text)
}

func Color(hex string) slog.Attr {
	const colorKey = "color"
	return slog.String(colorKey, hex)
}

func Policy(policy string) slog.Attr {
	const policyKey = "policy"
	return slog.String(policyKey, policy)
}

func Start(t time.Time) slog.Attr {
	const startKey = "start"
	return slog.Time(startKey, t)
}

func Count(count int) slog.Attr {
	const countKey = "count"
	return slog.Int(countKey, count)
}

func Input(input string) slog.Attr {
	const inputKey = "input"
	return slog.String(inputKey, input)
}

func Code(code string) slog.Attr {
	const codeKey = "code"
	return slog.String(codeKey, code)
}
