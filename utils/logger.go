package utils

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"time"
)

type LogLevel int

const (
	LogLevelError = LogLevel(1 << iota)
	LogLevelInfo
	LogLevelNotice
	LogLevelDebug
)

var GlobalLogLevel = LogLevelError | LogLevelInfo

var logOutput io.Writer = os.Stderr

func Errorf(prefix, format string, v ...any) {
	if GlobalLogLevel&LogLevelError == 0 {
		return
	}
	_println(fmt.Appendf(innerPrint(nil, prefix, "ERROR"), format, v...))
}

func Noticef(prefix, format string, v ...any) {
	if GlobalLogLevel&LogLevelNotice == 0 {
		return
	}
	_println(fmt.Appendf(innerPrint(nil, prefix, "NOTICE"), format, v...))
}

func IsLogLevelDebug() bool {
	return GlobalLogLevel&LogLevelDebug > 0
}

func Debugf(prefix, format string, v ...any) {
	if GlobalLogLevel&LogLevelDebug == 0 {
		return
	}
	_println(fmt.Appendf(innerPrint(nil, prefix, "DEBUG"), format, v...))
}

func _println(buf []byte) {
	buf = bytes.TrimSpace(buf)
	buf = append(buf, '\n')

	_, _ = logOutput.Write(buf)
}

func innerPrint(buf []byte, prefix, class string) []byte {
	buf = time.Now().UTC().AppendFormat(buf, "2006-01-02 15:04:05.000")
	if prefix != "" {
		buf = fmt.Appendf(buf, " [%s] %s ", prefix, class)
	} else {
		buf = fmt.Appendf(buf, " %s ", class)
	}
	return buf
}
