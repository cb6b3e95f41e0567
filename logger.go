package swagview

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
)

type Logger interface {
	Debug(format string, a ...any)
	Info(format string, a ...any)
	Warning(format string, a ...any)
	Error(format string, a ...any)
	Fatal(format string, a ...any)
}

type defaultLogger struct {
	out io.Writer
}

func newDefaultLogger() *defaultLogger {
	return &defaultLogger{out: os.Stdout}
}

func (d *defaultLogger) print(level string, levelLen int, format string, a ...any) {
	_, _ = fmt.Fprintf(d.out, spanFill(level, levelLen, 10)+" ["+timeFormat(time.Now())+"] "+format+"\n", a...)
}

func (d *defaultLogger) Debug(format string, a ...any) {
	d.print(colorDebug("DEBUG"), 5, format, a...)
}

func (d *defaultLogger) Info(format string, a ...any) {
	d.print(colorInfo("INFO"), 4, format, a...)
}

func (d *defaultLogger) Warning(format string, a ...any) {
	d.print(colorWarning("WARNING"), 7, format, a...)
}

func (d *defaultLogger) Error(format string, a ...any) {
	d.print(colorError("ERROR"), 5, format, a...)
}

func (d *defaultLogger) Fatal(format string, a ...any) {
	d.print(colorFatal("FATAL"), 5, format, a...)
}

type levelHandleLogger struct {
	log   Logger
	level LogLevel
}

func (d *levelHandleLogger) Debug(format string, a ...any) {
	if d.level&LogDebug == 0 {
		return
	}
	d.log.Debug(format, a...)
}

func (d *levelHandleLogger) Info(format string, a ...any) {
	if d.level&LogInfo == 0 {
		return
	}
	d.log.Info(format, a...)
}

func (d *levelHandleLogger) Warning(format string, a ...any) {
	if d.level&LogWarning == 0 {
		return
	}
	d.log.Warning(format, a...)
}

func (d *levelHandleLogger) Error(format string, a ...any) {
	if d.level&LogError == 0 {
		return
	}
	d.log.Error(format, a...)
}

func (d *levelHandleLogger) Fatal(format string, a ...any) {
	if d.level&LogFail == 0 {
		return
	}
	d.log.Fatal(format, a...)
}

var colorInfo = color.New(color.FgGreen).SprintFunc()
var colorDebug = color.New(color.FgCyan).SprintFunc()
var colorWarning = color.New(color.FgHiYellow).SprintFunc()
var colorError = color.New(color.FgRed).SprintFunc()
var colorFatal = color.New(color.BgRed, color.FgWhite).SprintFunc()
