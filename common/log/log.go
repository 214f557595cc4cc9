package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
)

var logger = newLogger(os.Stdout, "gomahjong")

func newLogger(w io.Writer, appName string) *log.Logger {
	// 用 stdout，IDE 控制台会把 stderr 全部标红
	l := log.New(w)
	l.SetPrefix(appName)
	l.SetReportTimestamp(true)
	l.SetTimeFormat(time.DateTime)
	l.SetReportCaller(true)
	l.SetCallerOffset(1)
	return l
}

// InitLog 初始化全局日志，level 为空时用 info
func InitLog(appName string, logLevel string) {
	logger = newLogger(os.Stdout, appName)
	SetLevel(logLevel)
}

// SetOutput 替换输出，测试和命令行渲染时用
func SetOutput(w io.Writer) {
	logger.SetOutput(w)
}

// SetLevel 配置热更新时也会调用
func SetLevel(logLevel string) {
	switch strings.ToLower(logLevel) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

func Fatal(format string, args ...any) {
	logger.Fatalf(format, args...)
}

func Info(format string, args ...any) {
	logger.Infof(format, args...)
}

func Warn(format string, args ...any) {
	logger.Warnf(format, args...)
}

func Error(format string, args ...any) {
	logger.Errorf(format, args...)
}

func Debug(format string, args ...any) {
	logger.Debugf(format, args...)
}
