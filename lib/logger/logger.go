package logger

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Settings 描述日志输出位置与级别
type Settings struct {
	Path       string
	Name       string
	Ext        string
	Level      string
	MaxSizeMB  int
	MaxBackups int
}

var (
	mu    sync.RWMutex
	sugar *zap.SugaredLogger
	level = zap.NewAtomicLevelAt(zapcore.InfoLevel)

	// 当前的滚动文件，输出到 stderr 时为 nil
	rolling *lumberjack.Logger
)

func init() {
	sugar = newSugar(zapcore.Lock(os.Stderr))
}

func newSugar(ws zapcore.WriteSyncer) *zap.SugaredLogger {
	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.EncodeLevel = zapcore.CapitalLevelEncoder
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), ws, level)
	return zap.New(core, zap.AddCaller(), zap.AddCallerSkip(1)).Sugar()
}

// Setup 将日志切换到滚动文件；Path 为空时仍输出到 stderr
func Setup(settings *Settings) error {
	if settings == nil {
		return nil
	}
	SetLevel(settings.Level)
	if settings.Path == "" {
		return nil
	}
	if err := os.MkdirAll(settings.Path, 0o755); err != nil {
		return err
	}
	name, ext := settings.Name, settings.Ext
	if name == "" {
		name = "godis-dict"
	}
	if ext == "" {
		ext = "log"
	}
	maxSize := settings.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 64
	}
	w := &lumberjack.Logger{
		Filename:   filepath.Join(settings.Path, name+"."+ext),
		MaxSize:    maxSize,
		MaxBackups: settings.MaxBackups,
	}
	s := newSugar(zapcore.AddSync(w))
	mu.Lock()
	old, oldWriter := sugar, rolling
	sugar, rolling = s, w
	mu.Unlock()
	_ = old.Sync()
	if oldWriter != nil {
		return oldWriter.Close()
	}
	return nil
}

// Reset 关闭滚动文件并恢复输出到 stderr
func Reset() error {
	mu.Lock()
	old, oldWriter := sugar, rolling
	sugar, rolling = newSugar(zapcore.Lock(os.Stderr)), nil
	mu.Unlock()
	_ = old.Sync()
	if oldWriter != nil {
		return oldWriter.Close()
	}
	return nil
}

func writer() *lumberjack.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return rolling
}

// SetLevel 接受 debug/info/warn/error，无法识别时保持原级别
func SetLevel(l string) {
	if l == "" {
		return
	}
	var lv zapcore.Level
	if err := lv.UnmarshalText([]byte(l)); err != nil {
		return
	}
	level.SetLevel(lv)
}

func Enabled(l zapcore.Level) bool {
	return level.Enabled(l)
}

func get() *zap.SugaredLogger {
	mu.RLock()
	defer mu.RUnlock()
	return sugar
}

func Debug(v ...any) {
	get().Debug(v...)
}

func Debugf(format string, v ...any) {
	get().Debugf(format, v...)
}

func Info(v ...any) {
	get().Info(v...)
}

func Infof(format string, v ...any) {
	get().Infof(format, v...)
}

func Warn(v ...any) {
	get().Warn(v...)
}

func Warnf(format string, v ...any) {
	get().Warnf(format, v...)
}

func Error(v ...any) {
	get().Error(v...)
}

func Errorf(format string, v ...any) {
	get().Errorf(format, v...)
}

func Fatal(v ...any) {
	get().Fatal(v...)
}

func Sync() error {
	return get().Sync()
}
