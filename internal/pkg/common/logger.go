package common

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger グローバルロガー。InitLogger 前は何も出力しない
	Logger  = zap.NewNop()
	LogMode string

	// レベルごとの表示色
	levelColors = map[zapcore.Level]string{
		zapcore.DebugLevel: "\033[36m", // シアン
		zapcore.InfoLevel:  "\033[32m", // 緑
		zapcore.WarnLevel:  "\033[33m", // 黄
		zapcore.ErrorLevel: "\033[31m", // 赤
		zapcore.FatalLevel: "\033[35m", // 紫
	}
	resetColor = "\033[0m"
)

func getEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "",
		CallerKey:      "",
		MessageKey:     "msg",
		StacktraceKey:  "",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    customLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   nil,
	}
}

// ミリ秒付きの時刻表示
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05.000"))
}

// レベルを 3 文字に揃えて色を付ける
func customLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	color := levelColors[l]
	level := l.String()
	switch l {
	case zapcore.DebugLevel:
		level = "DBG"
	case zapcore.InfoLevel:
		level = "INF"
	case zapcore.WarnLevel:
		level = "WRN"
	case zapcore.ErrorLevel:
		level = "ERR"
	case zapcore.FatalLevel:
		level = "FAT"
	}
	enc.AppendString(color + level + resetColor)
}

// InitLogger ログシステムを初期化する
// コンソールへはカラー付き、logs/app.log へは JSON で二重出力する
func InitLogger(logLevel string) error {
	var level zapcore.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	case "fatal":
		level = zapcore.FatalLevel
	default:
		level = zapcore.InfoLevel
	}

	// LOG_MODE は .env 読み込み後に参照する
	LogMode = os.Getenv("LOG_MODE")

	if err := os.MkdirAll("logs", 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile("logs/app.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	fileWriter := zapcore.AddSync(logFile)
	consoleWriter := zapcore.AddSync(os.Stdout)

	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(getEncoderConfig()),
		fileWriter,
		level,
	)
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(getEncoderConfig()),
		consoleWriter,
		level,
	)

	core := zapcore.NewTee(fileCore, consoleCore)

	Logger = zap.New(core,
		zap.AddCallerSkip(1),
		zap.Fields(
			zap.String("service", "fridge-planner"),
		),
	)

	zap.ReplaceGlobals(Logger)

	return nil
}

// 画像データを含むフィールドはログに出さない
func filterImageFields(fields []zap.Field) []zap.Field {
	filtered := make([]zap.Field, 0, len(fields))
	for _, field := range fields {
		if field.Key == "image" ||
			strings.Contains(field.Key, "image_data") ||
			strings.Contains(field.Key, "base64") {
			continue
		}
		filtered = append(filtered, field)
	}
	return filtered
}

// concise モードでも出力を許可するメッセージ
func conciseAllowed(msg string) bool {
	switch msg {
	case "リクエスト完了", "アプリケーション起動", "Server exited", "Shutting down server...":
		return true
	}
	return false
}

// LogInfo 情報ログ
func LogInfo(msg string, fields ...zap.Field) {
	if LogMode == "concise" && !conciseAllowed(msg) {
		return
	}
	Logger.Info(msg, filterImageFields(fields)...)
}

// LogError エラーログ
func LogError(msg string, fields ...zap.Field) {
	Logger.Error(msg, filterImageFields(fields)...)
}

// LogWarn 警告ログ
func LogWarn(msg string, fields ...zap.Field) {
	Logger.Warn(msg, filterImageFields(fields)...)
}

// LogDebug デバッグログ
func LogDebug(msg string, fields ...zap.Field) {
	Logger.Debug(msg, filterImageFields(fields)...)
}

// LogFatal 致命的エラーログ
func LogFatal(msg string, fields ...zap.Field) {
	Logger.Fatal(msg, fields...)
}

// Sync ログバッファをフラッシュする
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// LogCacheHit キャッシュ命中を記録する
func LogCacheHit(cacheType, key string) {
	LogInfo("キャッシュ命中", zap.String("type", cacheType))
}

// LogCacheMiss キャッシュ未命中を記録する
func LogCacheMiss(cacheType, key string) {
	LogInfo("キャッシュ未命中", zap.String("type", cacheType))
}

// LogAICall AI 呼び出しの結果を記録する
func LogAICall(prompt string, duration time.Duration, err error, requestID string) {
	if err != nil {
		LogError("AI リクエスト失敗",
			zap.Error(err),
			zap.Duration("duration", duration),
		)
		return
	}
	LogInfo("AI リクエスト成功",
		zap.Duration("duration", duration),
	)
}
