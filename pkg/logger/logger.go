package logger

import (
	"fmt"
	"io"
	"os"
	"time"
)

// LogLevel represents different logging levels
type LogLevel int

const (
	LogLevelOff LogLevel = iota
	LogLevelError
	LogLevelWarn
	LogLevelInfo
	LogLevelDebug
	LogLevelTrace
)

// Component identifies an emulator subsystem for per-component log gating
type Component int

const (
	ComponentCPU Component = iota
	ComponentPPU
	ComponentAPU
	ComponentBus
	ComponentMapper
	componentCount
)

var componentNames = [componentCount]string{"CPU", "PPU", "APU", "BUS", "MAPPER"}

// component log levels: PPU tracing is very hot, so it only appears at trace
var componentLevels = [componentCount]LogLevel{
	LogLevelDebug, LogLevelTrace, LogLevelDebug, LogLevelDebug, LogLevelDebug,
}

// Logger handles all logging for the emulator
type Logger struct {
	level   LogLevel
	writer  io.Writer
	enabled [componentCount]bool
}

var globalLogger *Logger

// Initialize sets up the global logger
func Initialize(level LogLevel, filename string) error {
	var writer io.Writer = os.Stdout

	if filename != "" {
		file, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to create log file: %w", err)
		}
		writer = file
	}

	globalLogger = &Logger{
		level:  level,
		writer: writer,
	}

	return nil
}

// SetComponentLogging enables or disables logging for one subsystem
func SetComponentLogging(c Component, enabled bool) {
	if globalLogger != nil && c >= 0 && c < componentCount {
		globalLogger.enabled[c] = enabled
	}
}

func logComponent(c Component, format string, args ...interface{}) {
	if globalLogger == nil || !globalLogger.enabled[c] || globalLogger.level < componentLevels[c] {
		return
	}
	timestamp := time.Now().Format("15:04:05.000")
	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(globalLogger.writer, "[%s] %s: %s\n", timestamp, componentNames[c], message)
}

// LogCPU logs CPU instruction execution
func LogCPU(format string, args ...interface{}) {
	logComponent(ComponentCPU, format, args...)
}

// LogPPU logs PPU operations
func LogPPU(format string, args ...interface{}) {
	logComponent(ComponentPPU, format, args...)
}

// LogAPU logs APU register traffic
func LogAPU(format string, args ...interface{}) {
	logComponent(ComponentAPU, format, args...)
}

// LogBus logs interconnect decode and DMA activity
func LogBus(format string, args ...interface{}) {
	logComponent(ComponentBus, format, args...)
}

// LogMapper logs mapper bank switching
func LogMapper(format string, args ...interface{}) {
	logComponent(ComponentMapper, format, args...)
}

// LogInfo logs general information
func LogInfo(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.level >= LogLevelInfo {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		fmt.Fprintf(globalLogger.writer, "[%s] INFO: %s\n", timestamp, message)
	}
}

// LogError logs errors
func LogError(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.level >= LogLevelError {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		fmt.Fprintf(globalLogger.writer, "[%s] ERROR: %s\n", timestamp, message)
	}
}

// LogDebug logs debug information
func LogDebug(format string, args ...interface{}) {
	if globalLogger != nil && globalLogger.level >= LogLevelDebug {
		timestamp := time.Now().Format("15:04:05.000")
		message := fmt.Sprintf(format, args...)
		fmt.Fprintf(globalLogger.writer, "[%s] DEBUG: %s\n", timestamp, message)
	}
}

// GetLogLevelFromString converts string to LogLevel
func GetLogLevelFromString(level string) LogLevel {
	switch level {
	case "off":
		return LogLevelOff
	case "error":
		return LogLevelError
	case "warn":
		return LogLevelWarn
	case "info":
		return LogLevelInfo
	case "debug":
		return LogLevelDebug
	case "trace":
		return LogLevelTrace
	default:
		return LogLevelInfo
	}
}

// Close closes the logger and any associated files
func Close() {
	if globalLogger != nil {
		if file, ok := globalLogger.writer.(*os.File); ok && file != os.Stdout && file != os.Stderr {
			file.Close()
		}
	}
}
