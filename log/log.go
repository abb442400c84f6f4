package log

import (
	"io"
	"log"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

var logFile *lumberjack.Logger

// Setup sends log output to a rotating file, or to stderr if debugMode is set.
func Setup(logFilePath string, debugMode bool) {
	Close()
	if debugMode {
		log.SetOutput(os.Stderr)
		return
	}

	logFile = &lumberjack.Logger{
		Filename:   logFilePath,
		MaxBackups: 3,
		MaxAge:     28, //days
	}
	log.SetOutput(logFile)
}

// Close releases the log file opened by Setup. Output falls back to stderr.
func Close() error {
	if logFile == nil {
		return nil
	}
	log.SetOutput(os.Stderr)
	err := logFile.Close()
	logFile = nil
	return err
}

func SetOutput(w io.Writer) {
	log.SetOutput(w)
}

func Println(v ...interface{}) {
	log.Println(v...)
}

func Printf(format string, v ...interface{}) {
	log.Printf(format, v...)
}

func Fatal(v ...interface{}) {
	log.Fatal(v...)
}
