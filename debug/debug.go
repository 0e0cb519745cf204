// Package debug provides the internal diagnostics used by the line
// editor. Logging and assertions are disabled unless the corresponding
// environment variables are set, so the editor never writes diagnostic
// output to a user's terminal by default.
package debug

import (
	"fmt"
	"io"
	"log"
	"os"
	"syscall"
)

const (
	// envEnableLog enables logging to a file in the working directory.
	envEnableLog = "READLINE_ENABLE_LOG"
	// envAssertPanic makes failed assertions panic instead of logging.
	envAssertPanic = "READLINE_ASSERT_PANIC"

	logFileName = "readline.log"
)

var (
	logfile      *os.File
	logger       *log.Logger
	enableAssert bool
)

func init() {
	loadAssertEnv()
	loadLoggerEnv()
}

func loadAssertEnv() {
	switch os.Getenv(envAssertPanic) {
	case "1", "true", "TRUE", "True":
		enableAssert = true
	}
}

func loadLoggerEnv() {
	switch os.Getenv(envEnableLog) {
	case "1", "true", "TRUE", "True":
		if f, err := os.OpenFile(logFileName, os.O_RDWR|os.O_APPEND|os.O_CREATE, 0o666); err == nil {
			logfile = f
			logger = log.New(f, "", log.Llongfile)
		}
	}
	if logger == nil {
		// Without an explicit log file all output is discarded.
		logger = log.New(io.Discard, "", log.LstdFlags)
	}
}

// Close closes the log file, if one was opened.
func Close() {
	if logfile != nil {
		_ = logfile.Close()
	}
}

// Log writes a message to the log file when logging is enabled.
func Log(msg string) {
	if logger != nil {
		_ = logger.Output(2, msg)
	}
}

// toString renders the lazy forms accepted by Assert into a message.
func toString(v any) string {
	switch t := v.(type) {
	case func() string:
		return t()
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("unexpected type, %T, %v", v, v)
	}
}

// Assert checks the condition and, when it fails, panics if assertions
// are enabled or writes the messages to stderr otherwise.
func Assert(cond bool, msgs ...any) {
	if cond {
		return
	}
	for _, msg := range msgs {
		s := toString(msg)
		if enableAssert {
			panic(s)
		}
		writeWithSync(syscall.Stderr, s+"\n")
	}
	if len(msgs) == 0 && enableAssert {
		panic("assertion failed")
	}
}

// AssertNoError is Assert specialized for error values.
func AssertNoError(err error) {
	if err == nil {
		return
	}
	if enableAssert {
		panic(err)
	}
	writeWithSync(syscall.Stderr, err.Error()+"\n")
}

// writeWithSync writes directly to the given descriptor, bypassing any
// buffering, so diagnostics survive a terminal left in raw mode.
func writeWithSync(fd int, msg string) {
	_, _ = syscall.Write(fd, []byte(msg))
	_ = syscall.Fsync(fd)
}
