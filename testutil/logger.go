package testutil

import (
	"flag"
	"io"
	"os"

	log "github.com/sirupsen/logrus"
)

var (
	logFile   = ""
	logLevel  = "info"
	logStderr = false
)

func init() {
	flag.StringVar(&logFile, "log-file", logFile, "`file` to use for logging")
	flag.StringVar(&logLevel, "log-level", logLevel,
		"log level: trace, debug, info, warn, error, fatal, or panic")
	flag.BoolVar(&logStderr, "log-stderr", logStderr, "log to standard error")
}

// SetupLogger directs test logging to file, or wherever the -log-file and
// -log-stderr flags point. The returned writer, if any, stays open for the
// life of the test binary; the caller may close it after m.Run.
func SetupLogger(file string) io.WriteCloser {
	log.SetFormatter(&log.TextFormatter{
		DisableLevelTruncation: true,
	})

	var w io.WriteCloser
	if !logStderr {
		if logFile != "" {
			file = logFile
		}

		var err error
		w, err = os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0666)
		if err != nil {
			panic(err)
		}
		log.SetOutput(w)
	}

	ll, err := log.ParseLevel(logLevel)
	if err != nil {
		panic(err)
	}
	log.SetLevel(ll)

	log.WithField("pid", os.Getpid()).Info("tests starting")
	return w
}
