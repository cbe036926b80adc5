// Package logging wires the process-wide logrus logger.
package logging

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

var root = logrus.New()

func init() {
	root.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05.000",
	})
	root.SetLevel(logrus.InfoLevel)
}

// GetLogger returns a logger tagged with the component name.
func GetLogger(name string) *logrus.Entry {
	return root.WithField("component", name)
}

func SetLogLevel(lvl logrus.Level) {
	root.SetLevel(lvl)
}

// SetLevelName parses names such as "debug" or "warn". Unknown names keep
// the current level and return the parse error.
func SetLevelName(name string) error {
	lvl, err := logrus.ParseLevel(strings.TrimSpace(name))
	if err != nil {
		return err
	}
	root.SetLevel(lvl)
	return nil
}

func DisableLogColor() {
	root.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: "2006/01/02 15:04:05.000",
		DisableColors:   true,
	})
}

// SetOutput redirects every logger. The terminal UI points this at a file so
// log lines do not tear the rendered frame.
func SetOutput(w io.Writer) {
	root.SetOutput(w)
}
