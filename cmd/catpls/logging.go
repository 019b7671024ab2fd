package main

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
)

func newLogger(w io.Writer, level, format string) (*logrus.Entry, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	log := logrus.New()
	log.SetOutput(w)
	log.SetLevel(lvl)

	switch format {
	case "text":
		log.SetFormatter(&logrus.TextFormatter{DisableColors: true})
	case "json":
		log.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("unknown log format %q, want text or json", format)
	}

	return logrus.NewEntry(log).WithField("app", "catpls"), nil
}
