package logging

import (
	"os"

	"github.com/sirupsen/logrus"
)

// Setup configures the global logger. Unknown levels fall back to info.
func Setup(level string) {
	logrus.SetOutput(os.Stdout)
	parsedLvl, err := logrus.ParseLevel(level)
	if err != nil {
		logrus.SetLevel(logrus.InfoLevel)
		logrus.WithField("level", level).Warn("Unknown log level, using info")
		return
	}
	logrus.SetLevel(parsedLvl)
}
