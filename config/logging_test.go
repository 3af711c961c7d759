package config

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestConfigureLogging(t *testing.T) {
	defer func() {
		logrus.SetFormatter(&logrus.TextFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
	}()

	ConfigureLogging(&Config{Environment: Production, LogLevel: "warn"})
	assert.IsType(t, &logrus.JSONFormatter{}, logrus.StandardLogger().Formatter)
	assert.Equal(t, logrus.WarnLevel, logrus.GetLevel())

	ConfigureLogging(&Config{Environment: Development, LogLevel: "debug"})
	assert.IsType(t, &logrus.TextFormatter{}, logrus.StandardLogger().Formatter)
	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	ConfigureLogging(&Config{Environment: Test, LogLevel: "loud"})
	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
