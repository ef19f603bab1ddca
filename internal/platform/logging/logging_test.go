package logging

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"
)

func TestSetup(t *testing.T) {
	defer logrus.SetLevel(logrus.InfoLevel)

	Setup("debug")
	require.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	hook := test.NewGlobal()
	defer hook.Reset()

	Setup("loud")
	require.Equal(t, logrus.InfoLevel, logrus.GetLevel())
	require.NotNil(t, hook.LastEntry())
	require.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}
