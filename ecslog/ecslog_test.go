package ecslog_test

import (
	"testing"

	"github.com/kestrelnet/ecscore/ecslog"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestNopLoggerNeverPanics(t *testing.T) {
	l := ecslog.Nop()
	require.NotPanics(t, func() {
		l.ComponentRegistered("position", "Standard")
		l.CapacityGrown("entity_store", 16, 32)
		l.EntityDestroyed(7, 2)
	})
}

func TestNilLoggerNeverPanics(t *testing.T) {
	var l *ecslog.Logger
	require.NotPanics(t, func() {
		l.ComponentRegistered("position", "Standard")
		l.CapacityGrown("entity_store", 16, 32)
		l.EntityDestroyed(7, 2)
	})
}

func TestLoggerEmitsDebugEntries(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := ecslog.New(zap.New(core))

	l.ComponentRegistered("position", "Standard")
	l.CapacityGrown("entity_store", 16, 32)
	l.EntityDestroyed(7, 2)

	entries := logs.All()
	require.Len(t, entries, 3)
	require.Equal(t, "component registered", entries[0].Message)
	require.Equal(t, "capacity grown", entries[1].Message)
	require.Equal(t, "entity destroyed", entries[2].Message)
}
