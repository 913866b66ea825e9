// Package ecslog wraps zap for the diagnostic logging the Registry emits
// on store registration, capacity growth, and entity destruction. It is
// purely observational: a nil *Logger makes every call a no-op, so the
// core never behaves differently depending on whether logging is wired
// up, mirroring rdtc8822's internal/net packages taking a *zap.Logger as
// a plain constructor argument rather than reaching for a package-global.
package ecslog

import "go.uber.org/zap"

// Logger is the narrow logging surface the ecscore Registry uses.
type Logger struct {
	z *zap.Logger
}

// New wraps a *zap.Logger. A nil z is valid and yields a Logger whose
// methods are no-ops.
func New(z *zap.Logger) *Logger {
	return &Logger{z: z}
}

// Nop returns a Logger whose methods never emit anything.
func Nop() *Logger { return &Logger{} }

// ComponentRegistered logs first registration of a component type.
func (l *Logger) ComponentRegistered(typeName string, kind string) {
	if l == nil || l.z == nil {
		return
	}
	l.z.Debug("component registered", zap.String("type", typeName), zap.String("kind", kind))
}

// CapacityGrown logs a store's capacity doubling.
func (l *Logger) CapacityGrown(store string, oldCap, newCap int) {
	if l == nil || l.z == nil {
		return
	}
	l.z.Debug("capacity grown", zap.String("store", store), zap.Int("old_cap", oldCap), zap.Int("new_cap", newCap))
}

// EntityDestroyed logs an entity's destruction and how many stores it was
// purged from.
func (l *Logger) EntityDestroyed(entity uint64, storesPurged int) {
	if l == nil || l.z == nil {
		return
	}
	l.z.Debug("entity destroyed", zap.Uint64("entity", entity), zap.Int("stores_purged", storesPurged))
}
