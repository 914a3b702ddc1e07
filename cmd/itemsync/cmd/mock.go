package cmd

import (
	"github.com/rs/zerolog"

	"github.com/arcscanner/itemsync"
)

// Mock provides a mock implementation of Application for testing.
// Each method can be customized by setting the corresponding function field.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	LoggerFunc  func() *zerolog.Logger
	ClientFunc  func(opts ...itemsync.Option) (itemsync.Itemsync, error)
	VersionFunc func() string
	CommitFunc  func() string
	DateFunc    func() string
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// Client returns a client using the mock function or nil.
func (m *Mock) Client(opts ...itemsync.Option) (itemsync.Itemsync, error) {
	if m.ClientFunc != nil {
		return m.ClientFunc(opts...)
	}
	return nil, nil
}

// Version returns the mock version or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Commit returns the mock commit or "unknown".
func (m *Mock) Commit() string {
	if m.CommitFunc != nil {
		return m.CommitFunc()
	}
	return "unknown"
}

// Date returns the mock date or "unknown".
func (m *Mock) Date() string {
	if m.DateFunc != nil {
		return m.DateFunc()
	}
	return "unknown"
}
