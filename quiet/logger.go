package quiet

import "code.cloudfoundry.org/lager"

type nullLogger struct{}

// NewLogger returns a lager.Logger that discards everything. Used on
// code paths that want scanner plumbing without any log output.
func NewLogger() lager.Logger {
	return &nullLogger{}
}

func (l *nullLogger) RegisterSink(lager.Sink)                              {}
func (l *nullLogger) Session(task string, data ...lager.Data) lager.Logger { return l }
func (l *nullLogger) SessionName() string                                  { return "" }
func (l *nullLogger) Debug(action string, data ...lager.Data)              {}
func (l *nullLogger) Info(action string, data ...lager.Data)               {}
func (l *nullLogger) Error(action string, err error, data ...lager.Data)   {}
func (l *nullLogger) Fatal(action string, err error, data ...lager.Data)   {}
func (l *nullLogger) WithData(lager.Data) lager.Logger                     { return l }
