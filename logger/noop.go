package logger

// Noop discards everything. It is the default logger.
type Noop struct {
}

var _ Logger = &Noop{}

func (n Noop) Debugf(_ string, _ ...any) {
}

func (n Noop) Infof(_ string, _ ...any) {
}

func (n Noop) Warnf(_ string, _ ...any) {
}

func (n Noop) Errorf(_ string, _ ...any) {
}
