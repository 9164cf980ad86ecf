package logger

import (
	"fmt"
)

type stdOut struct {
	minLevel Level
	print    func(msg string)
}

var _ Logger = &stdOut{}

// NewStdOut returns a Logger printing every message at minLevel or above.
func NewStdOut(minLevel Level) Logger {
	return &stdOut{
		minLevel: minLevel,
		print: func(msg string) {
			fmt.Println(msg)
		},
	}
}

func (p *stdOut) Debugf(format string, args ...any) {
	p.log(LevelDebug, format, args...)
}

func (p *stdOut) Infof(format string, args ...any) {
	p.log(LevelInfo, format, args...)
}

func (p *stdOut) Warnf(format string, args ...any) {
	p.log(LevelWarn, format, args...)
}

func (p *stdOut) Errorf(format string, args ...any) {
	p.log(LevelError, format, args...)
}

func (p *stdOut) log(level Level, format string, args ...any) {
	if level < p.minLevel {
		return
	}
	p.print(fmt.Sprintf("[%s] inaturalist: "+format, append([]any{level}, args...)...))
}
