package logger

import (
	"go.uber.org/zap"
)

// Log is the process-wide logger. It starts as a no-op so library code can
// log before (or without) Init being called, e.g. from tests.
var Log = zap.NewNop()

func Init(debug bool) error {
	var (
		l   *zap.Logger
		err error
	)
	if debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return err
	}
	Log = l
	return nil
}

func Sync() {
	_ = Log.Sync()
}
