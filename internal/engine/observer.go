package engine

import "time"

// Observer receives a notification after each state-mutating engine
// operation. Implementations must be cheap: they run synchronously on
// the thread driving the calculator.
type Observer interface {
	ObserveOp(name string, took time.Duration, err error)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(name string, took time.Duration, err error)

// ObserveOp implements Observer.
func (f ObserverFunc) ObserveOp(name string, took time.Duration, err error) {
	f(name, took, err)
}
