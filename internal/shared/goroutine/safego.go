// Package goroutine launches background work that must not crash the process.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"campus/internal/shared/logger"
)

// Run starts fn in a goroutine and delivers its result on the returned
// channel. A panic is logged with its stack and reported as an error.
func Run(log logger.Interface, name string, fn func() error) <-chan error {
	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
				done <- fmt.Errorf("%s panicked: %v", name, r)
			}
			close(done)
		}()
		done <- fn()
	}()
	return done
}
