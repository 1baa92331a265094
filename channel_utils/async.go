package channel_utils

import (
	"github.com/gulam-moin/interactive-voice-response/application/ports/outbound"
)

// Async runs fn on the dispatcher and delivers its result on the returned
// channel. If the dispatcher rejects the task, fn runs on the calling
// goroutine instead. A panic in fn is recovered and onPanic supplies the
// delivered value.
func Async[T any](dispatcher outbound.TaskDispatcher, fn func() T, onPanic func(recovered interface{}) T) <-chan T {
	out := make(chan T, 1)

	run := func() (result T) {
		defer func() {
			if p := recover(); p != nil {
				result = onPanic(p)
			}
		}()
		return fn()
	}

	if err := dispatcher.Submit(func() { out <- run() }); err != nil {
		out <- run()
	}

	return out
}
