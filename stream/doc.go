// Package stream provides a minimal push-based asynchronous sequence.
//
// An Observable is cold: each Subscribe runs the producer function on its own
// goroutine and delivers elements to the observer callbacks. A subscription
// terminates in exactly one of three ways: completion, a single error, or
// consumer cancellation via Unsubscribe (which is silent — no further signal
// is delivered once the consumer has declared disinterest).
//
// Producers cooperate with cancellation by polling Subscriber.IsUnsubscribed
// before each emission and by registering cleanup with OnUnsubscribe for
// blocking work that must be interrupted.
//
//	obs := stream.Create(func(s *stream.Subscriber[string]) {
//	    for _, line := range lines {
//	        if s.IsUnsubscribed() {
//	            return
//	        }
//	        s.OnNext(line)
//	    }
//	    s.OnCompleted()
//	})
//
// Channel (Chan) and pull (Iter) adapters are provided for consumers that
// prefer ranging over a channel or iterating explicitly.
package stream
