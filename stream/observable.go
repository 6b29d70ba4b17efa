package stream

import (
	"context"
	"sync"
)

// Observer is the consumer-supplied callback triple. Any callback may be nil.
type Observer[T any] struct {
	// OnNext receives each emitted element, in emission order.
	OnNext func(T)
	// OnCompleted is called once after the final element of a successful sequence.
	OnCompleted func()
	// OnError is called once with the terminal error of a failed sequence.
	OnError func(error)
}

// Observable is a cold push-based sequence of elements of type T.
type Observable[T any] struct {
	producer func(*Subscriber[T])
}

// Create builds an Observable from a producer function. The producer runs once
// per subscription, on its own goroutine, and must deliver at most one terminal
// signal through the subscriber.
func Create[T any](producer func(*Subscriber[T])) *Observable[T] {
	return &Observable[T]{producer: producer}
}

// Error returns an Observable that terminates immediately with err.
func Error[T any](err error) *Observable[T] {
	return Create(func(s *Subscriber[T]) {
		s.OnError(err)
	})
}

// Just returns an Observable that emits the given values and completes.
func Just[T any](values ...T) *Observable[T] {
	return Create(func(s *Subscriber[T]) {
		for _, v := range values {
			if s.IsUnsubscribed() {
				return
			}
			s.OnNext(v)
		}
		s.OnCompleted()
	})
}

// Subscribe starts the producer and returns the consumer's subscription handle.
func (o *Observable[T]) Subscribe(obs Observer[T]) *Subscription {
	sub := NewSubscription()
	o.SubscribeWith(obs, sub)
	return sub
}

// SubscribeWith starts the producer against a pre-built subscription. This
// allows the consumer to hold the subscription (and unsubscribe) before the
// producer has a chance to emit.
func (o *Observable[T]) SubscribeWith(obs Observer[T], sub *Subscription) {
	s := &Subscriber[T]{sub: sub, obs: obs}
	go func() {
		defer sub.markDone()
		o.producer(s)
	}()
}

// Subscriber is the producer-facing side of one subscription. It delivers
// signals to the observer while enforcing the terminal-signal contract:
// nothing is delivered after a terminal signal or after the consumer
// unsubscribed.
type Subscriber[T any] struct {
	sub *Subscription
	obs Observer[T]
	// terminated is touched only by the producer goroutine.
	terminated bool
}

// IsUnsubscribed reports whether the consumer has cancelled the sequence.
func (s *Subscriber[T]) IsUnsubscribed() bool {
	return s.sub.IsUnsubscribed()
}

// OnUnsubscribe registers fn to run when the consumer unsubscribes. If the
// subscription is already cancelled, fn runs immediately.
func (s *Subscriber[T]) OnUnsubscribe(fn func()) {
	s.sub.onUnsubscribe(fn)
}

// OnNext emits one element. It is a no-op after a terminal signal or cancellation.
func (s *Subscriber[T]) OnNext(v T) {
	if s.terminated || s.IsUnsubscribed() {
		return
	}
	if s.obs.OnNext != nil {
		s.obs.OnNext(v)
	}
}

// OnCompleted signals successful termination. At most one terminal signal is
// delivered; completion after cancellation is suppressed.
func (s *Subscriber[T]) OnCompleted() {
	if s.terminated || s.IsUnsubscribed() {
		return
	}
	s.terminated = true
	if s.obs.OnCompleted != nil {
		s.obs.OnCompleted()
	}
}

// OnError signals failed termination with err. At most one terminal signal is
// delivered; errors after cancellation are suppressed.
func (s *Subscriber[T]) OnError(err error) {
	if s.terminated || s.IsUnsubscribed() {
		return
	}
	s.terminated = true
	if s.obs.OnError != nil {
		s.obs.OnError(err)
	}
}

// Subscription is the consumer's handle on one in-flight sequence.
type Subscription struct {
	mu        sync.Mutex
	cancelled bool
	hooks     []func()
	unsub     chan struct{}
	done      chan struct{}
}

// NewSubscription creates a subscription for use with SubscribeWith.
func NewSubscription() *Subscription {
	return &Subscription{
		unsub: make(chan struct{}),
		done:  make(chan struct{}),
	}
}

// Unsubscribe signals that no further elements are wanted. It is idempotent.
// Registered hooks run once, on the first call.
func (s *Subscription) Unsubscribe() {
	s.mu.Lock()
	if s.cancelled {
		s.mu.Unlock()
		return
	}
	s.cancelled = true
	hooks := s.hooks
	s.hooks = nil
	close(s.unsub)
	s.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
}

// IsUnsubscribed reports whether Unsubscribe has been called.
func (s *Subscription) IsUnsubscribed() bool {
	select {
	case <-s.unsub:
		return true
	default:
		return false
	}
}

// Unsubscribed returns a channel closed when the consumer unsubscribes.
func (s *Subscription) Unsubscribed() <-chan struct{} {
	return s.unsub
}

// Done returns a channel closed when the producer has returned, whether the
// sequence completed, errored, or was cancelled.
func (s *Subscription) Done() <-chan struct{} {
	return s.done
}

func (s *Subscription) onUnsubscribe(fn func()) {
	s.mu.Lock()
	if s.cancelled {
		s.mu.Unlock()
		fn()
		return
	}
	s.hooks = append(s.hooks, fn)
	s.mu.Unlock()
}

func (s *Subscription) markDone() {
	close(s.done)
}

// Item carries either a value or an error through the channel adapter.
type Item[T any] struct {
	Value T
	Err   error
}

// Chan subscribes and delivers the sequence over a channel. The channel is
// closed on any terminal outcome. Errors arrive as the final item's Err field.
// Cancelling ctx unsubscribes and closes the channel.
func (o *Observable[T]) Chan(ctx context.Context) <-chan Item[T] {
	ch := make(chan Item[T])
	sub := NewSubscription()
	stop := context.AfterFunc(ctx, sub.Unsubscribe)

	send := func(item Item[T]) {
		select {
		case ch <- item:
		case <-sub.Unsubscribed():
		}
	}

	o.SubscribeWith(Observer[T]{
		OnNext:      func(v T) { send(Item[T]{Value: v}) },
		OnError:     func(err error) { send(Item[T]{Err: err}) },
		OnCompleted: func() {},
	}, sub)

	go func() {
		defer stop()
		<-sub.Done()
		close(ch)
	}()

	return ch
}

// BlockingSlice subscribes, waits for a terminal outcome, and returns all
// emitted elements. A ctx cancellation unsubscribes and returns ctx.Err()
// alongside the elements seen so far.
func (o *Observable[T]) BlockingSlice(ctx context.Context) ([]T, error) {
	var (
		out  []T
		rerr error
	)
	sub := NewSubscription()
	stop := context.AfterFunc(ctx, sub.Unsubscribe)
	defer stop()

	o.SubscribeWith(Observer[T]{
		OnNext:  func(v T) { out = append(out, v) },
		OnError: func(err error) { rerr = err },
	}, sub)

	<-sub.Done()
	if rerr != nil {
		return out, rerr
	}
	if sub.IsUnsubscribed() && ctx.Err() != nil {
		return out, ctx.Err()
	}
	return out, nil
}

// BlockingFirst subscribes, returns the first element, and unsubscribes.
func (o *Observable[T]) BlockingFirst(ctx context.Context) (T, error) {
	var zero T
	it := o.Iter()
	defer func() { _ = it.Close() }()

	v, ok, err := it.Next(ctx)
	if err != nil {
		return zero, err
	}
	if !ok {
		return zero, ErrEmptySequence
	}
	return v, nil
}
