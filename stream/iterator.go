package stream

import (
	"context"
	"errors"
)

// ErrEmptySequence is returned by BlockingFirst when the sequence completes
// without emitting any element.
var ErrEmptySequence = errors.New("stream: sequence completed without elements")

// Iterator provides pull-based sequential access to an Observable.
// Close must be called when done to release the underlying subscription.
type Iterator[T any] struct {
	ch  <-chan Item[T]
	sub *Subscription
}

// Iter subscribes and returns a pull iterator over the sequence.
func (o *Observable[T]) Iter() *Iterator[T] {
	ch := make(chan Item[T])
	sub := NewSubscription()

	send := func(item Item[T]) {
		select {
		case ch <- item:
		case <-sub.Unsubscribed():
		}
	}

	o.SubscribeWith(Observer[T]{
		OnNext:  func(v T) { send(Item[T]{Value: v}) },
		OnError: func(err error) { send(Item[T]{Err: err}) },
	}, sub)

	go func() {
		<-sub.Done()
		close(ch)
	}()

	return &Iterator[T]{ch: ch, sub: sub}
}

// Next returns the next element. It returns (zero, false, nil) when the
// sequence has completed, and (zero, false, err) when it errored or ctx was
// cancelled while waiting.
func (it *Iterator[T]) Next(ctx context.Context) (T, bool, error) {
	var zero T
	select {
	case item, ok := <-it.ch:
		if !ok {
			return zero, false, nil
		}
		if item.Err != nil {
			return zero, false, item.Err
		}
		return item.Value, true, nil
	case <-ctx.Done():
		return zero, false, ctx.Err()
	}
}

// Close unsubscribes from the underlying sequence.
func (it *Iterator[T]) Close() error {
	it.sub.Unsubscribe()
	return nil
}
