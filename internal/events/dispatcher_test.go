package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDispatcherInvokesSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var seen []string
	dispatcher.Subscribe(EventUserLoggedIn, func(_ context.Context, event Event) error {
		seen = append(seen, "first:"+event.ActorID)
		return nil
	})
	dispatcher.Subscribe(EventUserLoggedIn, func(_ context.Context, event Event) error {
		seen = append(seen, "second:"+event.ActorID)
		return nil
	})

	event := NewActivityEvent(EventUserLoggedIn, "user-1", "LOGIN", "User logged in", "127.0.0.1")
	require.NoError(t, dispatcher.Publish(context.Background(), event))
	require.Equal(t, []string{"first:user-1", "second:user-1"}, seen)
	require.NotEmpty(t, event.ID)
}

func TestDispatcherContinuesPastFailingHandler(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var called bool
	dispatcher.Subscribe(EventUserCreated, func(context.Context, Event) error {
		return errors.New("sink unavailable")
	})
	dispatcher.Subscribe(EventUserCreated, func(context.Context, Event) error {
		called = true
		return nil
	})

	event := NewActivityEvent(EventUserCreated, "admin-1", "USER_CREATE", "Created user x", "unknown")
	require.NoError(t, dispatcher.Publish(context.Background(), event))
	require.True(t, called)
}

func TestDispatcherIgnoresUnsubscribedTypes(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()
	event := NewActivityEvent(EventUserDeleted, "admin-1", "USER_DELETE", "Deleted user y", "unknown")
	require.NoError(t, dispatcher.Publish(context.Background(), event))
}
