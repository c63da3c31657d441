package common

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGenericSubscriberPublish(t *testing.T) {
	sut := NewGenericSubscriberImpl[int](3)
	ch1 := sut.Subscribe("one")
	ch2 := sut.Subscribe("two")
	require.ElementsMatch(t, []string{"one", "two"}, sut.Subscribers())

	sut.Publish(1)
	sut.Publish(2)

	require.Equal(t, 1, <-ch1)
	require.Equal(t, 2, <-ch1)
	require.Equal(t, 1, <-ch2)
	require.Equal(t, 2, <-ch2)
}

func TestGenericSubscriberNoSubscribers(t *testing.T) {
	sut := NewGenericSubscriberImpl[string](0)
	sut.Publish("nobody listens")
	require.Empty(t, sut.Subscribers())
}

func TestGenericSubscriberPublishWithContext(t *testing.T) {
	sut := NewGenericSubscriberImpl[int](1)
	ch := sut.Subscribe("slow")
	require.NoError(t, sut.PublishWithContext(context.Background(), 1))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	require.ErrorIs(t, sut.PublishWithContext(ctx, 2), context.Canceled)
	require.Equal(t, 1, <-ch)
}
