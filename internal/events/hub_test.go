package events

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHubFanOut(t *testing.T) {
	hub := NewHub(nil)

	ch1, unsub1 := hub.Subscribe(1)
	ch2, unsub2 := hub.Subscribe(1)
	other, unsubOther := hub.Subscribe(2)
	defer unsub1()
	defer unsub2()
	defer unsubOther()

	hub.Broadcast(1, Event{Type: TypeStepAttached})

	ev1 := <-ch1
	ev2 := <-ch2
	assert.Equal(t, TypeStepAttached, ev1.Type)
	assert.Equal(t, TypeStepAttached, ev2.Type)

	select {
	case ev := <-other:
		t.Fatalf("subscriber of another project received %v", ev)
	default:
	}
}

func TestHubAssignsSequentialIDs(t *testing.T) {
	hub := NewHub(nil)

	ch, unsub := hub.Subscribe(7)
	defer unsub()

	hub.Broadcast(7, Event{Type: TypeStepAttached})
	hub.Broadcast(7, Event{Type: TypeStepMoved})
	hub.Broadcast(7, Event{Type: TypeStepDetached})

	assert.EqualValues(t, 0, (<-ch).ID)
	assert.EqualValues(t, 1, (<-ch).ID)
	assert.EqualValues(t, 2, (<-ch).ID)
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub(nil)

	ch, unsub := hub.Subscribe(1)
	unsub()

	_, open := <-ch
	assert.False(t, open)

	// Broadcasting after the last unsubscribe must not panic.
	hub.Broadcast(1, Event{Type: TypeStepAttached})
}

func TestHubReplayWithoutRedis(t *testing.T) {
	hub := NewHub(nil)
	history, err := hub.ReplayFrom(1, 0)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestParseLastEventID(t *testing.T) {
	assert.EqualValues(t, 0, ParseLastEventID(""))
	assert.EqualValues(t, 42, ParseLastEventID("42"))
	assert.EqualValues(t, 0, ParseLastEventID("not-a-number"))
}
