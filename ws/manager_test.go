package ws

import (
	"errors"
	"testing"
)

type fakeConn struct {
	messages [][]byte
	writeErr error
	closed   bool
}

func (f *fakeConn) WriteMessage(messageType int, data []byte) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.messages = append(f.messages, data)
	return nil
}

func (f *fakeConn) Close() error {
	f.closed = true
	return nil
}

func TestBroadcastReachesEveryClient(t *testing.T) {
	m := NewManager()
	a := &fakeConn{}
	b := &fakeConn{}
	m.Register("a", a)
	m.Register("b", b)

	m.Broadcast([]byte(`{"tipo":"posicion"}`))

	if len(a.messages) != 1 || len(b.messages) != 1 {
		t.Fatalf("messages a=%d b=%d, want 1 each", len(a.messages), len(b.messages))
	}
}

func TestBroadcastDropsFailingClients(t *testing.T) {
	m := NewManager()
	healthy := &fakeConn{}
	broken := &fakeConn{writeErr: errors.New("connection reset")}
	m.Register("healthy", healthy)
	m.Register("broken", broken)

	m.Broadcast([]byte("hola"))

	if m.Count() != 1 {
		t.Fatalf("count = %d, want 1 after dropping the broken client", m.Count())
	}
	if !broken.closed {
		t.Fatal("broken connection should be closed on drop")
	}

	m.Broadcast([]byte("hola"))
	if len(healthy.messages) != 2 {
		t.Fatalf("healthy client got %d messages, want 2", len(healthy.messages))
	}
}

func TestRegisterReplacesExistingConnection(t *testing.T) {
	m := NewManager()
	first := &fakeConn{}
	second := &fakeConn{}
	m.Register("cliente", first)
	m.Register("cliente", second)

	if m.Count() != 1 {
		t.Fatalf("count = %d, want 1", m.Count())
	}
	if !first.closed {
		t.Fatal("replaced connection should be closed")
	}

	m.Broadcast([]byte("hola"))
	if len(first.messages) != 0 || len(second.messages) != 1 {
		t.Fatal("broadcast should only reach the replacement connection")
	}
}

func TestUnregisterClosesAndRemoves(t *testing.T) {
	m := NewManager()
	conn := &fakeConn{}
	m.Register("cliente", conn)
	m.Unregister("cliente")

	if m.Count() != 0 {
		t.Fatalf("count = %d, want 0", m.Count())
	}
	if !conn.closed {
		t.Fatal("unregistered connection should be closed")
	}

	m.Unregister("cliente")
}
