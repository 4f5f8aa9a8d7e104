package session

import (
	"net"
	"testing"
	"time"

	"github.com/dshills/collabedit/internal/engine"
	"github.com/dshills/collabedit/internal/permissions"
	"github.com/dshills/collabedit/internal/protocol"
)

func newTestHost(t *testing.T, text string) (*Host, string) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("Listen: %v", err)
	}
	eng := engine.NewFromText("alice", text, 1000, nil)
	perms, _ := permissions.Load("")
	perms.Set("alice", permissions.Read|permissions.Write)
	perms.Set("bob", permissions.Read|permissions.Write)
	perms.Set("viewer", permissions.Read)
	h := NewHost(ln, eng, perms, nil)
	go func() { _ = h.Serve() }()
	return h, ln.Addr().String()
}

func recvWithin(t *testing.T, ch <-chan protocol.Message, d time.Duration) protocol.Message {
	t.Helper()
	select {
	case m := <-ch:
		return m
	case <-time.After(d):
		t.Fatal("timed out waiting for message")
		return protocol.Message{}
	}
}

func TestClientReceivesInitialUploads(t *testing.T) {
	h, addr := newTestHost(t, "hello")
	defer h.Close()

	c, err := Dial(addr, "bob")
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer c.Close()

	usersMsg := recvWithin(t, c.Incoming(), time.Second)
	if usersMsg.Op != protocol.OpUsersUpload {
		t.Fatalf("first message op = %s, want %s", usersMsg.Op, protocol.OpUsersUpload)
	}
	textMsg := recvWithin(t, c.Incoming(), time.Second)
	if textMsg.Op != protocol.OpTextUpload {
		t.Fatalf("second message op = %s, want %s", textMsg.Op, protocol.OpTextUpload)
	}
	if len(textMsg.Args) == 0 || textMsg.Args[0] != "hello" {
		t.Fatalf("text upload = %v, want [hello]", textMsg.Args)
	}
}

func TestUnknownUserRejected(t *testing.T) {
	h, addr := newTestHost(t, "")
	defer h.Close()

	c, err := Dial(addr, "ghost")
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	defer c.Close()

	msg := recvWithin(t, c.Incoming(), time.Second)
	if msg.Op != protocol.OpHostDisconnect {
		t.Fatalf("op = %s, want %s", msg.Op, protocol.OpHostDisconnect)
	}
}

func TestEditBroadcastsToOtherPeer(t *testing.T) {
	h, addr := newTestHost(t, "")
	defer h.Close()

	bob, err := Dial(addr, "bob")
	if err != nil {
		t.Fatalf("Dial bob: %v", err)
	}
	defer bob.Close()
	recvWithin(t, bob.Incoming(), time.Second) // -U
	recvWithin(t, bob.Incoming(), time.Second) // -T

	viewer, err := Dial(addr, "viewer")
	if err != nil {
		t.Fatalf("Dial viewer: %v", err)
	}
	defer viewer.Close()
	recvWithin(t, viewer.Incoming(), time.Second) // -U
	recvWithin(t, viewer.Incoming(), time.Second) // -T
	nack := recvWithin(t, viewer.Incoming(), time.Second)
	if nack.Op != protocol.OpWriteNack {
		t.Fatalf("viewer first message op = %s, want %s", nack.Op, protocol.OpWriteNack)
	}

	if err := bob.Send(protocol.NewWriteChar("bob", 'x')); err != nil {
		t.Fatalf("Send: %v", err)
	}

	got := recvWithin(t, viewer.Incoming(), time.Second)
	if got.Op != protocol.OpWriteChar || got.Author != "bob" {
		t.Fatalf("viewer saw %+v, want write-char from bob", got)
	}
}
