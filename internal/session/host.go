package session

import (
	"bufio"
	"net"
	"sync"

	"github.com/dshills/collabedit/internal/editop"
	"github.com/dshills/collabedit/internal/engine"
	"github.com/dshills/collabedit/internal/history"
	"github.com/dshills/collabedit/internal/logging"
	"github.com/dshills/collabedit/internal/permissions"
	"github.com/dshills/collabedit/internal/protocol"
)

// DefaultPort is the TCP port a host listens on unless overridden
// (spec §4.7).
const DefaultPort = 12000

// peer is one connected client's transport state from the host's side.
type peer struct {
	username string
	conn     net.Conn
	send     chan protocol.Message
	canWrite bool
	closeOnce sync.Once
}

func (p *peer) close() {
	p.closeOnce.Do(func() {
		close(p.send)
		_ = p.conn.Close()
	})
}

// Host accepts inbound connections in a star topology: one goroutine
// per peer reader, one per peer writer, and a single broadcast
// goroutine that fans every applied edit out to every connected
// writer in the order the host observed it.
type Host struct {
	listener net.Listener
	engine   *engine.Engine
	perms    *permissions.Table
	logger   *logging.Logger

	mu    sync.RWMutex
	peers map[string]*peer

	broadcast chan protocol.Message
	done      chan struct{}
}

// NewHost wires an Engine and a permission Table to a TCP listener.
// The engine's owner is always implicitly a read-write participant;
// perms governs everyone else.
func NewHost(ln net.Listener, eng *engine.Engine, perms *permissions.Table, logger *logging.Logger) *Host {
	if logger == nil {
		logger = logging.New(nil, "host", logging.Info)
	}
	return &Host{
		listener:  ln,
		engine:    eng,
		perms:     perms,
		logger:    logger,
		peers:     make(map[string]*peer),
		broadcast: make(chan protocol.Message, 256),
		done:      make(chan struct{}),
	}
}

// Serve runs the accept loop and the broadcast loop. It blocks until
// the listener is closed.
func (h *Host) Serve() error {
	go h.broadcastLoop()
	for {
		conn, err := h.listener.Accept()
		if err != nil {
			select {
			case <-h.done:
				return nil
			default:
			}
			return err
		}
		go h.handleConn(conn)
	}
}

// Close stops the accept and broadcast loops and disconnects every
// peer.
func (h *Host) Close() error {
	close(h.done)
	err := h.listener.Close()
	h.mu.Lock()
	peers := make([]*peer, 0, len(h.peers))
	for _, p := range h.peers {
		peers = append(peers, p)
	}
	h.peers = make(map[string]*peer)
	h.mu.Unlock()
	for _, p := range peers {
		p.close()
	}
	close(h.broadcast)
	return err
}

// Reconcile delegates to the underlying engine, for a caller (the CLI
// entrypoint) to persist at session end.
func (h *Host) Reconcile() ([]*history.Frame, []string) {
	return h.engine.Reconcile()
}

// Engine exposes the underlying engine so the hosting process can
// drive its own local participant (the owner types directly against
// the same engine every remote peer's edits flow through).
func (h *Host) Engine() *engine.Engine { return h.engine }

// LocalEdit applies an edit on behalf of the owner (or any locally
// driven participant) and broadcasts it to every connected peer,
// exactly as if it had arrived over the network.
func (h *Host) LocalEdit(username string, cmd editop.Command) error {
	if err := h.engine.Apply(username, cmd); err != nil {
		return err
	}
	h.broadcast <- protocol.FromCommand(username, cmd)
	return nil
}

func (h *Host) handleConn(conn net.Conn) {
	logger := h.logger.WithPrefix("host.peer")
	scanner := protocol.NewScanner(conn)

	if !scanner.Scan() {
		_ = conn.Close()
		return
	}
	hello, err := protocol.Decode(scanner.Bytes())
	if err != nil || hello.Op != protocol.OpConnect {
		logger.Warnf("malformed connect handshake")
		_ = conn.Close()
		return
	}
	username := hello.Author

	if !h.perms.CanConnect(username) {
		logger.Infof("rejecting unknown user", logging.F("user", username))
		_, _ = conn.Write(protocol.NewHostDisconnect(h.engine.Owner()).Encode())
		_ = conn.Close()
		return
	}

	if _, err := h.engine.Connect(username); err != nil {
		logger.Warnf("connect failed", logging.F("user", username), logging.F("err", err))
		_, _ = conn.Write(protocol.NewHostDisconnect(h.engine.Owner()).Encode())
		_ = conn.Close()
		return
	}

	p := &peer{
		username: username,
		conn:     conn,
		send:     make(chan protocol.Message, 64),
		canWrite: h.perms.CanWrite(username),
	}
	h.mu.Lock()
	h.peers[username] = p
	h.mu.Unlock()

	go h.writeLoop(p)

	h.sendInitialState(p)
	if !p.canWrite {
		p.send <- protocol.NewWriteNack(h.engine.Owner())
	}
	logger.Infof("participant connected", logging.F("user", username))

	h.readLoop(p, scanner, logger)
}

// sendInitialState uploads the current participant positions and the
// full document text to a newly connected peer only (spec §4.7).
func (h *Host) sendInitialState(p *peer) {
	var users []protocol.UserPos
	for _, u := range h.engine.Usernames() {
		part, ok := h.engine.Participant(u)
		if !ok {
			continue
		}
		users = append(users, protocol.UserPos{Username: part.Username, Pos: part.Caret})
	}
	p.send <- protocol.NewUsersUpload(h.engine.Owner(), users)
	p.send <- protocol.NewTextUpload(h.engine.Owner(), h.engine.Text())
}

func (h *Host) readLoop(p *peer, scanner *bufio.Scanner, logger *logging.Logger) {
	defer h.dropPeer(p)
	for scanner.Scan() {
		msg, err := protocol.Decode(scanner.Bytes())
		if err != nil {
			logger.Debugf("dropping malformed frame", logging.F("user", p.username))
			continue
		}
		if msg.Op == protocol.OpDisconnect {
			return
		}
		cmd, ok := msg.Command()
		if !ok {
			logger.Debugf("dropping unknown opcode", logging.F("op", msg.Op))
			continue
		}
		if !p.canWrite {
			p.send <- protocol.NewWriteNack(h.engine.Owner())
			continue
		}
		if err := h.engine.Apply(p.username, cmd); err != nil {
			logger.Warnf("apply failed", logging.F("user", p.username), logging.F("err", err))
			continue
		}
		h.broadcast <- protocol.FromCommand(p.username, cmd)
	}
}

func (h *Host) dropPeer(p *peer) {
	h.mu.Lock()
	delete(h.peers, p.username)
	h.mu.Unlock()
	h.engine.Disconnect(p.username)
	p.close()
	h.logger.Infof("participant disconnected", logging.F("user", p.username))
}

func (h *Host) writeLoop(p *peer) {
	for msg := range p.send {
		if _, err := p.conn.Write(msg.Encode()); err != nil {
			return
		}
	}
}

// broadcastLoop drains the single host-wide queue and fans each
// message out to every connected peer's own send channel, preserving
// the order the host observed edits in (spec §5). A peer whose send
// channel is full is dropped silently rather than blocking the whole
// broadcast (spec §4.7: "a writer that fails is closed and dropped").
func (h *Host) broadcastLoop() {
	for msg := range h.broadcast {
		h.mu.RLock()
		targets := make([]*peer, 0, len(h.peers))
		for _, p := range h.peers {
			targets = append(targets, p)
		}
		h.mu.RUnlock()
		for _, p := range targets {
			select {
			case p.send <- msg:
			default:
				go h.dropPeer(p)
			}
		}
	}
}

// Kick forcibly disconnects username, notifying it with -DCH.
func (h *Host) Kick(username string) {
	h.mu.RLock()
	p, ok := h.peers[username]
	h.mu.RUnlock()
	if !ok {
		return
	}
	// Written directly: dropPeer closes the send queue and the socket at
	// once, so a queued notice could be lost.
	_, _ = p.conn.Write(protocol.NewHostDisconnect(h.engine.Owner()).Encode())
	h.dropPeer(p)
}
