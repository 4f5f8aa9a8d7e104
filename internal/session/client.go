package session

import (
	"fmt"
	"net"
	"sync"

	"github.com/dshills/collabedit/internal/protocol"
)

// Client is one peer's outbound connection to a host. It owns the
// socket, a scanner-driven reader goroutine that feeds decoded
// messages to Incoming, and a direct Send path for outbound edits.
// Client applies nothing to an engine itself; the caller decides what
// to do with each incoming message, including the host's echo of this
// client's own edits.
type Client struct {
	username string
	conn     net.Conn
	incoming chan protocol.Message

	closeOnce sync.Once
}

// Dial connects to a host at addr (host:port), sends the -C hello, and
// returns without waiting for a reply: the host's answer (the -U and -T
// uploads, or -DCH on rejection) arrives through Incoming like any
// other message.
func Dial(addr, username string) (*Client, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("session: dial %s: %w", addr, err)
	}

	if _, err := conn.Write(protocol.NewConnect(username).Encode()); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("session: send connect: %w", err)
	}

	c := &Client{
		username: username,
		conn:     conn,
		incoming: make(chan protocol.Message, 256),
	}
	go c.readLoop()
	return c, nil
}

// Incoming streams every decodable message the host sends this client,
// including the host's echo of this client's own edits. The channel is
// closed after a -DCH or when the connection ends.
func (c *Client) Incoming() <-chan protocol.Message { return c.incoming }

func (c *Client) readLoop() {
	defer close(c.incoming)
	scanner := protocol.NewScanner(c.conn)
	for scanner.Scan() {
		msg, err := protocol.Decode(scanner.Bytes())
		if err != nil {
			continue
		}
		if msg.Op == protocol.OpHostDisconnect {
			c.incoming <- msg
			return
		}
		c.incoming <- msg
	}
}

// Send transmits msg to the host.
func (c *Client) Send(msg protocol.Message) error {
	if _, err := c.conn.Write(msg.Encode()); err != nil {
		return fmt.Errorf("session: send: %w", err)
	}
	return nil
}

// Close ends the connection, first sending -DC to the host.
func (c *Client) Close() error {
	var err error
	c.closeOnce.Do(func() {
		_, _ = c.conn.Write(protocol.NewDisconnect(c.username).Encode())
		err = c.conn.Close()
	})
	return err
}
