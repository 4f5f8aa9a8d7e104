package main

import (
	"fmt"
	"net"
	"os"
	"strconv"

	"github.com/dshills/collabedit/internal/config"
	"github.com/dshills/collabedit/internal/editop"
	"github.com/dshills/collabedit/internal/engine"
	"github.com/dshills/collabedit/internal/logging"
	"github.com/dshills/collabedit/internal/protocol"
	"github.com/dshills/collabedit/internal/session"
)

func runConnect(addr, user string, debug bool) int {
	cfg, err := config.Load("collabedit.toml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "collabedit: %v\n", err)
		return 1
	}
	logger := newLogger("client", debug)

	if _, _, err := net.SplitHostPort(addr); err != nil {
		addr = net.JoinHostPort(addr, strconv.Itoa(cfg.Client.Port))
	}
	client, err := session.Dial(addr, user)
	if err != nil {
		fmt.Fprintf(os.Stderr, "collabedit: %v\n", err)
		return 1
	}
	defer client.Close()

	usersMsg, ok := <-client.Incoming()
	if !ok || usersMsg.Op == protocol.OpHostDisconnect {
		fmt.Fprintln(os.Stderr, "collabedit: connection rejected by host")
		return 1
	}
	textMsg, ok := <-client.Incoming()
	if !ok {
		fmt.Fprintln(os.Stderr, "collabedit: host closed before sending document")
		return 1
	}

	owner := usersMsg.Author
	text := ""
	if len(textMsg.Args) > 0 {
		text = textMsg.Args[0]
	}
	localEng := engine.NewFromText(owner, text, engine.Now(), logger)

	users, err := protocol.ParseUsersUpload(usersMsg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "collabedit: malformed user snapshot: %v\n", err)
		return 1
	}
	for _, u := range users {
		mirrorConnect(localEng, u.Username)
		if p, ok := localEng.Participant(u.Username); ok {
			p.Caret = u.Pos
		}
	}
	if _, ok := localEng.Participant(user); !ok {
		fmt.Fprintln(os.Stderr, "collabedit: username not present in host's initial snapshot")
		return 1
	}

	quit := make(chan struct{})
	go mirrorIncoming(localEng, client, logger, user, quit)

	status := fmt.Sprintf("connected to %s as %s — Ctrl-Z undo, Ctrl-Y redo, Ctrl-C quit", addr, user)
	runLocalEditLoop(localEng, localEdit(localEng, client), user, status)

	close(quit)
	return 0
}

// localEdit mirrors session.Host.LocalEdit: a local keystroke is applied
// to the mirror engine immediately, then sent to the host (spec §2's
// "local keystrokes → engine applies locally → session broadcasts" data
// flow). The host's own echo of this same edit is later dropped by
// mirrorIncoming instead of being applied a second time.
func localEdit(eng *engine.Engine, client *session.Client) func(string, editop.Command) error {
	return func(username string, cmd editop.Command) error {
		if err := eng.Apply(username, cmd); err != nil {
			return err
		}
		return client.Send(protocol.FromCommand(username, cmd))
	}
}

// mirrorConnect registers username in the local mirror engine if it
// is not already present; the session owner is already registered by
// NewFromText.
func mirrorConnect(eng *engine.Engine, username string) {
	if _, ok := eng.Participant(username); ok {
		return
	}
	_, _ = eng.Connect(username)
}

// mirrorIncoming replays every broadcast message the host sends against
// the local mirror engine, so the client's rendered state is always a
// pure function of the same ordered log the host applied. The host
// echoes this client's own edits back along with everyone else's; those
// were already applied locally by localEdit, so they are skipped here
// (spec §4.6, §8: every self-authored echoed message is a no-op on the
// originator). A command from a username the mirror has not seen yet (a
// peer who joined after this client's initial snapshot) is connected on
// first use.
func mirrorIncoming(eng *engine.Engine, client *session.Client, logger *logging.Logger, localUser string, quit <-chan struct{}) {
	for {
		select {
		case msg, ok := <-client.Incoming():
			if !ok {
				return
			}
			switch msg.Op {
			case protocol.OpHostDisconnect:
				logger.Warnf("disconnected by host")
				return
			case protocol.OpDisconnect:
				eng.Disconnect(msg.Author)
				continue
			case protocol.OpWriteNack:
				logger.Infof("write downgraded to read-only by host")
				continue
			}
			if protocol.IsSelfEcho(msg, localUser) {
				continue
			}
			cmd, ok := msg.Command()
			if !ok {
				continue
			}
			mirrorConnect(eng, msg.Author)
			if err := eng.Apply(msg.Author, cmd); err != nil {
				logger.Warnf("mirror apply failed", logging.F("err", err), logging.F("author", msg.Author))
			}
		case <-quit:
			return
		}
	}
}
