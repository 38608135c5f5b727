//go:build !tinygo

package hal

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// terminalKeyboard feeds raw stdin bytes into the key queue.
type terminalKeyboard struct {
	q        *hostKeyQueue
	fd       int
	oldState *term.State
}

func startTerminalKeyboard(q *hostKeyQueue, log *hostLogger) (*terminalKeyboard, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("stdin: %w", ErrUnsupported)
	}
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("stdin raw mode: %w", err)
	}
	log.setEOL("\r\n")

	k := &terminalKeyboard{q: q, fd: fd, oldState: oldState}
	go k.read()
	return k, nil
}

func (k *terminalKeyboard) read() {
	buf := make([]byte, 16)
	for {
		n, err := os.Stdin.Read(buf)
		if n > 0 {
			for _, key := range decodeTerminalKeys(buf[:n]) {
				k.q.push(key)
			}
		}
		if err != nil {
			return
		}
	}
}

func (k *terminalKeyboard) restore() {
	if k == nil || k.oldState == nil {
		return
	}
	_ = term.Restore(k.fd, k.oldState)
	k.oldState = nil
}

// decodeTerminalKeys maps one read chunk to firmware keys. A lone ESC is the
// escape key; ESC [ A..D are the arrow keys.
func decodeTerminalKeys(b []byte) []Key {
	var out []Key
	for i := 0; i < len(b); i++ {
		c := b[i]
		switch {
		case c == 0x1B:
			if i+2 < len(b) && b[i+1] == '[' {
				if sc, ok := arrowScanCode(b[i+2]); ok {
					out = append(out, Key{Scan: sc})
					i += 2
					continue
				}
			}
			out = append(out, Key{Scan: ScanEscape})
		case c == 0x03:
			// Ctrl-C in raw mode.
			out = append(out, Key{Scan: ScanEscape})
		case c == 0x7F:
			out = append(out, Key{Rune: '\b'})
		default:
			out = append(out, Key{Rune: rune(c)})
		}
	}
	return out
}

func arrowScanCode(c byte) (ScanCode, bool) {
	switch c {
	case 'A':
		return ScanUp, true
	case 'B':
		return ScanDown, true
	case 'C':
		return ScanRight, true
	case 'D':
		return ScanLeft, true
	}
	return ScanNull, false
}
