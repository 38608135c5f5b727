//go:build !tinygo

package hal

// hostKeyQueue is the emulated firmware key queue. Backends push, the
// application drains one key per ReadKey.
type hostKeyQueue struct {
	ch chan Key
}

func newHostKeyQueue() *hostKeyQueue {
	return &hostKeyQueue{ch: make(chan Key, 64)}
}

func (q *hostKeyQueue) ReadKey() (Key, bool, error) {
	select {
	case k := <-q.ch:
		return k, true, nil
	default:
		return Key{}, false, nil
	}
}

// push drops the key when the queue is full, like a firmware ring buffer.
func (q *hostKeyQueue) push(k Key) {
	select {
	case q.ch <- k:
	default:
	}
}
