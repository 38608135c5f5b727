package adapter

import (
	"efiboy/hal"
	"efiboy/interp"
)

// keymap binds printable keys to joypad buttons. Unlisted keys press nothing.
var keymap = map[rune]interp.Key{
	'w': interp.KeyUp, 'W': interp.KeyUp,
	's': interp.KeyDown, 'S': interp.KeyDown,
	'a': interp.KeyLeft, 'A': interp.KeyLeft,
	'd': interp.KeyRight, 'D': interp.KeyRight,
	'k': interp.KeyA, 'K': interp.KeyA,
	'j': interp.KeyB, 'J': interp.KeyB,
	'\r': interp.KeyStart,
	' ':  interp.KeySelect,
}

// keyState is the one key currently considered held.
type keyState struct {
	key       rune
	pressTime uint64
}

// inputDebouncer turns the firmware's press-only key queue into a held key
// that is released after a quiet period.
type inputDebouncer struct {
	h   hal.HAL
	log *logger

	gate         gate
	releaseAfter uint64

	state   keyState
	pressed bool
}

func newInputDebouncer(h hal.HAL, log *logger, pollInterval, releaseAfter uint64) *inputDebouncer {
	return &inputDebouncer{
		h:            h,
		log:          log,
		gate:         gate{interval: pollInterval},
		releaseAfter: releaseAfter,
	}
}

// poll reads at most one key from the firmware queue.
func (d *inputDebouncer) poll() (hal.Key, bool) {
	in, err := d.h.LocateInput()
	if err != nil {
		panic(firmwareFailure("locate input", err))
	}
	k, ok, err := in.ReadKey()
	if err != nil {
		panic(firmwareFailure("read key", err))
	}
	return k, ok
}

// tick returns false when the cancel key was read.
func (d *inputDebouncer) tick(now uint64) bool {
	fresh := false
	if d.gate.due(now) {
		if k, ok := d.poll(); ok {
			switch {
			case k.Scan == hal.ScanEscape:
				return false
			case !k.Special() && k.Rune != 0:
				d.state = keyState{key: k.Rune, pressTime: now}
				d.pressed = true
				fresh = true
				d.log.debugf("pressed %q", k.Rune)
			}
		}
	}
	if !fresh && d.pressed && elapsed(now, d.state.pressTime) >= d.releaseAfter {
		d.pressed = false
		d.log.debugf("released %q", d.state.key)
	}
	return true
}

func (d *inputDebouncer) held() (rune, bool) {
	return d.state.key, d.pressed
}

// Pressed reports whether the held key maps to k.
func (d *inputDebouncer) Pressed(k interp.Key) bool {
	if !d.pressed {
		return false
	}
	mapped, ok := keymap[d.state.key]
	return ok && mapped == k
}
