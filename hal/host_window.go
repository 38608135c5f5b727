//go:build !tinygo && cgo

package hal

import (
	"efiboy/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// RunWindow starts a desktop window that presents the video surface and
// forwards keyboard input. It blocks until the application requests a reset
// or the window closes, and returns the reset status.
func RunWindow(run func(HAL)) (Status, error) {
	h := newHostHAL()

	first := hostModes[0]
	g := &hostGame{h: h, w: first.Width, ht: first.Height}
	g.returned = h.start(run)

	ebiten.SetWindowTitle("efiboy (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(first.Width, first.Height)
	ebiten.SetTPS(60)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(g); err != nil && err != ebiten.Termination {
		return 0, err
	}
	if !g.reset {
		return 0, ErrNoReset
	}
	return g.status, nil
}

type hostGame struct {
	h        *hostHAL
	returned <-chan struct{}

	w, ht int
	pix   []byte
	img   *ebiten.Image

	reset   bool
	closing bool
	status  Status
}

func (g *hostGame) Update() error {
	select {
	case st := <-g.h.resetCh:
		g.reset = true
		g.status = st
		return ebiten.Termination
	case <-g.returned:
		return ebiten.Termination
	default:
	}
	if ebiten.IsWindowBeingClosed() && !g.closing {
		// Closing the window presses escape; the application shuts down
		// and resets on its own.
		g.closing = true
		g.h.keys.push(Key{Scan: ScanEscape})
	}
	pollWindowKeys(g.h.keys)
	return nil
}

func (g *hostGame) Draw(screen *ebiten.Image) {
	res, pix := g.h.fb.snapshotRGBA(g.pix)
	g.pix = pix
	if res.Width <= 0 || res.Height <= 0 {
		return
	}
	if g.img == nil || res.Width != g.w || res.Height != g.ht {
		if g.img != nil {
			g.img.Deallocate()
		}
		g.w, g.ht = res.Width, res.Height
		g.img = ebiten.NewImage(g.w, g.ht)
		ebiten.SetWindowSize(g.w, g.ht)
	}
	g.img.WritePixels(g.pix)
	screen.DrawImage(g.img, nil)
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.ht
}

var windowScanKeys = []struct {
	key  ebiten.Key
	scan ScanCode
}{
	{ebiten.KeyEscape, ScanEscape},
	{ebiten.KeyArrowUp, ScanUp},
	{ebiten.KeyArrowDown, ScanDown},
	{ebiten.KeyArrowLeft, ScanLeft},
	{ebiten.KeyArrowRight, ScanRight},
}

// pollWindowKeys converts this frame's input into firmware key strokes.
// The firmware queue has no release events, so only presses are forwarded.
func pollWindowKeys(q *hostKeyQueue) {
	for _, r := range ebiten.AppendInputChars(nil) {
		q.push(Key{Rune: r})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		q.push(Key{Rune: '\r'})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyBackspace) {
		q.push(Key{Rune: '\b'})
	}
	for _, k := range windowScanKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			q.push(Key{Scan: k.scan})
		}
	}
}
