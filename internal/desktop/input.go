package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/warpfield/internal/input"
)

// Keyboard reports key state for one tick.
type Keyboard interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
	JustReleased(k ebiten.Key) bool
}

type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool      { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool  { return inpututil.IsKeyJustPressed(k) }
func (ebitenKeys) JustReleased(k ebiten.Key) bool { return inpututil.IsKeyJustReleased(k) }

// Key bindings, mirroring the terminal ones.
var (
	keysLeft    = []ebiten.Key{ebiten.KeyA, ebiten.KeyJ, ebiten.KeyArrowLeft}
	keysRight   = []ebiten.Key{ebiten.KeyD, ebiten.KeyL, ebiten.KeyArrowRight}
	keysUp      = []ebiten.Key{ebiten.KeyW, ebiten.KeyI, ebiten.KeyArrowUp}
	keysDown    = []ebiten.Key{ebiten.KeyS, ebiten.KeyK, ebiten.KeyArrowDown}
	keysFire    = []ebiten.Key{ebiten.KeySpace}
	keysRockets = []ebiten.Key{ebiten.Key1, ebiten.KeyR}
	keysMine    = []ebiten.Key{ebiten.Key2, ebiten.KeyM}
	keysWarp    = []ebiten.Key{ebiten.KeyE}
	keysConfirm = []ebiten.Key{ebiten.KeySpace, ebiten.KeyEnter}
	keysBack    = []ebiten.Key{ebiten.KeyEscape}
	keysPause   = []ebiten.Key{ebiten.KeyP}
	keysQuit    = []ebiten.Key{ebiten.KeyQ}
)

func anyKey(keys []ebiten.Key, test func(ebiten.Key) bool) bool {
	for _, k := range keys {
		if test(k) {
			return true
		}
	}
	return false
}

// ReadInput builds the frame input. A window gets real key releases, so the
// warp edges come straight from the keyboard instead of a hold window.
func ReadInput(kb Keyboard) input.Input {
	return input.Input{
		Quit:    anyKey(keysQuit, kb.JustPressed),
		Left:    anyKey(keysLeft, kb.Pressed),
		Right:   anyKey(keysRight, kb.Pressed),
		Up:      anyKey(keysUp, kb.Pressed),
		Down:    anyKey(keysDown, kb.Pressed),
		Fire:    anyKey(keysFire, kb.Pressed),
		Rockets: anyKey(keysRockets, kb.Pressed),
		Mine:    anyKey(keysMine, kb.Pressed),
		Warp:    anyKey(keysWarp, kb.Pressed),

		WarpPressed:  anyKey(keysWarp, kb.JustPressed),
		WarpReleased: anyKey(keysWarp, kb.JustReleased),
		Confirm:      anyKey(keysConfirm, kb.JustPressed),
		Back:         anyKey(keysBack, kb.JustPressed),
		Pause:        anyKey(keysPause, kb.JustPressed),
	}
}
