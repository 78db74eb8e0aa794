package input

import rl "github.com/gen2brain/raylib-go/raylib"

// Bindings maps keys to handlers. Add handlers with Bind; call Poll once per
// frame, before the simulation tick, so handlers see a settled frame.
type Bindings struct {
	keys     []int32
	handlers map[int32]func()
}

// NewBindings returns an empty binding table.
func NewBindings() *Bindings {
	return &Bindings{handlers: make(map[int32]func())}
}

// Bind attaches fn to a key. Binding the same key again replaces the
// handler but keeps its original polling position.
func (b *Bindings) Bind(key int32, fn func()) {
	if _, ok := b.handlers[key]; !ok {
		b.keys = append(b.keys, key)
	}
	b.handlers[key] = fn
}

// Poll runs the handler for every bound key pressed this frame, in binding
// order. Keys fire on the press edge, not while held.
func (b *Bindings) Poll() {
	for _, key := range b.keys {
		if rl.IsKeyPressed(key) {
			b.handlers[key]()
		}
	}
}
