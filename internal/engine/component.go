package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// Releaser is implemented by components that hold graphics resources.
// Scene teardown calls Release on every component that implements it.
type Releaser interface {
	Release()
}

// Highlighter is implemented by components that can show a hover highlight.
type Highlighter interface {
	SetHighlighted(on bool)
	Highlighted() bool
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}
