package component

// SpriteComponent names the sprite the draw pass renders for this entity.
// The key must be registered with the asset registry before spawn.
type SpriteComponent struct {
	Name string
}

// EngineComponent is the ship's exhaust flame, drawn only while thrusting.
type EngineComponent struct {
	Sprite string
	On     bool
}

// DoodadComponent marks a purely decorative entity (stars, buildings,
// delivery and explosion flashes). Doodads are despawned wholesale on cell
// transitions.
type DoodadComponent struct {
	Sprite string
}
