// Command motion plays, inspects and exports declarative animation
// scenarios.
//
//	motion run scene.yaml --seconds 3        # headless, print final fields
//	motion play scene.yaml --watch           # window, reload on save
//	motion export scene.toml --out-dir out   # numbered PNG frames
package main

func main() {
	Execute()
}
