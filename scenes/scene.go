// Package scenes holds the desktop viewer's scenes. ArenaScene runs the
// simulation locally; NetworkedScene draws a server's world.
package scenes

type SceneChanger interface {
	ChangeScene(scene interface{})
}
