package messages

// PlayerInput is sent from client to server each frame with the player's
// movement on the ground plane.
type PlayerInput struct {
	Sequence  uint32  // Incrementing ID, older inputs are dropped
	MoveX     float64 // -1..1 along world X
	MoveZ     float64 // -1..1 along world Z
	Timestamp int64   // Client timestamp (Unix ms)
}
