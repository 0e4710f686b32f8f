package messages

// JoinRequest is sent by a client after connecting to request a player.
type JoinRequest struct {
	Version    string
	PlayerName string
}
