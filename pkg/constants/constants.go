package constants

const (
	Version    string = "1.2.0"
	ApiVersion int    = 1
)
