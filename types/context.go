package types

// DefaultVersion is used when a command runs without an AppContext
const DefaultVersion = "dev"

// AppContext carries application-wide values into command Run methods
type AppContext struct {
	Version string
}
