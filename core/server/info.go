package server

// Info is the static metadata the application is published with.
type Info struct {
	Name        string
	Description string
	Version     string
	DocsPath    string
	RedocPath   string
}

// DefaultInfo describes the PantryPal API.
var DefaultInfo = Info{
	Name:        "PantryPal API",
	Description: "Smart pantry management and meal planning API",
	Version:     "0.1.0",
	DocsPath:    "/docs",
	RedocPath:   "/redoc",
}
