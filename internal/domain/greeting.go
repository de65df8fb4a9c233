package domain

// Message is the fixed greeting text served on the root route.
// The value is part of the wire contract and never varies at runtime.
const Message = "Hello from Dockerized Flask updated!"

// Greeting is the response payload for GET /: a mapping with a single
// key "message". It is the only entity the service knows about. It has
// no state behind it and is constructed fresh per request, alive only
// while the response body is being serialized.
type Greeting struct {
	Message string `json:"message"`
}

// DefaultGreeting returns the payload served on every request.
func DefaultGreeting() Greeting {
	return Greeting{Message: Message}
}
