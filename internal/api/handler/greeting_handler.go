package handler

import (
	"net/http"

	"github.com/greethub/greeting-service/internal/domain"
)

// GreetingHandler serves the root route.
// The response is a constant: nothing on the request is consulted and
// nothing is mutated, so the handler is safe under any interleaving.
type GreetingHandler struct {
	onServed func()
}

// NewGreetingHandler constructs the handler. onServed is the optional
// metrics hook, fired once per served greeting (nil = no-op).
func NewGreetingHandler(onServed func()) *GreetingHandler {
	if onServed == nil {
		onServed = func() {}
	}
	return &GreetingHandler{onServed: onServed}
}

// Greet handles GET /
//
// @Summary  Fixed greeting payload
// @Tags     greeting
// @Produce  json
// @Success  200  {object}  domain.Greeting
// @Router   / [get]
func (h *GreetingHandler) Greet(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, domain.DefaultGreeting())
	h.onServed()
}
