package contracts

import (
	"net/http"

	"github.com/julienschmidt/httprouter"
)

// Handler is implemented by every route group mounted by the application.
type Handler interface {
	RegisterRoutes(*httprouter.Router)
}

// Middleware wraps an http.Handler. Stacks are assembled with middleware.Chain.
type Middleware func(http.Handler) http.Handler
