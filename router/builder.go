package router

// Builder can create new routers.
type Builder struct {
	logic Logic
}

// MakeBuilder creates a builder for routers without logic.
func MakeBuilder() Builder {
	return Builder{}
}

// WithLogic sets the behavior of the router.
func (b Builder) WithLogic(logic Logic) Builder {
	b.logic = logic
	return b
}

// Build creates a router. It still needs to be configured and wired.
func (b Builder) Build(name string) *Router {
	return &Router{
		name:             name,
		ReservationTable: NewReservationTable(),
		logic:            b.logic,
	}
}
