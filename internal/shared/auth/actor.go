package auth

// ContextKeyActor is the request-context key under which the HTTP layer
// stores the resolved Actor.
const ContextKeyActor = "actor"

// Actor is the authenticated principal acting on a request. The HTTP layer
// resolves it once from the request credentials and every service operation
// receives it as an explicit parameter; nothing reads it from global state.
type Actor struct {
	UserID uint
	Roles  []string
}

func (a Actor) IsAdmin() bool {
	return IsAdmin(a.Roles)
}

// Is reports whether the actor is the user with the given ID.
func (a Actor) Is(userID uint) bool {
	return a.UserID == userID
}
