package state

// Action is a single user event. Only this package implements it.
type Action interface {
	Name() string
	apply(next *State, env Env) error
}

// Reduce applies action to s. On error it returns s as given.
func Reduce(s State, action Action, env Env) (State, error) {
	next := s.clone()

	if err := action.apply(&next, env); err != nil {
		return s, err
	}

	return next, nil
}
