package navigation

// Navigator is anything capable of transitioning to a destination.
//
// Implementations must not fail for unknown identifiers and must treat a nil
// payload as "no data". The only errors returned come from the host failing
// to present a screen.
type Navigator interface {
	// Navigate transitions to a typed destination.
	Navigate(host Host, dest Destination) error

	// ChangeActivity transitions to the destination named by identifier,
	// converting payload as described by Resolve.
	ChangeActivity(host Host, identifier string, payload any) error
}

// Historian is implemented by navigators that keep a back stack.
type Historian interface {
	// Back returns to the previous destination. ok is false when there is
	// nothing to go back to.
	Back(host Host) (ok bool, err error)
}
