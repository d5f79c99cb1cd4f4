package navigation

// Dispatcher forwards navigation requests to the Navigator it was built with.
// Feature modules hold a Dispatcher instead of the router so they can be
// compiled without the composition root.
type Dispatcher struct {
	navigator Navigator
}

// NewDispatcher returns a Dispatcher forwarding to nav.
func NewDispatcher(nav Navigator) *Dispatcher {
	return &Dispatcher{navigator: nav}
}

// Navigate forwards to the underlying Navigator.
func (d *Dispatcher) Navigate(host Host, dest Destination) error {
	if d == nil || d.navigator == nil {
		return ErrNoNavigator
	}
	return d.navigator.Navigate(host, dest)
}

// ChangeActivity forwards to the underlying Navigator.
func (d *Dispatcher) ChangeActivity(host Host, identifier string, payload any) error {
	if d == nil || d.navigator == nil {
		return ErrNoNavigator
	}
	return d.navigator.ChangeActivity(host, identifier, payload)
}

// Back forwards to the underlying Navigator if it keeps history.
func (d *Dispatcher) Back(host Host) (bool, error) {
	if d == nil || d.navigator == nil {
		return false, ErrNoNavigator
	}
	h, ok := d.navigator.(Historian)
	if !ok {
		return false, nil
	}
	return h.Back(host)
}

// Navigator returns the wrapped Navigator.
func (d *Dispatcher) Navigator() Navigator {
	return d.navigator
}
