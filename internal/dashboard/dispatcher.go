package dashboard

import (
	"errors"
	"fmt"
	"slices"

	"launchdash/internal/charts"
	"launchdash/internal/dataset"
)

// Dispatcher errors.
var (
	ErrDuplicateOutput = errors.New("output already has a callback")
	ErrNoInputs        = errors.New("callback needs at least one input")
)

// CallbackFunc computes an output value from the widget state.
type CallbackFunc func(State) any

// Callback binds input widgets to an output slot.
type Callback struct {
	Output OutputID
	Inputs []WidgetID
	Fn     CallbackFunc
}

// Output is the value written to a slot by a callback.
type Output struct {
	ID    OutputID
	Value any
}

// Dispatcher maps input widgets to the callbacks they trigger. Callbacks run
// synchronously, in registration order.
type Dispatcher struct {
	callbacks []Callback
}

// NewDispatcher creates an empty dispatcher.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Register adds a callback. Each output slot may have only one callback.
func (d *Dispatcher) Register(cb Callback) error {
	if len(cb.Inputs) == 0 {
		return fmt.Errorf("%s: %w", cb.Output, ErrNoInputs)
	}
	for _, in := range cb.Inputs {
		if _, err := ParseWidgetID(string(in)); err != nil {
			return fmt.Errorf("%s: %w", cb.Output, err)
		}
	}
	for _, existing := range d.callbacks {
		if existing.Output == cb.Output {
			return fmt.Errorf("%s: %w", cb.Output, ErrDuplicateOutput)
		}
	}
	d.callbacks = append(d.callbacks, cb)
	return nil
}

// Dispatch runs every callback listening to the changed widget.
func (d *Dispatcher) Dispatch(changed WidgetID, state State) []Output {
	var outputs []Output
	for _, cb := range d.callbacks {
		if slices.Contains(cb.Inputs, changed) {
			outputs = append(outputs, Output{ID: cb.Output, Value: cb.Fn(state)})
		}
	}
	return outputs
}

// DispatchAll runs every callback, as on the first page render.
func (d *Dispatcher) DispatchAll(state State) []Output {
	outputs := make([]Output, 0, len(d.callbacks))
	for _, cb := range d.callbacks {
		outputs = append(outputs, Output{ID: cb.Output, Value: cb.Fn(state)})
	}
	return outputs
}

// Outputs returns the slot ids that have a callback, in registration order.
func (d *Dispatcher) Outputs() []OutputID {
	ids := make([]OutputID, len(d.callbacks))
	for i, cb := range d.callbacks {
		ids[i] = cb.Output
	}
	return ids
}

// NewLaunchDispatcher registers the two chart callbacks of the launch dashboard.
func NewLaunchDispatcher(ds *dataset.Dataset) *Dispatcher {
	d := NewDispatcher()

	// Both registrations are static and valid.
	_ = d.Register(Callback{
		Output: SuccessPieChart,
		Inputs: []WidgetID{SiteDropdown},
		Fn: func(s State) any {
			return charts.SuccessPie(ds, s.Site)
		},
	})
	_ = d.Register(Callback{
		Output: PayloadScatterChart,
		Inputs: []WidgetID{SiteDropdown, PayloadSlider},
		Fn: func(s State) any {
			return charts.PayloadScatter(ds, s.Site, s.Payload)
		},
	})

	return d
}
