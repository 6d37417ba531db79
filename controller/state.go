package controller

import (
	"fmt"

	"github.com/shuvava/go-users-client/gateway"
)

// StatusKind is the request status of the controller.
type StatusKind int

// There is a single status shared by every operation kind.
const (
	StatusIdle StatusKind = iota
	StatusLoading
	StatusError
)

// String implements stringer interface.
func (k StatusKind) String() string {
	switch k {
	case StatusIdle:
		return "idle"
	case StatusLoading:
		return "loading"
	case StatusError:
		return "error"
	default:
		return fmt.Sprintf("unknown status: %d", k)
	}
}

// Status is idle, loading, or error with a message.
type Status struct {
	Kind    StatusKind
	Message string
}

// Loading reports whether a request is in flight.
func (s Status) Loading() bool {
	return s.Kind == StatusLoading
}

// FormMode is the state of the edit form.
type FormMode int

// Form modes.
const (
	FormClosed FormMode = iota
	FormCreating
	FormEditing
)

// String implements stringer interface.
func (m FormMode) String() string {
	switch m {
	case FormClosed:
		return "closed"
	case FormCreating:
		return "creating"
	case FormEditing:
		return "editing"
	default:
		return fmt.Sprintf("unknown form mode: %d", m)
	}
}

// Form holds the draft bound to the input fields. TargetID is the id of the
// user being edited and is zero while creating.
type Form struct {
	Mode     FormMode
	TargetID int
	Draft    gateway.User
}

// State is a read-only snapshot handed to renderers.
type State struct {
	Users    []gateway.User
	Selected *gateway.User
	Status   Status
	Form     Form
}

// clone copies s so the snapshot shares no memory with the controller.
// gateway.User has value fields only, so copying the slice is enough.
func (s State) clone() State {
	out := s
	if s.Users != nil {
		out.Users = make([]gateway.User, len(s.Users))
		copy(out.Users, s.Users)
	}
	if s.Selected != nil {
		sel := *s.Selected
		out.Selected = &sel
	}
	return out
}
