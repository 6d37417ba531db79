package controller

import (
	"context"

	"github.com/shuvava/go-users-client/gateway"
)

// OpenCreate opens the form with an empty draft.
func (c *Controller) OpenCreate() {
	c.update(func(s *State) {
		s.Form = Form{Mode: FormCreating}
	})
}

// OpenEdit opens the form with a draft copied from u.
func (c *Controller) OpenEdit(u gateway.User) {
	c.update(func(s *State) {
		s.Form = Form{
			Mode:     FormEditing,
			TargetID: u.ID,
			Draft:    draftFrom(u),
		}
	})
}

// EditDraft applies fn to the draft of the open form. It does nothing when
// the form is closed. fn runs under the controller lock and must not call
// back into the controller.
func (c *Controller) EditDraft(fn func(draft *gateway.User)) {
	c.mu.Lock()
	open := c.state.Form.Mode != FormClosed
	c.mu.Unlock()
	if !open {
		return
	}
	c.update(func(s *State) {
		if s.Form.Mode != FormClosed {
			fn(&s.Form.Draft)
		}
	})
}

// CloseForm discards the draft.
func (c *Controller) CloseForm() {
	c.update(func(s *State) {
		s.Form = Form{}
	})
}

// Save closes the form and dispatches the create or update of its draft
// without waiting for the response. The returned channel yields the outcome
// of the call exactly once and is then closed.
func (c *Controller) Save(ctx context.Context) <-chan error {
	done := make(chan error, 1)

	c.mu.Lock()
	open := c.state.Form.Mode != FormClosed
	c.mu.Unlock()
	if !open {
		done <- ErrFormClosed
		close(done)
		return done
	}

	var form Form
	c.update(func(s *State) {
		form = s.Form
		s.Form = Form{}
	})

	switch form.Mode {
	case FormCreating:
		go func() {
			done <- c.CreateUser(ctx, form.Draft)
			close(done)
		}()
	case FormEditing:
		go func() {
			done <- c.UpdateUser(ctx, form.TargetID, form.Draft)
			close(done)
		}()
	default:
		done <- ErrFormClosed
		close(done)
	}
	return done
}

// draftFrom copies u field by field. Nested address and company fields the
// source lacks are left as empty strings.
func draftFrom(u gateway.User) gateway.User {
	return gateway.User{
		ID:       u.ID,
		Name:     u.Name,
		Username: u.Username,
		Email:    u.Email,
		Phone:    u.Phone,
		Website:  u.Website,
		Address: gateway.Address{
			Street:  u.Address.Street,
			Suite:   u.Address.Suite,
			City:    u.Address.City,
			Zipcode: u.Address.Zipcode,
			Geo:     u.Address.Geo,
		},
		Company: gateway.Company{
			Name:        u.Company.Name,
			CatchPhrase: u.Company.CatchPhrase,
			BS:          u.Company.BS,
		},
	}
}
