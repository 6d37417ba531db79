package controller

import (
	"github.com/shuvava/go-users-client/gateway"
)

// The functions below never modify their input slice in place, so a
// snapshot taken earlier keeps its contents.

func appendUser(users []gateway.User, u gateway.User) []gateway.User {
	out := make([]gateway.User, 0, len(users)+1)
	out = append(out, users...)
	return append(out, u)
}

// replaceUser swaps the first entry with the given id for u. Without a match
// the input is returned as is.
func replaceUser(users []gateway.User, id int, u gateway.User) []gateway.User {
	for i := range users {
		if users[i].ID != id {
			continue
		}
		out := make([]gateway.User, len(users))
		copy(out, users)
		out[i] = u
		return out
	}
	return users
}

// removeUser drops every entry with the given id. Without a match the input
// is returned as is.
func removeUser(users []gateway.User, id int) []gateway.User {
	found := false
	for _, u := range users {
		if u.ID == id {
			found = true
			break
		}
	}
	if !found {
		return users
	}
	out := make([]gateway.User, 0, len(users)-1)
	for _, u := range users {
		if u.ID != id {
			out = append(out, u)
		}
	}
	return out
}
