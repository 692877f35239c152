package models

import "time"

// User is the single persisted aggregate: identity, credentials, covid
// status, and the caller-owned half of the friend graph.
type User struct {
	ID           string       `json:"id"`
	FirstName    string       `json:"firstName"`
	LastName     string       `json:"lastName"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"`
	HasCovid     bool         `json:"hasCovid"`
	LastExposed  *time.Time   `json:"lastExposed,omitempty"`
	Vaccination  *Vaccination `json:"vaccination,omitempty"`
	Friends      []string     `json:"friends"`
	DateJoined   time.Time    `json:"dateJoined"`
}

// AddFriend appends id to the friend list. Adding an id already present is a
// no-op so the list stays a set. Self-references are ignored here; handlers
// reject them with a proper error before getting this far.
func (u *User) AddFriend(id string) {
	if id == u.ID {
		return
	}
	for _, f := range u.Friends {
		if f == id {
			return
		}
	}
	u.Friends = append(u.Friends, id)
}

// RemoveFriend removes the first occurrence of id from the friend list and
// reports whether it was present.
func (u *User) RemoveFriend(id string) bool {
	for i, f := range u.Friends {
		if f == id {
			u.Friends = append(u.Friends[:i], u.Friends[i+1:]...)
			return true
		}
	}
	return false
}

// HasFriend reports whether id is in the friend list. References to deleted
// users still count; the graph is not cleaned up on deletion.
func (u *User) HasFriend(id string) bool {
	for _, f := range u.Friends {
		if f == id {
			return true
		}
	}
	return false
}

// Summary is the listing view of a user: everything except credentials.
type Summary struct {
	ID          string       `json:"id"`
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	Email       string       `json:"email"`
	HasCovid    bool         `json:"hasCovid"`
	LastExposed *time.Time   `json:"lastExposed,omitempty"`
	Vaccination *Vaccination `json:"vaccination,omitempty"`
	Friends     []string     `json:"friends"`
	DateJoined  time.Time    `json:"dateJoined"`
}

// FriendView is the reduced field set returned when listing a user's friends.
type FriendView struct {
	ID          string       `json:"id"`
	FirstName   string       `json:"firstName"`
	LastName    string       `json:"lastName"`
	HasCovid    bool         `json:"hasCovid"`
	LastExposed *time.Time   `json:"lastExposed,omitempty"`
	Vaccination *Vaccination `json:"vaccination,omitempty"`
}

// Summary returns the password-free view of the user.
func (u User) Summary() Summary {
	return Summary{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		Email:       u.Email,
		HasCovid:    u.HasCovid,
		LastExposed: u.LastExposed,
		Vaccination: u.Vaccination,
		Friends:     u.Friends,
		DateJoined:  u.DateJoined,
	}
}

// FriendView returns the reduced view used by the friends listing.
func (u User) FriendView() FriendView {
	return FriendView{
		ID:          u.ID,
		FirstName:   u.FirstName,
		LastName:    u.LastName,
		HasCovid:    u.HasCovid,
		LastExposed: u.LastExposed,
		Vaccination: u.Vaccination,
	}
}
