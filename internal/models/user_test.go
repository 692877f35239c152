package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddFriend(t *testing.T) {
	u := User{ID: "a", Friends: []string{}}

	u.AddFriend("b")
	assert.Equal(t, []string{"b"}, u.Friends)

	// adding the same friend again keeps the list a set
	u.AddFriend("b")
	assert.Equal(t, []string{"b"}, u.Friends)

	u.AddFriend("c")
	assert.Equal(t, []string{"b", "c"}, u.Friends)
}

func TestAddFriendRefusesSelf(t *testing.T) {
	u := User{ID: "a"}
	u.AddFriend("a")
	assert.Empty(t, u.Friends)
}

func TestRemoveFriend(t *testing.T) {
	u := User{ID: "a", Friends: []string{"b", "c", "d"}}

	assert.True(t, u.RemoveFriend("c"))
	assert.Equal(t, []string{"b", "d"}, u.Friends)

	assert.False(t, u.RemoveFriend("c"))
	assert.Equal(t, []string{"b", "d"}, u.Friends)
}

func TestRemoveFriendRemovesFirstOccurrence(t *testing.T) {
	// lists written before de-duplication may carry repeats
	u := User{ID: "a", Friends: []string{"b", "c", "b"}}

	assert.True(t, u.RemoveFriend("b"))
	assert.Equal(t, []string{"c", "b"}, u.Friends)
}

func TestHasFriend(t *testing.T) {
	u := User{ID: "a", Friends: []string{"b"}}
	assert.True(t, u.HasFriend("b"))
	assert.False(t, u.HasFriend("z"))
}

func TestSummaryExcludesCredentials(t *testing.T) {
	u := User{ID: "a", FirstName: "A", LastName: "B", Email: "a@b.com", PasswordHash: "hash"}
	s := u.Summary()
	assert.Equal(t, "a", s.ID)
	assert.Equal(t, "a@b.com", s.Email)
}

func TestFriendViewReducedFields(t *testing.T) {
	u := User{ID: "a", FirstName: "A", LastName: "B", HasCovid: true}
	v := u.FriendView()
	assert.Equal(t, "a", v.ID)
	assert.True(t, v.HasCovid)
}
