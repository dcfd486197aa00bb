package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOwnerConstructors(t *testing.T) {
	author := AuthoredBy(3)
	assert.True(t, author.Valid())
	assert.NotNil(t, author.AuthorID)
	assert.Nil(t, author.JournalistID)

	journalist := SubmittedBy(7)
	assert.True(t, journalist.Valid())
	assert.Nil(t, journalist.AuthorID)
}

func TestNewsPostOwnershipXOR(t *testing.T) {
	var post NewsPost
	assert.Error(t, post.Validate())

	post.SetOwner(SubmittedBy(7))
	assert.NoError(t, post.Validate())

	id := uint(3)
	post.AuthorID = &id
	assert.Error(t, post.Validate())
}

func TestPostedBy(t *testing.T) {
	post := NewsPost{Journalist: &Journalist{Username: "DANA4821"}}
	assert.Equal(t, "DANA4821", post.PostedBy())

	staff := NewsPost{Author: &User{Username: "editor1"}}
	assert.Equal(t, "editor1", staff.PostedBy())

	assert.Equal(t, "Unknown", (&NewsPost{}).PostedBy())
}

func TestRedirectValidate(t *testing.T) {
	bad := NewsRedirect{OldSlug: "x", RedirectSlug: "x"}
	assert.Error(t, bad.Validate())

	good := NewsRedirect{OldSlug: "x", RedirectSlug: "y"}
	assert.NoError(t, good.Validate())
}
