package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileDisplayName(t *testing.T) {
	account := Account{ID: 42, Username: "jdoe", FirstName: "Jordan", LastName: "Doe"}

	public := Profile{AccountID: 42, Account: account, VisibilityMode: VisibilityPublic}
	assert.Equal(t, "Jordan Doe", public.DisplayName())

	pseudonymous := Profile{AccountID: 42, Account: account, VisibilityMode: VisibilityPseudonymous}
	assert.Equal(t, "User42", pseudonymous.DisplayName())

	// No name set falls back to the username
	nameless := Profile{AccountID: 7, Account: Account{ID: 7, Username: "ghost"}, VisibilityMode: VisibilityPublic}
	assert.Equal(t, "ghost", nameless.DisplayName())
}

func TestAccountDisplayName(t *testing.T) {
	account := Account{ID: 3, Username: "sky", FirstName: "Sam", LastName: "Kim"}

	// Without a loaded profile the full name wins
	assert.Equal(t, "Sam Kim", account.DisplayName())

	account.Profile = &Profile{AccountID: 3, VisibilityMode: VisibilityPseudonymous}
	assert.Equal(t, "User3", account.DisplayName())

	account.Profile.VisibilityMode = VisibilityPublic
	assert.Equal(t, "Sam Kim", account.DisplayName())
}

func TestPostTypeLabel(t *testing.T) {
	post := Post{PostType: PostTypeQuestion}
	assert.Equal(t, "❓ Question", post.TypeLabel())

	post.PostType = PostTypePlaybook
	assert.Equal(t, "📖 Playbook", post.TypeLabel())

	// Unknown types pass through raw
	post.PostType = "mystery"
	assert.Equal(t, "mystery", post.TypeLabel())
}

func TestPostAuthorDisplay(t *testing.T) {
	account := Account{ID: 9, Username: "maker", FirstName: "Max"}
	profile := Profile{AccountID: 9, Account: account, VisibilityMode: VisibilityPseudonymous}
	account.Profile = &profile

	post := Post{Author: account}
	assert.Equal(t, "User9", post.AuthorDisplay())

	post.IsAnonymous = true
	assert.Equal(t, "Anonymous", post.AuthorDisplay())

	// No profile loaded falls back to the username
	bare := Post{Author: Account{Username: "plain"}}
	assert.Equal(t, "plain", bare.AuthorDisplay())
}
