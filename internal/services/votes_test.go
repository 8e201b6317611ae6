package services

import (
	"sync"
	"testing"

	"astra/internal/db"
	"astra/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleHelpfulVoteOnPost(t *testing.T) {
	resetTables(t)

	author := createAccount(t, "author")
	voter := createAccount(t, "voter")
	hub := createHub(t, "Toggle Hub")
	post := createPost(t, author, hub, "Vote on me")

	voted, err := ToggleHelpfulVote(voter.ID, VoteTargetPost, post.ID)
	require.NoError(t, err)
	assert.True(t, voted)
	assert.True(t, HasVoted(voter.ID, VoteTargetPost, post.ID))

	var reloaded models.Post
	require.NoError(t, db.DB.First(&reloaded, post.ID).Error)
	assert.Equal(t, 1, reloaded.HelpfulCount)

	// Second toggle removes the vote and drops the count back
	voted, err = ToggleHelpfulVote(voter.ID, VoteTargetPost, post.ID)
	require.NoError(t, err)
	assert.False(t, voted)
	assert.False(t, HasVoted(voter.ID, VoteTargetPost, post.ID))

	require.NoError(t, db.DB.First(&reloaded, post.ID).Error)
	assert.Equal(t, 0, reloaded.HelpfulCount)
}

func TestToggleHelpfulVoteOnComment(t *testing.T) {
	resetTables(t)

	author := createAccount(t, "author")
	voter := createAccount(t, "voter")
	hub := createHub(t, "Toggle Hub")
	post := createPost(t, author, hub, "Question")
	comment := createComment(t, author, post, "An answer")

	voted, err := ToggleHelpfulVote(voter.ID, VoteTargetComment, comment.ID)
	require.NoError(t, err)
	assert.True(t, voted)

	var reloaded models.Comment
	require.NoError(t, db.DB.First(&reloaded, comment.ID).Error)
	assert.Equal(t, 1, reloaded.HelpfulCount)

	// Comment vote does not touch the post's count
	var reloadedPost models.Post
	require.NoError(t, db.DB.First(&reloadedPost, post.ID).Error)
	assert.Equal(t, 0, reloadedPost.HelpfulCount)
}

func TestToggleHelpfulVoteEvenOddParity(t *testing.T) {
	resetTables(t)

	author := createAccount(t, "author")
	voter := createAccount(t, "voter")
	hub := createHub(t, "Parity Hub")
	post := createPost(t, author, hub, "Parity")

	for i := 0; i < 5; i++ {
		_, err := ToggleHelpfulVote(voter.ID, VoteTargetPost, post.ID)
		require.NoError(t, err)
	}

	// Odd number of toggles leaves exactly one vote
	var count int64
	db.DB.Model(&models.HelpfulVote{}).Where("account_id = ?", voter.ID).Count(&count)
	assert.EqualValues(t, 1, count)

	var reloaded models.Post
	require.NoError(t, db.DB.First(&reloaded, post.ID).Error)
	assert.Equal(t, 1, reloaded.HelpfulCount)
}

func TestToggleHelpfulVoteDistinctVoters(t *testing.T) {
	resetTables(t)

	author := createAccount(t, "author")
	hub := createHub(t, "Crowd Hub")
	post := createPost(t, author, hub, "Popular")

	for i, name := range []string{"alice", "bob", "carol"} {
		voter := createAccount(t, name)
		_, err := ToggleHelpfulVote(voter.ID, VoteTargetPost, post.ID)
		require.NoError(t, err, "voter %d", i)
	}

	var reloaded models.Post
	require.NoError(t, db.DB.First(&reloaded, post.ID).Error)
	assert.Equal(t, 3, reloaded.HelpfulCount)
}

func TestToggleHelpfulVoteConcurrent(t *testing.T) {
	resetTables(t)

	author := createAccount(t, "author")
	voter := createAccount(t, "voter")
	hub := createHub(t, "Race Hub")
	post := createPost(t, author, hub, "Contended")

	// Many concurrent toggles by the same account. Whatever interleaving
	// happens, at most one vote row survives and the count stays in
	// step with the rows.
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = ToggleHelpfulVote(voter.ID, VoteTargetPost, post.ID)
		}()
	}
	wg.Wait()

	var votes int64
	db.DB.Model(&models.HelpfulVote{}).
		Where("account_id = ? AND post_id = ?", voter.ID, post.ID).Count(&votes)
	assert.LessOrEqual(t, votes, int64(1))

	var reloaded models.Post
	require.NoError(t, db.DB.First(&reloaded, post.ID).Error)
	assert.EqualValues(t, votes, reloaded.HelpfulCount)
}

func TestToggleHelpfulVoteUnknownTarget(t *testing.T) {
	resetTables(t)

	voter := createAccount(t, "voter")

	_, err := ToggleHelpfulVote(voter.ID, "story", 1)
	assert.ErrorIs(t, err, ErrUnknownVoteTarget)
}

func TestToggleHelpfulVoteMissingPost(t *testing.T) {
	resetTables(t)

	voter := createAccount(t, "voter")

	_, err := ToggleHelpfulVote(voter.ID, VoteTargetPost, 9999)
	assert.Error(t, err)
}

func TestDeletePostCascadesVotesAndComments(t *testing.T) {
	resetTables(t)

	author := createAccount(t, "author")
	voter := createAccount(t, "voter")
	hub := createHub(t, "Cascade Hub")
	post := createPost(t, author, hub, "Doomed")
	comment := createComment(t, voter, post, "Also doomed")

	_, err := ToggleHelpfulVote(voter.ID, VoteTargetPost, post.ID)
	require.NoError(t, err)
	_, err = ToggleHelpfulVote(author.ID, VoteTargetComment, comment.ID)
	require.NoError(t, err)

	require.NoError(t, db.DB.Delete(&models.Post{}, post.ID).Error)

	var comments, votes int64
	db.DB.Model(&models.Comment{}).Where("post_id = ?", post.ID).Count(&comments)
	db.DB.Model(&models.HelpfulVote{}).Count(&votes)
	assert.Zero(t, comments)
	assert.Zero(t, votes)
}
