package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactSubmitInsertsWithoutModeration(t *testing.T) {
	repos := NewRepositories(setupServiceTestDB(t))
	contact := NewContactService(repos.Messages)
	ctx := context.Background()

	require.NoError(t, contact.Submit(ctx, ContactInput{Name: " Ann ", Email: " ann@example.com ", Message: "Let's build <b>something</b>"}))

	messages, err := repos.Messages.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, "Ann", messages[0].Name)
	assert.Equal(t, "ann@example.com", messages[0].Email)
	assert.Equal(t, "Let's build something", messages[0].Message)
	assert.False(t, repos.Messages.Moderated())
}

func TestContactSubmitValidation(t *testing.T) {
	repos := NewRepositories(setupServiceTestDB(t))
	contact := NewContactService(repos.Messages)
	ctx := context.Background()

	cases := []struct {
		input ContactInput
		field string
		rule  string
	}{
		{input: ContactInput{Email: "a@b.co", Message: "hi"}, field: "name", rule: "required"},
		{input: ContactInput{Name: "Ann", Message: "hi"}, field: "email", rule: "required"},
		{input: ContactInput{Name: "Ann", Email: "not-an-email", Message: "hi"}, field: "email", rule: "email"},
		{input: ContactInput{Name: "Ann", Email: "a@b.co", Message: "  "}, field: "message", rule: "required"},
	}

	for _, tc := range cases {
		err := contact.Submit(ctx, tc.input)
		var fieldErr *ValidationError
		require.ErrorAs(t, err, &fieldErr)
		assert.Equal(t, tc.field, fieldErr.Field)
		assert.Equal(t, tc.rule, fieldErr.Rule)
	}

	total, err := repos.Messages.Count(ctx, false)
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestContactSubmitStoreFailure(t *testing.T) {
	repos, _, _, _ := failingRepositories()
	err := NewContactService(repos.Messages).Submit(context.Background(), ContactInput{Name: "Ann", Email: "ann@example.com", Message: "hi"})
	assert.ErrorIs(t, err, ErrStore)
}

func TestContactListAndDelete(t *testing.T) {
	repos := NewRepositories(setupServiceTestDB(t))
	contact := NewContactService(repos.Messages)
	ctx := context.Background()

	require.NoError(t, contact.Submit(ctx, ContactInput{Name: "Ann", Email: "ann@example.com", Message: "first"}))
	require.NoError(t, contact.Submit(ctx, ContactInput{Name: "Bob", Email: "bob@example.com", Message: "second"}))

	messages, err := contact.List(ctx)
	require.NoError(t, err)
	require.Len(t, messages, 2)

	require.NoError(t, contact.Delete(ctx, messages[0].ID))
	remaining, err := contact.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.NotEqual(t, messages[0].ID, remaining[0].ID)

	err = contact.Delete(ctx, messages[0].ID)
	assert.ErrorIs(t, err, ErrStore)
}
