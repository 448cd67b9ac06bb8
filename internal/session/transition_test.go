package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/shayari/internal/poetry"
)

func TestNext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		page    poetry.Page
		action  Action
		want    poetry.Page
		wantErr bool
	}{
		{page: poetry.PagePortal, action: ActionBegin, want: poetry.PageJourney},
		{page: poetry.PageJourney, action: ActionBack, want: poetry.PagePortal},
		{page: poetry.PageJourney, action: ActionSucceed, want: poetry.PageEnchantment},
		{page: poetry.PageEnchantment, action: ActionRestart, want: poetry.PageJourney},
		{page: poetry.PagePortal, action: ActionSucceed, want: poetry.PagePortal, wantErr: true},
		{page: poetry.PagePortal, action: ActionRestart, want: poetry.PagePortal, wantErr: true},
		{page: poetry.PageJourney, action: ActionBegin, want: poetry.PageJourney, wantErr: true},
		{page: poetry.PageEnchantment, action: ActionBack, want: poetry.PageEnchantment, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(string(tt.page)+"/"+string(tt.action), func(t *testing.T) {
			t.Parallel()

			got, err := Next(tt.page, tt.action)
			assert.Equal(t, tt.want, got)
			if !tt.wantErr {
				require.NoError(t, err)
				return
			}
			var transitionErr *TransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Contains(t, err.Error(), string(tt.action))
		})
	}
}

func TestStateOperationsFollowTransitionTable(t *testing.T) {
	t.Parallel()

	s := New()

	want, err := Next(s.Page(), ActionBegin)
	require.NoError(t, err)
	require.NoError(t, s.Begin())
	assert.Equal(t, want, s.Page())

	want, err = Next(s.Page(), ActionBack)
	require.NoError(t, err)
	require.NoError(t, s.Back())
	assert.Equal(t, want, s.Page())

	require.NoError(t, s.Begin())
	s.SetMood("joyful")
	s.SelectStyle(poetry.StyleCelebrate)
	_, ok := s.Prepare()
	require.True(t, ok)
	want, err = Next(s.Page(), ActionSucceed)
	require.NoError(t, err)
	s.Complete(poetry.Succeeded("verse"))
	assert.Equal(t, want, s.Page())

	want, err = Next(s.Page(), ActionRestart)
	require.NoError(t, err)
	require.NoError(t, s.Restart())
	assert.Equal(t, want, s.Page())
}

func TestStateRejectsMovesOutsideTransitionTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		page poetry.Page
		move func(*State) error
	}{
		{name: "begin from journey", page: poetry.PageJourney, move: (*State).Begin},
		{name: "back from portal", page: poetry.PagePortal, move: (*State).Back},
		{name: "back from enchantment", page: poetry.PageEnchantment, move: (*State).Back},
		{name: "restart from portal", page: poetry.PagePortal, move: (*State).Restart},
		{name: "restart from journey", page: poetry.PageJourney, move: (*State).Restart},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := New()
			s.GoToPage(tt.page)

			err := tt.move(&s)

			var transitionErr *TransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, tt.page, s.Page())
		})
	}
}

func TestCompleteAfterLeavingJourneyKeepsPage(t *testing.T) {
	t.Parallel()

	s := New()
	require.NoError(t, s.Begin())
	s.SetMood("joyful")
	s.SelectStyle(poetry.StyleCelebrate)
	_, ok := s.Prepare()
	require.True(t, ok)

	require.NoError(t, s.Back())
	s.Complete(poetry.Succeeded("verse"))

	assert.Equal(t, poetry.PagePortal, s.Page())
	assert.Equal(t, "verse", s.Poem())
	assert.False(t, s.IsLoading())
	assert.Empty(t, s.ErrorMessage())
}
