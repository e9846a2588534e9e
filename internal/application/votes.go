package application

import (
	"sync"

	"github.com/bnema/pixeloracle/internal/domain"
)

type ThemeVoteTally struct {
	mu    sync.Mutex
	votes map[string]int
}

func NewThemeVoteTally() *ThemeVoteTally {
	return &ThemeVoteTally{votes: make(map[string]int)}
}

func (t *ThemeVoteTally) Cast(theme string, count int) {
	theme = domain.NormalizeTheme(theme)
	if theme == "" || count <= 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.votes[theme] += count
}

// TakeWinner returns the most voted theme and clears the tally in the same critical section.
// Ties go to the alphabetically first theme.
func (t *ThemeVoteTally) TakeWinner() (string, bool) {
	t.mu.Lock()
	votes := t.votes
	t.votes = make(map[string]int)
	t.mu.Unlock()

	winner := ""
	best := 0
	for theme, count := range votes {
		if count > best || (count == best && theme < winner) {
			winner = theme
			best = count
		}
	}

	return winner, best > 0
}

func (t *ThemeVoteTally) Counts() map[string]int {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make(map[string]int, len(t.votes))
	for theme, count := range t.votes {
		out[theme] = count
	}
	return out
}
