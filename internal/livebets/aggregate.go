// Package livebets aggregates the wagers of a coin-flip side and keeps the
// state of the live bets panel.
package livebets

import (
	"fmt"
	"sort"

	"github.com/saradorri/flipside/internal/domain"
	"github.com/shopspring/decimal"
)

// Row is one bettor in the panel
type Row struct {
	PlayerID       string          `json:"playerId"`
	Username       string          `json:"username"`
	ProfilePicture string          `json:"profilePicture"`
	Wager          decimal.Decimal `json:"wager" swaggertype:"string" example:"25.00"`
	ProfileURL     string          `json:"profileUrl" example:"/profile/8f8e3c1a-2b7d-4b8e-9a55-0c1d2e3f4a5b"`
}

// Summary is the aggregated state of one side
type Summary struct {
	Side  domain.Side     `json:"side" example:"Heads"`
	Total decimal.Decimal `json:"total" swaggertype:"string" example:"125.50"`
	Rows  []Row           `json:"rows"`
}

// ProfileURL is the profile page route of a player
func ProfileURL(playerID string) string {
	return fmt.Sprintf("/profile/%s", playerID)
}

// Total sums every wager of the side. An absent side totals zero.
func Total(s *domain.SideSnapshot) decimal.Decimal {
	total := decimal.Zero
	if s == nil {
		return total
	}
	for _, amount := range s.Bets {
		total = total.Add(amount)
	}
	return total
}

// Aggregate builds the summary of a side: the total wager and one row per
// player, largest wager first
func Aggregate(side domain.Side, s *domain.SideSnapshot) Summary {
	summary := Summary{Side: side, Total: Total(s), Rows: []Row{}}
	if s == nil || s.Players == nil || s.Bets == nil {
		return summary
	}

	for _, id := range s.PlayerIDs() {
		player := s.Players[id]
		summary.Rows = append(summary.Rows, Row{
			PlayerID:       id,
			Username:       player.Username,
			ProfilePicture: player.ProfilePicture,
			Wager:          s.Bets[id],
			ProfileURL:     ProfileURL(id),
		})
	}

	// PlayerIDs is sorted, so a stable sort keeps ties in id order
	sort.SliceStable(summary.Rows, func(i, j int) bool {
		return summary.Rows[i].Wager.GreaterThan(summary.Rows[j].Wager)
	})
	return summary
}

// Board is both sides of a snapshot, as streamed to live clients
type Board struct {
	Round string  `json:"round"`
	Heads Summary `json:"heads"`
	Tails Summary `json:"tails"`
}

// NewBoard aggregates both sides of snapshot
func NewBoard(snapshot *domain.GameSnapshot) Board {
	b := Board{
		Heads: Aggregate(domain.SideHeads, snapshot.For(domain.SideHeads)),
		Tails: Aggregate(domain.SideTails, snapshot.For(domain.SideTails)),
	}
	if snapshot != nil {
		b.Round = snapshot.Round
	}
	return b
}
