package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Side is one outcome of a coin flip
type Side string

const (
	SideHeads Side = "Heads"
	SideTails Side = "Tails"
)

// ParseSide accepts "heads"/"tails" in any case
func ParseSide(s string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "heads":
		return SideHeads, nil
	case "tails":
		return SideTails, nil
	}
	return "", NewValidationError("side", "must be Heads or Tails")
}

// PlayerInfo is what the game server knows about a bettor
type PlayerInfo struct {
	Username       string `json:"username"`
	ProfilePicture string `json:"profilePicture"`
}

// SideSnapshot holds the bets placed on one side. Players and Bets share
// the same key set.
type SideSnapshot struct {
	Players map[string]PlayerInfo      `json:"players"`
	Bets    map[string]decimal.Decimal `json:"bets"`
}

// Validate checks that players and bets describe the same bettors and
// that no wager is negative
func (s *SideSnapshot) Validate() error {
	if s == nil {
		return nil
	}
	for id := range s.Players {
		if _, ok := s.Bets[id]; !ok {
			return NewMalformedSnapshotError(fmt.Sprintf("player %q has no bet", id))
		}
	}
	for id, amount := range s.Bets {
		if _, ok := s.Players[id]; !ok {
			return NewMalformedSnapshotError(fmt.Sprintf("bet for unknown player %q", id))
		}
		if amount.IsNegative() {
			return NewMalformedSnapshotError(fmt.Sprintf("negative bet for player %q", id))
		}
	}
	return nil
}

// PlayerIDs returns the bettor ids in lexical order
func (s *SideSnapshot) PlayerIDs() []string {
	if s == nil {
		return nil
	}
	ids := make([]string, 0, len(s.Players))
	for id := range s.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// GameSnapshot is a point-in-time read of the live game's bet state
type GameSnapshot struct {
	Round      string        `json:"round"`
	Heads      *SideSnapshot `json:"heads"`
	Tails      *SideSnapshot `json:"tails"`
	ReceivedAt time.Time     `json:"-"`
}

// For returns the sub-snapshot of the given side
func (g *GameSnapshot) For(side Side) *SideSnapshot {
	if g == nil {
		return nil
	}
	if side == SideHeads {
		return g.Heads
	}
	return g.Tails
}

// Validate checks both sides
func (g *GameSnapshot) Validate() error {
	if err := g.Heads.Validate(); err != nil {
		return err
	}
	return g.Tails.Validate()
}

// SnapshotStore holds the latest validated snapshot
type SnapshotStore interface {
	Latest() (*GameSnapshot, bool)
	Put(snapshot *GameSnapshot)
	Subscribe() (<-chan *GameSnapshot, func())
}
