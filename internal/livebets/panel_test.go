package livebets

import (
	"testing"
	"time"

	"github.com/saradorri/flipside/internal/debounce"
	"github.com/saradorri/flipside/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPanel(side domain.Side) (*Panel, *debounce.ManualClock) {
	clock := debounce.NewManualClock(time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC))
	return NewPanel(side, clock, Options{}), clock
}

func createTestSnapshot() *domain.GameSnapshot {
	return &domain.GameSnapshot{
		Round: "round-1",
		Heads: createTestSide(map[string]string{"alice": "30", "bob": "20"}),
		Tails: createTestSide(map[string]string{"carol": "7.5"}),
	}
}

func TestPanelSelectsSide(t *testing.T) {
	heads, _ := newTestPanel(domain.SideHeads)
	tails, _ := newTestPanel(domain.SideTails)
	snapshot := createTestSnapshot()

	require.NoError(t, heads.Apply(snapshot))
	require.NoError(t, tails.Apply(snapshot))

	assert.True(t, dec("50").Equal(heads.Total()))
	assert.Len(t, heads.Rows(), 2)
	assert.True(t, dec("7.5").Equal(tails.Total()))
	assert.Len(t, tails.Rows(), 1)

	state, err := heads.State()
	assert.Equal(t, StateReady, state)
	assert.NoError(t, err)
}

func TestPanelRecomputesOnNewSnapshot(t *testing.T) {
	panel, _ := newTestPanel(domain.SideHeads)
	require.NoError(t, panel.Apply(createTestSnapshot()))

	next := createTestSnapshot()
	next.Heads.Players["dave"] = domain.PlayerInfo{Username: "dave"}
	next.Heads.Bets["dave"] = dec("100")
	require.NoError(t, panel.Apply(next))

	assert.True(t, dec("150").Equal(panel.Total()))
	rows := panel.Rows()
	require.Len(t, rows, 3)
	assert.Equal(t, "dave", rows[0].PlayerID)
}

func TestPanelSummaryIsConsistentUnderApply(t *testing.T) {
	panel, _ := newTestPanel(domain.SideHeads)
	small := &domain.GameSnapshot{Round: "a", Heads: createTestSide(map[string]string{"alice": "1"})}
	large := &domain.GameSnapshot{Round: "b", Heads: createTestSide(map[string]string{"bob": "20", "carol": "30", "dave": "50"})}
	require.NoError(t, panel.Apply(small))

	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			next := small
			if i%2 == 0 {
				next = large
			}
			_ = panel.Apply(next)
		}
	}()

	for i := 0; i < 2000; i++ {
		summary := panel.Summary()
		sum := decimal.Zero
		for _, row := range summary.Rows {
			sum = sum.Add(row.Wager)
		}
		if !assert.True(t, sum.Equal(summary.Total), "total %s rows %s", summary.Total, sum) {
			break
		}
	}
	close(stop)
	<-done
}

func TestPanelEmptyStates(t *testing.T) {
	tests := []struct {
		name     string
		snapshot *domain.GameSnapshot
	}{
		{name: "Nil_Snapshot", snapshot: nil},
		{name: "Missing_Side", snapshot: &domain.GameSnapshot{Tails: createTestSide(map[string]string{"a": "1"})}},
		{name: "Missing_Players", snapshot: &domain.GameSnapshot{Heads: &domain.SideSnapshot{Bets: map[string]decimal.Decimal{"a": dec("1")}}}},
		{name: "Missing_Bets", snapshot: &domain.GameSnapshot{Heads: &domain.SideSnapshot{Players: map[string]domain.PlayerInfo{"a": {}}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			panel, _ := newTestPanel(domain.SideHeads)
			require.NoError(t, panel.Apply(createTestSnapshot()))

			assert.NoError(t, panel.Apply(tt.snapshot))

			state, err := panel.State()
			assert.Equal(t, StateWaiting, state)
			assert.NoError(t, err)
			assert.True(t, panel.Total().IsZero())
			assert.Empty(t, panel.Rows())
		})
	}
}

func TestPanelRejectsMalformedSide(t *testing.T) {
	panel, _ := newTestPanel(domain.SideHeads)
	snapshot := createTestSnapshot()
	delete(snapshot.Heads.Bets, "alice")

	err := panel.Apply(snapshot)
	require.Error(t, err)

	appErr, ok := domain.IsAppError(err)
	require.True(t, ok)
	assert.Equal(t, domain.ErrCodeMalformedSnapshot, appErr.Code)

	state, stateErr := panel.State()
	assert.Equal(t, StateInvalid, state)
	assert.Equal(t, err, stateErr)
	assert.Empty(t, panel.Rows())
}

func TestPanelHoverAfterDwell(t *testing.T) {
	panel, clock := newTestPanel(domain.SideHeads)
	require.NoError(t, panel.Apply(createTestSnapshot()))

	panel.Enter("alice")
	clock.Advance(499 * time.Millisecond)
	_, shown := panel.Preview()
	assert.False(t, shown)

	clock.Advance(time.Millisecond)
	row, shown := panel.Preview()
	require.True(t, shown)
	assert.Equal(t, "alice", row.PlayerID)
	assert.Equal(t, "user_alice", row.Username)
}

func TestPanelShortDwellShowsNothing(t *testing.T) {
	panel, clock := newTestPanel(domain.SideHeads)
	require.NoError(t, panel.Apply(createTestSnapshot()))

	panel.Enter("alice")
	clock.Advance(300 * time.Millisecond)
	panel.Leave()
	clock.Advance(time.Second)

	_, shown := panel.Preview()
	assert.False(t, shown)
	assert.Equal(t, "", panel.Hovered())
	assert.Equal(t, 0, clock.Pending())
}

func TestPanelReentryKeepsLatestPlayer(t *testing.T) {
	panel, clock := newTestPanel(domain.SideHeads)
	require.NoError(t, panel.Apply(createTestSnapshot()))

	panel.Enter("alice")
	clock.Advance(400 * time.Millisecond)
	panel.Enter("bob")
	assert.Equal(t, 1, clock.Pending())

	clock.Advance(400 * time.Millisecond)
	assert.Equal(t, "", panel.Hovered())

	clock.Advance(100 * time.Millisecond)
	row, shown := panel.Preview()
	require.True(t, shown)
	assert.Equal(t, "bob", row.PlayerID)
}

func TestPanelLeaveHidesShownPreview(t *testing.T) {
	panel, clock := newTestPanel(domain.SideHeads)
	require.NoError(t, panel.Apply(createTestSnapshot()))

	panel.Enter("bob")
	clock.Advance(time.Second)
	assert.Equal(t, "bob", panel.Hovered())

	panel.Leave()
	_, shown := panel.Preview()
	assert.False(t, shown)
}

func TestPanelHoverSurvivesSnapshotUntilPlayerLeavesRound(t *testing.T) {
	panel, clock := newTestPanel(domain.SideHeads)
	require.NoError(t, panel.Apply(createTestSnapshot()))

	panel.Enter("bob")
	clock.Advance(time.Second)

	require.NoError(t, panel.Apply(createTestSnapshot()))
	_, shown := panel.Preview()
	assert.True(t, shown)

	next := createTestSnapshot()
	delete(next.Heads.Players, "bob")
	delete(next.Heads.Bets, "bob")
	require.NoError(t, panel.Apply(next))
	_, shown = panel.Preview()
	assert.False(t, shown)
}

func TestPanelCloseCancelsPendingHover(t *testing.T) {
	panel, clock := newTestPanel(domain.SideTails)
	panel.Enter("carol")
	panel.Close()
	clock.Advance(time.Second)

	assert.Equal(t, "", panel.Hovered())
	assert.Equal(t, 0, clock.Pending())
}
