package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zucenko/varidor/model"
)

func newSession(t *testing.T, size int) *GameSession {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Size = size
	gs, err := NewGameSession(cfg)
	require.NoError(t, err)
	return gs
}

func TestNewGameSession(t *testing.T) {
	gs := newSession(t, 5)

	assert.Equal(t, GS_PLAY, gs.State)
	assert.Equal(t, model.White, gs.Current)
	assert.Equal(t, []string{"Game started"}, gs.Logbook)

	_, err := NewGameSession(Config{Size: 1})
	assert.Error(t, err)
}

func TestTurnAlternatesOnlyOnSuccess(t *testing.T) {
	gs := newSession(t, 5)

	out := gs.Turn(GameEvent{Kind: EV_MOVE, Direction: model.Up})
	assert.Equal(t, model.ErrMoveBoardBoundary, out.Err)
	assert.Equal(t, model.White, out.Player)
	assert.Equal(t, model.White, gs.Current)

	out = gs.Turn(GameEvent{Kind: EV_MOVE, Direction: model.Down})
	require.NoError(t, out.Err)
	assert.Equal(t, model.White, out.Player)
	assert.Equal(t, model.Black, gs.Current)
	assert.Equal(t, model.Black, out.View.Current)
	assert.Equal(t, model.Cell{Col: 2, Row: 3}, out.View.Players[model.White].Cell)

	out = gs.Turn(GameEvent{Kind: EV_WALL, Cell: model.Cell{Col: 2, Row: 3}, Direction: model.Down, Side: model.LeftSide})
	require.NoError(t, out.Err)
	assert.Equal(t, model.Black, out.Player)
	assert.Equal(t, model.White, gs.Current)
	assert.Equal(t, model.DefaultWalls-1, out.View.Players[model.Black].Walls)
	assert.Len(t, out.View.Walls, 1)

	assert.Equal(t, []string{
		"Game started",
		"WHITE: outer boundary of board reached",
		"WHITE moves Down to (2,3)",
		"BLACK places Horizontal wall at (2,2)",
	}, gs.Logbook)
}

func TestTwoPickWall(t *testing.T) {
	gs := newSession(t, 5)
	first := model.Edge{Cell: model.Cell{Col: 0, Row: 1}, Orientation: model.Vertical}
	second := model.Edge{Cell: model.Cell{Col: 0, Row: 2}, Orientation: model.Vertical}

	out := gs.Turn(GameEvent{Kind: EV_PICK, Edge: first})
	require.NoError(t, out.Err)
	require.NotNil(t, out.View.Pick)
	assert.Equal(t, first, *out.View.Pick)
	assert.Equal(t, model.White, gs.Current, "a single pick is not a turn")

	out = gs.Turn(GameEvent{Kind: EV_PICK, Edge: second})
	require.NoError(t, out.Err)
	assert.Nil(t, out.View.Pick)
	assert.Equal(t, []model.Wall{{Anchor: model.Cell{Col: 0, Row: 1}, Orientation: model.Vertical}}, out.View.Walls)
	assert.True(t, out.View.HasWall(first))
	assert.True(t, out.View.HasWall(second))
	assert.True(t, out.View.HasCrossing(model.Cell{Col: 0, Row: 1}))
	assert.Equal(t, model.Black, gs.Current)
}

func TestTwoPickNotConnected(t *testing.T) {
	gs := newSession(t, 5)

	gs.Turn(GameEvent{Kind: EV_PICK, Edge: model.Edge{Cell: model.Cell{Col: 0, Row: 1}, Orientation: model.Vertical}})
	out := gs.Turn(GameEvent{Kind: EV_PICK, Edge: model.Edge{Cell: model.Cell{Col: 3, Row: 1}, Orientation: model.Horizontal}})

	assert.Equal(t, model.ErrNotConnected, out.Err)
	assert.Nil(t, out.View.Pick)
	assert.Empty(t, out.View.Walls)
	assert.Equal(t, model.White, gs.Current)
	assert.Equal(t, "WHITE: picked segments are not connected", gs.Logbook[len(gs.Logbook)-1])
}

func TestMoveClearsPick(t *testing.T) {
	gs := newSession(t, 5)

	gs.Turn(GameEvent{Kind: EV_PICK, Edge: model.Edge{Cell: model.Cell{Col: 0, Row: 1}, Orientation: model.Vertical}})
	out := gs.Turn(GameEvent{Kind: EV_MOVE_TO, Cell: model.Cell{Col: 1, Row: 4}})

	require.NoError(t, out.Err)
	assert.Nil(t, out.View.Pick)
}

func TestGameOver(t *testing.T) {
	gs := newSession(t, 3)

	steps := []model.Direction{model.Down, model.Up, model.Down}
	var out Outcome
	for _, d := range steps {
		out = gs.Turn(GameEvent{Kind: EV_MOVE, Direction: d})
		require.NoError(t, out.Err)
	}

	assert.Equal(t, GS_OVER, gs.State)
	assert.Equal(t, model.White, gs.Winner)
	assert.Equal(t, model.White, out.View.Winner)
	assert.Equal(t, "WHITE wins", gs.Logbook[len(gs.Logbook)-1])

	out = gs.Turn(GameEvent{Kind: EV_MOVE, Direction: model.Up})
	assert.Equal(t, ErrGameOver, out.Err)
	out = gs.Turn(GameEvent{Kind: EV_VIEW})
	assert.NoError(t, out.Err)
	assert.Equal(t, GS_OVER, out.View.State)
}

func TestUnknownEvent(t *testing.T) {
	gs := newSession(t, 3)

	out := gs.Turn(GameEvent{Kind: EventKind(42)})
	assert.Equal(t, ErrUnknownEvent, out.Err)
	assert.Equal(t, model.White, gs.Current)
}

func TestViewIsACopy(t *testing.T) {
	gs := newSession(t, 5)

	out := gs.Turn(GameEvent{Kind: EV_VIEW})
	out.View.Log[0] = "changed"
	out.View.Players[model.White].Paths[0][0].Cell = model.Cell{}

	again := gs.Turn(GameEvent{Kind: EV_VIEW})
	assert.Equal(t, "Game started", again.View.Log[0])
	assert.Equal(t, model.Cell{Col: 2, Row: 3}, again.View.Players[model.White].Paths[0][0].Cell)
}

func TestViewOnPath(t *testing.T) {
	gs := newSession(t, 5)
	v := gs.Turn(GameEvent{Kind: EV_VIEW}).View

	white, black := v.OnPath(model.Cell{Col: 2, Row: 2})
	assert.True(t, white)
	assert.True(t, black)
	white, black = v.OnPath(model.Cell{Col: 0, Row: 2})
	assert.False(t, white)
	assert.False(t, black)
}

func TestLoopSerializesEvents(t *testing.T) {
	gs := newSession(t, 9)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- gs.Loop(ctx) }()

	var wg sync.WaitGroup
	results := make(chan Outcome, 40)
	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ev := GameEvent{Kind: EV_WALL, Cell: model.Cell{Col: i % 8, Row: i / 8}, Direction: model.Up, Side: model.RightSide}
			out, err := gs.Do(ctx, ev)
			assert.NoError(t, err)
			results <- out
		}(i)
	}
	wg.Wait()
	close(results)

	placed := 0
	for out := range results {
		if out.Err == nil {
			placed++
		}
	}
	out, err := gs.Do(ctx, GameEvent{Kind: EV_VIEW})
	require.NoError(t, err)
	assert.Len(t, out.View.Walls, placed)
	assert.Equal(t, 2*model.DefaultWalls-placed,
		out.View.Players[model.White].Walls+out.View.Players[model.Black].Walls)

	cancel()
	select {
	case err := <-done:
		assert.Equal(t, context.Canceled, err)
	case <-time.After(time.Second):
		t.Fatal("loop did not stop")
	}
}

func TestDoAfterCancel(t *testing.T) {
	gs := newSession(t, 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gs.Do(ctx, GameEvent{Kind: EV_VIEW})
	assert.Equal(t, context.Canceled, err)
}
