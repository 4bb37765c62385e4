package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	log "github.com/sirupsen/logrus"
	"github.com/zucenko/varidor/model"
	"github.com/zucenko/varidor/session"
)

const (
	frame     = 16 * time.Millisecond
	panelGap  = 4
	logLines  = 8
	helpLines = 3
)

var (
	styleBoard = tcell.StyleDefault.Background(tcell.ColorDarkOliveGreen)
	styleCell  = tcell.StyleDefault.Background(tcell.ColorDarkGreen).Foreground(tcell.ColorGray)
	styleWall  = tcell.StyleDefault.Background(tcell.ColorDarkOliveGreen).Foreground(tcell.ColorSandyBrown).Bold(true)
	stylePick  = tcell.StyleDefault.Background(tcell.ColorDarkOliveGreen).Foreground(tcell.ColorYellow).Bold(true)
	styleText  = tcell.StyleDefault
	styleDim   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleError = tcell.StyleDefault.Foreground(tcell.ColorRed)
)

var styleTokens = [2]tcell.Style{
	model.White: tcell.StyleDefault.Background(tcell.ColorWhite).Foreground(tcell.ColorBlack).Bold(true),
	model.Black: tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite).Bold(true),
}

var pathColors = [2]tcell.Color{
	model.White: tcell.ColorLightCyan,
	model.Black: tcell.ColorOrange,
}

// Game is the hot-seat terminal front end of one GameSession.
type Game struct {
	screen   tcell.Screen
	ctx      context.Context
	gs       *session.GameSession
	layout   Layout
	view     session.View
	animator *Animator
	sound    *Sound

	// token screen positions, moved by the animator
	tokens  [2][2]float32
	pressed bool
	status  string
}

func NewGame(ctx context.Context, gs *session.GameSession) (*Game, error) {
	out, err := gs.Do(ctx, session.GameEvent{Kind: session.EV_VIEW})
	if err != nil {
		return nil, err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	if err := screen.Init(); err != nil {
		return nil, err
	}
	screen.EnableMouse()

	g := &Game{
		screen:   screen,
		ctx:      ctx,
		gs:       gs,
		layout:   Layout{Size: out.View.Size},
		view:     out.View,
		animator: NewAnimator(),
		sound:    NewSound(),
	}
	g.snapTokens()
	return g, nil
}

func (g *Game) snapTokens() {
	for _, id := range model.Players {
		x, y := g.layout.center(g.view.Players[id].Cell)
		g.tokens[id] = [2]float32{float32(x), float32(y)}
	}
}

// send hands ev to the session and takes over the resulting view.
func (g *Game) send(ev session.GameEvent) error {
	out, err := g.gs.Do(g.ctx, ev)
	if err != nil {
		return err
	}
	prev := g.view
	g.view = out.View

	if out.Err != nil {
		g.status = fmt.Sprintf("%s: %v", out.Player, out.Err)
		g.sound.Rejected()
		return nil
	}
	g.status = ""
	if ev.Kind != session.EV_PICK || g.view.Pick == nil {
		g.sound.Accepted()
	}

	for _, id := range model.Players {
		to := g.view.Players[id].Cell
		if prev.Players[id].Cell == to {
			continue
		}
		if g.animator.Busy() {
			g.animator = NewAnimator()
			for _, other := range model.Players {
				x, y := g.layout.center(prev.Players[other].Cell)
				g.tokens[other] = [2]float32{float32(x), float32(y)}
			}
		}
		x, y := g.layout.center(to)
		g.animator.slide(&g.tokens[id], x, y, func() {
			log.Debugf("Game %v arrived at %v", id, to)
		})
	}
	return nil
}

// handleInput returns false when the game should end.
func (g *Game) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		gev, ok, quit := routeKey(ev.Key(), ev.Rune())
		if quit {
			return false
		}
		if ok {
			return g.dispatch(gev)
		}
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		click := down && !g.pressed
		g.pressed = down
		if click {
			x, y := ev.Position()
			if gev, ok := routeClick(g.layout, x, y); ok {
				return g.dispatch(gev)
			}
		}
	case *tcell.EventResize:
		g.screen.Sync()
	}
	return true
}

func (g *Game) dispatch(ev session.GameEvent) bool {
	if err := g.send(ev); err != nil {
		log.Warnf("Game.dispatch %v: %v", ev, err)
		return false
	}
	return true
}

func (g *Game) run() {
	ticker := time.NewTicker(frame)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := g.screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	for {
		select {
		case <-g.ctx.Done():
			return
		case ev := <-eventChan:
			if !g.handleInput(ev) {
				return
			}
		case <-ticker.C:
			g.animator.Update(float32(frame.Seconds()))
			g.draw()
		}
	}
}

func (g *Game) draw() {
	g.screen.Clear()
	g.drawBoard()
	g.drawTokens()
	g.drawPanel()
	g.screen.Show()
}

func (g *Game) drawBoard() {
	l, v := g.layout, g.view
	grid := model.Grid{Size: v.Size}

	for x := originX - 1; x < l.Width(); x++ {
		for y := originY - 1; y <= l.Height()-1; y++ {
			g.screen.SetContent(x, y, ' ', nil, styleBoard)
		}
	}

	for c := 0; c < v.Size; c++ {
		for r := 0; r < v.Size; r++ {
			cell := model.Cell{Col: c, Row: r}

			x, y := l.cellOrigin(cell)
			for i := 0; i < cellW; i++ {
				g.screen.SetContent(x+i, y, ' ', nil, styleCell)
			}
			cx, cy := l.center(cell)
			g.screen.SetContent(cx, cy, '·', nil, g.pathStyle(cell))

			if e := (model.Edge{Cell: cell, Orientation: model.Vertical}); grid.ValidEdge(e) {
				x, y := l.verticalSlot(cell)
				if glyph, style, ok := g.slotGlyph(e, '┃', '│'); ok {
					g.screen.SetContent(x, y, glyph, nil, style)
				}
			}
			if e := (model.Edge{Cell: cell, Orientation: model.Horizontal}); grid.ValidEdge(e) {
				x, y := l.horizontalSlot(cell)
				if glyph, style, ok := g.slotGlyph(e, '━', '─'); ok {
					for i := 0; i < cellW; i++ {
						g.screen.SetContent(x+i, y, glyph, nil, style)
					}
				}
			}
			if grid.ValidCrossing(cell) && v.HasCrossing(cell) {
				x, y := l.crossing(cell)
				g.screen.SetContent(x, y, '╋', nil, styleWall)
			}
		}
	}
}

func (g *Game) slotGlyph(e model.Edge, placed, picked rune) (rune, tcell.Style, bool) {
	switch {
	case g.view.HasWall(e):
		return placed, styleWall, true
	case g.view.Pick != nil && *g.view.Pick == e:
		return picked, stylePick, true
	}
	return 0, styleBoard, false
}

func (g *Game) pathStyle(c model.Cell) tcell.Style {
	white, black := g.view.OnPath(c)
	switch {
	case white && black:
		return styleCell.Foreground(tcell.ColorFuchsia).Bold(true)
	case white:
		return styleCell.Foreground(pathColors[model.White]).Bold(true)
	case black:
		return styleCell.Foreground(pathColors[model.Black]).Bold(true)
	}
	return styleCell
}

func (g *Game) drawTokens() {
	glyphs := [2]rune{model.White: 'W', model.Black: 'B'}
	for _, id := range model.Players {
		x := int(g.tokens[id][0] + 0.5)
		y := int(g.tokens[id][1] + 0.5)
		g.screen.SetContent(x, y, glyphs[id], nil, styleTokens[id])
	}
}

func (g *Game) drawPanel() {
	v := g.view
	x := g.layout.Width() + panelGap
	y := originY

	g.drawText(x, y, "VARIDOR", styleText.Bold(true))
	y += 2
	if v.State == session.GS_OVER {
		g.drawText(x, y, fmt.Sprintf("%s wins", v.Winner), styleText.Bold(true))
	} else {
		g.drawText(x, y, fmt.Sprintf("%s to play", v.Current), styleText)
	}
	y++
	for _, id := range model.Players {
		p := v.Players[id]
		shortest := 0
		if len(p.Paths) > 0 {
			shortest = len(p.Paths[0])
		}
		g.drawText(x, y, fmt.Sprintf("%-5s walls:%d  distance:%d  paths:%d", id, p.Walls, shortest, len(p.Paths)),
			styleText.Foreground(pathColors[id]))
		y++
	}
	y++
	if g.status != "" {
		g.drawText(x, y, g.status, styleError)
	}
	y += 2

	lines := v.Log
	if len(lines) > logLines {
		lines = lines[len(lines)-logLines:]
	}
	for _, line := range lines {
		g.drawText(x, y, line, styleDim)
		y++
	}

	_, h := g.screen.Size()
	help := []string{
		"arrows/hjkl move   click cell: move there",
		"click two wall slots: place wall",
		"q/esc quit",
	}
	top := h - helpLines
	if top < y+1 {
		top = y + 1
	}
	for i, line := range help {
		g.drawText(x, top+i, line, styleDim)
	}
}

func (g *Game) drawText(x, y int, s string, style tcell.Style) {
	for _, r := range s {
		g.screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func (g *Game) cleanup() {
	g.sound.Close()
	g.screen.Fini()
}
