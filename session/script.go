package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/zucenko/varidor/model"
)

var ErrBadScript = errors.New("bad script line")

// ParseScript reads an opening, one event per line:
//
//	move <up|down|left|right>
//	goto <col> <row>
//	wall <col> <row> <up|down|left|right> <left|right>
//	pick <h|v> <col> <row>
//
// Blank lines and lines starting with '#' are skipped.
func ParseScript(reader io.Reader) (events []GameEvent, err error) {
	scanner := bufio.NewScanner(reader)
	scanner.Split(bufio.ScanLines)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		ev, parseErr := parseLine(strings.Fields(strings.ToLower(line)))
		if parseErr != nil {
			return nil, fmt.Errorf("line %d %q: %w", lineNo, line, parseErr)
		}
		events = append(events, ev)
	}
	return events, scanner.Err()
}

func parseLine(fields []string) (ev GameEvent, err error) {
	args := fields[1:]
	switch fields[0] {
	case "move":
		if len(args) != 1 {
			return ev, ErrBadScript
		}
		ev.Kind = EV_MOVE
		ev.Direction, err = parseDirection(args[0])
	case "goto":
		if len(args) != 2 {
			return ev, ErrBadScript
		}
		ev.Kind = EV_MOVE_TO
		ev.Cell, err = parseCell(args[0], args[1])
	case "wall":
		if len(args) != 4 {
			return ev, ErrBadScript
		}
		ev.Kind = EV_WALL
		if ev.Cell, err = parseCell(args[0], args[1]); err != nil {
			return ev, err
		}
		if ev.Direction, err = parseDirection(args[2]); err != nil {
			return ev, err
		}
		ev.Side, err = parseSide(args[3])
	case "pick":
		if len(args) != 3 {
			return ev, ErrBadScript
		}
		ev.Kind = EV_PICK
		switch args[0] {
		case "h":
			ev.Edge.Orientation = model.Horizontal
		case "v":
			ev.Edge.Orientation = model.Vertical
		default:
			return ev, ErrBadScript
		}
		ev.Edge.Cell, err = parseCell(args[1], args[2])
	default:
		return ev, ErrBadScript
	}
	return ev, err
}

func parseDirection(s string) (model.Direction, error) {
	for _, d := range model.Directions {
		if strings.EqualFold(d.String(), s) {
			return d, nil
		}
	}
	return 0, ErrBadScript
}

func parseSide(s string) (model.Side, error) {
	switch s {
	case "left":
		return model.LeftSide, nil
	case "right":
		return model.RightSide, nil
	}
	return 0, ErrBadScript
}

func parseCell(col, row string) (model.Cell, error) {
	c, err := strconv.Atoi(col)
	if err != nil {
		return model.Cell{}, ErrBadScript
	}
	r, err := strconv.Atoi(row)
	if err != nil {
		return model.Cell{}, ErrBadScript
	}
	return model.Cell{Col: c, Row: r}, nil
}

// Replay feeds events through Loop and stops at the first one the board
// rejects.
func (gs *GameSession) Replay(ctx context.Context, events []GameEvent) error {
	for i, ev := range events {
		out, err := gs.Do(ctx, ev)
		if err != nil {
			return err
		}
		if out.Err != nil {
			return fmt.Errorf("event %d %v: %w", i+1, ev, out.Err)
		}
	}
	log.Infof("GameSession.Replay %d events", len(events))
	return nil
}
