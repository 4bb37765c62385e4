package main

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

const slideSeconds = 0.18

// Action is what runs while a tween advances and once it is done.
type Action struct {
	nexts    []func(a *Animator)
	onChange func(float32)
	onFinish []func()
}

func (a *Action) addOnFinish(f func()) {
	a.onFinish = append(a.onFinish, f)
}

// next queues t to start when the tween owning a finishes.
func (a *Action) next(t *gween.Tween) *Action {
	action := &Action{}
	a.nexts = append(a.nexts,
		func(an *Animator) {
			an.Tweens[t] = action
		})
	return action
}

type Animator struct {
	Tweens map[*gween.Tween]*Action
}

func NewAnimator() *Animator {
	return &Animator{Tweens: make(map[*gween.Tween]*Action)}
}

func (an *Animator) Start(t *gween.Tween, onChange func(float32)) *Action {
	a := &Action{onChange: onChange}
	an.Tweens[t] = a
	return a
}

func (an *Animator) Busy() bool {
	return len(an.Tweens) > 0
}

// Update advances every tween by dt seconds.
func (an *Animator) Update(dt float32) {
	for t, a := range an.Tweens {
		curr, finished := t.Update(dt)
		if a.onChange != nil {
			a.onChange(curr)
		}
		if finished {
			for _, onFinish := range a.onFinish {
				onFinish()
			}
			for _, next := range a.nexts {
				next(an)
			}
			delete(an.Tweens, t)
		}
	}
}

// slide moves a token from one screen position to another, horizontal leg
// first.
func (an *Animator) slide(pos *[2]float32, toX, toY int, done func()) {
	fromX, fromY := pos[0], pos[1]
	horizontal := an.Start(gween.New(fromX, float32(toX), slideSeconds, ease.OutQuad), func(v float32) {
		pos[0] = v
	})
	vertical := horizontal.next(gween.New(fromY, float32(toY), slideSeconds, ease.OutQuad))
	vertical.onChange = func(v float32) {
		pos[1] = v
	}
	vertical.addOnFinish(done)
}
