package tutorial

import "time"

// emptyScene draws nothing; the window chapters only open a window and,
// in 1_1_2, clear it.
type emptyScene struct{}

func setupEmpty(*Env) (Scene, error) {
	return emptyScene{}, nil
}

func (emptyScene) Draw(time.Duration) {}

func (emptyScene) Delete() {}
