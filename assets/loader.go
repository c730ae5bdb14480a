package assets

import (
	"context"
	"fmt"
	"log"
)

// Result is the outcome of one model load.
type Result struct {
	ID    string
	Model Model
	Err   error
}

// Loader resolves character models on a background goroutine. The game loop
// polls for results instead of blocking a frame on the load.
type Loader struct {
	results chan Result
	// LoadFunc defaults to LoadModel; tests swap it to simulate failures.
	LoadFunc func(path string) (Model, error)
}

func NewLoader() *Loader {
	return &Loader{results: make(chan Result, 4), LoadFunc: LoadModel}
}

// Load starts loading the model at path for character id and sizes it by
// scale. Cancelling ctx abandons the load without delivering a result.
func (l *Loader) Load(ctx context.Context, id, path string, scale float64) {
	load := l.LoadFunc
	go func() {
		m, err := load(path)
		if err != nil {
			err = fmt.Errorf("load model for %s: %w", id, err)
			log.Printf("assets: %v", err)
		} else {
			m = m.Scaled(scale)
		}
		select {
		case l.results <- Result{ID: id, Model: m, Err: err}:
		case <-ctx.Done():
		}
	}()
}

// Poll returns a finished load if one is waiting.
func (l *Loader) Poll() (Result, bool) {
	select {
	case r := <-l.results:
		return r, true
	default:
		return Result{}, false
	}
}

// Results exposes the result channel for callers that want to block.
func (l *Loader) Results() <-chan Result {
	return l.results
}
