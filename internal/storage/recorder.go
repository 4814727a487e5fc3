package storage

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Recorder turns the stream of game states seen by a surface into one
// stored result per round.
type Recorder struct {
	store   *Store // Nil only logs
	logger  *log.Logger
	variant string

	last  core.GameState
	saved bool
}

// NewRecorder creates a recorder for rounds of the given variant.
func NewRecorder(store *Store, logger *log.Logger, variant string) *Recorder {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, logger: logger, variant: variant}
}

// Observe records the round the first time it reaches an outcome.
// A state that is no longer finished means the round restarted.
func (r *Recorder) Observe(st core.GameState) {
	if r.last.Finished() && !st.Finished() {
		r.saved = false
	}
	r.last = st

	if st.Finished() && !r.saved {
		outcome := OutcomeGameOver
		if st.Won {
			outcome = OutcomeWin
		}
		r.save(outcome)
	}
}

// Last returns the most recently observed state.
func (r *Recorder) Last() core.GameState {
	return r.last
}

// Abandon records the current round as quit when it has started and
// has no outcome yet.
func (r *Recorder) Abandon() {
	if r.saved || r.last.Finished() || r.last.Ticks == 0 {
		return
	}
	r.save(OutcomeQuit)
}

func (r *Recorder) save(outcome string) {
	r.saved = true
	st := r.last
	r.logger.Info("round finished", "variant", r.variant, "outcome", outcome,
		"score", st.Score, "blocks", st.Cleared)
	if r.store == nil {
		return
	}
	_, err := r.store.SaveResult(Result{
		Variant:  r.variant,
		Outcome:  outcome,
		Score:    st.Score,
		Blocks:   st.Cleared,
		Ticks:    st.Ticks,
		Duration: st.Elapsed,
	})
	if err != nil {
		r.logger.Warn("cannot record result", "err", err)
	}
}
