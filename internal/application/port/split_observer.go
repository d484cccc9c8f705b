package port

import "github.com/bnema/splitter/internal/domain/entity"

// SplitObserver receives the percentages of a split after every applied change.
// It is the only way presentation code learns about new sizes; rejected drags
// and skipped updates are never reported.
type SplitObserver interface {
	// OnSplitChanged is called synchronously, after the change is committed and
	// outside any engine lock, so implementations may read the engine back.
	OnSplitChanged(change entity.SplitChange)
}

// SplitObserverFunc adapts a plain function to SplitObserver.
type SplitObserverFunc func(change entity.SplitChange)

// OnSplitChanged calls f(change).
func (f SplitObserverFunc) OnSplitChanged(change entity.SplitChange) {
	f(change)
}
