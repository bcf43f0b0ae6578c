package sonr

import "github.com/sonr-go/sonr/system"

// Run drives root against engine until the engine's control channel
// receives system.Stop. Grounded on original_source/src/system.rs's
// System::start: each non-control readiness event is delivered to the
// reactor tree as a KindEvent Reaction, then the tree is asked to
// KindContinue repeatedly until it reports Continue, draining whatever
// work the one edge-triggered notification made available (the
// "edge-triggered obligation" in spec.md §4.C/§9 — the selector will not
// refire until the underlying descriptor's readiness changes again).
func Run[O any](engine *system.Engine, root Reactor[system.Event, O]) error {
	engine.Start()

	var buf [64]system.Event
	for {
		events, stop, err := engine.Next(buf[:0])
		if err != nil {
			return err
		}

		for _, ev := range events {
			root.React(Event[system.Event](ev))
			for {
				out := root.React(Continue[system.Event]())
				if out.Kind == KindContinue {
					break
				}
			}
		}

		if stop {
			return nil
		}
	}
}
