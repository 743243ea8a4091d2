package nesting

// retractTo scoped-retracts stream's visible line end to end (absolute
// offset from start of line), saving the true line in state.originalLine
// so it can be restored. Safe to call only when state.retracted is
// false; callers must pair every retractTo with a matching restore
// before returning control to the editor (§5 resource discipline).
func retractTo(stream Stream, state *NestState, end int) {
	if state.retracted {
		// Nested retraction within the same step chain narrows further;
		// only the outermost call needs to remember the true line.
		view, ok := stream.(retractable)
		if ok {
			view.Retract(end)
		}
		return
	}
	state.originalLine = stream.Value()
	state.retracted = true
	if view, ok := stream.(retractable); ok {
		view.Retract(end)
	}
}

// restore undoes the most recent retractTo, putting the stream's visible
// line end back to the true line end (§3 invariant 3, §5).
func restore(stream Stream, state *NestState) {
	if !state.retracted {
		return
	}
	if view, ok := stream.(retractable); ok {
		view.Restore(state.originalLine)
	}
	state.originalLine = ""
	state.retracted = false
}

// retractable is implemented by Stream implementations that support
// scoped retraction (StreamView, §2). An embedder's Stream must
// implement this for host-mode-stops-at-delimiter behavior (§2
// StreamView) to work; a Stream that doesn't is still usable for modes
// that never nest (no sub-mode configs).
type retractable interface {
	// Retract shortens Value() to its first `end` bytes without
	// mutating the real underlying line.
	Retract(end int)
	// Restore sets Value() back to full, the saved true line text.
	Restore(full string)
}
