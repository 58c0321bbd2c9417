package model

// Observer receives callbacks about simulation progress, independent of the
// Event trace emitted through Sink. A nil Observer is never invoked by the
// executor; NoOpObserver (root package) is provided for callers that want
// an explicit, inert value.
type Observer interface {
	ObserveOp(kind OperationKind, durationMs int)
	ObserveInjection()
	ObserveInterruption()
}
