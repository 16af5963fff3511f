package metrics

import "time"

// NoopSink discards everything. Used when metrics are disabled.
type NoopSink struct{}

func (NoopSink) AttemptCompleted(int, string, time.Duration) {}

func (NoopSink) Outcome(string) {}

func (NoopSink) RequestObserved(string, string, int, time.Duration) {}
