package events

import "go.opentelemetry.io/otel"

var meter = otel.Meter("services/events")

var eventsSeenCounter, _ = meter.Int64Counter("pipeline_events_seen")
var eventsPersistedCounter, _ = meter.Int64Counter("pipeline_events_persisted")
var protectedSkippedCounter, _ = meter.Int64Counter("pipeline_protected_skipped")
var sourceFailureCounter, _ = meter.Int64Counter("pipeline_source_failures")
