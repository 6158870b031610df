package logger

import "go.uber.org/fx"

// Module wires the service-wide slog logger into the fx graph.
var Module = fx.Provide(New)
