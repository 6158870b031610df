package router

import "go.uber.org/fx"

// Module registers the storefront route table for the fx runtime.
var Module = fx.Provide(Setup)
