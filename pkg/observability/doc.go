/*
Package observability turns question engine events into logs and Prometheus metrics.

Both are exposed as domain.Hooks and can be combined with Hooks.Merge:

	metrics := observability.NewMetrics()
	hooks := metrics.Hooks().Merge(observability.LoggingHooks(logger))
*/
package observability
