// Package health contains the value types of the health aggregation engine:
// probe responses, per-check results, the overall health report, and the
// reporter's configuration enums.
//
// Every value here is immutable once constructed. Responses are produced by
// probes, copied into CheckResults by the aggregator, and combined into a
// Health report by the reporter:
//
//	resp := health.Named("database").Up().WithData("host", "db-1").Build()
//
// The JSON form of a Health report is a stable contract:
//
//	{"status":"DOWN","checks":[{"name":"database","status":"DOWN","data":{"rootCause":"dial tcp: refused"}}]}
package health
