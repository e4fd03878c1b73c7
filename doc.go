// Package functional gives application code a disciplined way to represent
// optional values, success/failure outcomes, and accumulated validation
// errors; to compose them into pipelines; to memoize computations; and to
// execute operations under composite resilience policies (timeout, retry,
// circuit breaker, bulkhead).
package functional
