// Package health provides HTTP handlers for liveness and readiness probes.
//
// [LivenessHandler] always answers OK while the process runs.
// [ReadinessHandler] runs a set of named [Checks] concurrently and answers
// 503 if any of them fails or times out.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "redis": redis.Healthcheck(client),
//	}, health.WithTimeout(3*time.Second), health.WithLogger(log)))
//
// Responses are plain text by default. Send Accept: application/json or
// ?format=json for the detailed form:
//
//	{"status":"unhealthy","checks":{"redis":{"status":"unhealthy","error":"connection refused"}}}
package health
