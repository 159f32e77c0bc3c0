// Package http implements the REST transport of the confkeeper cache
// service.
//
// The service exposes a shared parsed-source cache over three routes under
// /api/cache/{key} plus /api/version. Request tracing and access logging are
// handled by middleware here before requests reach the [CacheStore].
package http
