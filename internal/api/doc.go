// Package api handles incoming HTTP requests, request validation and
// response formatting. It acts as an adapter between clients and the
// services, translating HTTP concerns to business operations and mapping
// service errors back to status codes and messages.
package api
