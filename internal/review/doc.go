// Package review talks to code review services.
//
// A Gateway creates, lists and merges reviews (pull requests on GitHub) for
// the branches of a stack. The None gateway is used when no service is
// configured; GitHub is backed by the REST API.
package review
