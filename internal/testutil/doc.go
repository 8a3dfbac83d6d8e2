// Package testutil provides harnesses for end-to-end tests of the app.
package testutil
