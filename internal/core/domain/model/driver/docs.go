// Package driver provides the Driver aggregate: the delivery profile linked
// one-to-one with a user account.
//
// The dispatch flow only reads drivers. It resolves the user behind an
// assigned driver so notifications reach the right account.
package driver
