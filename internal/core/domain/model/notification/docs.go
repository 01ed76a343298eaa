// Package notification provides in-app notifications, the browser push
// subscriptions they are fanned out to, and the payload and outcome types
// exchanged with a push channel.
//
// Key business rules:
//   - A notification's title and body never change after creation; only the read flag does
//   - A (user, endpoint) pair identifies at most one subscription
//   - A subscription whose endpoint is reported gone is deleted, never retried
package notification
