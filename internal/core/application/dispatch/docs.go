// Package dispatch turns order saves into downstream side effects.
//
// The save path calls OrderLifecycleTracker before writing an order and
// DispatchCoordinator after the transaction commits. The coordinator asks
// services.DispatchPolicy what to do and then:
//   - notifies the assigned driver inline through NotificationDispatcher, which
//     persists the notification and fans it out to every push subscription
//   - enqueues a delivery status email task for the background workers
//
// Side effects are best-effort. Their failures are logged and counted, never
// returned to the save path.
package dispatch
