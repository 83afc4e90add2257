// Package notify is the notification sink the auth service reports
// success and failure through — the re-expression of the browser toast
// system as a small interface.
//
// Implementations included: SlogNotifier for structured log output, Memory
// for asserting on delivered notifications in tests, and NoOp. Applications
// embedding the SDK plug in their own Notifier to surface messages in their
// UI.
package notify
