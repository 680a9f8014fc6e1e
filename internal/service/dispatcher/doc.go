// Package dispatcher delivers a fired alarm through every notification channel.
//
// Voice is attempted first and is best effort; the direct message is always
// attempted afterwards. Each channel yields its own Outcome and no failure
// escapes Deliver.
package dispatcher
