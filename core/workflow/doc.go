// Package workflow implements a blog post whose behavior follows its state.
//
// A Post starts as a Draft. RequestReview moves it to PendingReview and
// Approve moves that to Published. Every other trigger leaves the state as it
// is, so both triggers are total and never fail:
//
//	            RequestReview            Approve
//	  Draft ───────────────────▶ PendingReview ─────────▶ Published
//	   ↺ Approve                  ↺ RequestReview           ↺ both
//
// Only a published post exposes its content:
//
//	post := workflow.NewPost()
//	post.AddText("I ate a salad for lunch today")
//	post.Content() // ""
//
//	post.RequestReview()
//	post.Content() // ""
//
//	post.Approve()
//	post.Content() // "I ate a salad for lunch today"
//
// Each transition replaces the current state in a single assignment, so a
// Post always has exactly one state. Register OnTransition hooks to react to
// real state changes; identity transitions do not fire them.
package workflow
