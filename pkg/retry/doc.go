// Package retry expresses bounded retry loops as plain values: a Policy
// combines a total attempt budget, a BackoffStrategy and a retryable-error
// predicate, and the generic Do executor runs any function under it.
//
// Keeping the policy separate from the call being retried makes the policy
// itself testable (how many attempts, which delays, which errors) without
// involving real network calls.
//
// # Usage
//
//	policy := retry.Policy{
//	    MaxAttempts: 3,
//	    Backoff:     retry.Linear{Step: 400 * time.Millisecond},
//	    RetryIf:     apiclient.IsAuthError,
//	}
//
//	user, err := retry.Do(ctx, policy, func(ctx context.Context) (*helpdesk.User, error) {
//	    return authAPI.Me(ctx)
//	})
//
// Backoff sleeps respect context cancellation, so a caller can abandon the
// whole loop by cancelling ctx.
package retry
