/*
Package storesdk is the Go client for the BuildMart construction-materials
storefront API.

# Overview

The package is organised around three cooperating types:

  - Client: the single entry point for outbound REST calls, with bearer auth
    injection and single-flight refresh-and-retry on authorization failure
  - Session: the current-user identity, derived from stored tokens
  - TokenStore: durable persistence of the access+refresh token pair

Create a Client with a token store, wrap it in a Session, and derive the
identity:

	store, err := storesdk.NewSQLiteTokenStore("~/.buildmart/credentials.db")
	if err != nil {
		log.Fatal(err)
	}
	client := storesdk.NewClient("https://api.buildmart.example", store)
	session := storesdk.NewSession(client, logger)

	session.Reload(ctx) // derive identity from persisted tokens, if any

	user, err := session.Login(ctx, "username", "password")
	if err != nil {
		log.Fatal(err)
	}

# Automatic Token Refresh

Every call through Client.Do attaches the current access token from the
token store. On a 401 response, if a refresh token exists and the request has
not already been retried, the Client refreshes the access token and retries
the request exactly once.

Concurrent 401s collapse into a single refresh call: the first failing
request starts the refresh and every other failing request waits on the same
shared handle, so token rotation never races. On refresh failure the token
store is cleared, forcing a logged-out state, and each caller receives its
original request's error.

Timeouts and transport failures are network errors, not authorization
failures, and never trigger a refresh.

# Sessions

Session is a small state machine over uninitialized, loading, authenticated
and anonymous. It fails closed: any profile-fetch failure leaves the session
anonymous rather than keeping a stale user next to dead credentials. Token
changes are tracked with a generation counter so a profile fetch that was
superseded by a newer login or logout can never overwrite fresher state:

	user, _ := session.Login(ctx, "u", "p")
	session.Logout() // even if Login's profile fetch is still in flight,
	                 // the session ends up anonymous

# Access Control

Authorize is a pure decision function gating navigation to protected routes:

	switch storesdk.Authorize(session.Snapshot(), storesdk.RouteRule{
		Roles: []storesdk.Role{storesdk.RoleAdmin},
	}) {
	case storesdk.DecisionAllow:
		// proceed
	case storesdk.DecisionRedirectLogin:
		// not authenticated
	case storesdk.DecisionRedirectHome:
		// authenticated but under-privileged
	case storesdk.DecisionPending:
		// identity still resolving
	}

An empty role set admits any authenticated user. Role comparison is
case-insensitive.

# Resource Clients

The remaining files are thin typed wrappers over Client.Do for the
storefront resources: catalog and materials, the cart and checkout, orders
and reviews, bulk requests and supplier bids, suppliers, and the admin
reporting feeds. They add no behaviour beyond payload shapes; the server is
the authority on roles, pricing and stock.

# Error Handling

Non-2xx responses surface as *APIError with the parsed backend payload.
Transport failures surface as wrapped *url.Error values. Use
IsAuthorizationError and IsNetworkError, or errors.As, to discriminate.
*/
package storesdk
