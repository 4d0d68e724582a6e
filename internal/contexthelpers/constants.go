package contexthelpers

type contextKey string

const CurrentUserIDContextKey = contextKey("currentUserID")
const CspNonceContextKey = contextKey("cspNonce")
