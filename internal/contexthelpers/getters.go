package contexthelpers

import (
	"context"
)

func CurrentUserID(ctx context.Context) string {
	userID, ok := ctx.Value(CurrentUserIDContextKey).(string)
	if !ok {
		return ""
	}

	return userID
}

func CSPNonce(ctx context.Context) string {
	cspNonce, ok := ctx.Value(CspNonceContextKey).(string)
	if !ok {
		return ""
	}

	return cspNonce
}
