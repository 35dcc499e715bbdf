package security

import (
	"strings"

	"github.com/tech4life-beyond/kivai/internal/intent"
)

// Authorization error codes surfaced on failure ACKs.
const (
	// CodeAuthRequired indicates the payload carries no usable proof of
	// identity (missing auth object or empty token).
	CodeAuthRequired = "AUTH_REQUIRED"

	// CodeAuthForbidden indicates proof is present but for the wrong role.
	CodeAuthForbidden = "AUTH_FORBIDDEN"
)

// Decision is the outcome of a policy evaluation.
type Decision struct {
	Authorized bool
	// ErrorCode is CodeAuthRequired or CodeAuthForbidden when Authorized is
	// false, "" otherwise.
	ErrorCode string
}

func allow() Decision {
	return Decision{Authorized: true}
}

func deny(code string) Decision {
	return Decision{Authorized: false, ErrorCode: code}
}

// Authorize decides whether the payload carries sufficient proof for the
// required role.
//
// An empty requiredRole always authorizes. Otherwise the payload must carry
// an auth object with a non-empty token and a role equal to requiredRole.
// No cryptographic verification is performed; presence and role equality
// are the entire trust check.
func Authorize(p intent.Payload, requiredRole Role) Decision {
	if requiredRole == "" {
		return allow()
	}

	if p.Auth == nil {
		return deny(CodeAuthRequired)
	}

	if strings.TrimSpace(p.Auth.Token) == "" {
		return deny(CodeAuthRequired)
	}

	if Role(p.Auth.RequiredRole) != requiredRole {
		return deny(CodeAuthForbidden)
	}

	return allow()
}
