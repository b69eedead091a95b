package constants

// Context keys set by the auth middleware.
const (
	ContextKeyUserID      = "user_id"
	ContextKeyIsSuperuser = "is_superuser"
)

// Pagination bounds. Page numbers are 1-indexed.
const (
	DefaultPageNum  = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

const MinPasswordLength = 8

// VerificationCodePrefix is the cache key namespace for email
// verification codes: verification_code:<lowercased-email>.
const VerificationCodePrefix = "verification_code"

const VerificationCodeLength = 6
