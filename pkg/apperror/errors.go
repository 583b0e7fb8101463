package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses. The Code
// prefix is the error kind: VAL (validation), NF (not found), INT
// (integrity violation), ANC (anchoring), SER (serialization), AUTH, RATE,
// SYS. Integrity and validation errors always propagate to callers;
// anchoring errors are retried internally and never surface as ledger
// failures.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation rejects malformed or missing input before any state change.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

// ---- Not found (NF) ----

func ErrReceiptNotFound() *AppError {
	return New("NF_001", "Receipt not found", http.StatusNotFound)
}

func ErrBatchNotFound() *AppError {
	return New("NF_002", "Anchor batch not found", http.StatusNotFound)
}

// ErrNotAnchored signals a receipt that exists but has no anchored batch
// yet; no proof can be produced for it.
func ErrNotAnchored() *AppError {
	return New("NF_003", "Receipt is not anchored yet", http.StatusNotFound)
}

func ErrAccountNotFound() *AppError {
	return New("NF_004", "Service account not found", http.StatusNotFound)
}

// ---- Integrity violations (INT) ----
// Never auto-corrected; a security signal for external incident response.

func ErrHashMismatch(receiptID string) *AppError {
	return New("INT_001", fmt.Sprintf("Receipt %s fails hash recomputation", receiptID), http.StatusConflict)
}

func ErrChainBroken(receiptID string) *AppError {
	return New("INT_002", fmt.Sprintf("Receipt %s does not link to its predecessor", receiptID), http.StatusConflict)
}

func ErrBatchRootMismatch(batchID string) *AppError {
	return New("INT_003", fmt.Sprintf("Batch %s root does not match anchored root", batchID), http.StatusConflict)
}

// ---- Anchoring (ANC) ----
// Retryable; never affects ledger validity.

func ErrAnchoringFailed(err error) *AppError {
	return Wrap("ANC_001", "External anchor submission failed", http.StatusBadGateway, err)
}

func ErrAnchoringDisabled() *AppError {
	return New("ANC_002", "Anchoring is disabled", http.StatusServiceUnavailable)
}

// ---- Serialization (SER) ----

func ErrProofMalformed(err error) *AppError {
	return Wrap("SER_001", "Proof string does not parse", http.StatusBadRequest, err)
}

// ---- Authentication (AUTH) ----

func ErrInvalidCredentials() *AppError {
	return New("AUTH_001", "Invalid credentials", http.StatusUnauthorized)
}

func ErrAccountNameExists() *AppError {
	return New("AUTH_002", "Service account name already exists", http.StatusConflict)
}

func ErrInvalidToken() *AppError {
	return New("AUTH_003", "Invalid or expired token", http.StatusUnauthorized)
}

func ErrAccountSuspended() *AppError {
	return New("AUTH_004", "Service account is suspended", http.StatusForbidden)
}

func ErrNonceUsed() *AppError {
	return New("AUTH_005", "Nonce has already been used", http.StatusForbidden)
}

// ---- Rate limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System & infrastructure (SYS) ----

func ErrDatabaseError(err error) *AppError {
	return Wrap("SYS_001", "Internal database error", http.StatusInternalServerError, err)
}

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// IsIntegrityViolation reports whether err is an INT_ kind error.
func IsIntegrityViolation(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && len(appErr.Code) >= 4 && appErr.Code[:4] == "INT_"
}

// IsNotFound reports whether err is an NF_ kind error.
func IsNotFound(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr) && len(appErr.Code) >= 3 && appErr.Code[:3] == "NF_"
}
