package apistatus

import "net/http"

// A Status is the API-level result code carried by every response envelope.
// Zero means success, failures are negative int16 values serialized as plain
// integers to keep payloads compact and stable across API revisions.
type Status int16

// All the statuses that the API can return.
const (
	Ok                            Status = 0
	TokenInvalid                  Status = -1
	AccessTokenExpired            Status = -2
	InvalidUserNameOrPassword     Status = -3
	UserExists                    Status = -4
	UserNotFound                  Status = -5
	OldPasswordIsWrong            Status = -6
	WrongFileExtension            Status = -7
	CryptoDepositNotSupported     Status = -8
	PersonalDataNotValid          Status = -9
	NotEnoughFunds                Status = -10
	CountryRestricted             Status = -11
	ExchangeQuoteExpired          Status = -12
	NoLiquidity                   Status = -13
	RecaptchaVerificationFail     Status = -14
	ExchangeBetweenAssetsDisabled Status = -15
	AccessClaimRequired           Status = -998
	ForceUpdateRequired           Status = -999
)

// Statuses lists every defined status. It is used by the documentation
// endpoint and by the tests that check the mappings are total.
var Statuses = []Status{
	Ok,
	TokenInvalid,
	AccessTokenExpired,
	InvalidUserNameOrPassword,
	UserExists,
	UserNotFound,
	OldPasswordIsWrong,
	WrongFileExtension,
	CryptoDepositNotSupported,
	PersonalDataNotValid,
	NotEnoughFunds,
	CountryRestricted,
	ExchangeQuoteExpired,
	NoLiquidity,
	RecaptchaVerificationFail,
	ExchangeBetweenAssetsDisabled,
	AccessClaimRequired,
	ForceUpdateRequired,
}

// HTTPCode returns the transport status code used when rendering the status.
// Most domain failures still transport as 200 with a negative code in the
// body; the body's result field is authoritative, the transport code is only
// coarse signaling for generic HTTP middleware.
func (s Status) HTTPCode() int {
	switch s {
	case TokenInvalid, AccessTokenExpired, RecaptchaVerificationFail:
		return http.StatusUnauthorized
	case AccessClaimRequired:
		return http.StatusForbidden
	default:
		return http.StatusOK
	}
}

// Telemetry returns true when the status must be recorded in the telemetry
// pipelines. Expected outcomes like a wrong password or an expired token are
// suppressed to avoid alert noise.
func (s Status) Telemetry() bool {
	switch s {
	case Ok, ExchangeBetweenAssetsDisabled:
		return true
	default:
		return false
	}
}

func (s Status) String() string {
	switch s {
	case Ok:
		return "Operation was successful"
	case TokenInvalid:
		return "Access token invalid"
	case AccessTokenExpired:
		return "Access token expired"
	case InvalidUserNameOrPassword:
		return "Invalid username or password"
	case UserExists:
		return "User exists"
	case UserNotFound:
		return "User not found"
	case OldPasswordIsWrong:
		return "Old password is wrong"
	case WrongFileExtension:
		return "Wrong file extension"
	case CryptoDepositNotSupported:
		return "Crypto deposit is not supported"
	case PersonalDataNotValid:
		return "Personal data is not valid"
	case NotEnoughFunds:
		return "Not enough funds"
	case CountryRestricted:
		return "Country restriction"
	case ExchangeQuoteExpired:
		return "Exchange quote is expired"
	case NoLiquidity:
		return "No liquidity"
	case RecaptchaVerificationFail:
		return "Recaptcha verification fail"
	case ExchangeBetweenAssetsDisabled:
		return "Exchange between assets is disabled"
	case AccessClaimRequired:
		return "Access claim required"
	case ForceUpdateRequired:
		return "Force update required"
	default:
		return "Unknown status"
	}
}

type (
	// A Result is the bare response envelope.
	Result struct {
		Result Status `json:"result"`
	}

	// A ResultWithData is the response envelope used by endpoints that return
	// a payload alongside the status, possibly a partial one on failure.
	ResultWithData struct {
		Result Status      `json:"result"`
		Data   interface{} `json:"data,omitempty"`
	}
)

// OK returns the envelope of a successful operation without payload.
func OK() Result {
	return Result{Result: Ok}
}

// OKWithData returns the envelope of a successful operation with a payload.
func OKWithData(data interface{}) ResultWithData {
	return ResultWithData{Result: Ok, Data: data}
}
