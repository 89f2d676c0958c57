// Copyright (c) 2025 A Bit of Help, Inc.

package pn

// String renders t as the libphonenumber-style constant name, for logging
// and the CLI exerciser's output.
func (t Type) String() string {
	switch t {
	case FIXED_LINE:
		return "FIXED_LINE"
	case MOBILE:
		return "MOBILE"
	case FIXED_LINE_OR_MOBILE:
		return "FIXED_LINE_OR_MOBILE"
	case TOLL_FREE:
		return "TOLL_FREE"
	case PREMIUM_RATE:
		return "PREMIUM_RATE"
	case SHARED_COST:
		return "SHARED_COST"
	case VOIP:
		return "VOIP"
	case PERSONAL_NUMBER:
		return "PERSONAL_NUMBER"
	case PAGER:
		return "PAGER"
	case UAN:
		return "UAN"
	default:
		return "UNKNOWN"
	}
}

// String renders mt as its constant name.
func (mt MatchType) String() string {
	switch mt {
	case NOT_A_NUMBER:
		return "NOT_A_NUMBER"
	case NO_MATCH:
		return "NO_MATCH"
	case SHORT_NSN_MATCH:
		return "SHORT_NSN_MATCH"
	case NSN_MATCH:
		return "NSN_MATCH"
	case EXACT_MATCH:
		return "EXACT_MATCH"
	default:
		return "NO_MATCH"
	}
}
