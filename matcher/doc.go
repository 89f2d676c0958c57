// Copyright (c) 2025 A Bit of Help, Inc.

// Package matcher compares two phone numbers — each either an already
// parsed pn.PhoneNumber or a raw string — under four levels of
// equivalence, from an exact structural match down to a short suffix
// overlap. It never errors: an operand that cannot be recognized as a
// phone number folds into NOT_A_NUMBER rather than a parse error.
package matcher
