// Copyright (c) 2025 A Bit of Help, Inc.

package pn

import "strconv"

// NSNDigits reconstructs the national significant number as a decimal
// digit string, prepending a leading zero when ItalianLeadingZero is set
// (the integer form cannot represent that zero on its own).
func (p PhoneNumber) NSNDigits() string {
	digits := strconv.FormatUint(p.NationalNumber, 10)
	if p.ItalianLeadingZero {
		return "0" + digits
	}
	return digits
}
