// Copyright (c) 2025 A Bit of Help, Inc.

package stripper

import (
	"regexp"
	"strings"
)

// extnRE matches the leftmost extension marker in a working buffer: one of
// the recognized tags (";ext=", "ext", "ext.", "extn", "int", "x", "X",
// "#", ",") followed by up to 7 digits, tolerating punctuation between the
// tag and the digits.
var extnRE = regexp.MustCompile(`(?i);ext=([0-9]{1,7})|(?:ext\.?n?|int|[x#,])[\s.:\-]*([0-9]{1,7})`)

// StripExtension scans buf for the first extension marker and returns the
// buffer with the marker and everything after it removed, along with the
// captured extension digits. If two extensions are present (e.g.
// "x508/x1234"), the first match wins and the rest of the string is
// discarded along with it. It returns ext="" if no extension is found.
func StripExtension(buf string) (stripped string, ext string) {
	loc := extnRE.FindStringSubmatchIndex(buf)
	if loc == nil {
		return buf, ""
	}

	switch {
	case loc[2] != -1:
		ext = buf[loc[2]:loc[3]]
	case loc[4] != -1:
		ext = buf[loc[4]:loc[5]]
	}

	stripped = strings.TrimSpace(buf[:loc[0]])
	return stripped, ext
}
