// SPDX-License-Identifier: GPL-3.0-or-later

/*
Package matcher implements the module selector used by the plugin.

Supported Format

	string
	glob
	list

The string matcher reports whether the given value equals to the string ( use == ).

The glob matcher reports whether the given value matches the wildcard pattern.
Patterns follow github.com/bmatcuk/doublestar syntax ('*', '?', '[...]', '{a,b}').

A list is a whitespace or comma separated set of string or glob terms.
A term prefixed with '!' excludes what it matches. The term "all" matches everything.

	reports
	day0* !wordsearch
	reports,memory
*/
package matcher
