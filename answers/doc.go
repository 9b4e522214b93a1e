// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package answers holds the answer store for a wizard session: a map from
field id to current value, plus the canonicalization rules that turn the
source UI's "unanswered" sentinels ("", "--select--", "--select an item--",
null) into a single Unanswered variant.

Visibility evaluation also lives here: schema declares visibility conditions
as data, and Visible applies them to a concrete answer map.
*/
package answers
