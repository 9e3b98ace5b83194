/*
Package jpnorm implements the Japanese text normalization used by input
method front ends: script, form and character set classification, width and
kana transliteration, and kanji numeral conversion.

All functions are pure and safe for concurrent use. Input is UTF-8 but need
not be valid: a byte that does not start a well-formed sequence is treated as
a code point of its own, classified as unknown and copied through by every
conversion.

# Overview

Using this package, you can:
  - Walk the code points of a string with their byte spans
  - Tell whether text is hiragana, katakana, kanji, digits or letters
  - Find the narrowest legacy character set that can represent text
  - Convert between half-width and full-width forms
  - Convert between hiragana and katakana
  - Read numerals such as "五百三十四億二千五十三万" as numbers

# Code Points

[Codepoints] returns an iterator over the code points of a string, each with
its byte offset and length. [FirstCodepoint] and [FirstCodepointInString]
can be called repeatedly instead. [CodepointCount] and [Substring] count and
slice by code point.

# Classification

[ClassifyScript] returns the one script a string is written in, or
[UnknownScript] when it mixes scripts. The prolonged sound mark "ー" and the
voicing marks "゛゜" belong to no script and are skipped:

	jpnorm.ClassifyScript("モズクﾓｽﾞｸ") // Katakana
	jpnorm.ClassifyScript("漢字かな")   // UnknownScript

[IsScript] and [ContainsScript] check for one script. [ClassifyForm] reports
whether text is uniformly half-width or full-width.

[ClassifyCharacterSet] returns the narrowest of ASCII, JIS X 0201,
JIS X 0208, JIS X 0213 and CP932 that holds every code point, or
[UnicodeOnly]. The JIS X 0213 table covers both planes, kanji included, and
is generated from the x0213.org mapping by gen_jisx0213.go.

# Transliteration

Each conversion is a [Transformer], usable with the golang.org/x/text
transform package, plus a string helper:
  - [Widen] / [ToFullWidth] and [Narrow] / [ToHalfWidth]
  - [WidenASCII], [NarrowASCII], [WidenKatakana], [NarrowKatakana]
  - [ToKatakana] / [HiraganaToKatakana] and [ToHiragana] / [KatakanaToHiragana]
  - [ComposeVoicedSoundMarks] / [NormalizeVoicedSoundMark]
  - [FoldLower] / [LowerString] and [FoldUpper] / [UpperString]

Half-width katakana spell voiced sounds with a separate mark, so "ｶﾞ" widens
to "ガ" and "ガ" narrows to "ｶﾞ". Code points without a mapping are kept.

# Numerals

[KanjiToArabic] reads numerals mixing ASCII, fullwidth and kanji digits with
the units 十 百 千 万 億 兆 京. Digits without units are read positionally
("二三五" is 235), and both styles may be mixed ("二百三五万一" is 2350001).
Values above 2^64-1 are rejected. [ToKanji] spells a number in kanji.
*/
package jpnorm
