// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package review implements the form rules that sit on top of a payload.

# Answers

Answers are positional. SetAnswer writes one slot, MarkSkipped records the
skip sentinel "-" when the user moves on without answering, and IsAnswered
tells a real answer from blanks and skips.

# Resuming

Resume picks where a returning user lands:

  - welcome: no name yet, or nothing but skips
  - question: the first catalog question with no answer or only a skip
  - custom: every question done, no custom entries yet
  - results: everything done

# Viewing

QuestionsFor and Results build the read-only view of a shared link, using a
fallback catalog for links that carry none.

All functions return new values and never modify their inputs.
*/
package review
