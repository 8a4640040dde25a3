/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package common provides patterns shared by the class parser and the remap engine.
package common

import "regexp"

// ClassAttributePattern matches class and className attributes in markup:
// class="..." className='...' className=`...`
// The body may not contain a quote character; the first quote closes it.
// Submatch 1 is the attribute body.
var ClassAttributePattern = regexp.MustCompile("class(?:Name)?=[\"'`]([^\"'`]*)[\"'`]")

// WhitespacePattern matches runs of whitespace between class tokens.
var WhitespacePattern = regexp.MustCompile(`\s+`)

// ModifierSeparator joins modifiers to a utility: hover:md:bg-blue-500
const ModifierSeparator = ":"
