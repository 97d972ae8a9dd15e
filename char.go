// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package shaape

import "unicode"

type char rune

// continuation is the char stored in the second cell of a double width rune.
const continuation char = 0

// isGraphic returns true on the runes the diagram grammar draws with. They are never the
// start of a text run.
func (c char) isGraphic() bool {
	switch c {
	case '-', '|', '+', '.', '\'', '<', '>', '^', '/', '\\', '=', ':':
		return true
	}
	return false
}

func (c char) isTextStart() bool {
	return c != continuation && !c.isSpace() && unicode.IsPrint(rune(c)) && !c.isGraphic()
}

func (c char) isTextCont() bool {
	return c == continuation || c.isTextStart() || c == ' '
}

// isInlinePunct returns true on graphic runes that may also appear inside words, like the
// period in "e.g." or the colon in "Note:".
func (c char) isInlinePunct() bool {
	return c == '.' || c == ':' || c == '\''
}

func (c char) isWord() bool {
	return unicode.IsLetter(rune(c)) || unicode.IsNumber(rune(c))
}

func (c char) isSpace() bool {
	return unicode.IsSpace(rune(c))
}

// isPathStart returns true on any form of ascii art that can start a graph.
func (c char) isPathStart() bool {
	return c.isCorner() || c.isHorizontal() || c.isVertical() || c.isArrowHorizontalLeft() || c.isArrowVerticalUp()
}

func (c char) isCorner() bool {
	return c == '.' || c == '\'' || c == '+'
}

func (c char) isDashedHorizontal() bool {
	return c == '='
}

func (c char) isHorizontal() bool {
	return c.isDashedHorizontal() || c == '-'
}

func (c char) isDashedVertical() bool {
	return c == ':'
}

func (c char) isVertical() bool {
	return c.isDashedVertical() || c == '|'
}

func (c char) isDashed() bool {
	return c.isDashedHorizontal() || c.isDashedVertical()
}

func (c char) isArrowHorizontalLeft() bool {
	return c == '<'
}

func (c char) isArrowHorizontal() bool {
	return c.isArrowHorizontalLeft() || c == '>'
}

func (c char) isArrowVerticalUp() bool {
	return c == '^'
}

func (c char) isArrowVertical() bool {
	return c.isArrowVerticalUp() || c == 'v'
}

func (c char) isArrow() bool {
	return c.isArrowHorizontal() || c.isArrowVertical()
}

func (c char) canHorizontal() bool {
	return c.isHorizontal() || c.isCorner() || c.isArrowHorizontal()
}

func (c char) canVertical() bool {
	return c.isVertical() || c.isCorner() || c.isArrowVertical()
}
