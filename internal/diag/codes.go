package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка - на первое время
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexNewlineInString          Code = 1005
	LexBadLifetime              Code = 1006

	// Парсерные
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectIdentifier   Code = 2002
	SynExpectSemicolon    Code = 2003
	SynExpectType         Code = 2004
	SynExpectColon        Code = 2005
	SynUnclosedBrace      Code = 2006
	SynUnclosedParen      Code = 2007
	SynUnclosedBracket    Code = 2008
	SynUnclosedAngle      Code = 2009
	SynAttrBadForm        Code = 2010
	SynAttrExpectPath     Code = 2011
	SynExpectModKeyword   Code = 2012
	SynUnexpectedTopLevel Code = 2013
	SynExpectItem         Code = 2014
	SynBadVisibility      Code = 2015
	SynBadReceiver        Code = 2016
	SynVariadicMustBeLast Code = 2017

	// Генерация ассершенов
	GenInfo            Code = 3000
	GenMethodHasBody   Code = 3001
	GenUnnamedParam    Code = 3002
	GenEmptyPathValue  Code = 3003
	GenReceiverDropped Code = 3004
)

var codeNames = map[Code]string{
	UnknownCode:                 "UNKNOWN",
	LexInfo:                     "LEX_INFO",
	LexUnknownChar:              "LEX_UNKNOWN_CHAR",
	LexUnterminatedString:       "LEX_UNTERMINATED_STRING",
	LexUnterminatedBlockComment: "LEX_UNTERMINATED_BLOCK_COMMENT",
	LexBadNumber:                "LEX_BAD_NUMBER",
	LexNewlineInString:          "LEX_NEWLINE_IN_STRING",
	LexBadLifetime:              "LEX_BAD_LIFETIME",
	SynInfo:                     "SYN_INFO",
	SynUnexpectedToken:          "SYN_UNEXPECTED_TOKEN",
	SynExpectIdentifier:         "SYN_EXPECT_IDENTIFIER",
	SynExpectSemicolon:          "SYN_EXPECT_SEMICOLON",
	SynExpectType:               "SYN_EXPECT_TYPE",
	SynExpectColon:              "SYN_EXPECT_COLON",
	SynUnclosedBrace:            "SYN_UNCLOSED_BRACE",
	SynUnclosedParen:            "SYN_UNCLOSED_PAREN",
	SynUnclosedBracket:          "SYN_UNCLOSED_BRACKET",
	SynUnclosedAngle:            "SYN_UNCLOSED_ANGLE",
	SynAttrBadForm:              "SYN_ATTR_BAD_FORM",
	SynAttrExpectPath:           "SYN_ATTR_EXPECT_PATH",
	SynExpectModKeyword:         "SYN_EXPECT_MOD_KEYWORD",
	SynUnexpectedTopLevel:       "SYN_UNEXPECTED_TOP_LEVEL",
	SynExpectItem:               "SYN_EXPECT_ITEM",
	SynBadVisibility:            "SYN_BAD_VISIBILITY",
	SynBadReceiver:              "SYN_BAD_RECEIVER",
	SynVariadicMustBeLast:       "SYN_VARIADIC_MUST_BE_LAST",
	GenInfo:                     "GEN_INFO",
	GenMethodHasBody:            "GEN_METHOD_HAS_BODY",
	GenUnnamedParam:             "GEN_UNNAMED_PARAM",
	GenEmptyPathValue:           "GEN_EMPTY_PATH_VALUE",
	GenReceiverDropped:          "GEN_RECEIVER_DROPPED",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("CODE_%04d", uint16(c))
}
