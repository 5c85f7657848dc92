package clex

import "strconv"

type Position struct {
	File   string
	Offset int
	Line   int
	Column int
}

type Span struct {
	Start Position
	End   Position
}

type TokenKind int

const (
	TokenEOF TokenKind = iota
	TokenError
	TokenWhitespace
	TokenComment
	TokenLineComment
	TokenDirective

	// Literals
	TokenIdent
	TokenIntDec
	TokenIntOct
	TokenIntHex
	TokenIntBin
	TokenFloatConst
	TokenHexFloatConst
	TokenCharConst
	TokenWideCharConst
	TokenString
	TokenWideString

	// Keywords
	TokenAuto
	TokenBreak
	TokenCase
	TokenChar
	TokenConst
	TokenContinue
	TokenDefault
	TokenDo
	TokenDouble
	TokenElse
	TokenEnum
	TokenExtern
	TokenFloat
	TokenFor
	TokenGoto
	TokenIf
	TokenInline
	TokenInt
	TokenLong
	TokenRegister
	TokenRestrict
	TokenReturn
	TokenShort
	TokenSigned
	TokenSizeof
	TokenStatic
	TokenStruct
	TokenSwitch
	TokenTypedef
	TokenUnion
	TokenUnsigned
	TokenVoid
	TokenVolatile
	TokenWhile
	TokenBool
	TokenComplex
	TokenImaginary

	// Punctuators
	TokenLParen
	TokenRParen
	TokenLBracket
	TokenRBracket
	TokenLBrace
	TokenRBrace
	TokenDot
	TokenArrow
	TokenIncrement
	TokenDecrement
	TokenComma
	TokenBitAnd
	TokenStar
	TokenPlus
	TokenMinus
	TokenBitNot
	TokenNot
	TokenSlash
	TokenPercent
	TokenShl
	TokenShr
	TokenLT
	TokenGT
	TokenLE
	TokenGE
	TokenEQ
	TokenNE
	TokenBitXor
	TokenBitOr
	TokenAnd
	TokenOr
	TokenQuestion
	TokenColon
	TokenAssign
	TokenStarAssign
	TokenSlashAssign
	TokenPercentAssign
	TokenPlusAssign
	TokenMinusAssign
	TokenShlAssign
	TokenShrAssign
	TokenAndAssign
	TokenXorAssign
	TokenOrAssign
	TokenSemicolon
	TokenEllipsis
)

// tokenKindLabels are the category names a C parser front end expects
// (the pycparser lexer's names).
var tokenKindLabels = map[TokenKind]string{
	TokenEOF:         "EOF",
	TokenError:       "ERROR",
	TokenWhitespace:  "WHITESPACE",
	TokenComment:     "COMMENT",
	TokenLineComment: "LINE_COMMENT",
	TokenDirective:   "PPHASH",

	TokenIdent:         "ID",
	TokenIntDec:        "INT_CONST_DEC",
	TokenIntOct:        "INT_CONST_OCT",
	TokenIntHex:        "INT_CONST_HEX",
	TokenIntBin:        "INT_CONST_BIN",
	TokenFloatConst:    "FLOAT_CONST",
	TokenHexFloatConst: "HEX_FLOAT_CONST",
	TokenCharConst:     "CHAR_CONST",
	TokenWideCharConst: "WCHAR_CONST",
	TokenString:        "STRING_LITERAL",
	TokenWideString:    "WSTRING_LITERAL",

	TokenAuto:      "AUTO",
	TokenBreak:     "BREAK",
	TokenCase:      "CASE",
	TokenChar:      "CHAR",
	TokenConst:     "CONST",
	TokenContinue:  "CONTINUE",
	TokenDefault:   "DEFAULT",
	TokenDo:        "DO",
	TokenDouble:    "DOUBLE",
	TokenElse:      "ELSE",
	TokenEnum:      "ENUM",
	TokenExtern:    "EXTERN",
	TokenFloat:     "FLOAT",
	TokenFor:       "FOR",
	TokenGoto:      "GOTO",
	TokenIf:        "IF",
	TokenInline:    "INLINE",
	TokenInt:       "INT",
	TokenLong:      "LONG",
	TokenRegister:  "REGISTER",
	TokenRestrict:  "RESTRICT",
	TokenReturn:    "RETURN",
	TokenShort:     "SHORT",
	TokenSigned:    "SIGNED",
	TokenSizeof:    "SIZEOF",
	TokenStatic:    "STATIC",
	TokenStruct:    "STRUCT",
	TokenSwitch:    "SWITCH",
	TokenTypedef:   "TYPEDEF",
	TokenUnion:     "UNION",
	TokenUnsigned:  "UNSIGNED",
	TokenVoid:      "VOID",
	TokenVolatile:  "VOLATILE",
	TokenWhile:     "WHILE",
	TokenBool:      "_BOOL",
	TokenComplex:   "_COMPLEX",
	TokenImaginary: "IMAGINARY_",

	TokenLParen:        "LPAREN",
	TokenRParen:        "RPAREN",
	TokenLBracket:      "LBRACKET",
	TokenRBracket:      "RBRACKET",
	TokenLBrace:        "LBRACE",
	TokenRBrace:        "RBRACE",
	TokenDot:           "PERIOD",
	TokenArrow:         "ARROW",
	TokenIncrement:     "PLUSPLUS",
	TokenDecrement:     "MINUSMINUS",
	TokenComma:         "COMMA",
	TokenBitAnd:        "AND",
	TokenStar:          "TIMES",
	TokenPlus:          "PLUS",
	TokenMinus:         "MINUS",
	TokenBitNot:        "NOT",
	TokenNot:           "LNOT",
	TokenSlash:         "DIVIDE",
	TokenPercent:       "MOD",
	TokenShl:           "LSHIFT",
	TokenShr:           "RSHIFT",
	TokenLT:            "LT",
	TokenGT:            "GT",
	TokenLE:            "LE",
	TokenGE:            "GE",
	TokenEQ:            "EQ",
	TokenNE:            "NE",
	TokenBitXor:        "XOR",
	TokenBitOr:         "OR",
	TokenAnd:           "LAND",
	TokenOr:            "LOR",
	TokenQuestion:      "CONDOP",
	TokenColon:         "COLON",
	TokenAssign:        "EQUALS",
	TokenStarAssign:    "TIMESEQUAL",
	TokenSlashAssign:   "DIVEQUAL",
	TokenPercentAssign: "MODEQUAL",
	TokenPlusAssign:    "PLUSEQUAL",
	TokenMinusAssign:   "MINUSEQUAL",
	TokenShlAssign:     "LSHIFTEQUAL",
	TokenShrAssign:     "RSHIFTEQUAL",
	TokenAndAssign:     "ANDEQUAL",
	TokenXorAssign:     "XOREQUAL",
	TokenOrAssign:      "OREQUAL",
	TokenSemicolon:     "SEMI",
	TokenEllipsis:      "ELLIPSIS",
}

// Label is the lexer category name of k, as consumed by grammar.Vocabulary.
func (k TokenKind) Label() string {
	if label, ok := tokenKindLabels[k]; ok {
		return label
	}
	return "TokenKind(" + strconv.Itoa(int(k)) + ")"
}

func (k TokenKind) String() string { return k.Label() }

// IsTrivia reports whether tokens of kind k carry no syntax.
func (k TokenKind) IsTrivia() bool {
	switch k {
	case TokenWhitespace, TokenComment, TokenLineComment, TokenDirective:
		return true
	}
	return false
}

type Token struct {
	Kind    TokenKind
	Span    Span
	Literal string
}

var keywords = map[string]TokenKind{
	"auto":       TokenAuto,
	"break":      TokenBreak,
	"case":       TokenCase,
	"char":       TokenChar,
	"const":      TokenConst,
	"continue":   TokenContinue,
	"default":    TokenDefault,
	"do":         TokenDo,
	"double":     TokenDouble,
	"else":       TokenElse,
	"enum":       TokenEnum,
	"extern":     TokenExtern,
	"float":      TokenFloat,
	"for":        TokenFor,
	"goto":       TokenGoto,
	"if":         TokenIf,
	"inline":     TokenInline,
	"int":        TokenInt,
	"long":       TokenLong,
	"register":   TokenRegister,
	"restrict":   TokenRestrict,
	"return":     TokenReturn,
	"short":      TokenShort,
	"signed":     TokenSigned,
	"sizeof":     TokenSizeof,
	"static":     TokenStatic,
	"struct":     TokenStruct,
	"switch":     TokenSwitch,
	"typedef":    TokenTypedef,
	"union":      TokenUnion,
	"unsigned":   TokenUnsigned,
	"void":       TokenVoid,
	"volatile":   TokenVolatile,
	"while":      TokenWhile,
	"_Bool":      TokenBool,
	"_Complex":   TokenComplex,
	"_Imaginary": TokenImaginary,
}

func LookupKeyword(ident string) TokenKind {
	if kind, ok := keywords[ident]; ok {
		return kind
	}
	return TokenIdent
}
