package clex

import (
	"errors"
	"testing"
)

func TestLexerNewLexer(t *testing.T) {
	lexer := NewLexer([]byte("int x;"), "test.c")
	pos := lexer.Position()

	if pos.File != "test.c" {
		t.Errorf("File = %q, want %q", pos.File, "test.c")
	}
	if pos.Line != 1 {
		t.Errorf("Line = %d, want %d", pos.Line, 1)
	}
	if pos.Column != 1 {
		t.Errorf("Column = %d, want %d", pos.Column, 1)
	}
}

func TestLexerKeywords(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
		label string
	}{
		{"int", TokenInt, "INT"},
		{"typedef", TokenTypedef, "TYPEDEF"},
		{"return", TokenReturn, "RETURN"},
		{"sizeof", TokenSizeof, "SIZEOF"},
		{"struct", TokenStruct, "STRUCT"},
		{"restrict", TokenRestrict, "RESTRICT"},
		{"inline", TokenInline, "INLINE"},
		{"_Bool", TokenBool, "_BOOL"},
		{"_Complex", TokenComplex, "_COMPLEX"},
		{"_Imaginary", TokenImaginary, "IMAGINARY_"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := NewLexer([]byte(tt.input), "test.c").NextToken()
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Kind.Label() != tt.label {
				t.Errorf("Label = %q, want %q", tok.Kind.Label(), tt.label)
			}
			if tok.Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestLexerIdentifiers(t *testing.T) {
	tests := []string{"foo", "_private", "with123", "L", "u", "u8", "Lx", "size_t"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			tok := NewLexer([]byte(input), "test.c").NextToken()
			if tok.Kind != TokenIdent {
				t.Errorf("Kind = %v, want ID", tok.Kind)
			}
			if tok.Literal != input {
				t.Errorf("Literal = %q, want %q", tok.Literal, input)
			}
		})
	}
}

func TestLexerLiterals(t *testing.T) {
	tests := []struct {
		input string
		kind  TokenKind
	}{
		{"42", TokenIntDec},
		{"42UL", TokenIntDec},
		{"0", TokenIntOct},
		{"0755", TokenIntOct},
		{"0x1F", TokenIntHex},
		{"0xffULL", TokenIntHex},
		{"0b1010", TokenIntBin},
		{"3.14", TokenFloatConst},
		{".5f", TokenFloatConst},
		{"1e10", TokenFloatConst},
		{"2.L", TokenFloatConst},
		{"0x1.8p3", TokenHexFloatConst},
		{"'a'", TokenCharConst},
		{`'\n'`, TokenCharConst},
		{"L'a'", TokenWideCharConst},
		{`"hello"`, TokenString},
		{`"a\"b"`, TokenString},
		{`u8"x"`, TokenString},
		{`L"wide"`, TokenWideString},
		{`U"wide"`, TokenWideString},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := NewLexer([]byte(tt.input), "test.c").NextToken()
			if tok.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tok.Kind, tt.kind)
			}
			if tok.Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestLexerOperators(t *testing.T) {
	tests := []struct {
		input string
		label string
	}{
		{"(", "LPAREN"},
		{"]", "RBRACKET"},
		{"->", "ARROW"},
		{"++", "PLUSPLUS"},
		{"--", "MINUSMINUS"},
		{"&", "AND"},
		{"&&", "LAND"},
		{"&=", "ANDEQUAL"},
		{"~", "NOT"},
		{"!", "LNOT"},
		{"!=", "NE"},
		{"<<=", "LSHIFTEQUAL"},
		{">>", "RSHIFT"},
		{"?", "CONDOP"},
		{"...", "ELLIPSIS"},
		{".", "PERIOD"},
		{";", "SEMI"},
		{"%=", "MODEQUAL"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			tok := NewLexer([]byte(tt.input), "test.c").NextToken()
			if tok.Kind.Label() != tt.label {
				t.Errorf("Label = %q, want %q", tok.Kind.Label(), tt.label)
			}
			if tok.Literal != tt.input {
				t.Errorf("Literal = %q, want %q", tok.Literal, tt.input)
			}
		})
	}
}

func TestTokenize(t *testing.T) {
	src := "#include <stdio.h>\n" +
		"/* comment */ int max(){\n" +
		"  return; // done\n" +
		"}\n"
	tokens, err := Tokenize([]byte(src), "max.c")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}

	want := []string{"INT", "ID", "LPAREN", "RPAREN", "LBRACE", "RETURN", "SEMI", "RBRACE"}
	if len(tokens) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(tokens), len(want), tokens)
	}
	for i, tok := range tokens {
		if tok.Kind.Label() != want[i] {
			t.Errorf("token %d: label %q, want %q", i, tok.Kind.Label(), want[i])
		}
	}

	if pos := tokens[0].Span.Start; pos.Line != 2 || pos.Column != 15 {
		t.Errorf("int at %d:%d, want 2:15", pos.Line, pos.Column)
	}
	if pos := tokens[5].Span.Start; pos.Line != 3 || pos.Column != 3 {
		t.Errorf("return at %d:%d, want 3:3", pos.Line, pos.Column)
	}
}

func TestTokenizeDirectiveContinuation(t *testing.T) {
	src := "#define X \\\n  1\nint x;"
	tokens, err := Tokenize([]byte(src), "x.c")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(tokens) != 3 {
		t.Fatalf("got %d tokens, want 3", len(tokens))
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []string{"int @x;", `char *s = "open`, "a # b"}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, err := Tokenize([]byte(input), "bad.c")
			var scanErr *ScanError
			if !errors.As(err, &scanErr) {
				t.Fatalf("err = %v, want *ScanError", err)
			}
			if scanErr.Pos.Line != 1 {
				t.Errorf("Line = %d, want 1", scanErr.Pos.Line)
			}
		})
	}
}
