package grammar

// c99TerminalNames is indexed by terminal id.
var c99TerminalNames = []string{
	"",
	"IDENTIFIER",
	"CONSTANT",
	"STRING_LITERAL",
	"(",
	")",
	"[",
	"]",
	".",
	"PTR_OP",
	"INC_OP",
	"DEC_OP",
	",",
	"SIZEOF",
	"&",
	"*",
	"+",
	"-",
	"~",
	"!",
	"/",
	"%",
	"LEFT_OP",
	"RIGHT_OP",
	"<",
	">",
	"LE_OP",
	"GE_OP",
	"EQ_OP",
	"NE_OP",
	"^",
	"|",
	"AND_OP",
	"OR_OP",
	"?",
	":",
	"=",
	"MUL_ASSIGN",
	"DIV_ASSIGN",
	"MOD_ASSIGN",
	"ADD_ASSIGN",
	"SUB_ASSIGN",
	"LEFT_ASSIGN",
	"RIGHT_ASSIGN",
	"AND_ASSIGN",
	"XOR_ASSIGN",
	"OR_ASSIGN",
	";",
	"TYPEDEF",
	"EXTERN",
	"STATIC",
	"AUTO",
	"REGISTER",
	"VOID",
	"CHAR",
	"SHORT",
	"INT",
	"LONG",
	"FLOAT",
	"DOUBLE",
	"SIGNED",
	"UNSIGNED",
	"BOOL",
	"COMPLEX",
	"IMAGINARY",
	"TYPE_NAME",
	"{",
	"}",
	"STRUCT",
	"UNION",
	"ENUM",
	"CONST",
	"RESTRICT",
	"VOLATILE",
	"INLINE",
	"ELLIPSIS",
	"CASE",
	"DEFAULT",
	"IF",
	"SWITCH",
	"ELSE",
	"FOR",
	"WHILE",
	"DO",
	"GOTO",
	"CONTINUE",
	"BREAK",
	"RETURN",
	"END_OF_SLK_INPUT",
}

// c99NonterminalNames is indexed by id - (c99StartSymbol - 1).
var c99NonterminalNames = []string{
	"",
	"translation_unit",
	"more_translation_unit",
	"primary_expression",
	"postfix_expression",
	"more_postfix_expression",
	"argument_expression_list",
	"more_argument_expression_list",
	"unary_expression",
	"unary_operator",
	"cast_expression",
	"multiplicative_expression",
	"more_multiplicative_expression",
	"additive_expression",
	"more_additive_expression",
	"shift_expression",
	"more_shift_expression",
	"relational_expression",
	"more_relational_expression",
	"equality_expression",
	"more_equality_expression",
	"and_expression",
	"more_and_expression",
	"exclusive_or_expression",
	"more_exclusive_or_expression",
	"inclusive_or_expression",
	"more_inclusive_or_expression",
	"logical_and_expression",
	"more_logical_and_expression",
	"logical_or_expression",
	"more_logical_or_expression",
	"conditional_expression",
	"conditional_expression_tail",
	"assignment_expression",
	"assignment_expression_tail",
	"assignment_operator",
	"expression",
	"more_expression",
	"constant_expression",
	"declaration",
	"declaration_specifiers",
	"declaration_specifiers_tail_4",
	"declaration_specifiers_tail_3",
	"declaration_specifiers_tail_2",
	"declaration_specifiers_tail",
	"init_declarator_list",
	"more_init_declarator_list",
	"init_declarator_list2",
	"init_declarator",
	"init_declarator_tail",
	"storage_class_specifier",
	"type_specifier",
	"struct_or_union_specifier",
	"struct_or_union",
	"struct_declaration_list",
	"more_struct_declaration_list",
	"struct_declaration",
	"specifier_qualifier_list",
	"specifier_qualifier_list_tail_2",
	"specifier_qualifier_list_tail",
	"struct_declarator_list",
	"more_struct_declarator_list",
	"struct_declarator",
	"struct_declarator_tail",
	"enum_specifier",
	"enum_specifier_tail",
	"enum_specifier_tail_tail_2",
	"enum_specifier_tail_tail_2_tail",
	"enum_specifier_tail_tail",
	"enumerator_list",
	"more_enumerator_list",
	"enumerator",
	"type_qualifier",
	"function_specifier",
	"declarator",
	"direct_declarator",
	"more_direct_declarator",
	"more_direct_declarator_tail_2",
	"more_direct_declarator_tail",
	"more_direct_declarator_tail_tail",
	"pointer",
	"pointer_tail",
	"pointer_tail_tail",
	"type_qualifier_list",
	"more_type_qualifier_list",
	"parameter_type_list",
	"parameter_type_list_tail",
	"parameter_list",
	"more_parameter_list",
	"parameter_declaration",
	"declarator_or_abstract_declarator",
	"direct_declarator_or_direct_abstract_declarator",
	"more_dd_or_dad",
	"identifier_list",
	"more_identifier_list",
	"type_name",
	"type_name_tail",
	"abstract_declarator",
	"abstract_declarator_tail",
	"direct_abstract_declarator",
	"more_direct_abstract_declarator",
	"initializer",
	"initializer_tail",
	"initializer_list",
	"more_initializer_list",
	"designation",
	"designator_list",
	"more_designator_list",
	"designator",
	"statement",
	"labeled_statement",
	"compound_statement",
	"block_item_list",
	"more_block_item_list",
	"block_item",
	"expression_statement",
	"selection_statement",
	"selection_statement_tail",
	"iteration_statement",
	"iteration_statement_tail",
	"iteration_statement_tail_tail_2",
	"iteration_statement_tail_tail",
	"jump_statement",
	"external_declaration",
	"external_declaration_tail",
	"external_declaration_tail_tail",
	"function_definition_tail",
	"declaration_list",
	"more_declaration_list",
	"init_declarator_list_opt",
	"init_declarator_list2_opt",
	",_init_declarator_*",
	"declarator_or_abstract_declarator_opt",
	"direct_declarator_or_direct_abstract_declarator_opt",
	"constant_expression_opt",
	"parameter_type_list_opt",
	"constant_expression_2_opt",
	"identifier_list_opt",
	"init_declarator_list2_2_opt",
}

var c99ActionNames = []string{
	"",
	"__FinishParse",
	"__SetTypedefName",
	"__NewScope",
	"__ReleaseScope",
}

// c99Labels maps terminal ids to the category names a C lexer reports.
var c99Labels = []string{
	"",
	"ID",
	"CONSTANT",
	"STRING_LITERAL",
	"LPAREN",
	"RPAREN",
	"LBRACKET",
	"RBRACKET",
	"PERIOD",
	"ARROW",
	"PLUSPLUS",
	"MINUSMINUS",
	"COMMA",
	"SIZEOF",
	"AND",
	"TIMES",
	"PLUS",
	"MINUS",
	"NOT",
	"LNOT",
	"DIVIDE",
	"MOD",
	"LSHIFT",
	"RSHIFT",
	"LT",
	"GT",
	"LE",
	"GE",
	"EQ",
	"NE",
	"XOR",
	"OR",
	"LAND",
	"LOR",
	"CONDOP",
	"COLON",
	"EQUALS",
	"TIMESEQUAL",
	"DIVEQUAL",
	"MODEQUAL",
	"PLUSEQUAL",
	"MINUSEQUAL",
	"LSHIFTEQUAL",
	"RSHIFTEQUAL",
	"ANDEQUAL",
	"XOREQUAL",
	"OREQUAL",
	"SEMI",
	"TYPEDEF",
	"EXTERN",
	"STATIC",
	"AUTO",
	"REGISTER",
	"VOID",
	"CHAR",
	"SHORT",
	"INT",
	"LONG",
	"FLOAT",
	"DOUBLE",
	"SIGNED",
	"UNSIGNED",
	"_BOOL",
	"_COMPLEX",
	"IMAGINARY_",
	"TYPEID",
	"LBRACE",
	"RBRACE",
	"STRUCT",
	"UNION",
	"ENUM",
	"CONST",
	"RESTRICT",
	"VOLATILE",
	"INLINE",
	"ELLIPSIS",
	"CASE",
	"DEFAULT",
	"IF",
	"SWITCH",
	"ELSE",
	"FOR",
	"WHILE",
	"DO",
	"GOTO",
	"CONTINUE",
	"BREAK",
	"RETURN",
	"END_OF_SLK_INPUT",
}
