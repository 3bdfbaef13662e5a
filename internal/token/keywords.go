package token

var keywords = map[string]struct{}{
	"abstract": {}, "as": {}, "base": {}, "bool": {}, "break": {},
	"byte": {}, "case": {}, "catch": {}, "char": {}, "checked": {},
	"class": {}, "const": {}, "continue": {}, "decimal": {}, "default": {},
	"delegate": {}, "do": {}, "double": {}, "else": {}, "enum": {},
	"event": {}, "explicit": {}, "extern": {}, "false": {}, "finally": {},
	"fixed": {}, "float": {}, "for": {}, "foreach": {}, "goto": {},
	"if": {}, "implicit": {}, "in": {}, "int": {}, "interface": {},
	"internal": {}, "is": {}, "lock": {}, "long": {}, "namespace": {},
	"new": {}, "null": {}, "object": {}, "operator": {}, "out": {},
	"override": {}, "params": {}, "private": {}, "protected": {}, "public": {},
	"readonly": {}, "ref": {}, "return": {}, "sbyte": {}, "sealed": {},
	"short": {}, "sizeof": {}, "stackalloc": {}, "static": {}, "string": {},
	"struct": {}, "switch": {}, "this": {}, "throw": {}, "true": {},
	"try": {}, "typeof": {}, "uint": {}, "ulong": {}, "unchecked": {},
	"unsafe": {}, "ushort": {}, "using": {}, "virtual": {}, "void": {},
	"volatile": {}, "while": {},
}

// IsKeyword reports whether ident is a reserved word. Matching is exact and
// case-sensitive; only lowercase forms are reserved.
func IsKeyword(ident string) bool {
	_, ok := keywords[ident]
	return ok
}
