package gen

// Declaration wrapper emitters. All six structural wrappers are the same
// shape modulo the keyword and name presence, so they share one
// parameterized core. No validation of the body's internal grammar is
// performed; wrapping is pure text composition.

// wrapDecl frames body as "keyword name{body}", omitting the name token for
// anonymous forms.
func wrapDecl(keyword, name string, body Fragment) Fragment {
	if name == "" {
		return Fragment(keyword + " {" + string(body) + "}")
	}
	return Fragment(keyword + " " + name + "{" + string(body) + "}")
}

// Braced puts body into braces.
//
//	Braced("int a, b, c;")  // {int a, b, c;}
func Braced(body Fragment) Fragment {
	return Fragment("{" + string(body) + "}")
}

// Typedef generates a type definition.
//
//	Typedef("Point", "struct { int x, y; }")  // typedef struct { int x, y; } Point;
func Typedef(name string, body Fragment) Fragment {
	return Fragment("typedef " + string(body) + " " + name + ";")
}

// Struct generates a named C structure.
//
//	Struct("Point", "int x, y;")  // struct Point{int x, y;}
func Struct(name string, body Fragment) Fragment {
	return wrapDecl("struct", name, body)
}

// AnonStruct generates an anonymous C structure.
func AnonStruct(body Fragment) Fragment {
	return wrapDecl("struct", "", body)
}

// Union is the same as Struct but generates a union.
func Union(name string, body Fragment) Fragment {
	return wrapDecl("union", name, body)
}

// AnonUnion is the same as AnonStruct but generates a union.
func AnonUnion(body Fragment) Fragment {
	return wrapDecl("union", "", body)
}

// Enum is the same as Struct but generates an enumeration.
func Enum(name string, body Fragment) Fragment {
	return wrapDecl("enum", name, body)
}

// AnonEnum is the same as AnonStruct but generates an enumeration.
func AnonEnum(body Fragment) Fragment {
	return wrapDecl("enum", "", body)
}
