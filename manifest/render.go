package manifest

import (
	"fmt"
	"strings"

	"github.com/teranos/cgen/errors"
	"github.com/teranos/cgen/gen"
	"github.com/teranos/cgen/seq"
)

// banner is the first line of every generated header. Check ignores it when
// comparing, since the source path varies with the invocation directory.
const banner = "/* Code generated by cgen from %s. DO NOT EDIT. */"

// Render renders m into a complete header. source names the manifest in the
// generated banner. Output is deterministic: aggregates appear in manifest
// order and every fragment is a pure function of its inputs.
func Render(m *Manifest, source string) (string, error) {
	if err := m.Validate(); err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(banner, source) + "\n")

	if m.HeaderGuard != "" {
		sb.WriteString("#ifndef " + m.HeaderGuard + "\n")
		sb.WriteString("#define " + m.HeaderGuard + "\n")
	}

	for i := range m.Aggregates {
		block, err := renderAggregate(&m.Aggregates[i])
		if err != nil {
			return "", errors.Wrapf(err, "rendering aggregate %s", m.Aggregates[i].Name)
		}
		sb.WriteString("\n" + block)
	}

	if m.HeaderGuard != "" {
		sb.WriteString("\n#endif /* " + m.HeaderGuard + " */\n")
	}
	return sb.String(), nil
}

func renderAggregate(a *Aggregate) (string, error) {
	body, err := aggregateBody(a)
	if err != nil {
		return "", err
	}

	var lines []string
	switch {
	case a.Anonymous:
		// Anonymous forms are only reachable through their typedef alias.
		lines = append(lines, gen.Typedef(a.Name, anonWrap(a.Kind, body)).String())
	case a.Typedef:
		lines = append(lines, gen.Typedef(a.Name, namedWrap(a.Kind, a.Name, body)).String())
	default:
		lines = append(lines, namedWrap(a.Kind, a.Name, body).String()+";")
	}

	if a.Constructor {
		ctor, err := renderConstructor(a)
		if err != nil {
			return "", err
		}
		lines = append(lines, ctor)
	}
	return strings.Join(lines, "\n") + "\n", nil
}

func aggregateBody(a *Aggregate) (gen.Fragment, error) {
	switch a.Kind {
	case KindStruct, KindUnion:
		return gen.IndexedFields(seq.FromSlice(a.Types))
	case KindEnum:
		if len(a.Members) > 0 {
			return gen.Fragment(strings.Join(a.Members, ", ")), nil
		}
		return gen.IndexedArgs(a.Count)
	default:
		return gen.Empty, errors.NewTypeMismatchError("aggregate "+a.Name, "kind struct, union, or enum", a.Kind)
	}
}

func namedWrap(kind, name string, body gen.Fragment) gen.Fragment {
	switch kind {
	case KindUnion:
		return gen.Union(name, body)
	case KindEnum:
		return gen.Enum(name, body)
	default:
		return gen.Struct(name, body)
	}
}

func anonWrap(kind string, body gen.Fragment) gen.Fragment {
	switch kind {
	case KindUnion:
		return gen.AnonUnion(body)
	case KindEnum:
		return gen.AnonEnum(body)
	default:
		return gen.AnonStruct(body)
	}
}

// renderConstructor emits a static inline constructor whose parameter list
// and member initializer both index members in declaration order:
//
//	static inline struct Point Point_make(int _0, int _1) { return (struct Point){_0, _1}; }
func renderConstructor(a *Aggregate) (string, error) {
	params, err := gen.IndexedParams(seq.FromSlice(a.Types))
	if err != nil {
		return "", err
	}
	init, err := gen.IndexedInitializerList(len(a.Types))
	if err != nil {
		return "", err
	}

	ret := a.Kind + " " + a.Name
	if a.Typedef {
		ret = a.Name
	}
	return "static inline " + ret + " " + a.Name + "_make" + params.String() +
		" { return (" + ret + ")" + init.String() + "; }", nil
}
