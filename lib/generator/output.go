package generator

import (
	"bytes"
	"fmt"
	"go/format"
	"strconv"
	"strings"
	"text/template"
)

const fileTemplate = `// Code generated by candv. DO NOT EDIT.

package {{.Package}}

import "github.com/o3bvv/candv"
{{range .Containers}}
type {{.DeclType}} struct {
	{{.Core}}
{{- range .Fields}}
	{{.Name}} {{.Type}}
{{- end}}
}

var {{.Name}} = candv.Register("{{.Name}}", &{{.DeclType}}{
{{- range .Inits}}
	{{.Name}}: {{.Expr}},
{{- end}}
})
{{end}}`

type fileModel struct {
	Package    string
	Containers []containerModel
}

type containerModel struct {
	Name     string
	DeclType string
	Core     string
	Fields   []fieldModel
	Inits    []initModel
}

type fieldModel struct {
	Name string
	Type string
}

type initModel struct {
	Name string
	Expr string
}

// render produces formatted Go source for the definitions.
func render(defs *Definitions) ([]byte, error) {
	model := fileModel{Package: defs.Package}

	for i := range defs.Containers {
		c := &defs.Containers[i]
		cm, err := buildContainerModel(c)
		if err != nil {
			return nil, err
		}
		model.Containers = append(model.Containers, cm)
	}

	tmpl, err := template.New("candv").Parse(fileTemplate)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, model); err != nil {
		return nil, err
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format source: %w", err)
	}
	return formatted, nil
}

func buildContainerModel(c *ContainerDef) (containerModel, error) {
	cm := containerModel{
		Name:     c.Name,
		DeclType: declTypeName(c.Name),
	}

	if c.Kind == KindValues {
		cm.Core = fmt.Sprintf("candv.Values[%s]", c.Type)
	} else {
		cm.Core = "candv.Constants"
	}

	for i := range c.Members {
		m := &c.Members[i]
		fieldType := memberFieldType(c, m)
		expr, err := memberExpr(c, m)
		if err != nil {
			return containerModel{}, err
		}
		cm.Fields = append(cm.Fields, fieldModel{Name: m.Name, Type: fieldType})
		cm.Inits = append(cm.Inits, initModel{Name: m.Name, Expr: expr})
	}
	return cm, nil
}

// declTypeName derives the unexported declaration struct name, e.g.
// "Colors" -> "colorsDecl".
func declTypeName(name string) string {
	return strings.ToLower(name[:1]) + name[1:] + "Decl"
}

func isVerbose(m *MemberDef) bool {
	return m.VerboseName != "" || m.HelpText != ""
}

func memberFieldType(c *ContainerDef, m *MemberDef) string {
	switch {
	case len(m.Members) > 0:
		return "*candv.Group"
	case m.Value != nil && isVerbose(m):
		return fmt.Sprintf("*candv.VerboseValueConstant[%s]", c.Type)
	case m.Value != nil:
		return fmt.Sprintf("*candv.ValueConstant[%s]", c.Type)
	case isVerbose(m):
		return "*candv.VerboseConstant"
	default:
		return "*candv.SimpleConstant"
	}
}

// memberExpr renders the constructor expression for a member, promoting it
// with ToGroup when nested members are declared.
func memberExpr(c *ContainerDef, m *MemberDef) (string, error) {
	expr, err := constantExpr(c, m)
	if err != nil {
		return "", err
	}
	if len(m.Members) == 0 {
		return expr, nil
	}

	var sb strings.Builder
	sb.WriteString(expr)
	sb.WriteString(".ToGroup(\n")
	for i := range m.Members {
		child := &m.Members[i]
		childExpr, err := memberExpr(c, child)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, "candv.M(%q, %s),\n", child.Name, childExpr)
	}
	sb.WriteString(")")
	return sb.String(), nil
}

func constantExpr(c *ContainerDef, m *MemberDef) (string, error) {
	switch {
	case m.Value != nil && isVerbose(m):
		lit, err := valueLiteral(c, m)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(
			"candv.NewVerboseValue[%s](%s, %q, %q)",
			c.Type, lit, m.VerboseName, m.HelpText,
		), nil
	case m.Value != nil:
		lit, err := valueLiteral(c, m)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("candv.NewValue[%s](%s)", c.Type, lit), nil
	case isVerbose(m):
		return fmt.Sprintf("candv.NewVerbose(%q, %q)", m.VerboseName, m.HelpText), nil
	default:
		return "candv.NewSimple()", nil
	}
}

// valueLiteral renders a member's YAML value as a Go literal of the
// container's declared type.
func valueLiteral(c *ContainerDef, m *MemberDef) (string, error) {
	switch c.Type {
	case "string":
		s, ok := m.Value.(string)
		if !ok {
			return "", literalErr(c, m, "a string")
		}
		return strconv.Quote(s), nil

	case "int", "int64":
		n, ok := m.Value.(int)
		if !ok {
			return "", literalErr(c, m, "an integer")
		}
		return strconv.Itoa(n), nil

	case "float64":
		switch n := m.Value.(type) {
		case int:
			return strconv.Itoa(n), nil
		case float64:
			return strconv.FormatFloat(n, 'g', -1, 64), nil
		}
		return "", literalErr(c, m, "a number")

	case "bool":
		b, ok := m.Value.(bool)
		if !ok {
			return "", literalErr(c, m, "a boolean")
		}
		return strconv.FormatBool(b), nil
	}
	return "", fmt.Errorf("container %q: unsupported value type %q", c.Name, c.Type)
}

func literalErr(c *ContainerDef, m *MemberDef, want string) error {
	return fmt.Errorf(
		"container %q: member %q: value %v is not %s",
		c.Name, m.Name, m.Value, want,
	)
}
