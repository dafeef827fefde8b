/*
 * MLang
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"devt.de/krotik/common/errorutil"
	"devt.de/krotik/common/stringutil"
)

/*
IndentationLevel is the level of indentation which the pretty printer should use
*/
const IndentationLevel = 4

/*
Map of AST nodes corresponding to templates. The templates are keyed on the
node name and the number of children.
*/
var prettyPrinterMap map[string]*template.Template

func init() {
	prettyPrinterMap = map[string]*template.Template{
		NodeIdentifierExpression + "_1": template.Must(template.New(NodeIdentifierExpression).Parse("{{.c1}}")),
		NodeIdentifierExpression + "_2": template.Must(template.New(NodeIdentifierExpression).Parse("@{{.c2}}")),

		NodeParameter + "_1": template.Must(template.New(NodeParameter).Parse("{{.c1}}")),

		NodeIdentifierPairedExpression + "_3":            template.Must(template.New(NodeIdentifierPairedExpression).Parse("{{.c1}} = {{.c3}}")),
		NodeGeneralizedIdentifierPairedExpression + "_3": template.Must(template.New(NodeGeneralizedIdentifierPairedExpression).Parse("{{.c1}} = {{.c3}}")),

		NodeParenthesizedExpression + "_3": template.Must(template.New(NodeParenthesizedExpression).Parse("({{.c2}})")),

		NodeEachExpression + "_2": template.Must(template.New(NodeEachExpression).Parse("each {{.c2}}")),

		NodeFunctionExpression + "_3": template.Must(template.New(NodeFunctionExpression).Parse("{{.c1}} => {{.c3}}")),

		NodeIfExpression + "_6": template.Must(template.New(NodeIfExpression).Parse("if {{.c2}} then {{.c4}} else {{.c6}}")),
	}
}

/*
PrettyPrint produces a pretty printed representation of a given AST.
*/
func PrettyPrint(ast *ASTNode) (string, error) {
	var visit func(ast *ASTNode, level int) (string, error)

	visit = func(ast *ASTNode, level int) (string, error) {

		if ast.IsLeaf() {
			return ppLeafValue(ast), nil
		}

		numChildren := len(ast.Children)

		childValues := make([]string, numChildren)
		tempParam := make(map[string]string)

		for i, child := range ast.Children {
			res, err := visit(child, level+1)
			if err != nil {
				return "", err
			}
			childValues[i] = res
			tempParam[fmt.Sprint("c", i+1)] = res
		}

		// Handle variadic kinds in code

		switch ast.Name {

		case NodeLetExpression:
			return ppLetExpression(ast, childValues, level), nil

		case NodeSection:
			return ppSection(ast, childValues), nil

		case NodeSectionMember:
			return strings.Join(childValues[:numChildren-1], " ") + ";", nil

		case NodeParameterList:
			return "(" + strings.Join(ppInnerValues(ast, childValues), ", ") + ")", nil

		case NodeRecordExpression, NodeRecordLiteral:
			inner := ppInnerValues(ast, childValues)
			if len(inner) == 0 {
				return "[]", nil
			}
			return "[" + strings.Join(inner, ", ") + "]", nil

		case NodeListExpression:
			inner := ppInnerValues(ast, childValues)
			if len(inner) == 0 {
				return "{}", nil
			}
			return "{" + strings.Join(inner, ", ") + "}", nil

		case NodeInvokeExpression:
			return ppInvokeExpression(ast, childValues), nil

		case NodeUnaryExpression:
			if ast.Children[0].Token != nil && ast.Children[0].Token.ID == TokenNOT {
				return childValues[0] + " " + childValues[1], nil
			}
			return childValues[0] + childValues[1], nil

		case NodeLogicalExpression, NodeEqualityExpression,
			NodeRelationalExpression, NodeArithmeticExpression:
			return strings.Join(childValues, " "), nil
		}

		// Everything else must have a fixed shape template

		temp, ok := prettyPrinterMap[fmt.Sprint(ast.Name, "_", numChildren)]

		errorutil.AssertTrue(ok,
			fmt.Sprintf("Could not find template for %v (tempkey: %v)",
				ast.Name, fmt.Sprint(ast.Name, "_", numChildren)))

		var buf bytes.Buffer
		errorutil.AssertOk(temp.Execute(&buf, tempParam))

		return buf.String(), nil
	}

	return visit(ast, 0)
}

/*
ppLeafValue renders a single leaf node as source text.
*/
func ppLeafValue(ast *ASTNode) string {

	t := ast.Token

	if t.ID == TokenSTRING {
		return fmt.Sprintf("\"%v\"", strings.Replace(t.Val, "\"", "\"\"", -1))
	}

	if t.ID == TokenQUOTEDID {
		return fmt.Sprintf("#\"%v\"", strings.Replace(t.Val, "\"", "\"\"", -1))
	}

	return t.Val
}

/*
ppInnerValues returns the rendered children of a bracketed construct without
the brackets and the separator constants.
*/
func ppInnerValues(ast *ASTNode, childValues []string) []string {
	var ret []string

	for i, child := range ast.Children {
		if child.Name == NodeConstant {
			continue
		}
		ret = append(ret, childValues[i])
	}

	return ret
}

/*
ppLetExpression renders a let expression over multiple lines.
*/
func ppLetExpression(ast *ASTNode, childValues []string, level int) string {
	var buf bytes.Buffer

	indent := stringutil.GenerateRollingString(" ", (level+1)*IndentationLevel)
	outdent := stringutil.GenerateRollingString(" ", level*IndentationLevel)

	var bindings []string
	var body string

	inBody := false
	for i, child := range ast.Children {

		if child.Name == NodeConstant {
			if child.Token.ID == TokenIN {
				inBody = true
			}
			continue
		}

		if inBody {
			body = childValues[i]
		} else {
			bindings = append(bindings, childValues[i])
		}
	}

	buf.WriteString("let\n")
	for i, b := range bindings {
		buf.WriteString(indent)
		buf.WriteString(b)
		if i < len(bindings)-1 {
			buf.WriteString(",")
		}
		buf.WriteString("\n")
	}
	buf.WriteString(outdent)
	buf.WriteString("in\n")
	buf.WriteString(indent)
	buf.WriteString(body)

	return buf.String()
}

/*
ppSection renders a section document.
*/
func ppSection(ast *ASTNode, childValues []string) string {
	var buf bytes.Buffer

	buf.WriteString("section ")
	buf.WriteString(childValues[1])
	buf.WriteString(";\n")

	for i, child := range ast.Children {
		if child.Name == NodeSectionMember {
			buf.WriteString("\n")
			buf.WriteString(childValues[i])
		}
	}

	return buf.String()
}

/*
ppInvokeExpression renders an invocation without spaces around the argument
list.
*/
func ppInvokeExpression(ast *ASTNode, childValues []string) string {
	var buf bytes.Buffer

	buf.WriteString(childValues[0])

	pendingComma := false
	for i, child := range ast.Children[1:] {
		v := childValues[i+1]

		if child.Name == NodeConstant {
			if child.Token.ID == TokenCOMMA {
				pendingComma = true
				continue
			}
			buf.WriteString(v)
			pendingComma = false
			continue
		}

		if pendingComma {
			buf.WriteString(", ")
			pendingComma = false
		}
		buf.WriteString(v)
	}

	return buf.String()
}
