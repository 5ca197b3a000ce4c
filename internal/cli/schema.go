package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/plotkit/pkg/props"
)

// schemaCommand creates the schema command for inspecting registered classes.
func (c *CLI) schemaCommand() *cobra.Command {
	var own bool

	cmd := &cobra.Command{
		Use:   "schema [class]",
		Short: "List registered classes or the properties of one class",
		Long: `List registered classes or the properties of one class.

Without arguments, every registered class is listed with its parent and
property count. With a class name, the class's properties are listed with
their kind, default and declaring class. Properties the class itself declares
or overrides are highlighted.`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: completeClasses,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				fmt.Println(classTable())
				return nil
			}
			out, err := propertyTable(args[0], own)
			if err != nil {
				return err
			}
			fmt.Println(StyleTitle.Render(args[0]))
			fmt.Println(out)
			return nil
		},
	}

	cmd.Flags().BoolVar(&own, "own", false, "only show properties the class declares itself")

	return cmd
}

// classTable renders every registered class.
func classTable() string {
	classes := props.Classes()
	rows := make([][]string, 0, len(classes))
	for _, name := range classes {
		s, err := props.LookupClass(name)
		if err != nil {
			continue
		}
		parent := "—"
		if p := s.Parent(); p != nil {
			parent = p.Class()
		}
		rows = append(rows, []string{name, parent, fmt.Sprint(s.Len())})
	}
	return renderTable([]string{"Class", "Extends", "Properties"}, rows, nil)
}

// propertyTable renders the properties of class in declaration order.
func propertyTable(class string, own bool) (string, error) {
	s, err := props.LookupClass(class)
	if err != nil {
		return "", err
	}

	var (
		rows  [][]string
		owned []bool
	)
	for _, p := range s.Properties() {
		mine := p.Owner == class || overridden(s, p)
		if own && !mine {
			continue
		}
		rows = append(rows, []string{p.Name, fmtKind(p), fmtDefault(p.Default), p.Owner})
		owned = append(owned, mine)
	}
	return renderTable([]string{"Property", "Kind", "Default", "Declared by"}, rows, func(row int) bool {
		return row >= 0 && row < len(owned) && owned[row]
	}), nil
}

// overridden reports whether s changes the default p has on its parent.
func overridden(s *props.Schema, p props.Property) bool {
	parent := s.Parent()
	if parent == nil {
		return false
	}
	pp, err := parent.Lookup(p.Name)
	if err != nil {
		return true
	}
	a, okA := pp.Default.(props.Literal)
	b, okB := p.Default.(props.Literal)
	if okA && okB {
		return a.Value != b.Value
	}
	return okA != okB
}

func fmtKind(p props.Property) string {
	if p.Kind == props.KindEnum && len(p.Choices) > 0 {
		return "Enum(" + strings.Join(p.Choices, "|") + ")"
	}
	return p.Kind.String()
}

func fmtDefault(d props.Default) string {
	if props.IsFactory(d) {
		v := props.Resolve(d)
		if v == nil {
			return "factory"
		}
		return fmt.Sprintf("factory %T", v)
	}
	v := props.Resolve(d)
	if v == nil {
		return "null"
	}
	if s, ok := v.(string); ok {
		return fmt.Sprintf("%q", s)
	}
	return fmt.Sprint(v)
}
