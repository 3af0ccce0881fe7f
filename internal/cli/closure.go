package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/traversalgroup/pkg/codec"
	"github.com/matzehuels/traversalgroup/pkg/perm"
)

// newClosureCmd creates the closure command, which computes the group
// generated by the given permutations.
func newClosureCmd() *cobra.Command {
	var elements bool
	cmd := &cobra.Command{
		Use:   `closure "<images>"...`,
		Short: "Compute the group generated by permutations",
		Long: `Compute the closure of a set of permutations under composition.

Each argument is one permutation as its image sequence. All permutations
must be defined over the same letters.

Example:
  traversalgroup closure "2 1 3" "2 3 1"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			gens := make([]*perm.Permutation, 0, len(args))
			for _, arg := range args {
				p, err := parsePermutation(arg)
				if err != nil {
					return err
				}
				gens = append(gens, p)
			}

			logger := loggerFromContext(c.Context())
			prog := newProgress(logger)
			group, err := perm.Closure(gens)
			if err != nil {
				return err
			}
			prog.done(fmt.Sprintf("Closed %d generators into a group of order %d", len(gens), group.Len()))

			return printGroup(group, elements)
		},
	}
	cmd.Flags().BoolVar(&elements, "elements", false, "list every element of the group")
	return cmd
}

// newCyclicCmd creates the cyclic command, which computes the powers of a
// single permutation.
func newCyclicCmd() *cobra.Command {
	var elements bool
	cmd := &cobra.Command{
		Use:   `cyclic "<images>"`,
		Short: "Compute the cyclic group generated by one permutation",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			gen, err := parsePermutation(args[0])
			if err != nil {
				return err
			}
			return printGroup(perm.CyclicGroup(gen), elements)
		},
	}
	cmd.Flags().BoolVar(&elements, "elements", false, "list every element of the group")
	return cmd
}

// printGroup prints a group's order, class, and canonical representation,
// and optionally its elements.
func printGroup(group *perm.Group, elements bool) error {
	repr, err := codec.EncodeGroup(group)
	if err != nil {
		return err
	}
	classRepr, err := codec.EncodeGroupClass(group.Fingerprint())
	if err != nil {
		return err
	}

	printKeyValue("order", fmt.Sprintf("%d", group.Len()))
	printKeyValue("group", repr)
	printKeyValue("class", classRepr)
	if elements {
		for _, p := range group.Elements() {
			printDetail("%s", formatImages(p))
		}
	}
	return nil
}
